package domoticz

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/nergy-se/heatcurve/pkg/config"
	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/nergy-se/heatcurve/pkg/source/httpget"
	"github.com/sirupsen/logrus"
)

// graph sensor kinds understood by json.htm?type=graph
const (
	sensorTemperature = "temp"
	sensorPercentage  = "Percentage" // general custom sensor, used for heat meters
	sensorCounter     = "counter"
)

type Domoticz struct {
	url     string
	rng     string
	client  *httpget.Client
	sensors map[source.Series]string
}

func New(conf config.Domoticz, client *httpget.Client) *Domoticz {
	if conf.Username != "" {
		client.SetBasicAuth(conf.Username, conf.Password)
	}
	rng := conf.Range
	if rng == "" {
		rng = "year"
	}
	return &Domoticz{
		url:    strings.TrimSuffix(conf.URL, "/"),
		rng:    rng,
		client: client,
		sensors: map[source.Series]string{
			source.OutdoorTemperature: conf.OutdoorTemperature,
			source.IndoorTemperature:  conf.IndoorTemperature,
			source.HeatingEnergy:      conf.HeatingEnergy,
			source.GasVolume:          conf.Gas,
			source.Electricity:        conf.Electricity,
		},
	}
}

func sensorKind(series source.Series) string {
	switch series {
	case source.OutdoorTemperature, source.IndoorTemperature:
		return sensorTemperature
	case source.HeatingEnergy:
		return sensorPercentage
	default:
		return sensorCounter
	}
}

func (d *Domoticz) graphURL(series source.Series, idx string) string {
	vs := url.Values{}
	vs.Set("type", "graph")
	vs.Set("sensor", sensorKind(series))
	vs.Set("idx", idx)
	vs.Set("range", d.rng)
	vs.Set("method", "1")
	return fmt.Sprintf("%s/json.htm?%s", d.url, vs.Encode())
}

func (d *Domoticz) Fetch(ctx context.Context, series source.Series, window source.Window) ([]source.Reading, error) {
	idx := d.sensors[series]
	if idx == "" {
		return nil, fmt.Errorf("no domoticz idx configured for %s", series)
	}

	u := d.graphURL(series, idx)
	resp := &GraphResponse{}
	err := d.client.GetJSON(ctx, u, resp)
	if err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("domoticz status %q for idx %s", resp.Status, idx)
	}

	readings, err := resp.Readings(series, window)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"idx":      idx,
		"sensor":   sensorKind(series),
		"items":    len(resp.Result),
		"readings": len(readings),
	}).Debug("domoticz: fetched graph")
	return readings, nil
}

type GraphResponse struct {
	Status string      `json:"status"`
	Title  string      `json:"title"`
	Result []GraphItem `json:"result"`
}

type GraphItem struct {
	D    string `json:"d"`
	Ta   Number `json:"ta"`
	VMin Number `json:"v_min"`
	VMax Number `json:"v_max"`
	V    Number `json:"v"`
}

// Date parses "2006-01-02" and "2006-01-02 15:04" into local midnight.
func (i GraphItem) Date() (time.Time, error) {
	if len(i.D) < len(config.DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", i.D)
	}
	return time.ParseInLocation(config.DateLayout, i.D[:len(config.DateLayout)], time.Local)
}

// Value returns the daily value of the item for series and false if the item lacks it.
func (i GraphItem) Value(series source.Series) (float64, bool) {
	switch sensorKind(series) {
	case sensorTemperature:
		return i.Ta.Value, i.Ta.Valid
	case sensorPercentage:
		if !i.VMin.Valid || !i.VMax.Valid {
			return 0, false
		}
		return i.VMax.Value - i.VMin.Value, true
	default:
		return i.V.Value, i.V.Valid
	}
}

func (r *GraphResponse) Readings(series source.Series, window source.Window) ([]source.Reading, error) {
	var readings []source.Reading
	for _, item := range r.Result {
		if item.D == "" {
			continue
		}
		date, err := item.Date()
		if err != nil {
			return nil, err
		}
		if !window.Contains(date) {
			continue
		}
		v, ok := item.Value(series)
		if !ok {
			continue
		}
		readings = append(readings, source.Reading{Date: date, Value: v})
	}
	return readings, nil
}
