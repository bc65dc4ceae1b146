package graphite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nergy-se/heatcurve/pkg/config"
	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/nergy-se/heatcurve/pkg/source/httpget"
	"github.com/sirupsen/logrus"
)

type Graphite struct {
	url     string
	client  *httpget.Client
	targets map[source.Series]string
}

func New(conf config.Graphite, client *httpget.Client) *Graphite {
	return &Graphite{
		url:    strings.TrimSuffix(conf.URL, "/"),
		client: client,
		targets: map[source.Series]string{
			source.OutdoorTemperature: conf.OutdoorTemperature,
			source.IndoorTemperature:  conf.IndoorTemperature,
			source.HeatingEnergy:      conf.HeatingEnergy,
			source.GasVolume:          conf.Gas,
			source.Electricity:        conf.Electricity,
		},
	}
}

type Datapoint struct {
	At    time.Time
	Value float64
	Valid bool
}

func (d *Datapoint) UnmarshalJSON(data []byte) error {
	var v []*float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 2 || v[1] == nil {
		return errors.New("datapoint incorrect length")
	}
	d.At = time.Unix(int64(*v[1]), 0)
	if v[0] != nil {
		d.Value = *v[0]
		d.Valid = true
	}
	return nil
}

type Dataseries struct {
	Target     string      `json:"target"`
	Datapoints []Datapoint `json:"datapoints"`
}

func (g *Graphite) Query(ctx context.Context, from, until, target string) ([]Dataseries, error) {
	vs := url.Values{
		"from":   []string{from},
		"until":  []string{until},
		"target": []string{target},
		"format": []string{"json"}}
	uri := fmt.Sprintf("%s/render?%s", g.url, vs.Encode())
	var v []Dataseries
	if err := g.client.GetJSON(ctx, uri, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (g *Graphite) Fetch(ctx context.Context, series source.Series, window source.Window) ([]source.Reading, error) {
	target := g.targets[series]
	if target == "" {
		return nil, fmt.Errorf("no graphite target configured for %s", series)
	}

	from := "-1y"
	if !window.Start.IsZero() {
		from = strconv.FormatInt(source.Truncate(window.Start).Unix(), 10)
	}
	until := "now"
	if !window.End.IsZero() {
		until = strconv.FormatInt(source.Truncate(window.End).AddDate(0, 0, 1).Unix(), 10)
	}

	data, err := g.Query(ctx, from, until, target)
	if err != nil {
		return nil, err
	}

	readings := Daily(data, window, isTemperature(series))
	logrus.WithFields(logrus.Fields{
		"target":   target,
		"series":   len(data),
		"readings": len(readings),
	}).Debug("graphite: fetched")
	return readings, nil
}

func isTemperature(series source.Series) bool {
	return series == source.OutdoorTemperature || series == source.IndoorTemperature
}

// Daily groups datapoints per local day. Temperatures are averaged, counters summed.
func Daily(data []Dataseries, window source.Window, average bool) []source.Reading {
	type bucket struct {
		sum float64
		n   int
	}
	buckets := make(map[time.Time]*bucket)
	for _, series := range data {
		for _, dp := range series.Datapoints {
			if !dp.Valid {
				continue
			}
			d := source.Truncate(dp.At)
			if !window.Contains(d) {
				continue
			}
			b, ok := buckets[d]
			if !ok {
				b = &bucket{}
				buckets[d] = b
			}
			b.sum += dp.Value
			b.n++
		}
	}

	readings := make([]source.Reading, 0, len(buckets))
	for d, b := range buckets {
		v := b.sum
		if average {
			v = b.sum / float64(b.n)
		}
		readings = append(readings, source.Reading{Date: d, Value: v})
	}
	sort.Slice(readings, func(i, j int) bool { return readings[i].Date.Before(readings[j].Date) })
	return readings
}
