package domoticz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nergy-se/heatcurve/pkg/config"
	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/nergy-se/heatcurve/pkg/source/httpget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

var graphs = map[string]string{
	"temp-20": `
{
  "status": "OK",
  "title": "Graph temp year",
  "result": [
    {"d": "2019-09-11", "ta": 14.2, "te": 20.1, "tm": 9.0},
    {"d": "2019-09-12", "ta": 13.1, "te": 19.0, "tm": 8.1},
    {"d": "2019-09-13", "te": 19.0, "tm": 8.1},
    {"d": "2019-09-14", "ta": "12.5"}
  ]
}`,
	"Percentage-102": `
{
  "status": "OK",
  "result": [
    {"d": "2019-09-12", "v_min": "1000.5", "v_max": "1020.5", "v_avg": "1010"},
    {"d": "2019-09-13", "v_min": 1020.5, "v_max": 1050.0},
    {"d": "2019-09-14", "v_max": 1070.0}
  ]
}`,
	"counter-53": `
{
  "status": "OK",
  "result": [
    {"d": "2019-09-12 00:00", "v": "3.125"},
    {"d": "2019-09-13", "v": ""}
  ]
}`,
	"temp-99": `{"status": "ERR", "message": "no such device"}`,
}

func newServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json.htm", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "graph", q.Get("type"))
		assert.Equal(t, "year", q.Get("range"))
		assert.Equal(t, "1", q.Get("method"))
		body, ok := graphs[fmt.Sprintf("%s-%s", q.Get("sensor"), q.Get("idx"))]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	}))
}

func newDomoticz(url string) *Domoticz {
	return New(config.Domoticz{
		URL:                url + "/",
		OutdoorTemperature: "20",
		HeatingEnergy:      "102",
		Gas:                "53",
		IndoorTemperature:  "99",
	}, httpget.New(time.Second, 0, false))
}

func TestFetch(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	d := newDomoticz(srv.URL)
	window := source.Window{Start: day("2019-09-12"), End: day("2019-12-23")}

	var tests = []struct {
		name     string
		series   source.Series
		expected []source.Reading
	}{
		{
			name:   "temperature uses ta and window",
			series: source.OutdoorTemperature,
			expected: []source.Reading{
				{Date: day("2019-09-12"), Value: 13.1},
				{Date: day("2019-09-14"), Value: 12.5},
			},
		},
		{
			name:   "heat meter uses v_max - v_min",
			series: source.HeatingEnergy,
			expected: []source.Reading{
				{Date: day("2019-09-12"), Value: 20},
				{Date: day("2019-09-13"), Value: 29.5},
			},
		},
		{
			name:   "counter uses v",
			series: source.GasVolume,
			expected: []source.Reading{
				{Date: day("2019-09-12"), Value: 3.125},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			readings, err := d.Fetch(context.Background(), tt.series, window)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, readings)
		})
	}
}

func TestFetchErrors(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	d := newDomoticz(srv.URL)

	_, err := d.Fetch(context.Background(), source.IndoorTemperature, source.Window{})
	assert.EqualError(t, err, `domoticz status "ERR" for idx 99`)

	_, err = d.Fetch(context.Background(), source.Electricity, source.Window{})
	assert.EqualError(t, err, "no domoticz idx configured for electricity")
}

func TestNumber(t *testing.T) {
	var tests = []struct {
		given    string
		expected Number
		err      bool
	}{
		{given: `1.5`, expected: Number{Value: 1.5, Valid: true}},
		{given: `"-2.25"`, expected: Number{Value: -2.25, Valid: true}},
		{given: `""`, expected: Number{}},
		{given: `null`, expected: Number{}},
		{given: `"abc"`, err: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.given, func(t *testing.T) {
			n := Number{}
			err := json.Unmarshal([]byte(tt.given), &n)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}
