package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/nergy-se/heatcurve/pkg/analysis"
	"github.com/nergy-se/heatcurve/pkg/climate"
	"github.com/nergy-se/heatcurve/pkg/fit"
	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(t *testing.T, samples *source.Samples) Report {
	dist, err := climate.Lookup(climate.Default)
	require.NoError(t, err)
	r, err := analysis.Analyse(fit.Curve{Gain: -0.2, Offset: 3, Correlation: 0.9876, Samples: 40}, samples, dist, analysis.Params{
		DesignTemperature:  -7,
		LowestTemperature:  -15,
		HeatingHoursPerDay: 22,
		CostPerKWh:         0.227,
		PeopleHeatPerDay:   3.36,
	}, nil)
	require.NoError(t, err)
	start := time.Date(2019, 9, 12, 0, 0, 0, 0, time.Local)
	return Report{
		Source: "domoticz",
		Start:  &start,
		End:    time.Date(2019, 12, 23, 0, 0, 0, 0, time.Local),
		Result: r,
	}
}

func TestText(t *testing.T) {
	rep := newReport(t, nil)
	rep.Notices = []string{"skipped 1 leading days"}
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, "text", rep))

	out := buf.String()
	assert.Contains(t, out, "Heating power vs outdoor temperature (power meter based)")
	assert.Contains(t, out, "Analysed: Thursday September 12 2019 - Monday December 23 2019 (domoticz)")
	assert.Contains(t, out, "Power = -0.2 * temperature + 3  (r=0.988, n=40)")
	assert.Regexp(t, `Heating required until outdoor temperature:\s+15.00 C`, out)
	assert.Regexp(t, `Heating power required @ -7 C:\s+4.40 kW`, out)
	assert.Regexp(t, `Supplemental power required below -7 C:\s+1.60 kW`, out)
	assert.Contains(t, out, "  - skipped 1 leading days")
	assert.NotContains(t, out, "external heat from sun")
}

func TestTextInternalAndGas(t *testing.T) {
	rep := newReport(t, &source.Samples{Indoor: []float64{21}, Electricity: []float64{11}})
	rep.Gas = true
	rep.File = "data.csv"
	buf := &bytes.Buffer{}
	require.NoError(t, Text(buf, rep))

	out := buf.String()
	assert.Contains(t, out, "(gas based)")
	assert.Contains(t, out, "Analysed file: data.csv")
	assert.Regexp(t, `Heat from people per day:\s+3.36 kWh`, out)
	assert.Regexp(t, `Estimated average additional heating power:\s+1.200 kW`, out)
	assert.Regexp(t, `external heat from sun:\s+`, out)
}

func TestJSON(t *testing.T) {
	rep := newReport(t, nil)
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, "json", rep))

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	result := decoded["result"].(map[string]interface{})
	assert.InDelta(t, 15.0, result["balanceTemperature"], 1e-9)
	assert.InDelta(t, 4.4, result["designPower"], 1e-9)
	assert.Equal(t, "domoticz", decoded["source"])
	assert.Contains(t, decoded, "start")
}

func TestJSONWithoutStart(t *testing.T) {
	rep := newReport(t, nil)
	rep.Start = nil
	buf := &bytes.Buffer{}
	require.NoError(t, JSON(buf, rep))

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotContains(t, decoded, "start")
	assert.Contains(t, decoded, "end")

	text := &bytes.Buffer{}
	require.NoError(t, Text(text, rep))
	assert.Contains(t, text.String(), "Analysed: first sample - Monday December 23 2019 (domoticz)")
}

func TestUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", newReport(t, nil)))
}
