package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nergy-se/heatcurve/pkg/notice"
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

type fakeFetcher struct {
	series map[Series][]Reading
	err    error
}

func (f *fakeFetcher) Fetch(ctx context.Context, series Series, window Window) ([]Reading, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Reading
	for _, r := range f.series[series] {
		if window.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: day("2019-09-12"), End: day("2019-12-23")}

	var tests = []struct {
		name     string
		given    time.Time
		expected bool
	}{
		{name: "start inclusive", given: day("2019-09-12"), expected: true},
		{name: "end inclusive", given: day("2019-12-23").Add(23 * time.Hour), expected: true},
		{name: "before", given: day("2019-09-11"), expected: false},
		{name: "after", given: day("2019-12-24"), expected: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.Contains(tt.given))
		})
	}

	assert.True(t, Window{}.Contains(day("1990-01-01")))
}

func TestGasEnergy(t *testing.T) {
	g := GasConversion{Enabled: true, EnergyPerCubicMeter: 10, DailyNonHeatingCubicMeters: 0.5}
	assert.InDelta(t, 25.0, g.Energy(3.0), 1e-9)
}

func TestCorrectElectricity(t *testing.T) {
	assert.Equal(t, 10.0, Request{}.CorrectElectricity(10))
	assert.Equal(t, 5.0, Request{ElectricityCorrection: 0.5}.CorrectElectricity(10))
}

func TestMergeCarriesForward(t *testing.T) {
	n := &notice.Notices{}
	req := Request{HeatingHoursPerDay: 20, Notices: n}
	outdoor := []Reading{
		{Date: day("2019-01-01"), Value: 1},
		{Date: day("2019-01-02"), Value: 2},
		{Date: day("2019-01-04"), Value: 4},
	}
	energy := []Reading{
		{Date: day("2019-01-02"), Value: 40},
		{Date: day("2019-01-03"), Value: 60},
		{Date: day("2019-01-04"), Value: 20},
	}

	s := Merge(req, outdoor, energy, nil, nil)
	assert.Len(t, s.Days, 4)
	// 2019-01-01 has no energy yet and is skipped.
	assert.Equal(t, []float64{2, 2, 4}, s.Outdoor)
	assert.Equal(t, []float64{2, 3, 1}, s.HeatingPower)
	assert.Equal(t, []string{"skipped 1 leading days without both outdoor temperature and heating energy"}, n.List())
}

func TestMergeSortsDays(t *testing.T) {
	req := Request{HeatingHoursPerDay: 10}
	outdoor := []Reading{
		{Date: day("2019-01-02"), Value: 2},
		{Date: day("2019-01-01"), Value: 1},
	}
	energy := []Reading{
		{Date: day("2019-01-01"), Value: 10},
		{Date: day("2019-01-02"), Value: 20},
	}
	s := Merge(req, outdoor, energy, nil, nil)
	assert.Equal(t, []float64{1, 2}, s.Outdoor)
	assert.Equal(t, []float64{1, 2}, s.HeatingPower)
}

func TestMergeIgnoresInternalWhenDisabled(t *testing.T) {
	req := Request{HeatingHoursPerDay: 10}
	s := Merge(req,
		[]Reading{{Date: day("2019-01-01"), Value: 1}},
		[]Reading{{Date: day("2019-01-01"), Value: 10}},
		[]Reading{{Date: day("2019-01-01"), Value: 20}},
		[]Reading{{Date: day("2019-01-01"), Value: 5}},
	)
	assert.Empty(t, s.Indoor)
	assert.Empty(t, s.Electricity)
}

func TestCollect(t *testing.T) {
	f := &fakeFetcher{series: map[Series][]Reading{
		OutdoorTemperature: {
			{Date: day("2019-01-01"), Value: 0},
			{Date: day("2019-01-02"), Value: 10},
			{Date: day("2019-02-01"), Value: 10},
		},
		GasVolume: {
			{Date: day("2019-01-01"), Value: 2.5},
			{Date: day("2019-01-02"), Value: 1.5},
		},
		IndoorTemperature: {
			{Date: day("2019-01-01"), Value: 20},
			{Date: day("2019-01-02"), Value: 21},
		},
		Electricity: {
			{Date: day("2019-01-01"), Value: 10},
			{Date: day("2019-01-02"), Value: 12},
		},
	}}

	req := Request{
		Window:                Window{Start: day("2019-01-01"), End: day("2019-01-31")},
		HeatingHoursPerDay:    10,
		Gas:                   GasConversion{Enabled: true, EnergyPerCubicMeter: 10, DailyNonHeatingCubicMeters: 0.5},
		Internal:              true,
		ElectricityCorrection: 0.5,
	}
	s, err := NewCollector(f).Samples(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10}, s.Outdoor)
	assert.InDeltaSlice(t, []float64{2, 1}, s.HeatingPower, 1e-9)
	assert.Equal(t, []float64{20, 21}, s.Indoor)
	assert.Equal(t, []float64{5, 6}, s.Electricity)
}

func TestCollectNoSamples(t *testing.T) {
	f := &fakeFetcher{series: map[Series][]Reading{}}
	_, err := NewCollector(f).Samples(context.Background(), Request{HeatingHoursPerDay: 22})
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestCollectFetchError(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeFetcher{err: boom}
	_, err := NewCollector(f).Samples(context.Background(), Request{HeatingHoursPerDay: 22})
	assert.ErrorIs(t, err, boom)
}
