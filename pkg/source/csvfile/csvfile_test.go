package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nergy-se/heatcurve/pkg/notice"
	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	data := `5.0,44
10.0, 22
,30
-2.5,66,20.5,11
`
	n := &notice.Notices{}
	s, err := Read(strings.NewReader(data), source.Request{HeatingHoursPerDay: 22, Notices: n})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 10, -2.5}, s.Outdoor)
	assert.Equal(t, []float64{2, 1, 3}, s.HeatingPower)
	assert.Empty(t, s.Indoor)
	assert.Equal(t, []string{"csv line 3: missing outdoor temperature or energy"}, n.List())
}

func TestReadGasAndInternal(t *testing.T) {
	data := `0,5.5,20,10
10,1.5,21,
`
	req := source.Request{
		HeatingHoursPerDay:    10,
		Gas:                   source.GasConversion{Enabled: true, EnergyPerCubicMeter: 10, DailyNonHeatingCubicMeters: 0.5},
		Internal:              true,
		ElectricityCorrection: 0.5,
	}
	s, err := Read(strings.NewReader(data), req)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 1}, s.HeatingPower, 1e-9)
	assert.Equal(t, []float64{20}, s.Indoor)
	assert.Equal(t, []float64{5}, s.Electricity)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("1,2\n1,x\n"), source.Request{HeatingHoursPerDay: 22})
	assert.EqualError(t, err, `line 2 column 2: strconv.ParseFloat: parsing "x": invalid syntax`)

	_, err = Read(strings.NewReader(""), source.Request{HeatingHoursPerDay: 22})
	assert.ErrorIs(t, err, source.ErrNoSamples)

	_, err = Read(strings.NewReader("1,2\n"), source.Request{HeatingHoursPerDay: 22, Internal: true})
	assert.ErrorIs(t, err, source.ErrNoSamples)
}

func TestReadLineNumbersCountBlankLines(t *testing.T) {
	n := &notice.Notices{}
	_, err := Read(strings.NewReader("5,44\n\n,30\n\n1,2\n"), source.Request{HeatingHoursPerDay: 22, Notices: n})
	require.NoError(t, err)
	assert.Equal(t, []string{"csv line 3: missing outdoor temperature or energy"}, n.List())

	_, err = Read(strings.NewReader("1,2\n\n\n1,x\n"), source.Request{HeatingHoursPerDay: 22})
	assert.EqualError(t, err, `line 4 column 2: strconv.ParseFloat: parsing "x": invalid syntax`)
}

func TestReadElectricityCorrection(t *testing.T) {
	tests := []struct {
		name       string
		correction float64
		expected   float64
	}{
		{name: "unset keeps reading", correction: 0, expected: 12},
		{name: "scaled", correction: 1.25, expected: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := source.Request{HeatingHoursPerDay: 22, Internal: true, ElectricityCorrection: tt.correction}
			s, err := Read(strings.NewReader("1,22,20,12\n"), req)
			require.NoError(t, err)
			assert.Equal(t, []float64{tt.expected}, s.Electricity)
			assert.Equal(t, req.CorrectElectricity(12), s.Electricity[0])
		})
	}
}

func TestSamplesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,22\n2,11\n"), 0644))

	s, err := New(path).Samples(context.Background(), source.Request{HeatingHoursPerDay: 22})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5}, s.HeatingPower)

	_, err = New(filepath.Join(t.TempDir(), "missing.csv")).Samples(context.Background(), source.Request{HeatingHoursPerDay: 22})
	assert.Error(t, err)
}
