package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineExact(t *testing.T) {
	temperature := []float64{-5, 0, 5, 10, 15}
	power := make([]float64, len(temperature))
	for i, tt := range temperature {
		power[i] = -0.2*tt + 3.0
	}

	c, err := Line(temperature, power)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, c.Gain, 1e-9)
	assert.InDelta(t, 3.0, c.Offset, 1e-9)
	assert.InDelta(t, 1.0, c.Correlation, 1e-9)
	assert.Equal(t, 5, c.Samples)
	assert.InDelta(t, 15.0, c.BalanceTemperature(), 1e-9)
	assert.InDelta(t, 4.4, c.Power(-7), 1e-9)
}

func TestLineNoisy(t *testing.T) {
	temperature := []float64{0, 1, 2, 3}
	power := []float64{1, 3, 2, 4}

	c, err := Line(temperature, power)
	require.NoError(t, err)
	// least squares: gain 0.8, offset 1.3
	assert.InDelta(t, 0.8, c.Gain, 1e-9)
	assert.InDelta(t, 1.3, c.Offset, 1e-9)
	assert.InDelta(t, 0.8, c.Correlation, 1e-9)
}

func TestLineErrors(t *testing.T) {
	var tests = []struct {
		name        string
		temperature []float64
		power       []float64
		expected    error
	}{
		{name: "empty", expected: ErrTooFewSamples},
		{name: "one sample", temperature: []float64{1}, power: []float64{1}, expected: ErrTooFewSamples},
		{name: "length mismatch", temperature: []float64{1, 2}, power: []float64{1}, expected: ErrTooFewSamples},
		{name: "same temperature", temperature: []float64{3, 3, 3}, power: []float64{1, 2, 3}, expected: ErrDegenerate},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Line(tt.temperature, tt.power)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestBalanceTemperatureFlatCurve(t *testing.T) {
	c := Curve{Gain: 0, Offset: 1}
	assert.True(t, math.IsInf(c.BalanceTemperature(), -1))
}
