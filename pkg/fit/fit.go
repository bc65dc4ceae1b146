package fit

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrTooFewSamples = errors.New("need at least two samples of equal length")
	ErrDegenerate    = errors.New("all outdoor temperatures are equal")
)

// Curve is heating power in kW as a straight line of the outdoor temperature.
type Curve struct {
	Gain   float64 `json:"gain"`
	Offset float64 `json:"offset"`
	// Correlation between fitted and measured power.
	Correlation float64 `json:"correlation"`
	Samples     int     `json:"samples"`
}

func (c Curve) Power(temperature float64) float64 {
	return c.Gain*temperature + c.Offset
}

// BalanceTemperature is where the curve crosses zero power.
func (c Curve) BalanceTemperature() float64 {
	return -c.Offset / c.Gain
}

// Line fits power = gain*temperature + offset with ordinary least squares.
func Line(temperature, power []float64) (Curve, error) {
	if len(temperature) < 2 || len(temperature) != len(power) {
		return Curve{}, ErrTooFewSamples
	}
	if stat.Variance(temperature, nil) == 0 {
		return Curve{}, ErrDegenerate
	}

	offset, gain := stat.LinearRegression(temperature, power, nil, false)
	c := Curve{
		Gain:    gain,
		Offset:  offset,
		Samples: len(temperature),
	}

	fitted := make([]float64, len(temperature))
	for i, t := range temperature {
		fitted[i] = c.Power(t)
	}
	c.Correlation = stat.Correlation(fitted, power, nil)
	return c, nil
}
