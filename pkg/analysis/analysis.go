package analysis

import (
	"errors"
	"math"

	"github.com/nergy-se/heatcurve/pkg/climate"
	"github.com/nergy-se/heatcurve/pkg/fit"
	"github.com/nergy-se/heatcurve/pkg/notice"
	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

var ErrNoBalancePoint = errors.New("heating power does not decrease with outdoor temperature")

type Params struct {
	DesignTemperature  float64 `json:"designTemperature"`
	LowestTemperature  float64 `json:"lowestTemperature"`
	HeatingHoursPerDay float64 `json:"heatingHoursPerDay"`
	CostPerKWh         float64 `json:"costPerKWh"`
	PeopleHeatPerDay   float64 `json:"peopleHeatPerDay"`
}

// Bin is the yearly heating energy of one temperature bin.
type Bin struct {
	Temperature float64 `json:"temperature"`
	Days        float64 `json:"days"`
	Energy      float64 `json:"energy"`
}

// Internal splits the heat the house gets for free. Powers are negative
// since they reduce the required heating power.
type Internal struct {
	AverageIndoor float64 `json:"averageIndoor"`
	PowerAtIndoor float64 `json:"powerAtIndoor"`
	ElectricPower float64 `json:"electricPower"`
	PeoplePower   float64 `json:"peoplePower"`
	InternalPower float64 `json:"internalPower"`
	ExternalPower float64 `json:"externalPower"`
}

type Result struct {
	Curve   fit.Curve `json:"curve"`
	Params  Params    `json:"params"`
	Climate string    `json:"climate"`

	BalanceTemperature       float64 `json:"balanceTemperature"`
	DesignTemperature        float64 `json:"designTemperature"`
	DesignTemperatureClamped bool    `json:"designTemperatureClamped"`
	DesignPower              float64 `json:"designPower"`
	LowestPower              float64 `json:"lowestPower"`

	SupplementalPower  float64 `json:"supplementalPower"`
	SupplementalDays   float64 `json:"supplementalDays"`
	SupplementalEnergy float64 `json:"supplementalEnergy"`
	SupplementalCost   float64 `json:"supplementalCost"`

	Distribution []Bin   `json:"distribution"`
	YearlyEnergy float64 `json:"yearlyEnergy"`
	Peak         Bin     `json:"peak"`

	Internal *Internal `json:"internal,omitempty"`
}

func Analyse(curve fit.Curve, samples *source.Samples, dist *climate.Distribution, p Params, notices *notice.Notices) (*Result, error) {
	if curve.Gain >= 0 {
		return nil, ErrNoBalancePoint
	}

	r := &Result{
		Curve:              curve,
		Params:             p,
		Climate:            dist.Name,
		BalanceTemperature: curve.BalanceTemperature(),
		DesignTemperature:  p.DesignTemperature,
	}

	// above the balance temperature the curve would give negative power
	if r.BalanceTemperature < r.DesignTemperature {
		r.DesignTemperature = r.BalanceTemperature
		r.DesignTemperatureClamped = true
		if notices != nil {
			notices.Addf("design temperature %.1f C is above the balance temperature, using %.2f C", p.DesignTemperature, r.BalanceTemperature)
		}
	}

	r.DesignPower = curve.Power(r.DesignTemperature)
	r.LowestPower = curve.Power(p.LowestTemperature)
	r.SupplementalPower = math.Max(0, r.LowestPower-r.DesignPower)
	r.SupplementalDays = dist.DaysBelow(r.DesignTemperature)
	// power grows linearly from 0 at the design temperature to SupplementalPower, hence the half.
	r.SupplementalEnergy = r.SupplementalPower * r.SupplementalDays * p.HeatingHoursPerDay * 0.5
	r.SupplementalCost = p.CostPerKWh * r.SupplementalEnergy

	r.Distribution, r.YearlyEnergy, r.Peak = Distribute(curve, dist, p.HeatingHoursPerDay)

	if samples != nil && len(samples.Indoor) > 0 && len(samples.Electricity) > 0 {
		r.Internal = estimateInternal(curve, samples, p)
	}

	logrus.WithFields(logrus.Fields{
		"balance":      r.BalanceTemperature,
		"designPower":  r.DesignPower,
		"supplemental": r.SupplementalPower,
		"days":         r.SupplementalDays,
		"yearly":       r.YearlyEnergy,
	}).Debug("analysis: done")
	return r, nil
}

// Distribute spreads the yearly heating energy over the temperature bins.
func Distribute(curve fit.Curve, dist *climate.Distribution, hours float64) ([]Bin, float64, Bin) {
	balance := curve.BalanceTemperature()
	bins := make([]Bin, dist.Len())
	total := 0.0
	peak := Bin{}
	for i := range bins {
		t := dist.Temperature(i)
		bins[i] = Bin{Temperature: t, Days: dist.Days(i)}
		if t < balance {
			bins[i].Energy = curve.Power(t) * bins[i].Days * hours
		}
		total += bins[i].Energy
		if bins[i].Energy > peak.Energy {
			peak = bins[i]
		}
	}
	return bins, total, peak
}

func estimateInternal(curve fit.Curve, samples *source.Samples, p Params) *Internal {
	in := &Internal{
		AverageIndoor: stat.Mean(samples.Indoor, nil),
		ElectricPower: -stat.Mean(samples.Electricity, nil) / p.HeatingHoursPerDay,
		PeoplePower:   -p.PeopleHeatPerDay / p.HeatingHoursPerDay,
	}
	in.PowerAtIndoor = curve.Power(in.AverageIndoor)
	in.InternalPower = in.ElectricPower + in.PeoplePower
	in.ExternalPower = in.PowerAtIndoor - in.InternalPower
	return in
}
