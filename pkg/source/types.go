package source

import (
	"context"
	"errors"
	"time"

	"github.com/nergy-se/heatcurve/pkg/notice"
)

var ErrNoSamples = errors.New("no samples in analysis window")

type Series string

var (
	OutdoorTemperature = Series("outdoorTemperature")
	IndoorTemperature  = Series("indoorTemperature")
	HeatingEnergy      = Series("heatingEnergy")
	GasVolume          = Series("gasVolume")
	Electricity        = Series("electricity")
)

// Window is inclusive on both ends. A zero Start or End is unbounded.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(day time.Time) bool {
	day = Truncate(day)
	if !w.Start.IsZero() && day.Before(Truncate(w.Start)) {
		return false
	}
	if !w.End.IsZero() && day.After(Truncate(w.End)) {
		return false
	}
	return true
}

// Truncate returns local midnight of t.
func Truncate(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Reading is one daily value. Temperatures are the daily mean in degC,
// energies and volumes the daily consumption.
type Reading struct {
	Date  time.Time
	Value float64
}

// Fetcher fetches one series of daily readings from a home automation server.
type Fetcher interface {
	Fetch(ctx context.Context, series Series, window Window) ([]Reading, error)
}

type Provider interface {
	Samples(ctx context.Context, req Request) (*Samples, error)
}

type GasConversion struct {
	Enabled                    bool
	EnergyPerCubicMeter        float64
	DailyNonHeatingCubicMeters float64
}

// Energy returns the heating energy in kWh for a daily gas volume in m3.
func (g GasConversion) Energy(m3 float64) float64 {
	return (m3 - g.DailyNonHeatingCubicMeters) * g.EnergyPerCubicMeter
}

type Request struct {
	Window             Window
	HeatingHoursPerDay float64
	Gas                GasConversion

	// Internal also collects indoor temperature and electricity.
	Internal              bool
	ElectricityCorrection float64

	Notices *notice.Notices
}

// CorrectElectricity scales a daily electricity reading. A zero correction leaves it as is.
func (r Request) CorrectElectricity(v float64) float64 {
	if r.ElectricityCorrection == 0 {
		return v
	}
	return v * r.ElectricityCorrection
}

func (r Request) notef(format string, args ...interface{}) {
	if r.Notices != nil {
		r.Notices.Addf(format, args...)
	}
}

type Day struct {
	Date        time.Time `json:"date"`
	Outdoor     *float64  `json:"outdoor,omitempty"`
	Indoor      *float64  `json:"indoor,omitempty"`
	Energy      *float64  `json:"energy,omitempty"`
	Electricity *float64  `json:"electricity,omitempty"`
}

// Samples are the aligned lists used by the fit. HeatingPower[i] belongs to Outdoor[i].
// Indoor and Electricity are independent of the heating lists.
type Samples struct {
	Days         []Day
	Outdoor      []float64
	HeatingPower []float64
	Indoor       []float64
	Electricity  []float64
}
