package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nergy-se/heatcurve/pkg/analysis"
	"github.com/nergy-se/heatcurve/pkg/chart"
	"github.com/nergy-se/heatcurve/pkg/climate"
	"github.com/nergy-se/heatcurve/pkg/config"
	"github.com/nergy-se/heatcurve/pkg/fit"
	"github.com/nergy-se/heatcurve/pkg/notice"
	"github.com/nergy-se/heatcurve/pkg/report"
	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/nergy-se/heatcurve/pkg/source/csvfile"
	"github.com/nergy-se/heatcurve/pkg/source/domoticz"
	"github.com/nergy-se/heatcurve/pkg/source/graphite"
	"github.com/nergy-se/heatcurve/pkg/source/httpget"
	"github.com/sirupsen/logrus"
)

type App struct {
	config  *config.Config
	notices *notice.Notices

	// Out receives the report. Defaults to stdout.
	Out io.Writer
}

func New(config *config.Config) *App {
	return &App{
		config:  config,
		notices: &notice.Notices{},
		Out:     os.Stdout,
	}
}

// Run collects the samples, fits the heating curve and writes the report.
func (a *App) Run(ctx context.Context) (*analysis.Result, error) {
	start, end, err := a.config.Window()
	if err != nil {
		return nil, err
	}
	req := a.request(source.Window{Start: start, End: end})

	provider, err := a.provider()
	if err != nil {
		return nil, err
	}

	samples, err := provider.Samples(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error collecting samples: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"source":  a.config.Source,
		"samples": len(samples.Outdoor),
		"days":    len(samples.Days),
	}).Info("collected samples")

	curve, err := fit.Line(samples.Outdoor, samples.HeatingPower)
	if err != nil {
		return nil, fmt.Errorf("error fitting heating curve: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"gain":        curve.Gain,
		"offset":      curve.Offset,
		"correlation": curve.Correlation,
	}).Info("fitted heating curve")

	dist, err := climate.Lookup(a.config.Climate)
	if err != nil {
		return nil, err
	}

	result, err := analysis.Analyse(curve, samples, dist, analysis.Params{
		DesignTemperature:  a.config.DesignTemperature,
		LowestTemperature:  a.config.LowestTemperature,
		HeatingHoursPerDay: a.config.HeatingHoursPerDay,
		CostPerKWh:         a.config.CostPerKWh,
		PeopleHeatPerDay:   a.config.Internal.PeopleHeatPerDay,
	}, a.notices)
	if err != nil {
		return nil, err
	}

	if a.config.Plot != "" {
		err = chart.Save(a.config.Plot, result, samples, a.config.PlotWidth, a.config.PlotHeight)
		if err != nil {
			return nil, fmt.Errorf("error saving plot: %w", err)
		}
		logrus.Infof("saved plot to %s", a.config.Plot)
	}

	rep := report.Report{
		Source:  a.config.Source,
		End:     end,
		Gas:     a.config.Gas.Enabled,
		Result:  result,
		Notices: a.notices.List(),
	}
	if !start.IsZero() {
		rep.Start = &start
	}
	if a.config.Source == config.SourceCSV {
		rep.File = a.config.CSV.File
	}
	return result, report.Write(a.Out, a.config.Format, rep)
}

func (a *App) request(window source.Window) source.Request {
	return source.Request{
		Window:             window,
		HeatingHoursPerDay: a.config.HeatingHoursPerDay,
		Gas: source.GasConversion{
			Enabled:                    a.config.Gas.Enabled,
			EnergyPerCubicMeter:        a.config.Gas.EnergyPerCubicMeter,
			DailyNonHeatingCubicMeters: a.config.Gas.DailyNonHeatingCubicMeters,
		},
		Internal:              a.config.Internal.Enabled,
		ElectricityCorrection: a.config.Internal.ElectricityCorrection,
		Notices:               a.notices,
	}
}

func (a *App) provider() (source.Provider, error) {
	switch a.config.Source {
	case config.SourceDomoticz:
		client := httpget.New(a.config.Timeout, a.config.Retries, a.config.Domoticz.Insecure)
		return source.NewCollector(domoticz.New(a.config.Domoticz, client)), nil
	case config.SourceGraphite:
		client := httpget.New(a.config.Timeout, a.config.Retries, false)
		return source.NewCollector(graphite.New(a.config.Graphite, client)), nil
	case config.SourceCSV:
		return csvfile.New(a.config.CSV.File), nil
	}
	return nil, fmt.Errorf("unknown source %q", a.config.Source)
}
