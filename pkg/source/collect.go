package source

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Collector builds Samples from a Fetcher backed by a home automation server.
type Collector struct {
	fetcher Fetcher
}

func NewCollector(f Fetcher) *Collector {
	return &Collector{fetcher: f}
}

func (c *Collector) Samples(ctx context.Context, req Request) (*Samples, error) {
	var outdoor, energy, indoor, electricity []Reading

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		outdoor, err = c.fetch(ctx, OutdoorTemperature, req.Window)
		return err
	})
	g.Go(func() error {
		if !req.Gas.Enabled {
			var err error
			energy, err = c.fetch(ctx, HeatingEnergy, req.Window)
			return err
		}
		gas, err := c.fetch(ctx, GasVolume, req.Window)
		if err != nil {
			return err
		}
		energy = make([]Reading, len(gas))
		for i, r := range gas {
			energy[i] = Reading{Date: r.Date, Value: req.Gas.Energy(r.Value)}
		}
		return nil
	})
	if req.Internal {
		g.Go(func() (err error) {
			indoor, err = c.fetch(ctx, IndoorTemperature, req.Window)
			return err
		})
		g.Go(func() error {
			raw, err := c.fetch(ctx, Electricity, req.Window)
			if err != nil {
				return err
			}
			electricity = make([]Reading, len(raw))
			for i, r := range raw {
				electricity[i] = Reading{Date: r.Date, Value: req.CorrectElectricity(r.Value)}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := Merge(req, outdoor, energy, indoor, electricity)
	if len(s.Outdoor) == 0 {
		return nil, ErrNoSamples
	}
	if req.Internal && (len(s.Indoor) == 0 || len(s.Electricity) == 0) {
		return nil, fmt.Errorf("indoor temperature or electricity: %w", ErrNoSamples)
	}
	return s, nil
}

func (c *Collector) fetch(ctx context.Context, series Series, window Window) ([]Reading, error) {
	readings, err := c.fetcher.Fetch(ctx, series, window)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", series, err)
	}
	logrus.WithFields(logrus.Fields{
		"series":   series,
		"readings": len(readings),
	}).Debug("source: fetched")
	return readings, nil
}
