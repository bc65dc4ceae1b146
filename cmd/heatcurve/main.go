package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nergy-se/heatcurve/pkg/app"
	"github.com/nergy-se/heatcurve/pkg/config"
	"github.com/nergy-se/heatcurve/pkg/version"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM)
	defer stop()
	err := Run(ctx)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	config, err := config.Load()
	if err != nil {
		return err
	}
	if config.Version {
		fmt.Println(version.Version)
		return nil
	}

	lvl, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("error setting logrus loglevel: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.WithField("version", version.Version).Debug("starting heatcurve")

	err = config.Validate()
	if err != nil {
		return err
	}

	_, err = app.New(config).Run(ctx)
	return err
}
