package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/koding/multiconfig"
)

const DateLayout = "2006-01-02"

// Source values. Kept untyped since multiconfig only sets plain string fields.
const (
	SourceDomoticz = "domoticz"
	SourceGraphite = "graphite"
	SourceCSV      = "csv"
)

type Config struct {
	ConfigFile string

	Source string `default:"domoticz"`
	Start  string
	End    string

	// DesignTemperature is the outdoor temperature the heat source must still cover on its own.
	DesignTemperature float64 `default:"-7.0"`
	// LowestTemperature is where supplemental power is sized against.
	LowestTemperature  float64 `default:"-15.0"`
	HeatingHoursPerDay float64 `default:"22.0"`
	CostPerKWh         float64 `default:"0.227"`

	Gas      Gas
	Internal Internal
	Domoticz Domoticz
	Graphite Graphite
	CSV      CSV

	Climate    string `default:"recent"`
	Plot       string
	PlotWidth  float64 `default:"8"`
	PlotHeight float64 `default:"12"`
	Format     string  `default:"text"`

	Timeout time.Duration `default:"30s"`
	Retries int           `default:"3"`

	Version  bool
	LogLevel string `default:"info"`
}

// Gas converts a gas meter counter to heating energy.
type Gas struct {
	Enabled bool
	// 31.65 MJ/m3 natural gas without condensation gain.
	EnergyPerCubicMeter float64 `default:"8.791666666666666"`
	// hot water and cooking, 8 m3 a month.
	DailyNonHeatingCubicMeters float64 `default:"0.26666666666666666"`
}

// Internal enables the estimate of internal (electricity, people) and external (sun) heat.
type Internal struct {
	Enabled bool
	// 14 hours a day, 2 adults at 120 W.
	PeopleHeatPerDay      float64 `default:"3.36"`
	ElectricityCorrection float64 `default:"1.0"`
}

type Domoticz struct {
	URL      string
	Username string
	Password string
	Insecure bool
	Range    string `default:"year"`

	OutdoorTemperature string
	IndoorTemperature  string
	HeatingEnergy      string
	Gas                string
	Electricity        string
}

type Graphite struct {
	URL string

	OutdoorTemperature string
	IndoorTemperature  string
	HeatingEnergy      string
	Gas                string
	Electricity        string
}

type CSV struct {
	File string
}

// Load reads defaults, the optional config file, environment and flags.
func Load() (*Config, error) {
	c := &Config{}
	err := multiconfig.New().Load(c)
	if err != nil {
		return nil, err
	}
	if c.ConfigFile == "" {
		return c, nil
	}

	file := c.ConfigFile
	c = &Config{}
	err = multiconfig.NewWithPath(file).Load(c)
	if err != nil {
		return nil, fmt.Errorf("error loading config file %s: %w", file, err)
	}
	c.ConfigFile = file
	return c, nil
}

func (c *Config) Window() (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if c.Start != "" {
		start, err = time.ParseInLocation(DateLayout, c.Start, time.Local)
		if err != nil {
			return start, end, fmt.Errorf("error parsing start date: %w", err)
		}
	}

	if c.End == "" {
		now := time.Now()
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else {
		end, err = time.ParseInLocation(DateLayout, c.End, time.Local)
		if err != nil {
			return start, end, fmt.Errorf("error parsing end date: %w", err)
		}
	}

	if !start.IsZero() && end.Before(start) {
		return start, end, fmt.Errorf("end date %s is before start date %s", end.Format(DateLayout), start.Format(DateLayout))
	}
	return start, end, nil
}

func (c *Config) Validate() error {
	if _, _, err := c.Window(); err != nil {
		return err
	}
	if c.HeatingHoursPerDay <= 0 || c.HeatingHoursPerDay > 24 {
		return fmt.Errorf("heatinghoursperday must be in (0, 24], got %g", c.HeatingHoursPerDay)
	}
	if c.LowestTemperature > c.DesignTemperature {
		return fmt.Errorf("lowesttemperature %g is above designtemperature %g", c.LowestTemperature, c.DesignTemperature)
	}
	if c.Internal.Enabled && c.Internal.ElectricityCorrection <= 0 {
		return fmt.Errorf("internal-electricitycorrection must be positive")
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	switch c.Source {
	case SourceDomoticz:
		if c.Domoticz.URL == "" {
			return fmt.Errorf("domoticz-url is required")
		}
		if c.Domoticz.OutdoorTemperature == "" {
			return fmt.Errorf("domoticz-outdoortemperature is required")
		}
		if c.Gas.Enabled && c.Domoticz.Gas == "" {
			return fmt.Errorf("domoticz-gas is required when gas is enabled")
		}
		if !c.Gas.Enabled && c.Domoticz.HeatingEnergy == "" {
			return fmt.Errorf("domoticz-heatingenergy is required")
		}
		if c.Internal.Enabled && (c.Domoticz.IndoorTemperature == "" || c.Domoticz.Electricity == "") {
			return fmt.Errorf("domoticz-indoortemperature and domoticz-electricity are required when internal is enabled")
		}
	case SourceGraphite:
		if c.Graphite.URL == "" {
			return fmt.Errorf("graphite-url is required")
		}
		if c.Graphite.OutdoorTemperature == "" {
			return fmt.Errorf("graphite-outdoortemperature is required")
		}
		if c.Gas.Enabled && c.Graphite.Gas == "" {
			return fmt.Errorf("graphite-gas is required when gas is enabled")
		}
		if !c.Gas.Enabled && c.Graphite.HeatingEnergy == "" {
			return fmt.Errorf("graphite-heatingenergy is required")
		}
		if c.Internal.Enabled && (c.Graphite.IndoorTemperature == "" || c.Graphite.Electricity == "") {
			return fmt.Errorf("graphite-indoortemperature and graphite-electricity are required when internal is enabled")
		}
	case SourceCSV:
		if c.CSV.File == "" {
			return fmt.Errorf("csv-file is required")
		}
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	return nil
}
