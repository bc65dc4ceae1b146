package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nergy-se/heatcurve/pkg/source"
	"github.com/sirupsen/logrus"
)

// File reads samples from a headerless csv file with the columns
// outdoor temperature, energy, indoor temperature, electricity.
// Energy is kWh per day, or m3 gas when gas conversion is enabled.
type File struct {
	path string
}

func New(path string) *File {
	return &File{path: path}
}

func (f *File) Samples(ctx context.Context, req source.Request) (*source.Samples, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	s, err := Read(fh, req)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", f.path, err)
	}
	logrus.WithFields(logrus.Fields{
		"file":    f.path,
		"samples": len(s.Outdoor),
	}).Debug("csvfile: read")
	return s, nil
}

func Read(r io.Reader, req source.Request) (*source.Samples, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	s := &source.Samples{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		// blank lines are dropped by the reader, ask it for the real line
		line, _ := reader.FieldPos(0)

		outdoor, okOutdoor, err := cell(row, 0, line)
		if err != nil {
			return nil, err
		}
		energy, okEnergy, err := cell(row, 1, line)
		if err != nil {
			return nil, err
		}
		if okOutdoor && okEnergy {
			if req.Gas.Enabled {
				energy = req.Gas.Energy(energy)
			}
			s.Outdoor = append(s.Outdoor, outdoor)
			s.HeatingPower = append(s.HeatingPower, energy/req.HeatingHoursPerDay)
		} else if req.Notices != nil {
			req.Notices.Addf("csv line %d: missing outdoor temperature or energy", line)
		}

		if !req.Internal {
			continue
		}
		indoor, okIndoor, err := cell(row, 2, line)
		if err != nil {
			return nil, err
		}
		electricity, okElectricity, err := cell(row, 3, line)
		if err != nil {
			return nil, err
		}
		if okIndoor && okElectricity {
			s.Indoor = append(s.Indoor, indoor)
			s.Electricity = append(s.Electricity, req.CorrectElectricity(electricity))
		}
	}

	if len(s.Outdoor) == 0 {
		return nil, source.ErrNoSamples
	}
	if req.Internal && len(s.Indoor) == 0 {
		return nil, fmt.Errorf("indoor temperature or electricity: %w", source.ErrNoSamples)
	}
	return s, nil
}

// cell returns false for a missing or blank column.
func cell(row []string, i, line int) (float64, bool, error) {
	if i >= len(row) {
		return 0, false, nil
	}
	v := strings.TrimSpace(row[i])
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("line %d column %d: %w", line, i+1, err)
	}
	return f, true, nil
}
