package climate

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	MinTemperature = -30.0
	MaxTemperature = 30.0
	BinWidth       = 0.5

	Default = "recent"
)

// Distribution is the yearly distribution of daily mean outdoor temperatures.
type Distribution struct {
	Name string
	days []float64
}

func Lookup(name string) (*Distribution, error) {
	if name == "" {
		name = Default
	}
	days, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown climate %q, valid are %v", name, Names())
	}
	return &Distribution{Name: name, days: days}, nil
}

func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Distribution) Len() int {
	return len(d.days)
}

// Temperature returns the temperature of bin i.
func (d *Distribution) Temperature(i int) float64 {
	return MinTemperature + float64(i)*BinWidth
}

// Days returns the days per year in bin i.
func (d *Distribution) Days(i int) float64 {
	return d.days[i]
}

func (d *Distribution) Total() float64 {
	return floats.Sum(d.days)
}

// DaysBelow returns the days per year with a daily mean at or below t.
// The count of a bin is reached at its temperature and grows linearly from
// the previous bin.
func (d *Distribution) DaysBelow(t float64) float64 {
	pos := (t - MinTemperature) / BinWidth
	j := int(math.Floor(pos))
	frac := pos - float64(j)

	if j < -1 {
		return 0
	}
	if j >= len(d.days)-1 {
		return d.Total()
	}

	below := 0.0
	if j >= 0 {
		below = floats.Sum(d.days[:j+1])
	}
	return below + frac*d.days[j+1]
}
