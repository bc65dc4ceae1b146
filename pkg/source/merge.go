package source

import (
	"sort"
	"time"
)

type merged struct {
	outdoor, indoor, energy, electricity *float64
}

// Merge aligns the daily series on date. A series missing on a day carries
// its previous value forward. Days before the first value of a series have
// no value for it and do not produce heating samples.
func Merge(req Request, outdoor, energy, indoor, electricity []Reading) *Samples {
	days := make(map[time.Time]*merged)
	get := func(d time.Time) *merged {
		d = Truncate(d)
		m, ok := days[d]
		if !ok {
			m = &merged{}
			days[d] = m
		}
		return m
	}

	for _, r := range outdoor {
		get(r.Date).outdoor = float64Pointer(r.Value)
	}
	for _, r := range energy {
		get(r.Date).energy = float64Pointer(r.Value)
	}
	if req.Internal {
		for _, r := range indoor {
			get(r.Date).indoor = float64Pointer(r.Value)
		}
		for _, r := range electricity {
			get(r.Date).electricity = float64Pointer(r.Value)
		}
	}

	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	s := &Samples{}
	prev := merged{}
	skipped := 0
	for _, d := range dates {
		m := days[d]
		if m.outdoor != nil {
			prev.outdoor = m.outdoor
		}
		if m.energy != nil {
			prev.energy = m.energy
		}
		if m.indoor != nil {
			prev.indoor = m.indoor
		}
		if m.electricity != nil {
			prev.electricity = m.electricity
		}

		s.Days = append(s.Days, Day{
			Date:        d,
			Outdoor:     prev.outdoor,
			Indoor:      prev.indoor,
			Energy:      prev.energy,
			Electricity: prev.electricity,
		})

		if prev.outdoor != nil && prev.energy != nil {
			s.Outdoor = append(s.Outdoor, *prev.outdoor)
			s.HeatingPower = append(s.HeatingPower, *prev.energy/req.HeatingHoursPerDay)
		} else {
			skipped++
		}
		if prev.indoor != nil {
			s.Indoor = append(s.Indoor, *prev.indoor)
		}
		if prev.electricity != nil {
			s.Electricity = append(s.Electricity, *prev.electricity)
		}
	}

	if skipped > 0 {
		req.notef("skipped %d leading days without both outdoor temperature and heating energy", skipped)
	}
	return s
}

func float64Pointer(v float64) *float64 {
	return &v
}
