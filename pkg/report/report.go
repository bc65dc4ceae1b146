package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nergy-se/heatcurve/pkg/analysis"
)

const dateLayout = "Monday January 02 2006"

type Report struct {
	Source  string           `json:"source"`
	// Start is nil when the analysis runs from the first sample.
	Start   *time.Time       `json:"start,omitempty"`
	End     time.Time        `json:"end"`
	File    string           `json:"file,omitempty"`
	Gas     bool             `json:"gas"`
	Result  *analysis.Result `json:"result"`
	Notices []string         `json:"notices,omitempty"`
}

func Write(w io.Writer, format string, rep Report) error {
	switch strings.ToLower(format) {
	case "json":
		return JSON(w, rep)
	case "", "text":
		return Text(w, rep)
	}
	return fmt.Errorf("unknown report format %q", format)
}

func JSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func (rep Report) title() string {
	kind := "power meter based"
	if rep.Gas {
		kind = "gas based"
	}
	return fmt.Sprintf("Heating power vs outdoor temperature (%s)", kind)
}

func (rep Report) analysed() string {
	if rep.File != "" {
		return "Analysed file: " + rep.File
	}
	start := "first sample"
	if rep.Start != nil {
		start = rep.Start.Format(dateLayout)
	}
	return fmt.Sprintf("Analysed: %s - %s (%s)", start, rep.End.Format(dateLayout), rep.Source)
}

func Text(w io.Writer, rep Report) error {
	r := rep.Result
	p := r.Params
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, rep.title())
	fmt.Fprintln(tw, rep.analysed())
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Used settings:")
	fmt.Fprintf(tw, "  Hours / day reserved for heating:\t%g\n", p.HeatingHoursPerDay)
	if r.Internal != nil {
		fmt.Fprintf(tw, "  Heat from people per day:\t%g kWh\n", p.PeopleHeatPerDay)
	}
	fmt.Fprintf(tw, "  Design temperature:\t%g C\n", p.DesignTemperature)
	fmt.Fprintf(tw, "  Climate:\t%s\n", r.Climate)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Results:")
	fmt.Fprintf(tw, "  Fitting function:\tPower = %g * temperature + %g  (r=%g, n=%d)\n",
		round(r.Curve.Gain, 5), round(r.Curve.Offset, 3), round(r.Curve.Correlation, 3), r.Curve.Samples)
	fmt.Fprintf(tw, "  Heating required until outdoor temperature:\t%.2f C\n", r.BalanceTemperature)
	fmt.Fprintf(tw, "  Heating power required @ %g C:\t%.2f kW\n", round(r.DesignTemperature, 2), r.DesignPower)
	fmt.Fprintf(tw, "  Heating power required @ %g C:\t%.2f kW\n", p.LowestTemperature, r.LowestPower)
	fmt.Fprintf(tw, "  Supplemental power required below %g C:\t%.2f kW\n", round(r.DesignTemperature, 2), r.SupplementalPower)
	fmt.Fprintf(tw, "  Days / year supplemental power required:\t%.1f\n", r.SupplementalDays)
	fmt.Fprintf(tw, "  Supplemental energy / year:\t%.2f kWh\n", r.SupplementalEnergy)
	fmt.Fprintf(tw, "  Supplemental energy cost / year:\t%.2f (at %g / kWh)\n", r.SupplementalCost, p.CostPerKWh)
	fmt.Fprintf(tw, "  Estimated year total energy for heating:\t%g MWh\n", float64(int(r.YearlyEnergy))/1000.0)
	fmt.Fprintf(tw, "  Largest share:\t%d kWh @ %g C\n", int(r.Peak.Energy), r.Peak.Temperature)

	if in := r.Internal; in != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "  Average indoor temperature:\t%.1f C\n", in.AverageIndoor)
		fmt.Fprintf(tw, "  Estimated average additional heating power:\t%.3f kW\n", math.Abs(in.PowerAtIndoor))
		fmt.Fprintf(tw, "    internal heat from electricity and people:\t%.3f kW\n", math.Abs(in.InternalPower))
		fmt.Fprintf(tw, "    external heat from sun:\t%.3f kW\n", math.Abs(in.ExternalPower))
	}

	if len(rep.Notices) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Notices:")
		for _, n := range rep.Notices {
			fmt.Fprintf(tw, "  - %s\n", n)
		}
	}
	return tw.Flush()
}
