package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/nergy-se/heatcurve/pkg/analysis"
	"github.com/nergy-se/heatcurve/pkg/source"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	MinTemperature = -15.0
	MaxTemperature = 30.0
)

var (
	red   = color.RGBA{R: 220, A: 255}
	blue  = color.RGBA{B: 200, A: 255}
	black = color.RGBA{A: 255}
	green = color.RGBA{G: 140, A: 255}

	dashed = []vg.Length{vg.Points(4), vg.Points(4)}
	dotted = []vg.Length{vg.Points(1), vg.Points(3)}
)

// Save renders the curve and distribution panels as png to path.
func Save(path string, r *analysis.Result, s *source.Samples, width, height float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Render(f, r, s, width, height)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Render writes a png with width and height in inches.
func Render(w io.Writer, r *analysis.Result, s *source.Samples, width, height float64) error {
	curve, err := Curve(r, s)
	if err != nil {
		return err
	}
	dist, err := Distribution(r)
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 8,
	}
	plots := [][]*plot.Plot{{curve}, {dist}}
	canvases := plot.Align(plots, t, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}

func line(xys plotter.XYs, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Dashes = dashes
	return l, nil
}

// Curve plots measured heating power and the fitted line against outdoor temperature.
func Curve(r *analysis.Result, s *source.Samples) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Heating power vs outdoor temperature"
	p.X.Label.Text = "Outdoor temperature [C]"
	p.Y.Label.Text = fmt.Sprintf("Required heating power / %gh [kW]", r.Params.HeatingHoursPerDay)
	p.Add(plotter.NewGrid())

	maxPower := math.Round(r.Curve.Power(MinTemperature)*100)/100 + 1.5
	minPower := 0.0
	if r.Internal != nil {
		minPower = r.Internal.PowerAtIndoor - 1.0
	}
	if s != nil && len(s.Outdoor) > 0 {
		measured := make(plotter.XYs, len(s.Outdoor))
		for i := range s.Outdoor {
			measured[i].X = s.Outdoor[i]
			measured[i].Y = s.HeatingPower[i]
		}
		scatter, err := plotter.NewScatter(measured)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = red
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add("Measured heating power", scatter)
	}

	fitted, err := line(shifted(r, 0), blue, nil)
	if err != nil {
		return nil, err
	}
	p.Add(fitted)
	p.Legend.Add("Fitted heating power", fitted)

	designPower, err := line(plotter.XYs{
		{X: MinTemperature, Y: r.DesignPower},
		{X: r.DesignTemperature, Y: r.DesignPower},
	}, black, dashed)
	if err != nil {
		return nil, err
	}
	designTemperature, err := line(plotter.XYs{
		{X: r.DesignTemperature, Y: 0},
		{X: r.DesignTemperature, Y: r.DesignPower},
	}, black, dashed)
	if err != nil {
		return nil, err
	}
	zero, err := line(plotter.XYs{{X: MinTemperature, Y: 0}, {X: MaxTemperature, Y: 0}}, black, nil)
	if err != nil {
		return nil, err
	}
	p.Add(designPower, designTemperature, zero)

	labels := plotter.XYLabels{
		XYs: plotter.XYs{
			{X: MinTemperature + 0.1, Y: r.DesignPower + 0.1},
			{X: r.DesignTemperature + 0.1, Y: 0.3},
		},
		Labels: []string{
			fmt.Sprintf("%.2f kW", r.DesignPower),
			fmt.Sprintf("%g C", math.Round(r.DesignTemperature*100)/100),
		},
	}

	if r.Internal != nil {
		internal, err := line(shifted(r, -r.Internal.InternalPower), blue, dashed)
		if err != nil {
			return nil, err
		}
		external, err := line(shifted(r, -r.Internal.InternalPower-r.Internal.ExternalPower), blue, dotted)
		if err != nil {
			return nil, err
		}
		indoor, err := line(plotter.XYs{
			{X: r.Internal.AverageIndoor, Y: 2.0},
			{X: r.Internal.AverageIndoor, Y: r.Internal.PowerAtIndoor},
		}, black, dashed)
		if err != nil {
			return nil, err
		}
		p.Add(internal, external, indoor)
		p.Legend.Add("+ internal power", internal)
		p.Legend.Add("+ internal & external power", external)

		labels.XYs = append(labels.XYs, plotter.XY{X: r.Internal.AverageIndoor - 5.0, Y: 2.2})
		labels.Labels = append(labels.Labels, fmt.Sprintf("Average indoor %.1f C", r.Internal.AverageIndoor))
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)

	// fixed axes, adding plotters widens them to the data
	p.X.Min, p.X.Max = MinTemperature, MaxTemperature
	p.Y.Min, p.Y.Max = minPower, maxPower
	p.Legend.Top = true
	return p, nil
}

// shifted returns the fitted line over the plot range with power reduced by d.
func shifted(r *analysis.Result, d float64) plotter.XYs {
	return plotter.XYs{
		{X: MinTemperature, Y: r.Curve.Power(MinTemperature) - d},
		{X: MaxTemperature, Y: r.Curve.Power(MaxTemperature) - d},
	}
}

// Distribution plots the yearly heating energy per temperature bin, scaled
// so its peak matches the peak of the temperature day distribution.
func Distribution(r *analysis.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Estimated heating energy distribution (%s)", r.Climate)
	p.X.Label.Text = "Outdoor temperature [C]"
	p.Add(plotter.NewGrid())

	days := make([]float64, len(r.Distribution))
	energy := make([]float64, len(r.Distribution))
	for i, b := range r.Distribution {
		days[i] = b.Days
		energy[i] = b.Energy
	}
	scale := 1.0
	if len(energy) > 0 && floats.Max(energy) > 0 {
		scale = floats.Max(days) / floats.Max(energy)
	}

	scaled := make(plotter.XYs, len(r.Distribution))
	daysXY := make(plotter.XYs, len(r.Distribution))
	for i, b := range r.Distribution {
		scaled[i] = plotter.XY{X: b.Temperature, Y: b.Energy * scale}
		daysXY[i] = plotter.XY{X: b.Temperature, Y: b.Days}
	}

	energyLine, err := line(scaled, blue, nil)
	if err != nil {
		return nil, err
	}
	daysLine, err := line(daysXY, green, dashed)
	if err != nil {
		return nil, err
	}
	p.Add(energyLine, daysLine)
	p.Legend.Add("Scaled estimated heating energy", energyLine)
	p.Legend.Add("Days per year at daily mean temperature", daysLine)
	p.Legend.Top = true
	p.Legend.Left = true

	peakY := r.Peak.Energy * scale
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: r.Peak.Temperature - 5, Y: peakY + 0.3}},
		Labels: []string{fmt.Sprintf("Max=%d kWh @%gC,\nEstimated year total=%d kWh",
			int(r.Peak.Energy), r.Peak.Temperature, int(r.YearlyEnergy))},
	})
	if err != nil {
		return nil, err
	}
	p.Add(l)

	p.X.Min, p.X.Max = MinTemperature, MaxTemperature
	p.Y.Min = 0
	if peakY > 0 {
		p.Y.Max = 1.65 * peakY
	}
	return p, nil
}
