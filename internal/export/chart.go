package export

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

// barChartPNG renders a labeled bar chart into PNG bytes so it can be
// embedded into a workbook with AddPictureFromBytes.
func barChartPNG(title, yLabel string, labels []string, values []float64) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	p.Add(bars)
	p.Add(plotter.NewGrid())
	p.NominalX(labels...)

	return renderPNG(p)
}

// stackedSharesPNG renders the normalized genre distribution per
// region: one stacked bar per region, segments summing to 100%.
func stackedSharesPNG(title string, ct *analysis.Crosstab) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Share (%)"
	p.Y.Max = 100
	p.Legend.Top = true

	var prev *plotter.BarChart
	for i, genre := range ct.Genres {
		vals := make(plotter.Values, len(ct.Regions))
		for j, region := range ct.Regions {
			vals[j] = ct.RowShares(region)[genre]
		}
		bars, err := plotter.NewBarChart(vals, vg.Points(30))
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(genre, bars)
		prev = bars
	}
	p.NominalX(ct.Regions...)
	return renderPNG(p)
}

func renderPNG(p *plot.Plot) ([]byte, error) {
	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
