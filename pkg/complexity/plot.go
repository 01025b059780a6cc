package complexity

import (
	"fmt"
	"image/color"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotOptions controls [Plot] output.
type PlotOptions struct {
	Title  string    // chart title; defaults to "n vs. T"
	Width  vg.Length // defaults to 8in
	Height vg.Length // defaults to 6in
	Fit    bool      // overlay the least-squares n·log2(n) curve
}

var (
	sampleColor = color.RGBA{R: 65, G: 105, B: 225, A: 255} // royal blue
	fitColor    = color.RGBA{R: 220, G: 80, B: 60, A: 255}
)

// supportedPlotFormats maps file extensions accepted by gonum/plot.
var supportedPlotFormats = map[string]bool{
	".pdf": true, ".png": true, ".svg": true, ".jpg": true, ".jpeg": true, ".eps": true, ".tif": true, ".tiff": true,
}

// NewPlot builds a line chart of T against n, sorted by n.
func NewPlot(samples []Sample, opts PlotOptions) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("complexity: no samples to plot")
	}
	sorted := slices.Clone(samples)
	slices.SortStableFunc(sorted, func(a, b Sample) int { return a.N - b.N })

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "n vs. T"
	}
	p.X.Label.Text = "n"
	p.Y.Label.Text = "T"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(sorted))
	for i, s := range sorted {
		pts[i] = plotter.XY{X: float64(s.N), Y: float64(s.T)}
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.Color = sampleColor
	line.Width = vg.Points(2)
	scatter.Color = sampleColor
	scatter.Radius = vg.Points(2.5)
	p.Add(line, scatter)
	p.Legend.Add("T vs. n", line, scatter)
	p.Legend.Top = true
	p.Legend.Left = true

	if opts.Fit {
		if m, err := Fit(sorted); err == nil {
			fn := plotter.NewFunction(m.At)
			fn.Color = fitColor
			fn.Width = vg.Points(1)
			fn.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			fn.XMin = float64(sorted[0].N)
			fn.XMax = float64(sorted[len(sorted)-1].N)
			p.Add(fn)
			p.Legend.Add(fmt.Sprintf("%.2f·n·log2(n) %+.1f", m.A, m.B), fn)
		}
	}
	return p, nil
}

// Plot renders samples to path. The image format follows the file
// extension (.pdf, .png, .svg, ...).
func Plot(samples []Sample, path string, opts PlotOptions) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedPlotFormats[ext] {
		return fmt.Errorf("complexity: unsupported plot format %q", ext)
	}
	p, err := NewPlot(samples, opts)
	if err != nil {
		return err
	}
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
