package correlation

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wonny/sentiq/internal/contracts"
)

// ScatterPlot renders daily sentiment vs daily return with a fitted
// regression line. Diagnostic side effect only; requires the same >= 2
// points the report does.
func ScatterPlot(path string, report *contracts.CorrelationReport, pairs []Pair) error {
	if len(pairs) < 2 {
		return contracts.ErrInsufficientData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sentiment vs Stock Returns for %s (Corr: %.2f)", report.Ticker, report.Pearson)
	p.X.Label.Text = "Daily Sentiment Score"
	p.Y.Label.Text = "Daily Stock Return"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(pairs))
	for i, pair := range pairs {
		pts[i] = plotter.XY{X: pair.Sentiment, Y: pair.Return}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 160}
	p.Add(scatter)

	fit, err := regressionLine(pairs)
	if err != nil {
		return err
	}
	p.Add(fit)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create plot directory %s: %w", dir, err)
		}
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

// regressionLine fits y = alpha + beta*x over the pairs
func regressionLine(pairs []Pair) (*plotter.Line, error) {
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	minX, maxX := pairs[0].Sentiment, pairs[0].Sentiment
	for i, p := range pairs {
		xs[i] = p.Sentiment
		ys[i] = p.Return
		if p.Sentiment < minX {
			minX = p.Sentiment
		}
		if p.Sentiment > maxX {
			maxX = p.Sentiment
		}
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	line, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: alpha + beta*minX},
		{X: maxX, Y: alpha + beta*maxX},
	})
	if err != nil {
		return nil, fmt.Errorf("build regression line: %w", err)
	}
	line.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	line.Width = vg.Points(1.5)
	return line, nil
}
