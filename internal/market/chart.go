package market

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/wonny/sentiq/internal/contracts"
)

var (
	colorClose  = color.RGBA{R: 31, G: 119, B: 180, A: 255} // blue
	colorSMA    = color.RGBA{R: 255, G: 127, B: 14, A: 255} // orange
	colorRSI    = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	colorSignal = color.RGBA{R: 214, G: 39, B: 40, A: 255} // red
	colorHist   = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	colorGuide  = color.RGBA{R: 120, G: 120, B: 120, A: 160}
)

// Chart renders the three-panel indicator chart (close+SMA, RSI, MACD) as a
// PNG. Panels share the x axis (days as unix time).
// 플롯은 부수 효과일 뿐: 수치 리포트가 계약이고 차트는 진단용
func Chart(path, ticker string, bars []contracts.PriceBar, set contracts.IndicatorSet) error {
	if len(bars) == 0 {
		return fmt.Errorf("no bars to chart for %s", ticker)
	}

	pricePanel, err := pricePanel(ticker, bars, set)
	if err != nil {
		return err
	}
	rsiPanel, err := rsiPanel(bars, set)
	if err != nil {
		return err
	}
	macdPanel, err := macdPanel(bars, set)
	if err != nil {
		return err
	}

	rows := [][]*plot.Plot{{pricePanel}, {rsiPanel}, {macdPanel}}

	img := vgimg.New(9*vg.Inch, 10*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 3, Cols: 1, PadY: vg.Millimeter * 3}

	canvases := plot.Align(rows, tiles, dc)
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory %s: %w", dir, err)
		}
	}
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file %s: %w", path, err)
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	return nil
}

func newTimePanel(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func pricePanel(ticker string, bars []contracts.PriceBar, set contracts.IndicatorSet) (*plot.Plot, error) {
	p := newTimePanel(fmt.Sprintf("%s Close with SMA(%d)", ticker, smaPeriod), "Price")

	closeLine, err := seriesLine(bars, closeSeries(bars), 0, colorClose)
	if err != nil {
		return nil, err
	}
	p.Add(closeLine)
	p.Legend.Add("Close", closeLine)

	if set.SMA20 != nil {
		smaLine, err := seriesLine(bars, set.SMA20, contracts.SMA20Lookback, colorSMA)
		if err != nil {
			return nil, err
		}
		smaLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(smaLine)
		p.Legend.Add(fmt.Sprintf("SMA(%d)", smaPeriod), smaLine)
	}

	p.Legend.Top = true
	return p, nil
}

func rsiPanel(bars []contracts.PriceBar, set contracts.IndicatorSet) (*plot.Plot, error) {
	p := newTimePanel(fmt.Sprintf("RSI(%d)", rsiPeriod), "RSI")
	p.Y.Min, p.Y.Max = 0, 100

	if set.RSI14 != nil {
		rsiLine, err := seriesLine(bars, set.RSI14, contracts.RSI14Lookback, colorRSI)
		if err != nil {
			return nil, err
		}
		p.Add(rsiLine)
	}

	// overbought / oversold guides
	for _, level := range []float64{30, 70} {
		guide, err := guideLine(bars, level)
		if err != nil {
			return nil, err
		}
		p.Add(guide)
	}

	return p, nil
}

func macdPanel(bars []contracts.PriceBar, set contracts.IndicatorSet) (*plot.Plot, error) {
	p := newTimePanel(fmt.Sprintf("MACD(%d,%d,%d)", macdFast, macdSlow, macdSignalSpan), "MACD")

	if set.MACD == nil {
		return p, nil
	}

	macdLine, err := seriesLine(bars, set.MACD, contracts.MACDLookback, colorClose)
	if err != nil {
		return nil, err
	}
	p.Add(macdLine)
	p.Legend.Add("MACD", macdLine)

	signalLine, err := seriesLine(bars, set.MACDSignal, contracts.MACDLookback, colorSignal)
	if err != nil {
		return nil, err
	}
	p.Add(signalLine)
	p.Legend.Add("Signal", signalLine)

	histLine, err := seriesLine(bars, set.MACDHist, contracts.MACDLookback, colorHist)
	if err != nil {
		return nil, err
	}
	histLine.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(histLine)
	p.Legend.Add("Histogram", histLine)

	p.Legend.Top = true
	return p, nil
}

func closeSeries(bars []contracts.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}
	return closes
}

// seriesLine builds a line over the series skipping the warm-up prefix
func seriesLine(bars []contracts.PriceBar, series []float64, lookback int, c color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, 0, len(series))
	for i := lookback; i < len(series) && i < len(bars); i++ {
		pts = append(pts, plotter.XY{
			X: float64(bars[i].Date.Unix()),
			Y: series[i],
		})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.Color = c
	return line, nil
}

func guideLine(bars []contracts.PriceBar, level float64) (*plotter.Line, error) {
	pts := plotter.XYs{
		{X: float64(bars[0].Date.Unix()), Y: level},
		{X: float64(bars[len(bars)-1].Date.Unix()), Y: level},
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build guide line: %w", err)
	}
	line.Color = colorGuide
	line.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	return line, nil
}
