// Package composition charts the asset weights of a single portfolio.
package composition

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/aristath/sentinel-analysis/internal/modules/charts"
	"github.com/aristath/sentinel-analysis/internal/modules/results"
	"github.com/rs/zerolog"
)

const (
	// OutputFile is the chart written into the results directory
	OutputFile = "best_portfolio_weights.png"

	labelThresholdPct = 5.0
	topN              = 5
)

// WeightedHolding is a holding with its weight expressed in percent
type WeightedHolding struct {
	Ticker  string
	Percent float64
}

// ChartRenderer is the subset of the chart service the plotter needs
type ChartRenderer interface {
	RenderBarChart(spec charts.BarSpec, path string) error
}

// Plotter renders the composition chart and prints the largest holdings
type Plotter struct {
	dir      string
	renderer ChartRenderer
	out      io.Writer
	log      zerolog.Logger
}

// NewPlotter creates a plotter writing its chart into dir
func NewPlotter(dir string, renderer ChartRenderer, out io.Writer, log zerolog.Logger) *Plotter {
	return &Plotter{
		dir:      dir,
		renderer: renderer,
		out:      out,
		log:      log.With().Str("component", "composition").Logger(),
	}
}

// Weights converts weight fractions to percentages, largest first.
// Holdings with equal weights keep their original order.
func Weights(result *results.PortfolioResult) []WeightedHolding {
	weights := make([]WeightedHolding, len(result.Stocks))
	for i, s := range result.Stocks {
		weights[i] = WeightedHolding{Ticker: s.Ticker, Percent: s.Weight * 100}
	}
	sort.SliceStable(weights, func(i, j int) bool {
		return weights[i].Percent > weights[j].Percent
	})
	return weights
}

// Plot charts the composition of result. A nil result only prints a notice.
func (p *Plotter) Plot(result *results.PortfolioResult) error {
	if result == nil {
		fmt.Fprintln(p.out, "No portfolio data available")
		return nil
	}

	weights := Weights(result)

	bars := make([]charts.Bar, len(weights))
	for i, w := range weights {
		bars[i] = charts.Bar{Label: w.Ticker, Value: w.Percent}
		if w.Percent >= labelThresholdPct {
			bars[i].Annotation = fmt.Sprintf("%.1f%%", w.Percent)
		}
	}

	if len(bars) > 0 {
		path := filepath.Join(p.dir, OutputFile)
		err := p.renderer.RenderBarChart(charts.BarSpec{
			Title:         fmt.Sprintf("Optimal Portfolio Composition - Sharpe Ratio: %.4f", result.SharpeRatio),
			XLabel:        "Stock Ticker",
			YLabel:        "Weight (%)",
			Bars:          bars,
			AnnotationPad: 0.5,
			RotateTicks:   true,
			Size:          charts.WideFigure,
		}, path)
		if err != nil {
			return fmt.Errorf("failed to render portfolio composition: %w", err)
		}
		p.log.Info().Str("path", path).Int("holdings", len(bars)).Msg("Composition chart saved")
	} else {
		p.log.Warn().Msg("Best portfolio has no holdings, skipping composition chart")
	}

	fmt.Fprintln(p.out, "\nTop 5 stocks in optimal portfolio:")
	for i, w := range weights {
		if i == topN {
			break
		}
		fmt.Fprintf(p.out, "%s: %.2f%%\n", w.Ticker, w.Percent)
	}

	return nil
}
