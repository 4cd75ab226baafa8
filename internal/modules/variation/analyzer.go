// Package variation compares Sharpe ratios across optimizer runs.
package variation

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/aristath/sentinel-analysis/internal/modules/charts"
	"github.com/aristath/sentinel-analysis/internal/modules/results"
	"github.com/aristath/sentinel-analysis/internal/utils"
	"github.com/aristath/sentinel-analysis/pkg/formulas"
	"github.com/rs/zerolog"
)

// OutputFile is the chart written into the results directory
const OutputFile = "sharpe_ratio_comparison.png"

// Run is the per-file row the comparison is built from
type Run struct {
	File          string
	ExecutionMode string
	SharpeRatio   float64
	TimeMs        float64
	Timestamp     string
}

// Report holds the runs and their Sharpe ratio statistics per execution mode
type Report struct {
	Runs  []Run
	Modes []formulas.GroupSummary
}

// ChartRenderer is the subset of the chart service the analyzer needs
type ChartRenderer interface {
	RenderBoxPlot(spec charts.BoxSpec, path string) error
}

// Analyzer reports how Sharpe ratios vary between runs and execution modes
type Analyzer struct {
	dir      string
	renderer ChartRenderer
	out      io.Writer
	log      zerolog.Logger
}

// NewAnalyzer creates an analyzer over the result files in dir
func NewAnalyzer(dir string, renderer ChartRenderer, out io.Writer, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		dir:      dir,
		renderer: renderer,
		out:      out,
		log:      log.With().Str("component", "variation").Logger(),
	}
}

// LoadRuns reads every result file in dir into a Run, in file name order
func LoadRuns(dir string) ([]Run, error) {
	files, err := results.ListResultFiles(dir)
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(files))
	for _, file := range files {
		r, err := results.LoadResult(file)
		if err != nil {
			return nil, err
		}
		runs = append(runs, Run{
			File:          filepath.Base(file),
			ExecutionMode: r.ExecutionMode,
			SharpeRatio:   r.SharpeRatio,
			TimeMs:        r.TimeElapsedMs,
			Timestamp:     r.Timestamp,
		})
	}
	return runs, nil
}

// Analyze charts and prints the Sharpe ratio distribution per execution mode.
// It returns a nil report without error when there are no result files.
func (a *Analyzer) Analyze() (*Report, error) {
	runs, err := LoadRuns(a.dir)
	if err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No portfolio data found")
		return nil, nil
	}

	groups := make(map[string][]float64)
	for _, r := range runs {
		groups[r.ExecutionMode] = append(groups[r.ExecutionMode], r.SharpeRatio)
	}
	report := &Report{
		Runs:  runs,
		Modes: formulas.GroupSummaries(groups),
	}

	boxes := make([]charts.BoxGroup, 0, len(report.Modes))
	for _, m := range report.Modes {
		boxes = append(boxes, charts.BoxGroup{Label: m.Key, Values: groups[m.Key]})
	}

	path := filepath.Join(a.dir, OutputFile)
	err = a.renderer.RenderBoxPlot(charts.BoxSpec{
		Title:  "Sharpe Ratio Comparison: Parallel vs Sequential",
		XLabel: "Execution Mode",
		YLabel: "Sharpe Ratio",
		Groups: boxes,
		Size:   charts.StandardFigure,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to render sharpe ratio comparison: %w", err)
	}
	a.log.Info().Str("path", path).Int("runs", len(runs)).Msg("Sharpe ratio box plot saved")

	fmt.Fprintln(a.out, "\nSharpe Ratio Statistics:")
	if err := utils.WriteSummaryTable(a.out, "ExecutionMode", report.Modes); err != nil {
		return nil, fmt.Errorf("failed to print sharpe ratio statistics: %w", err)
	}

	return report, nil
}
