package benchmarks

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aristath/sentinel-analysis/internal/modules/charts"
	"github.com/aristath/sentinel-analysis/internal/utils"
	"github.com/aristath/sentinel-analysis/pkg/formulas"
	"github.com/rs/zerolog"
)

// Execution modes compared by the analyzer, in display order
const (
	ModeParallel   = "parallel"
	ModeSequential = "sequential"
)

const (
	// LogFile is the benchmark log read from the results directory
	LogFile = "benchmarks.log"
	// BoxPlotFile and BarChartFile are the charts written into the results directory
	BoxPlotFile  = "execution_time_comparison.png"
	BarChartFile = "avg_execution_time.png"

	// MinRecords is the fewest qualifying runs worth comparing
	MinRecords = 5

	meanLabelPad = 20.0 // seconds
	barLabelPad  = 5.0  // seconds
)

var modes = []string{ModeParallel, ModeSequential}

// ChartRenderer is the subset of the chart service the analyzer needs
type ChartRenderer interface {
	RenderBarChart(spec charts.BarSpec, path string) error
	RenderBoxPlot(spec charts.BoxSpec, path string) error
}

// Report is the outcome of a benchmark comparison
type Report struct {
	Records    int
	Modes      []formulas.GroupSummary // Seconds, ordered parallel then sequential
	Speedup    float64                 // Sequential mean over parallel mean
	HasSpeedup bool
}

// Mode returns the statistics for mode, if it was present in the log
func (r *Report) Mode(mode string) (formulas.Summary, bool) {
	for _, m := range r.Modes {
		if m.Key == mode {
			return m.Summary, true
		}
	}
	return formulas.Summary{}, false
}

// Analyzer compares execution times recorded in the benchmark log
type Analyzer struct {
	dir      string
	renderer ChartRenderer
	out      io.Writer
	log      zerolog.Logger
}

// NewAnalyzer creates an analyzer reading the benchmark log in dir
func NewAnalyzer(dir string, renderer ChartRenderer, out io.Writer, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		dir:      dir,
		renderer: renderer,
		out:      out,
		log:      log.With().Str("component", "benchmarks").Logger(),
	}
}

// Analyze summarizes and charts the benchmark log. It returns a nil report
// without error when the log is missing or holds too few qualifying runs.
func (a *Analyzer) Analyze() (*Report, error) {
	path := filepath.Join(a.dir, LogFile)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(a.out, "Benchmark file not found: %s\n", path)
		return nil, nil
	}

	records, err := ReadLog(path)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]float64)
	qualifying := 0
	for _, r := range records {
		if r.ExecutionMode != ModeParallel && r.ExecutionMode != ModeSequential {
			continue
		}
		groups[r.ExecutionMode] = append(groups[r.ExecutionMode], r.TimeSec())
		qualifying++
	}

	a.log.Debug().Int("records", len(records)).Int("qualifying", qualifying).Msg("Benchmark log read")

	if qualifying < MinRecords {
		fmt.Fprintf(a.out, "Not enough data points. Found %d benchmarks, need at least %d.\n", qualifying, MinRecords)
		fmt.Fprintln(a.out, "Please run more benchmarks.")
		return nil, nil
	}

	report := &Report{
		Records: qualifying,
		Modes:   formulas.GroupSummaries(groups),
	}

	fmt.Fprintln(a.out, "\nExecution Time Summary (seconds):")
	if err := utils.WriteSummaryTable(a.out, "ExecutionMode", report.Modes); err != nil {
		return nil, fmt.Errorf("failed to print execution time summary: %w", err)
	}

	fmt.Fprintln(a.out, "\nExecution Time Summary (minutes):")
	for _, m := range report.Modes {
		fmt.Fprintf(a.out, "%s: %.2f minutes\n", displayName(m.Key), m.Mean/60)
	}

	seq, hasSeq := report.Mode(ModeSequential)
	par, hasPar := report.Mode(ModeParallel)
	if hasSeq && hasPar {
		report.Speedup, report.HasSpeedup = formulas.Ratio(seq.Mean, par.Mean)
	}
	if report.HasSpeedup {
		fmt.Fprintf(a.out, "\nParallel speedup: %.2fx faster\n", report.Speedup)
	}

	if err := a.renderBoxPlot(groups, report); err != nil {
		return nil, err
	}
	if err := a.renderBarChart(report); err != nil {
		return nil, err
	}

	return report, nil
}

func (a *Analyzer) renderBoxPlot(groups map[string][]float64, report *Report) error {
	var boxes []charts.BoxGroup
	for _, mode := range modes {
		summary, ok := report.Mode(mode)
		if !ok {
			continue
		}
		boxes = append(boxes, charts.BoxGroup{
			Label:        mode,
			Values:       groups[mode],
			Annotation:   fmt.Sprintf("Mean: %.1fs", summary.Mean),
			AnnotationAt: summary.Mean + meanLabelPad,
		})
	}

	path := filepath.Join(a.dir, BoxPlotFile)
	err := a.renderer.RenderBoxPlot(charts.BoxSpec{
		Title:  "Execution Time Comparison: Parallel vs Sequential",
		XLabel: "Execution Mode",
		YLabel: "Time (seconds)",
		Groups: boxes,
		Size:   charts.StandardFigure,
	}, path)
	if err != nil {
		return fmt.Errorf("failed to render execution time comparison: %w", err)
	}

	a.log.Info().Str("path", path).Msg("Execution time box plot saved")
	return nil
}

func (a *Analyzer) renderBarChart(report *Report) error {
	bars := make([]charts.Bar, 0, len(report.Modes))
	for _, m := range report.Modes {
		bars = append(bars, charts.Bar{
			Label:      m.Key,
			Value:      m.Mean,
			Annotation: fmt.Sprintf("%.1fs\n(%.1fmin)", m.Mean, m.Mean/60),
		})
	}

	path := filepath.Join(a.dir, BarChartFile)
	err := a.renderer.RenderBarChart(charts.BarSpec{
		Title:         "Average Execution Time Comparison",
		XLabel:        "Execution Mode",
		YLabel:        "Time (seconds)",
		Bars:          bars,
		Colors:        []color.Color{charts.SteelBlue, charts.DarkOrange},
		AnnotationPad: barLabelPad,
		Size:          charts.StandardFigure,
	}, path)
	if err != nil {
		return fmt.Errorf("failed to render average execution time: %w", err)
	}

	a.log.Info().Str("path", path).Msg("Average execution time chart saved")
	return nil
}

func displayName(mode string) string {
	switch mode {
	case ModeParallel:
		return "Parallel"
	case ModeSequential:
		return "Sequential"
	}
	return mode
}
