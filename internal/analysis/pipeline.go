// Package analysis sequences the result analyses into a single run.
package analysis

import (
	"fmt"
	"io"

	"github.com/aristath/sentinel-analysis/internal/modules/benchmarks"
	"github.com/aristath/sentinel-analysis/internal/modules/charts"
	"github.com/aristath/sentinel-analysis/internal/modules/composition"
	"github.com/aristath/sentinel-analysis/internal/modules/results"
	"github.com/aristath/sentinel-analysis/internal/modules/variation"
	"github.com/aristath/sentinel-analysis/internal/utils"
	"github.com/rs/zerolog"
)

// Pipeline runs the best-portfolio, benchmark and variation analyses over one
// results directory. The report is printed to out.
type Pipeline struct {
	dir         string
	out         io.Writer
	log         zerolog.Logger
	finder      *results.Finder
	composition *composition.Plotter
	benchmarks  *benchmarks.Analyzer
	variation   *variation.Analyzer
}

// NewPipeline wires the analyses over dir using the given chart service
func NewPipeline(dir string, chartSvc *charts.Service, out io.Writer, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		dir:         dir,
		out:         out,
		log:         log.With().Str("component", "pipeline").Logger(),
		finder:      results.NewFinder(dir, out, log),
		composition: composition.NewPlotter(dir, chartSvc, out, log),
		benchmarks:  benchmarks.NewAnalyzer(dir, chartSvc, out, log),
		variation:   variation.NewAnalyzer(dir, chartSvc, out, log),
	}
}

// Run executes every stage in order. The first failing stage aborts the run.
func (p *Pipeline) Run() error {
	p.log.Info().Str("dir", p.dir).Msg("Starting analysis")

	fmt.Fprintln(p.out, "Portfolio Optimization Analysis")
	fmt.Fprintln(p.out, "==============================")

	if err := p.stage("composition", p.runComposition); err != nil {
		return err
	}

	fmt.Fprintln(p.out, "\nAnalyzing execution times...")
	if err := p.stage("benchmarks", func() error {
		_, err := p.benchmarks.Analyze()
		return err
	}); err != nil {
		return err
	}

	fmt.Fprintln(p.out, "\nAnalyzing portfolio variations...")
	if err := p.stage("variation", func() error {
		_, err := p.variation.Analyze()
		return err
	}); err != nil {
		return err
	}

	fmt.Fprintln(p.out, "\nAnalysis complete. Plots saved to", p.dir)
	p.log.Info().Msg("Analysis complete")
	return nil
}

func (p *Pipeline) runComposition() error {
	best, err := p.finder.FindBest()
	if err != nil {
		return err
	}

	var result *results.PortfolioResult
	if best != nil {
		result = best.Result
	}
	return p.composition.Plot(result)
}

func (p *Pipeline) stage(name string, fn func() error) error {
	timer := utils.NewStageTimer(name, p.log)
	err := fn()
	timer.Stop()
	if err != nil {
		return fmt.Errorf("%s analysis failed: %w", name, err)
	}
	return nil
}
