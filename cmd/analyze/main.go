// Package main is the entry point for the portfolio optimization results analysis.
//
// It scans the results directory written by the optimizer, reports the
// best-scoring portfolio, compares execution times between parallel and
// sequential runs, and compares Sharpe ratios across runs. Charts are saved
// as PNG files next to the results; the report is printed to stdout and
// diagnostics are logged to stderr.
package main

import (
	"os"

	"github.com/aristath/sentinel-analysis/internal/analysis"
	"github.com/aristath/sentinel-analysis/internal/config"
	"github.com/aristath/sentinel-analysis/internal/modules/charts"
	"github.com/aristath/sentinel-analysis/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	chartSvc, err := charts.NewService(cfg.ChartDPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize chart service")
	}

	pipeline := analysis.NewPipeline(cfg.ResultsDir, chartSvc, os.Stdout, log)
	if err := pipeline.Run(); err != nil {
		log.Fatal().Err(err).Str("results_dir", cfg.ResultsDir).Msg("Analysis failed")
	}
}
