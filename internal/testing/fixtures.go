// Package testing provides testing utilities and helpers for the analysis packages.
package testing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/aristath/sentinel-analysis/internal/modules/results"
	"github.com/stretchr/testify/require"
)

// BenchmarkRow is one line of a benchmark log fixture
type BenchmarkRow struct {
	ExecutionMode string
	TimeMs        float64
}

// NewResultFixtures returns three runs: a sequential one and two parallel ones,
// the second of which has the best Sharpe ratio.
func NewResultFixtures() []results.PortfolioResult {
	return []results.PortfolioResult{
		{
			SharpeRatio:   0.5,
			ExecutionMode: "sequential",
			TimeElapsedMs: 250000,
			Timestamp:     "2024-05-01T10:00:00Z",
			Stocks: []results.Holding{
				{Ticker: "AAPL", Weight: 0.5},
				{Ticker: "MSFT", Weight: 0.5},
			},
		},
		{
			SharpeRatio:   1.2,
			ExecutionMode: "parallel",
			TimeElapsedMs: 100000,
			Timestamp:     "2024-05-01T11:00:00Z",
			Stocks: []results.Holding{
				{Ticker: "NVDA", Weight: 0.15},
				{Ticker: "AAPL", Weight: 0.6},
				{Ticker: "MSFT", Weight: 0.25},
			},
		},
		{
			SharpeRatio:   0.9,
			ExecutionMode: "parallel",
			TimeElapsedMs: 110000,
			Timestamp:     "2024-05-01T12:00:00Z",
			Stocks: []results.Holding{
				{Ticker: "AAPL", Weight: 1.0},
			},
		},
	}
}

// NewBenchmarkFixtures returns five runs whose parallel mean is 100s and
// sequential mean is 250s.
func NewBenchmarkFixtures() []BenchmarkRow {
	return []BenchmarkRow{
		{ExecutionMode: "parallel", TimeMs: 90000},
		{ExecutionMode: "parallel", TimeMs: 100000},
		{ExecutionMode: "parallel", TimeMs: 110000},
		{ExecutionMode: "sequential", TimeMs: 240000},
		{ExecutionMode: "sequential", TimeMs: 260000},
	}
}

// WriteResultFiles writes each result as optimal_portfolio_NNN.json in dir,
// numbered from 1 in slice order.
func WriteResultFiles(t *testing.T, dir string, fixtures []results.PortfolioResult) {
	t.Helper()
	for i, r := range fixtures {
		data, err := json.Marshal(r)
		require.NoError(t, err)
		WriteFile(t, dir, fmt.Sprintf("optimal_portfolio_%03d.json", i+1), string(data))
	}
}

// WriteBenchmarkLog writes rows as a CSV benchmark log named name in dir
func WriteBenchmarkLog(t *testing.T, dir, name string, rows []BenchmarkRow) {
	t.Helper()
	var b strings.Builder
	b.WriteString("Timestamp,ExecutionMode,TimeMs\n")
	for i, r := range rows {
		fmt.Fprintf(&b, "2024-05-01T%02d:00:00Z,%s,%s\n", i%24, r.ExecutionMode, strconv.FormatFloat(r.TimeMs, 'f', -1, 64))
	}
	WriteFile(t, dir, name, b.String())
}

// WriteFile writes raw content to dir/name
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
