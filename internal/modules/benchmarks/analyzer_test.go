package benchmarks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aristath/sentinel-analysis/internal/modules/charts"
	testingpkg "github.com/aristath/sentinel-analysis/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// writeLog writes a benchmark log with one row per (mode, ms) pair
func writeLog(t *testing.T, dir string, rows ...string) {
	t.Helper()
	content := "TimeMs,ExecutionMode\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, LogFile), []byte(content), 0644))
}

func TestAnalyze_MissingLog(t *testing.T) {
	dir := t.TempDir()
	renderer := testingpkg.NewMockChartRenderer()
	var out bytes.Buffer

	report, err := NewAnalyzer(dir, renderer, &out, zerolog.Nop()).Analyze()
	require.NoError(t, err)

	assert.Nil(t, report)
	assert.Equal(t, "Benchmark file not found: "+filepath.Join(dir, LogFile)+"\n", out.String())
	renderer.AssertNotCalled(t, "RenderBoxPlot", mock.Anything, mock.Anything)
}

func TestAnalyze_NotEnoughData(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir,
		"100000,parallel",
		"250000,sequential",
		"120000,parallel",
		"90000,warmup",
		"80000,warmup",
	)
	renderer := testingpkg.NewMockChartRenderer()
	var out bytes.Buffer

	report, err := NewAnalyzer(dir, renderer, &out, zerolog.Nop()).Analyze()
	require.NoError(t, err)

	assert.Nil(t, report)
	assert.Equal(t, "Not enough data points. Found 3 benchmarks, need at least 5.\nPlease run more benchmarks.\n", out.String())
	renderer.AssertNotCalled(t, "RenderBoxPlot", mock.Anything, mock.Anything)
	renderer.AssertNotCalled(t, "RenderBarChart", mock.Anything, mock.Anything)
	assert.NoFileExists(t, filepath.Join(dir, BoxPlotFile))
}

func TestAnalyze_ComputesSpeedup(t *testing.T) {
	dir := t.TempDir()
	testingpkg.WriteBenchmarkLog(t, dir, LogFile, testingpkg.NewBenchmarkFixtures())
	renderer := testingpkg.NewMockChartRenderer()
	var out bytes.Buffer

	report, err := NewAnalyzer(dir, renderer, &out, zerolog.Nop()).Analyze()
	require.NoError(t, err)
	require.NotNil(t, report)
	renderer.AssertCalled(t, "RenderBoxPlot", mock.Anything, filepath.Join(dir, BoxPlotFile))
	renderer.AssertCalled(t, "RenderBarChart", mock.Anything, filepath.Join(dir, BarChartFile))

	box := renderer.BoxPlots()[0]
	bar := renderer.BarCharts()[0]

	assert.Equal(t, 5, report.Records)
	assert.True(t, report.HasSpeedup)
	assert.InDelta(t, 2.5, report.Speedup, 1e-9)

	par, ok := report.Mode(ModeParallel)
	require.True(t, ok)
	assert.Equal(t, 3, par.Count)
	assert.InDelta(t, 100.0, par.Mean, 1e-9)
	assert.InDelta(t, 10.0, par.Std, 1e-9)
	assert.InDelta(t, 90.0, par.Min, 1e-9)
	assert.InDelta(t, 110.0, par.Max, 1e-9)

	require.Len(t, box.Groups, 2)
	assert.Equal(t, "parallel", box.Groups[0].Label)
	assert.Equal(t, "Mean: 100.0s", box.Groups[0].Annotation)
	assert.InDelta(t, 120.0, box.Groups[0].AnnotationAt, 1e-9)
	assert.Equal(t, "sequential", box.Groups[1].Label)

	require.Len(t, bar.Bars, 2)
	assert.Equal(t, "250.0s\n(4.2min)", bar.Bars[1].Annotation)

	expected := "\nExecution Time Summary (seconds):\n" +
		"ExecutionMode  count  mean      std      min       max\n" +
		"parallel       3      100.0000  10.0000  90.0000   110.0000\n" +
		"sequential     2      250.0000  14.1421  240.0000  260.0000\n" +
		"\nExecution Time Summary (minutes):\n" +
		"Parallel: 1.67 minutes\n" +
		"Sequential: 4.17 minutes\n" +
		"\nParallel speedup: 2.50x faster\n"
	assert.Equal(t, expected, out.String())
}

func TestAnalyze_SingleModeHasNoSpeedup(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "1000,parallel", "2000,parallel", "3000,parallel", "4000,parallel", "5000,parallel")
	renderer := testingpkg.NewMockChartRenderer()
	var out bytes.Buffer

	report, err := NewAnalyzer(dir, renderer, &out, zerolog.Nop()).Analyze()
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.False(t, report.HasSpeedup)
	_, ok := report.Mode(ModeSequential)
	assert.False(t, ok)
	assert.NotContains(t, out.String(), "speedup")
}

func TestAnalyze_MalformedLogPropagates(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "abc,parallel")

	report, err := NewAnalyzer(dir, testingpkg.NewMockChartRenderer(), &bytes.Buffer{}, zerolog.Nop()).Analyze()
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestAnalyze_RenderErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "1000,parallel", "2000,parallel", "3000,sequential", "4000,sequential", "5000,parallel")
	renderer := &testingpkg.MockChartRenderer{}
	renderer.On("RenderBoxPlot", mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := NewAnalyzer(dir, renderer, &bytes.Buffer{}, zerolog.Nop()).Analyze()
	assert.ErrorContains(t, err, "boom")
	renderer.AssertNotCalled(t, "RenderBarChart", mock.Anything, mock.Anything)
}

func TestAnalyze_WritesCharts(t *testing.T) {
	dir := t.TempDir()
	testingpkg.WriteBenchmarkLog(t, dir, LogFile, testingpkg.NewBenchmarkFixtures())
	svc, err := charts.NewService(50, zerolog.Nop())
	require.NoError(t, err)

	report, err := NewAnalyzer(dir, svc, &bytes.Buffer{}, zerolog.Nop()).Analyze()
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.FileExists(t, filepath.Join(dir, BoxPlotFile))
	assert.FileExists(t, filepath.Join(dir, BarChartFile))
}
