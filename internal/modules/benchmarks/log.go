// Package benchmarks compares optimizer execution times across execution modes.
package benchmarks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names the benchmark log must carry
const (
	ColumnTimeMs        = "TimeMs"
	ColumnExecutionMode = "ExecutionMode"
)

// Record is one timed optimizer run from the benchmark log
type Record struct {
	ExecutionMode string
	TimeMs        float64
}

// TimeSec returns the elapsed time in seconds
func (r Record) TimeSec() float64 {
	return r.TimeMs / 1000
}

// ReadLog parses the CSV benchmark log at path. Columns are matched by header
// name and extra columns are ignored.
func ReadLog(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open benchmark log: %w", err)
	}
	defer f.Close()

	return parseLog(f)
}

func parseLog(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("benchmark log is empty")
		}
		return nil, fmt.Errorf("failed to read benchmark log header: %w", err)
	}

	timeIdx, modeIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case ColumnTimeMs:
			timeIdx = i
		case ColumnExecutionMode:
			modeIdx = i
		}
	}
	if timeIdx < 0 || modeIdx < 0 {
		return nil, fmt.Errorf("benchmark log header must contain %s and %s columns", ColumnTimeMs, ColumnExecutionMode)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read benchmark log: %w", err)
		}

		timeMs, err := strconv.ParseFloat(strings.TrimSpace(row[timeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s on line %d: %w", ColumnTimeMs, line, err)
		}

		records = append(records, Record{
			ExecutionMode: strings.TrimSpace(row[modeIdx]),
			TimeMs:        timeMs,
		})
	}

	return records, nil
}
