package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FilePattern matches the result files the optimizer writes
const FilePattern = "optimal_portfolio_*.json"

// LoadResult reads a single result file. Fields missing from the JSON keep
// their zero value, except ExecutionMode which becomes UnknownExecutionMode.
func LoadResult(path string) (*PortfolioResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file %s: %w", path, err)
	}

	var result PortfolioResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode result file %s: %w", path, err)
	}

	if result.ExecutionMode == "" {
		result.ExecutionMode = UnknownExecutionMode
	}

	return &result, nil
}

// ListResultFiles returns the result files in dir ordered by file name, so
// every scan visits them in the same order regardless of filesystem.
func ListResultFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list result files in %s: %w", dir, err)
	}
	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})
	return files, nil
}
