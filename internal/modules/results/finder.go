package results

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Finder locates the best-scoring portfolio among the result files
type Finder struct {
	dir string
	out io.Writer
	log zerolog.Logger
}

// NewFinder creates a finder over the result files in dir. The summary of the
// scan is printed to out.
func NewFinder(dir string, out io.Writer, log zerolog.Logger) *Finder {
	return &Finder{
		dir: dir,
		out: out,
		log: log.With().Str("component", "finder").Logger(),
	}
}

// FindBest returns the result with the highest Sharpe ratio, or nil when no
// result files exist. Equal scores keep the file that sorts first by name.
func (f *Finder) FindBest() (*Best, error) {
	files, err := ListResultFiles(f.dir)
	if err != nil {
		return nil, err
	}

	f.log.Debug().Int("files", len(files)).Str("dir", f.dir).Msg("Scanning result files")

	bestScore := math.Inf(-1)
	var best *Best

	for _, file := range files {
		result, err := LoadResult(file)
		if err != nil {
			return nil, err
		}
		if result.SharpeRatio > bestScore {
			bestScore = result.SharpeRatio
			best = &Best{Result: result, File: file}
		}
	}

	if best == nil {
		fmt.Fprintf(f.out, "No portfolio result files found in %s\n", f.dir)
		return nil, nil
	}

	fmt.Fprintf(f.out, "Best portfolio found in: %s\n", filepath.Base(best.File))
	fmt.Fprintf(f.out, "Sharpe Ratio: %.4f\n", bestScore)

	return best, nil
}
