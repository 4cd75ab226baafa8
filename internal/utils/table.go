package utils

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aristath/sentinel-analysis/pkg/formulas"
)

// WriteSummaryTable prints grouped statistics as an aligned text table, one
// row per group with count, mean, std, min and max columns.
func WriteSummaryTable(w io.Writer, index string, groups []formulas.GroupSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\tcount\tmean\tstd\tmin\tmax\n", index)
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			g.Key, g.Count, g.Mean, g.Std, g.Min, g.Max)
	}

	return tw.Flush()
}
