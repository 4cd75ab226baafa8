package utils

import (
	"bytes"
	"math"
	"testing"

	"github.com/aristath/sentinel-analysis/pkg/formulas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryTable(t *testing.T) {
	groups := []formulas.GroupSummary{
		{Key: "parallel", Summary: formulas.Summary{Count: 2, Mean: 100, Std: 14.1421, Min: 90, Max: 110}},
		{Key: "sequential", Summary: formulas.Summary{Count: 1, Mean: 250, Std: math.NaN(), Min: 250, Max: 250}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryTable(&buf, "ExecutionMode", groups))

	expected := "" +
		"ExecutionMode  count  mean      std      min       max\n" +
		"parallel       2      100.0000  14.1421  90.0000   110.0000\n" +
		"sequential     1      250.0000  NaN      250.0000  250.0000\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteSummaryTable_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummaryTable(&buf, "ExecutionMode", nil))

	assert.Equal(t, "ExecutionMode  count  mean  std  min  max\n", buf.String())
}
