package formulas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics reported for a group of observations
type Summary struct {
	Count int
	Mean  float64
	Std   float64 // Sample standard deviation (n-1); NaN for a single observation
	Min   float64
	Max   float64
}

// GroupSummary is a Summary labelled with the key it was grouped by
type GroupSummary struct {
	Key string
	Summary
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values.
// A single observation has no spread estimate and yields NaN.
func StdDev(data []float64) float64 {
	switch len(data) {
	case 0:
		return 0
	case 1:
		return math.NaN()
	}
	return stat.StdDev(data, nil)
}

// Summarize computes count, mean, std, min and max. Empty input yields a zero Summary.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	return Summary{
		Count: len(data),
		Mean:  Mean(data),
		Std:   StdDev(data),
		Min:   floats.Min(data),
		Max:   floats.Max(data),
	}
}

// GroupSummaries summarizes each group and returns the results ordered by key
func GroupSummaries(groups map[string][]float64) []GroupSummary {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]GroupSummary, 0, len(keys))
	for _, k := range keys {
		result = append(result, GroupSummary{Key: k, Summary: Summarize(groups[k])})
	}
	return result
}

// Ratio returns numerator/denominator, or false when the denominator is zero
func Ratio(numerator, denominator float64) (float64, bool) {
	if denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}
