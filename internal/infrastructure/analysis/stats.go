package analysis

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// pitchStats summarises the finite F0 estimates.
type pitchStats struct {
	mean, median, min, max, rng, std float64
}

// finite drops NaN and infinite values.
func finite(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// summarise returns false when x is empty. The standard deviation is the population one.
func summarise(x []float64) (pitchStats, bool) {
	if len(x) == 0 {
		return pitchStats{}, false
	}

	lo, hi := floats.Min(x), floats.Max(x)
	return pitchStats{
		mean:   stat.Mean(x, nil),
		median: median(x),
		min:    lo,
		max:    hi,
		rng:    hi - lo,
		std:    math.Sqrt(stat.PopVariance(x, nil)),
	}, true
}

// median averages the two middle values of an even-length input.
func median(x []float64) float64 {
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// meanOrNil returns nil for an empty series.
func meanOrNil(x []float64) *float64 {
	if len(x) == 0 {
		return nil
	}
	m := stat.Mean(x, nil)
	return &m
}
