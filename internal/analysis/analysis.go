package analysis

import (
	"github.com/san-kum/sortlab/internal/step"
)

// Inversions counts pairs (i, j) with i < j and values[i] > values[j].
// Zero inversions means the slice is sorted; n*(n-1)/2 means it is
// reversed. Quadratic scan, fine for visualization-sized inputs.
func Inversions(values []int) int {
	count := 0
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				count++
			}
		}
	}
	return count
}

// InversionSeries computes the inversion count at every step of a log,
// giving a disorder-over-time curve for plotting. The curve is
// monotone only for algorithms that never move an element past a
// smaller one, so bumps are informative, not an error.
func InversionSeries(l *step.Log) []float64 {
	series := make([]float64, l.Len())
	for i := 0; i < l.Len(); i++ {
		series[i] = float64(Inversions(l.At(i).Values))
	}
	return series
}

// Runs counts the maximal non-decreasing runs in values. A sorted
// slice has one run; a reversed slice of n distinct values has n.
func Runs(values []int) int {
	if len(values) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			runs++
		}
	}
	return runs
}

// Sortedness maps a slice to [0, 1], where 1 is fully sorted and 0 is
// fully reversed, based on the inversion count.
func Sortedness(values []int) float64 {
	n := len(values)
	if n < 2 {
		return 1
	}
	maxInv := n * (n - 1) / 2
	return 1 - float64(Inversions(values))/float64(maxInv)
}
