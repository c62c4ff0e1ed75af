// Package dataset generates and parses the integer arrays handed to
// the sorting core. Generation is seeded so a run can be reproduced
// exactly from its parameters.
package dataset

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// UI-level bounds on array size. The core itself only requires
// non-emptiness; these keep the visualization legible.
const (
	MinSize = 2
	MaxSize = 64
)

// Shapes lists the supported input distributions.
func Shapes() []string {
	return []string{"random", "sorted", "reversed", "nearly_sorted", "few_unique"}
}

// Random returns size values uniformly drawn from [min, max].
func Random(size, min, max int, seed int64) ([]int, error) {
	return Generate("random", size, min, max, seed)
}

// Generate builds an input array with the given shape.
func Generate(shape string, size, min, max int, seed int64) ([]int, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("dataset: size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	if min > max {
		return nil, fmt.Errorf("dataset: min %d greater than max %d", min, max)
	}

	rng := rand.New(rand.NewSource(seed))
	values := make([]int, size)
	for i := range values {
		values[i] = min + rng.Intn(max-min+1)
	}

	switch shape {
	case "random":
	case "sorted":
		sort.Ints(values)
	case "reversed":
		sort.Sort(sort.Reverse(sort.IntSlice(values)))
	case "nearly_sorted":
		sort.Ints(values)
		// Perturb a few adjacent pairs so most of the order survives.
		for k := 0; k < size/8+1; k++ {
			i := rng.Intn(size - 1)
			values[i], values[i+1] = values[i+1], values[i]
		}
	case "few_unique":
		distinct := 4
		if size < distinct {
			distinct = size
		}
		pool := make([]int, distinct)
		for i := range pool {
			pool[i] = min + rng.Intn(max-min+1)
		}
		for i := range values {
			values[i] = pool[rng.Intn(distinct)]
		}
	default:
		return nil, fmt.Errorf("dataset: unknown shape %q (available: %s)", shape, strings.Join(Shapes(), ", "))
	}

	return values, nil
}

// Parse reads a comma or space separated list of integers, the manual
// array entry equivalent.
func Parse(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("dataset: no values in %q", s)
	}
	if len(fields) > MaxSize {
		return nil, fmt.Errorf("dataset: %d values, at most %d supported", len(fields), MaxSize)
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: bad value %q: %w", f, err)
		}
		values[i] = v
	}
	return values, nil
}
