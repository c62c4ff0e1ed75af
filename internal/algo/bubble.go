package algo

import "github.com/san-kum/sortlab/internal/step"

// Bubble sorts by repeatedly comparing adjacent elements strictly
// left to right. A pass without swaps ends the run immediately.
type Bubble struct{}

func NewBubble() *Bubble { return &Bubble{} }

func (*Bubble) Meta() Metadata {
	return Metadata{
		Name:        "Bubble Sort",
		Description: "Steps through the array comparing adjacent elements and swapping them when out of order. Larger elements bubble toward the end; a swap-free pass means the array is sorted.",
		Best:        "O(n)",
		Average:     "O(n²)",
		Worst:       "O(n²)",
		Space:       "O(1)",
		Stable:      true,
	}
}

func (*Bubble) Run(input []int) (*step.Log, error) {
	r, err := begin(input, "bubble sort")
	if err != nil {
		return nil, err
	}

	n := len(r.a)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			r.record(step.Highlights{step.RoleComparing: {j, j + 1}},
				"comparing %d and %d", r.a[j], r.a[j+1])
			if r.a[j] > r.a[j+1] {
				r.swap(j, j+1)
				r.record(step.Highlights{step.RoleSwapping: {j, j + 1}},
					"swapped: %d <-> %d", r.a[j], r.a[j+1])
				swapped = true
			}
		}
		if !swapped {
			// Early exit: the pass changed nothing, finish records
			// the sorted step right away instead of running empty passes.
			break
		}
		r.record(step.Highlights{step.RoleSorted: step.Span(n - 1 - i, n - 1)},
			"%d settled at position %d", r.a[n-1-i], n-1-i)
	}

	return r.finish("sorting completed")
}
