package algo

import "github.com/san-kum/sortlab/internal/step"

// Selection sorts by scanning the unsorted suffix for its minimum and
// swapping it to the front of the suffix, one swap per pass. Ties go
// to the leftmost occurrence. A pass whose minimum is already in
// place still records its swap step, so every pass reads the same.
type Selection struct{}

func NewSelection() *Selection { return &Selection{} }

func (*Selection) Meta() Metadata {
	return Metadata{
		Name:        "Selection Sort",
		Description: "Scans the unsorted part of the array for the minimum element and swaps it into the next sorted position, growing a sorted prefix one element per pass.",
		Best:        "O(n²)",
		Average:     "O(n²)",
		Worst:       "O(n²)",
		Space:       "O(1)",
		Stable:      false,
	}
}

func (*Selection) Run(input []int) (*step.Log, error) {
	r, err := begin(input, "selection sort")
	if err != nil {
		return nil, err
	}

	n := len(r.a)
	for i := 0; i < n-1; i++ {
		r.record(step.Highlights{step.RoleRange: step.Span(i, n-1)},
			"pass %d: scanning [%d, %d] for the minimum", i+1, i, n-1)

		min := i
		r.record(step.Highlights{step.RolePivot: {min}},
			"assume %d at position %d is the minimum", r.a[min], min)

		for j := i + 1; j < n; j++ {
			r.record(step.Highlights{step.RoleComparing: {j}, step.RolePivot: {min}},
				"comparing %d with current minimum %d", r.a[j], r.a[min])
			if r.a[j] < r.a[min] {
				min = j
				r.record(step.Highlights{step.RolePivot: {min}},
					"new minimum: %d at position %d", r.a[min], min)
			}
		}

		if min != i {
			r.record(step.Highlights{step.RoleSwapping: {i, min}},
				"swapping %d <-> %d", r.a[i], r.a[min])
			r.swap(i, min)
			r.record(step.Highlights{step.RoleSwapping: {i, min}},
				"swap completed: %d now at position %d", r.a[i], i)
		} else {
			// No-op swap, recorded anyway to keep pass count consistent.
			r.record(step.Highlights{step.RoleSwapping: {i}},
				"no swap needed: %d already at position %d", r.a[i], i)
		}

		r.record(step.Highlights{step.RoleSorted: step.Span(0, i)},
			"position %d sorted", i)
	}

	return r.finish("sorting completed")
}
