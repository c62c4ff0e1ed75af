package algo

import "github.com/san-kum/sortlab/internal/step"

// Quick sorts by partitioning around the last element of the current
// range. Recursive sub-ranges are recorded as active-range highlights
// so nested recursion stays visually legible.
type Quick struct{}

func NewQuick() *Quick { return &Quick{} }

func (*Quick) Meta() Metadata {
	return Metadata{
		Name:        "Quick Sort",
		Description: "Divide and conquer: selects the last element of the range as pivot, partitions smaller elements to its left and larger to its right, then recurses into both sides.",
		Best:        "O(n log n)",
		Average:     "O(n log n)",
		Worst:       "O(n²)",
		Space:       "O(log n)",
		Stable:      false,
	}
}

func (*Quick) Run(input []int) (*step.Log, error) {
	r, err := begin(input, "quick sort")
	if err != nil {
		return nil, err
	}

	q := &quickRun{r}
	q.sort(0, len(r.a)-1)

	return r.finish("sorting completed")
}

type quickRun struct {
	*run
}

func (q *quickRun) sort(lo, hi int) {
	if lo >= hi {
		return
	}
	q.record(step.Highlights{step.RoleRange: step.Span(lo, hi)},
		"sorting range [%d, %d]", lo, hi)

	p := q.partition(lo, hi)

	if lo < p-1 {
		q.record(step.Highlights{step.RoleRange: step.Span(lo, p-1)},
			"sort left side [%d, %d]", lo, p-1)
		q.sort(lo, p-1)
	}
	if p+1 < hi {
		q.record(step.Highlights{step.RoleRange: step.Span(p + 1, hi)},
			"sort right side [%d, %d]", p+1, hi)
		q.sort(p+1, hi)
	}
}

// partition moves everything <= pivot left of it, recording a step
// after each swap. The pivot is always the last element of the range.
func (q *quickRun) partition(lo, hi int) int {
	pivot := q.a[hi]
	q.record(step.Highlights{step.RolePivot: {hi}},
		"pivot selected: %d (index %d)", pivot, hi)

	i := lo - 1
	for j := lo; j < hi; j++ {
		q.record(step.Highlights{step.RoleComparing: {j}, step.RolePivot: {hi}},
			"comparing %d <= pivot %d?", q.a[j], pivot)
		if q.a[j] <= pivot {
			i++
			if i != j {
				q.record(step.Highlights{step.RoleSwapping: {i, j}, step.RolePivot: {hi}},
					"swapping %d <-> %d", q.a[i], q.a[j])
				q.swap(i, j)
				q.record(step.Highlights{step.RolePivot: {hi}}, "swap completed")
			}
		}
	}

	if i+1 != hi {
		q.record(step.Highlights{step.RoleComparing: {i + 1}, step.RolePivot: {hi}},
			"placing pivot %d at position %d", pivot, i+1)
		q.swap(i+1, hi)
	}

	hl := step.Highlights{step.RolePivot: {i + 1}}
	if parts := append(step.Span(lo, i), step.Span(i+2, hi)...); len(parts) > 0 {
		hl[step.RoleRange] = parts
	}
	q.record(hl, "partition completed, pivot at %d", i+1)

	return i + 1
}
