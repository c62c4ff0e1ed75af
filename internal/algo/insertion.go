package algo

import "github.com/san-kum/sortlab/internal/step"

// Insertion sorts by growing a sorted prefix, shifting larger
// elements right one cell at a time so every displacement is visible.
type Insertion struct{}

func NewInsertion() *Insertion { return &Insertion{} }

func (*Insertion) Meta() Metadata {
	return Metadata{
		Name:        "Insertion Sort",
		Description: "Takes each element in turn and inserts it into the already-sorted prefix, shifting larger elements one position to the right until the insertion point is found.",
		Best:        "O(n)",
		Average:     "O(n²)",
		Worst:       "O(n²)",
		Space:       "O(1)",
		Stable:      true,
	}
}

func (*Insertion) Run(input []int) (*step.Log, error) {
	r, err := begin(input, "insertion sort")
	if err != nil {
		return nil, err
	}

	n := len(r.a)
	for i := 1; i < n; i++ {
		key := r.a[i]
		r.record(step.Highlights{step.RolePivot: {i}, step.RoleRange: step.Span(0, i-1)},
			"key %d picked from position %d", key, i)

		j := i - 1
		for ; j >= 0; j-- {
			r.record(step.Highlights{step.RoleComparing: {j}},
				"comparing %d > key %d?", r.a[j], key)
			if r.a[j] <= key {
				break
			}
			r.a[j+1] = r.a[j]
			r.record(step.Highlights{step.RoleSwapping: {j, j + 1}},
				"shifting %d right to position %d", r.a[j+1], j+1)
		}

		r.a[j+1] = key
		r.record(step.Highlights{step.RolePivot: {j + 1}, step.RoleSorted: step.Span(0, i)},
			"inserted key %d at position %d", key, j+1)
	}

	return r.finish("sorting completed")
}
