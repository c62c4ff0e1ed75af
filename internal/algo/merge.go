package algo

import "github.com/san-kum/sortlab/internal/step"

// Merge sorts by recursive halving. Split boundaries are recorded
// before descending, and every placement into the merged region is
// its own step rather than one atomic merge.
type Merge struct{}

func NewMerge() *Merge { return &Merge{} }

func (*Merge) Meta() Metadata {
	return Metadata{
		Name:        "Merge Sort",
		Description: "Recursively splits the array into halves, sorts each half, and merges them back together by repeatedly taking the smaller head element of the two halves.",
		Best:        "O(n log n)",
		Average:     "O(n log n)",
		Worst:       "O(n log n)",
		Space:       "O(n)",
		Stable:      true,
	}
}

func (*Merge) Run(input []int) (*step.Log, error) {
	r, err := begin(input, "merge sort")
	if err != nil {
		return nil, err
	}

	m := &mergeRun{r}
	m.sort(0, len(r.a)-1)

	return r.finish("sorting completed")
}

type mergeRun struct {
	*run
}

func (m *mergeRun) sort(left, right int) {
	if left >= right {
		return
	}
	mid := (left + right) / 2

	m.record(step.Highlights{
		step.RoleRange:    step.Span(left, right),
		step.RoleBoundary: {mid},
	}, "dividing: left [%d, %d], right [%d, %d]", left, mid, mid+1, right)

	m.record(step.Highlights{step.RoleRange: step.Span(left, mid)},
		"sorting left half [%d, %d]", left, mid)
	m.sort(left, mid)

	m.record(step.Highlights{step.RoleRange: step.Span(mid + 1, right)},
		"sorting right half [%d, %d]", mid+1, right)
	m.sort(mid+1, right)

	m.record(step.Highlights{
		step.RoleRange:    step.Span(left, right),
		step.RoleBoundary: {mid},
	}, "merging [%d, %d] and [%d, %d]", left, mid, mid+1, right)
	m.merge(left, mid, right)
}

// merge copies both halves into buffers, then writes elements back
// one placement at a time.
func (m *mergeRun) merge(left, mid, right int) {
	lbuf := append([]int(nil), m.a[left:mid+1]...)
	rbuf := append([]int(nil), m.a[mid+1:right+1]...)

	i, j, k := 0, 0, left
	for i < len(lbuf) && j < len(rbuf) {
		m.record(step.Highlights{
			step.RoleRange:     step.Span(left, right),
			step.RoleComparing: {left + i, mid + 1 + j},
		}, "comparing %d and %d", lbuf[i], rbuf[j])

		if lbuf[i] <= rbuf[j] {
			m.a[k] = lbuf[i]
			m.record(step.Highlights{step.RoleRange: step.Span(left, right), step.RoleSwapping: {k}},
				"placed %d at position %d", lbuf[i], k)
			i++
		} else {
			m.a[k] = rbuf[j]
			m.record(step.Highlights{step.RoleRange: step.Span(left, right), step.RoleSwapping: {k}},
				"placed %d at position %d", rbuf[j], k)
			j++
		}
		k++
	}

	for ; i < len(lbuf); i, k = i+1, k+1 {
		m.a[k] = lbuf[i]
		m.record(step.Highlights{step.RoleRange: step.Span(left, right), step.RoleSwapping: {k}},
			"copying remaining %d to position %d", lbuf[i], k)
	}
	for ; j < len(rbuf); j, k = j+1, k+1 {
		m.a[k] = rbuf[j]
		m.record(step.Highlights{step.RoleRange: step.Span(left, right), step.RoleSwapping: {k}},
			"copying remaining %d to position %d", rbuf[j], k)
	}

	m.record(step.Highlights{step.RoleSorted: step.Span(left, right)},
		"merge completed for [%d, %d]", left, right)
}
