package step

// Role identifies the visual meaning of a highlighted index.
type Role string

const (
	RoleComparing Role = "comparing"
	RoleSwapping  Role = "swapping"
	RolePivot     Role = "pivot"
	RoleSorted    Role = "sorted"
	RoleRange     Role = "active-range"
	RoleBoundary  Role = "boundary"
)

// Highlights maps roles to the indices they apply to.
type Highlights map[Role][]int

// Clone deep-copies the highlight map so recorded steps never alias
// the caller's slices.
func (h Highlights) Clone() Highlights {
	if h == nil {
		return nil
	}
	c := make(Highlights, len(h))
	for role, idx := range h {
		ci := make([]int, len(idx))
		copy(ci, idx)
		c[role] = ci
	}
	return c
}

// Has reports whether index i carries the given role.
func (h Highlights) Has(role Role, i int) bool {
	for _, j := range h[role] {
		if j == i {
			return true
		}
	}
	return false
}

// Span returns the indices lo..hi inclusive. An empty slice is
// returned when the range is empty.
func Span(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	idx := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		idx = append(idx, i)
	}
	return idx
}

// Step is one immutable snapshot of array state during a run: the
// full value sequence, the highlighted indices, and a human-readable
// description of what is happening.
type Step struct {
	Values      []int      `json:"values"`
	Highlights  Highlights `json:"highlights,omitempty"`
	Description string     `json:"description"`
	Seq         int        `json:"seq"`
}

// Log is the complete ordered recording of one algorithm run. It is
// append-only while a Recorder owns it and read-only afterwards.
type Log struct {
	steps []Step
}

func (l *Log) Len() int { return len(l.steps) }

func (l *Log) At(i int) Step { return l.steps[i] }

// Initial returns the first recorded step (the unmodified input).
func (l *Log) Initial() Step { return l.steps[0] }

// Final returns the last recorded step (the sorted result).
func (l *Log) Final() Step { return l.steps[len(l.steps)-1] }

// Stats summarizes a log for reporting.
type Stats struct {
	Steps       int
	Comparisons int
	Swaps       int
}

// Summarize counts comparison and swap steps in a log.
func Summarize(l *Log) Stats {
	s := Stats{Steps: l.Len()}
	for _, st := range l.steps {
		if len(st.Highlights[RoleComparing]) > 0 {
			s.Comparisons++
		}
		if len(st.Highlights[RoleSwapping]) > 0 {
			s.Swaps++
		}
	}
	return s
}
