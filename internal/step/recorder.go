package step

import (
	"errors"
	"fmt"
)

// Domain errors for step recording.
var (
	// ErrInvalidInput indicates an array that cannot be recorded
	// (empty). Raised before any step is produced.
	ErrInvalidInput = errors.New("step: invalid input (empty array)")

	// ErrRecorderClosed indicates an append after Finish. This is an
	// adapter bug, not a user-recoverable condition.
	ErrRecorderClosed = errors.New("step: record after finish")
)

// Recorder accumulates the steps of one algorithm run into an
// ordered, append-only log. It validates the input before recording
// anything, owns the log during construction, and seals it on Finish.
type Recorder struct {
	n      int
	steps  []Step
	closed bool
}

// NewRecorder validates the input, copies it, and records the
// initial-state step. The recorder never aliases caller-owned memory.
func NewRecorder(input []int, desc string) (*Recorder, error) {
	if len(input) == 0 {
		return nil, ErrInvalidInput
	}
	r := &Recorder{n: len(input)}
	r.append(input, nil, desc)
	return r, nil
}

// Record appends a new immutable step with an auto-assigned sequence
// number. The values snapshot is copied.
func (r *Recorder) Record(values []int, hl Highlights, desc string) error {
	if r.closed {
		return ErrRecorderClosed
	}
	if len(values) != r.n {
		return fmt.Errorf("step: snapshot length %d, want %d", len(values), r.n)
	}
	r.append(values, hl, desc)
	return nil
}

// Finish appends the terminal step, with every index in the sorted
// role, and seals the log against further appends.
func (r *Recorder) Finish(values []int, desc string) *Log {
	if !r.closed {
		r.append(values, Highlights{RoleSorted: Span(0, r.n-1)}, desc)
		r.closed = true
	}
	return &Log{steps: r.steps}
}

func (r *Recorder) append(values []int, hl Highlights, desc string) {
	vals := make([]int, len(values))
	copy(vals, values)
	r.steps = append(r.steps, Step{
		Values:      vals,
		Highlights:  hl.Clone(),
		Description: desc,
		Seq:         len(r.steps),
	})
}
