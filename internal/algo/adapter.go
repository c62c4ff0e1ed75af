package algo

import (
	"fmt"

	"github.com/san-kum/sortlab/internal/step"
)

// Adapter is the contract every sorting algorithm fulfills: given an
// input array it deterministically produces a complete step log by
// executing to completion up front. Run must be a pure function of
// its input so reloading the same array reproduces the same log.
type Adapter interface {
	Run(input []int) (*step.Log, error)
	Meta() Metadata
}

// Metadata is static descriptive data about an algorithm, exposed to
// the user but not behaviorally load-bearing.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Best        string `json:"best_case"`
	Average     string `json:"average_case"`
	Worst       string `json:"worst_case"`
	Space       string `json:"space_complexity"`
	Stable      bool   `json:"stable"`
}

// run holds the shared recording state of one execution: the working
// array and a sticky recording error checked once at finish.
type run struct {
	rec *step.Recorder
	a   []int
	err error
}

func begin(input []int, name string) (*run, error) {
	rec, err := step.NewRecorder(input, fmt.Sprintf("initial state: %s starting", name))
	if err != nil {
		return nil, err
	}
	a := make([]int, len(input))
	copy(a, input)
	return &run{rec: rec, a: a}, nil
}

func (r *run) record(hl step.Highlights, format string, args ...any) {
	if r.err == nil {
		r.err = r.rec.Record(r.a, hl, fmt.Sprintf(format, args...))
	}
}

func (r *run) swap(i, j int) {
	r.a[i], r.a[j] = r.a[j], r.a[i]
}

func (r *run) finish(desc string) (*step.Log, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rec.Finish(r.a, desc), nil
}
