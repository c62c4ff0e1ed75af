// Package session ties one algorithm run to its playback state.
//
// A Session is the explicit context value that replaces GUI-held
// globals: it owns the input copy, the sealed step log, and the
// driver bound to it. Loading a new array or algorithm builds a new
// Session; the old one is discarded whole, never mutated in place, so
// no stale log/cursor pairing can be observed afterwards.
package session

import (
	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/playback"
	"github.com/san-kum/sortlab/internal/step"
)

type Session struct {
	Algorithm algo.Metadata
	Input     []int
	Log       *step.Log
	Driver    *playback.Driver
}

// New records the full step log for the input eagerly and binds a
// fresh driver to it. Recording failures surface before any playback
// state exists.
func New(a algo.Adapter, input []int) (*Session, error) {
	log, err := a.Run(input)
	if err != nil {
		return nil, err
	}

	in := make([]int, len(input))
	copy(in, input)

	d := playback.NewDriver()
	d.Load(log)

	return &Session{
		Algorithm: a.Meta(),
		Input:     in,
		Log:       log,
		Driver:    d,
	}, nil
}
