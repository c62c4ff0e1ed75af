package playback

import (
	"errors"
	"time"

	"github.com/san-kum/sortlab/internal/step"
)

// Domain errors for playback control.
var (
	// ErrNoLog indicates a start without a bound step log.
	ErrNoLog = errors.New("playback: no step log loaded")

	// ErrPlaying indicates a manual step while the driver is playing.
	// Manual and automatic advancement must not race; callers pause first.
	ErrPlaying = errors.New("playback: manual step while playing")

	// ErrNotPaused indicates a resume from a state other than Paused.
	ErrNotPaused = errors.New("playback: resume requires paused state")
)

// State is the playback driver's state machine position.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Driver advances a cursor on timed ticks while playing. It does not
// own a timer itself: the caller schedules ticks at Interval() and
// delivers them with the generation it captured when scheduling.
// Every transition that must invalidate in-flight ticks (pause,
// reset, load, finish) bumps the generation, so a tick scheduled
// before the transition is dropped rather than applied.
type Driver struct {
	cursor *Cursor
	state  State
	speed  Speed
	gen    int
}

func NewDriver() *Driver {
	return &Driver{state: Idle, speed: Medium}
}

// Load binds a new log, replacing the previous cursor wholesale and
// returning the driver to Idle. Pending ticks for the old log are
// invalidated atomically with the swap.
func (d *Driver) Load(log *step.Log) {
	d.cursor = NewCursor(log)
	d.state = Idle
	d.gen++
}

func (d *Driver) Cursor() *Cursor { return d.cursor }

func (d *Driver) State() State { return d.state }

// Generation identifies the current tick chain. Ticks delivered with
// a stale generation are ignored.
func (d *Driver) Generation() int { return d.gen }

func (d *Driver) Speed() Speed { return d.speed }

// SetSpeed changes the tick interval, effective on the next tick.
func (d *Driver) SetSpeed(s Speed) { d.speed = s }

// Interval returns the current time between automatic ticks.
func (d *Driver) Interval() time.Duration { return d.speed.Interval() }

// Start begins automatic playback from Idle. A fresh generation
// starts a new tick chain.
func (d *Driver) Start() error {
	if d.cursor == nil || d.cursor.Len() == 0 {
		return ErrNoLog
	}
	if d.state != Idle {
		return errors.New("playback: start requires idle state")
	}
	d.state = Playing
	d.gen++
	return nil
}

// Pause stops automatic advancement. No tick scheduled before Pause
// returns will apply.
func (d *Driver) Pause() {
	if d.state == Playing {
		d.state = Paused
		d.gen++
	}
}

// Resume continues playback from Paused.
func (d *Driver) Resume() error {
	if d.state != Paused {
		return ErrNotPaused
	}
	d.state = Playing
	d.gen++
	return nil
}

// Reset returns to Idle at the initial step from any state.
func (d *Driver) Reset() {
	if d.cursor != nil {
		d.cursor.Reset()
	}
	d.state = Idle
	d.gen++
}

// Tick applies one tick's worth of advancement: exactly one cursor
// step. Ticks carrying a stale generation, or arriving in any state
// other than Playing, are dropped. When the cursor is already at the
// end the driver transitions to Finished and stops ticking.
func (d *Driver) Tick(gen int) bool {
	if gen != d.gen || d.state != Playing {
		return false
	}
	if !d.cursor.Advance() {
		d.state = Finished
		d.gen++
		return false
	}
	return true
}

// Step advances the cursor manually. Permitted in any state except
// Playing, where it would race with the timer-driven advance.
func (d *Driver) Step() (bool, error) {
	if d.cursor == nil {
		return false, ErrNoLog
	}
	if d.state == Playing {
		return false, ErrPlaying
	}
	return d.cursor.Advance(), nil
}

// StepBack retreats the cursor manually. Retreating out of Finished
// lands in Paused, since the run is no longer at its end.
func (d *Driver) StepBack() (bool, error) {
	if d.cursor == nil {
		return false, ErrNoLog
	}
	if d.state == Playing {
		return false, ErrPlaying
	}
	moved := d.cursor.Retreat()
	if moved && d.state == Finished {
		d.state = Paused
	}
	return moved, nil
}
