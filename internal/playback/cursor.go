package playback

import "github.com/san-kum/sortlab/internal/step"

// Cursor tracks the current position in a sealed step log. All
// navigation clamps to [0, len-1]: stepping past the ends is a
// normal, frequent user action, not an error.
type Cursor struct {
	log *step.Log
	pos int
}

// NewCursor binds a cursor to a log, positioned at the initial step.
func NewCursor(log *step.Log) *Cursor {
	return &Cursor{log: log}
}

// Seek moves to an absolute position, clamped to the log bounds.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if max := c.log.Len() - 1; pos > max {
		pos = max
	}
	c.pos = pos
}

// Advance moves forward one step. It reports whether movement
// actually occurred, so callers can disable their "next" affordance.
func (c *Cursor) Advance() bool {
	if c.pos >= c.log.Len()-1 {
		return false
	}
	c.pos++
	return true
}

// Retreat moves back one step, reporting whether movement occurred.
func (c *Cursor) Retreat() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	return true
}

// Current returns the step at the cursor position.
func (c *Cursor) Current() step.Step { return c.log.At(c.pos) }

func (c *Cursor) Reset() { c.pos = 0 }

func (c *Cursor) Position() int { return c.pos }

func (c *Cursor) Len() int { return c.log.Len() }

func (c *Cursor) AtStart() bool { return c.pos == 0 }

func (c *Cursor) AtEnd() bool { return c.pos == c.log.Len()-1 }
