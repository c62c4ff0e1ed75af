package playback

import (
	"reflect"
	"testing"

	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/step"
)

func buildLog(t *testing.T, input []int) *step.Log {
	t.Helper()
	log, err := algo.NewBubble().Run(input)
	if err != nil {
		t.Fatalf("build log: %v", err)
	}
	return log
}

func TestCursor_SeekClamps(t *testing.T) {
	log := buildLog(t, []int{3, 1, 2})
	c := NewCursor(log)

	tests := []struct {
		name     string
		seek     int
		expected int
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"in range", 2, 2},
		{"past end", log.Len() + 10, log.Len() - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Seek(tt.seek)
			if c.Position() != tt.expected {
				t.Errorf("Seek(%d): position = %d, want %d", tt.seek, c.Position(), tt.expected)
			}
		})
	}
}

func TestCursor_AdvanceRetreatBounds(t *testing.T) {
	log := buildLog(t, []int{2, 1})
	c := NewCursor(log)

	if c.Retreat() {
		t.Error("retreat at start should not move")
	}

	moves := 0
	for c.Advance() {
		moves++
		if moves > log.Len() {
			t.Fatal("advance ran past the end")
		}
	}
	if moves != log.Len()-1 {
		t.Errorf("advanced %d times, want %d", moves, log.Len()-1)
	}
	if !c.AtEnd() {
		t.Error("cursor should be at end")
	}

	// Repeated advance at the last position is a no-op and returns false.
	for i := 0; i < 3; i++ {
		if c.Advance() {
			t.Error("advance at end should return false")
		}
		if c.Position() != log.Len()-1 {
			t.Errorf("position moved to %d at end", c.Position())
		}
	}
}

func TestCursor_ReplayIsIdentical(t *testing.T) {
	log := buildLog(t, []int{5, 1, 4, 2})
	c := NewCursor(log)

	collect := func() []step.Step {
		var steps []step.Step
		steps = append(steps, c.Current())
		for c.Advance() {
			steps = append(steps, c.Current())
		}
		return steps
	}

	first := collect()
	c.Reset()
	second := collect()

	if !reflect.DeepEqual(first, second) {
		t.Error("replay after reset differs from the original pass")
	}
	for i, s := range first {
		if !reflect.DeepEqual(s.Values, second[i].Values) {
			t.Errorf("step %d values differ on replay", i)
		}
		if !reflect.DeepEqual(s.Highlights, second[i].Highlights) {
			t.Errorf("step %d highlights differ on replay", i)
		}
	}
}

func TestCursor_CurrentAndReset(t *testing.T) {
	log := buildLog(t, []int{3, 1, 2})
	c := NewCursor(log)

	if c.Current().Seq != 0 {
		t.Errorf("initial current seq = %d", c.Current().Seq)
	}

	c.Seek(2)
	if c.Current().Seq != 2 {
		t.Errorf("current seq after seek = %d", c.Current().Seq)
	}

	c.Reset()
	if !c.AtStart() || c.Current().Seq != 0 {
		t.Error("reset did not return to the initial step")
	}
}
