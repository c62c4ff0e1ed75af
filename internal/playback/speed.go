package playback

import (
	"fmt"
	"time"
)

// Speed is the discrete playback rate selected by the user. It maps
// to the interval between automatic ticks; changing speed takes
// effect when the next tick is scheduled, not retroactively.
type Speed int

const (
	VerySlow Speed = iota
	Slow
	Medium
	Fast
	VeryFast
)

var speedIntervals = map[Speed]time.Duration{
	VerySlow: 2000 * time.Millisecond,
	Slow:     1500 * time.Millisecond,
	Medium:   1000 * time.Millisecond,
	Fast:     500 * time.Millisecond,
	VeryFast: 200 * time.Millisecond,
}

var speedNames = map[Speed]string{
	VerySlow: "very-slow",
	Slow:     "slow",
	Medium:   "medium",
	Fast:     "fast",
	VeryFast: "very-fast",
}

// Interval returns the tick interval for this speed.
func (s Speed) Interval() time.Duration {
	if d, ok := speedIntervals[s]; ok {
		return d
	}
	return speedIntervals[Medium]
}

func (s Speed) String() string {
	if n, ok := speedNames[s]; ok {
		return n
	}
	return "medium"
}

// Faster returns the next speed up, clamped at VeryFast.
func (s Speed) Faster() Speed {
	if s >= VeryFast {
		return VeryFast
	}
	return s + 1
}

// Slower returns the next speed down, clamped at VerySlow.
func (s Speed) Slower() Speed {
	if s <= VerySlow {
		return VerySlow
	}
	return s - 1
}

// SpeedNames lists the valid speed names from slowest to fastest.
func SpeedNames() []string {
	names := make([]string, 0, len(speedNames))
	for s := VerySlow; s <= VeryFast; s++ {
		names = append(names, speedNames[s])
	}
	return names
}

// ParseSpeed maps a config/CLI name to a Speed.
func ParseSpeed(name string) (Speed, error) {
	for s, n := range speedNames {
		if n == name {
			return s, nil
		}
	}
	return Medium, fmt.Errorf("playback: unknown speed %q", name)
}
