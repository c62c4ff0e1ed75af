// Package playback navigates sealed step logs.
//
// A [Cursor] provides bounded random access into one log; a [Driver]
// layers the play/pause state machine on top:
//
//	Idle --start--> Playing --pause--> Paused --resume--> Playing
//	Playing --(advance fails)--> Finished
//	any --reset--> Idle, any --load--> Idle
//
// The driver is deliberately timer-free: the UI schedules ticks at
// Driver.Interval and delivers them together with the generation it
// captured when scheduling. Pause, Reset, Load, and the transition to
// Finished each bump the generation, which drops stale ticks instead
// of applying them.
//
// # Thread Safety
//
// Driver and Cursor assume a single logical owner, one cooperative
// execution context for ticks, manual steps, and rendering.
package playback
