// Package step provides the recording primitives for sorting runs.
//
// An algorithm executes to completion up front while a [Recorder]
// captures every semantically meaningful mutation as a [Step]: a
// copied snapshot of the array, the highlighted indices, and a
// description. The sealed [Log] is then replayed any number of times
// by the playback layer; it never changes after Finish.
//
//	rec, err := step.NewRecorder(input, "initial state")
//	rec.Record(values, step.Highlights{step.RoleComparing: []int{0, 1}}, "comparing 5 and 1")
//	log := rec.Finish(values, "sorting completed")
//
// # Thread Safety
//
// Recorder instances are NOT thread-safe; one recorder serves one
// run. A sealed Log is immutable and safe for concurrent reads.
package step
