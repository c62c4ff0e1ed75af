// Package analysis provides disorder metrics over recorded sort runs.
//
//   - [Inversions]: out-of-order pair count for a single snapshot
//   - [InversionSeries]: inversion count at every step of a log
//   - [Runs]: maximal non-decreasing run count
//   - [Sortedness]: normalized disorder in [0, 1]
//
// The series functions feed terminal plots that show how quickly each
// algorithm drives disorder to zero.
package analysis
