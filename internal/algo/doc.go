// Package algo implements the sorting algorithms as step-log
// producers.
//
// Each algorithm implements the [Adapter] interface, turning an input
// array into a sealed [step.Log]:
//
//   - [Bubble]: adjacent swaps, early exit on a swap-free pass
//   - [Selection]: leftmost minimum per pass, no-op swaps recorded
//   - [Insertion]: one visible shift per displacement
//   - [Merge]: split boundaries recorded, one placement per step
//   - [Quick]: last-element pivot, recursion ranges highlighted
//
// A step is recorded before any mutation and after every semantically
// meaningful mutation. Never batch mutations into one step: the
// educational value depends on one step per action.
package algo
