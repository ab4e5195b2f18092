// Package inline provides a fixed-capacity, insertion-ordered array whose
// backing storage is allocated exactly once and never reallocated, giving
// every element a stable address for its entire lifetime in the container.
//
// # Overview
//
// An Array[T] holds up to N elements, where N is chosen at construction
// and never changes. Elements always occupy a contiguous prefix of the
// backing storage: slot 0 through slot Len()-1 are live, everything after
// is vacant. There are no holes, so indexed access, iteration order, and
// removal semantics all match a plain slice while guaranteeing that the
// storage itself never moves.
//
// # Architecture
//
// The array is a single allocation plus a fill counter:
//
//	┌───────────────────────────────────────────┐
//	│              Array[T] (N = 6)             │
//	├──────┬──────┬──────┬──────┬──────┬────────┤
//	│ live │ live │ live │ live │ zero │  zero  │
//	└──────┴──────┴──────┴──────┴──────┴────────┘
//	                            ▲
//	                        filled = 4
//
// Vacated slots are overwritten with the zero value of T the moment an
// element is popped, truncated, or shifted away, so references held by
// removed elements never pin memory.
//
// # Operations
//
// Array supports the full bounded-container surface:
//   - Push / Pop - stack discipline at the tail, O(1)
//   - Get / At / Set - indexed access, O(1); At returns a stable pointer
//   - First / Last - endpoint access without index arithmetic
//   - Remove - order-preserving removal, shifts the tail left, O(n)
//   - SwapRemove - order-breaking removal, O(1)
//   - Truncate / Clear / Resize / ResizeWith - bulk length changes
//   - Extend / Append - element-at-a-time bulk insertion
//   - Values / All / Ptrs - restartable iterators in insertion order
//
// Operations that would exceed the capacity fail with
// ErrCapacityExceeded; operations addressing an index outside the live
// prefix fail with ErrIndexOutOfBounds or report absence through their
// (value, ok) result. Nothing here allocates after construction.
//
// # Usage
//
//	a := inline.New[string](4)
//	a.Push("alpha")
//	a.Push("beta")
//	if v, ok := a.Get(1); ok {
//		fmt.Println(v) // "beta"
//	}
//	for v := range a.Values() {
//		fmt.Println(v)
//	}
//
// # Concurrency
//
// Array performs no synchronization. Callers that share an Array across
// goroutines must serialize mutation externally; concurrent readers are
// safe only while no writer is active.
package inline
