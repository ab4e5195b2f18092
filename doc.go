// Package spillvec provides a hybrid container that keeps a bounded number
// of elements in a fixed inline region and transparently spills further
// elements into a growable overflow buffer, avoiding heap growth entirely
// while the element count stays at or below the inline capacity.
//
// # Overview
//
// A Vec[T] behaves like one contiguous, unbounded sequence. Internally it
// is two regions: an inline.Array with a capacity N fixed at construction,
// and a dynamically growing overflow buffer for everything past the first
// N elements. Elements never migrate between regions except at the
// boundary: the inline region fills front-to-back first, and the overflow
// buffer's first element always logically follows the last inline slot.
//
// # Architecture
//
// Every operation routes by comparing the logical index against the
// inline capacity:
//
//	                logical index i
//	                       │
//	            ┌── i < N ─┴─ i >= N ──┐
//	            ▼                      ▼
//	┌───────────────────────┐  ┌──────────────────────────┐
//	│   inline.Array[T]     │  │   overflow buffer []T    │
//	│   fixed capacity N    │  │   element at i - N       │
//	│   never reallocates   │  │   grows without bound    │
//	└───────────────────────┘  └──────────────────────────┘
//
// One invariant governs every state the container can reach: the overflow
// buffer is non-empty only while the inline region is completely full.
// Each mutating operation restores it — Pop drains the overflow first,
// Truncate below N clears the overflow, Remove in the inline region
// backfills the vacated slot from the overflow front, and Resize tops the
// inline region up before the overflow takes anything.
//
// # Operations
//
// Vec supports the full growable-sequence surface:
//   - Push / Pop / Extend / Append - tail insertion and removal
//   - Get / At / Set / First / Last - indexed and endpoint access
//   - Remove / SwapRemove - positional removal, order-keeping or O(1)
//   - Truncate / Clear / Resize / ResizeWith - bulk length changes
//   - Reserve - overflow pre-allocation hint
//   - Values / All / Ptrs / ToSlice - restartable iteration and export
//   - Len / Cap / InlineLen / InlineCap / OverflowLen / OverflowCap /
//     Spilled - length and region queries
//
// Push cannot fail: the overflow buffer absorbs everything the inline
// region cannot. For a bounded container with the same inline semantics
// and no heap at all, use the inline package directly.
//
// # Usage
//
//	v := spillvec.New[int](3)
//	v.Append(1, 2, 3) // all inline
//	v.Push(4)         // spills
//	fmt.Println(v.Spilled(), v.Len()) // true 4
//	if x, ok := v.Get(3); ok {
//		fmt.Println(x) // 4
//	}
//	v.Truncate(2) // back inline-only; overflow emptied
//
// # Concurrency
//
// Vec performs no synchronization. Callers that share a Vec across
// goroutines must serialize mutation externally; concurrent readers are
// safe only while no writer is active.
package spillvec
