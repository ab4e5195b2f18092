package spillvec

import (
	"errors"
	"iter"

	"golang.org/x/exp/slices"

	"github.com/dreamware/spillvec/inline"
)

// ErrIndexOutOfBounds is returned when an index falls outside the current
// element count
// It aliases the inline package's sentinel so errors.Is matches no matter
// which region rejected the index
var ErrIndexOutOfBounds = inline.ErrIndexOutOfBounds

// Vec is an unbounded, insertion-ordered container that stores its first
// elements in a fixed inline region and spills the rest into a growable
// overflow buffer
//
// The two regions behave as one contiguous sequence: logical index i lives
// in the inline region when i < InlineCap(), otherwise in the overflow
// buffer at position i - InlineCap(). The overflow buffer holds elements
// only while the inline region is completely full, so the inline region
// always fills front-to-back before anything is heap-allocated
type Vec[T any] struct {
	arr      *inline.Array[T] // Fixed inline region, filled before anything spills
	overflow []T              // Growable buffer for elements at indexes >= inline capacity
}

// New creates an empty Vec whose first inlineCap elements are stored
// without touching the overflow buffer
// Panics if inlineCap is negative
func New[T any](inlineCap int) *Vec[T] {
	return &Vec[T]{
		arr: inline.New[T](inlineCap),
	}
}

// From creates a Vec holding vals in order, filling the inline region
// first and spilling the remainder into the overflow buffer
func From[T any](inlineCap int, vals ...T) *Vec[T] {
	v := New[T](inlineCap)
	if spill := len(vals) - inlineCap; spill > 0 {
		v.overflow = slices.Grow(v.overflow, spill)
	}
	v.Append(vals...)
	return v
}

// FromSeq creates a Vec holding every element produced by seq, in order
func FromSeq[T any](inlineCap int, seq iter.Seq[T]) *Vec[T] {
	v := New[T](inlineCap)
	v.Extend(seq)
	return v
}

// Push appends val after the last element
// The inline region absorbs the push until it is full; after that the
// element goes to the overflow buffer, so Push never fails
func (v *Vec[T]) Push(val T) {
	if err := v.arr.Push(val); errors.Is(err, inline.ErrCapacityExceeded) {
		v.overflow = append(v.overflow, val)
	}
}

// Pop removes and returns the last element
// The second result is false when the Vec is empty
// Spilled elements drain first, so the inline region is never left with a
// gap while the overflow buffer still holds anything
func (v *Vec[T]) Pop() (T, bool) {
	if n := len(v.overflow); n > 0 {
		var zero T
		val := v.overflow[n-1]
		v.overflow[n-1] = zero // release for GC
		v.overflow = v.overflow[:n-1]
		return val, true
	}
	return v.arr.Pop()
}

// Get returns the element at logical index i
// The second result is false when i is outside the current length
func (v *Vec[T]) Get(i int) (T, bool) {
	if i < v.arr.Cap() {
		return v.arr.Get(i)
	}
	j := i - v.arr.Cap()
	if j >= len(v.overflow) {
		var zero T
		return zero, false
	}
	return v.overflow[j], true
}

// At returns a pointer to the element at logical index i for in-place
// mutation, or nil when i is outside the current length
// Pointers into the overflow buffer are invalidated by any operation that
// grows it; pointers into the inline region stay valid until the element
// is removed or shifted
func (v *Vec[T]) At(i int) *T {
	if i < v.arr.Cap() {
		return v.arr.At(i)
	}
	j := i - v.arr.Cap()
	if j >= len(v.overflow) {
		return nil
	}
	return &v.overflow[j]
}

// Set overwrites the element at logical index i with val
// Returns ErrIndexOutOfBounds when i is outside the current length
func (v *Vec[T]) Set(i int, val T) error {
	if i < v.arr.Cap() {
		return v.arr.Set(i, val)
	}
	j := i - v.arr.Cap()
	if j >= len(v.overflow) {
		return ErrIndexOutOfBounds
	}
	v.overflow[j] = val
	return nil
}

// First returns the first element, or false when the Vec is empty
func (v *Vec[T]) First() (T, bool) {
	if val, ok := v.arr.First(); ok {
		return val, true
	}
	// Reachable only with a zero-capacity inline region
	if len(v.overflow) > 0 {
		return v.overflow[0], true
	}
	var zero T
	return zero, false
}

// Last returns the last element, or false when the Vec is empty
func (v *Vec[T]) Last() (T, bool) {
	if n := len(v.overflow); n > 0 {
		return v.overflow[n-1], true
	}
	return v.arr.Last()
}

// Len returns the total number of elements across both regions
func (v *Vec[T]) Len() int {
	return v.arr.Len() + len(v.overflow)
}

// Cap returns how many elements fit without any further allocation: the
// inline capacity plus the overflow buffer's current capacity
// Unlike the inline capacity this is not a bound; the overflow buffer can
// always grow
func (v *Vec[T]) Cap() int {
	return v.arr.Cap() + cap(v.overflow)
}

// InlineLen returns the number of elements held in the inline region
func (v *Vec[T]) InlineLen() int {
	return v.arr.Len()
}

// InlineCap returns the fixed capacity of the inline region
func (v *Vec[T]) InlineCap() int {
	return v.arr.Cap()
}

// OverflowLen returns the number of elements held in the overflow buffer
func (v *Vec[T]) OverflowLen() int {
	return len(v.overflow)
}

// OverflowCap returns the overflow buffer's current allocated capacity
func (v *Vec[T]) OverflowCap() int {
	return cap(v.overflow)
}

// Spilled reports whether any element currently lives in the overflow
// buffer
func (v *Vec[T]) Spilled() bool {
	return len(v.overflow) > 0
}

// Truncate drops elements from the tail until at most n remain
// A negative n is treated as 0; n >= Len() is a no-op
// Truncating below the inline capacity empties the overflow buffer, so
// the no-spill-until-full invariant holds afterwards
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.Len() {
		return
	}
	if n >= v.arr.Cap() {
		v.truncateOverflow(n - v.arr.Cap())
		return
	}
	v.arr.Truncate(n)
	v.truncateOverflow(0)
}

// Clear removes all elements
// The overflow buffer keeps its allocation for reuse
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// truncateOverflow shrinks the overflow buffer to n elements, zeroing the
// dropped slots so anything they referenced can be collected
// The buffer's capacity is retained
func (v *Vec[T]) truncateOverflow(n int) {
	var zero T
	for i := n; i < len(v.overflow); i++ {
		v.overflow[i] = zero
	}
	v.overflow = v.overflow[:n]
}

// Remove removes and returns the element at logical index i, shifting
// every later element left by one position
// When the removal happens in the inline region while elements are
// spilled, the overflow buffer's front element moves into the vacated
// last inline slot, keeping the inline region full
// Returns ErrIndexOutOfBounds when i is outside the current length
func (v *Vec[T]) Remove(i int) (T, error) {
	if i >= v.arr.Cap() {
		j := i - v.arr.Cap()
		if j >= len(v.overflow) {
			var zero T
			return zero, ErrIndexOutOfBounds
		}
		val := v.overflow[j]
		v.overflow = slices.Delete(v.overflow, j, j+1)
		return val, nil
	}
	val, err := v.arr.Remove(i)
	if err != nil {
		return val, err
	}
	if len(v.overflow) > 0 {
		front := v.overflow[0]
		v.overflow = slices.Delete(v.overflow, 0, 1)
		_ = v.arr.Push(front) // cannot fail, Remove just vacated a slot
	}
	return val, nil
}

// SwapRemove removes and returns the element at logical index i, moving
// the last element of the Vec into its place instead of shifting
// Constant time apart from inline bookkeeping, but element order is not
// preserved
// Returns ErrIndexOutOfBounds when i is outside the current length
func (v *Vec[T]) SwapRemove(i int) (T, error) {
	if i >= v.arr.Cap() {
		j := i - v.arr.Cap()
		n := len(v.overflow)
		if j >= n {
			var zero T
			return zero, ErrIndexOutOfBounds
		}
		var zero T
		val := v.overflow[j]
		v.overflow[j] = v.overflow[n-1]
		v.overflow[n-1] = zero
		v.overflow = v.overflow[:n-1]
		return val, nil
	}
	if len(v.overflow) > 0 {
		old, ok := v.arr.Get(i)
		if !ok {
			var zero T
			return zero, ErrIndexOutOfBounds
		}
		last, _ := v.Pop() // drains from the overflow tail
		_ = v.arr.Set(i, last)
		return old, nil
	}
	return v.arr.SwapRemove(i)
}

// Resize grows or shrinks the Vec to exactly n elements, filling any new
// positions with fill
// A negative n is treated as 0
func (v *Vec[T]) Resize(n int, fill T) {
	v.ResizeWith(n, func() T { return fill })
}

// ResizeWith grows or shrinks the Vec to exactly n elements, filling each
// new position with the result of one produce call
// Growth tops the inline region up to full before the overflow buffer
// takes anything; shrinking below the inline capacity empties the
// overflow buffer
func (v *Vec[T]) ResizeWith(n int, produce func() T) {
	if n < 0 {
		n = 0
	}
	inlineCap := v.arr.Cap()
	if n <= inlineCap {
		_ = v.arr.ResizeWith(n, produce) // cannot fail, n fits inline
		v.truncateOverflow(0)
		return
	}
	_ = v.arr.ResizeWith(inlineCap, produce)
	want := n - inlineCap
	if want <= len(v.overflow) {
		v.truncateOverflow(want)
		return
	}
	v.overflow = slices.Grow(v.overflow, want-len(v.overflow))
	for len(v.overflow) < want {
		v.overflow = append(v.overflow, produce())
	}
}

// Extend pushes every element produced by seq, one at a time, routing
// each through the same path as Push
func (v *Vec[T]) Extend(seq iter.Seq[T]) {
	for val := range seq {
		v.Push(val)
	}
}

// Append pushes vals in order, one at a time
func (v *Vec[T]) Append(vals ...T) {
	for _, val := range vals {
		v.Push(val)
	}
}

// Reserve pre-allocates overflow capacity for at least additional more
// elements beyond the current length
// Purely an optimization to avoid repeated reallocation; it never changes
// the length and is never required for correctness
func (v *Vec[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	v.overflow = slices.Grow(v.overflow, additional)
}

// Values returns an iterator over the elements in logical order, inline
// region first, then the overflow buffer
// The sequence can be ranged over any number of times
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range v.arr.Values() {
			if !yield(val) {
				return
			}
		}
		for _, val := range v.overflow {
			if !yield(val) {
				return
			}
		}
	}
}

// All returns an iterator over logical index/element pairs in order
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range v.arr.All() {
			if !yield(i, val) {
				return
			}
		}
		for j, val := range v.overflow {
			if !yield(v.arr.Cap()+j, val) {
				return
			}
		}
	}
}

// Ptrs returns an iterator over pointers to the elements, in logical
// order, for in-place mutation while ranging
func (v *Vec[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p := range v.arr.Ptrs() {
			if !yield(p) {
				return
			}
		}
		for j := range v.overflow {
			if !yield(&v.overflow[j]) {
				return
			}
		}
	}
}

// ToSlice returns the elements copied into a new slice, in logical order
func (v *Vec[T]) ToSlice() []T {
	out := make([]T, 0, v.Len())
	for val := range v.arr.Values() {
		out = append(out, val)
	}
	return append(out, v.overflow...)
}
