package inline

import (
	"errors"
	"iter"
)

// ErrCapacityExceeded is returned when an operation would grow the array
// beyond its fixed capacity
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrIndexOutOfBounds is returned when an index falls outside the current
// element count
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// Array is a fixed-capacity, insertion-ordered container
// The backing storage is allocated exactly once at construction and never
// grows, shrinks, or moves, so element addresses handed out by At and Ptrs
// stay valid until the element is removed or overwritten
type Array[T any] struct {
	slots  []T // Backing storage, length fixed at the capacity forever
	filled int // Live element count; slots[0:filled] are live, the rest zeroed
}

// New creates an empty Array that can hold up to capacity elements
// Panics if capacity is negative
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		panic("inline: negative capacity")
	}
	return &Array[T]{
		slots: make([]T, capacity),
	}
}

// From creates an Array pre-populated with vals, in order
// Returns ErrCapacityExceeded if more values are supplied than fit
func From[T any](capacity int, vals ...T) (*Array[T], error) {
	a := New[T](capacity)
	if len(vals) > capacity {
		return nil, ErrCapacityExceeded
	}
	copy(a.slots, vals)
	a.filled = len(vals)
	return a, nil
}

// Push appends v after the last live element
// Returns ErrCapacityExceeded when the array is full
func (a *Array[T]) Push(v T) error {
	if a.filled == len(a.slots) {
		return ErrCapacityExceeded
	}
	a.slots[a.filled] = v
	a.filled++
	return nil
}

// Pop removes and returns the last element
// The second result is false when the array is empty
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if a.filled == 0 {
		return zero, false
	}
	a.filled--
	v := a.slots[a.filled]
	a.slots[a.filled] = zero // release for GC
	return v, true
}

// Get returns the element at index i
// The second result is false when i is outside the live range
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.filled {
		var zero T
		return zero, false
	}
	return a.slots[i], true
}

// At returns a pointer to the element at index i for in-place mutation,
// or nil when i is outside the live range
// The pointer stays valid until the element is removed or shifted
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= a.filled {
		return nil
	}
	return &a.slots[i]
}

// Set overwrites the element at index i with v
// Returns ErrIndexOutOfBounds when i is outside the live range
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.filled {
		return ErrIndexOutOfBounds
	}
	a.slots[i] = v
	return nil
}

// First returns the first element, or false when the array is empty
func (a *Array[T]) First() (T, bool) {
	return a.Get(0)
}

// Last returns the last element, or false when the array is empty
func (a *Array[T]) Last() (T, bool) {
	return a.Get(a.filled - 1)
}

// Len returns the number of live elements
func (a *Array[T]) Len() int {
	return a.filled
}

// Cap returns the fixed capacity the array was constructed with
func (a *Array[T]) Cap() int {
	return len(a.slots)
}

// Truncate drops elements from the tail until at most n remain
// A negative n is treated as 0; n >= Len() is a no-op
// Dropped slots are zeroed so anything they referenced can be collected
func (a *Array[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= a.filled {
		return
	}
	var zero T
	for i := n; i < a.filled; i++ {
		a.slots[i] = zero
	}
	a.filled = n
}

// Clear removes all elements
func (a *Array[T]) Clear() {
	a.Truncate(0)
}

// Remove removes and returns the element at index i, shifting every
// later element left by one slot
// Returns ErrIndexOutOfBounds when i is outside the live range
func (a *Array[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.filled {
		return zero, ErrIndexOutOfBounds
	}
	v := a.slots[i]
	copy(a.slots[i:], a.slots[i+1:a.filled])
	a.filled--
	a.slots[a.filled] = zero
	return v, nil
}

// SwapRemove removes and returns the element at index i, moving the last
// element into its place instead of shifting
// Constant time, but element order is not preserved
// Returns ErrIndexOutOfBounds when i is outside the live range
func (a *Array[T]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.filled {
		return zero, ErrIndexOutOfBounds
	}
	last, _ := a.Pop()
	if i == a.filled {
		// Removed the final element, nothing to swap in
		return last, nil
	}
	v := a.slots[i]
	a.slots[i] = last
	return v, nil
}

// Resize grows or shrinks the array to exactly n elements, filling any
// new slots with fill
// Returns ErrCapacityExceeded when n is larger than the capacity
func (a *Array[T]) Resize(n int, fill T) error {
	return a.ResizeWith(n, func() T { return fill })
}

// ResizeWith grows or shrinks the array to exactly n elements, filling
// each new slot with the result of one produce call
// Returns ErrCapacityExceeded when n is larger than the capacity
func (a *Array[T]) ResizeWith(n int, produce func() T) error {
	if n > len(a.slots) {
		return ErrCapacityExceeded
	}
	if n <= a.filled {
		a.Truncate(n)
		return nil
	}
	for i := a.filled; i < n; i++ {
		a.slots[i] = produce()
	}
	a.filled = n
	return nil
}

// Extend pushes every element produced by seq, one at a time
// Stops and returns ErrCapacityExceeded at the first element that does
// not fit; elements pushed before that point remain
func (a *Array[T]) Extend(seq iter.Seq[T]) error {
	for v := range seq {
		if err := a.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// Append pushes vals in order, one at a time
// Stops and returns ErrCapacityExceeded at the first value that does
// not fit; values pushed before that point remain
func (a *Array[T]) Append(vals ...T) error {
	for _, v := range vals {
		if err := a.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// Values returns an iterator over the elements in insertion order
// The sequence can be ranged over any number of times
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.filled; i++ {
			if !yield(a.slots[i]) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in insertion order
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.filled; i++ {
			if !yield(i, a.slots[i]) {
				return
			}
		}
	}
}

// Ptrs returns an iterator over pointers to the elements, in order,
// for in-place mutation while ranging
func (a *Array[T]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < a.filled; i++ {
			if !yield(&a.slots[i]) {
				return
			}
		}
	}
}

// ToSlice returns the elements copied into a new slice
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.filled)
	copy(out, a.slots[:a.filled])
	return out
}
