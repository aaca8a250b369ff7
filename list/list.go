// Package list provides List, a growable sequence whose buffer can be shared
// between handles.
//
// Indices may be negative, in which case they count from the end of the list:
// -1 is the last element, -Size() the first. Every operation that takes an
// index normalizes it the same way before checking bounds.
//
// A *List is a handle. Assigning the pointer, or calling Rebind, makes two
// handles share one buffer so that mutations through either are visible
// through both. From, FromSeq, Range and Clone always copy into a new buffer.
//
// Lists are not safe for concurrent use. Callers that share a buffer across
// goroutines must serialize access themselves.
package list

import (
	"fmt"
	"iter"
	"log"
	"slices"

	"github.com/sarchlab/clarus/hooking"
)

type buffer[T any] struct {
	hooking.HookableBase

	elements []T
}

// A List is an ordered, growable sequence of elements of type T. The zero
// value is an empty list ready to use.
type List[T any] struct {
	buf *buffer[T]
}

// DeepCloner is implemented by element types that own resources of their
// own. Clone(true) calls DeepClone on every element that implements it.
type DeepCloner[T any] interface {
	DeepClone() T
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{buf: &buffer[T]{}}
}

// NewSized creates a list holding n zero values.
func NewSized[T any](n int) *List[T] {
	return &List[T]{buf: &buffer[T]{elements: make([]T, n)}}
}

// NewFilled creates a list holding n copies of value.
func NewFilled[T any](n int, value T) *List[T] {
	l := NewSized[T](n)
	for i := range l.buf.elements {
		l.buf.elements[i] = value
	}

	return l
}

// From creates a list holding a copy of the given slice.
func From[T any](s []T) *List[T] {
	elements := make([]T, len(s))
	copy(elements, s)

	return &List[T]{buf: &buffer[T]{elements: elements}}
}

// FromSeq creates a list holding the values produced by seq.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	return &List[T]{buf: &buffer[T]{elements: slices.Collect(seq)}}
}

// Of creates a list holding the given values.
func Of[T any](values ...T) *List[T] {
	return From(values)
}

func (l *List[T]) buffer() *buffer[T] {
	if l.buf == nil {
		l.buf = &buffer[T]{}
	}

	return l.buf
}

func (l *List[T]) elements() []T {
	if l == nil || l.buf == nil {
		return nil
	}

	return l.buf.elements
}

func (l *List[T]) normalize(index int) int {
	if index < 0 {
		return index + l.Size()
	}

	return index
}

func (l *List[T]) checkIndex(index int) (int, error) {
	i := l.normalize(index)
	if i < 0 || i >= l.Size() {
		return 0, fmt.Errorf("%w: index %d for list of size %d",
			ErrOutOfRange, index, l.Size())
	}

	return i, nil
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return len(l.elements())
}

// Empty returns true if the list has no elements.
func (l *List[T]) Empty() bool {
	return l.Size() == 0
}

// At returns the element at the given index.
func (l *List[T]) At(index int) (T, error) {
	i, err := l.checkIndex(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.buf.elements[i], nil
}

// Ptr returns a pointer to the element at the given index, so that the
// element can be modified in place. The pointer refers to the list's buffer
// until the buffer grows.
func (l *List[T]) Ptr(index int) (*T, error) {
	i, err := l.checkIndex(index)
	if err != nil {
		return nil, err
	}

	return &l.buf.elements[i], nil
}

// Set replaces the element at the given index.
func (l *List[T]) Set(index int, value T) error {
	i, err := l.checkIndex(index)
	if err != nil {
		return err
	}

	l.buf.elements[i] = value

	return nil
}

// Range returns a new list holding copies of the elements from index a up to
// b-1. Both bounds may be negative. It fails with ErrInvalidRange if a >= b,
// or if the normalized bounds do not select a non-empty span of the list.
func (l *List[T]) Range(a, b int) (*List[T], error) {
	n := l.Size()
	start, end := l.normalize(a), l.normalize(b)

	if a >= b || start < 0 || start >= end || end > n {
		return nil, fmt.Errorf("%w (%d, %d) for list of size %d",
			ErrInvalidRange, a, b, n)
	}

	return From(l.buf.elements[start:end]), nil
}

// Rebind discards the list's current buffer and shares the buffer of other
// instead. No element is copied. It panics if other is nil.
func (l *List[T]) Rebind(other *List[T]) {
	if other == nil {
		log.Panic("cannot rebind to a nil list")
	}

	l.buf = other.buffer()
}

// Shares returns true if both lists refer to the same buffer. A nil list
// shares nothing.
func (l *List[T]) Shares(other *List[T]) bool {
	if l == nil || other == nil {
		return false
	}

	return l.buf != nil && l.buf == other.buf
}

// Append adds a zero value at the end of the list and returns a pointer to it.
func (l *List[T]) Append() *T {
	var zero T

	return l.AppendValue(zero)
}

// AppendValue adds value at the end of the list and returns a pointer to the
// stored copy.
func (l *List[T]) AppendValue(value T) *T {
	b := l.buffer()
	b.elements = append(b.elements, value)
	i := len(b.elements) - 1

	l.invokeHook(HookPosAppend, value, Mutation{Index: i, Count: 1})

	return &b.elements[i]
}

// Push appends all the values and returns the list, so that calls can be
// chained.
func (l *List[T]) Push(values ...T) *List[T] {
	b := l.buffer()
	start := len(b.elements)
	b.elements = append(b.elements, values...)

	l.invokeHook(HookPosAppend, values, Mutation{Index: start, Count: len(values)})

	return l
}

// Extend appends copies of all the elements of other, in order.
func (l *List[T]) Extend(other *List[T]) {
	b := l.buffer()
	start := len(b.elements)

	// other may share l's buffer, so stop at its original size.
	remaining := other.Size()
	b.elements = slices.Grow(b.elements, remaining)

	for c := other.ConstCursor(); remaining > 0 && c.More(); remaining-- {
		b.elements = append(b.elements, c.Next())
	}

	added := len(b.elements) - start
	if added > 0 && b.NumHooks() > 0 {
		l.invokeHook(HookPosAppend, slices.Clone(b.elements[start:]),
			Mutation{Index: start, Count: added})
	}
}

// Reserve makes room in the buffer for at least n elements.
func (l *List[T]) Reserve(n int) {
	b := l.buffer()
	if n > cap(b.elements) {
		b.elements = slices.Grow(b.elements, n-len(b.elements))
	}
}

// Capacity returns how many elements the buffer can hold before it grows.
func (l *List[T]) Capacity() int {
	return cap(l.elements())
}

// Clear removes all the elements. The buffer keeps its capacity.
func (l *List[T]) Clear() {
	b := l.buffer()
	n := len(b.elements)

	clear(b.elements)
	b.elements = b.elements[:0]

	l.invokeHook(HookPosClear, nil, Mutation{Index: 0, Count: n})
}

// Remove deletes the element at the given index and returns it. Later
// elements shift one position to the left.
func (l *List[T]) Remove(index int) (T, error) {
	i, err := l.checkIndex(index)
	if err != nil {
		var zero T
		return zero, err
	}

	b := l.buf
	value := b.elements[i]
	b.elements = slices.Delete(b.elements, i, i+1)

	l.invokeHook(HookPosRemove, value, Mutation{Index: i, Count: 1})

	return value, nil
}

// RemoveN deletes n contiguous elements starting at the given index.
func (l *List[T]) RemoveN(index, n int) error {
	i, err := l.checkIndex(index)
	if err != nil {
		return err
	}

	if n < 0 || i+n > l.Size() {
		return fmt.Errorf("%w: cannot remove %d elements at index %d "+
			"from list of size %d", ErrOutOfRange, n, index, l.Size())
	}

	if n == 0 {
		return nil
	}

	b := l.buf

	var removed []T
	if b.NumHooks() > 0 {
		removed = slices.Clone(b.elements[i : i+n])
	}

	b.elements = slices.Delete(b.elements, i, i+n)

	l.invokeHook(HookPosRemove, removed, Mutation{Index: i, Count: n})

	return nil
}

// First returns the first element.
func (l *List[T]) First() (T, error) {
	if l.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: no first element", ErrEmpty)
	}

	return l.buf.elements[0], nil
}

// Last returns the last element.
func (l *List[T]) Last() (T, error) {
	if l.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: no last element", ErrEmpty)
	}

	return l.buf.elements[l.Size()-1], nil
}

// Clone returns a list with its own buffer holding copies of the elements. If
// deep is true, elements that implement DeepCloner are duplicated with
// DeepClone; other elements are copied by value.
func (l *List[T]) Clone(deep bool) *List[T] {
	cloned := From(l.elements())
	if !deep {
		return cloned
	}

	for i, e := range cloned.buf.elements {
		if c, ok := any(e).(DeepCloner[T]); ok {
			cloned.buf.elements[i] = c.DeepClone()
		}
	}

	return cloned
}

// DeepClone returns Clone(true). A nil list clones to nil.
func (l *List[T]) DeepClone() *List[T] {
	if l == nil {
		return nil
	}

	return l.Clone(true)
}

// Slice returns the live buffer. Writes to its elements are visible through
// the list; appending to it is not.
func (l *List[T]) Slice() []T {
	return l.elements()
}

// All returns an iterator over the indices and elements of the list.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := 0, l.ConstCursor(); c.More(); i++ {
			if !yield(i, c.Next()) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the list.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.ConstCursor(); c.More(); {
			if !yield(c.Next()) {
				return
			}
		}
	}
}
