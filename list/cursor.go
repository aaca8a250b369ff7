package list

import "log"

// A Cursor walks the elements of a list once, from first to last, and gives
// access to each element in place.
//
// A cursor reads the buffer as it is at each step. If the list shrinks, the
// cursor stops early rather than reading removed elements.
type Cursor[T any] struct {
	buf  *buffer[T]
	next int
}

// Cursor returns a cursor positioned before the first element.
func (l *List[T]) Cursor() *Cursor[T] {
	if l == nil {
		return &Cursor[T]{}
	}

	return &Cursor[T]{buf: l.buffer()}
}

// More returns true if Next can be called.
func (c *Cursor[T]) More() bool {
	return c.buf != nil && c.next < len(c.buf.elements)
}

// Next returns a pointer to the next element and advances the cursor. It
// panics if there are no more elements.
func (c *Cursor[T]) Next() *T {
	if !c.More() {
		log.Panic("list cursor moved past the last element")
	}

	e := &c.buf.elements[c.next]
	c.next++

	return e
}

// A ConstCursor is a read-only Cursor.
type ConstCursor[T any] struct {
	buf  *buffer[T]
	next int
}

// ConstCursor returns a read-only cursor positioned before the first element.
func (l *List[T]) ConstCursor() *ConstCursor[T] {
	if l == nil {
		return &ConstCursor[T]{}
	}

	return &ConstCursor[T]{buf: l.buffer()}
}

// More returns true if Next can be called.
func (c *ConstCursor[T]) More() bool {
	return c.buf != nil && c.next < len(c.buf.elements)
}

// Next returns the next element and advances the cursor. It panics if there
// are no more elements.
func (c *ConstCursor[T]) Next() T {
	if !c.More() {
		log.Panic("list cursor moved past the last element")
	}

	e := c.buf.elements[c.next]
	c.next++

	return e
}
