package list

import "cmp"

// Equal returns true if both lists have the same size and equal elements in
// the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Size() != b.Size() {
		return false
	}

	for i, j := a.ConstCursor(), b.ConstCursor(); i.More(); {
		if !eq(i.Next(), j.Next()) {
			return false
		}
	}

	return true
}

// Compare compares two lists lexicographically. The first differing element
// decides; if one list is a prefix of the other, the shorter one is smaller.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but compares elements with compare.
func CompareFunc[T, U any](a *List[T], b *List[U], compare func(T, U) int) int {
	for i, j := a.ConstCursor(), b.ConstCursor(); i.More() && j.More(); {
		if c := compare(i.Next(), j.Next()); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.Size(), b.Size())
}

// Less returns true if a sorts before b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// Contains returns true if some element of the list equals value.
func Contains[T comparable](l *List[T], value T) bool {
	return ContainsFunc(l, func(e T) bool { return e == value })
}

// ContainsFunc returns true if some element of the list satisfies match.
func ContainsFunc[T any](l *List[T], match func(T) bool) bool {
	for c := l.ConstCursor(); c.More(); {
		if match(c.Next()) {
			return true
		}
	}

	return false
}

// Index returns the index of the first element equal to value, or -1.
func Index[T comparable](l *List[T], value T) int {
	for i, e := range l.All() {
		if e == value {
			return i
		}
	}

	return -1
}
