package list

import (
	"cmp"
	"slices"
)

// Sort sorts the list in place in ascending order. The sort is not stable.
func Sort[T cmp.Ordered](l *List[T]) {
	slices.Sort(l.Slice())
}

// SortFunc sorts the list in place using compare, which must define a strict
// weak ordering as in slices.SortFunc. The sort is not stable.
func SortFunc[T any](l *List[T], compare func(a, b T) int) {
	slices.SortFunc(l.Slice(), compare)
}

// SortStableFunc sorts the list in place using compare, keeping the original
// order of equal elements.
func SortStableFunc[T any](l *List[T], compare func(a, b T) int) {
	slices.SortStableFunc(l.Slice(), compare)
}

// Sorted returns a sorted copy of the list and leaves the list unchanged.
func Sorted[T cmp.Ordered](l *List[T]) *List[T] {
	sorted := l.Clone(false)
	Sort(sorted)

	return sorted
}

// SortedFunc returns a copy of the list sorted with compare and leaves the
// list unchanged.
func SortedFunc[T any](l *List[T], compare func(a, b T) int) *List[T] {
	sorted := l.Clone(false)
	SortFunc(sorted, compare)

	return sorted
}
