package list

import "errors"

var (
	// ErrOutOfRange is returned when an index, or a run of elements starting
	// at an index, does not fit in the list.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidRange is returned by Range for malformed bounds.
	ErrInvalidRange = errors.New("illegal range")

	// ErrEmpty is returned by First and Last on an empty list.
	ErrEmpty = errors.New("list is empty")

	// ErrFormat is returned when decoding malformed list text.
	ErrFormat = errors.New("malformed list text")
)
