package list

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// A Parser turns the text of a single element into a value.
type Parser[T any] func(text string) (T, error)

// String renders the list as "[e0, e1, ...]", formatting each element with
// fmt.Fprint. An empty list renders as "[]". String elements that are empty,
// have surrounding white space, or contain ',', '[', ']' or '"' are written
// in double quotes so that ParseString reads them back unchanged.
func (l *List[T]) String() string {
	sb := &strings.Builder{}
	_, _ = l.WriteTo(sb)

	return sb.String()
}

// WriteTo writes the text form of the list to w.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	cw.print("[")

	for c := l.ConstCursor(); c.More(); {
		cw.print(quoteIfNeeded(c.Next()))

		if c.More() {
			cw.print(", ")
		}
	}

	cw.print("]")

	return cw.n, cw.err
}

func quoteIfNeeded(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	if s == "" || strings.TrimSpace(s) != s || strings.ContainsAny(s, `,[]"`) {
		return strconv.Quote(s)
	}

	return s
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (w *countingWriter) print(v any) {
	if w.err != nil {
		return
	}

	n, err := fmt.Fprint(w.w, v)
	w.n += int64(n)
	w.err = err
}

// Parse decodes a list from its text form. Only white space may follow the
// closing bracket.
func Parse[T any](text string, parse Parser[T]) (*List[T], error) {
	r := strings.NewReader(text)

	l, err := Decode(r, parse)
	if err != nil {
		return nil, err
	}

	rest, _ := io.ReadAll(r)
	if strings.TrimSpace(string(rest)) != "" {
		return nil, fmt.Errorf("%w: unexpected text %q after list",
			ErrFormat, rest)
	}

	return l, nil
}

// Decode reads one list from r and stops right after its closing bracket.
//
// The text starts with "[" and ends with "]". Elements are separated by ",".
// An element spans up to the next "," or "]" that is not nested inside
// brackets or a double-quoted string, so lists of lists can be decoded with
// ParseList. Element text is trimmed of white space before it is passed to
// parse.
func Decode[T any](r io.RuneScanner, parse Parser[T]) (*List[T], error) {
	open, err := nextNonSpace(r)
	if err != nil {
		return nil, formatError(err, "separator character '[' not found")
	}

	if open != '[' {
		return nil, fmt.Errorf("%w: separator character '[' not found, got %q",
			ErrFormat, open)
	}

	l := New[T]()

	next, err := nextNonSpace(r)
	if err != nil {
		return nil, formatError(err, "list is not closed")
	}

	if next == ']' {
		return l, nil
	}

	err = r.UnreadRune()
	if err != nil {
		return nil, err
	}

	for {
		text, sep, err := readElement(r)
		if err != nil {
			return nil, formatError(err, "list is not closed")
		}

		value, err := parse(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrFormat, l.Size(), err)
		}

		l.AppendValue(value)

		if sep == ']' {
			return l, nil
		}
	}
}

func formatError(err error, msg string) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s", ErrFormat, msg)
	}

	return err
}

func nextNonSpace(r io.RuneScanner) (rune, error) {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}

		if !unicode.IsSpace(c) {
			return c, nil
		}
	}
}

// readElement consumes the text of one element and the separator after it.
func readElement(r io.RuneScanner) (text string, sep rune, err error) {
	sb := strings.Builder{}
	depth := 0
	quoted := false
	escaped := false

	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return "", 0, err
		}

		switch {
		case quoted && escaped:
			escaped = false
		case quoted && c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == '[':
			depth++
		case c == ']' && depth > 0:
			depth--
		case c == ']' || (c == ',' && depth == 0):
			return sb.String(), c, nil
		}

		sb.WriteRune(c)
	}
}

// ParseInt parses a base 10 integer element.
func ParseInt(text string) (int, error) {
	return strconv.Atoi(text)
}

// ParseFloat parses a floating point element.
func ParseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// ParseBool parses a boolean element.
func ParseBool(text string) (bool, error) {
	return strconv.ParseBool(text)
}

// ParseByte parses an element in the range 0-255.
func ParseByte(text string) (byte, error) {
	v, err := strconv.ParseUint(text, 10, 8)
	if err != nil {
		return 0, err
	}

	return byte(v), nil
}

// ParseString returns the element text. Text in double quotes is unquoted
// with strconv.Unquote.
func ParseString(text string) (string, error) {
	if strings.HasPrefix(text, `"`) {
		return strconv.Unquote(text)
	}

	return text, nil
}

// ParseList returns a parser for elements that are themselves lists.
func ParseList[T any](parse Parser[T]) Parser[*List[T]] {
	return func(text string) (*List[T], error) {
		return Parse(text, parse)
	}
}
