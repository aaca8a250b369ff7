// Package numeric holds element-wise helpers over lists of numbers and
// summary helpers over gonum matrices.
package numeric

import (
	"errors"
	"fmt"
	"math"

	"github.com/sarchlab/clarus/list"
)

// ErrSizeMismatch is returned when two lists combined element-wise differ in
// size.
var ErrSizeMismatch = errors.New("list sizes differ")

// BinaryOp combines two values.
type BinaryOp func(a, b float64) float64

// UnaryOp maps one value.
type UnaryOp func(x float64) float64

// Vectorize applies op to the elements of a and b pairwise and returns the
// results in a new list.
func Vectorize(op BinaryOp, a, b *list.List[float64]) (*list.List[float64], error) {
	if a.Size() != b.Size() {
		return nil, fmt.Errorf("%w: %d and %d", ErrSizeMismatch, a.Size(), b.Size())
	}

	out := list.New[float64]()
	out.Reserve(a.Size())

	for i, j := a.ConstCursor(), b.ConstCursor(); i.More(); {
		out.AppendValue(op(i.Next(), j.Next()))
	}

	return out, nil
}

// VectorizeUnary applies op to every element of a and returns the results in
// a new list.
func VectorizeUnary(op UnaryOp, a *list.List[float64]) *list.List[float64] {
	out := list.New[float64]()
	out.Reserve(a.Size())

	for c := a.ConstCursor(); c.More(); {
		out.AppendValue(op(c.Next()))
	}

	return out
}

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Sub returns a - b.
func Sub(a, b float64) float64 {
	return a - b
}

// Mul returns a * b.
func Mul(a, b float64) float64 {
	return a * b
}

// Div returns a / b.
func Div(a, b float64) float64 {
	return a / b
}

// Log returns the logarithm of x in the given base.
func Log(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

// Log2 returns the binary logarithm of x.
func Log2(x float64) float64 {
	return math.Log2(x)
}
