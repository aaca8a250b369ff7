package numeric

import (
	"log"
	"math"

	"github.com/sarchlab/clarus/list"
	"gonum.org/v1/gonum/mat"
)

// A Point is a position in a matrix.
type Point struct {
	Row int
	Col int
}

// ArgMax returns the position of the highest value in m. Ties resolve to the
// first position in row-major order.
func ArgMax(m mat.Matrix) Point {
	return argBest(m, func(v, best float64) bool { return v > best })
}

// ArgMin returns the position of the lowest value in m. Ties resolve to the
// first position in row-major order.
func ArgMin(m mat.Matrix) Point {
	return argBest(m, func(v, best float64) bool { return v < best })
}

func argBest(m mat.Matrix, better func(v, best float64) bool) Point {
	rows, cols := m.Dims()
	best := Point{}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if better(m.At(i, j), m.At(best.Row, best.Col)) {
				best = Point{Row: i, Col: j}
			}
		}
	}

	return best
}

// Min returns the lowest value in m.
func Min(m mat.Matrix) float64 {
	return mat.Min(m)
}

// Max returns the highest value in m.
func Max(m mat.Matrix) float64 {
	return mat.Max(m)
}

// Mean returns the average of all the values in m.
func Mean(m mat.Matrix) float64 {
	rows, cols := m.Dims()

	return mat.Sum(m) / float64(rows*cols)
}

// MeanDim returns a row vector of averages across the given dimension. Along
// dimension 0 it holds one average per column; along dimension 1, one per
// row.
func MeanDim(m mat.Matrix, dim int) *mat.Dense {
	rows, cols := m.Dims()

	var means []float64

	switch dim {
	case 0:
		means = make([]float64, cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				means[j] += m.At(i, j)
			}
		}

		for j := range means {
			means[j] /= float64(rows)
		}
	case 1:
		means = make([]float64, rows)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				means[i] += m.At(i, j)
			}
		}

		for i := range means {
			means[i] /= float64(cols)
		}
	default:
		log.Panicf("invalid matrix dimension %d", dim)
	}

	return mat.NewDense(1, len(means), means)
}

// Shift rotates the values of m in place, moving them down by rows and right
// by cols. Values that fall off one edge re-enter on the opposite edge.
func Shift(m *mat.Dense, rows, cols int) {
	r, c := m.Dims()
	src := mat.DenseCopyOf(m)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(wrap(i+rows, r), wrap(j+cols, c), src.At(i, j))
		}
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// Pow returns a new matrix holding every value of m raised to power.
func Pow(m mat.Matrix, power float64) *mat.Dense {
	out := &mat.Dense{}
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Pow(v, power)
	}, m)

	return out
}

// Row returns a 1 x n matrix holding a copy of the list. gonum matrices cannot
// be empty, so neither can the list.
func Row(l *list.List[float64]) *mat.Dense {
	return mat.NewDense(1, l.Size(), l.Clone(false).Slice())
}

// Col returns an n x 1 matrix holding a copy of the list, which must not be
// empty.
func Col(l *list.List[float64]) *mat.Dense {
	return mat.NewDense(l.Size(), 1, l.Clone(false).Slice())
}

// ToList copies the values of v into a new list.
func ToList(v mat.Vector) *list.List[float64] {
	out := list.NewSized[float64](v.Len())
	for c, i := out.Cursor(), 0; c.More(); i++ {
		*c.Next() = v.AtVec(i)
	}

	return out
}
