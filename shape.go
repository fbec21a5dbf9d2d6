package rangehighlight

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Metric selects the distance function and rounding policy used to decide
// whether a tile offset is in range.
type Metric uint8

const (
	MetricSquare            Metric = iota // Chebyshev: max(|dx|, |dy|)
	MetricManhattan                       // |dx| + |dy|
	MetricCartesianTruncate               // floor(sqrt(dx²+dy²))
	MetricCartesianCeiling                // ceil(sqrt(dx²+dy²))
	MetricCartesianRound                  // math.Round(sqrt(dx²+dy²)), half away from zero
	metricCount
)

var metricNames = [metricCount]string{
	MetricSquare:            "square",
	MetricManhattan:         "manhattan",
	MetricCartesianTruncate: "cartesian-truncate",
	MetricCartesianCeiling:  "cartesian-ceiling",
	MetricCartesianRound:    "cartesian-round",
}

func (m Metric) String() string {
	if m < metricCount {
		return metricNames[m]
	}
	return fmt.Sprintf("Metric(%d)", uint8(m))
}

// ParseMetric returns the metric with the given name.
func ParseMetric(s string) (Metric, error) {
	for i, name := range metricNames {
		if strings.EqualFold(s, name) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// DistanceFunc computes an integer distance for a tile offset from the center.
type DistanceFunc func(dx, dy int) int

// Distance applies the metric to the offset (dx, dy). Unknown metrics fall
// back to MetricSquare.
func (m Metric) Distance(dx, dy int) int {
	switch m {
	case MetricManhattan:
		return absInt(dx) + absInt(dy)
	case MetricCartesianTruncate:
		return int(math.Trunc(euclid(dx, dy)))
	case MetricCartesianCeiling:
		return int(math.Ceil(euclid(dx, dy)))
	case MetricCartesianRound:
		// No integer offset has a Euclidean length ending in exactly .5, so
		// half-even and half-away rounding produce the same shapes.
		return int(math.Round(euclid(dx, dy)))
	default:
		return max(absInt(dx), absInt(dy))
	}
}

func euclid(dx, dy int) float64 {
	return math.Sqrt(float64(dx*dx + dy*dy))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Shape errors returned by NewShape.
var (
	ErrShapeNotSquare = errors.New("shape is not square")
	ErrShapeEven      = errors.New("shape side length is even")
)

// Shape is an immutable square occupancy grid with an odd side length 2r+1.
// Cell (i, j) corresponds to the tile offset (i-r, j-r): the first index
// runs along X, the second along Y, and (r, r) is the logical origin.
type Shape struct {
	side  int
	cells []bool // x-major: cells[i*side+j]
}

// NewShape builds a shape from a literal grid indexed grid[i][j] with i along
// X. The grid is copied.
func NewShape(grid [][]bool) (Shape, error) {
	n := len(grid)
	if n%2 == 0 {
		return Shape{}, fmt.Errorf("new shape: side %d: %w", n, ErrShapeEven)
	}
	s := Shape{side: n, cells: make([]bool, n*n)}
	for i, col := range grid {
		if len(col) != n {
			return Shape{}, fmt.Errorf("new shape: column %d has %d cells, want %d: %w",
				i, len(col), n, ErrShapeNotSquare)
		}
		copy(s.cells[i*n:], col)
	}
	return s, nil
}

// MustShape is like NewShape but panics on error. Intended for package-level
// literals.
func MustShape(grid [][]bool) Shape {
	s, err := NewShape(grid)
	if err != nil {
		panic(err)
	}
	return s
}

// GenerateShape returns the shape of all offsets within radius under the
// given metric. A negative radius is treated as 0. When excludeCenter is
// true, the origin cell is cleared after the metric is applied.
func GenerateShape(radius int, excludeCenter bool, m Metric) Shape {
	return GenerateShapeFunc(radius, excludeCenter, m.Distance)
}

// GenerateShapeFunc is GenerateShape with a caller-supplied distance function.
func GenerateShapeFunc(radius int, excludeCenter bool, dist DistanceFunc) Shape {
	r := max(radius, 0)
	size := 2*r + 1
	s := Shape{side: size, cells: make([]bool, size*size)}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			s.cells[i*size+j] = dist(r-i, r-j) <= r
		}
	}
	if excludeCenter {
		s.cells[r*size+r] = false
	}
	return s
}

// Side returns the side length of the grid (always odd, 0 for the zero Shape).
func (s Shape) Side() int {
	return s.side
}

// Radius returns (Side-1)/2.
func (s Shape) Radius() int {
	if s.side == 0 {
		return 0
	}
	return (s.side - 1) / 2
}

// At reports the cell at grid index (i, j). Out-of-range indices are false.
func (s Shape) At(i, j int) bool {
	if i < 0 || j < 0 || i >= s.side || j >= s.side {
		return false
	}
	return s.cells[i*s.side+j]
}

// Covers reports whether the tile offset (dx, dy) from the origin is in range.
func (s Shape) Covers(dx, dy int) bool {
	r := s.Radius()
	return s.At(dx+r, dy+r)
}

// Count returns the number of in-range cells.
func (s Shape) Count() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}

// Each calls fn with the offset of every in-range cell, iterating X-major.
func (s Shape) Each(fn func(dx, dy int)) {
	r := s.Radius()
	for i := 0; i < s.side; i++ {
		for j := 0; j < s.side; j++ {
			if s.cells[i*s.side+j] {
				fn(i-r, j-r)
			}
		}
	}
}

// Offsets returns the in-range offsets in the order Each visits them.
func (s Shape) Offsets() []TilePoint {
	out := make([]TilePoint, 0, s.Count())
	s.Each(func(dx, dy int) {
		out = append(out, TilePoint{dx, dy})
	})
	return out
}

// Without returns a copy of s with the given offsets cleared. Offsets outside
// the grid are ignored.
func (s Shape) Without(offsets ...TilePoint) Shape {
	out := Shape{side: s.side, cells: make([]bool, len(s.cells))}
	copy(out.cells, s.cells)
	r := s.Radius()
	for _, o := range offsets {
		i, j := o.X+r, o.Y+r
		if i >= 0 && j >= 0 && i < s.side && j < s.side {
			out.cells[i*s.side+j] = false
		}
	}
	return out
}

// Grid returns a fresh copy of the cells indexed grid[i][j].
func (s Shape) Grid() [][]bool {
	g := make([][]bool, s.side)
	for i := range g {
		g[i] = make([]bool, s.side)
		copy(g[i], s.cells[i*s.side:(i+1)*s.side])
	}
	return g
}

// Equal reports whether both shapes have the same side and cells.
func (s Shape) Equal(o Shape) bool {
	if s.side != o.side {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape row by row ('#' in range, '.' not), Y downward.
func (s Shape) String() string {
	var b strings.Builder
	for j := 0; j < s.side; j++ {
		for i := 0; i < s.side; i++ {
			if s.cells[i*s.side+j] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if j < s.side-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
