package rangehighlight

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

var allMetrics = []Metric{
	MetricSquare,
	MetricManhattan,
	MetricCartesianTruncate,
	MetricCartesianCeiling,
	MetricCartesianRound,
}

func TestGenerateShapeDimensions(t *testing.T) {
	for _, m := range allMetrics {
		for r := 0; r <= 8; r++ {
			for _, excl := range []bool{true, false} {
				s := GenerateShape(r, excl, m)
				if s.Side() != 2*r+1 {
					t.Errorf("%v r=%d: Side() = %d, want %d", m, r, s.Side(), 2*r+1)
				}
				if got := s.At(r, r); got == excl {
					t.Errorf("%v r=%d excl=%v: center = %v, want %v", m, r, excl, got, !excl)
				}
			}
		}
	}
}

func TestGenerateShapeRadiusZero(t *testing.T) {
	for _, m := range allMetrics {
		if s := GenerateShape(0, false, m); s.Side() != 1 || s.Count() != 1 {
			t.Errorf("%v r=0: side %d count %d, want 1 and 1", m, s.Side(), s.Count())
		}
		if s := GenerateShape(0, true, m); s.Count() != 0 {
			t.Errorf("%v r=0 excluded: Count() = %d, want 0", m, s.Count())
		}
	}
}

func TestGenerateShapeNegativeRadius(t *testing.T) {
	if s := GenerateShape(-3, false, MetricSquare); s.Side() != 1 {
		t.Errorf("Side() = %d for negative radius, want 1", s.Side())
	}
}

func TestSquareShapeIsFilled(t *testing.T) {
	s := GenerateShape(3, true, MetricSquare)
	if s.Side() != 7 {
		t.Fatalf("Side() = %d, want 7", s.Side())
	}
	if s.Count() != 48 {
		t.Errorf("Count() = %d, want 48\n%v", s.Count(), s)
	}
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			if want := !(i == 3 && j == 3); s.At(i, j) != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, s.At(i, j), want)
			}
		}
	}
}

func TestManhattanShapeIsDiamond(t *testing.T) {
	const r = 5
	s := GenerateShape(r, true, MetricManhattan)
	for i := 0; i <= 2*r; i++ {
		for j := 0; j <= 2*r; j++ {
			want := absInt(r-i)+absInt(r-j) <= r && !(i == r && j == r)
			if s.At(i, j) != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, s.At(i, j), want)
			}
		}
	}
	for _, c := range [][2]int{{0, 0}, {0, 2 * r}, {2 * r, 0}, {2 * r, 2 * r}} {
		if s.At(c[0], c[1]) {
			t.Errorf("corner %v is in range", c)
		}
	}

	// The center row spans offsets -5..5, all true when the center is kept.
	full := GenerateShape(r, false, MetricManhattan)
	for dx := -r; dx <= r; dx++ {
		if !full.Covers(dx, 0) {
			t.Errorf("Covers(%d,0) = false, want true", dx)
		}
	}
}

func TestCartesianMetrics(t *testing.T) {
	tests := []struct {
		m      Metric
		dx, dy int
		want   int
	}{
		{MetricCartesianTruncate, 1, 1, 1}, // 1.414
		{MetricCartesianCeiling, 1, 1, 2},
		{MetricCartesianRound, 1, 1, 1},
		{MetricCartesianTruncate, 2, 2, 2}, // 2.828
		{MetricCartesianCeiling, 2, 2, 3},
		{MetricCartesianRound, 2, 2, 3},
		{MetricCartesianRound, 3, 4, 5},
		{MetricCartesianTruncate, -3, 4, 5},
		{MetricSquare, -3, 2, 3},
		{MetricManhattan, -3, 2, 5},
	}
	for _, tt := range tests {
		if got := tt.m.Distance(tt.dx, tt.dy); got != tt.want {
			t.Errorf("%v.Distance(%d,%d) = %d, want %d", tt.m, tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestCartesianShapesNested(t *testing.T) {
	// Ceiling is the tightest, truncate the loosest.
	for r := 1; r <= 10; r++ {
		trunc := GenerateShape(r, false, MetricCartesianTruncate)
		round := GenerateShape(r, false, MetricCartesianRound)
		ceil := GenerateShape(r, false, MetricCartesianCeiling)
		ceil.Each(func(dx, dy int) {
			if !round.Covers(dx, dy) {
				t.Errorf("r=%d: ceiling covers (%d,%d) but round does not", r, dx, dy)
			}
		})
		round.Each(func(dx, dy int) {
			if !trunc.Covers(dx, dy) {
				t.Errorf("r=%d: round covers (%d,%d) but truncate does not", r, dx, dy)
			}
		})
	}
}

func TestShapesMonotonicInRadius(t *testing.T) {
	for _, m := range allMetrics {
		for r := 0; r < 12; r++ {
			small := GenerateShape(r, false, m)
			big := GenerateShape(r+1, false, m)
			small.Each(func(dx, dy int) {
				if !big.Covers(dx, dy) {
					t.Errorf("%v: (%d,%d) in radius %d but not %d", m, dx, dy, r, r+1)
				}
			})
		}
	}
}

func TestGenerateShapeDeterministic(t *testing.T) {
	for _, m := range allMetrics {
		a := GenerateShape(7, true, m)
		b := GenerateShape(7, true, m)
		if !a.Equal(b) {
			t.Errorf("%v: shapes differ\n%s", m, spew.Sdump(a.Grid(), b.Grid()))
		}
	}
}

func TestNewShape(t *testing.T) {
	s, err := NewShape([][]bool{
		{false, true, false},
		{true, false, true},
		{false, false, false},
	})
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	// grid[i][j] is offset (i-1, j-1).
	want := []TilePoint{{-1, 0}, {0, -1}, {0, 1}}
	got := s.Offsets()
	if len(got) != len(want) {
		t.Fatalf("Offsets() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Offsets()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		grid [][]bool
		want error
	}{
		{"even", [][]bool{{true, true}, {true, true}}, ErrShapeEven},
		{"empty", nil, ErrShapeEven},
		{"ragged", [][]bool{{true}, {true, true, true}, {true}}, ErrShapeNotSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShape(tt.grid)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewShape error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewShapeCopiesInput(t *testing.T) {
	grid := [][]bool{{true}}
	s := MustShape(grid)
	grid[0][0] = false
	if !s.At(0, 0) {
		t.Error("mutating the input grid changed the shape")
	}
	g := s.Grid()
	g[0][0] = false
	if !s.At(0, 0) {
		t.Error("mutating Grid() changed the shape")
	}
}

func TestShapeWithout(t *testing.T) {
	s := GenerateShape(1, false, MetricSquare)
	cut := s.Without(TilePoint{0, 0}, TilePoint{1, 1}, TilePoint{9, 9})
	if cut.Count() != 7 {
		t.Errorf("Count() = %d, want 7", cut.Count())
	}
	if s.Count() != 9 {
		t.Errorf("Without modified the receiver: Count() = %d", s.Count())
	}
}

func TestShapeString(t *testing.T) {
	got := GenerateShape(1, true, MetricManhattan).String()
	want := ".#.\n#.#\n.#."
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range allMetrics {
		got, err := ParseMetric(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMetric(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMetric("hexagonal"); err == nil {
		t.Error("ParseMetric(hexagonal) succeeded")
	}
}

func TestGenerateShapeFunc(t *testing.T) {
	// Only the X axis.
	s := GenerateShapeFunc(2, true, func(dx, dy int) int {
		if dy != 0 {
			return 99
		}
		return absInt(dx)
	})
	if s.Count() != 4 {
		t.Errorf("Count() = %d, want 4\n%v", s.Count(), s)
	}
	if !s.Covers(-2, 0) || !s.Covers(2, 0) || s.Covers(0, 1) {
		t.Errorf("unexpected cells\n%v", s)
	}
}
