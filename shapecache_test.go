package rangehighlight

import "testing"

func TestShapeCacheGet(t *testing.T) {
	c, err := NewShapeCache(0)
	if err != nil {
		t.Fatalf("NewShapeCache: %v", err)
	}
	defer c.Close()

	for _, m := range allMetrics {
		for _, excl := range []bool{true, false} {
			want := GenerateShape(6, excl, m)
			// First call generates, second may hit; both must match.
			for i := 0; i < 2; i++ {
				if got := c.Get(m, 6, excl); !got.Equal(want) {
					t.Errorf("Get(%v, 6, %v) call %d differs from GenerateShape", m, excl, i)
				}
			}
		}
	}
}

func TestShapeCacheNegativeRadius(t *testing.T) {
	c, err := NewShapeCache(1024)
	if err != nil {
		t.Fatalf("NewShapeCache: %v", err)
	}
	defer c.Close()
	if got := c.Get(MetricSquare, -4, false); got.Side() != 1 {
		t.Errorf("Side() = %d, want 1", got.Side())
	}
}

func TestShapeKeyDistinct(t *testing.T) {
	seen := make(map[uint64]string)
	for _, m := range allMetrics {
		for r := 0; r < 20; r++ {
			for _, excl := range []bool{true, false} {
				k := shapeKey(m, r, excl)
				id := m.String()
				if prev, dup := seen[k]; dup {
					t.Fatalf("key %d shared by %s and %s r=%d excl=%v", k, prev, id, r, excl)
				}
				seen[k] = id
			}
		}
	}
}
