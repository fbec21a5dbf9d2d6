package rangehighlight

import "sync"

// Record is one highlighted tile.
type Record struct {
	Tint Color
	Tile TilePoint
}

// HighlightBuffer is the set of highlighted tiles shared between the
// resolution pass (single writer, blocking) and the renderer (best-effort
// reader that skips a frame on contention).
//
// The writer builds the next set in a private back slice and swaps it in
// under the lock, so readers only ever see complete passes.
type HighlightBuffer struct {
	mu         sync.Mutex
	front      []Record
	generation uint64
}

// NewHighlightBuffer creates an empty buffer.
func NewHighlightBuffer() *HighlightBuffer {
	return &HighlightBuffer{}
}

// Clear empties the buffer, blocking until the lock is held.
func (b *HighlightBuffer) Clear() {
	b.mu.Lock()
	if len(b.front) > 0 {
		b.front = b.front[:0]
		b.generation++
	}
	b.mu.Unlock()
}

// Publish replaces the buffer contents with records and returns the previous
// backing slice, truncated, for the caller to reuse as its next back buffer.
// The buffer takes ownership of records.
func (b *HighlightBuffer) Publish(records []Record) []Record {
	b.mu.Lock()
	old := b.front
	if !recordsEqual(old, records) {
		b.generation++
	}
	b.front = records
	b.mu.Unlock()
	return old[:0]
}

// TryView calls fn with the current records if the lock can be taken without
// waiting, and reports whether it did. fn must not retain the slice.
func (b *HighlightBuffer) TryView(fn func(records []Record, generation uint64)) bool {
	if !b.mu.TryLock() {
		return false
	}
	defer b.mu.Unlock()
	fn(b.front, b.generation)
	return true
}

// Snapshot returns a copy of the current records, blocking for the lock.
func (b *HighlightBuffer) Snapshot() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Record, len(b.front))
	copy(out, b.front)
	return out
}

// Len returns the number of records, blocking for the lock.
func (b *HighlightBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.front)
}

// Generation increments every time the visible contents change.
func (b *HighlightBuffer) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

func recordsEqual(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// appendShape appends one record per in-range cell of s, with the shape's
// origin placed on origin.
func appendShape(dst []Record, tint Color, s Shape, origin TilePoint) []Record {
	s.Each(func(dx, dy int) {
		dst = append(dst, Record{Tint: tint, Tile: origin.Add(dx, dy)})
	})
	return dst
}
