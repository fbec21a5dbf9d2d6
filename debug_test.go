package rangehighlight

import (
	"strings"
	"testing"
)

func TestFormatRecordsSorted(t *testing.T) {
	red := Color{R: 1, A: 1}
	blue := Color{B: 1, A: 1}
	records := []Record{
		{Tint: red, Tile: TilePoint{2, 1}},
		{Tint: blue, Tile: TilePoint{0, 1}},
		{Tint: red, Tile: TilePoint{-3, 0}},
		{Tint: red, Tile: TilePoint{0, 1}},
	}
	want := strings.Join([]string{
		"-3,0 #FF0000FF",
		"0,1 #0000FFFF",
		"0,1 #FF0000FF",
		"2,1 #FF0000FF",
	}, "\n")
	if got := FormatRecords(records); got != want {
		t.Errorf("FormatRecords =\n%s\nwant\n%s", got, want)
	}
	if records[0].Tile != (TilePoint{2, 1}) {
		t.Error("FormatRecords reordered its input")
	}
}

func TestFormatRecordsEmpty(t *testing.T) {
	if got := FormatRecords(nil); got != "" {
		t.Errorf("FormatRecords(nil) = %q, want empty", got)
	}
}

func TestDebugOverlayFormat(t *testing.T) {
	h := newTestHighlighter(nil)
	h.Resolve(&StaticWorld{IsBlocked: true}, NewMapInput())

	d := NewDebugOverlay(h, nil)
	got := d.format(60, 60)
	for _, want := range []string{"FPS: 60.0  TPS: 60.0", "visited b/o/s: 0/0/0", "blocked"} {
		if !strings.Contains(got, want) {
			t.Errorf("format() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "drawn") {
		t.Errorf("format() = %q, renderer line without a renderer", got)
	}

	d = NewDebugOverlay(h, NewRenderer())
	if got := d.format(30, 60); !strings.Contains(got, "drawn: 0  skipped: 0") {
		t.Errorf("format() = %q, missing renderer line", got)
	}
}
