package rangehighlight

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugOverlay shows the engine's last pass stats and FPS/TPS in a small
// panel, redrawn every ~0.5 seconds.
type DebugOverlay struct {
	h       *Highlighter
	r       *Renderer
	img     *ebiten.Image
	elapsed float64
	text    string
}

// NewDebugOverlay creates an overlay for h. r may be nil.
func NewDebugOverlay(h *Highlighter, r *Renderer) *DebugOverlay {
	return &DebugOverlay{h: h, r: r, elapsed: 1}
}

// Text returns the panel contents as of the last refresh.
func (d *DebugOverlay) Text() string {
	return d.text
}

// Update refreshes the panel text when at least half a second has passed.
func (d *DebugOverlay) Update(dt float64) {
	d.elapsed += dt
	if d.elapsed < 0.5 {
		return
	}
	d.elapsed = 0
	d.text = d.format(ebiten.ActualFPS(), ebiten.ActualTPS())
	if d.img != nil {
		d.redraw()
	}
}

func (d *DebugOverlay) format(fps, tps float64) string {
	st := d.h.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", fps, tps)
	fmt.Fprintf(&b, "pass %d: %d tiles in %v\n", st.Tick, st.Records, st.Duration)
	fmt.Fprintf(&b, "visited b/o/s: %d/%d/%d\n", st.BuildingsVisited, st.ObjectsVisited, st.SpritesVisited)
	if st.Blocked {
		b.WriteString("blocked\n")
	}
	if d.r != nil {
		fmt.Fprintf(&b, "drawn: %d  skipped: %d\n", d.r.Drawn(), d.r.Skipped())
	}
	return b.String()
}

func (d *DebugOverlay) redraw() {
	d.img.Clear()
	d.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(d.img, d.text)
}

// Draw paints the panel at (x, y).
func (d *DebugOverlay) Draw(screen *ebiten.Image, x, y int) {
	if d.img == nil {
		// 240x80 holds five lines of the debug font.
		d.img = ebiten.NewImage(240, 80)
		d.redraw()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(d.img, op)
}

// FormatRecords renders records as one "x,y #RRGGBBAA" line each, sorted by
// row, column and tint, so two buffers with the same contents format
// identically.
func FormatRecords(records []Record) string {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b Record) int {
		if c := cmp.Compare(a.Tile.Y, b.Tile.Y); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Tile.X, b.Tile.X); c != 0 {
			return c
		}
		return strings.Compare(a.Tint.Hex(), b.Tint.Hex())
	})
	var b strings.Builder
	for i, r := range sorted {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d,%d %s", r.Tile.X, r.Tile.Y, r.Tint.Hex())
	}
	return b.String()
}
