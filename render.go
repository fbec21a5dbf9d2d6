package rangehighlight

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

// WhitePixel returns a shared 1x1 white image, the default tile image.
func WhitePixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA())
	})
	return whitePixel
}

// Renderer draws a HighlightBuffer onto an ebiten image, one tinted quad per
// record. It never blocks: if the resolution pass holds the buffer, the
// frame is skipped.
type Renderer struct {
	// TileImage is stretched over each highlighted tile. nil uses WhitePixel.
	TileImage *ebiten.Image
	// BlendMode composites tiles onto the target.
	BlendMode BlendMode
	// FadeIn, when positive, ramps alpha from 0 to 1 over that many seconds
	// whenever highlights appear after an empty frame.
	FadeIn float32

	wasEmpty bool
	fade     *gween.Tween
	alpha    float32
	skipped  int
	drawn    int
	op       ebiten.DrawImageOptions
}

// NewRenderer creates a renderer with white tiles and normal blending.
func NewRenderer() *Renderer {
	return &Renderer{wasEmpty: true, alpha: 1}
}

// Update advances the fade animation by dt seconds.
func (r *Renderer) Update(dt float32) {
	if r.fade == nil {
		return
	}
	val, done := r.fade.Update(dt)
	r.alpha = val
	if done {
		r.fade = nil
		r.alpha = 1
	}
}

// Skipped returns the number of frames skipped because the buffer was busy.
func (r *Renderer) Skipped() int {
	return r.skipped
}

// Drawn returns the number of tiles drawn in the last successful frame.
func (r *Renderer) Drawn() int {
	return r.drawn
}

// Draw renders buf through cam and reports whether the buffer could be read.
func (r *Renderer) Draw(screen *ebiten.Image, buf *HighlightBuffer, cam *Camera) bool {
	ok := buf.TryView(func(records []Record, _ uint64) {
		r.drawRecords(screen, records, cam)
	})
	if !ok {
		r.skipped++
	}
	return ok
}

func (r *Renderer) drawRecords(screen *ebiten.Image, records []Record, cam *Camera) {
	r.drawn = 0
	if len(records) == 0 {
		r.wasEmpty = true
		return
	}
	if r.wasEmpty {
		r.wasEmpty = false
		if r.FadeIn > 0 {
			r.fade = gween.New(0, 1, r.FadeIn, ease.OutQuad)
			r.alpha = 0
		}
	}

	img := r.TileImage
	if img == nil {
		img = WhitePixel()
	}
	b := img.Bounds()
	size := cam.TileSize * cam.Zoom
	scale := [6]float64{size / float64(b.Dx()), 0, 0, size / float64(b.Dy()), 0, 0}
	visible := cam.VisibleTiles()

	r.op.Blend = r.BlendMode.EbitenBlend()
	for _, rec := range records {
		if !visible.Contains(rec.Tile) {
			continue
		}
		sx, sy := cam.TileToScreen(rec.Tile)
		m := multiplyAffine([6]float64{1, 0, 0, 1, sx, sy}, scale)
		r.op.GeoM.SetElement(0, 0, m[0])
		r.op.GeoM.SetElement(1, 0, m[1])
		r.op.GeoM.SetElement(0, 1, m[2])
		r.op.GeoM.SetElement(1, 1, m[3])
		r.op.GeoM.SetElement(0, 2, m[4])
		r.op.GeoM.SetElement(1, 2, m[5])

		a := float32(rec.Tint.A) * r.alpha
		r.op.ColorScale.Reset()
		r.op.ColorScale.Scale(float32(rec.Tint.R)*a, float32(rec.Tint.G)*a, float32(rec.Tint.B)*a, a)
		screen.DrawImage(img, &r.op)
		r.drawn++
	}
}
