package rangehighlight

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps between world pixels, screen pixels, and tiles.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
	// TileSize is the edge length of one tile in world pixels.
	TileSize float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	lastX, lastY  float64
	lastZoom      float64
	lastViewport  Rect
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera with zoom 1 over the given viewport.
func NewCamera(viewport Rect, tileSize float64) *Camera {
	if tileSize <= 0 {
		tileSize = 1
	}
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		TileSize: tileSize,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls to the center of the given tile.
func (c *Camera) ScrollToTile(p TilePoint, duration float32, easeFn ease.TweenFunc) {
	wx, wy := c.TileCenter(p)
	c.ScrollTo(wx, wy, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances scroll animations and bounds clamping by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix when the camera moved.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty && c.X == c.lastX && c.Y == c.lastY &&
		c.Zoom == c.lastZoom && c.Viewport == c.lastViewport {
		return c.viewMatrix
	}
	c.dirty = false
	c.lastX, c.lastY, c.lastZoom, c.lastViewport = c.X, c.Y, c.Zoom, c.Viewport

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// WorldToTile returns the tile containing the world point.
func (c *Camera) WorldToTile(wx, wy float64) TilePoint {
	return TilePoint{
		X: int(math.Floor(wx / c.TileSize)),
		Y: int(math.Floor(wy / c.TileSize)),
	}
}

// ScreenToTile returns the tile under the screen point.
func (c *Camera) ScreenToTile(sx, sy float64) TilePoint {
	return c.WorldToTile(c.ScreenToWorld(sx, sy))
}

// TileToScreen returns the screen position of the tile's top-left corner.
func (c *Camera) TileToScreen(p TilePoint) (sx, sy float64) {
	return c.WorldToScreen(float64(p.X)*c.TileSize, float64(p.Y)*c.TileSize)
}

// TileCenter returns the world position of the tile's center.
func (c *Camera) TileCenter(p TilePoint) (wx, wy float64) {
	return (float64(p.X) + 0.5) * c.TileSize, (float64(p.Y) + 0.5) * c.TileSize
}

// VisibleBounds returns the camera's visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix
	x0, y0 := transformPoint(inv, c.Viewport.X, c.Viewport.Y)
	x1, y1 := transformPoint(inv, c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// VisibleTiles returns the block of tiles at least partly inside the viewport.
func (c *Camera) VisibleTiles() TileRect {
	b := c.VisibleBounds()
	tl := c.WorldToTile(b.X, b.Y)
	br := c.WorldToTile(b.X+b.Width, b.Y+b.Height)
	return TileRect{X: tl.X, Y: tl.Y, W: br.X - tl.X + 1, H: br.Y - tl.Y + 1}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
