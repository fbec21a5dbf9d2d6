package rangehighlight

// Building describes a host building. The core only reads Tile and the
// footprint; Type and Data are for highlighter mapping functions.
type Building struct {
	ID   string
	Type string
	// Tile is the anchor (top-left) tile of the footprint.
	Tile TilePoint
	// Width and Height are the footprint in tiles. Zero means 1.
	Width, Height int
	Data          any
}

// Footprint returns the tiles the building occupies.
func (b Building) Footprint() TileRect {
	return TileRect{X: b.Tile.X, Y: b.Tile.Y, W: max(b.Width, 1), H: max(b.Height, 1)}
}

// Item describes a held or placed object. Tile is meaningless for held items.
type Item struct {
	ID   string
	Name string
	Tile TilePoint
	Data any
}

// Sprite describes a transient animated effect (a lit bomb, for instance).
type Sprite struct {
	ID   string
	Name string
	Tile TilePoint
	Data any
}

// Blueprint describes a building the player is about to place.
type Blueprint struct {
	Name string
	Type string
	Data any
}

// World is the per-tick snapshot the engine queries. Implementations are
// provided by the host; none of the methods may block.
type World interface {
	// Blocked reports whether a menu or cutscene currently owns input.
	Blocked() bool
	// CursorTile returns the tile under the mouse cursor.
	CursorTile() TilePoint
	// BuildingAt returns the building whose footprint contains p.
	BuildingAt(p TilePoint) (Building, bool)
	// HeldItem returns the item in the player's hands and its inventory slot.
	HeldItem() (item Item, slot int, ok bool)
	// Blueprint returns the blueprint being placed, if any.
	Blueprint() (Blueprint, bool)
	// Buildings returns every building in the current area.
	Buildings() []Building
	// Objects returns every placed object in the current area.
	Objects() []Item
	// Sprites returns every transient sprite in the current area.
	Sprites() []Sprite
}

// StaticWorld is a World backed by plain fields. Headless hosts, the script
// runner, and tests mutate it directly between ticks.
type StaticWorld struct {
	IsBlocked    bool
	Cursor       TilePoint
	Held         *Item
	HeldSlot     int
	Placing      *Blueprint
	BuildingList []Building
	ObjectList   []Item
	SpriteList   []Sprite
}

var _ World = (*StaticWorld)(nil)

func (w *StaticWorld) Blocked() bool         { return w.IsBlocked }
func (w *StaticWorld) CursorTile() TilePoint { return w.Cursor }
func (w *StaticWorld) Buildings() []Building { return w.BuildingList }
func (w *StaticWorld) Objects() []Item       { return w.ObjectList }
func (w *StaticWorld) Sprites() []Sprite     { return w.SpriteList }

func (w *StaticWorld) BuildingAt(p TilePoint) (Building, bool) {
	for _, b := range w.BuildingList {
		if b.Footprint().Contains(p) {
			return b, true
		}
	}
	return Building{}, false
}

func (w *StaticWorld) HeldItem() (Item, int, bool) {
	if w.Held == nil {
		return Item{}, 0, false
	}
	return *w.Held, w.HeldSlot, true
}

func (w *StaticWorld) Blueprint() (Blueprint, bool) {
	if w.Placing == nil {
		return Blueprint{}, false
	}
	return *w.Placing, true
}

// ObjectAt returns the placed object on tile p.
func (w *StaticWorld) ObjectAt(p TilePoint) (Item, bool) {
	for _, o := range w.ObjectList {
		if o.Tile == p {
			return o, true
		}
	}
	return Item{}, false
}

// RemoveObjectAt deletes the placed object on tile p and reports whether one
// was found.
func (w *StaticWorld) RemoveObjectAt(p TilePoint) bool {
	for i, o := range w.ObjectList {
		if o.Tile == p {
			w.ObjectList = append(w.ObjectList[:i], w.ObjectList[i+1:]...)
			return true
		}
	}
	return false
}
