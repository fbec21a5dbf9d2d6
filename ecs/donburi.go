package ecs

import (
	"fmt"

	rh "github.com/phanxgames/rangehighlight"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// BuildingInfo is the building component. The anchor tile lives in Tile.
type BuildingInfo struct {
	Type          string
	Width, Height int
	Data          any
}

// ObjectInfo is the placed-object component.
type ObjectInfo struct {
	Name string
	Data any
}

// SpriteInfo is the transient-sprite component.
type SpriteInfo struct {
	Name string
	Data any
}

// Components read by the adapter.
var (
	Tile         = donburi.NewComponentType[rh.TilePoint]()
	BuildingData = donburi.NewComponentType[BuildingInfo]()
	ObjectData   = donburi.NewComponentType[ObjectInfo]()
	SpriteData   = donburi.NewComponentType[SpriteInfo]()
)

// PassEventType carries the stats of every pass run through RunPass.
var PassEventType = events.NewEventType[rh.PassStats]()

// World implements rangehighlight.World over a Donburi world.
type World struct {
	world   donburi.World
	blocked func() bool

	cursor   rh.TilePoint
	held     *rh.Item
	heldSlot int
	placing  *rh.Blueprint

	buildingQuery *donburi.Query
	objectQuery   *donburi.Query
	spriteQuery   *donburi.Query

	buildings []rh.Building
	objects   []rh.Item
	sprites   []rh.Sprite
}

var _ rh.World = (*World)(nil)

// NewWorld wraps w. blocked reports whether a menu or event owns input; nil
// means never blocked.
func NewWorld(w donburi.World, blocked func() bool) *World {
	return &World{
		world:         w,
		blocked:       blocked,
		buildingQuery: donburi.NewQuery(filter.Contains(Tile, BuildingData)),
		objectQuery:   donburi.NewQuery(filter.Contains(Tile, ObjectData)),
		spriteQuery:   donburi.NewQuery(filter.Contains(Tile, SpriteData)),
	}
}

// Donburi returns the wrapped world.
func (w *World) Donburi() donburi.World { return w.world }

// SetCursor moves the cursor tile.
func (w *World) SetCursor(p rh.TilePoint) { w.cursor = p }

// SetHeld sets the held item. nil clears it.
func (w *World) SetHeld(item *rh.Item, slot int) {
	w.held = item
	w.heldSlot = slot
}

// SetBlueprint sets the blueprint being placed. nil clears it.
func (w *World) SetBlueprint(bp *rh.Blueprint) { w.placing = bp }

func (w *World) Blocked() bool {
	return w.blocked != nil && w.blocked()
}

func (w *World) CursorTile() rh.TilePoint { return w.cursor }

func (w *World) HeldItem() (rh.Item, int, bool) {
	if w.held == nil {
		return rh.Item{}, 0, false
	}
	return *w.held, w.heldSlot, true
}

func (w *World) Blueprint() (rh.Blueprint, bool) {
	if w.placing == nil {
		return rh.Blueprint{}, false
	}
	return *w.placing, true
}

// BuildingAt returns the first building whose footprint covers p.
func (w *World) BuildingAt(p rh.TilePoint) (rh.Building, bool) {
	var (
		found rh.Building
		ok    bool
	)
	w.buildingQuery.Each(w.world, func(e *donburi.Entry) {
		if ok {
			return
		}
		b := toBuilding(e)
		if b.Footprint().Contains(p) {
			found, ok = b, true
		}
	})
	return found, ok
}

// Buildings returns every building entity. The slice is reused by the next
// call.
func (w *World) Buildings() []rh.Building {
	w.buildings = w.buildings[:0]
	w.buildingQuery.Each(w.world, func(e *donburi.Entry) {
		w.buildings = append(w.buildings, toBuilding(e))
	})
	return w.buildings
}

// Objects returns every placed-object entity. The slice is reused by the
// next call.
func (w *World) Objects() []rh.Item {
	w.objects = w.objects[:0]
	w.objectQuery.Each(w.world, func(e *donburi.Entry) {
		o := ObjectData.Get(e)
		w.objects = append(w.objects, rh.Item{
			ID:   entityID(e),
			Name: o.Name,
			Tile: *Tile.Get(e),
			Data: o.Data,
		})
	})
	return w.objects
}

// Sprites returns every transient-sprite entity. The slice is reused by the
// next call.
func (w *World) Sprites() []rh.Sprite {
	w.sprites = w.sprites[:0]
	w.spriteQuery.Each(w.world, func(e *donburi.Entry) {
		s := SpriteData.Get(e)
		w.sprites = append(w.sprites, rh.Sprite{
			ID:   entityID(e),
			Name: s.Name,
			Tile: *Tile.Get(e),
			Data: s.Data,
		})
	})
	return w.sprites
}

func toBuilding(e *donburi.Entry) rh.Building {
	b := BuildingData.Get(e)
	return rh.Building{
		ID:     entityID(e),
		Type:   b.Type,
		Tile:   *Tile.Get(e),
		Width:  b.Width,
		Height: b.Height,
		Data:   b.Data,
	}
}

func entityID(e *donburi.Entry) string {
	return fmt.Sprintf("%d", e.Entity())
}

// AddBuilding creates a building entity from b. b.ID is ignored; entity ids
// are used instead.
func AddBuilding(w donburi.World, b rh.Building) donburi.Entity {
	e := w.Create(Tile, BuildingData)
	entry := w.Entry(e)
	Tile.SetValue(entry, b.Tile)
	BuildingData.SetValue(entry, BuildingInfo{Type: b.Type, Width: b.Width, Height: b.Height, Data: b.Data})
	return e
}

// AddObject creates a placed-object entity from o.
func AddObject(w donburi.World, o rh.Item) donburi.Entity {
	e := w.Create(Tile, ObjectData)
	entry := w.Entry(e)
	Tile.SetValue(entry, o.Tile)
	ObjectData.SetValue(entry, ObjectInfo{Name: o.Name, Data: o.Data})
	return e
}

// AddSprite creates a transient-sprite entity from s.
func AddSprite(w donburi.World, s rh.Sprite) donburi.Entity {
	e := w.Create(Tile, SpriteData)
	entry := w.Entry(e)
	Tile.SetValue(entry, s.Tile)
	SpriteData.SetValue(entry, SpriteInfo{Name: s.Name, Data: s.Data})
	return e
}

// RunPass advances h by one tick over w. When a pass ran, its stats are
// published as a PassEventType event; call events.ProcessAllEvents (or
// PassEventType.ProcessEvents) to deliver them.
func RunPass(h *rh.Highlighter, w *World, in rh.InputState) bool {
	if !h.Step(w, in) {
		return false
	}
	PassEventType.Publish(w.world, h.Stats())
	return true
}
