package rangehighlight

import "slices"

// HighlightResult is one tinted shape produced for a building. The shape's
// origin lands on the building's anchor tile displaced by (OffsetX, OffsetY).
type HighlightResult struct {
	Tint             Color
	Shape            Shape
	OffsetX, OffsetY int
}

// TintedShape is one tinted shape produced for an item or sprite. The shape's
// origin lands on the entity's own tile.
type TintedShape struct {
	Tint  Color
	Shape Shape
}

// Mapping functions return nil when the entity does not match. A non-nil
// empty slice is a match that draws nothing: it still claims the entity, so
// lower-priority highlighters are not consulted.
type (
	BuildingHighlightFunc  func(b Building) []HighlightResult
	BlueprintHighlightFunc func(bp Blueprint) []HighlightResult
	ItemHighlightFunc      func(item Item, slot int, name string) []TintedShape
	SpriteHighlightFunc    func(s Sprite) []TintedShape
)

// Predicate is a parameterless condition re-evaluated every pass.
type Predicate func() bool

// HotkeyFunc returns the current binding. It is called every pass so binding
// changes apply without re-registration.
type HotkeyFunc func() KeybindList

// BuildingHighlighter maps buildings, and optionally blueprints being placed,
// to highlights.
type BuildingHighlighter struct {
	ID        string
	Enabled   Predicate // nil = always enabled
	Hotkey    HotkeyFunc
	Blueprint BlueprintHighlightFunc // optional
	Building  BuildingHighlightFunc
}

// ItemHighlighter maps held and placed items to highlights. name is the
// item's lowercased name; slot is the inventory slot of a held item and -1
// for placed objects.
type ItemHighlighter struct {
	ID      string
	Enabled Predicate
	Hotkey  HotkeyFunc
	// HighlightOthersWhenHeld decides whether holding a matching item also
	// shows the ranges of matching placed objects. nil = true.
	HighlightOthersWhenHeld Predicate
	Map                     ItemHighlightFunc
	// OnStart and OnFinish bracket each pass in which the highlighter is
	// enabled, so Map can cache per-pass data.
	OnStart  func()
	OnFinish func()
}

// SpriteHighlighter maps transient sprites to highlights. Sprites have no
// hotkey: an enabled sprite highlighter is always active.
type SpriteHighlighter struct {
	ID      string
	Enabled Predicate
	Map     SpriteHighlightFunc
}

func (h BuildingHighlighter) entryID() string { return h.ID }
func (h ItemHighlighter) entryID() string     { return h.ID }
func (h SpriteHighlighter) entryID() string   { return h.ID }

func enabled(p Predicate) bool {
	return p == nil || p()
}

func hotkeyDown(f HotkeyFunc, in InputState) bool {
	return f != nil && f().IsDown(in)
}

// registry is an ordered highlighter list. New entries go to the front, so
// iteration is most-recently-added first.
type registry[E interface{ entryID() string }] struct {
	entries []E
}

func (r *registry[E]) add(e E) {
	r.entries = slices.Insert(r.entries, 0, e)
}

// remove deletes every entry with the given id and returns how many went.
func (r *registry[E]) remove(id string) int {
	n := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(e E) bool { return e.entryID() == id })
	return n - len(r.entries)
}

func (r *registry[E]) ids() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.entryID()
	}
	return out
}

// --- Single-result adapters ---

// SingleBuilding adapts a single-result mapping function to the list form.
func SingleBuilding(fn func(b Building) (HighlightResult, bool)) BuildingHighlightFunc {
	if fn == nil {
		return nil
	}
	return func(b Building) []HighlightResult {
		r, ok := fn(b)
		if !ok {
			return nil
		}
		return []HighlightResult{r}
	}
}

// SingleBlueprint adapts a single-result blueprint mapper to the list form.
func SingleBlueprint(fn func(bp Blueprint) (HighlightResult, bool)) BlueprintHighlightFunc {
	if fn == nil {
		return nil
	}
	return func(bp Blueprint) []HighlightResult {
		r, ok := fn(bp)
		if !ok {
			return nil
		}
		return []HighlightResult{r}
	}
}

// SingleItem adapts a single-result item mapper to the list form.
func SingleItem(fn func(item Item, slot int, name string) (TintedShape, bool)) ItemHighlightFunc {
	if fn == nil {
		return nil
	}
	return func(item Item, slot int, name string) []TintedShape {
		r, ok := fn(item, slot, name)
		if !ok {
			return nil
		}
		return []TintedShape{r}
	}
}

// SingleSprite adapts a single-result sprite mapper to the list form.
func SingleSprite(fn func(s Sprite) (TintedShape, bool)) SpriteHighlightFunc {
	if fn == nil {
		return nil
	}
	return func(s Sprite) []TintedShape {
		r, ok := fn(s)
		if !ok {
			return nil
		}
		return []TintedShape{r}
	}
}
