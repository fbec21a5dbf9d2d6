package rangehighlight

// API is the surface offered to other components that want to add their own
// highlighters. It wraps a Highlighter and shares its settings.
type API struct {
	h     *Highlighter
	cache *ShapeCache
}

// NewAPI creates an API over h. cache may be nil, in which case the shape
// helpers generate a fresh shape on every call.
func NewAPI(h *Highlighter, cache *ShapeCache) *API {
	return &API{h: h, cache: cache}
}

// Highlighter returns the wrapped engine.
func (a *API) Highlighter() *Highlighter {
	return a.h
}

// --- Tints ---

func (a *API) JunimoRangeTint() Color    { return a.h.settings.Load().JunimoRangeTint }
func (a *API) ScarecrowRangeTint() Color { return a.h.settings.Load().ScarecrowRangeTint }
func (a *API) SprinklerRangeTint() Color { return a.h.settings.Load().SprinklerRangeTint }
func (a *API) BeehouseRangeTint() Color  { return a.h.settings.Load().BeehouseRangeTint }
func (a *API) BombRangeTint() Color      { return a.h.settings.Load().BombRangeTint }

// --- Shapes ---

func (a *API) shape(m Metric, radius int, excludeCenter bool) Shape {
	if a.cache != nil {
		return a.cache.Get(m, radius, excludeCenter)
	}
	return GenerateShape(radius, excludeCenter, m)
}

// CartesianCircleWithTruncate covers offsets whose truncated distance is at
// most radius.
func (a *API) CartesianCircleWithTruncate(radius int, excludeCenter bool) Shape {
	return a.shape(MetricCartesianTruncate, radius, excludeCenter)
}

func (a *API) CartesianCircleWithCeiling(radius int, excludeCenter bool) Shape {
	return a.shape(MetricCartesianCeiling, radius, excludeCenter)
}

func (a *API) CartesianCircleWithRound(radius int, excludeCenter bool) Shape {
	return a.shape(MetricCartesianRound, radius, excludeCenter)
}

// CartesianCircle is CartesianCircleWithTruncate, the scarecrow metric.
func (a *API) CartesianCircle(radius int, excludeCenter bool) Shape {
	return a.CartesianCircleWithTruncate(radius, excludeCenter)
}

func (a *API) ManhattanCircle(radius int, excludeCenter bool) Shape {
	return a.shape(MetricManhattan, radius, excludeCenter)
}

func (a *API) SquareCircle(radius int, excludeCenter bool) Shape {
	return a.shape(MetricSquare, radius, excludeCenter)
}

// --- Buildings ---

// AddBuildingRangeHighlighter registers a list-result building highlighter.
// blueprint may be nil.
func (a *API) AddBuildingRangeHighlighter(id string, isEnabled Predicate, hotkey HotkeyFunc,
	blueprint BlueprintHighlightFunc, building BuildingHighlightFunc) {
	a.h.AddBuildingHighlighter(BuildingHighlighter{
		ID:        id,
		Enabled:   isEnabled,
		Hotkey:    hotkey,
		Blueprint: blueprint,
		Building:  building,
	})
}

// AddSingleBuildingRangeHighlighter registers a building highlighter whose
// mappers produce at most one result.
func (a *API) AddSingleBuildingRangeHighlighter(id string, isEnabled Predicate, hotkey HotkeyFunc,
	blueprint func(Blueprint) (HighlightResult, bool), building func(Building) (HighlightResult, bool)) {
	a.AddBuildingRangeHighlighter(id, isEnabled, hotkey, SingleBlueprint(blueprint), SingleBuilding(building))
}

func (a *API) RemoveBuildingRangeHighlighter(id string) {
	a.h.RemoveBuildingHighlighter(id)
}

// --- Items ---

// AddItemRangeHighlighter registers a list-result item highlighter. onStart
// and onFinish may be nil.
func (a *API) AddItemRangeHighlighter(id string, isEnabled Predicate, hotkey HotkeyFunc,
	highlightOthersWhenHeld Predicate, onStart func(), fn ItemHighlightFunc, onFinish func()) {
	a.h.AddItemHighlighter(ItemHighlighter{
		ID:                      id,
		Enabled:                 isEnabled,
		Hotkey:                  hotkey,
		HighlightOthersWhenHeld: highlightOthersWhenHeld,
		OnStart:                 onStart,
		Map:                     fn,
		OnFinish:                onFinish,
	})
}

// AddSingleItemRangeHighlighter registers an item highlighter whose mapper
// produces at most one result.
func (a *API) AddSingleItemRangeHighlighter(id string, isEnabled Predicate, hotkey HotkeyFunc,
	highlightOthersWhenHeld Predicate, fn func(item Item, slot int, name string) (TintedShape, bool)) {
	a.AddItemRangeHighlighter(id, isEnabled, hotkey, highlightOthersWhenHeld, nil, SingleItem(fn), nil)
}

func (a *API) RemoveItemRangeHighlighter(id string) {
	a.h.RemoveItemHighlighter(id)
}

// --- Sprites ---

func (a *API) AddSpriteHighlighter(id string, isEnabled Predicate, fn SpriteHighlightFunc) {
	a.h.AddSpriteHighlighter(SpriteHighlighter{ID: id, Enabled: isEnabled, Map: fn})
}

func (a *API) AddSingleSpriteHighlighter(id string, isEnabled Predicate, fn func(Sprite) (TintedShape, bool)) {
	a.AddSpriteHighlighter(id, isEnabled, SingleSprite(fn))
}

func (a *API) RemoveSpriteHighlighter(id string) {
	a.h.RemoveSpriteHighlighter(id)
}
