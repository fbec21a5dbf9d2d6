package rangehighlight

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// PassStats describes the most recent resolution pass.
type PassStats struct {
	Tick             uint64
	Blocked          bool
	Records          int
	ActiveBuildings  int
	ActiveItems      int
	BuildingsVisited int
	ObjectsVisited   int
	SpritesVisited   int
	Duration         time.Duration
}

// Highlighter owns the highlighter registries and rebuilds the highlight
// buffer once every TickInterval ticks.
//
// Registration (Add*/Remove*) is not synchronized with Update; hosts register
// at startup or from the same goroutine that drives Update. The buffer is the
// only state shared with the render goroutine.
type Highlighter struct {
	settings  *Settings
	buildings registry[BuildingHighlighter]
	items     registry[ItemHighlighter]
	sprites   registry[SpriteHighlighter]

	buffer *HighlightBuffer
	back   []Record
	tick   uint64

	log   logrus.FieldLogger
	debug bool
	stats PassStats

	// Per-pass scratch, reused to avoid allocation.
	enabledB, runB []bool
	enabledI, runI []bool
}

// NewHighlighter creates an engine reading its settings from s. A nil s uses
// DefaultConfig.
func NewHighlighter(s *Settings) *Highlighter {
	if s == nil {
		s = NewSettings(DefaultConfig())
	}
	return &Highlighter{
		settings: s,
		buffer:   NewHighlightBuffer(),
		log:      logrus.StandardLogger(),
		debug:    s.Load().Debug,
	}
}

// Settings returns the settings the engine reads each pass.
func (h *Highlighter) Settings() *Settings {
	return h.settings
}

// Buffer returns the buffer the renderer reads.
func (h *Highlighter) Buffer() *HighlightBuffer {
	return h.buffer
}

// SetLogger replaces the logger. nil restores the logrus standard logger.
func (h *Highlighter) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	h.log = l
}

// SetDebugMode enables per-pass stats logging at debug level.
func (h *Highlighter) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// Stats returns the stats of the most recent pass.
func (h *Highlighter) Stats() PassStats {
	return h.stats
}

// --- Registration ---

// AddBuildingHighlighter registers hl ahead of every existing building
// highlighter.
func (h *Highlighter) AddBuildingHighlighter(hl BuildingHighlighter) {
	h.buildings.add(hl)
	h.log.WithFields(logrus.Fields{"category": "building", "id": hl.ID}).Debug("highlighter added")
}

// RemoveBuildingHighlighter removes every building highlighter with id.
// Unknown ids are ignored.
func (h *Highlighter) RemoveBuildingHighlighter(id string) {
	n := h.buildings.remove(id)
	h.log.WithFields(logrus.Fields{"category": "building", "id": id, "removed": n}).Debug("highlighter removed")
}

// AddItemHighlighter registers hl ahead of every existing item highlighter.
func (h *Highlighter) AddItemHighlighter(hl ItemHighlighter) {
	h.items.add(hl)
	h.log.WithFields(logrus.Fields{"category": "item", "id": hl.ID}).Debug("highlighter added")
}

// RemoveItemHighlighter removes every item highlighter with id.
func (h *Highlighter) RemoveItemHighlighter(id string) {
	n := h.items.remove(id)
	h.log.WithFields(logrus.Fields{"category": "item", "id": id, "removed": n}).Debug("highlighter removed")
}

// AddSpriteHighlighter registers hl ahead of every existing sprite highlighter.
func (h *Highlighter) AddSpriteHighlighter(hl SpriteHighlighter) {
	h.sprites.add(hl)
	h.log.WithFields(logrus.Fields{"category": "sprite", "id": hl.ID}).Debug("highlighter added")
}

// RemoveSpriteHighlighter removes every sprite highlighter with id.
func (h *Highlighter) RemoveSpriteHighlighter(id string) {
	n := h.sprites.remove(id)
	h.log.WithFields(logrus.Fields{"category": "sprite", "id": id, "removed": n}).Debug("highlighter removed")
}

// BuildingHighlighterIDs returns building highlighter ids in priority order.
func (h *Highlighter) BuildingHighlighterIDs() []string { return h.buildings.ids() }

// ItemHighlighterIDs returns item highlighter ids in priority order.
func (h *Highlighter) ItemHighlighterIDs() []string { return h.items.ids() }

// SpriteHighlighterIDs returns sprite highlighter ids in priority order.
func (h *Highlighter) SpriteHighlighterIDs() []string { return h.sprites.ids() }

// --- Resolution ---

// Step advances the engine's own tick counter and calls Update. Use it when
// the host does not expose a tick number.
func (h *Highlighter) Step(w World, in InputState) bool {
	h.tick++
	return h.Update(h.tick, w, in)
}

// Update runs a resolution pass when tick falls on the configured cadence
// and reports whether it did. Off-cadence ticks leave the buffer untouched.
func (h *Highlighter) Update(tick uint64, w World, in InputState) bool {
	interval := h.settings.Load().TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if tick%uint64(interval) != 0 {
		return false
	}
	h.tick = tick
	h.Resolve(w, in)
	return true
}

// Resolve runs one resolution pass immediately, regardless of cadence.
func (h *Highlighter) Resolve(w World, in InputState) {
	cfg := h.settings.Load()
	start := time.Now()
	h.stats = PassStats{Tick: h.tick}
	st := &h.stats

	if w.Blocked() {
		st.Blocked = true
		if cfg.ClearBeforeBlockCheck {
			h.back = h.buffer.Publish(h.back[:0])
		}
		h.logPass(start)
		return
	}

	out := h.back[:0]
	buildings := h.buildings.entries
	items := h.items.entries

	enabledB := resetBools(&h.enabledB, len(buildings))
	runB := resetBools(&h.runB, len(buildings))
	enabledI := resetBools(&h.enabledI, len(items))
	runI := resetBools(&h.runI, len(items))
	for i := range buildings {
		enabledB[i] = enabled(buildings[i].Enabled)
	}
	for i := range items {
		enabledI[i] = items[i].Map != nil && enabled(items[i].Enabled)
		if enabledI[i] && items[i].OnStart != nil {
			items[i].OnStart()
		}
	}

	iterB, iterI := false, false
	cursor := w.CursorTile()

	// Blueprint placement: draw at the cursor and show the same kind of
	// building elsewhere.
	if bp, ok := w.Blueprint(); ok {
		for i := range buildings {
			if !enabledB[i] || buildings[i].Blueprint == nil {
				continue
			}
			if res := buildings[i].Blueprint(bp); res != nil {
				for _, r := range res {
					out = appendShape(out, r.Tint, r.Shape, cursor.Add(r.OffsetX, r.OffsetY))
				}
				runB[i] = true
				iterB = true
				break
			}
		}
	}

	// Hovered building: only decides whether to sweep; results are computed
	// in the sweep.
	if cfg.HighlightBuildingsOnHover {
		if b, ok := w.BuildingAt(cursor); ok {
			for i := range buildings {
				if enabledB[i] && buildings[i].Building != nil && buildings[i].Building(b) != nil {
					runB[i] = true
					iterB = true
					break
				}
			}
		}
	}

	// Held item: the only highlight anchored to the cursor.
	if item, slot, ok := w.HeldItem(); ok {
		name := strings.ToLower(item.Name)
		for i := range items {
			if !enabledI[i] {
				continue
			}
			if res := items[i].Map(item, slot, name); res != nil {
				for _, r := range res {
					out = appendShape(out, r.Tint, r.Shape, cursor)
				}
				runI[i] = enabled(items[i].HighlightOthersWhenHeld)
				iterI = true
				break
			}
		}
	}

	showAll := cfg.ShowAllRangesKey.IsDown(in)
	for i := range buildings {
		if enabledB[i] && (showAll || hotkeyDown(buildings[i].Hotkey, in)) {
			runB[i] = true
			iterB = true
		}
	}
	for i := range items {
		if enabledI[i] && (showAll || hotkeyDown(items[i].Hotkey, in)) {
			runI[i] = true
			iterI = true
		}
	}

	if iterB {
		for _, b := range w.Buildings() {
			st.BuildingsVisited++
			for i := range buildings {
				if !runB[i] || buildings[i].Building == nil {
					continue
				}
				if res := buildings[i].Building(b); res != nil {
					for _, r := range res {
						out = appendShape(out, r.Tint, r.Shape, b.Tile.Add(r.OffsetX, r.OffsetY))
					}
					break
				}
			}
		}
	}

	if iterI {
		for _, o := range w.Objects() {
			st.ObjectsVisited++
			name := strings.ToLower(o.Name)
			for i := range items {
				if !runI[i] {
					continue
				}
				if res := items[i].Map(o, -1, name); res != nil {
					for _, r := range res {
						out = appendShape(out, r.Tint, r.Shape, o.Tile)
					}
					break
				}
			}
		}
	}

	out = h.sweepSprites(w, out)

	for i := range items {
		if enabledI[i] && items[i].OnFinish != nil {
			items[i].OnFinish()
		}
	}

	st.Records = len(out)
	st.ActiveBuildings = countTrue(runB)
	st.ActiveItems = countTrue(runI)
	h.back = h.buffer.Publish(out)
	h.logPass(start)
}

// sweepSprites applies enabled sprite highlighters to every transient sprite.
func (h *Highlighter) sweepSprites(w World, out []Record) []Record {
	sprites := h.sprites.entries
	active := false
	for i := range sprites {
		if sprites[i].Map != nil && enabled(sprites[i].Enabled) {
			active = true
			break
		}
	}
	if !active {
		return out
	}
	for _, s := range w.Sprites() {
		h.stats.SpritesVisited++
		for i := range sprites {
			if sprites[i].Map == nil || !enabled(sprites[i].Enabled) {
				continue
			}
			if res := sprites[i].Map(s); res != nil {
				for _, r := range res {
					out = appendShape(out, r.Tint, r.Shape, s.Tile)
				}
				break
			}
		}
	}
	return out
}

func (h *Highlighter) logPass(start time.Time) {
	h.stats.Duration = time.Since(start)
	if !h.debug {
		return
	}
	st := h.stats
	h.log.WithFields(logrus.Fields{
		"tick":      st.Tick,
		"blocked":   st.Blocked,
		"records":   st.Records,
		"buildings": st.BuildingsVisited,
		"objects":   st.ObjectsVisited,
		"sprites":   st.SpritesVisited,
		"active":    st.ActiveBuildings + st.ActiveItems,
		"took":      st.Duration,
	}).Debug("range pass")
}

func resetBools(buf *[]bool, n int) []bool {
	if cap(*buf) < n {
		*buf = make([]bool, n)
	}
	s := (*buf)[:n]
	clear(s)
	return s
}

func countTrue(s []bool) int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}
