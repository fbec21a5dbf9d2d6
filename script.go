package rangehighlight

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// scriptStep is a single action in a replay script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	W      int    `json:"w,omitempty"`
	H      int    `json:"h,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
	Slot   int    `json:"slot,omitempty"`
	Keys   string `json:"keys,omitempty"`
	Open   bool   `json:"open,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`

	keys KeybindList
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// Snapshot is a labeled copy of the buffer taken by a "snapshot" step.
type Snapshot struct {
	Label   string
	Tick    uint64
	Records []Record
}

// ScriptRunner replays a JSON script against its own StaticWorld and
// MapInput, advancing a Highlighter by one tick per Step call.
//
// Actions: cursor, hold, drop, press, release, menu, event, blueprint,
// place, remove, wait, snapshot.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	world     *StaticWorld
	input     *MapInput
	snapshots []Snapshot
	placed    int
}

// LoadScript parses a JSON replay script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "press", "release":
			kl, err := ParseKeybindList(st.Keys)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.keys = kl
		case "place", "remove":
			switch st.Kind {
			case "building", "object", "sprite":
			default:
				return nil, fmt.Errorf("parse script: step %d: unknown kind %q", i, st.Kind)
			}
		case "cursor", "hold", "drop", "menu", "event", "blueprint", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{
		steps: s.Steps,
		world: &StaticWorld{},
		input: NewMapInput(),
	}, nil
}

// World returns the world the script edits.
func (r *ScriptRunner) World() *StaticWorld { return r.world }

// Input returns the input state the script edits.
func (r *ScriptRunner) Input() *MapInput { return r.input }

// Snapshots returns the captures taken so far, in order.
func (r *ScriptRunner) Snapshots() []Snapshot { return r.snapshots }

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool { return r.done }

// Step executes actions up to the next wait (or the end of the script), then
// advances h by one tick. It returns false once the script is done.
func (r *ScriptRunner) Step(h *Highlighter) bool {
	if r.done {
		return false
	}
	if r.waitCount > 0 {
		r.waitCount--
		h.Step(r.world, r.input)
		return true
	}
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		r.exec(h, st)
		if st.Action == "wait" {
			break
		}
	}
	h.Step(r.world, r.input)
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return true
}

// Run steps until the script is done.
func (r *ScriptRunner) Run(h *Highlighter) {
	for r.Step(h) {
	}
}

func (r *ScriptRunner) exec(h *Highlighter, st scriptStep) {
	w := r.world
	switch st.Action {
	case "cursor":
		w.Cursor = TilePoint{st.X, st.Y}
	case "hold":
		w.Held = &Item{ID: "held", Name: st.Name}
		w.HeldSlot = st.Slot
	case "drop":
		w.Held = nil
	case "press":
		for _, kb := range st.keys {
			r.input.Press(kb...)
		}
	case "release":
		for _, kb := range st.keys {
			r.input.Release(kb...)
		}
	case "menu", "event":
		w.IsBlocked = st.Open
	case "blueprint":
		if st.Name == "" && st.Type == "" {
			w.Placing = nil
		} else {
			w.Placing = &Blueprint{Name: st.Name, Type: st.Type}
		}
	case "place":
		r.place(st)
	case "remove":
		r.remove(st)
	case "wait":
		if st.Ticks > 1 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	case "snapshot":
		r.snapshots = append(r.snapshots, Snapshot{
			Label:   st.Label,
			Tick:    h.tick,
			Records: h.Buffer().Snapshot(),
		})
	}
}

func (r *ScriptRunner) place(st scriptStep) {
	r.placed++
	w := r.world
	at := TilePoint{st.X, st.Y}
	id := fmt.Sprintf("%s-%d", st.Kind, r.placed)
	switch st.Kind {
	case "building":
		width, height := st.W, st.H
		if width <= 0 {
			width = 1
		}
		if height <= 0 {
			height = 1
		}
		w.BuildingList = append(w.BuildingList, Building{ID: id, Type: st.Type, Tile: at, Width: width, Height: height})
	case "object":
		w.ObjectList = append(w.ObjectList, Item{ID: id, Name: st.Name, Tile: at})
	case "sprite":
		w.SpriteList = append(w.SpriteList, Sprite{ID: id, Name: st.Name, Tile: at})
	}
}

func (r *ScriptRunner) remove(st scriptStep) {
	w := r.world
	at := TilePoint{st.X, st.Y}
	switch st.Kind {
	case "building":
		w.BuildingList = slices.DeleteFunc(w.BuildingList, func(b Building) bool { return b.Tile == at })
	case "object":
		w.RemoveObjectAt(at)
	case "sprite":
		w.SpriteList = slices.DeleteFunc(w.SpriteList, func(s Sprite) bool { return s.Tile == at })
	}
}
