package rangehighlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Keybind parse errors.
var (
	ErrEmptyKeybind  = errors.New("empty keybind")
	ErrUnknownButton = errors.New("unknown button")
)

// Button is a single keyboard key or mouse button.
type Button struct {
	mouse bool
	key   ebiten.Key
	btn   ebiten.MouseButton
}

// KeyButton wraps a keyboard key.
func KeyButton(k ebiten.Key) Button {
	return Button{key: k}
}

// MouseButton wraps a mouse button.
func MouseButton(b ebiten.MouseButton) Button {
	return Button{mouse: true, btn: b}
}

var mouseNames = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "MouseLeft",
	ebiten.MouseButtonRight:  "MouseRight",
	ebiten.MouseButtonMiddle: "MouseMiddle",
	ebiten.MouseButton3:      "MouseX1",
	ebiten.MouseButton4:      "MouseX2",
}

func (b Button) String() string {
	if b.mouse {
		if name, ok := mouseNames[b.btn]; ok {
			return name
		}
		return fmt.Sprintf("Mouse%d", int(b.btn))
	}
	return b.key.String()
}

// buttonsByName maps lowercase names to buttons. Built once from ebiten's own
// key names so every key ebiten knows is bindable.
var buttonsByName = func() map[string]Button {
	m := make(map[string]Button, int(ebiten.KeyMax)+len(mouseNames))
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := strings.ToLower(k.String())
		if name == "" {
			continue
		}
		if _, dup := m[name]; !dup {
			m[name] = KeyButton(k)
		}
	}
	for b, name := range mouseNames {
		m[strings.ToLower(name)] = MouseButton(b)
	}
	return m
}()

// ParseButton resolves a key or mouse button name, case-insensitively.
func ParseButton(s string) (Button, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Button{}, ErrEmptyKeybind
	}
	b, ok := buttonsByName[name]
	if !ok {
		return Button{}, fmt.Errorf("%q: %w", s, ErrUnknownButton)
	}
	return b, nil
}

// InputState answers whether a button is currently held.
type InputState interface {
	IsDown(b Button) bool
}

// Keybind is satisfied while all of its buttons are held.
type Keybind []Button

// IsDown reports whether every button is held. An empty keybind is never down.
func (k Keybind) IsDown(in InputState) bool {
	if len(k) == 0 || in == nil {
		return false
	}
	for _, b := range k {
		if !in.IsDown(b) {
			return false
		}
	}
	return true
}

func (k Keybind) String() string {
	parts := make([]string, len(k))
	for i, b := range k {
		parts[i] = b.String()
	}
	return strings.Join(parts, "+")
}

// KeybindList is satisfied while any of its keybinds is.
type KeybindList []Keybind

// Keys builds a list of single-button keybinds, one per key.
func Keys(keys ...ebiten.Key) KeybindList {
	l := make(KeybindList, len(keys))
	for i, k := range keys {
		l[i] = Keybind{KeyButton(k)}
	}
	return l
}

// IsDown reports whether any keybind is held. An empty list is never down.
func (l KeybindList) IsDown(in InputState) bool {
	for _, k := range l {
		if k.IsDown(in) {
			return true
		}
	}
	return false
}

func (l KeybindList) String() string {
	parts := make([]string, len(l))
	for i, k := range l {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

// ParseKeybindList parses "R, ShiftLeft+S, MouseMiddle". An empty or blank
// string yields an empty list (no hotkey).
func ParseKeybindList(s string) (KeybindList, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out KeybindList
	for _, chunk := range strings.Split(s, ",") {
		var kb Keybind
		for _, part := range strings.Split(chunk, "+") {
			b, err := ParseButton(part)
			if err != nil {
				return nil, fmt.Errorf("parse keybind %q: %w", s, err)
			}
			kb = append(kb, b)
		}
		out = append(out, kb)
	}
	return out, nil
}

// MustParseKeybindList is like ParseKeybindList but panics on error.
func MustParseKeybindList(s string) KeybindList {
	l, err := ParseKeybindList(s)
	if err != nil {
		panic(err)
	}
	return l
}

// --- Implementations ---

// MapInput is an InputState driven by explicit Press/Release calls. Headless
// hosts and terminal front ends use it in place of EbitenInput.
type MapInput struct {
	down map[Button]bool
}

// NewMapInput creates an empty input state.
func NewMapInput() *MapInput {
	return &MapInput{down: make(map[Button]bool)}
}

// Press marks buttons as held.
func (m *MapInput) Press(bs ...Button) {
	for _, b := range bs {
		m.down[b] = true
	}
}

// Release marks buttons as not held.
func (m *MapInput) Release(bs ...Button) {
	for _, b := range bs {
		delete(m.down, b)
	}
}

// Toggle flips a button and returns its new state.
func (m *MapInput) Toggle(b Button) bool {
	if m.down[b] {
		delete(m.down, b)
		return false
	}
	m.down[b] = true
	return true
}

// ReleaseAll clears every held button.
func (m *MapInput) ReleaseAll() {
	clear(m.down)
}

func (m *MapInput) IsDown(b Button) bool {
	return m.down[b]
}

// EbitenInput polls ebiten's keyboard and mouse state. Safe to call from
// ebiten's Update only.
type EbitenInput struct{}

func (EbitenInput) IsDown(b Button) bool {
	if b.mouse {
		return ebiten.IsMouseButtonPressed(b.btn)
	}
	return ebiten.IsKeyPressed(b.key)
}

// CursorTile converts the current mouse position to a tile through cam.
func (EbitenInput) CursorTile(cam *Camera) TilePoint {
	x, y := ebiten.CursorPosition()
	return cam.ScreenToTile(float64(x), float64(y))
}
