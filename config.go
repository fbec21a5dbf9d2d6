package rangehighlight

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultTickInterval is the number of host ticks between resolution passes
// (6 ticks is 0.1s at 60 TPS).
const DefaultTickInterval = 6

// Config holds already-resolved settings. Loading them from files or the
// environment is the job of the config subpackage.
type Config struct {
	ShowAllRangesKey      KeybindList
	ShowSprinklerRangeKey KeybindList
	ShowScarecrowRangeKey KeybindList
	ShowBeehouseRangeKey  KeybindList
	ShowJunimoRangeKey    KeybindList
	ShowBombRangeKey      KeybindList

	JunimoRangeTint    Color
	SprinklerRangeTint Color
	ScarecrowRangeTint Color
	BeehouseRangeTint  Color
	BombRangeTint      Color

	ShowSprinklerRange bool
	ShowScarecrowRange bool
	ShowBeehouseRange  bool
	ShowJunimoRange    bool
	ShowBombRange      bool

	// ShowOtherRangesWhenHeld makes a held sprinkler (and so on) also reveal
	// the ranges of placed sprinklers.
	ShowOtherRangesWhenHeld bool
	// HighlightBuildingsOnHover activates a building highlighter when the
	// cursor is over a building it matches.
	HighlightBuildingsOnHover bool

	// TickInterval is the resolution cadence in host ticks. <= 0 means
	// DefaultTickInterval.
	TickInterval int
	// ClearBeforeBlockCheck empties the buffer when a menu or event blocks
	// input. When false, the last highlights stay visible under the menu.
	ClearBeforeBlockCheck bool

	Debug bool
}

// DefaultConfig returns the stock key bindings, tints, and toggles.
func DefaultConfig() Config {
	return Config{
		ShowAllRangesKey:      Keys(ebiten.KeyR),
		ShowSprinklerRangeKey: Keys(ebiten.KeyS),
		ShowScarecrowRangeKey: Keys(ebiten.KeyW),
		ShowBeehouseRangeKey:  Keys(ebiten.KeyH),
		ShowJunimoRangeKey:    Keys(ebiten.KeyJ),
		ShowBombRangeKey:      Keys(ebiten.KeyB),

		JunimoRangeTint:    ColorWhite.Scale(0.7),
		SprinklerRangeTint: Color{0.6, 0.6, 0.9, 0.7},
		ScarecrowRangeTint: Color{0.6, 1.0, 0.6, 0.7},
		BeehouseRangeTint:  Color{1.0, 1.0, 0.6, 0.7},
		BombRangeTint:      Color{1.0, 0.5, 0.5, 0.7},

		ShowSprinklerRange: true,
		ShowScarecrowRange: true,
		ShowBeehouseRange:  true,
		ShowJunimoRange:    true,
		ShowBombRange:      true,

		ShowOtherRangesWhenHeld:   true,
		HighlightBuildingsOnHover: true,
		TickInterval:              DefaultTickInterval,
		ClearBeforeBlockCheck:     true,
	}
}

// Settings publishes the current Config to highlighters. Mapping functions
// call Load on every invocation, so Store takes effect on the next pass.
type Settings struct {
	p atomic.Pointer[Config]
}

// NewSettings creates settings holding a copy of c.
func NewSettings(c Config) *Settings {
	s := &Settings{}
	s.Store(c)
	return s
}

// Load returns the current snapshot. It must be treated as read-only.
func (s *Settings) Load() *Config {
	return s.p.Load()
}

// Store replaces the snapshot with a copy of c.
func (s *Settings) Store(c Config) {
	s.p.Store(&c)
}

// Update applies fn to a copy of the current snapshot and stores the result.
func (s *Settings) Update(fn func(c *Config)) {
	c := *s.p.Load()
	fn(&c)
	s.p.Store(&c)
}
