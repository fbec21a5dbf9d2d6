package rangehighlight

import "strings"

// Ids of the built-in highlighters.
const (
	JunimoHutID = "rangehighlight/junimoHut"
	SprinklerID = "rangehighlight/sprinkler"
	ScarecrowID = "rangehighlight/scarecrow"
	BeehouseID  = "rangehighlight/beehouse"
	BombID      = "rangehighlight/bomb"
)

// DefaultShapes holds the shapes used by the built-in highlighters. Fields may
// be replaced after InstallDefaults; highlighters read them on every call.
type DefaultShapes struct {
	Sprinkler          Shape
	QualitySprinkler   Shape
	IridiumSprinkler   Shape
	PrismaticSprinkler Shape
	Beehouse           Shape
	Scarecrow          Shape
	DeluxeScarecrow    Shape
	JunimoHut          Shape
	CherryBomb         Shape
	Bomb               Shape
	MegaBomb           Shape
}

// sprinklerPlus is the basic sprinkler: the four orthogonal neighbours.
var sprinklerPlus = MustShape([][]bool{
	{false, true, false},
	{true, false, true},
	{false, true, false},
})

// NewDefaultShapes builds the stock shapes.
func NewDefaultShapes() *DefaultShapes {
	return &DefaultShapes{
		Sprinkler:          sprinklerPlus,
		QualitySprinkler:   GenerateShape(1, true, MetricSquare),
		IridiumSprinkler:   GenerateShape(2, true, MetricSquare),
		PrismaticSprinkler: GenerateShape(3, true, MetricSquare),
		Beehouse:           GenerateShape(5, true, MetricManhattan),
		Scarecrow:          GenerateShape(8, true, MetricCartesianTruncate),
		DeluxeScarecrow:    GenerateShape(16, true, MetricCartesianTruncate),
		// The hut's own 3x2 footprint sits at (-1..1, -1..0) around the origin.
		JunimoHut: GenerateShape(8, true, MetricSquare).Without(
			TilePoint{-1, -1}, TilePoint{0, -1}, TilePoint{1, -1},
			TilePoint{-1, 0}, TilePoint{1, 0}),
		CherryBomb: GenerateShape(3, false, MetricCartesianRound),
		Bomb:       GenerateShape(5, false, MetricCartesianRound),
		MegaBomb:   GenerateShape(7, false, MetricCartesianRound),
	}
}

// nameRule picks a shape when the lowercased name contains substr. An empty
// substr always matches, so it belongs last.
type nameRule struct {
	substr string
	shape  func(s *DefaultShapes) Shape
}

// itemRule describes one built-in item highlighter.
type itemRule struct {
	id       string
	substr   string
	enabled  func(c *Config) bool
	hotkey   func(c *Config) KeybindList
	tint     func(c *Config) Color
	variants []nameRule
}

// Order matters within each variant list: "iridium" must be checked before
// the plain fallback, "mega bomb" and "cherry bomb" before "bomb".
var itemRules = []itemRule{
	{
		id:      ScarecrowID,
		substr:  "arecrow",
		enabled: func(c *Config) bool { return c.ShowScarecrowRange },
		hotkey:  func(c *Config) KeybindList { return c.ShowScarecrowRangeKey },
		tint:    func(c *Config) Color { return c.ScarecrowRangeTint },
		variants: []nameRule{
			{"deluxe", func(s *DefaultShapes) Shape { return s.DeluxeScarecrow }},
			{"", func(s *DefaultShapes) Shape { return s.Scarecrow }},
		},
	},
	{
		id:      SprinklerID,
		substr:  "sprinkler",
		enabled: func(c *Config) bool { return c.ShowSprinklerRange },
		hotkey:  func(c *Config) KeybindList { return c.ShowSprinklerRangeKey },
		tint:    func(c *Config) Color { return c.SprinklerRangeTint },
		variants: []nameRule{
			{"iridium", func(s *DefaultShapes) Shape { return s.IridiumSprinkler }},
			{"quality", func(s *DefaultShapes) Shape { return s.QualitySprinkler }},
			{"prismatic", func(s *DefaultShapes) Shape { return s.PrismaticSprinkler }},
			{"", func(s *DefaultShapes) Shape { return s.Sprinkler }},
		},
	},
	{
		id:      BeehouseID,
		substr:  "bee house",
		enabled: func(c *Config) bool { return c.ShowBeehouseRange },
		hotkey:  func(c *Config) KeybindList { return c.ShowBeehouseRangeKey },
		tint:    func(c *Config) Color { return c.BeehouseRangeTint },
		variants: []nameRule{
			{"", func(s *DefaultShapes) Shape { return s.Beehouse }},
		},
	},
	{
		id:       BombID,
		substr:   "bomb",
		enabled:  func(c *Config) bool { return c.ShowBombRange },
		hotkey:   func(c *Config) KeybindList { return c.ShowBombRangeKey },
		tint:     func(c *Config) Color { return c.BombRangeTint },
		variants: bombVariants,
	},
}

var bombVariants = []nameRule{
	{"mega bomb", func(s *DefaultShapes) Shape { return s.MegaBomb }},
	{"cherry bomb", func(s *DefaultShapes) Shape { return s.CherryBomb }},
	{"", func(s *DefaultShapes) Shape { return s.Bomb }},
}

func pickVariant(name string, rules []nameRule, shapes *DefaultShapes) Shape {
	for _, r := range rules {
		if strings.Contains(name, r.substr) {
			return r.shape(shapes)
		}
	}
	return Shape{}
}

// ClassifyItem returns the built-in highlighter id and shape for a lowercased
// item name, or ok=false when no built-in rule matches.
func ClassifyItem(name string, shapes *DefaultShapes) (id string, s Shape, ok bool) {
	for _, r := range itemRules {
		if strings.Contains(name, r.substr) {
			return r.id, pickVariant(name, r.variants, shapes), true
		}
	}
	return "", Shape{}, false
}

// InstallDefaults registers the built-in highlighters on h. Later
// registrations by other callers take priority over these.
func InstallDefaults(h *Highlighter, shapes *DefaultShapes) {
	settings := h.Settings()

	h.AddBuildingHighlighter(BuildingHighlighter{
		ID:      JunimoHutID,
		Enabled: func() bool { return settings.Load().ShowJunimoRange },
		Hotkey:  func() KeybindList { return settings.Load().ShowJunimoRangeKey },
		Blueprint: SingleBlueprint(func(bp Blueprint) (HighlightResult, bool) {
			if !isJunimoHut(bp.Type) && !isJunimoHut(bp.Name) {
				return HighlightResult{}, false
			}
			return HighlightResult{Tint: settings.Load().JunimoRangeTint, Shape: shapes.JunimoHut, OffsetX: 1, OffsetY: 1}, true
		}),
		Building: SingleBuilding(func(b Building) (HighlightResult, bool) {
			if !isJunimoHut(b.Type) {
				return HighlightResult{}, false
			}
			return HighlightResult{Tint: settings.Load().JunimoRangeTint, Shape: shapes.JunimoHut, OffsetX: 1, OffsetY: 1}, true
		}),
	})

	for _, rule := range itemRules {
		h.AddItemHighlighter(ItemHighlighter{
			ID:                      rule.id,
			Enabled:                 func() bool { return rule.enabled(settings.Load()) },
			Hotkey:                  func() KeybindList { return rule.hotkey(settings.Load()) },
			HighlightOthersWhenHeld: func() bool { return settings.Load().ShowOtherRangesWhenHeld },
			Map: SingleItem(func(_ Item, _ int, name string) (TintedShape, bool) {
				if !strings.Contains(name, rule.substr) {
					return TintedShape{}, false
				}
				return TintedShape{Tint: rule.tint(settings.Load()), Shape: pickVariant(name, rule.variants, shapes)}, true
			}),
		})
	}

	// Lit bombs become transient sprites until they explode.
	h.AddSpriteHighlighter(SpriteHighlighter{
		ID:      BombID,
		Enabled: func() bool { return settings.Load().ShowBombRange },
		Map: SingleSprite(func(s Sprite) (TintedShape, bool) {
			name := strings.ToLower(s.Name)
			if !strings.Contains(name, "bomb") {
				return TintedShape{}, false
			}
			return TintedShape{Tint: settings.Load().BombRangeTint, Shape: pickVariant(name, bombVariants, shapes)}, true
		}),
	})
}

func isJunimoHut(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "junimo hut")
}
