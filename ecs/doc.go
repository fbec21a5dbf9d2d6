// Package ecs adapts a [Donburi] world to the rangehighlight World interface.
//
// Entities carrying a [Tile] plus one of [BuildingData], [ObjectData] or
// [SpriteData] are swept by the highlighter. Cursor, held item and blueprint
// are host state set on the adapter each tick. [RunPass] also publishes the
// stats of every pass as a [PassEventType] event.
//
// Usage:
//
//	world := ecs.NewWorld(donburiWorld, menuOpen)
//	ecs.AddObject(donburiWorld, rangehighlight.Item{Name: "Sprinkler", Tile: p})
//	ecs.RunPass(h, world, input)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
