// Package rangehighlight shows the tile ranges of placeable things in a
// tile-based farm game, drawn with [Ebitengine].
//
// Hosts register highlighters that map buildings, items and transient sprites
// to tinted tile shapes. Once every few ticks the [Highlighter] decides which
// highlighters are active (hotkeys, the held item, the hovered building, a
// blueprint being placed), sweeps the world, and publishes the result to a
// [HighlightBuffer]. A [Renderer] draws that buffer every frame without ever
// blocking the game loop.
//
// # Quick start
//
//	h := rangehighlight.NewHighlighter(nil) // DefaultConfig
//	rangehighlight.InstallDefaults(h, rangehighlight.NewDefaultShapes())
//
//	// Update, once per tick:
//	h.Step(world, rangehighlight.EbitenInput{})
//
//	// Draw, once per frame:
//	renderer.Draw(screen, h.Buffer(), camera)
//
// # Shapes
//
// A [Shape] is an odd-sided square of booleans centered on the origin tile.
// [GenerateShape] builds one from a radius and a [Metric]: square,
// manhattan, or euclidean distance with truncation, ceiling or rounding.
// Shapes are immutable; a [ShapeCache] shares them between callers.
//
// # Highlighters
//
// Registration order is priority order: the most recently added highlighter
// is asked first, and the first match claims the entity. Several
// registrations may share an id; removing an id removes all of them. Other
// components use the [API] facade, which also offers single-result helpers.
//
// # Subpackages
//
// Settings are loaded by the config subpackage (viper, .env, environment),
// loggers built by logging (logrus with lumberjack rotation), and the ecs
// module adapts a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package rangehighlight
