package component

// RenderableComponent describes how an entity is drawn.
// Sprite is the presentation glyph; Shade is a base intensity (0-255)
// before distance attenuation.
type RenderableComponent struct {
	Sprite rune
	Shade  uint8
}
