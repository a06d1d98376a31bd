package render

import (
	"gridfire/engine"
	"gridfire/raycast"
	"gridfire/vmath"
)

// Shading and range defaults.
const (
	DefaultViewDistance = 64.0
	DefaultFalloff      = 0.35 // shade attenuation per unit of wall distance
)

// Caster projects the world into a framebuffer one column at a time:
// one ray per on-screen column, each hit filling a vertical wall strip
// whose height is screenHeight over the perpendicular distance. Cost is
// O(screenWidth) traversals per frame, never per-pixel.
type Caster struct {
	grid         *raycast.Grid
	ViewDistance float64
	Falloff      float64
}

// NewCaster creates a renderer over the level grid.
func NewCaster(grid *raycast.Grid) *Caster {
	return &Caster{
		grid:         grid,
		ViewDistance: DefaultViewDistance,
		Falloff:      DefaultFalloff,
	}
}

// Render fills the buffer from the first {Position, Camera} entity's
// viewpoint. A world without a camera renders black. Render runs
// against the same grid and world the systems mutate, but outside the
// tick, per the engine's single-threaded schedule.
func (c *Caster) Render(w *engine.World, buf *FrameBuffer) {
	buf.Clear()

	cameras := w.Query().
		With(w.Positions).
		With(w.Cameras).
		Execute()
	if len(cameras) == 0 {
		return
	}
	eye := cameras[0]
	pos, _ := w.Positions.Get(eye)
	cam, _ := w.Cameras.Get(eye)
	origin := vmath.Vec2F{X: pos.X, Y: pos.Y}
	forward := vmath.V2FNormalize(cam.Dir)

	for col := 0; col < buf.Width; col++ {
		// Column direction: camera forward rotated by the column's
		// share of the field of view
		frac := 0.0
		if buf.Width > 1 {
			frac = float64(col)/float64(buf.Width-1) - 0.5
		}
		dir := vmath.V2FRotate(forward, frac*cam.FOV)

		hit, ok := raycast.Cast(c.grid, raycast.Ray{
			Origin:      origin,
			Dir:         dir,
			MaxDistance: c.ViewDistance,
		})
		if !ok {
			continue
		}

		c.fillColumn(buf, col, hit.PerpDist)
	}
}

// fillColumn draws one wall strip: projected height screenHeight/perp,
// centered vertically, shaded darker with distance.
func (c *Caster) fillColumn(buf *FrameBuffer, col int, perp float64) {
	h := int(float64(buf.Height) / perp)
	if h > buf.Height {
		h = buf.Height
	}
	if h < 1 {
		h = 1
	}
	top := (buf.Height - h) / 2
	shade := c.shadeFor(perp)
	for y := top; y < top+h; y++ {
		buf.Set(col, y, shade)
	}
}

// shadeFor maps wall distance to intensity, monotonically darkening as
// distance grows.
func (c *Caster) shadeFor(perp float64) uint8 {
	v := 255.0 / (1.0 + c.Falloff*perp)
	if v < 1 {
		v = 1
	}
	return uint8(v)
}
