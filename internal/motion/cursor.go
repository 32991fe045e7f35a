// Package motion advances the parallax, spin and orbit state of every
// registered entity and group once per frame.
package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/mathx"
)

// DefaultCursorDamping is the per-frame smoothing factor of the cursor.
const DefaultCursorDamping = 0.05

// Cursor is the damped pointer position in normalized device coordinates.
// Input handlers write Target; only the frame loop advances Current.
type Cursor struct {
	Current mgl64.Vec2
	Target  mgl64.Vec2
	Damping float64
}

// NewCursor returns a centered cursor. A non-positive damping uses the default.
func NewCursor(damping float64) *Cursor {
	if damping <= 0 || damping > 1 {
		damping = DefaultCursorDamping
	}
	return &Cursor{Damping: damping}
}

// SetTarget stores a target in NDC, clamped to [-1, 1].
func (c *Cursor) SetTarget(x, y float64) {
	c.Target = mgl64.Vec2{mathx.Clamp(x, -1, 1), mathx.Clamp(y, -1, 1)}
}

// SetPointer converts a pixel position inside a w×h viewport into the target.
func (c *Cursor) SetPointer(px, py float64, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x, y := NormalizePointer(px, py, w, h)
	c.SetTarget(x, y)
}

// Step moves Current one smoothing step toward Target.
func (c *Cursor) Step() {
	c.Current[0] = mathx.Lerp(c.Current[0], c.Target[0], c.Damping)
	c.Current[1] = mathx.Lerp(c.Current[1], c.Target[1], c.Damping)
}

// Reset recenters both current and target.
func (c *Cursor) Reset() {
	c.Current = mgl64.Vec2{}
	c.Target = mgl64.Vec2{}
}

// NormalizePointer maps pixel coordinates to NDC with +Y up.
func NormalizePointer(px, py float64, w, h int) (float64, float64) {
	x := (px/float64(w))*2 - 1
	y := -(py/float64(h))*2 + 1
	return x, y
}
