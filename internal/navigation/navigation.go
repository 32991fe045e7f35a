// Package navigation implements the free-look camera: drag to orbit, drag to
// pan, wheel to zoom. Input writes targets; Update smooths currents toward them.
package navigation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/mathx"
)

// Config tunes the navigation controller.
type Config struct {
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per pixel
	PanSpeed      float64 `yaml:"pan_speed"`      // world units per pixel
	ZoomSpeed     float64 `yaml:"zoom_speed"`     // world units per wheel unit
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	Damping       float64 `yaml:"damping"`
	InitialRadius float64 `yaml:"initial_radius"`
}

// DefaultConfig returns the standard navigation tuning.
func DefaultConfig() Config {
	return Config{
		RotationSpeed: 0.005,
		PanSpeed:      0.005,
		ZoomSpeed:     0.01,
		MinRadius:     2,
		MaxRadius:     60,
		Damping:       0.1,
		InitialRadius: 8,
	}
}

// Button identifies the pointer button that started a drag.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// DragMode is the drag currently in progress.
type DragMode int

const (
	DragNone DragMode = iota
	DragRotate
	DragPan
)

// CursorShape is the pointer affordance the host should display.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorGrabbing
	CursorMove
)

type damped struct {
	current, target float64
}

func (d *damped) step(f float64) { d.current = mathx.Lerp(d.current, d.target, f) }

// Pose is the resolved camera placement for one frame. Pan is applied to the
// scene root, not to the camera.
type Pose struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Pan      mgl64.Vec3
}

// Controller holds the target/current navigation state.
type Controller struct {
	cfg Config

	yaw, pitch, radius damped
	panCurrent         mgl64.Vec3
	panTarget          mgl64.Vec3

	mode         DragMode
	lastX, lastY float64
}

// New returns a controller looking at the origin from InitialRadius on +Z.
func New(cfg Config) *Controller {
	cfg = sanitize(cfg)
	r := mathx.Clamp(cfg.InitialRadius, cfg.MinRadius, cfg.MaxRadius)
	return &Controller{cfg: cfg, radius: damped{current: r, target: r}}
}

func sanitize(cfg Config) Config {
	def := DefaultConfig()
	if cfg.MinRadius <= 0 {
		cfg.MinRadius = def.MinRadius
	}
	if cfg.MaxRadius < cfg.MinRadius {
		cfg.MaxRadius = cfg.MinRadius
	}
	if cfg.Damping <= 0 || cfg.Damping > 1 {
		cfg.Damping = def.Damping
	}
	return cfg
}

// Config returns the tuning in effect.
func (c *Controller) Config() Config { return c.cfg }

// SetConfig retunes a live controller. The zoom is pulled inside the new
// radius bounds; everything else keeps its state.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = sanitize(cfg)
	c.radius.target = mathx.Clamp(c.radius.target, c.cfg.MinRadius, c.cfg.MaxRadius)
	c.radius.current = mathx.Clamp(c.radius.current, c.cfg.MinRadius, c.cfg.MaxRadius)
}

// PointerDown starts a rotate (primary) or pan (secondary) drag.
func (c *Controller) PointerDown(b Button, x, y float64) {
	switch b {
	case ButtonPrimary:
		c.mode = DragRotate
	case ButtonSecondary:
		c.mode = DragPan
	default:
		return
	}
	c.lastX, c.lastY = x, y
}

// PointerMove feeds a pointer position; it only has an effect while dragging.
func (c *Controller) PointerMove(x, y float64) {
	if c.mode == DragNone {
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	switch c.mode {
	case DragRotate:
		c.yaw.target -= dx * c.cfg.RotationSpeed
		c.pitch.target = mathx.Clamp(c.pitch.target+dy*c.cfg.RotationSpeed, -math.Pi/2, math.Pi/2)
	case DragPan:
		right, up := c.basis()
		c.panTarget = c.panTarget.
			Add(right.Mul(dx * c.cfg.PanSpeed)).
			Sub(up.Mul(dy * c.cfg.PanSpeed))
	}
}

// PointerUp ends the drag started by the given button.
func (c *Controller) PointerUp(b Button) {
	if (b == ButtonPrimary && c.mode == DragRotate) || (b == ButtonSecondary && c.mode == DragPan) {
		c.mode = DragNone
	}
}

// Wheel zooms by delta wheel units; positive moves the camera away.
func (c *Controller) Wheel(delta float64) {
	c.radius.target = mathx.Clamp(c.radius.target+delta*c.cfg.ZoomSpeed, c.cfg.MinRadius, c.cfg.MaxRadius)
}

// DragMode reports the drag in progress.
func (c *Controller) DragMode() DragMode { return c.mode }

// CursorShape reports the affordance matching the drag in progress.
func (c *Controller) CursorShape() CursorShape {
	switch c.mode {
	case DragRotate:
		return CursorGrabbing
	case DragPan:
		return CursorMove
	default:
		return CursorDefault
	}
}

// Update smooths the current values toward their targets and returns the
// camera pose for this frame.
func (c *Controller) Update() Pose {
	f := c.cfg.Damping
	c.yaw.step(f)
	c.pitch.step(f)
	c.radius.step(f)
	c.panCurrent = mathx.LerpVec3(c.panCurrent, c.panTarget, f)
	return c.Pose()
}

// Pose returns the camera pose for the current values without smoothing.
func (c *Controller) Pose() Pose {
	return Pose{
		Position: mathx.SphericalToCartesian(c.radius.current, c.yaw.current, c.pitch.current),
		Pan:      c.panCurrent,
	}
}

// Resync adopts a camera position set by someone else (the guided tour) so
// navigation continues from there without a snap. Targets follow currents.
func (c *Controller) Resync(position mgl64.Vec3) {
	r, yaw, pitch := mathx.CartesianToSpherical(position)
	if r == 0 {
		return
	}
	r = mathx.Clamp(r, c.cfg.MinRadius, c.cfg.MaxRadius)
	pitch = mathx.Clamp(pitch, -math.Pi/2, math.Pi/2)
	c.radius = damped{current: r, target: r}
	c.yaw = damped{current: yaw, target: yaw}
	c.pitch = damped{current: pitch, target: pitch}
	c.mode = DragNone
}

// Targets exposes the raw target values.
func (c *Controller) Targets() (yaw, pitch, radius float64) {
	return c.yaw.target, c.pitch.target, c.radius.target
}

// Currents exposes the smoothed values.
func (c *Controller) Currents() (yaw, pitch, radius float64) {
	return c.yaw.current, c.pitch.current, c.radius.current
}

// ClearPan drops any pan, target and current alike.
func (c *Controller) ClearPan() {
	c.panCurrent = mgl64.Vec3{}
	c.panTarget = mgl64.Vec3{}
}

// PanTarget exposes the scene-root pan target.
func (c *Controller) PanTarget() mgl64.Vec3 { return c.panTarget }

// basis returns the camera's right and up vectors for the current pose.
func (c *Controller) basis() (right, up mgl64.Vec3) {
	pos := mathx.SphericalToCartesian(c.radius.current, c.yaw.current, c.pitch.current)
	forward := pos.Mul(-1)
	if forward.Len() < 1e-9 {
		return mgl64.Vec3{1, 0, 0}, mathx.WorldUp
	}
	forward = forward.Normalize()
	right = forward.Cross(mathx.WorldUp)
	if right.Len() < 1e-9 {
		// Looking straight up or down: derive right from yaw alone.
		right = mgl64.Vec3{math.Cos(c.yaw.current), 0, -math.Sin(c.yaw.current)}
	}
	right = right.Normalize()
	up = right.Cross(forward).Normalize()
	return right, up
}
