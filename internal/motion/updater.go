package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/scene"
)

// Config tunes the per-frame motion rules.
type Config struct {
	GroupRotationRate float64 `yaml:"group_rotation_rate"`
	GroupParallax     float64 `yaml:"group_parallax"`
	EntityParallax    float64 `yaml:"entity_parallax"`
	MaxDelta          float64 `yaml:"max_delta"`
}

// DefaultConfig returns the standard motion tuning.
func DefaultConfig() Config {
	return Config{
		GroupRotationRate: 0.12,
		GroupParallax:     2,
		EntityParallax:    3,
		MaxDelta:          0.1,
	}
}

// Spin coefficients decorrelate the three rotation axes.
const (
	spinY = 0.7
	spinZ = 0.3
)

// Updater applies the motion rules to a registry.
type Updater struct {
	cfg Config
}

// NewUpdater returns an updater with the given tuning.
func NewUpdater(cfg Config) *Updater {
	if cfg.MaxDelta <= 0 {
		cfg.MaxDelta = DefaultConfig().MaxDelta
	}
	return &Updater{cfg: cfg}
}

// Update advances every group and entity in reg by dt seconds under the
// damped cursor position.
func (u *Updater) Update(reg *scene.Registry, cursor mgl64.Vec2, dt float64) {
	if reg == nil {
		return
	}
	dt = math.Min(math.Max(dt, 0), u.cfg.MaxDelta)

	for _, g := range reg.Groups() {
		u.updateGroup(g, cursor, dt)
	}
	for _, e := range reg.Entities() {
		u.updateEntity(e, cursor, dt)
	}
}

func (u *Updater) updateGroup(g *scene.Group, cursor mgl64.Vec2, dt float64) {
	if g == nil {
		return
	}
	if g.Static {
		g.Position = g.Home
		return
	}
	g.Position[0] = cursor[0] * g.Speed * u.cfg.GroupParallax
	g.Position[1] = cursor[1] * g.Speed * u.cfg.GroupParallax
	g.Position[2] = g.Home[2]
	g.Rotation[1] += u.cfg.GroupRotationRate * dt
}

func (u *Updater) updateEntity(e *scene.Entity, cursor mgl64.Vec2, dt float64) {
	if e == nil {
		return
	}
	m := &e.Motion

	if m.RotationSpeed != 0 {
		e.Rotation[0] += m.RotationSpeed * dt
		e.Rotation[1] += m.RotationSpeed * spinY * dt
		e.Rotation[2] += m.RotationSpeed * spinZ * dt
	}

	switch m.Kind {
	case scene.MotionOrbit:
		// Orbiters missing their orbit record are left where they are.
		if m.Orbit == nil || m.Orbit.AngularSpeed == 0 {
			return
		}
		m.Orbit.Angle += m.Orbit.AngularSpeed * dt
		e.Position = mgl64.Vec3{
			e.Original[0] + math.Cos(m.Orbit.Angle)*m.Orbit.Radius,
			e.Original[1] + math.Sin(m.Orbit.Angle)*m.Orbit.Radius,
			e.Original[2],
		}
	case scene.MotionParallax:
		e.Position = mgl64.Vec3{
			e.Original[0] + cursor[0]*m.Speed*u.cfg.EntityParallax,
			e.Original[1] + cursor[1]*m.Speed*u.cfg.EntityParallax,
			e.Original[2],
		}
	case scene.MotionStaticSpin, scene.MotionNone:
	}
}
