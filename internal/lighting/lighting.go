// Package lighting owns the scene lights: the three colored point lights that
// circle the scene and the static fill lights around them.
package lighting

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/internal/scene"
)

// Config tunes the light paths.
type Config struct {
	TimeScale    float64 `yaml:"time_scale"`
	OrbitRadius  float64 `yaml:"orbit_radius"`
	InnerRadius  float64 `yaml:"inner_radius"`
	InnerRate    float64 `yaml:"inner_rate"`
	AmbientLevel float64 `yaml:"ambient_level"`
}

// DefaultConfig returns the stock light animation.
func DefaultConfig() Config {
	return Config{
		TimeScale:    0.0005,
		OrbitRadius:  10,
		InnerRadius:  8,
		InnerRate:    0.7,
		AmbientLevel: 0.3,
	}
}

// Rig is the full light setup. Moving holds the animated point lights in
// order A, B, C; Static holds lights that never move.
type Rig struct {
	Ambient colorful.Color
	Moving  []*scene.Light
	Static  []*scene.Light
}

// All returns every positioned light.
func (r *Rig) All() []*scene.Light {
	out := make([]*scene.Light, 0, len(r.Moving)+len(r.Static))
	out = append(out, r.Moving...)
	return append(out, r.Static...)
}

// DefaultRig returns the magenta, cyan and yellow point lights at their start
// positions plus a white key light overhead and a blue rim light behind.
func DefaultRig(cfg Config) *Rig {
	return &Rig{
		Ambient: mustHex("#404040"),
		Moving: []*scene.Light{
			{Name: "magenta", Position: mgl64.Vec3{10, 10, 10}, Color: mustHex("#ff00ff"), Intensity: 3, Range: 100},
			{Name: "cyan", Position: mgl64.Vec3{-10, -10, 10}, Color: mustHex("#00ffff"), Intensity: 3, Range: 100},
			{Name: "yellow", Position: mgl64.Vec3{0, 10, -10}, Color: mustHex("#ffff00"), Intensity: 2, Range: 100},
		},
		Static: []*scene.Light{
			{Name: "key", Position: mgl64.Vec3{0, 20, 0}, Color: colorful.Color{R: 1, G: 1, B: 1}, Intensity: 2, Range: 100},
			{Name: "rim", Position: mgl64.Vec3{0, 0, -20}, Color: mustHex("#0080ff"), Intensity: 1},
		},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("lighting: bad color %q: %v", s, err))
	}
	return c
}

// Animator moves the rig's lights as a pure function of wall-clock time.
type Animator struct {
	cfg Config
}

// NewAnimator returns an animator for cfg.
func NewAnimator(cfg Config) *Animator {
	return &Animator{cfg: cfg}
}

// Apply places the moving lights for nowMs. Missing lights are skipped.
func (a *Animator) Apply(r *Rig, nowMs float64) {
	if r == nil {
		return
	}
	t := nowMs * a.cfg.TimeScale
	R := a.cfg.OrbitRadius
	if l := lightAt(r.Moving, 0); l != nil {
		l.Position[0] = math.Cos(t) * R
		l.Position[1] = math.Sin(t) * R
	}
	if l := lightAt(r.Moving, 1); l != nil {
		l.Position[0] = math.Cos(t+math.Pi) * R
		l.Position[1] = math.Sin(t+math.Pi) * R
	}
	if l := lightAt(r.Moving, 2); l != nil {
		l.Position[0] = math.Cos(t*a.cfg.InnerRate) * a.cfg.InnerRadius
		l.Position[2] = math.Sin(t*a.cfg.InnerRate) * a.cfg.InnerRadius
	}
}

func lightAt(ls []*scene.Light, i int) *scene.Light {
	if i >= len(ls) {
		return nil
	}
	return ls[i]
}

// Illuminate tints base by the ambient term and every light that reaches
// point. Lights with a Range fall off linearly to zero at that distance; a
// zero Range means directional.
func (a *Animator) Illuminate(r *Rig, point mgl64.Vec3, base colorful.Color) colorful.Color {
	if r == nil {
		return base
	}
	acc := colorful.Color{
		R: r.Ambient.R * a.cfg.AmbientLevel,
		G: r.Ambient.G * a.cfg.AmbientLevel,
		B: r.Ambient.B * a.cfg.AmbientLevel,
	}
	for _, l := range r.All() {
		if l == nil {
			continue
		}
		w := l.Intensity * 0.1
		if l.Range > 0 {
			d := l.Position.Sub(point).Len()
			if d >= l.Range {
				continue
			}
			w *= 1 - d/l.Range
		}
		acc.R += l.Color.R * w
		acc.G += l.Color.G * w
		acc.B += l.Color.B * w
	}
	return colorful.Color{R: base.R * (0.4 + acc.R), G: base.G * (0.4 + acc.G), B: base.B * (0.4 + acc.B)}.Clamped()
}
