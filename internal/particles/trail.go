// Package particles simulates the exhaust trail behind the tour spacecraft: a
// fixed pool of particles emitted from the two thrusters.
package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/pkg/core"
)

// Config tunes the trail.
type Config struct {
	Capacity       int     `yaml:"capacity"`
	EmitIntervalMs float64 `yaml:"emit_interval_ms"`
	SpawnJitter    float64 `yaml:"spawn_jitter"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	VelocityJitter float64 `yaml:"velocity_jitter"`
	Friction       float64 `yaml:"friction"`
	MinLifetimeMs  float64 `yaml:"min_lifetime_ms"`
	MaxLifetimeMs  float64 `yaml:"max_lifetime_ms"`
	BaseSize       float64 `yaml:"base_size"`
}

// DefaultConfig returns the stock exhaust trail.
func DefaultConfig() Config {
	return Config{
		Capacity:       100,
		EmitIntervalMs: 50,
		SpawnJitter:    0.05,
		MinSpeed:       0.3,
		MaxSpeed:       0.5,
		VelocityJitter: 0.002,
		Friction:       0.98,
		MinLifetimeMs:  2000,
		MaxLifetimeMs:  3000,
		BaseSize:       0.08,
	}
}

// Particle is one pool slot. A slot with Remaining <= 0 is dead and has a
// zero footprint.
type Particle struct {
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	BaseColor colorful.Color
	Color     colorful.Color
	BaseSize  float64
	Size      float64
	Remaining float64
	Lifetime  float64
}

// Alive reports whether the slot holds a live particle.
func (p *Particle) Alive() bool { return p.Remaining > 0 }

// LifeFraction is the elapsed share of the particle's lifetime.
func (p *Particle) LifeFraction() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return 1 - p.Remaining/p.Lifetime
}

func (p *Particle) kill() {
	*p = Particle{}
}

// Trail is the particle pool.
type Trail struct {
	cfg       Config
	rng       *core.RNG
	particles []Particle
	lastEmit  float64
	emitted   bool
}

// New allocates a trail with cfg.Capacity dead particles.
func New(cfg Config, rng *core.RNG) *Trail {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	if cfg.MaxLifetimeMs < cfg.MinLifetimeMs {
		cfg.MaxLifetimeMs = cfg.MinLifetimeMs
	}
	if rng == nil {
		rng = core.NewRNG(1)
	}
	return &Trail{cfg: cfg, rng: rng, particles: make([]Particle, cfg.Capacity)}
}

// Emit spawns at most one particle if the emission interval has passed since
// the previous emission. The first dead slot is reused and its index parity
// picks the thruster. dir is the exhaust direction. It reports whether a
// particle was emitted.
func (t *Trail) Emit(now float64, points [2]mgl64.Vec3, dir mgl64.Vec3) bool {
	if t.emitted && now-t.lastEmit < t.cfg.EmitIntervalMs {
		return false
	}
	slot := -1
	for i := range t.particles {
		if !t.particles[i].Alive() {
			slot = i
			break
		}
	}
	if slot < 0 {
		return false
	}
	t.lastEmit = now
	t.emitted = true

	j := t.cfg.SpawnJitter
	origin := points[slot%2].Add(mgl64.Vec3{t.rng.Jitter(j), t.rng.Jitter(j), t.rng.Jitter(j)})

	var vel mgl64.Vec3
	if dir.Len() > 1e-9 {
		vel = dir.Normalize().Mul(t.rng.Range(t.cfg.MinSpeed, t.cfg.MaxSpeed))
	}
	vj := t.cfg.VelocityJitter * 5
	vel = vel.Add(mgl64.Vec3{t.rng.Jitter(vj), t.rng.Jitter(vj), t.rng.Jitter(vj)})

	base := blueWhite(t.rng)
	life := t.rng.Range(t.cfg.MinLifetimeMs, t.cfg.MaxLifetimeMs)
	size := t.cfg.BaseSize * t.rng.Range(0.8, 1.2)
	t.particles[slot] = Particle{
		Position:  origin,
		Velocity:  vel,
		BaseColor: base,
		Color:     base,
		BaseSize:  size,
		Size:      size,
		Remaining: life,
		Lifetime:  life,
	}
	return true
}

// Step integrates every live particle by dt seconds. Friction is applied once
// per call regardless of dt.
func (t *Trail) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	black := colorful.Color{}
	j := t.cfg.VelocityJitter
	for i := range t.particles {
		p := &t.particles[i]
		if !p.Alive() {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Velocity = p.Velocity.
			Add(mgl64.Vec3{t.rng.Jitter(j), t.rng.Jitter(j), t.rng.Jitter(j)}).
			Mul(t.cfg.Friction)
		p.Remaining -= dt * 1000
		if p.Remaining <= 0 {
			p.kill()
			continue
		}
		p.Size = p.BaseSize * (1 + 2*p.LifeFraction())
		p.Color = black.BlendRgb(p.BaseColor, p.Remaining/p.Lifetime)
	}
}

// Alive counts live particles.
func (t *Trail) Alive() int {
	n := 0
	for i := range t.particles {
		if t.particles[i].Alive() {
			n++
		}
	}
	return n
}

// Reset kills every particle and rearms the emitter.
func (t *Trail) Reset() {
	for i := range t.particles {
		t.particles[i].kill()
	}
	t.emitted = false
	t.lastEmit = 0
}

// SetEmitInterval changes the minimum gap between emissions. Negative values
// mean no gap.
func (t *Trail) SetEmitInterval(ms float64) {
	t.cfg.EmitIntervalMs = math.Max(ms, 0)
}

// EmitIntervalMs is the minimum gap between emissions.
func (t *Trail) EmitIntervalMs() float64 { return t.cfg.EmitIntervalMs }

// Particles exposes the pool for drawing. Callers must not keep it across
// frames.
func (t *Trail) Particles() []Particle { return t.particles }

// Capacity is the pool size.
func (t *Trail) Capacity() int { return len(t.particles) }

// MaxLifetimeMs is the longest a particle can live.
func (t *Trail) MaxLifetimeMs() float64 { return t.cfg.MaxLifetimeMs }

func blueWhite(rng *core.RNG) colorful.Color {
	return colorful.Hsv(rng.Range(195, 225), rng.Range(0, 0.35), rng.Range(0.85, 1)).Clamped()
}
