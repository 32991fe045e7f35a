// Package tour drives the spacecraft and the camera through an ordered list
// of waypoints: eased travel, a pause at every stop, a fade request near the
// end of the last leg.
package tour

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/core"
	"parallax-showcase/internal/mathx"
	"parallax-showcase/internal/scene"
)

// Status is the state of the tour machine.
type Status int

const (
	Idle Status = iota
	Traveling
	Paused
)

func (s Status) String() string {
	switch s {
	case Traveling:
		return "traveling"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Config tunes the tour camera and actor.
type Config struct {
	StartPosition mgl64.Vec3 `yaml:"start_position"`
	CameraOffset  mgl64.Vec3 `yaml:"camera_offset"`
	CameraLerp    float64    `yaml:"camera_lerp"`
	LookAtLerp    float64    `yaml:"look_at_lerp"`
	RotationSlerp float64    `yaml:"rotation_slerp"`
	PauseBoost    float64    `yaml:"pause_boost"`
	FadeAt        float64    `yaml:"fade_at"`
	Waypoints     []Waypoint `yaml:"waypoints"`
}

// DefaultConfig returns the stock tour.
func DefaultConfig() Config {
	return Config{
		StartPosition: mgl64.Vec3{0, 0, -20},
		CameraOffset:  mgl64.Vec3{0, 2, -5},
		CameraLerp:    0.12,
		LookAtLerp:    0.15,
		RotationSlerp: 0.08,
		PauseBoost:    1.5,
		FadeAt:        0.7,
		Waypoints:     DefaultWaypoints(),
	}
}

// Hooks are the collaborator callbacks. Any of them may be nil.
type Hooks struct {
	OnFadeOut  func()
	OnComplete func()
	OnArrive   func(index int, wp Waypoint)
}

// Pose is a position plus the point it faces.
type Pose struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// Tour is the waypoint state machine.
type Tour struct {
	cfg    Config
	craft  *scene.Spacecraft
	camera *scene.Camera
	timers *core.Timers
	owned  bool
	hooks  Hooks
	log    *log.Logger

	status        Status
	index         int
	segmentStart  float64
	startPose     Pose
	progress      float64
	fadeTriggered bool
	pauseTimer    core.TimerID
	lookAt        mgl64.Vec3
}

// New builds a tour over cfg.Waypoints. craft and camera may be nil; Start
// then refuses to run. When timers is nil the tour keeps a private queue and
// fires it from Update.
func New(cfg Config, craft *scene.Spacecraft, camera *scene.Camera, timers *core.Timers, logger *log.Logger) *Tour {
	if logger == nil {
		logger = log.Default()
	}
	t := &Tour{cfg: cfg, craft: craft, camera: camera, timers: timers, log: logger}
	if t.timers == nil {
		t.timers = core.NewTimers()
		t.owned = true
	}
	return t
}

// SetHooks replaces the collaborator callbacks.
func (t *Tour) SetHooks(h Hooks) { t.hooks = h }

// Status reports the machine state.
func (t *Tour) Status() Status { return t.status }

// Active reports whether the tour currently owns the camera.
func (t *Tour) Active() bool { return t.status != Idle }

// Index is the waypoint currently traveled to or paused at.
func (t *Tour) Index() int { return t.index }

// Progress is the linear progress of the current travel leg in [0,1].
func (t *Tour) Progress() float64 { return t.progress }

// Waypoints returns the route.
func (t *Tour) Waypoints() []Waypoint { return t.cfg.Waypoints }

// Current returns the active waypoint while the tour runs.
func (t *Tour) Current() (Waypoint, bool) {
	if t.status == Idle || t.index >= len(t.cfg.Waypoints) {
		return Waypoint{}, false
	}
	return t.cfg.Waypoints[t.index], true
}

// Start launches the tour from the fixed off-scene start position. It only
// works from Idle and reports whether the tour started.
func (t *Tour) Start(now float64) bool {
	if t.status != Idle {
		return false
	}
	if t.craft == nil || t.camera == nil {
		t.log.Printf("[tour] spacecraft or camera not available, tour cannot start")
		return false
	}
	if len(t.cfg.Waypoints) == 0 {
		t.log.Printf("[tour] no waypoints configured, tour cannot start")
		return false
	}

	t.index = 0
	t.fadeTriggered = false
	t.craft.Position = t.cfg.StartPosition
	t.craft.Visible = true
	t.craft.TrailVisible = true
	t.log.Printf("[tour] starting guided tour over %d waypoints", len(t.cfg.Waypoints))
	t.beginLeg(now)
	return true
}

// Update advances the machine to now. It is a no-op while Idle.
func (t *Tour) Update(now float64) {
	if t.owned {
		t.timers.Fire(now)
	}
	switch t.status {
	case Traveling:
		t.travel(now)
	case Paused:
		t.settle(t.cfg.Waypoints[t.index])
	}
}

// Interrupt forces the tour back to Idle and reports completion.
func (t *Tour) Interrupt() {
	if t.status == Idle {
		return
	}
	t.stop(true)
}

// Halt forces the tour back to Idle without invoking any hook.
func (t *Tour) Halt() {
	if t.status == Idle {
		return
	}
	t.stop(false)
}

func (t *Tour) beginLeg(now float64) {
	t.startPose = Pose{Position: t.craft.Position, LookAt: t.camera.LookAt}
	t.lookAt = t.camera.LookAt
	t.segmentStart = now
	t.progress = 0
	t.status = Traveling
}

func (t *Tour) travel(now float64) {
	wp := t.cfg.Waypoints[t.index]
	progress := 1.0
	if wp.TravelMs > 0 {
		progress = mathx.Clamp((now-t.segmentStart)/wp.TravelMs, 0, 1)
	}
	t.progress = progress

	if t.index == len(t.cfg.Waypoints)-1 && progress >= t.cfg.FadeAt && !t.fadeTriggered {
		t.fadeTriggered = true
		if t.hooks.OnFadeOut != nil {
			t.hooks.OnFadeOut()
		}
		if t.status != Traveling {
			return
		}
	}

	if progress >= 1 {
		t.arrive(now, wp)
		return
	}

	pos := mathx.LerpVec3(t.startPose.Position, wp.Position, mathx.EaseInOutCubic(progress))
	if dir := wp.Position.Sub(pos); dir.Len() > 0.01 {
		// The craft flies tail-first: it faces away from where it is going.
		want := mathx.LookRotation(dir.Mul(-1), mathx.WorldUp)
		t.craft.Orientation = mgl64.QuatSlerp(t.craft.Orientation, want, t.cfg.RotationSlerp).Normalize()
	}
	t.craft.Position = pos
	t.craft.Visible = true

	t.camera.Position = mathx.LerpVec3(t.camera.Position, pos.Add(t.cfg.CameraOffset), t.cfg.CameraLerp)
	t.lookAt = mathx.LerpVec3(t.lookAt, pos, t.cfg.LookAtLerp)
	t.camera.LookAt = t.lookAt
}

func (t *Tour) arrive(now float64, wp Waypoint) {
	t.status = Paused
	t.craft.Position = wp.Position
	if t.hooks.OnArrive != nil {
		t.hooks.OnArrive(t.index, wp)
		if t.status != Paused {
			return
		}
	}
	t.pauseTimer = t.timers.Schedule(now, wp.PauseMs, t.advance)
	t.settle(wp)
}

// settle keeps easing the camera into the stop while paused.
func (t *Tour) settle(wp Waypoint) {
	boost := t.cfg.PauseBoost
	t.craft.Position = wp.Position
	t.camera.Position = mathx.LerpVec3(t.camera.Position, wp.Position.Add(t.cfg.CameraOffset), t.cfg.CameraLerp*boost)
	t.lookAt = mathx.LerpVec3(t.lookAt, wp.LookAt, t.cfg.LookAtLerp*boost)
	t.camera.LookAt = t.lookAt
}

func (t *Tour) advance(now float64) {
	t.pauseTimer = 0
	if t.status != Paused {
		return
	}
	if t.index >= len(t.cfg.Waypoints)-1 {
		t.log.Printf("[tour] guided tour completed")
		t.stop(true)
		return
	}
	t.index++
	t.beginLeg(now)
}

func (t *Tour) stop(notify bool) {
	if t.pauseTimer != 0 {
		t.timers.Cancel(t.pauseTimer)
		t.pauseTimer = 0
	}
	t.status = Idle
	t.progress = 0
	t.fadeTriggered = false
	if t.craft != nil {
		t.craft.Visible = false
		t.craft.TrailVisible = false
	}
	if notify && t.hooks.OnComplete != nil {
		t.hooks.OnComplete()
	}
}
