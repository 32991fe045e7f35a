// Package session is the composition root of the showcase. A Session owns
// every piece of per-scene state and advances all of it once per Frame call;
// input handlers only write targets that the next frame consumes.
package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	// Registers the composition builders.
	_ "parallax-showcase/internal/compositions"
	"parallax-showcase/internal/config"
	"parallax-showcase/internal/core"
	"parallax-showcase/internal/lighting"
	"parallax-showcase/internal/motion"
	"parallax-showcase/internal/navigation"
	"parallax-showcase/internal/particles"
	"parallax-showcase/internal/scene"
	"parallax-showcase/internal/tour"
	pkgcore "parallax-showcase/pkg/core"
)

// Callbacks notify the page chrome. Any of them may be nil.
type Callbacks struct {
	OnLoaded               func(loaded bool)
	OnShowCanvasTextChange func(show bool)
	OnTourStateChange      func(active bool)
	OnFadeOut              func()
	OnWaypoint             func(index int, label string)
}

// Resources allocates renderer-side resources while the scene is built.
// The session releases them on teardown.
type Resources interface {
	Acquire(e *scene.Entity) scene.Resource
	AcquireCraft(c *scene.Spacecraft) scene.Resource
}

// Options configure a session. Nil fields fall back to defaults.
type Options struct {
	Config    *config.Config
	Clock     core.Clock
	Logger    *log.Logger
	Callbacks Callbacks
	Resources Resources
	Viewport  core.Viewport
}

// Session is one live showcase scene.
type Session struct {
	cfg       config.Config
	clock     core.Clock
	log       *log.Logger
	cb        Callbacks
	resources Resources

	timers     *core.Timers
	frameTimer *core.FrameTimer

	registry *scene.Registry
	camera   *scene.Camera
	craft    *scene.Spacecraft
	lights   *lighting.Rig
	animator *lighting.Animator
	cursor   *motion.Cursor
	updater  *motion.Updater
	nav      *navigation.Controller
	tour     *tour.Tour
	trail    *particles.Trail
	pan      mgl64.Vec3

	window     core.Viewport
	surface    core.Surface
	fullscreen bool

	initialized     bool
	frameScheduled  bool
	listening       bool
	inFrame         bool
	teardownPending bool
	reinitPending   bool

	loaded       bool
	loadedTimer  core.TimerID
	captionTimer core.TimerID
	captionShown bool
	built        []string
	frames       uint64
	lastDelta    float64
}

// New validates the options and returns an uninitialized session.
func New(opts Options) (*Session, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = core.NewWallClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	window := opts.Viewport
	if window.W <= 0 || window.H <= 0 {
		window.Size = core.Size{W: cfg.Viewport.Width, H: cfg.Viewport.Height}
	}
	if window.PixelRatio <= 0 {
		window.PixelRatio = 1
	}

	s := &Session{
		cfg:       cfg,
		clock:     opts.Clock,
		log:       opts.Logger,
		cb:        opts.Callbacks,
		resources: opts.Resources,
		timers:    core.NewTimers(),
		window:    window,
		registry:  scene.NewRegistry(),
	}
	s.surface = s.surfaceFor(false)
	return s, nil
}

// Init builds the scene and starts the frame loop. A scene left over from an
// earlier Init is torn down first.
func (s *Session) Init() {
	if s.inFrame {
		s.stopLoop()
		s.reinitPending = true
		return
	}
	if s.initialized || s.registry.Len() > 0 {
		s.log.Printf("[session] stale scene found, tearing it down before init")
		s.teardownNow()
	}

	cfg := s.cfg
	s.frameTimer = core.NewFrameTimer(cfg.Motion.MaxDelta)
	s.camera = scene.NewCamera(mgl64.Vec3{0, 0, cfg.Navigation.InitialRadius})
	s.camera.Aspect = s.surface.Aspect()
	s.craft = scene.NewSpacecraft(cfg.Tour.StartPosition)
	s.lights = lighting.DefaultRig(cfg.Lighting)
	s.animator = lighting.NewAnimator(cfg.Lighting)
	s.cursor = motion.NewCursor(cfg.Cursor.Damping)
	s.updater = motion.NewUpdater(cfg.Motion)
	s.nav = navigation.New(cfg.Navigation)
	s.trail = particles.New(cfg.Trail, pkgcore.NewRNG(cfg.Seed+1))
	s.pan = mgl64.Vec3{}

	s.tour = tour.New(cfg.Tour, s.craft, s.camera, s.timers, s.log)
	s.tour.SetHooks(tour.Hooks{
		OnFadeOut:  s.tourFadeOut,
		OnComplete: s.tourEnded,
		OnArrive:   s.tourArrived,
	})

	s.built = s.built[:0]
	rng := pkgcore.NewRNG(cfg.Seed)
	for _, name := range cfg.Compositions {
		g, err := scene.Build(name, rng)
		if err != nil {
			// A missing composition is simply absent from the scene.
			s.log.Printf("[session] skipping composition: %v", err)
			continue
		}
		if s.resources != nil {
			for _, e := range g.Members {
				e.Resource = s.resources.Acquire(e)
			}
		}
		s.registry.AddGroup(g)
		s.built = append(s.built, name)
	}
	if s.resources != nil {
		s.craft.Resource = s.resources.AcquireCraft(s.craft)
	}

	s.loaded = false
	s.loadedTimer = 0
	s.captionTimer = 0
	s.captionShown = false
	s.frames = 0
	s.initialized = true
	s.listening = true
	s.frameScheduled = true
	s.log.Printf("[session] scene ready: %d groups, %d entities", len(s.registry.Groups()), s.registry.Len())
}

// Reinitialize tears the scene down and builds it again. Called from inside
// a frame, both steps run once that frame returns.
func (s *Session) Reinitialize() {
	if s.inFrame {
		s.stopLoop()
		s.reinitPending = true
		return
	}
	s.Teardown()
	s.Init()
}

// ErrTornDown reports use of a session after Teardown.
var ErrTornDown = errors.New("session torn down")

// Teardown stops the frame loop, cancels every pending timer, detaches input
// and releases renderer resources after the entities left the registry.
// Called from inside a frame, the disposal waits until that frame returns.
func (s *Session) Teardown() {
	if !s.initialized {
		return
	}
	if s.inFrame {
		s.stopLoop()
		s.teardownPending = true
		return
	}
	s.teardownNow()
}

// stopLoop cancels the next frame, detaches listeners and drops timers.
func (s *Session) stopLoop() {
	s.frameScheduled = false
	s.listening = false
	s.timers.CancelAll()
	s.loadedTimer = 0
	s.captionTimer = 0
	if s.tour != nil {
		s.tour.Halt()
	}
}

func (s *Session) teardownNow() {
	s.stopLoop()
	s.teardownPending = false

	removed := s.registry.Clear()
	released := scene.ReleaseAll(removed)
	if s.craft != nil && s.craft.Resource != nil {
		s.craft.Resource.Release()
		s.craft.Resource = nil
		released++
	}
	if s.trail != nil {
		s.trail.Reset()
	}
	s.initialized = false
	s.log.Printf("[session] teardown complete: %d entities removed, %d resources released", len(removed), released)
}

// Check reports whether the session can take commands.
func (s *Session) Check() error {
	if !s.initialized || s.teardownPending {
		return ErrTornDown
	}
	return nil
}

// Registry exposes the entity registry for drawing.
func (s *Session) Registry() *scene.Registry { return s.registry }

// Camera exposes the scene camera.
func (s *Session) Camera() *scene.Camera { return s.camera }

// Spacecraft exposes the tour actor.
func (s *Session) Spacecraft() *scene.Spacecraft { return s.craft }

// Lights exposes the light rig.
func (s *Session) Lights() *lighting.Rig { return s.lights }

// Lighting exposes the light animator for shading.
func (s *Session) Lighting() *lighting.Animator { return s.animator }

// Trail exposes the exhaust particles.
func (s *Session) Trail() *particles.Trail { return s.trail }

// Tour exposes the tour state machine.
func (s *Session) Tour() *tour.Tour { return s.tour }

// Pan is the scene-root translation from free navigation.
func (s *Session) Pan() mgl64.Vec3 { return s.pan }

// Surface is the current output surface.
func (s *Session) Surface() core.Surface { return s.surface }

// FrameScheduled reports whether the frame loop is running.
func (s *Session) FrameScheduled() bool { return s.frameScheduled }

// Listening reports whether input handlers are attached.
func (s *Session) Listening() bool { return s.listening }

// PendingTimers reports queued deferred callbacks.
func (s *Session) PendingTimers() int { return s.timers.Pending() }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.Config { return s.cfg }
