package session

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/config"
	"parallax-showcase/internal/core"
	"parallax-showcase/internal/navigation"
	"parallax-showcase/internal/scene"
)

const frameMs = 1000.0 / 60

type events struct {
	loaded   int
	captions []bool
	tour     []bool
	fades    int
}

type harness struct {
	s     *Session
	clock *core.ManualClock
	ev    *events
	logs  *bytes.Buffer
	res   *fakeResources
}

type fakeResource struct {
	owner    *fakeResources
	released bool
}

func (r *fakeResource) Release() {
	if r.released {
		r.owner.doubleRelease++
	}
	r.released = true
	r.owner.releases++
	r.owner.check(r)
}

type fakeResources struct {
	all           []*fakeResource
	releases      int
	doubleRelease int
	check         func(r *fakeResource)
}

func (f *fakeResources) Acquire(*scene.Entity) scene.Resource {
	r := &fakeResource{owner: f}
	f.all = append(f.all, r)
	return r
}

func (f *fakeResources) AcquireCraft(*scene.Spacecraft) scene.Resource {
	return f.Acquire(nil)
}

func newHarness(t *testing.T, mutate func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	h := &harness{clock: &core.ManualClock{}, ev: &events{}, logs: &bytes.Buffer{}}
	h.res = &fakeResources{check: func(*fakeResource) {}}
	s, err := New(Options{
		Config:    &cfg,
		Clock:     h.clock,
		Logger:    log.New(h.logs, "", 0),
		Resources: h.res,
		Viewport:  core.Viewport{Size: core.Size{W: 1280, H: 720}, PixelRatio: 1},
		Callbacks: Callbacks{
			OnLoaded:               func(bool) { h.ev.loaded++ },
			OnShowCanvasTextChange: func(v bool) { h.ev.captions = append(h.ev.captions, v) },
			OnTourStateChange:      func(v bool) { h.ev.tour = append(h.ev.tour, v) },
			OnFadeOut:              func() { h.ev.fades++ },
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	h.s = s
	return h
}

func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(frameMs)
		h.s.Frame()
	}
}

func (h *harness) framesFor(ms float64) {
	h.frames(int(ms/frameMs) + 1)
}

func TestInitBuildsSceneAndResources(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	if got := len(h.s.Registry().Groups()); got != 6 {
		t.Fatalf("expected six composition groups, got %d", got)
	}
	if len(h.res.all) != h.s.Registry().Len()+1 {
		t.Fatalf("every entity and the craft should get a resource: %d for %d entities", len(h.res.all), h.s.Registry().Len())
	}
	if !h.s.FrameScheduled() || !h.s.Listening() {
		t.Fatal("init should start the loop and attach input")
	}
}

func TestUnknownCompositionIsSkipped(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.Compositions = []string{"portal", "nebula"} })
	h.s.Init()
	if got := len(h.s.Registry().Groups()); got != 1 {
		t.Fatalf("expected only the portal, got %d groups", got)
	}
	if !strings.Contains(h.logs.String(), "nebula") {
		t.Fatalf("skip should be logged, got %q", h.logs.String())
	}
}

func TestLoadedFiresOnceAfterFirstFrame(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.frames(1)
	if h.ev.loaded != 0 {
		t.Fatal("loaded must wait for its delay")
	}
	h.framesFor(120)
	if h.ev.loaded != 1 {
		t.Fatalf("loaded should fire once ~100 ms after the first frame, got %d", h.ev.loaded)
	}
	h.framesFor(3000)
	if h.ev.loaded != 1 {
		t.Fatal("loaded fired twice")
	}
	if len(h.ev.captions) == 0 || !h.ev.captions[len(h.ev.captions)-1] {
		t.Fatalf("caption should appear after the initial idle period, got %v", h.ev.captions)
	}
}

func TestCaptionFollowsPointerActivity(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.framesFor(2500)
	h.ev.captions = nil

	h.s.PointerMove(100, 100)
	if len(h.ev.captions) != 1 || h.ev.captions[0] {
		t.Fatalf("moving should hide the caption, got %v", h.ev.captions)
	}
	h.framesFor(1500)
	h.s.PointerMove(110, 100)
	h.framesFor(1500)
	if len(h.ev.captions) != 1 {
		t.Fatalf("caption must stay hidden while the pointer keeps moving, got %v", h.ev.captions)
	}
	h.framesFor(600)
	if len(h.ev.captions) != 2 || !h.ev.captions[1] {
		t.Fatalf("caption should return after 2 s idle, got %v", h.ev.captions)
	}

	h.s.PointerMove(120, 100)
	h.s.PointerLeave()
	if last := h.ev.captions[len(h.ev.captions)-1]; !last {
		t.Fatal("leaving the surface should show the caption at once")
	}
}

func TestPointerDrivesParallaxCursor(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	surf := h.s.Surface()
	h.s.PointerMove(float64(surf.W), float64(surf.H))
	h.frames(200)
	if p, _ := h.s.Parameters().Lookup("cursor_x"); p.Value != "1.000" {
		t.Fatalf("cursor should settle at the right edge, got %s", p.Value)
	}
}

func TestTourRunHandsCameraBack(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.frames(10)
	if !h.s.StartGuidedTour() {
		t.Fatal("tour should start")
	}
	if !h.s.IsTourActive() || len(h.ev.tour) != 1 || !h.ev.tour[0] {
		t.Fatalf("tour start should be reported, got %v", h.ev.tour)
	}

	var before mgl64.Vec3
	for i := 0; i < 60*60 && h.s.IsTourActive(); i++ {
		before = h.s.Camera().Position
		h.frames(1)
	}
	if h.s.IsTourActive() {
		t.Fatal("tour should finish within a minute")
	}
	if h.ev.fades != 1 {
		t.Fatalf("fade should fire once, got %d", h.ev.fades)
	}
	if len(h.ev.tour) != 2 || h.ev.tour[1] {
		t.Fatalf("tour end should be reported, got %v", h.ev.tour)
	}
	if h.s.Spacecraft().Visible {
		t.Fatal("craft should be hidden after the tour")
	}
	if n := h.s.Trail().Alive(); n != 0 {
		t.Fatalf("exhaust should vanish with the craft, %d particles alive", n)
	}
	if d := h.s.Camera().Position.Sub(before).Len(); d > 0.5 {
		t.Fatalf("camera snapped by %f when navigation took over", d)
	}
}

func TestTourStartRecentersPan(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.frames(1)
	h.s.PointerDown(navigation.ButtonSecondary, 400, 300)
	h.s.PointerMove(600, 200)
	h.s.PointerUp(navigation.ButtonSecondary)
	h.frames(30)
	if h.s.Pan().Len() < 0.1 {
		t.Fatalf("secondary drag should pan the scene, got %v", h.s.Pan())
	}

	h.s.StartGuidedTour()
	if h.s.Pan() != (mgl64.Vec3{}) {
		t.Fatalf("tour should start with the scene at the origin, pan %v", h.s.Pan())
	}
	h.frames(30)
	h.s.StopGuidedTour()
	h.frames(30)
	if h.s.Pan() != (mgl64.Vec3{}) {
		t.Fatalf("pan from before the tour came back as %v", h.s.Pan())
	}
}

func TestInputDuringTourIsDiscarded(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.frames(1)
	h.s.StartGuidedTour()
	h.s.Wheel(1e6)
	h.s.StopGuidedTour()
	if h.s.IsTourActive() {
		t.Fatal("stop should end the tour")
	}
	if p, _ := h.s.Parameters().Lookup("radius"); p.Value == "60.000" {
		t.Fatal("wheel input captured during the tour should not apply afterwards")
	}
}

func TestTeardownReleasesAfterRemoval(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.res.check = func(*fakeResource) {
		if h.s.Registry().Len() != 0 || h.s.FrameScheduled() || h.s.Listening() {
			t.Fatal("a resource was released while the scene could still reach it")
		}
	}
	h.frames(5)
	h.s.StartGuidedTour()
	h.frames(5)
	h.s.Teardown()

	if h.res.releases != len(h.res.all) || h.res.doubleRelease != 0 {
		t.Fatalf("released %d of %d resources, %d twice", h.res.releases, len(h.res.all), h.res.doubleRelease)
	}
	if h.s.PendingTimers() != 0 || h.s.FrameScheduled() {
		t.Fatal("teardown must leave no timers and no scheduled frame")
	}
	if len(h.ev.tour) != 1 {
		t.Fatalf("teardown must not report tour completion, got %v", h.ev.tour)
	}

	h.s.PointerMove(1, 1)
	h.s.Wheel(10)
	h.frames(3)
	h.s.Teardown()
	if h.res.releases != len(h.res.all) {
		t.Fatal("second teardown released again")
	}
}

func TestTeardownDuringFrameIsDeferred(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Tour.Waypoints = c.Tour.Waypoints[4:]
	})
	h.s.cb.OnFadeOut = func() {
		if h.s.Registry().Len() == 0 {
			t.Fatal("scene disposed before the frame finished")
		}
		h.s.Teardown()
		if h.s.Registry().Len() == 0 {
			t.Fatal("teardown inside a frame must wait for the frame to end")
		}
	}
	h.s.Init()
	h.frames(1)
	h.s.StartGuidedTour()
	h.framesFor(4000)

	if h.s.FrameScheduled() || h.s.PendingTimers() != 0 {
		t.Fatal("loop should be stopped with no timers left")
	}
	if h.s.Registry().Len() != 0 || h.res.releases != len(h.res.all) {
		t.Fatalf("deferred teardown should dispose everything, %d of %d released", h.res.releases, len(h.res.all))
	}
}

func TestReinitializeReplacesStaleScene(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	first := h.s.Registry().Len()
	firstRes := len(h.res.all)
	h.s.Init()
	if h.s.Registry().Len() != first {
		t.Fatalf("re-init should rebuild the same scene, got %d entities instead of %d", h.s.Registry().Len(), first)
	}
	if h.res.releases != firstRes {
		t.Fatalf("stale resources should be released, %d of %d", h.res.releases, firstRes)
	}
	if !strings.Contains(h.logs.String(), "stale scene") {
		t.Fatal("stale scene should be logged")
	}
	h.s.Reinitialize()
	if !h.s.FrameScheduled() || h.s.Registry().Len() != first {
		t.Fatal("reinitialize should leave a running scene")
	}
}

func TestSurfaceSizing(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	if got := h.s.Surface().Size; got != (core.Size{W: 896, H: 504}) {
		t.Fatalf("windowed surface should be 70%% of the window, got %v", got)
	}
	h.s.Resize(core.Viewport{Size: core.Size{W: 1001, H: 601}, PixelRatio: 1})
	if got := h.s.Surface().Size; got != (core.Size{W: 701, H: 421}) {
		t.Fatalf("windowed surface should round to the nearest pixel, got %v", got)
	}
	h.s.Resize(core.Viewport{Size: core.Size{W: 2560, H: 1440}, PixelRatio: 3})
	if got := h.s.Surface(); got.W != 1200 || got.H != 800 || got.PixelRatio != 2 {
		t.Fatalf("windowed surface should cap at 1200x800 with ratio 2, got %+v", got)
	}
	h.s.UpdateSize(true)
	if got := h.s.Surface(); got.W != 2560 || got.H != 1440 || !got.Fullscreen {
		t.Fatalf("fullscreen should use the whole window, got %+v", got)
	}
	if a := h.s.Camera().Aspect; a != 2560.0/1440.0 {
		t.Fatalf("camera aspect should follow the surface, got %f", a)
	}
}

func TestNavigationDragMovesCamera(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.frames(1)
	start := h.s.Camera().Position
	h.s.PointerDown(navigation.ButtonPrimary, 100, 100)
	h.s.PointerMove(300, 100)
	if h.s.CursorShape() != navigation.CursorGrabbing {
		t.Fatal("rotate drag should show the grabbing cursor")
	}
	h.frames(60)
	h.s.PointerUp(navigation.ButtonPrimary)
	if h.s.Camera().Position.Sub(start).Len() < 1 {
		t.Fatal("dragging should orbit the camera")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Trail.Capacity = 0
	if _, err := New(Options{Config: &cfg}); err == nil {
		t.Fatal("invalid config should be rejected")
	}
}

func TestTuningAppliesLiveAndSurvivesReinit(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	h.frames(1)

	if len(h.s.ParameterControls()) == 0 {
		t.Fatal("session should expose adjustable controls")
	}
	if !h.s.SetFloatParameter("pan_speed", 0.01) {
		t.Fatal("pan speed inside its bounds should be accepted")
	}
	h.s.PointerDown(navigation.ButtonSecondary, 0, 0)
	h.s.PointerMove(100, 0)
	h.s.PointerUp(navigation.ButtonSecondary)
	if got := h.s.nav.PanTarget()[0]; got < 0.99 || got > 1.01 {
		t.Fatalf("pan should use the new speed, target x %f", got)
	}

	if !h.s.SetFloatParameter("cursor_damping", 0.2) || h.s.cursor.Damping != 0.2 {
		t.Fatal("cursor damping should apply to the live cursor")
	}
	if !h.s.SetIntParameter("emit_interval_ms", 120) || h.s.trail.EmitIntervalMs() != 120 {
		t.Fatal("emit interval should apply to the live trail")
	}
	if p, _ := h.s.Parameters().Lookup("emit_interval_ms"); p.Value != "120" {
		t.Fatalf("snapshot should report the new interval, got %q", p.Value)
	}

	h.s.Reinitialize()
	if h.s.cursor.Damping != 0.2 || h.s.nav.Config().PanSpeed != 0.01 || h.s.trail.EmitIntervalMs() != 120 {
		t.Fatal("tuning should carry over to the rebuilt scene")
	}
}

func TestTuningRejectsBadInput(t *testing.T) {
	h := newHarness(t, nil)
	h.s.Init()
	if h.s.SetFloatParameter("pan_speed", 5) {
		t.Fatal("values above the maximum must be refused")
	}
	if h.s.SetFloatParameter("emit_interval_ms", 50) {
		t.Fatal("an int control must not accept a float")
	}
	if h.s.SetIntParameter("warp", 1) {
		t.Fatal("unknown keys must be refused")
	}
	if h.s.Config().Navigation.PanSpeed != navigation.DefaultConfig().PanSpeed {
		t.Fatal("refused values must leave the config alone")
	}
}
