package tour

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/core"
	"parallax-showcase/internal/mathx"
	"parallax-showcase/internal/scene"
)

const frameMs = 1000.0 / 60

type recorder struct {
	fades     int
	fadeAt    []float64
	completes int
	arrivals  []int
}

func newTour(t *testing.T) (*Tour, *scene.Spacecraft, *scene.Camera, *core.Timers, *recorder) {
	t.Helper()
	craft := scene.NewSpacecraft(mgl64.Vec3{})
	craft.Visible = false
	cam := scene.NewCamera(mgl64.Vec3{0, 0, 8})
	timers := core.NewTimers()
	tr := New(DefaultConfig(), craft, cam, timers, log.New(&bytes.Buffer{}, "", 0))
	rec := &recorder{}
	tr.SetHooks(Hooks{
		OnFadeOut: func() {
			rec.fades++
			rec.fadeAt = append(rec.fadeAt, float64(tr.Index())+tr.Progress())
		},
		OnComplete: func() { rec.completes++ },
		OnArrive:   func(i int, _ Waypoint) { rec.arrivals = append(rec.arrivals, i) },
	})
	return tr, craft, cam, timers, rec
}

// run steps the tour at 60 fps until it goes idle or limitMs elapses and
// returns the time it went idle.
func run(t *testing.T, tr *Tour, timers *core.Timers, start, limitMs float64, each func(now float64)) float64 {
	t.Helper()
	for now := start; now <= start+limitMs; now += frameMs {
		timers.Fire(now)
		tr.Update(now)
		if each != nil {
			each(now)
		}
		if !tr.Active() {
			return now
		}
	}
	t.Fatalf("tour still %s after %.0f ms", tr.Status(), limitMs)
	return 0
}

func TestTourCompletesAndHidesActor(t *testing.T) {
	tr, craft, _, timers, rec := newTour(t)
	if !tr.Start(0) {
		t.Fatal("tour should start")
	}
	if !craft.Visible || !craft.TrailVisible {
		t.Fatal("starting the tour should show the craft and its trail")
	}
	if craft.Position != (mgl64.Vec3{0, 0, -20}) {
		t.Fatalf("craft should start off-scene, got %v", craft.Position)
	}

	end := run(t, tr, timers, 0, 60000, nil)
	total := TotalMs(tr.Waypoints())
	if end < total || end > total+5*frameMs {
		t.Fatalf("tour ended at %.0f ms, expected just after %.0f ms", end, total)
	}
	if tr.Status() != Idle || craft.Visible || craft.TrailVisible {
		t.Fatalf("tour should end idle with the craft hidden, status %s visible %v", tr.Status(), craft.Visible)
	}
	if rec.completes != 1 {
		t.Fatalf("expected exactly one completion, got %d", rec.completes)
	}
	if timers.Pending() != 0 {
		t.Fatalf("no timers should remain, got %d", timers.Pending())
	}
}

func TestTourIndexIsMonotonic(t *testing.T) {
	tr, _, _, timers, rec := newTour(t)
	tr.Start(0)
	last, increases := 0, 0
	run(t, tr, timers, 0, 60000, func(float64) {
		if !tr.Active() {
			return
		}
		if tr.Index() < last {
			t.Fatalf("index went back from %d to %d", last, tr.Index())
		}
		if tr.Index() > last {
			increases++
			last = tr.Index()
		}
	})
	if want := len(tr.Waypoints()) - 1; increases != want {
		t.Fatalf("expected %d index increases, got %d", want, increases)
	}
	if len(rec.arrivals) != len(tr.Waypoints()) {
		t.Fatalf("expected an arrival per waypoint, got %v", rec.arrivals)
	}
}

func TestFadeFiresOnceOnLastLeg(t *testing.T) {
	tr, _, _, timers, rec := newTour(t)
	tr.Start(0)
	run(t, tr, timers, 0, 60000, nil)
	if rec.fades != 1 {
		t.Fatalf("fade should fire exactly once, got %d", rec.fades)
	}
	last := float64(len(tr.Waypoints()) - 1)
	if rec.fadeAt[0] < last+0.7 || rec.fadeAt[0] >= last+1 {
		t.Fatalf("fade fired at leg+progress %.3f, want within the last leg at >= 70%%", rec.fadeAt[0])
	}

	// A second run fires again.
	tr.Start(100000)
	run(t, tr, timers, 100000, 60000, nil)
	if rec.fades != 2 || rec.completes != 2 {
		t.Fatalf("second run: fades %d completes %d", rec.fades, rec.completes)
	}
}

func TestStartRefusedWithoutActor(t *testing.T) {
	var buf bytes.Buffer
	tr := New(DefaultConfig(), nil, scene.NewCamera(mgl64.Vec3{0, 0, 8}), nil, log.New(&buf, "", 0))
	if tr.Start(0) {
		t.Fatal("tour must not start without a spacecraft")
	}
	if tr.Status() != Idle {
		t.Fatalf("tour should stay idle, got %s", tr.Status())
	}
	if !strings.Contains(buf.String(), "[tour]") {
		t.Fatalf("expected a tagged warning, got %q", buf.String())
	}

	cfg := DefaultConfig()
	cfg.Waypoints = nil
	empty := New(cfg, scene.NewSpacecraft(mgl64.Vec3{}), scene.NewCamera(mgl64.Vec3{}), nil, log.New(&buf, "", 0))
	if empty.Start(0) {
		t.Fatal("tour must not start without waypoints")
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	tr, _, _, _, _ := newTour(t)
	if !tr.Start(0) {
		t.Fatal("first start should succeed")
	}
	if tr.Start(10) {
		t.Fatal("start while traveling must be refused")
	}
}

func TestInterruptAndHalt(t *testing.T) {
	tr, craft, _, timers, rec := newTour(t)
	tr.Start(0)
	for now := 0.0; now < 6100; now += frameMs {
		timers.Fire(now)
		tr.Update(now)
	}
	if tr.Status() != Paused {
		t.Fatalf("expected to be paused at the first stop, got %s", tr.Status())
	}
	tr.Interrupt()
	if tr.Status() != Idle || craft.Visible || rec.completes != 1 {
		t.Fatalf("interrupt: status %s visible %v completes %d", tr.Status(), craft.Visible, rec.completes)
	}
	if timers.Pending() != 0 {
		t.Fatal("interrupt should cancel the pause timer")
	}

	tr.Start(10000)
	tr.Halt()
	if tr.Status() != Idle || rec.completes != 1 {
		t.Fatal("halt must stop the tour without reporting completion")
	}
	tr.Interrupt()
	if rec.completes != 1 {
		t.Fatal("interrupting an idle tour is a no-op")
	}
}

func TestCraftFacesAwayFromTravel(t *testing.T) {
	tr, craft, cam, timers, _ := newTour(t)
	tr.Start(0)
	for now := 0.0; now < 3000; now += frameMs {
		timers.Fire(now)
		tr.Update(now)
	}
	toward := tr.Waypoints()[0].Position.Sub(craft.Position).Normalize()
	if front := mathx.Front(craft.Orientation); front.Dot(toward) > -0.9 {
		t.Fatalf("craft should face away from its heading, front %v heading %v", front, toward)
	}
	// Position lags the chase point, gaze tracks the craft.
	chase := craft.Position.Add(DefaultConfig().CameraOffset)
	if cam.Position.Sub(chase).Len() > 2 || cam.LookAt.Sub(craft.Position).Len() > 2 {
		t.Fatalf("camera should trail the craft, camera %v look %v craft %v", cam.Position, cam.LookAt, craft.Position)
	}
}

func TestPrivateTimersDrivePauses(t *testing.T) {
	craft := scene.NewSpacecraft(mgl64.Vec3{})
	cam := scene.NewCamera(mgl64.Vec3{0, 0, 8})
	cfg := DefaultConfig()
	cfg.Waypoints = cfg.Waypoints[:2]
	tr := New(cfg, craft, cam, nil, log.New(&bytes.Buffer{}, "", 0))
	tr.Start(0)
	for now := 0.0; now < 20000 && tr.Active(); now += frameMs {
		tr.Update(now)
	}
	if tr.Active() {
		t.Fatal("tour with its own timers should complete")
	}
}
