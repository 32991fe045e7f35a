package session

import (
	"parallax-showcase/internal/mathx"
)

// Frame advances the whole scene to the clock's current time. It does nothing
// once the loop has been stopped.
func (s *Session) Frame() {
	if !s.frameScheduled {
		return
	}
	now := s.clock.NowMs()
	s.inFrame = true
	s.step(now)
	s.inFrame = false

	switch {
	case s.reinitPending:
		s.reinitPending = false
		s.teardownPending = false
		s.teardownNow()
		s.Init()
	case s.teardownPending:
		s.teardownNow()
	}
}

func (s *Session) step(now float64) {
	dt := s.frameTimer.Delta(now)
	s.lastDelta = dt

	s.timers.Fire(now)
	if !s.frameScheduled {
		return
	}

	s.cursor.Step()
	s.updater.Update(s.registry, s.cursor.Current, dt)

	s.tour.Update(now)
	if !s.frameScheduled {
		return
	}
	if !s.tour.Active() {
		pose := s.nav.Update()
		s.camera.Position = pose.Position
		s.camera.LookAt = pose.LookAt
		s.pan = pose.Pan
	}

	if s.craft.TrailVisible {
		s.trail.Emit(now, s.craft.EmissionPoints(), mathx.Front(s.craft.Orientation))
	}
	s.trail.Step(dt)
	s.animator.Apply(s.lights, now)

	s.frames++
	if s.frames == 1 {
		s.loadedTimer = s.timers.Schedule(now, s.cfg.Chrome.LoadedDelayMs, s.fireLoaded)
	}
}

func (s *Session) fireLoaded(now float64) {
	s.loadedTimer = 0
	if s.loaded {
		return
	}
	s.loaded = true
	if s.cb.OnLoaded != nil {
		s.cb.OnLoaded(true)
	}
	s.armCaption(now)
}
