package session

import (
	"math"

	"parallax-showcase/internal/core"
	"parallax-showcase/internal/navigation"
)

// Windowed surfaces take this share of the window, capped at maxWindowed.
const windowedShare = 0.7

var maxWindowed = core.Size{W: 1200, H: 800}

// PointerMove feeds a pointer position in surface pixels. It drives the
// parallax cursor, any navigation drag and the caption idle timer.
func (s *Session) PointerMove(x, y float64) {
	if !s.listening {
		return
	}
	s.cursor.SetPointer(x, y, s.surface.W, s.surface.H)
	s.nav.PointerMove(x, y)
	if s.tour.Active() {
		return
	}
	s.setCaption(false)
	s.armCaption(s.clock.NowMs())
}

// PointerDown starts a navigation drag.
func (s *Session) PointerDown(b navigation.Button, x, y float64) {
	if !s.listening {
		return
	}
	s.nav.PointerDown(b, x, y)
}

// PointerUp ends a navigation drag.
func (s *Session) PointerUp(b navigation.Button) {
	if !s.listening {
		return
	}
	s.nav.PointerUp(b)
}

// Wheel zooms the free camera.
func (s *Session) Wheel(delta float64) {
	if !s.listening {
		return
	}
	s.nav.Wheel(delta)
}

// PointerLeave shows the caption again right away.
func (s *Session) PointerLeave() {
	if !s.listening {
		return
	}
	s.cancelCaption()
	if !s.tour.Active() {
		s.setCaption(true)
	}
}

// CursorShape is the pointer affordance the host should show.
func (s *Session) CursorShape() navigation.CursorShape {
	if !s.listening {
		return navigation.CursorDefault
	}
	return s.nav.CursorShape()
}

// Resize reports a new window size and device pixel ratio.
func (s *Session) Resize(v core.Viewport) {
	if !s.listening || v.W <= 0 || v.H <= 0 {
		return
	}
	if v.PixelRatio <= 0 {
		v.PixelRatio = 1
	}
	s.window = v
	s.applySurface()
}

// UpdateSize switches between the windowed and the fullscreen surface.
func (s *Session) UpdateSize(fullscreen bool) {
	s.fullscreen = fullscreen
	s.applySurface()
}

func (s *Session) applySurface() {
	s.surface = s.surfaceFor(s.fullscreen)
	if s.camera != nil {
		s.camera.Aspect = s.surface.Aspect()
	}
}

func (s *Session) surfaceFor(fullscreen bool) core.Surface {
	size := s.window.Size
	if !fullscreen {
		size = core.Size{
			W: int(math.Round(math.Min(float64(size.W)*windowedShare, float64(maxWindowed.W)))),
			H: int(math.Round(math.Min(float64(size.H)*windowedShare, float64(maxWindowed.H)))),
		}
	}
	return core.Surface{
		Size:       size,
		PixelRatio: math.Min(s.window.PixelRatio, s.cfg.Viewport.MaxPixelRatio),
		Fullscreen: fullscreen,
	}
}

func (s *Session) setCaption(show bool) {
	if s.captionShown == show {
		return
	}
	s.captionShown = show
	if s.cb.OnShowCanvasTextChange != nil {
		s.cb.OnShowCanvasTextChange(show)
	}
}

// armCaption restarts the inactivity timer that brings the caption back.
func (s *Session) armCaption(now float64) {
	s.cancelCaption()
	s.captionTimer = s.timers.Schedule(now, s.cfg.Chrome.CaptionIdleMs, func(float64) {
		s.captionTimer = 0
		if !s.tour.Active() {
			s.setCaption(true)
		}
	})
}

func (s *Session) cancelCaption() {
	if s.captionTimer != 0 {
		s.timers.Cancel(s.captionTimer)
		s.captionTimer = 0
	}
}
