package ui

import (
	"parallax-showcase/internal/config"
	"parallax-showcase/internal/core"
	"parallax-showcase/internal/mathx"
	"parallax-showcase/internal/session"
)

// labelHoldMs is how long a waypoint label stays fully visible.
const labelHoldMs = 2500

// Fader ramps a full-screen black veil between two opacities.
type Fader struct {
	from, to float64
	start    float64
	duration float64
}

// Start ramps from the current opacity at now to target over durationMs.
func (f *Fader) Start(now, target, durationMs float64) {
	f.from = f.Alpha(now)
	f.to = target
	f.start = now
	f.duration = durationMs
}

// Alpha is the veil opacity at now.
func (f *Fader) Alpha(now float64) float64 {
	if f.duration <= 0 {
		return f.to
	}
	t := mathx.Clamp((now-f.start)/f.duration, 0, 1)
	return mathx.Lerp(f.from, f.to, mathx.EaseInOutCubic(t))
}

// Chrome is the page furniture around the canvas: the loading notice, the
// idle caption, waypoint labels and the fade veil. Its callbacks plug
// straight into a session.
type Chrome struct {
	clock  core.Clock
	timing config.ChromeConfig

	loaded     bool
	caption    bool
	tourActive bool
	label      string
	labelIndex int
	labelAt    float64
	fade       Fader
}

// NewChrome returns chrome driven by clock.
func NewChrome(clock core.Clock, timing config.ChromeConfig) *Chrome {
	return &Chrome{clock: clock, timing: timing, labelIndex: -1}
}

// Callbacks returns the session hooks that update c. next runs after c has
// been updated, so hosts can chain their own handling.
func (c *Chrome) Callbacks(next session.Callbacks) session.Callbacks {
	return session.Callbacks{
		OnLoaded: func(loaded bool) {
			c.loaded = loaded
			if next.OnLoaded != nil {
				next.OnLoaded(loaded)
			}
		},
		OnShowCanvasTextChange: func(show bool) {
			c.caption = show
			if next.OnShowCanvasTextChange != nil {
				next.OnShowCanvasTextChange(show)
			}
		},
		OnTourStateChange: func(active bool) {
			c.tourActive = active
			if !active {
				c.label = ""
				c.labelIndex = -1
				c.fade.Start(c.clock.NowMs(), 0, c.timing.FadeInMs)
			}
			if next.OnTourStateChange != nil {
				next.OnTourStateChange(active)
			}
		},
		OnFadeOut: func() {
			c.fade.Start(c.clock.NowMs(), 1, c.timing.FadeOutMs)
			if next.OnFadeOut != nil {
				next.OnFadeOut()
			}
		},
		OnWaypoint: func(index int, label string) {
			c.label = label
			c.labelIndex = index
			c.labelAt = c.clock.NowMs()
			if next.OnWaypoint != nil {
				next.OnWaypoint(index, label)
			}
		},
	}
}

// Reset forgets everything, for a fresh scene.
func (c *Chrome) Reset() {
	*c = Chrome{clock: c.clock, timing: c.timing, labelIndex: -1}
}

// Loaded reports whether the scene signalled it finished loading.
func (c *Chrome) Loaded() bool { return c.loaded }

// Caption reports whether the idle caption is showing.
func (c *Chrome) Caption() bool { return c.caption }

// TourActive mirrors the tour state.
func (c *Chrome) TourActive() bool { return c.tourActive }

// Label returns the current waypoint label and its opacity. The label holds
// for a while after arrival, then fades.
func (c *Chrome) Label() (string, float64) {
	if c.label == "" {
		return "", 0
	}
	age := c.clock.NowMs() - c.labelAt
	if age <= labelHoldMs {
		return c.label, 1
	}
	fade := c.timing.FadeInMs
	if fade <= 0 {
		return c.label, 0
	}
	return c.label, 1 - mathx.Clamp((age-labelHoldMs)/fade, 0, 1)
}

// Veil is the current fade opacity.
func (c *Chrome) Veil() float64 { return c.fade.Alpha(c.clock.NowMs()) }
