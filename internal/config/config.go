// Package config loads the showcase description: which compositions to
// build, the tuning of every animation subsystem and the tour route.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"parallax-showcase/internal/lighting"
	"parallax-showcase/internal/motion"
	"parallax-showcase/internal/navigation"
	"parallax-showcase/internal/particles"
	"parallax-showcase/internal/tour"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// CursorConfig tunes the damped cursor.
type CursorConfig struct {
	Damping float64 `yaml:"damping"`
}

// ViewportConfig sizes the output surface.
type ViewportConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	MaxPixelRatio float64 `yaml:"max_pixel_ratio"`
	TPS           int     `yaml:"tps"`
}

// ChromeConfig holds the timings of the callbacks that drive the page chrome.
type ChromeConfig struct {
	LoadedDelayMs float64 `yaml:"loaded_delay_ms"`
	CaptionIdleMs float64 `yaml:"caption_idle_ms"`
	FadeOutMs     float64 `yaml:"fade_out_ms"`
	FadeInMs      float64 `yaml:"fade_in_ms"`
}

// Config is the full showcase configuration.
type Config struct {
	Seed         int64             `yaml:"seed"`
	Compositions []string          `yaml:"compositions"`
	Cursor       CursorConfig      `yaml:"cursor"`
	Motion       motion.Config     `yaml:"motion"`
	Navigation   navigation.Config `yaml:"navigation"`
	Tour         tour.Config       `yaml:"tour"`
	Trail        particles.Config  `yaml:"trail"`
	Lighting     lighting.Config   `yaml:"lighting"`
	Viewport     ViewportConfig    `yaml:"viewport"`
	Chrome       ChromeConfig      `yaml:"chrome"`
}

// Default returns the stock showcase.
func Default() Config {
	return Config{
		Seed:         1,
		Compositions: []string{"starfield", "backdrop", "portal", "crystals", "galaxy", "abstract"},
		Cursor:       CursorConfig{Damping: motion.DefaultCursorDamping},
		Motion:       motion.DefaultConfig(),
		Navigation:   navigation.DefaultConfig(),
		Tour:         tour.DefaultConfig(),
		Trail:        particles.DefaultConfig(),
		Lighting:     lighting.DefaultConfig(),
		Viewport:     ViewportConfig{Width: 1280, Height: 720, MaxPixelRatio: 2, TPS: 60},
		Chrome:       ChromeConfig{LoadedDelayMs: 100, CaptionIdleMs: 2000, FadeOutMs: 1500, FadeInMs: 800},
	}
}

// Load reads and validates a YAML file. Keys absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges across every section.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Cursor.Damping > 0 && c.Cursor.Damping <= 1, "cursor.damping %g outside (0,1]", c.Cursor.Damping)
	check(c.Motion.MaxDelta > 0, "motion.max_delta must be positive")

	n := c.Navigation
	check(n.MinRadius > 0, "navigation.min_radius must be positive")
	check(n.MaxRadius >= n.MinRadius, "navigation radius range [%g,%g] is empty", n.MinRadius, n.MaxRadius)
	check(n.Damping > 0 && n.Damping <= 1, "navigation.damping %g outside (0,1]", n.Damping)

	tc := c.Tour
	check(tc.FadeAt >= 0 && tc.FadeAt <= 1, "tour.fade_at %g outside [0,1]", tc.FadeAt)
	for _, f := range []float64{tc.CameraLerp, tc.LookAtLerp, tc.RotationSlerp} {
		check(f > 0 && f <= 1, "tour smoothing factor %g outside (0,1]", f)
	}
	for i, wp := range tc.Waypoints {
		check(wp.TravelMs >= 0 && wp.PauseMs >= 0, "tour.waypoints[%d] (%s) has negative timing", i, wp.Label)
	}

	tr := c.Trail
	check(tr.Capacity > 0, "trail.capacity must be positive")
	check(tr.EmitIntervalMs >= 0, "trail.emit_interval_ms must not be negative")
	check(tr.MinLifetimeMs > 0 && tr.MaxLifetimeMs >= tr.MinLifetimeMs,
		"trail lifetime range [%g,%g] is invalid", tr.MinLifetimeMs, tr.MaxLifetimeMs)
	check(tr.Friction > 0 && tr.Friction <= 1, "trail.friction %g outside (0,1]", tr.Friction)

	v := c.Viewport
	check(v.Width > 0 && v.Height > 0, "viewport %dx%d is empty", v.Width, v.Height)
	check(v.MaxPixelRatio >= 1, "viewport.max_pixel_ratio must be at least 1")
	check(v.TPS > 0, "viewport.tps must be positive")

	ch := c.Chrome
	check(ch.LoadedDelayMs >= 0 && ch.CaptionIdleMs >= 0 && ch.FadeOutMs >= 0 && ch.FadeInMs >= 0,
		"chrome timings must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
