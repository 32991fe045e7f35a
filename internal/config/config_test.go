package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestShippedFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "showcase.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("configs/showcase.yaml drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
seed: 42
navigation:
  max_radius: 30
tour:
  waypoints:
    - label: Only
      position: [1, 2, 3]
      look_at: [0, 0, 0]
      travel_ms: 1000
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 || cfg.Navigation.MaxRadius != 30 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Navigation.MinRadius != 2 || cfg.Tour.CameraLerp != 0.12 {
		t.Fatal("untouched keys should keep their defaults")
	}
	if len(cfg.Tour.Waypoints) != 1 || cfg.Tour.Waypoints[0].Position != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("waypoint list should be replaced, got %+v", cfg.Tour.Waypoints)
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	cases := []string{
		"cursor: {damping: 0}",
		"navigation: {min_radius: 10, max_radius: 5}",
		"tour: {fade_at: 1.5}",
		"trail: {capacity: 0}",
		"trail: {min_lifetime_ms: 3000, max_lifetime_ms: 2000}",
		"viewport: {width: 0}",
		"tour: {waypoints: [{label: bad, travel_ms: -1}]}",
	}
	for _, src := range cases {
		_, err := Parse([]byte(src))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: expected ErrInvalid, got %v", src, err)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("seed: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("parse error should name the file, got %v", err)
	}
}
