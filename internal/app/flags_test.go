package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"parallax-showcase/internal/config"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	f := NewFlags()
	fs := flag.NewFlagSet("showcase", flag.ContinueOnError)
	f.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return f
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := parse(t).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	def := config.Default()
	if cfg.Seed != def.Seed || cfg.Viewport.TPS != def.Viewport.TPS {
		t.Fatalf("expected defaults, got seed %d tps %d", cfg.Seed, cfg.Viewport.TPS)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("seed: 5\nviewport:\n  tps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := parse(t, "-config", path)
	cfg, err := f.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 5 || cfg.Viewport.TPS != 30 {
		t.Fatalf("expected file values, got seed %d tps %d", cfg.Seed, cfg.Viewport.TPS)
	}

	f = parse(t, "-config", path, "-seed", "9", "-tps", "120", "-autotour", "-fullscreen")
	cfg, err = f.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 9 || cfg.Viewport.TPS != 120 {
		t.Fatalf("expected flag overrides, got seed %d tps %d", cfg.Seed, cfg.Viewport.TPS)
	}
	if !f.AutoTour || !f.Fullscreen {
		t.Fatalf("boolean flags not bound")
	}
}

func TestResolveRejectsBadValues(t *testing.T) {
	if _, err := parse(t, "-tps", "-5").Resolve(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for negative tps, got %v", err)
	}
	if _, err := parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml")).Resolve(); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
