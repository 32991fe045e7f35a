package app

import (
	"flag"
	"fmt"

	"parallax-showcase/internal/config"
)

// Flags are the command-line parameters of the showcase binaries.
type Flags struct {
	ConfigPath string
	Seed       int64
	TPS        int
	Fullscreen bool
	AutoTour   bool
	HUDWidth   int
}

// NewFlags returns flags populated with sensible defaults. A zero Seed or TPS
// keeps the value from the config file.
func NewFlags() *Flags {
	return &Flags{HUDWidth: 260}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML scene configuration (defaults built in)")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for scene randomness, overrides the config")
	fs.IntVar(&f.TPS, "tps", f.TPS, "frames per second, overrides the config")
	fs.BoolVar(&f.Fullscreen, "fullscreen", f.Fullscreen, "start in fullscreen")
	fs.BoolVar(&f.AutoTour, "autotour", f.AutoTour, "start the guided tour once the scene has loaded")
	fs.IntVar(&f.HUDWidth, "hud-width", f.HUDWidth, "width of the parameter panel in pixels")
}

// Resolve loads the config file, if any, and applies flag overrides.
func (f *Flags) Resolve() (config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		loaded, err := config.Load(f.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if f.TPS != 0 {
		cfg.Viewport.TPS = f.TPS
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("app: %w", err)
	}
	return cfg, nil
}
