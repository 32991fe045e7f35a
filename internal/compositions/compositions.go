// Package compositions builds the decorative scene pieces. Each composition
// registers a scene.Builder under its name at init.
package compositions

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/internal/scene"
)

// Default is the build order of a full scene.
var Default = []string{"starfield", "backdrop", "portal", "crystals", "galaxy", "abstract"}

// rate converts a per-frame increment tuned at 60 fps into a per-second rate.
func rate(perFrame float64) float64 { return perFrame * 60 }

// hex parses a color literal. Builders only pass constants, so a malformed
// one is a programming error.
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("compositions: bad color %q: %v", s, err))
	}
	return c
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %g", name, v)
	}
	return nil
}

func atLeast(name string, v, lo int) error {
	if v < lo {
		return fmt.Errorf("%s must be at least %d, got %d", name, lo, v)
	}
	return nil
}

func errRange(name string, lo, hi float64) error {
	return fmt.Errorf("%s range [%g, %g] is empty", name, lo, hi)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	scene.Register("portal", Portal(DefaultPortal()))
	scene.Register("crystals", Crystals(DefaultCrystals()))
	scene.Register("galaxy", Galaxy(DefaultGalaxy()))
	scene.Register("abstract", Abstract(DefaultAbstract()))
	scene.Register("backdrop", Backdrop(DefaultBackdrop()))
	scene.Register("starfield", Starfield(DefaultStarfield()))
}
