package scene

import (
	"errors"
	"fmt"
	"sort"

	"parallax-showcase/pkg/core"
)

// ErrUnknownComposition is returned by Build for unregistered names.
var ErrUnknownComposition = errors.New("unknown composition")

// Builder assembles one composition. It either returns a complete group or an
// error; it never hands back partial state.
type Builder func(rng *core.RNG) (*Group, error)

var builders = map[string]Builder{}

// Register adds a composition builder under the provided name.
func Register(name string, b Builder) {
	if name == "" || b == nil {
		return
	}
	builders[name] = b
}

// Builders exposes the registry of available composition builders.
func Builders() map[string]Builder {
	return builders
}

// Names returns the registered composition names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build runs the named builder. A nil rng gets a fixed seed.
func Build(name string, rng *core.RNG) (*Group, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownComposition, name)
	}
	if rng == nil {
		rng = core.NewRNG(0)
	}
	g, err := b(rng)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	if g == nil {
		return nil, fmt.Errorf("build %s: builder returned no group", name)
	}
	return g, nil
}
