package compositions

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/internal/scene"
	"parallax-showcase/pkg/core"
)

// GalaxyParams shapes the galaxy: a golden icosahedron inside a cloud of
// colored points.
type GalaxyParams struct {
	Home   mgl64.Vec3
	Points int
	Spread float64
}

// DefaultGalaxy returns the stock galaxy at z=5.
func DefaultGalaxy() GalaxyParams {
	return GalaxyParams{Home: mgl64.Vec3{0, 0, 5}, Points: 50, Spread: 20}
}

// Galaxy returns the galaxy builder. Point placement and colors come from
// rng.
func Galaxy(p GalaxyParams) scene.Builder {
	return func(rng *core.RNG) (*scene.Group, error) {
		if err := firstErr(atLeast("points", p.Points, 1), positive("spread", p.Spread)); err != nil {
			return nil, err
		}

		g := scene.NewGroup("galaxy", 0.1, p.Home)
		gold := hex("#ffff00")
		g.Add(scene.NewEntity("ico-center", mgl64.Vec3{},
			scene.Shape{Kind: scene.ShapeIcosahedron, Size: 1.5, Color: gold, Emissive: 0.4},
			scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.1, RotationSpeed: rate(0.005)}))

		half := p.Spread / 2
		points := make([]mgl64.Vec3, p.Points)
		colors := make([]colorful.Color, p.Points)
		for i := range points {
			points[i] = mgl64.Vec3{rng.Jitter(half), rng.Jitter(half), rng.Jitter(half) + 5}
			colors[i] = colorful.Hsl(rng.Range(0, 360), 1, 0.5).Clamped()
		}
		g.Add(scene.NewEntity("particles", mgl64.Vec3{},
			scene.Shape{Kind: scene.ShapeCloud, Size: 0.1, Points: points, PointColors: colors},
			scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.05}))
		return g, nil
	}
}
