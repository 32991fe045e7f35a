package compositions

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/scene"
	"parallax-showcase/pkg/core"
)

// AbstractParams shapes the abstract piece: a wireframe and a solid
// dodecahedron on the left, a torus with small spheres circling inside it on
// the right.
type AbstractParams struct {
	Home        mgl64.Vec3
	Inner       int
	InnerRadius float64
	InnerSpeed  float64 // rad/s
}

// DefaultAbstract returns the stock abstract piece at z=-8.
func DefaultAbstract() AbstractParams {
	return AbstractParams{Home: mgl64.Vec3{0, 0, -8}, Inner: 4, InnerRadius: 1.5, InnerSpeed: 0.5}
}

// Abstract returns the abstract composition builder.
func Abstract(p AbstractParams) scene.Builder {
	return func(rng *core.RNG) (*scene.Group, error) {
		if err := firstErr(atLeast("inner spheres", p.Inner, 0), positive("inner radius", p.InnerRadius)); err != nil {
			return nil, err
		}

		g := scene.NewGroup("abstract", 0.25, p.Home)
		pink, blue := hex("#ff0080"), hex("#0080ff")
		torusCenter := mgl64.Vec3{3, 0, 0}
		g.Add(
			scene.NewEntity("wireframe-dodeca", mgl64.Vec3{-3, 0, 0},
				scene.Shape{Kind: scene.ShapeDodecahedron, Size: 1, Color: pink, Emissive: 0.4, Wireframe: true},
				scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.25, RotationSpeed: rate(0.012)}),
			scene.NewEntity("solid-dodeca", mgl64.Vec3{-3.15, 0.15, -0.15},
				scene.Shape{Kind: scene.ShapeDodecahedron, Size: 1, Color: pink, Emissive: 0.2},
				scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.25, RotationSpeed: rate(0.01)}),
			scene.NewEntity("nested-torus", torusCenter,
				scene.Shape{Kind: scene.ShapeTorus, Size: 1.5, Color: blue, Emissive: 0.3},
				scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.25, RotationSpeed: rate(0.008)}),
		)

		cyan := hex("#00ffff")
		for i := 0; i < p.Inner; i++ {
			angle := float64(i) / float64(p.Inner) * 2 * math.Pi
			e := scene.NewEntity("inner-sphere", torusCenter,
				scene.Shape{Kind: scene.ShapeSphere, Size: 0.2, Color: cyan, Emissive: 0.6},
				scene.MotionBehavior{
					Kind:          scene.MotionOrbit,
					Speed:         0.3,
					RotationSpeed: rate(0.02),
					Orbit:         &scene.Orbit{Angle: angle, Radius: p.InnerRadius, AngularSpeed: p.InnerSpeed},
				})
			e.Position = torusCenter.Add(mgl64.Vec3{math.Cos(angle) * p.InnerRadius, math.Sin(angle) * p.InnerRadius, 0})
			g.Add(e)
		}
		return g, nil
	}
}
