package compositions

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/scene"
	"parallax-showcase/pkg/core"
)

// PortalParams shapes the portal: nested rings with neon spheres circling
// them.
type PortalParams struct {
	Home        mgl64.Vec3
	Spheres     int
	OrbitRadius float64
	OrbitSpeed  float64 // rad/s
	SphereSize  float64
	OuterRadius float64
}

// DefaultPortal returns the stock portal at z=-5.
func DefaultPortal() PortalParams {
	return PortalParams{
		Home:        mgl64.Vec3{0, 0, -5},
		Spheres:     6,
		OrbitRadius: 3,
		OrbitSpeed:  rate(0.01),
		SphereSize:  0.5,
		OuterRadius: 2.2,
	}
}

// Portal returns the portal builder.
func Portal(p PortalParams) scene.Builder {
	return func(rng *core.RNG) (*scene.Group, error) {
		if err := firstErr(
			atLeast("spheres", p.Spheres, 0),
			positive("orbit radius", p.OrbitRadius),
			positive("sphere size", p.SphereSize),
			positive("outer radius", p.OuterRadius),
		); err != nil {
			return nil, err
		}

		g := scene.NewGroup("portal", 0.3, p.Home)
		cyan, magenta := hex("#00ffff"), hex("#ff00ff")
		g.Add(
			scene.NewEntity("outer-ring", mgl64.Vec3{},
				scene.Shape{Kind: scene.ShapeTorus, Size: p.OuterRadius, Color: cyan, Emissive: 0.4},
				scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.3, RotationSpeed: rate(0.01)}),
			scene.NewEntity("inner-ring", mgl64.Vec3{},
				scene.Shape{Kind: scene.ShapeTorus, Size: p.OuterRadius * 1.5 / 2.2, Color: magenta, Emissive: 0.6},
				scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.35, RotationSpeed: rate(-0.012)}),
			scene.NewEntity("core-ring", mgl64.Vec3{},
				scene.Shape{Kind: scene.ShapeTorus, Size: p.OuterRadius / 2.2, Color: hex("#ffffff"), Emissive: 0.8},
				scene.MotionBehavior{Kind: scene.MotionParallax, Speed: 0.5, RotationSpeed: rate(-0.02)}),
		)

		for i := 0; i < p.Spheres; i++ {
			angle := float64(i) / float64(p.Spheres) * 2 * math.Pi
			center := mgl64.Vec3{0, 0, math.Sin(float64(i)) * 0.5}
			e := scene.NewEntity("orbiting-sphere", center,
				scene.Shape{Kind: scene.ShapeSphere, Size: p.SphereSize, Color: magenta, Emissive: 1.2},
				scene.MotionBehavior{
					Kind:          scene.MotionOrbit,
					Speed:         0.4,
					RotationSpeed: rate(0.015),
					Orbit:         &scene.Orbit{Angle: angle, Radius: p.OrbitRadius, AngularSpeed: p.OrbitSpeed},
				})
			e.Position = center.Add(mgl64.Vec3{math.Cos(angle) * p.OrbitRadius, math.Sin(angle) * p.OrbitRadius, 0})
			g.Add(e)
		}
		return g, nil
	}
}
