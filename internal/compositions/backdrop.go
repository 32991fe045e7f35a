package compositions

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/internal/scene"
	"parallax-showcase/pkg/core"
)

// BackdropParams places the giant slab behind everything.
type BackdropParams struct {
	Home mgl64.Vec3
	Size float64
}

// DefaultBackdrop returns the stock backdrop at z=-15.
func DefaultBackdrop() BackdropParams {
	return BackdropParams{Home: mgl64.Vec3{0, 0, -15}, Size: 8}
}

// Backdrop returns the backdrop builder: one slowly spinning box that
// ignores the cursor.
func Backdrop(p BackdropParams) scene.Builder {
	return func(rng *core.RNG) (*scene.Group, error) {
		if err := positive("backdrop size", p.Size); err != nil {
			return nil, err
		}
		g := scene.NewGroup("backdrop", 0, p.Home)
		g.Static = true
		g.Add(scene.NewEntity("giant-background", mgl64.Vec3{},
			scene.Shape{Kind: scene.ShapeBox, Size: p.Size, Color: hex("#000033"), Emissive: 0.2},
			scene.MotionBehavior{Kind: scene.MotionStaticSpin, Speed: 0.05, RotationSpeed: rate(0.001)}))
		return g, nil
	}
}

// StarfieldParams shapes the distant star shell around the scene.
type StarfieldParams struct {
	Stars     int
	MinRadius float64
	MaxRadius float64
}

// DefaultStarfield returns the stock star shell.
func DefaultStarfield() StarfieldParams {
	return StarfieldParams{Stars: 1500, MinRadius: 20, MaxRadius: 200}
}

// Starfield returns the star shell builder. Stars are spread uniformly over
// directions between the two radii; most are pale blue, some warm, a few red.
func Starfield(p StarfieldParams) scene.Builder {
	return func(rng *core.RNG) (*scene.Group, error) {
		if err := firstErr(atLeast("stars", p.Stars, 1), positive("min radius", p.MinRadius)); err != nil {
			return nil, err
		}
		if p.MaxRadius < p.MinRadius {
			return nil, errRange("star radius", p.MinRadius, p.MaxRadius)
		}

		points := make([]mgl64.Vec3, p.Stars)
		colors := make([]colorful.Color, p.Stars)
		for i := range points {
			r := rng.Range(p.MinRadius, p.MaxRadius)
			theta := rng.Range(0, 2*math.Pi)
			phi := math.Acos(rng.Range(-1, 1))
			points[i] = mgl64.Vec3{
				r * math.Sin(phi) * math.Cos(theta),
				r * math.Sin(phi) * math.Sin(theta),
				r * math.Cos(phi),
			}
			switch kind := rng.Float64(); {
			case kind < 0.6:
				colors[i] = colorful.Hsl(rng.Range(198, 234), 0.2, rng.Range(0.7, 1))
			case kind < 0.85:
				colors[i] = colorful.Hsl(rng.Range(36, 72), 0.5, rng.Range(0.6, 0.9))
			default:
				colors[i] = colorful.Hsl(rng.Range(0, 36), 0.8, rng.Range(0.5, 0.8))
			}
			colors[i] = colors[i].Clamped()
		}

		g := scene.NewGroup("starfield", 0, mgl64.Vec3{})
		g.Static = true
		g.Add(scene.NewEntity("stars", mgl64.Vec3{},
			scene.Shape{Kind: scene.ShapeCloud, Size: 0.1, Points: points, PointColors: colors},
			scene.MotionBehavior{Kind: scene.MotionNone}))
		return g, nil
	}
}
