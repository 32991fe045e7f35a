package compositions

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/internal/scene"
	"parallax-showcase/pkg/core"
)

// CrystalsParams lists the octahedra, largest first. Sizes and Positions
// must have the same length.
type CrystalsParams struct {
	Home      mgl64.Vec3
	Sizes     []float64
	Positions []mgl64.Vec3
}

// DefaultCrystals returns the stock cluster of seven crystals.
func DefaultCrystals() CrystalsParams {
	return CrystalsParams{
		Sizes: []float64{1.2, 0.8, 0.6, 0.4, 0.3, 0.25, 0.2},
		Positions: []mgl64.Vec3{
			{0, 0, 2},
			{2, 1, 1},
			{-2, -1, 1.5},
			{1.5, -1.5, 0.5},
			{-1.5, 1.5, 2.5},
			{0, 2, 1},
			{-2, 2, 2},
		},
	}
}

// Crystals returns the crystal cluster builder. Each crystal gets its own
// hue, parallax speed and spin.
func Crystals(p CrystalsParams) scene.Builder {
	return func(rng *core.RNG) (*scene.Group, error) {
		if len(p.Sizes) != len(p.Positions) {
			return nil, fmt.Errorf("crystals: %d sizes for %d positions", len(p.Sizes), len(p.Positions))
		}
		for i, s := range p.Sizes {
			if err := positive(fmt.Sprintf("crystal %d size", i), s); err != nil {
				return nil, err
			}
		}

		g := scene.NewGroup("crystals", 0.2, p.Home)
		for i, size := range p.Sizes {
			fi := float64(i)
			hue := math.Mod(0.6+fi*0.1, 1) * 360
			g.Add(scene.NewEntity("crystal", p.Positions[i],
				scene.Shape{Kind: scene.ShapeOctahedron, Size: size, Color: colorful.Hsl(hue, 0.8, 0.5).Clamped(), Emissive: 0.2},
				scene.MotionBehavior{
					Kind:          scene.MotionParallax,
					Speed:         0.2 + fi*0.05,
					RotationSpeed: rate(0.005 + fi*0.003),
				}))
		}
		return g, nil
	}
}
