package compositions

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/internal/motion"
	"parallax-showcase/internal/scene"
	"parallax-showcase/pkg/core"
)

func TestDefaultCompositionsBuild(t *testing.T) {
	for _, name := range Default {
		g, err := scene.Build(name, core.NewRNG(1))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(g.Members) == 0 {
			t.Fatalf("%s built an empty group", name)
		}
		for _, e := range g.Members {
			if e.Group() != g {
				t.Fatalf("%s: member %s lost its group", name, e.Name)
			}
			if e.Motion.Kind == scene.MotionOrbit && e.Motion.Orbit == nil {
				t.Fatalf("%s: orbiter %s has no orbit record", name, e.Name)
			}
		}
	}
}

func TestCompositionPlacement(t *testing.T) {
	cases := map[string]float64{"portal": -5, "galaxy": 5, "abstract": -8, "backdrop": -15, "crystals": 0}
	for name, z := range cases {
		g, err := scene.Build(name, nil)
		if err != nil {
			t.Fatal(err)
		}
		if g.Home[2] != z {
			t.Errorf("%s should rest at z=%g, got %g", name, z, g.Home[2])
		}
	}
}

func TestPortalSpheresOrbitRingCenter(t *testing.T) {
	g, err := Portal(DefaultPortal())(core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	orbiters := 0
	for _, e := range g.Members {
		if e.Motion.Kind != scene.MotionOrbit {
			continue
		}
		orbiters++
		off := e.Position.Sub(e.Original)
		if math.Abs(math.Hypot(off[0], off[1])-3) > 1e-9 {
			t.Fatalf("sphere should start on the radius-3 circle, offset %v", off)
		}
	}
	if orbiters != 6 {
		t.Fatalf("expected six orbiting spheres, got %d", orbiters)
	}

	reg := scene.NewRegistry()
	reg.AddGroup(g)
	u := motion.NewUpdater(motion.DefaultConfig())
	before := g.Members[3].Position
	u.Update(reg, mgl64.Vec2{}, 0.05)
	if g.Members[3].Position == before {
		t.Fatal("portal spheres should move along their orbit")
	}
}

func TestBuildersRejectBadParameters(t *testing.T) {
	bad := map[string]scene.Builder{
		"portal":    Portal(PortalParams{Spheres: 6, OrbitRadius: -1, SphereSize: 1, OuterRadius: 1}),
		"crystals":  Crystals(CrystalsParams{Sizes: []float64{1}, Positions: nil}),
		"galaxy":    Galaxy(GalaxyParams{Points: 0, Spread: 1}),
		"abstract":  Abstract(AbstractParams{Inner: 2, InnerRadius: 0}),
		"backdrop":  Backdrop(BackdropParams{Size: 0}),
		"starfield": Starfield(StarfieldParams{Stars: 10, MinRadius: 50, MaxRadius: 10}),
	}
	for name, b := range bad {
		g, err := b(core.NewRNG(1))
		if err == nil || g != nil {
			t.Errorf("%s: expected an error and no group, got %v, %v", name, g, err)
		}
	}
}

func TestStarfieldStaysInShell(t *testing.T) {
	g, err := Starfield(StarfieldParams{Stars: 200, MinRadius: 20, MaxRadius: 40})(core.NewRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	if !g.Static {
		t.Fatal("the star shell should not follow the cursor")
	}
	for _, p := range g.Members[0].Shape.Points {
		if r := p.Len(); r < 20-1e-9 || r > 40 {
			t.Fatalf("star at radius %f outside the shell", r)
		}
	}
}

func TestGalaxyIsDeterministicPerSeed(t *testing.T) {
	a, _ := Galaxy(DefaultGalaxy())(core.NewRNG(4))
	b, _ := Galaxy(DefaultGalaxy())(core.NewRNG(4))
	pa, pb := a.Members[1].Shape.Points, b.Members[1].Shape.Points
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("point %d differs between identical seeds", i)
		}
	}
}

func TestHexParsesLiterals(t *testing.T) {
	c := hex("#ff8000")
	if !c.AlmostEqualRgb(colorful.Color{R: 1, G: 128.0 / 255, B: 0}) {
		t.Fatalf("unexpected color %v", c)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a malformed literal to panic")
		}
	}()
	hex("#ggg")
}
