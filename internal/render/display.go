package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"parallax-showcase/internal/core"
	"parallax-showcase/internal/lighting"
	"parallax-showcase/internal/particles"
	"parallax-showcase/internal/scene"
)

// ItemKind tells the painter how to draw an item.
type ItemKind int

const (
	ItemShape ItemKind = iota
	ItemPoint
	ItemCraft
	ItemParticle
)

// Item is one projected drawable.
type Item struct {
	Kind      ItemKind
	Shape     scene.ShapeKind
	X, Y      float64
	Depth     float64
	Radius    float64
	Angle     float64
	Wireframe bool
	Additive  bool
	Color     color.RGBA
	Entity    *scene.Entity
}

// View is everything a frame draws.
type View struct {
	Registry  *scene.Registry
	Camera    *scene.Camera
	Craft     *scene.Spacecraft
	Lights    *lighting.Rig
	Shading   *lighting.Animator
	Particles []particles.Particle
	Pan       mgl64.Vec3
	Size      core.Size
}

const (
	minPointRadius = 0.6
	craftRadius    = 0.6
)

var craftColor = colorful.Color{R: 0.8, G: 0.82, B: 0.88}

// DisplayList collects and orders the items of one frame. The backing
// storage is reused between frames.
type DisplayList struct {
	items []Item
}

// Build projects v and returns its items ordered far to near. The slice is
// valid until the next Build.
func (d *DisplayList) Build(v View) []Item {
	d.items = d.items[:0]
	if v.Camera == nil || v.Size.W <= 0 || v.Size.H <= 0 {
		return d.items
	}
	proj := NewProjector(v.Camera, v.Size)

	if v.Registry != nil {
		for _, e := range v.Registry.Entities() {
			if e.Shape.Kind == scene.ShapeCloud {
				d.addCloud(proj, e, v.Pan)
				continue
			}
			d.addShape(proj, v, e)
		}
	}
	if c := v.Craft; c != nil && c.Visible {
		d.addCraft(proj, v, c)
	}
	trail := v.Particles
	if v.Craft != nil && !v.Craft.TrailVisible {
		trail = nil
	}
	for i := range trail {
		p := &trail[i]
		if !p.Alive() {
			continue
		}
		x, y, depth, ok := proj.Project(p.Position.Add(v.Pan))
		if !ok {
			continue
		}
		d.items = append(d.items, Item{
			Kind:     ItemParticle,
			X:        x,
			Y:        y,
			Depth:    depth,
			Radius:   math.Max(proj.Radius(p.Size, depth), minPointRadius),
			Additive: true,
			Color:    toRGBA(p.Color, 1-p.LifeFraction()),
		})
	}

	sort.SliceStable(d.items, func(i, j int) bool {
		return d.items[i].Depth > d.items[j].Depth
	})
	return d.items
}

func (d *DisplayList) addShape(proj Projector, v View, e *scene.Entity) {
	world := WorldPosition(e, v.Pan)
	x, y, depth, ok := proj.Project(world)
	if !ok {
		return
	}
	lit := e.Shape.Color
	if v.Shading != nil {
		lit = v.Shading.Illuminate(v.Lights, world, e.Shape.Color)
	}
	lit = emissive(lit, e.Shape.Color, e.Shape.Emissive)
	d.items = append(d.items, Item{
		Kind:      ItemShape,
		Shape:     e.Shape.Kind,
		X:         x,
		Y:         y,
		Depth:     depth,
		Radius:    proj.Radius(e.Shape.Size*extent(e.Shape.Kind), depth),
		Angle:     spin(e),
		Wireframe: e.Shape.Wireframe,
		Color:     toRGBA(lit, 1),
		Entity:    e,
	})
}

// addCloud emits one point per cloud vertex. Points turn with the entity.
func (d *DisplayList) addCloud(proj Projector, e *scene.Entity, pan mgl64.Vec3) {
	rot := mgl64.Rotate3DX(e.Rotation[0]).Mul3(mgl64.Rotate3DY(e.Rotation[1]))
	size := e.Shape.Size
	for i, pt := range e.Shape.Points {
		local := e.Position.Add(rot.Mul3x1(pt))
		world := local
		if g := e.Group(); g != nil {
			world = g.Transform(local)
		}
		x, y, depth, ok := proj.Project(world.Add(pan))
		if !ok {
			continue
		}
		c := e.Shape.Color
		if i < len(e.Shape.PointColors) {
			c = e.Shape.PointColors[i]
		}
		d.items = append(d.items, Item{
			Kind:     ItemPoint,
			X:        x,
			Y:        y,
			Depth:    depth,
			Radius:   math.Max(proj.Radius(size, depth), minPointRadius),
			Additive: true,
			Color:    toRGBA(c, 0.9),
			Entity:   e,
		})
	}
}

// addCraft draws the spacecraft with its screen heading taken from the
// projected nose.
func (d *DisplayList) addCraft(proj Projector, v View, c *scene.Spacecraft) {
	pos := c.Position.Add(v.Pan)
	x, y, depth, ok := proj.Project(pos)
	if !ok {
		return
	}
	angle := 0.0
	nose := pos.Add(c.Orientation.Rotate(mgl64.Vec3{0, 0, 1}))
	if nx, ny, _, ok := proj.Project(nose); ok {
		angle = math.Atan2(ny-y, nx-x)
	}
	lit := craftColor
	if v.Shading != nil {
		lit = v.Shading.Illuminate(v.Lights, pos, craftColor)
	}
	d.items = append(d.items, Item{
		Kind:   ItemCraft,
		X:      x,
		Y:      y,
		Depth:  depth,
		Radius: proj.Radius(craftRadius, depth),
		Angle:  angle,
		Color:  toRGBA(lit, 1),
	})
}

// extent converts a shape's size into a bounding radius.
func extent(k scene.ShapeKind) float64 {
	switch k {
	case scene.ShapeBox:
		return 0.5
	case scene.ShapeTorus:
		return 1.2
	default:
		return 1
	}
}

// spin folds the entity's rotation into a single screen angle.
func spin(e *scene.Entity) float64 {
	a := e.Rotation[0] + e.Rotation[1]
	if g := e.Group(); g != nil {
		a += g.Rotation[1]
	}
	return a
}
