// Package scene holds the animated scene graph: entities, groups, the camera,
// the spacecraft proxy and the lights, plus the registry the frame loop walks.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// MotionKind selects which per-frame rule moves an entity.
type MotionKind int

const (
	// MotionNone entities never move. They still spin when RotationSpeed is set.
	MotionNone MotionKind = iota
	// MotionParallax entities follow the cursor around their original position.
	MotionParallax
	// MotionOrbit entities circle their original position in the XY plane.
	MotionOrbit
	// MotionStaticSpin entities stay put and only spin.
	MotionStaticSpin
)

func (k MotionKind) String() string {
	switch k {
	case MotionParallax:
		return "parallax"
	case MotionOrbit:
		return "orbit"
	case MotionStaticSpin:
		return "static-spin"
	default:
		return "none"
	}
}

// Orbit is the mutable orbit state of an orbiting entity.
type Orbit struct {
	Angle        float64
	Radius       float64
	AngularSpeed float64
}

// MotionBehavior is the motion record attached to every entity. Orbit is only
// meaningful for MotionOrbit; a zero RotationSpeed means no self-rotation.
type MotionBehavior struct {
	Kind          MotionKind
	Speed         float64
	RotationSpeed float64
	Orbit         *Orbit
}

// ShapeKind names the geometry a renderer should draw for an entity.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeTorus
	ShapeBox
	ShapeOctahedron
	ShapeIcosahedron
	ShapeDodecahedron
	ShapeCloud
)

// Shape is the renderer-facing description of an entity's geometry.
type Shape struct {
	Kind      ShapeKind
	Size      float64
	Color     colorful.Color
	Emissive  float64
	Wireframe bool

	// Cloud shapes carry their own points, relative to the entity position.
	Points      []mgl64.Vec3
	PointColors []colorful.Color
}

// Resource is a renderer-side allocation (buffers, textures) owned by an
// entity. It is released exactly once, after the entity leaves the registry.
type Resource interface {
	Release()
}

// Entity is one animated renderable. Position is relative to its group.
type Entity struct {
	Name     string
	Original mgl64.Vec3
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Shape    Shape
	Motion   MotionBehavior
	Resource Resource

	group *Group
}

// NewEntity returns an entity resting at its original position.
func NewEntity(name string, original mgl64.Vec3, shape Shape, motion MotionBehavior) *Entity {
	return &Entity{
		Name:     name,
		Original: original,
		Position: original,
		Shape:    shape,
		Motion:   motion,
	}
}

// Group returns the group the entity belongs to, or nil for top-level entities.
func (e *Entity) Group() *Group { return e.group }

// Group is a named collection of entities sharing one transform. Home holds
// the resting translation; Position is rewritten every frame. Static groups
// stay at Home and never turn.
type Group struct {
	Name     string
	Speed    float64
	Home     mgl64.Vec3
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Static   bool
	Members  []*Entity
}

// NewGroup returns an empty group resting at home.
func NewGroup(name string, speed float64, home mgl64.Vec3) *Group {
	return &Group{Name: name, Speed: speed, Home: home, Position: home}
}

// Add attaches entities to the group.
func (g *Group) Add(entities ...*Entity) {
	for _, e := range entities {
		if e == nil {
			continue
		}
		e.group = g
		g.Members = append(g.Members, e)
	}
}

// Transform maps a group-local point into world space: rotation about Y, then
// translation.
func (g *Group) Transform(local mgl64.Vec3) mgl64.Vec3 {
	rot := mgl64.Rotate3DY(g.Rotation[1])
	return rot.Mul3x1(local).Add(g.Position)
}
