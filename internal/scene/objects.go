package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Camera is the single scene camera. LookAt is the point it gazes at.
type Camera struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// NewCamera returns the default perspective camera placed at position and
// looking at the origin.
func NewCamera(position mgl64.Vec3) *Camera {
	return &Camera{Position: position, FOV: 75, Aspect: 1, Near: 0.1, Far: 1000}
}

// Spacecraft is the tour actor. Thrusters are local offsets of the two
// exhaust nozzles; the craft's front is its local -Z.
type Spacecraft struct {
	Position     mgl64.Vec3
	Orientation  mgl64.Quat
	Visible      bool
	TrailVisible bool
	Thrusters    [2]mgl64.Vec3
	Resource     Resource
}

// NewSpacecraft returns a hidden craft parked at position.
func NewSpacecraft(position mgl64.Vec3) *Spacecraft {
	return &Spacecraft{
		Position:    position,
		Orientation: mgl64.QuatIdent(),
		Thrusters: [2]mgl64.Vec3{
			{-0.3, 0, -0.65},
			{0.3, 0, -0.65},
		},
	}
}

// EmissionPoints returns the world positions of both thrusters.
func (s *Spacecraft) EmissionPoints() [2]mgl64.Vec3 {
	var pts [2]mgl64.Vec3
	for i, local := range s.Thrusters {
		pts[i] = s.Position.Add(s.Orientation.Rotate(local))
	}
	return pts
}

// Light is a movable point light.
type Light struct {
	Name      string
	Position  mgl64.Vec3
	Color     colorful.Color
	Intensity float64
	Range     float64
}
