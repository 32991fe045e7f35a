// Package render turns the scene into screen-space draw items. The
// projection and ordering here are headless; the ebiten painter consumes
// them.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/core"
	"parallax-showcase/internal/scene"
)

// Projector maps world points onto a surface through the camera.
type Projector struct {
	viewProj mgl64.Mat4
	w, h     float64
	near     float64
	focal    float64 // pixels per world unit at distance 1
}

// NewProjector builds the view-projection for cam rendered at size.
func NewProjector(cam *scene.Camera, size core.Size) Projector {
	w, h := float64(size.W), float64(size.H)
	aspect := cam.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	fovy := mgl64.DegToRad(cam.FOV)
	proj := mgl64.Perspective(fovy, aspect, cam.Near, cam.Far)
	view := mgl64.LookAtV(cam.Position, cam.LookAt, mgl64.Vec3{0, 1, 0})
	return Projector{
		viewProj: proj.Mul4(view),
		w:        w,
		h:        h,
		near:     cam.Near,
		focal:    h / 2 / math.Tan(fovy/2),
	}
}

// Project returns the pixel position of world and its distance along the
// view axis. ok is false for points outside the depth range.
func (p Projector) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	wc := clip.W()
	if wc <= p.near {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / wc)
	if ndc[2] < -1 || ndc[2] > 1 {
		return 0, 0, 0, false
	}
	x = (ndc[0] + 1) / 2 * p.w
	y = (1 - ndc[1]) / 2 * p.h
	return x, y, wc, true
}

// Radius is the on-screen radius in pixels of a sphere of the given world
// radius at depth.
func (p Projector) Radius(worldRadius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return worldRadius * p.focal / depth
}

// WorldPosition places an entity in world space: its group transform, then
// the scene pan.
func WorldPosition(e *scene.Entity, pan mgl64.Vec3) mgl64.Vec3 {
	pos := e.Position
	if g := e.Group(); g != nil {
		pos = g.Transform(pos)
	}
	return pos.Add(pan)
}
