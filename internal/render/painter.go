//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"parallax-showcase/internal/scene"
)

const spriteSize = 64

var background = color.RGBA{R: 2, G: 2, B: 10, A: 255}

// Sprite is the GPU texture an entity is drawn with.
type Sprite struct {
	img     *ebiten.Image
	painter *Painter
}

// Release frees the texture. Later calls are no-ops.
func (s *Sprite) Release() {
	if s == nil || s.img == nil {
		return
	}
	s.img.Deallocate()
	s.img = nil
	if s.painter != nil {
		s.painter.live--
	}
}

// Painter draws display lists with ebiten and allocates entity sprites.
type Painter struct {
	list  DisplayList
	dot   *ebiten.Image
	white *ebiten.Image
	live  int
}

// NewPainter allocates the shared textures.
func NewPainter() *Painter {
	p := &Painter{
		dot:   ebiten.NewImage(spriteSize, spriteSize),
		white: ebiten.NewImage(3, 3),
	}
	p.white.Fill(color.White)
	vector.DrawFilledCircle(p.dot, spriteSize/2, spriteSize/2, spriteSize/2-1, color.White, true)
	return p
}

// Acquire renders the silhouette for e into its own texture.
func (p *Painter) Acquire(e *scene.Entity) scene.Resource {
	if e.Shape.Kind == scene.ShapeCloud {
		return nil
	}
	img := ebiten.NewImage(spriteSize, spriteSize)
	p.drawSilhouette(img, e.Shape.Kind, e.Shape.Wireframe)
	p.live++
	return &Sprite{img: img, painter: p}
}

// AcquireCraft renders the spacecraft arrowhead.
func (p *Painter) AcquireCraft(*scene.Spacecraft) scene.Resource {
	img := ebiten.NewImage(spriteSize, spriteSize)
	var path vector.Path
	c := float32(spriteSize) / 2
	path.MoveTo(spriteSize-2, c)
	path.LineTo(2, 4)
	path.LineTo(c*0.6, c)
	path.LineTo(2, spriteSize-4)
	path.Close()
	p.fillPath(img, &path)
	p.live++
	return &Sprite{img: img, painter: p}
}

// Live reports sprites not yet released.
func (p *Painter) Live() int { return p.live }

// Draw paints the whole view onto dst.
func (p *Painter) Draw(dst *ebiten.Image, v View) {
	dst.Fill(background)
	for _, it := range p.list.Build(v) {
		switch it.Kind {
		case ItemPoint, ItemParticle:
			p.blit(dst, p.dot, it)
		case ItemShape:
			if s := spriteOf(it.Entity); s != nil {
				p.blit(dst, s.img, it)
			}
		case ItemCraft:
			if v.Craft != nil {
				if s, ok := v.Craft.Resource.(*Sprite); ok && s.img != nil {
					p.blit(dst, s.img, it)
				}
			}
		}
	}
}

func (p *Painter) blit(dst, img *ebiten.Image, it Item) {
	if it.Radius <= 0 {
		return
	}
	scale := it.Radius * 2 / spriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteSize/2, -spriteSize/2)
	op.GeoM.Rotate(it.Angle)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(it.X, it.Y)
	op.ColorScale.ScaleWithColor(it.Color)
	op.Filter = ebiten.FilterLinear
	if it.Additive {
		op.Blend = ebiten.BlendLighter
	}
	dst.DrawImage(img, op)
}

func spriteOf(e *scene.Entity) *Sprite {
	if e == nil {
		return nil
	}
	s, ok := e.Resource.(*Sprite)
	if !ok || s.img == nil {
		return nil
	}
	return s
}

// drawSilhouette approximates each solid by its outline polygon.
func (p *Painter) drawSilhouette(img *ebiten.Image, kind scene.ShapeKind, wire bool) {
	c := float32(spriteSize) / 2
	r := c - 2
	switch kind {
	case scene.ShapeSphere:
		if wire {
			vector.StrokeCircle(img, c, c, r-1, 2, color.White, true)
			return
		}
		vector.DrawFilledCircle(img, c, c, r, color.White, true)
		return
	case scene.ShapeTorus:
		vector.StrokeCircle(img, c, c, r*0.7, r*0.3, color.White, true)
		return
	}

	sides, phase := 4, math.Pi/4
	switch kind {
	case scene.ShapeOctahedron:
		phase = 0
	case scene.ShapeIcosahedron:
		sides, phase = 6, 0
	case scene.ShapeDodecahedron:
		sides, phase = 5, -math.Pi/2
	}
	var path vector.Path
	for i := 0; i < sides; i++ {
		a := phase + 2*math.Pi*float64(i)/float64(sides)
		x := c + r*float32(math.Cos(a))
		y := c + r*float32(math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()
	if wire {
		p.strokePath(img, &path)
		return
	}
	p.fillPath(img, &path)
}

func (p *Painter) fillPath(img *ebiten.Image, path *vector.Path) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	p.drawVertices(img, vs, is)
}

func (p *Painter) strokePath(img *ebiten.Image, path *vector.Path) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 2, LineJoin: vector.LineJoinRound})
	p.drawVertices(img, vs, is)
}

func (p *Painter) drawVertices(img *ebiten.Image, vs []ebiten.Vertex, is []uint16) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = 1
		vs[i].ColorG = 1
		vs[i].ColorB = 1
		vs[i].ColorA = 1
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	img.DrawTriangles(vs, is, p.white, op)
}
