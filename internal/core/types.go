package core

// Size describes pixel dimensions of a viewport or output surface.
type Size struct {
	W int
	H int
}

// Viewport is what the host environment reports about its window.
type Viewport struct {
	Size
	PixelRatio float64
}

// Surface is the sized output the scene is rendered into.
type Surface struct {
	Size
	PixelRatio float64
	Fullscreen bool
}

// Aspect returns width over height, or 1 for an empty surface.
func (s Surface) Aspect() float64 {
	if s.W <= 0 || s.H <= 0 {
		return 1
	}
	return float64(s.W) / float64(s.H)
}
