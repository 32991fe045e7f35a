//go:build ebiten

package app

import (
	"log"

	"parallax-showcase/internal/config"
	"parallax-showcase/internal/core"
	"parallax-showcase/internal/navigation"
	"parallax-showcase/internal/render"
	"parallax-showcase/internal/session"
	"parallax-showcase/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelUnit converts one wheel notch into browser-style delta units.
const wheelUnit = 100

// Game adapts a showcase session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.Painter
	chrome  *ui.Chrome
	overlay *ui.Overlay
	hud     *ui.HUD

	autoTour   bool
	fullscreen bool
	inside     bool
	window     core.Viewport
}

// New builds the session and its renderer. The scene is built right away.
func New(cfg config.Config, flags *Flags, logger *log.Logger) (*Game, error) {
	clock := core.NewWallClock()
	g := &Game{
		painter:    render.NewPainter(),
		chrome:     ui.NewChrome(clock, cfg.Chrome),
		autoTour:   flags.AutoTour,
		fullscreen: flags.Fullscreen,
	}
	g.window = core.Viewport{
		Size:       core.Size{W: cfg.Viewport.Width, H: cfg.Viewport.Height},
		PixelRatio: ebiten.Monitor().DeviceScaleFactor(),
	}

	sess, err := session.New(session.Options{
		Config:    &cfg,
		Clock:     clock,
		Logger:    logger,
		Resources: g.painter,
		Viewport:  g.window,
		Callbacks: g.chrome.Callbacks(session.Callbacks{
			OnLoaded: func(bool) {
				if g.autoTour {
					g.sess.StartGuidedTour()
				}
			},
		}),
	})
	if err != nil {
		return nil, err
	}
	g.sess = sess
	g.overlay = ui.NewOverlay(g.chrome)
	g.hud = ui.NewHUD(sess, flags.HUDWidth)

	sess.Init()
	sess.UpdateSize(g.fullscreen)
	return g, nil
}

// Update handles input and advances the scene one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sess.Teardown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if g.sess.IsTourActive() {
			g.sess.StopGuidedTour()
		} else {
			g.sess.StartGuidedTour()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
		g.sess.UpdateSize(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.chrome.Reset()
		g.sess.Reinitialize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.handlePointer()
	g.sess.Frame()
	g.hud.Update(g.sess.Surface().W)
	ebiten.SetCursorShape(cursorShape(g.sess.CursorShape()))
	return nil
}

func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	s := g.sess.Surface()
	inside := cx >= 0 && cy >= 0 && cx < s.W && cy < s.H
	if !inside {
		if g.inside {
			g.sess.PointerLeave()
		}
		g.inside = false
		return
	}
	g.inside = true
	x, y := float64(cx), float64(cy)

	for _, b := range []struct {
		mouse ebiten.MouseButton
		nav   navigation.Button
	}{
		{ebiten.MouseButtonLeft, navigation.ButtonPrimary},
		{ebiten.MouseButtonRight, navigation.ButtonSecondary},
	} {
		if inpututil.IsMouseButtonJustPressed(b.mouse) && !g.hud.Contains(cx, cy) {
			g.sess.PointerDown(b.nav, x, y)
		}
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			g.sess.PointerUp(b.nav)
		}
	}
	g.sess.PointerMove(x, y)
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.sess.Wheel(-wy * wheelUnit)
	}
}

// Draw renders the scene and the chrome.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, render.View{
		Registry:  g.sess.Registry(),
		Camera:    g.sess.Camera(),
		Craft:     g.sess.Spacecraft(),
		Lights:    g.sess.Lights(),
		Shading:   g.sess.Lighting(),
		Particles: g.sess.Trail().Particles(),
		Pan:       g.sess.Pan(),
		Size:      g.sess.Surface().Size,
	})
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout reports the session surface and forwards window changes to it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := core.Viewport{
		Size:       core.Size{W: outsideWidth, H: outsideHeight},
		PixelRatio: ebiten.Monitor().DeviceScaleFactor(),
	}
	if v != g.window {
		g.window = v
		g.sess.Resize(v)
	}
	s := g.sess.Surface()
	return s.W, s.H
}

// WindowSize is the initial window size for cfg.
func WindowSize(cfg config.Config) (int, int) {
	return cfg.Viewport.Width, cfg.Viewport.Height
}

func cursorShape(c navigation.CursorShape) ebiten.CursorShapeType {
	switch c {
	case navigation.CursorGrabbing:
		return ebiten.CursorShapeMove
	case navigation.CursorMove:
		return ebiten.CursorShapeCrosshair
	default:
		return ebiten.CursorShapeDefault
	}
}
