//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"parallax-showcase/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg, flags, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("parallax showcase")
	ebiten.SetTPS(cfg.Viewport.TPS)
	ebiten.SetWindowSize(app.WindowSize(cfg))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(flags.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
