package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/tube-walk-go/internal/config"
	"github.com/olivierh59500/tube-walk-go/internal/palette"
	"github.com/olivierh59500/tube-walk-go/internal/sim"
	"github.com/olivierh59500/tube-walk-go/internal/terminal"
)

var (
	configPath = flag.String("config", "", "path to a YAML settings file")
	surface    = flag.String("surface", "", "override the surface: window or terminal")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *surface != "" {
		cfg.Surface = *surface
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	// Fresh walks on every start
	world := sim.Default(cfg.Width, cfg.Height, time.Now().UnixNano())
	world.SetBackground(palette.MustHex(cfg.Background))

	switch cfg.Surface {
	case config.SurfaceTerminal:
		runTerminal(cfg, world)
	default:
		runWindow(cfg, world)
	}
}

func runWindow(cfg config.Config, world *sim.World) {
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	// Run the game loop
	if err := ebiten.RunGame(NewSimulation(world)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func runTerminal(cfg config.Config, world *sim.World) {
	s, err := terminal.Open(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal(err)
	}
	err = terminal.NewHost(s, world, cfg.TPS, cfg.FrameRate).Run()
	s.Close()
	if err != nil {
		log.Fatal(err)
	}
}
