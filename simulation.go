package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/tube-walk-go/internal/sim"
)

// Simulation struct: Adapts the tube world to Ebitengine's game loop
type Simulation struct {
	world  *sim.World
	screen *ebiten.Image // Target of the current Draw call
	err    error         // Presentation failure, reported by the next Update
}

// NewSimulation creates a new simulation instance
func NewSimulation(world *sim.World) *Simulation {
	return &Simulation{world: world}
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	if s.err != nil {
		return s.err
	}

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s.handleInput()

	s.world.Step()
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.screen = screen
	if err := s.world.Frame(s); err != nil && s.err == nil {
		s.err = err
	}
}

// Present writes a finished frame to the screen image
func (s *Simulation) Present(pix []byte) error {
	width, height := s.world.Size()
	b := s.screen.Bounds()
	if b.Dx() != width || b.Dy() != height || len(pix) != width*height*4 {
		return fmt.Errorf("screen %dx%d cannot take a %dx%d frame of %d bytes", b.Dx(), b.Dy(), width, height, len(pix))
	}
	s.screen.WritePixels(pix)
	return nil
}

// Layout pins the logical screen to the canvas size; window resizes only
// scale the presented image
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.world.Size()
}

// handleInput processes keyboard input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.world.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.world.Clear()
	}
}
