// Package sim drives the tubes and the canvas through update and redraw ticks.
// It knows nothing about windows or terminals; a host loop calls Step and
// Frame at whatever rates it likes.
package sim

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/olivierh59500/tube-walk-go/internal/canvas"
	"github.com/olivierh59500/tube-walk-go/internal/palette"
	"github.com/olivierh59500/tube-walk-go/internal/tube"
)

// ErrPresent wraps any failure reported by a Presenter
var ErrPresent = errors.New("present frame")

// Presenter displays a finished RGBA frame
type Presenter interface {
	Present(pix []byte) error
}

// World owns the tubes, in draw order, and the canvas they paint
type World struct {
	tubes      []*tube.Tube
	canvas     *canvas.Canvas
	background color.RGBA
	paused     bool
	ticks      int
}

// New creates a world on a fresh width x height canvas
func New(width, height int, tubes ...*tube.Tube) *World {
	return &World{
		tubes:  tubes,
		canvas: canvas.New(width, height),
	}
}

// Default builds the fixed tube line-up. The first tube is the classic blue
// one starting in the top-left corner heading east.
func Default(width, height int, seed int64) *World {
	pal := palette.New(seed)
	w, h := float64(width), float64(height)
	cfgs := []tube.Config{
		{Speed: 0.7, Direction: tube.East, Start: tube.Pt(0, 0), TurnChance: 0.06, Colour: palette.MustHex("#48b2e8ff")},
		{Speed: 0.5, Direction: tube.South, Start: tube.Pt(w/2, h/2), TurnChance: 0.03, Colour: pal.Next()},
		{Speed: 0.9, Direction: tube.West, Start: tube.Pt(w-1, h/4), TurnChance: 0.1, Colour: pal.Next()},
		{Speed: 0.3, Direction: tube.North, Start: tube.Pt(w/4, h-1), TurnChance: 0.02, Colour: pal.Next()},
		{Speed: 0.6, Direction: tube.East, Start: tube.Pt(w/3, h*3/4), TurnChance: 0.08, Colour: pal.Next()},
	}

	tubes := make([]*tube.Tube, len(cfgs))
	for i, cfg := range cfgs {
		// Each tube gets its own source so their walks stay independent
		rng := rand.New(rand.NewSource(seed + int64(i) + 1))
		tubes[i] = tube.New(cfg, width, height, rng)
	}
	return New(width, height, tubes...)
}

// SetBackground fills the canvas with col and remembers it for Clear
func (w *World) SetBackground(col color.RGBA) {
	w.background = col
	w.canvas.Fill(col)
}

// Step is the update tick: every tube advances once, in order
func (w *World) Step() {
	if w.paused {
		return
	}
	for _, t := range w.tubes {
		t.Increment()
	}
	w.ticks++
}

// Render is the redraw tick: stamp every tube and return the buffer. Trails
// accumulate because the canvas is never wiped here.
func (w *World) Render() []byte {
	canvas.Compose(w.canvas, w.tubes)
	return w.canvas.Pix
}

// Frame renders and hands the buffer to p
func (w *World) Frame(p Presenter) error {
	if err := p.Present(w.Render()); err != nil {
		return fmt.Errorf("%w: %w", ErrPresent, err)
	}
	return nil
}

// Clear wipes all trails back to the background
func (w *World) Clear() {
	w.canvas.Fill(w.background)
}

// TogglePause stops or resumes Step
func (w *World) TogglePause() {
	w.paused = !w.paused
}

func (w *World) Paused() bool { return w.paused }
func (w *World) Ticks() int { return w.ticks }
func (w *World) Tubes() []*tube.Tube { return w.tubes }
func (w *World) Canvas() *canvas.Canvas { return w.canvas }
func (w *World) Size() (width, height int) { return w.canvas.Width, w.canvas.Height }
