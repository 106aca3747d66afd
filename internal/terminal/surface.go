// Package terminal presents canvas frames in a text terminal using half-block
// cells, two canvas rows per terminal row.
package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

var (
	ErrFrameSize       = errors.New("frame size mismatch")
	ErrSurfaceTooSmall = errors.New("surface too small")
)

// Surface draws a fixed width x height RGBA canvas onto a tcell screen,
// centred when the terminal is larger and clipped when it is smaller
type Surface struct {
	screen        tcell.Screen
	width, height int // Logical canvas size, never changes
	cols, rows    int // Current terminal size
	offX, offY    int
}

// Open initialises the real terminal and wraps it
func Open(width, height int) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewSurface(screen, width, height)
}

// NewSurface wraps an already initialised screen
func NewSurface(screen tcell.Screen, width, height int) (*Surface, error) {
	s := &Surface{screen: screen, width: width, height: height}
	screen.HideCursor()
	cols, rows := screen.Size()
	if err := s.Resize(cols, rows); err != nil {
		return nil, err
	}
	return s, nil
}

// Resize adapts the viewport to a new terminal size. The canvas keeps its
// logical size.
func (s *Surface) Resize(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("%w: %dx%d", ErrSurfaceTooSmall, cols, rows)
	}
	s.cols, s.rows = cols, rows
	s.offX = max(0, (cols-s.width)/2)
	s.offY = max(0, (rows-s.cellRows())/2)
	s.screen.Clear()
	return nil
}

func (s *Surface) cellRows() int {
	return (s.height + 1) / 2
}

// Present paints pix, which must hold exactly width*height RGBA pixels
func (s *Surface) Present(pix []byte) error {
	if len(pix) != s.width*s.height*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(pix), s.width*s.height*4)
	}
	rows := min(s.cellRows(), s.rows-s.offY)
	cols := min(s.width, s.cols-s.offX)
	for r := 0; r < rows; r++ {
		for x := 0; x < cols; x++ {
			top := s.pixel(pix, x, 2*r)
			bottom := s.pixel(pix, x, 2*r+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.screen.SetContent(s.offX+x, s.offY+r, halfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// pixel converts one canvas cell to a terminal colour. Rows past the bottom
// of an odd-height canvas read as black.
func (s *Surface) pixel(pix []byte, x, y int) tcell.Color {
	if y >= s.height {
		return tcell.NewRGBColor(0, 0, 0)
	}
	off := (y*s.width + x) * 4
	return tcell.NewRGBColor(int32(pix[off]), int32(pix[off+1]), int32(pix[off+2]))
}

// Close restores the terminal
func (s *Surface) Close() {
	s.screen.Fini()
}
