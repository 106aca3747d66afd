// Package canvas holds the RGBA pixel buffer the tubes are stamped into.
package canvas

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a row-major RGBA buffer, 4 bytes per cell
type Canvas struct {
	Width, Height int
	Pix           []byte
}

// New allocates a transparent width x height canvas
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Stamp overwrites the cell under (x, y) with c. Coordinates are floored and
// folded into a flat index; anything that lands outside the buffer is skipped.
func (c *Canvas) Stamp(x, y float64, col color.RGBA) {
	i := int(math.Floor(y))*c.Width + int(math.Floor(x))
	off := i * 4
	if off < 0 || off+4 > len(c.Pix) {
		return
	}
	c.Pix[off] = col.R
	c.Pix[off+1] = col.G
	c.Pix[off+2] = col.B
	c.Pix[off+3] = col.A
}

// At returns the colour stored at cell (x, y)
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return color.RGBA{}
	}
	off := (y*c.Width + x) * 4
	return color.RGBA{c.Pix[off], c.Pix[off+1], c.Pix[off+2], c.Pix[off+3]}
}

// Fill sets every cell to col
func (c *Canvas) Fill(col color.RGBA) {
	for off := 0; off+4 <= len(c.Pix); off += 4 {
		c.Pix[off] = col.R
		c.Pix[off+1] = col.G
		c.Pix[off+2] = col.B
		c.Pix[off+3] = col.A
	}
}

// Image wraps the buffer without copying
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}
