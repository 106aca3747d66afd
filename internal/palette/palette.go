// Package palette picks trail colours for tubes.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/aquilax/go-perlin"
)

// Perlin noise parameters
const (
	alpha      = 2.0
	beta       = 2.0
	octaves    = 3
	hueStep    = 137.5 // Golden angle keeps neighbouring colours apart
	hueWobble  = 90.0
	noiseScale = 0.37
)

// Palette walks the hue wheel, nudged by 1D Perlin noise
type Palette struct {
	noise *perlin.Perlin
	base  float64
	n     int
}

// New creates a palette. The same seed always yields the same colour sequence.
func New(seed int64) *Palette {
	p := &Palette{noise: perlin.NewPerlin(alpha, beta, octaves, seed)}
	p.base = math.Mod(math.Abs(p.noise.Noise1D(0.5))*360, 360)
	return p
}

// Next returns the next opaque colour
func (p *Palette) Next() color.RGBA {
	x := float64(p.n)*noiseScale + 0.5
	h := p.base + float64(p.n)*hueStep + p.noise.Noise1D(x)*hueWobble
	p.n++
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := hsvToRGB(h, 0.75, 1)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// ParseHex reads "#rrggbb" or "#rrggbbaa" (leading # optional). Alpha
// defaults to opaque.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q: want 6 or 8 hex digits", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustHex is ParseHex for literals
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
