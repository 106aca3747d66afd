package canvas

import (
	"image/color"

	"github.com/olivierh59500/tube-walk-go/internal/tube"
)

// Drawable is anything with a position and a trail colour
type Drawable interface {
	Position() tube.Point
	Colour() color.RGBA
}

// Compose stamps each agent's current cell in slice order, so later agents
// win on shared pixels. Agents are only read.
func Compose[D Drawable](c *Canvas, agents []D) {
	for _, a := range agents {
		p := a.Position()
		c.Stamp(p.X, p.Y, a.Colour())
	}
}
