package tube

import (
	"image/color"
	"math/rand"
	"time"
)

// Rand is the random source a tube draws its turns from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Config holds the fixed parameters of a tube
type Config struct {
	Speed      float64 // Distance moved per update tick
	Direction  Facing  // Initial heading
	Start      Point   // Initial position
	TurnChance float64 // Probability of a 90 degree turn per tick, in [0,1]
	Colour     color.RGBA
}

// Tube struct: Represents one colored agent doing a biased random walk
type Tube struct {
	speed      float64
	direction  Facing
	current    Point
	last       Point // Position before the most recent move
	turnChance float64
	colour     color.RGBA
	width      float64 // Canvas bounds used for edge correction
	height     float64
	rng        Rand
}

// New creates a tube on a width x height canvas. A nil rng gets a private
// time-seeded source.
func New(cfg Config, width, height int, rng Rand) *Tube {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Tube{
		speed:      cfg.Speed,
		direction:  cfg.Direction,
		current:    cfg.Start,
		last:       cfg.Start,
		turnChance: cfg.TurnChance,
		colour:     cfg.Colour,
		width:      float64(width),
		height:     float64(height),
		rng:        rng,
	}
}

// Increment advances the tube by one step: move, maybe turn, then steer away
// from the edge it is heading into.
func (t *Tube) Increment() {
	t.last = t.current
	t.moveForward()
	t.attemptTurn()
	t.fixOutOfBounds()
}

func (t *Tube) moveForward() {
	t.current = t.current.Add(t.direction.Unit().Mul(t.speed))
}

func (t *Tube) attemptTurn() {
	if t.rng.Float64() >= t.turnChance {
		return
	}
	r := Right
	if t.rng.Intn(2) == 0 {
		r = Left
	}
	t.direction = t.direction.Rotate(r)
}

// fixOutOfBounds flips the heading when the tube sits past an edge and is still
// moving toward it. Position is left alone.
func (t *Tube) fixOutOfBounds() {
	switch {
	case t.current.X < 1 && t.direction == West:
		t.direction = East
	case t.current.X > t.width && t.direction == East:
		t.direction = West
	case t.current.Y < 1 && t.direction == North:
		t.direction = South
	case t.current.Y > t.height && t.direction == South:
		t.direction = North
	}
}

// Position returns the current position
func (t *Tube) Position() Point { return t.current }

// LastPosition returns the position before the most recent Increment
func (t *Tube) LastPosition() Point { return t.last }

// Direction returns the current heading
func (t *Tube) Direction() Facing { return t.direction }

// Colour returns the trail colour
func (t *Tube) Colour() color.RGBA { return t.colour }

// Speed returns the distance moved per tick
func (t *Tube) Speed() float64 { return t.speed }

// TurnChance returns the per-tick turn probability
func (t *Tube) TurnChance() float64 { return t.turnChance }
