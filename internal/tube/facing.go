package tube

// Facing is one of the four cardinal headings a tube can move along
type Facing int

const (
	North Facing = iota
	South
	East
	West
)

// Rotate is a 90 degree turn command
type Rotate int

const (
	Left Rotate = iota
	Right
)

func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

func (r Rotate) String() string {
	if r == Left {
		return "left"
	}
	return "right"
}

// Rotate returns the heading after turning 90 degrees in direction r
func (f Facing) Rotate(r Rotate) Facing {
	if r == Left {
		switch f {
		case North:
			return West
		case East:
			return North
		case South:
			return East
		case West:
			return South
		}
		return f
	}
	switch f {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return f
}

// Unit returns the unit step for the heading, screen coordinates (y grows downward)
func (f Facing) Unit() Point {
	switch f {
	case North:
		return Point{0, -1}
	case South:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	case West:
		return Point{-1, 0}
	}
	return Point{}
}
