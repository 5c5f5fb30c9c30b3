package model

// Direction is a snake heading.
type Direction int

// The four headings. Their order is the one used when a heading is drawn at
// random.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in draw order.
var Directions = []Direction{Up, Right, Down, Left}

// Opposite returns the heading that would reverse d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit step for d. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
