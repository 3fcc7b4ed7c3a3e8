package component

import "github.com/jakecoffman/cp"

// Direction is the facing of an instance. The numeric value indexes the
// per-direction animation table.
type Direction int

const (
	South Direction = iota
	West
	North
	East
)

// DirectionCount is the size of a direction-indexed table.
const DirectionCount = 4

func (d Direction) String() string {
	switch d {
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= South && d <= East
}

// ResolveDirection picks a facing from a velocity using the dominant axis.
// Horizontal wins only when strictly larger; ties, including the zero vector,
// fall through to the vertical branch. Negative x maps to East, matching the
// sprite sheet's row order.
func ResolveDirection(v cp.Vector) Direction {
	if v.X*v.X > v.Y*v.Y {
		if v.X < 0 {
			return East
		}
		return West
	}
	if v.Y < 0 {
		return South
	}
	return North
}

// Facing stores the direction an instance currently faces.
type Facing struct {
	Direction Direction
}

var FacingComponent = NewComponent[Facing]()
