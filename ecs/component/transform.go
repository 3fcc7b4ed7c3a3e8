package component

import "github.com/jakecoffman/cp"

// Transform places an instance in world units. Z is carried for the renderer
// and is not touched by the simulation.
type Transform struct {
	Position cp.Vector
	Z        float64
}

var TransformComponent = NewComponent[Transform]()
