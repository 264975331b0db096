package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Static   bool

	// Ghost turns the body into a gravity-free sensor that passes through
	// solids.
	Ghost bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Impulse is a one-shot impulse applied at the body center by the next
// physics step.
type Impulse struct {
	X float64
	Y float64
}

var ImpulseComponent = NewComponent[Impulse]()
