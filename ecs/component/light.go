package component

// Light is a point light carried by an entity.
type Light struct {
	Radius float64
	On     bool
}

var LightComponent = NewComponent[Light]()

// Lighting is the singleton ambient light state of the scene.
type Lighting struct {
	Global bool
}

var LightingComponent = NewComponent[Lighting]()
