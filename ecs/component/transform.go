package component

// Transform is the world-space center of an entity. Y grows downwards.
type Transform struct {
	X      float64
	Y      float64
	Facing int
}

var TransformComponent = NewComponent[Transform]()
