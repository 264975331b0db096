package component

// AINavigation holds the probe contacts measured during the last physics
// step.
type AINavigation struct {
	GroundLeft  bool
	GroundRight bool
	WallLeft    bool
	WallRight   bool
}

var AINavigationComponent = NewComponent[AINavigation]()
