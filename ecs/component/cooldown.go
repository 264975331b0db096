package component

// Cooldown is a frame-based countdown. The cooldown system removes it once
// Frames reaches zero.
type Cooldown struct {
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
