package component

// Player holds the sandbox target's attack tuning.
type Player struct {
	Power          float64
	AttackRange    float64
	AttackCooldown int
}

var PlayerComponent = NewComponent[Player]()

// Patrol moves an entity back and forth between two x coordinates.
type Patrol struct {
	MinX  float64
	MaxX  float64
	Speed float64
	Dir   int
}

var PatrolComponent = NewComponent[Patrol]()
