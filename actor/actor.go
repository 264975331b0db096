// Package actor holds the capabilities shared by every simulated creature:
// health, facing and position, bound to species-specific config, runtime and
// flag types.
package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/common"
)

// Actor composes the shared capabilities with per-species data. C is the
// immutable tunables, R the mutable runtime bookkeeping and F the flag set.
type Actor[C any, R any, F any] struct {
	Config  C
	Runtime R
	Flags   F

	Health    float64
	MaxHealth float64
	Direction int
	Position  cp.Vector
}

func New[C any, R any, F any](cfg C, maxHealth float64, pos cp.Vector) Actor[C, R, F] {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	return Actor[C, R, F]{
		Config:    cfg,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Direction: 1,
		Position:  pos,
	}
}

// Damage subtracts power from health, kept within [0, MaxHealth], and returns
// the remaining health.
func (a *Actor[C, R, F]) Damage(power float64) float64 {
	a.Health = common.Clamp(a.Health-power, 0, a.MaxHealth)
	return a.Health
}

func (a *Actor[C, R, F]) HealthFraction() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return common.Clamp(a.Health/a.MaxHealth, 0, 1)
}

// Face points the actor along the sign of dx. A zero dx keeps the current
// direction.
func (a *Actor[C, R, F]) Face(dx float64) {
	switch common.Sign(dx) {
	case 1:
		a.Direction = 1
	case -1:
		a.Direction = -1
	}
}

func (a *Actor[C, R, F]) Flip() {
	a.Direction = -a.Direction
	if a.Direction == 0 {
		a.Direction = 1
	}
}
