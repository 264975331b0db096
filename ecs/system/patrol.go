package system

import (
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
)

// PatrolSystem walks patrolling bodies between their bounds.
type PatrolSystem struct{}

func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{}
}

func (s *PatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PatrolComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Patrol, b *component.PhysicsBody, t *component.Transform) {
		if b.Body == nil {
			return
		}
		vel := b.Body.Velocity()
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
			b.Body.SetVelocity(0, vel.Y)
			return
		}
		if p.Dir == 0 {
			p.Dir = 1
		}
		if t.X >= p.MaxX {
			p.Dir = -1
		} else if t.X <= p.MinX {
			p.Dir = 1
		}
		t.Facing = p.Dir
		b.Body.SetVelocity(float64(p.Dir)*p.Speed, vel.Y)
	})
}
