package entity

import (
	"fmt"

	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/prefabs"
)

// NewPlayer spawns the patrolling target the skeletons hunt.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, arena prefabs.ArenaSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Power:          spec.Power,
		AttackRange:    spec.AttackRange,
		AttackCooldown: spec.AttackCooldown,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:      arena.PlayerX,
		Y:      arena.PlayerY,
		Facing: 1,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  spec.Body.Width,
		Height: spec.Body.Height,
		Mass:   spec.Body.Mass,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Initial: spec.Health,
		Current: spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if arena.PatrolMax > arena.PatrolMin && spec.PatrolSpeed > 0 {
		if err := ecs.Add(w, entity, component.PatrolComponent.Kind(), &component.Patrol{
			MinX:  arena.PatrolMin,
			MaxX:  arena.PatrolMax,
			Speed: spec.PatrolSpeed,
			Dir:   1,
		}); err != nil {
			return 0, fmt.Errorf("player: add patrol: %w", err)
		}
	}

	return entity, nil
}
