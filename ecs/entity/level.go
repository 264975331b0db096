package entity

import (
	"fmt"

	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/prefabs"
)

// LoadArenaToWorld creates one static entity per solid and the ambient
// lighting singleton.
func LoadArenaToWorld(w *ecs.World, arena prefabs.ArenaSpec) error {
	lighting := ecs.CreateEntity(w)
	if err := ecs.Add(w, lighting, component.LightingComponent.Kind(), &component.Lighting{Global: true}); err != nil {
		return fmt.Errorf("arena: add lighting: %w", err)
	}

	for i, s := range arena.Solids {
		if s.Width <= 0 || s.Height <= 0 {
			continue
		}
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
			return fmt.Errorf("arena: solid %d: add tag: %w", i, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: s.X, Y: s.Y}); err != nil {
			return fmt.Errorf("arena: solid %d: add transform: %w", i, err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:  s.Width,
			Height: s.Height,
			Static: true,
		}); err != nil {
			return fmt.Errorf("arena: solid %d: add physics body: %w", i, err)
		}
	}
	return nil
}
