package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/prefabs"
	"github.com/milk9111/boneyard/skeleton"
)

// NewSkeleton spawns a skeleton at pos. cfg is usually spec.ToConfig(),
// built once and shared by every skeleton of a scene.
func NewSkeleton(w *ecs.World, spec prefabs.SkeletonSpec, cfg skeleton.Config, arena *skeleton.Arena, id skeleton.ID, pos cp.Vector, opts ...skeleton.Option) (ecs.Entity, error) {
	sk := skeleton.New(id, cfg, pos, arena, opts...)

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.SkeletonTagComponent.Kind(), &component.SkeletonTag{}); err != nil {
		return 0, fmt.Errorf("skeleton: add tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.SkeletonBrainComponent.Kind(), &component.SkeletonBrain{Skeleton: sk}); err != nil {
		return 0, fmt.Errorf("skeleton: add brain: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		Facing: sk.Direction(),
	}); err != nil {
		return 0, fmt.Errorf("skeleton: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  spec.Body.Width,
		Height: spec.Body.Height,
		Mass:   spec.Body.Mass,
	}); err != nil {
		return 0, fmt.Errorf("skeleton: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.AINavigationComponent.Kind(), &component.AINavigation{}); err != nil {
		return 0, fmt.Errorf("skeleton: add navigation: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Initial: cfg.MaxHealth,
		Current: sk.Health(),
	}); err != nil {
		return 0, fmt.Errorf("skeleton: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.LightComponent.Kind(), &component.Light{Radius: spec.LightRadius}); err != nil {
		return 0, fmt.Errorf("skeleton: add light: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), animationFromClips(cfg.Clips)); err != nil {
		return 0, fmt.Errorf("skeleton: add animation: %w", err)
	}

	return entity, nil
}

func animationFromClips(clips map[string]skeleton.Clip) *component.Animation {
	defs := make(map[string]component.AnimationDef, len(clips))
	for name, c := range clips {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: c.Frames,
			FPS:        c.FPS,
			Loop:       c.Loop,
		}
	}
	return &component.Animation{Defs: defs}
}
