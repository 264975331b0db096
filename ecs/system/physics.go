package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
)

// PhysicsStep is the fixed step handed to the space each tick, in seconds.
const PhysicsStep = ecs.TickMillis / 1000

type PhysicsSystem struct {
	world *ecs.PhysicsWorld
}

func NewPhysicsSystem(pw *ecs.PhysicsWorld) *PhysicsSystem {
	if pw == nil {
		pw = ecs.NewPhysicsWorld()
	}
	return &PhysicsSystem{world: pw}
}

func (ps *PhysicsSystem) World() *ecs.PhysicsWorld {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanup(w)
	ps.syncEntities(w)
	ps.applyImpulses(w)

	ps.world.Step(PhysicsStep)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		if b.Static || b.Body == nil {
			return
		}
		pos := b.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})

	ecs.ForEach(w, component.AINavigationComponent.Kind(), func(e ecs.Entity, nav *component.AINavigation) {
		if probes, ok := ps.world.Probes(e); ok {
			*nav = probes
		}
	})

	for _, c := range ps.world.Contacts() {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: c})
	}
}

// cleanup removes bodies whose entity was destroyed.
func (ps *PhysicsSystem) cleanup(w *ecs.World) {
	for _, e := range ps.world.Bodies() {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			ps.world.Remove(e)
		}
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		if !ps.world.HasBody(e) {
			if b.Static {
				ps.world.AddStatic(e, t, b)
				return
			}
			role := ecs.RoleDynamic
			switch {
			case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
				role = ecs.RolePlayer
			case ecs.Has(w, e, component.SkeletonTagComponent.Kind()):
				role = ecs.RoleEnemy
			}
			ps.world.AddDynamic(e, t, b, role, ecs.Has(w, e, component.AINavigationComponent.Kind()))
			return
		}
		if !b.Static {
			ps.world.SetGhost(e, b.Ghost)
		}
	})
}

func (ps *PhysicsSystem) applyImpulses(w *ecs.World) {
	for _, e := range w.Query(component.ImpulseComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		imp, _ := ecs.Get(w, e, component.ImpulseComponent.Kind())
		b, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if imp != nil && b != nil && b.Body != nil && !b.Static {
			b.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: imp.X, Y: imp.Y}, b.Body.Position())
		}
		ecs.Remove(w, e, component.ImpulseComponent.Kind())
	}
}
