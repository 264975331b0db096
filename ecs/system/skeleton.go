package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/skeleton"
	"github.com/sirupsen/logrus"
)

// SkeletonSystem feeds physics and target signals into each skeleton's
// state machine and applies what it decides.
type SkeletonSystem struct {
	arena *skeleton.Arena
	log   logrus.FieldLogger
}

func NewSkeletonSystem(arena *skeleton.Arena, log logrus.FieldLogger) *SkeletonSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SkeletonSystem{arena: arena, log: log}
}

func (s *SkeletonSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	now := w.Now()
	player, target, hasPlayer := s.target(w)

	touching := make(map[ecs.Entity]ecs.Entity)
	for _, evt := range w.Events().Peek() {
		if evt.Type != ecs.EventContact {
			continue
		}
		if c, ok := evt.Data.(ecs.ContactEvent); ok {
			touching[c.Enemy] = c.Player
		}
	}

	ecs.ForEach2(w, component.SkeletonBrainComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, brain *component.SkeletonBrain, t *component.Transform) {
		sk := brain.Skeleton
		if sk == nil {
			return
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if body != nil && body.Body != nil {
			sk.Sync(body.Body.Position())
		}

		in := skeleton.Input{Target: target}
		if nav, ok := ecs.Get(w, e, component.AINavigationComponent.Kind()); ok {
			in.Sensors = skeleton.Sensors{
				GroundLeft:  nav.GroundLeft,
				GroundRight: nav.GroundRight,
				WallLeft:    nav.WallLeft,
				WallRight:   nav.WallRight,
			}
		}
		if !hasPlayer {
			// nothing to chase
			in.Target = skeleton.Target{Position: sk.Position(), Dead: true}
		}

		prevState, prevFlags := sk.State(), sk.Flags()
		intent := sk.BeforeUpdate(now, in)
		if other, ok := touching[e]; ok && other == player {
			sk.Contact(now, target)
		}

		applyIntent(intent, body, t)
		t.Facing = sk.Direction()
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			h.Current = sk.Health()
		}

		entry := s.log.WithFields(logrus.Fields{"entity": e, "skeleton": sk.ID()})
		if sk.State() != prevState {
			entry.WithFields(logrus.Fields{"from": prevState, "to": sk.State()}).Debug("skeleton: state change")
		}
		if f := sk.Flags(); f != prevFlags {
			entry.WithFields(logrus.Fields{
				"dead":         f.Dead,
				"hurting":      f.Hurting,
				"dormant":      f.Dormant,
				"transforming": f.Transforming,
			}).Debug("skeleton: flags")
		}

		s.applyEffects(w, e, player, sk.Drain(), entry)
		if sk.Disposed() {
			entry.Debug("skeleton: disposed")
			ecs.DestroyEntity(w, e)
		}
	})

	if s.arena == nil {
		return
	}
	if le, ok := ecs.First(w, component.LightingComponent.Kind()); ok {
		if lighting, ok := ecs.Get(w, le, component.LightingComponent.Kind()); ok {
			lighting.Global = s.arena.GlobalLight()
		}
	}
}

func (s *SkeletonSystem) target(w *ecs.World) (ecs.Entity, skeleton.Target, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, skeleton.Target{}, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, skeleton.Target{}, false
	}
	target := skeleton.Target{Position: cp.Vector{X: t.X, Y: t.Y}}
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		target.Dead = h.Dead()
	}
	return player, target, true
}

func applyIntent(intent skeleton.Intent, body *component.PhysicsBody, t *component.Transform) {
	if body == nil || body.Body == nil {
		if intent.Motion == skeleton.MotionPlace {
			t.X, t.Y = intent.Position.X, intent.Position.Y
		}
		return
	}
	vel := body.Body.Velocity()
	switch intent.Motion {
	case skeleton.MotionIdle:
		body.Body.SetVelocity(0, vel.Y)
	case skeleton.MotionWalk:
		body.Body.SetVelocity(intent.VelocityX, vel.Y)
	case skeleton.MotionPlace:
		body.Body.SetPosition(intent.Position)
		body.Body.SetVelocity(0, 0)
		t.X, t.Y = intent.Position.X, intent.Position.Y
	}
}

func (s *SkeletonSystem) applyEffects(w *ecs.World, e, player ecs.Entity, effects []skeleton.Effect, log logrus.FieldLogger) {
	for _, fx := range effects {
		switch fx.Kind {
		case skeleton.EffectStrike:
			h, ok := ecs.Get(w, player, component.HealthComponent.Kind())
			if !ok || h.Dead() {
				continue
			}
			h.Current -= fx.Strike.Power
			if h.Current < 0 {
				h.Current = 0
			}
			log.WithFields(logrus.Fields{"power": fx.Strike.Power, "health": h.Current}).Debug("skeleton: strike")
		case skeleton.EffectImpulse:
			imp, ok := ecs.Get(w, e, component.ImpulseComponent.Kind())
			if !ok {
				imp = &component.Impulse{}
				if err := ecs.Add(w, e, component.ImpulseComponent.Kind(), imp); err != nil {
					log.WithError(err).Error("skeleton: add impulse")
					continue
				}
			}
			imp.X += fx.Impulse.X
			imp.Y += fx.Impulse.Y
		case skeleton.EffectCollisionOn, skeleton.EffectCollisionOff:
			if b, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
				b.Ghost = fx.Kind == skeleton.EffectCollisionOff
			}
		case skeleton.EffectLightOn, skeleton.EffectLightOff:
			if l, ok := ecs.Get(w, e, component.LightComponent.Kind()); ok {
				l.On = fx.Kind == skeleton.EffectLightOn
			}
		case skeleton.EffectLightRemove:
			ecs.Remove(w, e, component.LightComponent.Kind())
		case skeleton.EffectDispose:
			// handled by the caller once every effect has been applied
		}
	}
}
