package skeleton

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/common"
)

// Contact handles the start of a touch with the target. The host calls it
// once per touch, not every tick of overlap. It reports whether a strike was
// emitted.
func (s *Skeleton) Contact(now float64, t Target) bool {
	f := s.Actor.Flags
	if f.Dead || f.Hurting || t.Dead || s.state == StateAttack {
		return false
	}
	if f.Transforming != TransformNone {
		return false
	}

	s.Face(t.Position.X - s.Actor.Position.X)
	if s.state == StateFly {
		s.strike()
		return true
	}

	s.state = StateAttack
	if s.Actor.Flags.Dormant {
		s.Actor.Flags.Dormant = false
		s.stamp(&s.Actor.Runtime.LastDormantAt, now)
	}
	s.play(AnimAttack, false, now)
	s.strike()
	s.schedule(edgeAttackDone, now, AnimAttack)
	return true
}

func (s *Skeleton) strike() {
	s.emit(Effect{
		Kind: EffectStrike,
		Strike: DamageSource{
			Power:     s.Config.Power,
			Type:      DamageTypeSkeleton,
			Direction: s.Actor.Direction,
		},
	})
}

// Hit applies incoming damage. A nil source is ignored.
func (s *Skeleton) Hit(now float64, src *DamageSource) {
	if src == nil || s.Actor.Flags.Dead {
		return
	}
	s.Actor.Runtime.Hits[src.Type]++

	if src.Direction != 0 {
		s.Face(-float64(src.Direction))
	}

	if s.Damage(src.Power) <= 0 {
		s.Die(now)
		return
	}

	s.hurt(now)
	if s.HealthFraction() <= s.Config.EtherealFormThreshold &&
		common.ChanceFrom(s.rng, s.etherealOdds()) {
		s.Transform(TransformIn, now)
	}
}

func (s *Skeleton) etherealOdds() float64 {
	if s.Config.EtherealOdds != nil {
		return s.Config.EtherealOdds.Probability(s.HealthFraction())
	}
	return s.Config.EtherealFormProbability
}

func (s *Skeleton) hurt(now float64) {
	s.Actor.Flags.Hurting = true
	k := s.Config.Knockback
	s.emit(Effect{
		Kind:    EffectImpulse,
		Impulse: cp.Vector{X: -float64(s.Actor.Direction) * k, Y: -k / 2},
	})
	if s.Actor.Flags.Transforming == TransformNone {
		s.play(AnimHurt, false, now)
	}
	s.schedule(edgeHurtDone, now, AnimHurt)
}

// Die kills the skeleton. Repeated calls are no-ops.
func (s *Skeleton) Die(now float64) {
	if s.Actor.Flags.Dead {
		return
	}
	if s.state == StateFly || s.arena.IsFlying(s.id) {
		pos := s.Actor.Position
		s.outPos = &pos
		s.arena.Unregister(s.id)
		s.arena.RestoreLighting()
	}

	s.Actor.Health = 0
	s.Actor.Flags = Flags{Dead: true}
	s.pending = nil
	s.emit(Effect{Kind: EffectLightRemove})
	s.emit(Effect{Kind: EffectCollisionOff})
	s.play(AnimDeath, false, now)
	s.schedule(edgeDisposed, now, AnimDeath)
}
