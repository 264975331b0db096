package system

import (
	"math"

	"github.com/milk9111/boneyard/common"
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/skeleton"
	"github.com/sirupsen/logrus"
)

// DamageTypePlayer marks strikes dealt by the player.
const DamageTypePlayer = "player"

// CombatSystem lets the player strike the nearest skeleton in range whenever
// its attack cooldown has run out.
type CombatSystem struct {
	log logrus.FieldLogger
}

func NewCombatSystem(log logrus.FieldLogger) *CombatSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CombatSystem{log: log}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	now := w.Now()
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, pt *component.Transform) {
		if ecs.Has(w, e, component.CooldownComponent.Kind()) {
			return
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
			return
		}

		victim, dx := s.nearest(w, pt, p.AttackRange)
		if victim == nil {
			return
		}
		victim.Hit(now, &skeleton.DamageSource{
			Power:     p.Power,
			Type:      DamageTypePlayer,
			Direction: int(common.Sign(dx)),
		})
		s.log.WithFields(logrus.Fields{
			"skeleton": victim.ID(),
			"health":   victim.Health(),
		}).Debug("combat: player hit")

		if p.AttackCooldown > 0 {
			if err := ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Frames: p.AttackCooldown}); err != nil {
				s.log.WithError(err).Error("combat: add cooldown")
			}
		}
	})
}

func (s *CombatSystem) nearest(w *ecs.World, from *component.Transform, reach float64) (*skeleton.Skeleton, float64) {
	var (
		best *skeleton.Skeleton
		dx   float64
	)
	bestDist := math.Inf(1)
	ecs.ForEach2(w, component.SkeletonBrainComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, brain *component.SkeletonBrain, t *component.Transform) {
		sk := brain.Skeleton
		if sk == nil || sk.Flags().Dead {
			return
		}
		d := math.Hypot(t.X-from.X, t.Y-from.Y)
		if d <= reach && d < bestDist {
			best, bestDist, dx = sk, d, t.X-from.X
		}
	})
	return best, dx
}
