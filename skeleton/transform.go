package skeleton

import "github.com/milk9111/boneyard/flightpath"

// Transform starts a form change. TransformIn is only valid from the ground
// and TransformOut only from flight; requests that do not fit the current
// form, or arrive mid-change, are ignored.
func (s *Skeleton) Transform(dir Transforming, now float64) {
	f := &s.Actor.Flags
	if f.Dead || f.Transforming != TransformNone {
		return
	}
	switch dir {
	case TransformIn:
		if s.state == StateFly {
			return
		}
		f.Transforming = TransformIn
		f.Dormant = false
		if s.state == StateAttack {
			s.cancel(edgeAttackDone)
			s.state = StateRoam
		}
		pos := s.Actor.Position
		s.inPos = &pos
		s.arena.Register(s.id)
		s.play(AnimTransformIn, false, now)
		s.schedule(edgeTransformInDone, now, AnimTransformIn)
	case TransformOut:
		if s.state != StateFly {
			return
		}
		f.Transforming = TransformOut
		pos := s.Actor.Position
		s.outPos = &pos
		s.arena.Unregister(s.id)
		s.play(AnimTransformOut, false, now)
		s.schedule(edgeTransformOutDone, now, AnimTransformOut)
	}
}

func (s *Skeleton) finishTransformIn(now float64) {
	s.state = StateFly
	s.arena.LightsOff()
	s.emit(Effect{Kind: EffectLightOn})
	s.emit(Effect{Kind: EffectCollisionOff})

	p := s.Config.Path
	s.pathOrigin = s.Actor.Position
	s.path = flightpath.New(s.pathOrigin, p.Amplitude, p.Period, p.Wobble)
	s.Actor.Runtime.PathStartTime = now
	s.play(AnimFlyIdle, false, now)
	s.Actor.Flags.Transforming = TransformNone
}

func (s *Skeleton) finishTransformOut(now float64) {
	s.state = StateRoam
	s.arena.RestoreLighting()
	s.emit(Effect{Kind: EffectLightOff})
	s.emit(Effect{Kind: EffectCollisionOn})

	if s.inPos != nil {
		s.Actor.Position = *s.inPos
	}
	s.path = nil
	s.inPos = nil
	s.outPos = nil
	s.play(AnimIdle, false, now)
	s.Actor.Flags.Transforming = TransformNone
}

// Flying reports whether the skeleton is in its flying form.
func (s *Skeleton) Flying() bool {
	return s.state == StateFly
}
