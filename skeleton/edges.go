package skeleton

import "sort"

type edgeKind int

const (
	edgeAttackDone edgeKind = iota + 1
	edgeHurtDone
	edgeTransformInDone
	edgeTransformOutDone
	edgeDisposed
)

// edge is a transition waiting for an animation to finish.
type edge struct {
	kind edgeKind
	at   float64
}

// schedule queues kind to fire once clip has played from now. Any pending
// edge of the same kind is replaced.
func (s *Skeleton) schedule(kind edgeKind, now float64, clip string) {
	s.cancel(kind)
	s.pending = append(s.pending, edge{kind: kind, at: now + s.Config.clip(clip).Duration()})
}

func (s *Skeleton) cancel(kind edgeKind) {
	kept := s.pending[:0]
	for _, e := range s.pending {
		if e.kind != kind {
			kept = append(kept, e)
		}
	}
	s.pending = kept
}

func (s *Skeleton) resolveEdges(now float64) {
	if len(s.pending) == 0 {
		return
	}
	var due []edge
	kept := s.pending[:0]
	for _, e := range s.pending {
		if e.at <= now {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	s.pending = kept
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, e := range due {
		s.fire(e.kind, now)
	}
}

// fire applies a completed transition. Each case re-checks the flags it
// depends on since they may have changed while the clip played.
func (s *Skeleton) fire(kind edgeKind, now float64) {
	f := &s.Actor.Flags
	switch kind {
	case edgeAttackDone:
		if f.Dead || f.Transforming != TransformNone || s.state != StateAttack {
			return
		}
		s.state = StateRoam
		s.play(AnimIdle, false, now)
	case edgeHurtDone:
		if f.Dead || !f.Hurting {
			return
		}
		f.Hurting = false
		switch {
		case f.Transforming != TransformNone:
		case s.state == StateFly:
			s.play(AnimFlyIdle, false, now)
		default:
			s.play(AnimIdle, false, now)
		}
	case edgeTransformInDone:
		if f.Dead || f.Transforming != TransformIn {
			return
		}
		s.finishTransformIn(now)
	case edgeTransformOutDone:
		if f.Dead || f.Transforming != TransformOut {
			return
		}
		s.finishTransformOut(now)
	case edgeDisposed:
		if s.disposed {
			return
		}
		s.disposed = true
		s.emit(Effect{Kind: EffectDispose})
	}
}
