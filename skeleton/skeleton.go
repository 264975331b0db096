// Package skeleton implements the Skeleton enemy: a grounded walker that
// roams, chases and attacks, naps now and then, and escapes into a flying
// ethereal form when badly hurt.
//
// All methods take the simulation time in milliseconds. Waiting for an
// animation to finish is modelled as a pending edge that fires at the start
// of the first BeforeUpdate at or after its deadline.
package skeleton

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/actor"
	"github.com/milk9111/boneyard/common"
	"github.com/milk9111/boneyard/flightpath"
)

type Skeleton struct {
	actor.Actor[Config, Runtime, Flags]

	id    ID
	arena *Arena
	rng   common.Source

	state State

	clip        string
	clipStarted float64

	path       *flightpath.Path
	pathOrigin cp.Vector
	inPos      *cp.Vector
	outPos     *cp.Vector

	pending  []edge
	effects  []Effect
	disposed bool
}

type Option func(*Skeleton)

// WithSource replaces the crypto-backed randomness, e.g. with a seeded
// common.Mulberry32 for reproducible runs.
func WithSource(src common.Source) Option {
	return func(s *Skeleton) {
		if src != nil {
			s.rng = src
		}
	}
}

func New(id ID, cfg Config, pos cp.Vector, arena *Arena, opts ...Option) *Skeleton {
	cfg = cfg.normalized()
	if arena == nil {
		arena = NewArena()
	}
	s := &Skeleton{
		Actor: actor.New[Config, Runtime, Flags](cfg, cfg.MaxHealth, pos),
		id:    id,
		arena: arena,
		rng:   common.Crypto,
		state: StateRoam,
	}
	s.Actor.Runtime.Hits = make(map[string]int)
	for _, opt := range opts {
		opt(s)
	}
	s.play(AnimIdle, false, 0)
	return s
}

func (s *Skeleton) ID() ID { return s.id }
func (s *Skeleton) State() State { return s.state }
func (s *Skeleton) Flags() Flags { return s.Actor.Flags }
func (s *Skeleton) Runtime() Runtime { return s.Actor.Runtime }
func (s *Skeleton) Position() cp.Vector { return s.Actor.Position }
func (s *Skeleton) Direction() int { return s.Actor.Direction }
func (s *Skeleton) Health() float64 { return s.Actor.Health }
func (s *Skeleton) Disposed() bool { return s.disposed }

// Animation returns the current clip and the time it started.
func (s *Skeleton) Animation() (string, float64) {
	return s.clip, s.clipStarted
}

// PathOrigin is the drifting anchor of the flight path.
func (s *Skeleton) PathOrigin() cp.Vector { return s.pathOrigin }

// PhysicsDriven reports whether the physics body, rather than the skeleton,
// currently decides where it is.
func (s *Skeleton) PhysicsDriven() bool {
	if s.Actor.Flags.Dead {
		return s.state != StateFly
	}
	return s.state != StateFly && s.Actor.Flags.Transforming != TransformOut
}

// Sync records the body position measured by physics.
func (s *Skeleton) Sync(pos cp.Vector) {
	if s.PhysicsDriven() {
		s.Actor.Position = pos
	}
}

// Drain returns and clears the effects accumulated since the last call.
func (s *Skeleton) Drain() []Effect {
	if len(s.effects) == 0 {
		return nil
	}
	out := s.effects
	s.effects = nil
	return out
}

// BeforeUpdate runs one tick of decision logic.
func (s *Skeleton) BeforeUpdate(now float64, in Input) Intent {
	s.resolveEdges(now)

	if s.Actor.Flags.Dead {
		if s.state == StateFly && s.outPos != nil {
			return Intent{Motion: MotionPlace, Position: *s.outPos}
		}
		return Intent{}
	}
	if s.Actor.Flags.Hurting {
		return Intent{}
	}

	grounded := s.state != StateFly
	switch s.Actor.Flags.Transforming {
	case TransformNone:
		if grounded {
			s.decide(now, in.Target)
			return s.resolveMovement(now, in)
		}
		if s.distance(in.Target) > s.Config.FlightLeaveDistance {
			s.Transform(TransformOut, now)
			return s.holdEntry()
		}
		return s.fly(now, in.Target)
	case TransformOut:
		return s.holdEntry()
	default:
		return Intent{Motion: MotionIdle}
	}
}

func (s *Skeleton) distance(t Target) float64 {
	return s.Actor.Position.Distance(t.Position)
}

// decide picks between roam and chase. An attack in progress keeps its state
// until its clip completes.
func (s *Skeleton) decide(now float64, t Target) {
	if s.state == StateAttack {
		return
	}
	if s.distance(t) <= s.Config.ChaseDistance && !t.Dead {
		s.state = StateChase
		if s.Actor.Flags.Dormant {
			s.Actor.Flags.Dormant = false
			s.stamp(&s.Actor.Runtime.LastDormantAt, now)
		}
		return
	}
	s.state = StateRoam
}

func (s *Skeleton) resolveMovement(now float64, in Input) Intent {
	if s.state == StateChase || s.state == StateAttack {
		s.Face(in.Target.Position.X - s.Actor.Position.X)
	}
	if s.state == StateAttack {
		return Intent{Motion: MotionIdle}
	}

	rt := &s.Actor.Runtime
	if s.Actor.Flags.Dormant && now-rt.DormancyStartedAt > rt.DynamicDormancyDuration {
		s.Actor.Flags.Dormant = false
		s.stamp(&rt.LastDormantAt, now)
		s.Actor.Direction = common.ChooseFrom(s.rng, []int{-1, 1})
	}
	if s.Actor.Flags.Dormant {
		return Intent{Motion: MotionIdle}
	}

	if s.state == StateRoam &&
		now-rt.LastDormantAt > s.Config.DormancyCooldown &&
		common.ChanceFrom(s.rng, s.Config.DormancyProbability) {
		s.Actor.Flags.Dormant = true
		s.stamp(&rt.DormancyStartedAt, now)
		rt.DynamicDormancyDuration = common.RandFrom(s.rng, s.Config.MinDormancyDuration, s.Config.MaxDormancyDuration)
		s.play(AnimIdle, false, now)
		return Intent{Motion: MotionIdle}
	}

	if !in.Sensors.Grounded() {
		return Intent{}
	}
	if s.state != StateChase && in.Sensors.Blocked(s.Actor.Direction) {
		s.Flip()
	}
	if s.state == StateChase && !in.Sensors.Ground(s.Actor.Direction) {
		s.play(AnimIdle, true, now)
		return Intent{Motion: MotionIdle}
	}
	s.play(AnimWalk, true, now)
	return Intent{Motion: MotionWalk, VelocityX: float64(s.Actor.Direction) * s.Config.Speed}
}

func (s *Skeleton) fly(now float64, t Target) Intent {
	if t.Dead {
		s.Transform(TransformOut, now)
		return s.holdEntry()
	}

	offset := s.path.Next(now - s.Actor.Runtime.PathStartTime)
	next := s.pathOrigin.Add(offset)
	s.Face(next.X - s.Actor.Position.X)
	s.Actor.Position = next

	step := s.Config.FlightDrift
	s.pathOrigin.X += step * common.Sign(t.Position.X-s.pathOrigin.X)
	s.pathOrigin.Y += step * common.Sign(t.Position.Y-s.pathOrigin.Y)

	return Intent{Motion: MotionPlace, Position: next}
}

// holdEntry pins the skeleton at the point where it took flight.
func (s *Skeleton) holdEntry() Intent {
	if s.inPos == nil {
		return Intent{Motion: MotionIdle}
	}
	s.Actor.Position = *s.inPos
	return Intent{Motion: MotionPlace, Position: *s.inPos}
}

// stamp writes now into a timestamp without ever moving it backwards.
func (s *Skeleton) stamp(field *float64, now float64) {
	if now > *field {
		*field = now
	}
}

func (s *Skeleton) play(name string, ignoreIfPlaying bool, now float64) {
	if ignoreIfPlaying && s.clip == name {
		return
	}
	s.clip = name
	s.clipStarted = now
}

func (s *Skeleton) emit(e Effect) {
	s.effects = append(s.effects, e)
}
