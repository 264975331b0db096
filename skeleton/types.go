package skeleton

import "github.com/jakecoffman/cp"

// ID identifies a skeleton within an Arena.
type ID uint64

type State string

const (
	StateRoam   State = "roam"
	StateChase  State = "chase"
	StateAttack State = "attack"
	StateFly    State = "fly"
)

// Transforming is the tri-state guard for a form change in progress.
type Transforming int

const (
	TransformNone Transforming = iota
	TransformIn
	TransformOut
)

func (t Transforming) String() string {
	switch t {
	case TransformIn:
		return "in"
	case TransformOut:
		return "out"
	default:
		return "false"
	}
}

type Flags struct {
	Dead         bool
	Hurting      bool
	Dormant      bool
	Transforming Transforming
}

// Runtime is the mutable per-instance bookkeeping, kept apart from Config.
type Runtime struct {
	LastDormantAt           float64
	DormancyStartedAt       float64
	DynamicDormancyDuration float64
	PathStartTime           float64
	Hits                    map[string]int
}

// Target is what the skeleton chases.
type Target struct {
	Position cp.Vector
	Dead     bool
}

// Sensors are the per-tick support and blocking signals derived from contact
// counts by the physics layer.
type Sensors struct {
	GroundLeft  bool
	GroundRight bool
	WallLeft    bool
	WallRight   bool
}

// Grounded reports whether any forward ground sensor has support.
func (s Sensors) Grounded() bool {
	return s.GroundLeft || s.GroundRight
}

// Ground reports support ahead in direction dir.
func (s Sensors) Ground(dir int) bool {
	if dir < 0 {
		return s.GroundLeft
	}
	return s.GroundRight
}

// Blocked reports an edge or a wall in direction dir.
func (s Sensors) Blocked(dir int) bool {
	if dir < 0 {
		return !s.GroundLeft || s.WallLeft
	}
	return !s.GroundRight || s.WallRight
}

type Input struct {
	Target  Target
	Sensors Sensors
}

type Motion int

const (
	// MotionNone leaves the body alone.
	MotionNone Motion = iota
	// MotionIdle stops horizontal movement.
	MotionIdle
	// MotionWalk sets horizontal velocity to VelocityX.
	MotionWalk
	// MotionPlace puts the body at Position.
	MotionPlace
)

// Intent is the movement decision of one tick.
type Intent struct {
	Motion    Motion
	VelocityX float64
	Position  cp.Vector
}

// DamageSource describes an incoming or outgoing hit. Direction is the sign
// of the hit's horizontal travel.
type DamageSource struct {
	Power     float64
	Type      string
	Direction int
}

// DamageTypeSkeleton marks strikes dealt by skeletons.
const DamageTypeSkeleton = "skeleton"

type EffectKind int

const (
	EffectStrike EffectKind = iota + 1
	EffectImpulse
	EffectCollisionOn
	EffectCollisionOff
	EffectLightOn
	EffectLightOff
	EffectLightRemove
	EffectDispose
)

// Effect is a side effect the host applies on the skeleton's behalf.
type Effect struct {
	Kind    EffectKind
	Strike  DamageSource
	Impulse cp.Vector
}
