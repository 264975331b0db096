package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/ecs/component"
)

// Gravity in px/s², Y down.
const Gravity = 900.0

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeDynamic
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypeProbe
)

// BodyRole selects the collision type of a dynamic body.
type BodyRole int

const (
	RoleDynamic BodyRole = iota
	RolePlayer
	RoleEnemy
)

type probeKind int

const (
	probeGroundLeft probeKind = iota
	probeGroundRight
	probeWallLeft
	probeWallRight
	probeCount
)

const (
	probeDepth = 4.0
	probeInset = 2.0
)

type probeRef struct {
	entity Entity
	kind   probeKind
}

type bodyRecord struct {
	body   *cp.Body
	shapes []*cp.Shape
	main   *cp.Shape
	role   BodyRole
	ghost  bool
}

// PhysicsWorld owns the Chipmunk space, entity bodies and per-step probe
// contact counts.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	records       map[Entity]*bodyRecord
	shapeToEntity map[*cp.Shape]Entity
	probes        map[*cp.Shape]probeRef
	counts        map[Entity]*[probeCount]int

	contacts []ContactEvent
	seen     map[ContactEvent]struct{}
}

// NewPhysicsWorld creates an empty space with downward gravity.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})

	pw := &PhysicsWorld{
		space:         space,
		records:       make(map[Entity]*bodyRecord),
		shapeToEntity: make(map[*cp.Shape]Entity),
		probes:        make(map[*cp.Shape]probeRef),
		counts:        make(map[Entity]*[probeCount]int),
		seen:          make(map[ContactEvent]struct{}),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// HasBody reports whether e has shapes in the space.
func (pw *PhysicsWorld) HasBody(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.records[e]
	return ok
}

// Bodies lists the entities that currently own shapes.
func (pw *PhysicsWorld) Bodies() []Entity {
	if pw == nil {
		return nil
	}
	out := make([]Entity, 0, len(pw.records))
	for e := range pw.records {
		out = append(out, e)
	}
	return out
}

// AddStatic adds a solid box centered on t to the static body.
func (pw *PhysicsWorld) AddStatic(e Entity, t *component.Transform, b *component.PhysicsBody) {
	if pw == nil || t == nil || b == nil || pw.HasBody(e) {
		return
	}
	bb := cp.BB{
		L: t.X - b.Width/2,
		B: t.Y - b.Height/2,
		R: t.X + b.Width/2,
		T: t.Y + b.Height/2,
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(friction(b))
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)

	b.Body = pw.space.StaticBody
	b.Shape = shape
	pw.records[e] = &bodyRecord{body: pw.space.StaticBody, shapes: []*cp.Shape{shape}, main: shape}
	pw.shapeToEntity[shape] = e
}

// AddDynamic creates a rotation-locked box body for e. With probes set the
// body gets two foot sensors below its bottom corners and two wall sensors
// on its sides.
func (pw *PhysicsWorld) AddDynamic(e Entity, t *component.Transform, b *component.PhysicsBody, role BodyRole, probes bool) {
	if pw == nil || t == nil || b == nil || pw.HasBody(e) {
		return
	}
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	pw.space.AddBody(body)

	shape := cp.NewBox(body, b.Width, b.Height, 0)
	shape.SetFriction(friction(b))
	switch role {
	case RolePlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case RoleEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	default:
		shape.SetCollisionType(collisionTypeDynamic)
	}
	pw.space.AddShape(shape)

	rec := &bodyRecord{body: body, shapes: []*cp.Shape{shape}, main: shape, role: role}
	pw.records[e] = rec
	pw.shapeToEntity[shape] = e

	if probes {
		hw, hh := b.Width/2, b.Height/2
		boxes := [probeCount]cp.BB{
			probeGroundLeft:  {L: -hw - probeDepth, B: hh, R: -hw + probeInset, T: hh + probeDepth},
			probeGroundRight: {L: hw - probeInset, B: hh, R: hw + probeDepth, T: hh + probeDepth},
			probeWallLeft:    {L: -hw - probeInset, B: -hh + probeInset, R: -hw, T: hh - probeDepth},
			probeWallRight:   {L: hw, B: -hh + probeInset, R: hw + probeInset, T: hh - probeDepth},
		}
		for kind, bb := range boxes {
			probe := cp.NewBox2(body, bb, 0)
			probe.SetSensor(true)
			probe.SetCollisionType(collisionTypeProbe)
			pw.space.AddShape(probe)
			rec.shapes = append(rec.shapes, probe)
			pw.probes[probe] = probeRef{entity: e, kind: probeKind(kind)}
		}
		pw.counts[e] = &[probeCount]int{}
	}

	b.Body = body
	b.Shape = shape
	pw.SetGhost(e, b.Ghost)
}

// Remove drops every shape and the body of e.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	rec, ok := pw.records[e]
	if !ok {
		return
	}
	for _, shape := range rec.shapes {
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
		delete(pw.probes, shape)
	}
	if rec.body != pw.space.StaticBody {
		pw.space.RemoveBody(rec.body)
	}
	delete(pw.records, e)
	delete(pw.counts, e)
}

// SetGhost toggles ghost mode: the main shape becomes a sensor and gravity
// stops acting on the body.
func (pw *PhysicsWorld) SetGhost(e Entity, ghost bool) {
	if pw == nil {
		return
	}
	rec, ok := pw.records[e]
	if !ok || rec.body == pw.space.StaticBody {
		return
	}
	if rec.ghost == ghost {
		return
	}
	rec.ghost = ghost
	rec.main.SetSensor(ghost)
	if ghost {
		rec.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
		rec.body.SetVelocity(0, 0)
		return
	}
	rec.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
}

// Probes returns the probe results of the last step.
func (pw *PhysicsWorld) Probes(e Entity) (component.AINavigation, bool) {
	if pw == nil {
		return component.AINavigation{}, false
	}
	c, ok := pw.counts[e]
	if !ok {
		return component.AINavigation{}, false
	}
	return component.AINavigation{
		GroundLeft:  c[probeGroundLeft] > 0,
		GroundRight: c[probeGroundRight] > 0,
		WallLeft:    c[probeWallLeft] > 0,
		WallRight:   c[probeWallRight] > 0,
	}, true
}

// Step clears probe counts and contacts, then advances the space by dt
// seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	for _, c := range pw.counts {
		*c = [probeCount]int{}
	}
	pw.contacts = pw.contacts[:0]
	clear(pw.seen)
	pw.space.Step(dt)
}

// Contacts returns the player/enemy touches that began during the last step.
// A pair that stays overlapping is not reported again until it separates.
func (pw *PhysicsWorld) Contacts() []ContactEvent {
	if pw == nil {
		return nil
	}
	return pw.contacts
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	probeHandler := pw.space.NewCollisionHandler(collisionTypeProbe, collisionTypeSolid)
	probeHandler.UserData = pw
	probeHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		ref, ok := world.probes[shapeA]
		if !ok {
			if ref, ok = world.probes[shapeB]; !ok {
				return true
			}
		}
		if c := world.counts[ref.entity]; c != nil {
			c[ref.kind]++
		}
		return true
	}

	// returning false ignores the pair until it separates, so player and
	// enemy bodies never push each other and Begin runs once per touch
	contactHandler := pw.space.NewCollisionHandler(collisionTypeEnemy, collisionTypePlayer)
	contactHandler.UserData = pw
	contactHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		enemy, okA := world.shapeToEntity[shapeA]
		player, okB := world.shapeToEntity[shapeB]
		if !okA || !okB {
			return false
		}
		if rec := world.records[enemy]; rec == nil || rec.role != RoleEnemy {
			enemy, player = player, enemy
		}
		evt := ContactEvent{Enemy: enemy, Player: player}
		if _, dup := world.seen[evt]; !dup {
			world.seen[evt] = struct{}{}
			world.contacts = append(world.contacts, evt)
		}
		return false
	}

	pw.handlersReady = true
}

func friction(b *component.PhysicsBody) float64 {
	if b.Friction > 0 {
		return b.Friction
	}
	return 0.8
}
