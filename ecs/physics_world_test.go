package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStep = 1.0 / 60

func addFloor(pw *PhysicsWorld, w *World) Entity {
	e := CreateEntity(w)
	pw.AddStatic(e, &component.Transform{X: 0, Y: 100}, &component.PhysicsBody{Width: 400, Height: 20, Static: true})
	return e
}

func TestProbesReportGroundAndWalls(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	addFloor(pw, w)

	// wall face sits 1px inside the right probe
	wall := CreateEntity(w)
	pw.AddStatic(wall, &component.Transform{X: 16, Y: 45}, &component.PhysicsBody{Width: 10, Height: 90, Static: true})

	e := CreateEntity(w)
	body := &component.PhysicsBody{Width: 20, Height: 36}
	pw.AddDynamic(e, &component.Transform{X: 0, Y: 72}, body, RoleEnemy, true)
	require.NotNil(t, body.Body)

	for i := 0; i < 5; i++ {
		pw.Step(testStep)
	}
	nav, ok := pw.Probes(e)
	require.True(t, ok)
	assert.True(t, nav.GroundLeft)
	assert.True(t, nav.GroundRight)
	assert.True(t, nav.WallRight)
	assert.False(t, nav.WallLeft)
	assert.InDelta(t, 72, body.Body.Position().Y, 1)
}

func TestProbesLedge(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	addFloor(pw, w)

	// right edge of the floor is at x=200, the body overhangs it by 15px
	e := CreateEntity(w)
	body := &component.PhysicsBody{Width: 20, Height: 36}
	pw.AddDynamic(e, &component.Transform{X: 205, Y: 72}, body, RoleEnemy, true)

	pw.Step(testStep)
	nav, _ := pw.Probes(e)
	assert.True(t, nav.GroundLeft)
	assert.False(t, nav.GroundRight)
}

func TestProbesClearWhenAirborne(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()

	e := CreateEntity(w)
	pw.AddDynamic(e, &component.Transform{X: 0, Y: 0}, &component.PhysicsBody{Width: 20, Height: 36}, RoleEnemy, true)
	pw.Step(testStep)

	nav, ok := pw.Probes(e)
	require.True(t, ok)
	assert.Equal(t, component.AINavigation{}, nav)
}

func TestGhostFloatsAndPassesThrough(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	addFloor(pw, w)

	e := CreateEntity(w)
	body := &component.PhysicsBody{Width: 20, Height: 36, Ghost: true}
	pw.AddDynamic(e, &component.Transform{X: 0, Y: 0}, body, RoleEnemy, true)
	require.True(t, body.Shape.Sensor())

	for i := 0; i < 30; i++ {
		pw.Step(testStep)
	}
	assert.InDelta(t, 0, body.Body.Position().Y, 1e-9)

	pw.SetGhost(e, false)
	assert.False(t, body.Shape.Sensor())
	for i := 0; i < 30; i++ {
		pw.Step(testStep)
	}
	assert.Greater(t, body.Body.Position().Y, 1.0)
}

func TestPlayerEnemyContactIsReportedOnce(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()

	enemy := CreateEntity(w)
	player := CreateEntity(w)
	eb := &component.PhysicsBody{Width: 20, Height: 36}
	pb := &component.PhysicsBody{Width: 20, Height: 36}
	pw.AddDynamic(enemy, &component.Transform{X: 0, Y: 0}, eb, RoleEnemy, false)
	pw.AddDynamic(player, &component.Transform{X: 5, Y: 0}, pb, RolePlayer, false)

	pw.Step(testStep)
	require.Equal(t, []ContactEvent{{Enemy: enemy, Player: player}}, pw.Contacts())

	// no collision response between them
	assert.InDelta(t, 0, eb.Body.Position().X, 1e-9)
	assert.InDelta(t, 5, pb.Body.Position().X, 1e-9)
}

func TestSustainedOverlapReportsOneContactPerTouch(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	addFloor(pw, w)

	enemy := CreateEntity(w)
	player := CreateEntity(w)
	eb := &component.PhysicsBody{Width: 20, Height: 36, Ghost: true}
	pb := &component.PhysicsBody{Width: 20, Height: 36}
	pw.AddDynamic(enemy, &component.Transform{X: 5, Y: 72}, eb, RoleEnemy, true)
	pw.AddDynamic(player, &component.Transform{X: 0, Y: 72}, pb, RolePlayer, false)

	contacts := 0
	for i := 0; i < 30; i++ {
		pw.Step(testStep)
		contacts += len(pw.Contacts())
	}
	assert.Equal(t, 1, contacts)

	pb.Body.SetPosition(cp.Vector{X: 150, Y: 72})
	for i := 0; i < 3; i++ {
		pw.Step(testStep)
		assert.Empty(t, pw.Contacts())
	}

	pb.Body.SetPosition(cp.Vector{X: 0, Y: 72})
	pw.Step(testStep)
	assert.Equal(t, []ContactEvent{{Enemy: enemy, Player: player}}, pw.Contacts())
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	e := CreateEntity(w)
	pw.AddDynamic(e, &component.Transform{}, &component.PhysicsBody{Width: 10, Height: 10}, RoleDynamic, true)
	require.True(t, pw.HasBody(e))

	pw.Remove(e)
	assert.False(t, pw.HasBody(e))
	_, ok := pw.Probes(e)
	assert.False(t, ok)
	assert.Empty(t, pw.Bodies())
	pw.Step(testStep)
}
