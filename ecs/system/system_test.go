package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/common"
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/ecs/entity"
	"github.com/milk9111/boneyard/logger"
	"github.com/milk9111/boneyard/prefabs"
	"github.com/milk9111/boneyard/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scene struct {
	w      *ecs.World
	sched  *ecs.Scheduler
	arena  *skeleton.Arena
	player ecs.Entity
}

func testConfig() skeleton.Config {
	cfg := skeleton.DefaultConfig()
	cfg.DormancyProbability = 0
	return cfg
}

func skeletonSpec() prefabs.SkeletonSpec {
	return prefabs.SkeletonSpecFrom(skeleton.DefaultConfig())
}

// newScene builds a floor whose top is at y=90, and a player standing at
// playerX.
func newScene(t *testing.T, playerX float64, withPhysics bool) *scene {
	t.Helper()
	w := ecs.NewWorld()
	arena := skeleton.NewArena()
	log := logger.Discard()

	require.NoError(t, entity.LoadArenaToWorld(w, prefabs.ArenaSpec{
		Solids: []prefabs.SolidSpec{{X: 0, Y: 100, Width: 4000, Height: 20}},
	}))
	player, err := entity.NewPlayer(w, prefabs.PlayerSpec{
		Body:   prefabs.BodySpec{Width: 18, Height: 32, Mass: 1},
		Health: 100,
	}, prefabs.ArenaSpec{PlayerX: playerX, PlayerY: 74})
	require.NoError(t, err)

	sched := ecs.NewScheduler()
	if withPhysics {
		sched.Add(NewPhysicsSystem(nil))
	}
	sched.Add(NewSkeletonSystem(arena, log))
	sched.Add(NewAnimationSystem())

	return &scene{w: w, sched: sched, arena: arena, player: player}
}

func (s *scene) spawn(t *testing.T, id skeleton.ID, x float64, cfg skeleton.Config) (ecs.Entity, *skeleton.Skeleton) {
	t.Helper()
	e, err := entity.NewSkeleton(s.w, skeletonSpec(), cfg, s.arena, id, cp.Vector{X: x, Y: 72}, skeleton.WithSource(common.NewMulberry32(7)))
	require.NoError(t, err)
	brain, ok := ecs.Get(s.w, e, component.SkeletonBrainComponent.Kind())
	require.True(t, ok)
	return e, brain.Skeleton
}

func (s *scene) run(ticks int) {
	for i := 0; i < ticks; i++ {
		s.w.Update(s.sched)
	}
}

func playerHealth(t *testing.T, s *scene) float64 {
	t.Helper()
	h, ok := ecs.Get(s.w, s.player, component.HealthComponent.Kind())
	require.True(t, ok)
	return h.Current
}

func TestSkeletonRoamsWhenTargetFar(t *testing.T) {
	s := newScene(t, 1500, true)
	e, sk := s.spawn(t, 1, 0, testConfig())

	s.run(60)

	assert.Equal(t, skeleton.StateRoam, sk.State())
	tr, _ := ecs.Get(s.w, e, component.TransformComponent.Kind())
	assert.Greater(t, tr.X, 10.0)
	assert.InDelta(t, 72, tr.Y, 1)
	assert.Equal(t, sk.Position(), cp.Vector{X: tr.X, Y: tr.Y})

	anim, _ := ecs.Get(s.w, e, component.AnimationComponent.Kind())
	assert.Equal(t, skeleton.AnimWalk, anim.Current)
	assert.Equal(t, 100.0, playerHealth(t, s))
}

func TestSkeletonChasesNearTarget(t *testing.T) {
	s := newScene(t, -150, true)
	e, sk := s.spawn(t, 1, 0, testConfig())

	s.run(30)

	assert.Equal(t, skeleton.StateChase, sk.State())
	assert.Equal(t, -1, sk.Direction())
	tr, _ := ecs.Get(s.w, e, component.TransformComponent.Kind())
	assert.Less(t, tr.X, 0.0)
	assert.Equal(t, -1, tr.Facing)
}

func TestContactStrikesPlayer(t *testing.T) {
	s := newScene(t, 10, true)
	_, sk := s.spawn(t, 1, 0, testConfig())

	s.run(1)

	assert.Equal(t, skeleton.StateAttack, sk.State())
	assert.Equal(t, 90.0, playerHealth(t, s))

	// staying in contact past the 500ms attack clip does not strike again
	s.run(40)
	assert.NotEqual(t, skeleton.StateAttack, sk.State())
	assert.Equal(t, 90.0, playerHealth(t, s))

	pb, ok := ecs.Get(s.w, s.player, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	pb.Body.SetPosition(cp.Vector{X: 1500, Y: 74})
	s.run(3)
	assert.Equal(t, 90.0, playerHealth(t, s))

	pos := sk.Position()
	pb.Body.SetPosition(cp.Vector{X: pos.X + 5, Y: 74})
	s.run(1)
	assert.Equal(t, skeleton.StateAttack, sk.State())
	assert.Equal(t, 80.0, playerHealth(t, s))
}

func TestDisposedSkeletonIsDestroyed(t *testing.T) {
	s := newScene(t, 1500, true)
	e, sk := s.spawn(t, 1, 0, testConfig())
	s.run(1)

	sk.Die(s.w.Now())
	s.run(1)
	assert.False(t, ecs.Has(s.w, e, component.LightComponent.Kind()))
	b, _ := ecs.Get(s.w, e, component.PhysicsBodyComponent.Kind())
	assert.True(t, b.Ghost)
	h, _ := ecs.Get(s.w, e, component.HealthComponent.Kind())
	assert.Equal(t, 0.0, h.Current)

	// death clip is 800ms
	s.run(50)
	assert.True(t, sk.Disposed())
	assert.False(t, s.w.IsAlive(e))
	s.run(1)
	for _, other := range s.w.Query(component.SkeletonTagComponent.Kind()) {
		assert.NotEqual(t, e, other)
	}
}

func TestEtherealFormTogglesGhostAndLights(t *testing.T) {
	s := newScene(t, 300, false)
	cfg := testConfig()
	cfg.EtherealFormThreshold = 0.5
	cfg.EtherealFormProbability = 1
	e, sk := s.spawn(t, 1, 0, cfg)

	sk.Hit(s.w.Now(), &skeleton.DamageSource{Power: 80, Type: DamageTypePlayer, Direction: 1})
	require.Equal(t, skeleton.TransformIn, sk.Flags().Transforming)
	assert.True(t, s.arena.IsFlying(1))

	// transform_in runs ~833ms
	s.run(55)
	require.Equal(t, skeleton.StateFly, sk.State())

	b, _ := ecs.Get(s.w, e, component.PhysicsBodyComponent.Kind())
	assert.True(t, b.Ghost)
	l, _ := ecs.Get(s.w, e, component.LightComponent.Kind())
	assert.True(t, l.On)

	le, ok := ecs.First(s.w, component.LightingComponent.Kind())
	require.True(t, ok)
	lighting, _ := ecs.Get(s.w, le, component.LightingComponent.Kind())
	assert.False(t, lighting.Global)

	tr, _ := ecs.Get(s.w, e, component.TransformComponent.Kind())
	assert.Equal(t, sk.Position(), cp.Vector{X: tr.X, Y: tr.Y})

	// target walks off: transform out and land
	pt, _ := ecs.Get(s.w, s.player, component.TransformComponent.Kind())
	pt.X = 5000
	s.run(60)
	assert.Equal(t, skeleton.StateRoam, sk.State())
	assert.False(t, b.Ghost)
	assert.False(t, l.On)
	assert.True(t, lighting.Global)
	assert.Equal(t, cp.Vector{X: 0, Y: 72}, sk.Position())
}

func TestNoPlayerMeansNoChase(t *testing.T) {
	w := ecs.NewWorld()
	arena := skeleton.NewArena()
	_, err := entity.NewSkeleton(w, skeletonSpec(), testConfig(), arena, 1, cp.Vector{}, skeleton.WithSource(common.NewMulberry32(1)))
	require.NoError(t, err)

	sys := NewSkeletonSystem(arena, logger.Discard())
	sched := ecs.NewScheduler(sys)
	for i := 0; i < 10; i++ {
		w.Update(sched)
	}
	ecs.ForEach(w, component.SkeletonBrainComponent.Kind(), func(_ ecs.Entity, b *component.SkeletonBrain) {
		assert.Equal(t, skeleton.StateRoam, b.Skeleton.State())
	})
}
