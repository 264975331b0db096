// Package scene assembles the sandbox world from prefabs: the arena, the
// patrolling target, the skeletons and the system order.
package scene

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boneyard/common"
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/ecs/entity"
	"github.com/milk9111/boneyard/ecs/system"
	"github.com/milk9111/boneyard/prefabs"
	"github.com/milk9111/boneyard/skeleton"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Skeletons int
	// Seed switches every skeleton to a Mulberry32 source derived from it.
	// Zero keeps the crypto source.
	Seed uint32
	Log  logrus.FieldLogger
}

type Scene struct {
	world  *ecs.World
	sched  *ecs.Scheduler
	arena  *skeleton.Arena
	bounds prefabs.ArenaSpec
	player ecs.Entity
}

// Build loads arena.yaml, player.yaml and skeleton.yaml and spawns the
// scene.
func Build(opts Options) (*Scene, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	arenaSpec, err := prefabs.LoadSpec[prefabs.ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	playerSpec, err := prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	skelSpec, err := prefabs.LoadSkeletonSpec("skeleton.yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	cfg, err := skelSpec.ToConfig()
	if err != nil {
		return nil, fmt.Errorf("scene: skeleton config: %w", err)
	}

	s := &Scene{
		world:  ecs.NewWorld(),
		arena:  skeleton.NewArena(),
		bounds: arenaSpec,
	}
	if err := entity.LoadArenaToWorld(s.world, arenaSpec); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.player, err = entity.NewPlayer(s.world, playerSpec, arenaSpec); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	n := opts.Skeletons
	span := arenaSpec.SpawnMaxX - arenaSpec.SpawnMinX
	for i := 0; i < n; i++ {
		x := arenaSpec.SpawnMinX + (float64(i)+0.5)*span/float64(n)
		var skOpts []skeleton.Option
		if opts.Seed != 0 {
			skOpts = append(skOpts, skeleton.WithSource(common.NewMulberry32(opts.Seed+uint32(i))))
		}
		id := skeleton.ID(i + 1)
		if _, err := entity.NewSkeleton(s.world, skelSpec, cfg, s.arena, id, cp.Vector{X: x, Y: arenaSpec.SpawnY}, skOpts...); err != nil {
			return nil, fmt.Errorf("scene: skeleton %d: %w", id, err)
		}
	}

	s.sched = ecs.NewScheduler(
		system.NewPatrolSystem(),
		system.NewPhysicsSystem(nil),
		system.NewSkeletonSystem(s.arena, log),
		system.NewAnimationSystem(),
		system.NewCombatSystem(log),
		system.NewCooldownSystem(),
	)

	log.WithFields(logrus.Fields{
		"arena":     arenaSpec.Name,
		"skeletons": n,
		"seed":      opts.Seed,
	}).Info("scene: built")
	return s, nil
}

// Update runs one fixed tick.
func (s *Scene) Update() {
	s.world.Update(s.sched)
}

func (s *Scene) World() *ecs.World { return s.world }

func (s *Scene) Arena() *skeleton.Arena { return s.arena }

func (s *Scene) Player() ecs.Entity { return s.player }

func (s *Scene) Bounds() (width, height float64) {
	return s.bounds.Width, s.bounds.Height
}

// Stats is a snapshot of the scene for logging and the debug overlay.
type Stats struct {
	Frames       uint64
	Now          float64
	Skeletons    int
	Flying       []skeleton.ID
	GlobalLight  bool
	PlayerHealth float64
	States       map[skeleton.State]int
}

func (s *Scene) Stats() Stats {
	st := Stats{
		Frames:      s.world.Frames(),
		Now:         s.world.Now(),
		Flying:      s.arena.Flying(),
		GlobalLight: s.arena.GlobalLight(),
		States:      make(map[skeleton.State]int),
	}
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		st.PlayerHealth = h.Current
	}
	ecs.ForEach(s.world, component.SkeletonBrainComponent.Kind(), func(_ ecs.Entity, b *component.SkeletonBrain) {
		if b.Skeleton == nil {
			return
		}
		st.Skeletons++
		st.States[b.Skeleton.State()]++
	})
	return st
}

// StateNames lists the states present in st in a stable order.
func (st Stats) StateNames() []skeleton.State {
	names := make([]skeleton.State, 0, len(st.States))
	for name := range st.States {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
