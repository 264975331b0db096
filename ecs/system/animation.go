package system

import (
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if brain, ok := ecs.Get(w, e, component.SkeletonBrainComponent.Kind()); ok && brain.Skeleton != nil {
			clip, started := brain.Skeleton.Animation()
			play(anim, clip, started)
		}
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and 60 TPS
		ticksPerFrame := int(60.0 / def.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}
	})
}

// play restarts anim whenever the clip or its start time changes.
func play(anim *component.Animation, clip string, started float64) {
	if clip == "" || (anim.Current == clip && anim.Started == started) {
		return
	}
	anim.Current = clip
	anim.Started = started
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
}
