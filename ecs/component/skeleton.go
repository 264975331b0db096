package component

import "github.com/milk9111/boneyard/skeleton"

// SkeletonBrain wraps the behavior state machine of a skeleton entity.
type SkeletonBrain struct {
	Skeleton *skeleton.Skeleton
}

var SkeletonBrainComponent = NewComponent[SkeletonBrain]()
