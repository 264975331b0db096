package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type SkeletonTag struct{}

var SkeletonTagComponent = NewComponent[SkeletonTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
