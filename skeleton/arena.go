package skeleton

import "sort"

// Arena is the state shared by all skeletons in a scene: the registry of
// flying skeletons and the global lighting toggle. It is written by one
// skeleton at a time, in tick order.
type Arena struct {
	flying      map[ID]struct{}
	globalLight bool
}

func NewArena() *Arena {
	return &Arena{
		flying:      make(map[ID]struct{}),
		globalLight: true,
	}
}

func (a *Arena) Register(id ID) {
	if a == nil {
		return
	}
	if a.flying == nil {
		a.flying = make(map[ID]struct{})
	}
	a.flying[id] = struct{}{}
}

func (a *Arena) Unregister(id ID) {
	if a == nil {
		return
	}
	delete(a.flying, id)
}

func (a *Arena) IsFlying(id ID) bool {
	if a == nil {
		return false
	}
	_, ok := a.flying[id]
	return ok
}

// Flying returns the registered ids in ascending order.
func (a *Arena) Flying() []ID {
	if a == nil {
		return nil
	}
	out := make([]ID, 0, len(a.flying))
	for id := range a.flying {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (a *Arena) LightsOff() {
	if a == nil {
		return
	}
	a.globalLight = false
}

// RestoreLighting turns global lighting back on once no skeleton is flying.
func (a *Arena) RestoreLighting() {
	if a == nil || len(a.flying) > 0 {
		return
	}
	a.globalLight = true
}

func (a *Arena) GlobalLight() bool {
	if a == nil {
		return true
	}
	return a.globalLight
}
