package component

type Health struct {
	Initial float64
	Current float64
}

func (h *Health) Dead() bool {
	return h != nil && h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
