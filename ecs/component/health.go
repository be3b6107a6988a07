package component

// Health is allowed to drop below zero between a hit and the next reset.
type Health struct {
	Initial int
	Current int
}

// Down reports whether the owner has been defeated this round.
func (h *Health) Down() bool {
	return h != nil && h.Current <= 0
}

// Display returns the health clamped to [0, Initial].
func (h *Health) Display() int {
	if h == nil || h.Current < 0 {
		return 0
	}
	if h.Initial > 0 && h.Current > h.Initial {
		return h.Initial
	}
	return h.Current
}

var HealthComponent = NewComponent[Health]()
