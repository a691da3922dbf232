package component

// Health is shared by the player and the boss.
type Health struct {
	HP    int
	MaxHP int
}

func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{HP: max, MaxHP: max}
}

// Ratio is HP/MaxHP clamped to [0,1].
func (h *Health) Ratio() float64 {
	if h == nil || h.MaxHP <= 0 || h.HP <= 0 {
		return 0
	}
	if h.HP >= h.MaxHP {
		return 1
	}
	return float64(h.HP) / float64(h.MaxHP)
}

var HealthComponent = NewComponent[Health]("health")
