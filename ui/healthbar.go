package ui

import (
	"math"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/messenger"
)

// HealthBar shows the boss HP ratio. The displayed ratio eases toward the
// last ratio received over BossDamage.
type HealthBar struct {
	Element
	// Speed is the easing rate per second; zero snaps.
	Speed float64

	target float64
	stop   func()
}

func NewHealthBar(m *messenger.Messenger, e Element, speed float64) *HealthBar {
	h := &HealthBar{Element: e, Speed: speed, target: 1}
	h.RenderRatio = 1
	h.stop = messenger.Listen(m, messenger.BossDamage, func(d messenger.Damage) {
		h.target = common.Clamp(d.Ratio, 0, 1)
	})
	return h
}

func (h *HealthBar) Update(dt float64) {
	if h.Speed <= 0 || dt <= 0 {
		h.RenderRatio = h.target
		return
	}
	t := 1 - math.Exp(-h.Speed*dt)
	h.RenderRatio += (h.target - h.RenderRatio) * t
	if math.Abs(h.target-h.RenderRatio) < 1e-4 {
		h.RenderRatio = h.target
	}
}

// Target is the last ratio received.
func (h *HealthBar) Target() float64 { return h.target }

func (h *HealthBar) Close() {
	if h.stop != nil {
		h.stop()
		h.stop = nil
	}
}
