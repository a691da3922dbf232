// Package fade drives full screen fade transitions.
package fade

import (
	"log/slog"

	"github.com/milk9111/boomerang/common"
)

type Mode uint8

const (
	None Mode = iota
	FadeOut
	FadeIn
)

func (m Mode) String() string {
	switch m {
	case FadeOut:
		return "fade_out"
	case FadeIn:
		return "fade_in"
	default:
		return "none"
	}
}

// Manager is owned by a scene and shared with whoever has to pause during
// transitions.
type Manager struct {
	mode     Mode
	elapsed  float64
	duration float64
	alpha    float64
	onDone   func(Mode)
	logger   *slog.Logger
}

func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{logger: logger}
}

// Start begins a transition. FadeOut goes from clear to black and FadeIn
// back. onDone may be nil.
func (m *Manager) Start(mode Mode, duration float64, onDone func(Mode)) {
	if mode == None {
		m.mode = None
		return
	}
	m.mode = mode
	m.elapsed = 0
	m.duration = duration
	m.onDone = onDone
	if mode == FadeOut {
		m.alpha = 0
	} else {
		m.alpha = 1
	}
	m.logger.Debug("fade start", slog.String("mode", mode.String()), slog.Float64("duration", duration))
	if duration <= 0 {
		m.finish()
	}
}

func (m *Manager) Update(dt float64) {
	if m == nil || m.mode == None {
		return
	}
	m.elapsed += dt
	t := common.Clamp(m.elapsed/m.duration, 0, 1)
	if m.mode == FadeOut {
		m.alpha = t
	} else {
		m.alpha = 1 - t
	}
	if m.elapsed >= m.duration {
		m.finish()
	}
}

func (m *Manager) finish() {
	mode := m.mode
	if mode == FadeOut {
		m.alpha = 1
	} else {
		m.alpha = 0
	}
	m.mode = None
	if m.onDone != nil {
		done := m.onDone
		m.onDone = nil
		done(mode)
	}
}

func (m *Manager) IsFading() bool {
	return m != nil && m.mode != None
}

// Alpha is the cover opacity in [0,1].
func (m *Manager) Alpha() float64 {
	if m == nil {
		return 0
	}
	return m.alpha
}

func (m *Manager) Mode() Mode {
	if m == nil {
		return None
	}
	return m.mode
}
