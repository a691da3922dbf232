// Package messenger is the scene message bus. Delivery is synchronous: every
// listener registered when Notify starts runs before Notify returns.
package messenger

import (
	"fmt"
	"log/slog"
)

type Type uint8

const (
	CreateChargeEffect Type = iota
	CreateImpactEffect
	BossDamage
	BossPhaseChange
	BeamCharge
	BeamFire
	BossDeathStart
	BossDefeated
	PlayerDamage
	PlayerDeath
	CameraShake

	typeCount
)

var typeNames = [...]string{
	CreateChargeEffect: "create_charge_effect",
	CreateImpactEffect: "create_impact_effect",
	BossDamage:         "boss_damage",
	BossPhaseChange:    "boss_phase_change",
	BeamCharge:         "beam_charge",
	BeamFire:           "beam_fire",
	BossDeathStart:     "boss_death_start",
	BossDefeated:       "boss_defeated",
	PlayerDamage:       "player_damage",
	PlayerDeath:        "player_death",
	CameraShake:        "camera_shake",
}

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("message(%d)", uint8(t))
}

type Listener func(t Type, payload any)

type subscription struct {
	id int
	fn Listener
}

type Messenger struct {
	listeners map[Type][]subscription
	nextID    int
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Messenger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Messenger{
		listeners: make(map[Type][]subscription),
		logger:    logger,
	}
}

// Subscribe registers fn for t and returns a func that removes it.
func (m *Messenger) Subscribe(t Type, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	m.nextID++
	id := m.nextID
	m.listeners[t] = append(m.listeners[t], subscription{id: id, fn: fn})
	return func() { m.unsubscribe(t, id) }
}

func (m *Messenger) unsubscribe(t Type, id int) {
	subs := m.listeners[t]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		next := make([]subscription, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		m.listeners[t] = append(next, subs[i+1:]...)
		return
	}
}

// Notify delivers payload to the listeners of t. Listeners added or removed
// during delivery take effect on the next Notify.
func (m *Messenger) Notify(t Type, payload any) {
	if m == nil {
		return
	}
	subs := m.listeners[t]
	m.logger.Debug("notify", slog.String("type", t.String()), slog.Int("listeners", len(subs)))
	for _, s := range subs {
		s.fn(t, payload)
	}
}

// Listen subscribes fn to messages of t whose payload is a T.
func Listen[T any](m *Messenger, t Type, fn func(T)) func() {
	return m.Subscribe(t, func(got Type, payload any) {
		v, ok := payload.(T)
		if !ok {
			m.logger.Warn("unexpected payload",
				slog.String("type", got.String()),
				slog.String("payload", fmt.Sprintf("%T", payload)))
			return
		}
		fn(v)
	})
}
