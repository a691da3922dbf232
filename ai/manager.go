package ai

import (
	"fmt"
	"log/slog"
)

type managerConfig struct {
	logger *slog.Logger
	strict bool
	name   string
}

type ManagerOption func(*managerConfig)

func WithLogger(l *slog.Logger) ManagerOption {
	return func(c *managerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrict makes Change panic on unknown keys. Meant for debug runs and
// tests.
func WithStrict(strict bool) ManagerOption {
	return func(c *managerConfig) { c.strict = strict }
}

// WithName labels log lines from the manager.
func WithName(name string) ManagerOption {
	return func(c *managerConfig) { c.name = name }
}

// Manager owns at most one live action. The behavior tree may pick the next
// action only while the manager is free.
type Manager[K comparable] struct {
	actions    map[K]Action
	current    K
	hasCurrent bool
	free       bool
	cfg        managerConfig
}

func NewManager[K comparable](opts ...ManagerOption) *Manager[K] {
	cfg := managerConfig{logger: slog.Default(), name: "actions"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Manager[K]{
		actions: make(map[K]Action),
		free:    true,
		cfg:     cfg,
	}
}

// Register binds key to a. Registering over the live action is not allowed.
func (m *Manager[K]) Register(key K, a Action) {
	if m.hasCurrent && m.current == key && !m.free {
		panic(fmt.Sprintf("ai: register %v while it is running", key))
	}
	m.actions[key] = a
}

func (m *Manager[K]) Has(key K) bool {
	_, ok := m.actions[key]
	return ok
}

// Update advances the current action and reports whether the manager is
// free, which it is once the action returned End or when nothing runs.
func (m *Manager[K]) Update(dt float64) bool {
	if !m.hasCurrent || m.free {
		return true
	}
	if m.actions[m.current].Update(dt) == End {
		m.free = true
		m.cfg.logger.Debug("action end", slog.String("manager", m.cfg.name), slog.Any("action", m.current))
	}
	return m.free
}

// Change switches to key. Requesting the action that is still running is a
// no-op. An ended action is re-entered.
func (m *Manager[K]) Change(key K) error {
	next, ok := m.actions[key]
	if !ok {
		err := &ConfigurationError{Key: fmt.Sprint(key), Err: ErrUnknownAction}
		m.cfg.logger.Warn("change to unknown action", slog.String("manager", m.cfg.name), slog.Any("action", key))
		if m.cfg.strict {
			panic(err)
		}
		return err
	}
	if m.hasCurrent && m.current == key && !m.free {
		return nil
	}
	if m.hasCurrent {
		m.actions[m.current].Exit()
	}
	m.cfg.logger.Debug("action change", slog.String("manager", m.cfg.name), slog.Any("from", m.current), slog.Any("to", key))
	m.current = key
	m.hasCurrent = true
	m.free = false
	next.Enter()
	return nil
}

// Stop exits the current action and leaves the manager free.
func (m *Manager[K]) Stop() {
	if !m.hasCurrent {
		return
	}
	m.actions[m.current].Exit()
	m.hasCurrent = false
	m.free = true
	var zero K
	m.current = zero
}

func (m *Manager[K]) Current() (K, bool) {
	return m.current, m.hasCurrent
}

func (m *Manager[K]) Free() bool {
	return m.free
}
