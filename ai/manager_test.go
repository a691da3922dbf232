package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestManagerExitBeforeEnter(t *testing.T) {
	var log []string
	m := NewManager[string]()
	m.Register("idle", newProbe("idle", 3, &log))
	m.Register("walk", newProbe("walk", 3, &log))

	require.NoError(t, m.Change("idle"))
	require.NoError(t, m.Change("walk"))
	assert.Equal(t, []string{"enter:idle", "exit:idle", "enter:walk"}, log)

	cur, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, "walk", cur)
}

func TestManagerSameKeyWhileRunningIsNoop(t *testing.T) {
	p := newProbe("charge", 5, nil)
	m := NewManager[string]()
	m.Register("charge", p)

	require.NoError(t, m.Change("charge"))
	require.NoError(t, m.Change("charge"))
	assert.Equal(t, 1, p.enters)
	assert.Equal(t, 0, p.exits)
}

func TestManagerReentersEndedAction(t *testing.T) {
	p := newProbe("idle", 1, nil)
	m := NewManager[string]()
	m.Register("idle", p)

	require.NoError(t, m.Change("idle"))
	assert.True(t, m.Update(0.1))
	require.NoError(t, m.Change("idle"))
	assert.Equal(t, 2, p.enters)
	assert.Equal(t, 1, p.exits)
	assert.False(t, m.Free())
}

func TestManagerUpdateStopsAfterEnd(t *testing.T) {
	calls := 0
	m := NewManager[int]()
	m.Register(1, Funcs{OnUpdate: func(float64) State {
		calls++
		return End
	}})

	assert.True(t, m.Update(0.1), "nothing running is free")
	require.NoError(t, m.Change(1))
	assert.False(t, m.Free())
	assert.True(t, m.Update(0.1))
	assert.True(t, m.Update(0.1))
	assert.Equal(t, 1, calls)
}

func TestManagerUnknownKey(t *testing.T) {
	p := newProbe("idle", 3, nil)
	m := NewManager[string]()
	m.Register("idle", p)
	require.NoError(t, m.Change("idle"))

	err := m.Change("Deth")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAction))
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Deth", cfgErr.Key)

	cur, _ := m.Current()
	assert.Equal(t, "idle", cur)
	assert.Equal(t, 0, p.exits)
}

func TestManagerStrictPanics(t *testing.T) {
	m := NewManager[string](WithStrict(true))
	assert.Panics(t, func() { _ = m.Change("missing") })
}

func TestManagerStop(t *testing.T) {
	p := newProbe("beam", 3, nil)
	m := NewManager[string]()
	m.Register("beam", p)
	require.NoError(t, m.Change("beam"))
	m.Stop()
	assert.Equal(t, 1, p.exits)
	assert.True(t, m.Free())
	_, ok := m.Current()
	assert.False(t, ok)
}

// Every Enter is matched by exactly one Exit before the next Enter, whatever
// mix of changes and updates drives the manager.
func TestManagerBracketsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var log []string
		keys := []string{"a", "b", "c"}
		m := NewManager[string]()
		probes := map[string]*probe{}
		for _, k := range keys {
			probes[k] = newProbe(k, rapid.IntRange(1, 4).Draw(t, "len_"+k), &log)
			m.Register(k, probes[k])
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "change") {
				_ = m.Change(rapid.SampledFrom(keys).Draw(t, "key"))
			} else {
				m.Update(rapid.Float64Range(0, 0.1).Draw(t, "dt"))
			}
		}
		m.Stop()

		live := ""
		for _, entry := range log {
			switch entry[:4] {
			case "ente":
				if live != "" {
					t.Fatalf("enter while %s is live: %v", live, log)
				}
				live = entry[len("enter:"):]
			case "exit":
				if live != entry[len("exit:"):] {
					t.Fatalf("exit of %s while %q is live: %v", entry, live, log)
				}
				live = ""
			}
		}
		if live != "" {
			t.Fatalf("%s never exited", live)
		}
	})
}
