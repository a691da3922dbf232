package system

import (
	"testing"

	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLDestroysExpired(t *testing.T) {
	w := ecs.NewWorld()
	short := ecs.CreateEntity(w)
	long := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, short, component.TTLComponent.Kind(), &component.TTL{Seconds: 0.1}))
	require.NoError(t, ecs.Add(w, long, component.TTLComponent.Kind(), &component.TTL{Seconds: 1}))

	s := NewTTLSystem()
	s.Update(w, 0.05)
	assert.True(t, ecs.IsAlive(w, short))

	s.Update(w, 0.05)
	assert.False(t, ecs.IsAlive(w, short))
	assert.True(t, ecs.IsAlive(w, long))
}
