package ecs

import (
	"testing"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnActor(t *testing.T, w *World, tag component.ObjectTag, hp int) Entity {
	t.Helper()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, component.ActorComponent.Kind(), &component.Actor{Tag: tag, Name: tag.String()}))
	require.NoError(t, Add(w, e, component.TransformComponent.Kind(), component.NewTransform(common.Vec3{})))
	if hp > 0 {
		require.NoError(t, Add(w, e, component.HealthComponent.Kind(), component.NewHealth(hp)))
	}
	return e
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	boss := spawnActor(t, w, component.TagBossEnemy, 100)

	require.True(t, DestroyEntity(w, boss))
	assert.False(t, IsAlive(w, boss))
	assert.False(t, DestroyEntity(w, boss), "second destroy of the same handle")

	player := spawnActor(t, w, component.TagPlayer, 3)
	assert.Equal(t, boss.id(), player.id(), "slot should be reused")
	assert.NotEqual(t, boss, player)

	_, ok := Get(w, boss, component.HealthComponent.Kind())
	assert.False(t, ok, "stale handle must not see the new occupant")
	h, ok := Get(w, player, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 3, h.MaxHP)

	err := Add(w, boss, component.HealthComponent.Kind(), component.NewHealth(1))
	assert.ErrorIs(t, err, component.ErrEntityNotAlive)
	assert.Contains(t, err.Error(), "health")
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	err := Add[component.Collider](w, e, component.ColliderComponent.Kind(), nil)
	assert.ErrorIs(t, err, component.ErrNilComponent)

	err = Add(w, e, component.Kind[component.Collider]{}, &component.Collider{})
	assert.ErrorIs(t, err, component.ErrInvalidComponentKind)

	assert.False(t, Has(w, e, component.ColliderComponent.Kind()))
}

func TestAddReplacesValue(t *testing.T) {
	w := NewWorld()
	e := spawnActor(t, w, component.TagBossEnemy, 100)

	require.NoError(t, Add(w, e, component.HealthComponent.Kind(), component.NewHealth(40)))
	h, ok := Get(w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 40, h.HP)

	assert.True(t, Remove(w, e, component.HealthComponent.Kind()))
	assert.False(t, Remove(w, e, component.HealthComponent.Kind()))
	assert.True(t, Has(w, e, component.TransformComponent.Kind()), "other kinds stay")
}

func TestEmptyStoreLookups(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	_, ok := Get(w, e, component.TTLComponent.Kind())
	assert.False(t, ok)
	assert.False(t, Has(w, e, component.TTLComponent.Kind()))
	assert.False(t, Remove(w, e, component.TTLComponent.Kind()))

	_, ok = First(w, component.TTLComponent.Kind())
	assert.False(t, ok)

	visited := 0
	ForEach(w, component.TTLComponent.Kind(), func(Entity, *component.TTL) { visited++ })
	ForEach2(w, component.TTLComponent.Kind(), component.EffectComponent.Kind(), func(Entity, *component.TTL, *component.Effect) { visited++ })
	assert.Zero(t, visited)

	var nilWorld *World
	assert.False(t, IsAlive(nilWorld, e))
	assert.Nil(t, Entities(nilWorld))
}

func TestFirstSkipsDestroyed(t *testing.T) {
	w := NewWorld()
	a := spawnActor(t, w, component.TagPlayer, 3)
	b := spawnActor(t, w, component.TagPlayer, 3)

	first, ok := First(w, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, a, first)

	DestroyEntity(w, a)
	first, ok = First(w, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, b, first)
}

func TestEntitiesListsLiveOnly(t *testing.T) {
	w := NewWorld()
	stage := spawnActor(t, w, component.TagStage, 0)
	boss := spawnActor(t, w, component.TagBossEnemy, 100)
	player := spawnActor(t, w, component.TagPlayer, 3)

	DestroyEntity(w, boss)
	assert.ElementsMatch(t, []Entity{stage, player}, Entities(w))

	fx := spawnActor(t, w, component.TagEffect, 0)
	assert.ElementsMatch(t, []Entity{stage, player, fx}, Entities(w))
}

func TestForEachToleratesDestroyDuringVisit(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		require.NoError(t, Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: float64(i)}))
	}

	visited := 0
	ForEach(w, component.TTLComponent.Kind(), func(e Entity, ttl *component.TTL) {
		visited++
		if ttl.Seconds < 2 {
			DestroyEntity(w, e)
		}
	})
	assert.Equal(t, 4, visited)
	assert.Len(t, Entities(w), 2)

	ForEach(w, component.TTLComponent.Kind(), func(_ Entity, ttl *component.TTL) {
		assert.GreaterOrEqual(t, ttl.Seconds, 2.0)
	})
}

func TestForEachSkipsEntityRemovedEarlierInPass(t *testing.T) {
	w := NewWorld()
	a := spawnActor(t, w, component.TagBoomerang, 1)
	b := spawnActor(t, w, component.TagBoomerang, 1)

	var seen []Entity
	ForEach(w, component.HealthComponent.Kind(), func(e Entity, _ *component.Health) {
		seen = append(seen, e)
		if e == a {
			DestroyEntity(w, b)
		}
	})
	assert.Equal(t, []Entity{a}, seen)
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	player := spawnActor(t, w, component.TagPlayer, 3)
	stage := spawnActor(t, w, component.TagStage, 0)
	beam := spawnActor(t, w, component.TagBeam, 0)
	require.NoError(t, Add(w, player, component.ColliderComponent.Kind(), &component.Collider{Shape: component.ShapeSphere, Radius: 0.5, Enabled: true}))
	require.NoError(t, Add(w, stage, component.ColliderComponent.Kind(), &component.Collider{Enabled: true}))

	var withCollider []component.ObjectTag
	ForEach2(w, component.ColliderComponent.Kind(), component.ActorComponent.Kind(), func(_ Entity, _ *component.Collider, a *component.Actor) {
		withCollider = append(withCollider, a.Tag)
	})
	assert.ElementsMatch(t, []component.ObjectTag{component.TagPlayer, component.TagStage}, withCollider)

	var all3 []Entity
	ForEach3(w,
		component.ColliderComponent.Kind(),
		component.ActorComponent.Kind(),
		component.HealthComponent.Kind(),
		func(e Entity, _ *component.Collider, _ *component.Actor, _ *component.Health) {
			all3 = append(all3, e)
		})
	assert.Equal(t, []Entity{player}, all3)

	DestroyEntity(w, beam)
	Remove(w, player, component.HealthComponent.Kind())
	all3 = all3[:0]
	ForEach3(w,
		component.ColliderComponent.Kind(),
		component.ActorComponent.Kind(),
		component.HealthComponent.Kind(),
		func(e Entity, _ *component.Collider, _ *component.Actor, _ *component.Health) {
			all3 = append(all3, e)
		})
	assert.Empty(t, all3)
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	assert.Equal(t, "1:0", e.String())
	DestroyEntity(w, e)
	assert.Equal(t, "1:1", CreateEntity(w).String())
	assert.Equal(t, "transform", component.TransformComponent.Kind().String())
}
