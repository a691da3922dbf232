package ecs

import (
	"math"
	"testing"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnTransform(t *testing.T, w *World, pos common.Vec3) Entity {
	t.Helper()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, component.TransformComponent.Kind(), component.NewTransform(pos)))
	return e
}

func TestWorldTransformWalksParents(t *testing.T) {
	w := NewWorld()
	root := spawnTransform(t, w, common.Vec3{X: 10})
	child := spawnTransform(t, w, common.Vec3{Z: -2})

	rt, _ := Get(w, root, component.TransformComponent.Kind())
	rt.Rotation = common.QuatFromAxisAngle(common.Vec3Up, math.Pi/2)
	rt.Scale = common.Vec3{X: 2, Y: 2, Z: 2}

	require.NoError(t, SetParent(w, child, root))

	pos, ok := WorldPosition(w, child)
	require.True(t, ok)
	// -Z of length 4 turned a quarter left points along -X
	assert.InDelta(t, 6.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Z, 1e-9)

	scale, _ := WorldScale(w, child)
	assert.InDelta(t, 2.0, scale.Y, 1e-9)

	fwd, _ := Forward(w, child)
	assert.InDelta(t, -1.0, fwd.X, 1e-9)
}

func TestSetParentRejectsCycles(t *testing.T) {
	w := NewWorld()
	a := spawnTransform(t, w, common.Vec3{})
	b := spawnTransform(t, w, common.Vec3{})
	c := spawnTransform(t, w, common.Vec3{})

	require.NoError(t, SetParent(w, b, a))
	require.NoError(t, SetParent(w, c, b))

	assert.ErrorIs(t, SetParent(w, a, c), ErrTransformCycle)
	assert.ErrorIs(t, SetParent(w, a, a), ErrTransformCycle)

	require.NoError(t, SetParent(w, c, 0))
	_, ok := Parent(w, c)
	assert.False(t, ok)
}
