package system

import (
	"testing"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRigidbodyGravityAndRest(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(common.Vec3{Y: 10})))
	rb := &component.Rigidbody{GravityScale: 1}
	require.NoError(t, ecs.Add(w, e, component.RigidbodyComponent.Kind(), rb))

	s := NewRigidbodySystem(-10)
	s.Update(w, 0.5)
	assert.InDelta(t, -5.0, rb.Velocity.Y, 1e-9)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 7.5, tr.Position.Y, 1e-9)

	rb.ResetGravity()
	assert.Zero(t, rb.Velocity.Y)
	assert.True(t, rb.Resting)

	s.Update(w, 0.5)
	assert.Zero(t, rb.Velocity.Y)
	assert.InDelta(t, 7.5, tr.Position.Y, 1e-9)

	rb.Launch(common.Vec3{Y: 4})
	s.Update(w, 0.1)
	assert.False(t, rb.Resting)
	assert.InDelta(t, 3.0, rb.Velocity.Y, 1e-9)
}

func TestResetGravityKeepsRisingBody(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(common.Vec3{})))
	rb := &component.Rigidbody{GravityScale: 1}
	require.NoError(t, ecs.Add(w, e, component.RigidbodyComponent.Kind(), rb))

	// a launch and a floor contact in the same frame
	rb.Launch(common.Vec3{Y: 6})
	rb.ResetGravity()
	assert.InDelta(t, 6.0, rb.Velocity.Y, 1e-12)
	assert.True(t, rb.Resting)

	s := NewRigidbodySystem(-10)
	s.Update(w, 0.1)
	assert.False(t, rb.Resting)
	assert.InDelta(t, 5.0, rb.Velocity.Y, 1e-9)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 0.5, tr.Position.Y, 1e-9)
}
