package system

import (
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
)

// DefaultGravity is in units per second squared.
const DefaultGravity = -19.6

// RigidbodySystem integrates velocity into local position. Resting bodies
// keep their horizontal motion but receive no gravity.
type RigidbodySystem struct {
	Gravity float64
}

func NewRigidbodySystem(gravity float64) *RigidbodySystem {
	if gravity == 0 {
		gravity = DefaultGravity
	}
	return &RigidbodySystem{Gravity: gravity}
}

func (s *RigidbodySystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	ecs.ForEach2(w,
		component.RigidbodyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, rb *component.Rigidbody, t *component.Transform) {
			if rb.Resting && rb.Velocity.Y > 0 {
				rb.Resting = false
			}
			if !rb.Resting {
				rb.Velocity.Y += s.Gravity * rb.GravityScale * dt
			}
			t.Position = t.Position.Add(rb.Velocity.Scale(dt))
		})
}

