package component

import "github.com/milk9111/boomerang/common"

type Rigidbody struct {
	Velocity     common.Vec3
	GravityScale float64
	// Resting bodies skip gravity until something lifts them.
	Resting bool
}

// ResetGravity cancels the accumulated fall speed.
func (r *Rigidbody) ResetGravity() {
	if r == nil {
		return
	}
	if r.Velocity.Y < 0 {
		r.Velocity.Y = 0
	}
	r.Resting = true
}

// Launch sets the velocity and wakes the body.
func (r *Rigidbody) Launch(v common.Vec3) {
	if r == nil {
		return
	}
	r.Velocity = v
	r.Resting = false
}

var RigidbodyComponent = NewComponent[Rigidbody]("rigidbody")
