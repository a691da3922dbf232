package system

import (
	"math"

	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
)

const shakeDecay = 4.0

// CameraSystem eases each camera toward its target. SetTarget and Shake are
// requests applied on the next update.
type CameraSystem struct {
	target   ecs.Entity
	retarget bool
	shake    float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// SetTarget retargets every camera onto e.
func (cs *CameraSystem) SetTarget(e ecs.Entity) {
	cs.target = e
	cs.retarget = true
}

// Target returns the last requested target.
func (cs *CameraSystem) Target() (ecs.Entity, bool) {
	return cs.target, cs.target != 0
}

func (cs *CameraSystem) Shake(amount float64) {
	cs.shake = math.Max(cs.shake, amount)
}

func (cs *CameraSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		if cs.retarget {
			cam.Target = uint64(cs.target)
		}
		if cs.shake > cam.Shake {
			cam.Shake = cs.shake
		}

		if pos, ok := ecs.WorldPosition(w, ecs.Entity(cam.Target)); ok {
			t := 1.0
			if cam.Smoothness > 0 {
				t = 1 - math.Exp(-cam.Smoothness*dt)
			}
			cam.LookAt = cam.LookAt.Lerp(pos, t)
		}
		cam.Eye = cam.LookAt.Add(cam.Offset)
		cam.Shake = math.Max(0, cam.Shake-shakeDecay*dt)
	})
	cs.retarget = false
	cs.shake = 0
}
