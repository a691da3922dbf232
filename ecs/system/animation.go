package system

import (
	"math"

	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
)

// AnimationSystem advances clip time. Looping clips wrap, one shot clips
// stop on their last moment.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		if !anim.Playing || anim.Paused {
			return
		}
		speed := anim.Speed
		if speed <= 0 {
			speed = 1
		}
		anim.Elapsed += dt * speed
		if anim.Duration <= 0 || anim.Elapsed < anim.Duration {
			return
		}
		if anim.Loop {
			anim.Elapsed = math.Mod(anim.Elapsed, anim.Duration)
			return
		}
		anim.Elapsed = anim.Duration
		anim.Playing = false
	})
}
