package system

import (
	"testing"

	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationAdvances(t *testing.T) {
	cases := []struct {
		name        string
		duration    float64
		loop        bool
		speed       float64
		steps       int
		wantElapsed float64
		wantPlaying bool
	}{
		{"one_shot_mid", 1, false, 1, 5, 0.5, true},
		{"one_shot_ends", 1, false, 1, 15, 1, false},
		{"loop_wraps", 1, true, 1, 13, 0.3, true},
		{"speed_scales", 1, false, 2, 3, 0.6, true},
		{"open_ended", 0, false, 1, 30, 3, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			anim := &component.Animation{Speed: c.speed}
			anim.Play("walk", c.duration, c.loop)
			require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))

			s := NewAnimationSystem()
			for range c.steps {
				s.Update(w, 0.1)
			}
			assert.InDelta(t, c.wantElapsed, anim.Elapsed, 1e-9)
			assert.Equal(t, c.wantPlaying, anim.Playing)
		})
	}
}

func TestAnimationPausedHolds(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := &component.Animation{}
	anim.Play("idle", 2, true)
	anim.Paused = true
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))

	NewAnimationSystem().Update(w, 0.5)
	assert.Zero(t, anim.Elapsed)
}

func TestAnimationReplayKeepsLoopTime(t *testing.T) {
	anim := &component.Animation{}
	anim.Play("walk", 1, true)
	anim.Elapsed = 0.4
	anim.Play("walk", 1, true)
	assert.InDelta(t, 0.4, anim.Elapsed, 1e-12)

	anim.Play("beam_fire", 2, true)
	assert.Zero(t, anim.Elapsed)
	assert.Equal(t, "beam_fire", anim.Clip)
}
