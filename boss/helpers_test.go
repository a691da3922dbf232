package boss

import (
	"log/slog"
	"testing"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

var quiet = slog.New(slog.DiscardHandler)

// arena is a stage, a player and a boss wired to real systems.
type arena struct {
	w      *ecs.World
	msg    *messenger.Messenger
	cs     *system.CollisionSystem
	rb     *system.RigidbodySystem
	anim   *system.AnimationSystem
	stage  ecs.Entity
	player ecs.Entity
	boss   *Enemy
	sent   map[messenger.Type][]any
}

type arenaOption func(*Deps, *prefabs.BossSpec)

func withCamera(c Camera) arenaOption {
	return func(d *Deps, _ *prefabs.BossSpec) { d.Camera = c }
}

func withFader(f Fader) arenaOption {
	return func(d *Deps, _ *prefabs.BossSpec) { d.Fade = f }
}

func withBossAt(pos common.Vec3) arenaOption {
	return func(_ *Deps, s *prefabs.BossSpec) {
		s.Transform.Position = prefabs.Vec3Spec{X: pos.X, Y: pos.Y, Z: pos.Z}
	}
}

func withSpec(fn func(*prefabs.BossSpec)) arenaOption {
	return func(_ *Deps, s *prefabs.BossSpec) { fn(s) }
}

type fataler interface {
	require.TestingT
	Helper()
}

func newArena(t fataler, playerAt common.Vec3, opts ...arenaOption) *arena {
	t.Helper()
	spec, err := prefabs.LoadBossSpec()
	require.NoError(t, err)
	spec.Transform.Position = prefabs.Vec3Spec{}

	a := &arena{
		w:    ecs.NewWorld(),
		msg:  messenger.New(quiet),
		cs:   system.NewCollisionSystem(quiet),
		rb:   system.NewRigidbodySystem(system.DefaultGravity),
		anim: system.NewAnimationSystem(),
		sent: make(map[messenger.Type][]any),
	}
	for typ := messenger.CreateChargeEffect; typ <= messenger.CameraShake; typ++ {
		a.msg.Subscribe(typ, func(got messenger.Type, payload any) {
			a.sent[got] = append(a.sent[got], payload)
		})
	}

	a.stage = spawn(t, a.w, component.TagStage, common.Vec3{Y: -0.45}, component.Collider{
		Shape:   component.ShapeBox,
		Extents: common.Vec3{X: 50, Y: 0.5, Z: 50},
	})
	a.player = spawn(t, a.w, component.TagPlayer, playerAt, component.Collider{
		Shape:  component.ShapeSphere,
		Radius: 0.5,
	})

	deps := Deps{
		World:      a.w,
		Messenger:  a.msg,
		Collisions: a.cs,
		Logger:     quiet,
	}
	for _, opt := range opts {
		opt(&deps, spec)
	}
	a.boss, err = New(deps, spec, a.player)
	require.NoError(t, err)
	return a
}

func spawn(t fataler, w *ecs.World, tag component.ObjectTag, pos common.Vec3, col component.Collider) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	col.Enabled = true
	require.NoError(t, ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Tag: tag}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(pos)))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &col))
	return e
}

// step runs one frame in scene order.
func (a *arena) step(dt float64) {
	a.boss.UpdateActor(dt)
	a.rb.Update(a.w, dt)
	a.cs.Update(a.w, dt)
	a.anim.Update(a.w, dt)
}

// settle drops the boss onto the stage.
func (a *arena) settle(t *testing.T) {
	t.Helper()
	for range 10 {
		a.cs.Update(a.w, frame)
		if a.boss.Grounded() {
			return
		}
		a.rb.Update(a.w, frame)
	}
	require.True(t, a.boss.Grounded(), "boss never landed")
}

func (a *arena) count(t messenger.Type) int { return len(a.sent[t]) }
