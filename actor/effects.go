package actor

import (
	"errors"
	"log/slog"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
)

// EffectSpawner turns effect messages into short lived Effect entities that
// the TTL system removes.
type EffectSpawner struct {
	w      *ecs.World
	life   prefabs.EffectLifetimes
	logger *slog.Logger
	stop   []func()
}

func NewEffectSpawner(deps Deps, life prefabs.EffectLifetimes) (*EffectSpawner, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	s := &EffectSpawner{w: deps.World, life: life, logger: deps.Logger}
	s.stop = append(s.stop,
		messenger.Listen(deps.Messenger, messenger.CreateChargeEffect, func(m messenger.ChargeEffect) {
			s.spawn(component.EffectCharge, m.Position, m.Scale, s.life.Charge)
		}),
		messenger.Listen(deps.Messenger, messenger.CreateImpactEffect, func(m messenger.ImpactEffect) {
			d := m.Radius * 2
			s.spawn(component.EffectImpact, m.Position, common.Vec3{X: d, Y: 1, Z: d}, s.life.Impact)
		}),
	)
	return s, nil
}

func (s *EffectSpawner) spawn(kind component.EffectKind, pos, scale common.Vec3, seconds float64) {
	e := ecs.CreateEntity(s.w)
	t := component.NewTransform(pos)
	if scale != (common.Vec3{}) {
		t.Scale = scale
	}
	err := errors.Join(
		ecs.Add(s.w, e, component.ActorComponent.Kind(), &component.Actor{Tag: component.TagEffect, Name: kind.String()}),
		ecs.Add(s.w, e, component.TransformComponent.Kind(), t),
		ecs.Add(s.w, e, component.EffectComponent.Kind(), &component.Effect{Kind: kind}),
		ecs.Add(s.w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: seconds}),
	)
	if err != nil {
		ecs.DestroyEntity(s.w, e)
		s.logger.Warn("spawn effect", slog.String("kind", kind.String()), slog.Any("error", err))
	}
}

// Close stops listening for effect messages.
func (s *EffectSpawner) Close() {
	for _, fn := range s.stop {
		fn()
	}
	s.stop = nil
}
