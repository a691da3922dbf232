package boss

import (
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
)

// Beam is the boss's laser. Its collider only reports contacts while firing,
// and a player inside it takes damage at most once per interval.
type Beam struct {
	entity   ecs.Entity
	world    *ecs.World
	notifier Notifier
	interval float64
	damage   int

	firing  bool
	clock   float64
	lastHit float64
}

func newBeam(w *ecs.World, entity ecs.Entity, n Notifier, spec prefabs.BossBeamSpec) *Beam {
	return &Beam{
		entity:   entity,
		world:    w,
		notifier: n,
		interval: spec.HitInterval,
		damage:   spec.Damage,
		lastHit:  never,
	}
}

func (b *Beam) update(dt float64) { b.clock += dt }

func (b *Beam) setFiring(on bool) {
	b.firing = on
	if col, ok := ecs.Get(b.world, b.entity, component.ColliderComponent.Kind()); ok {
		col.Enabled = on
	}
	if on {
		b.lastHit = never
	}
}

func (b *Beam) hit(c system.Collision) {
	if !b.firing || c.OtherTag != component.TagPlayer {
		return
	}
	if b.clock-b.lastHit < b.interval {
		return
	}
	b.lastHit = b.clock
	b.notifier.Notify(messenger.PlayerDamage, messenger.PlayerHit{Amount: b.damage})
}

func (b *Beam) OnCollisionEnter(c system.Collision) { b.hit(c) }

func (b *Beam) OnCollisionStay(c system.Collision) { b.hit(c) }

func (b *Beam) OnCollisionExit(system.Collision) {}
