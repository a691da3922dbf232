package boss

import (
	"math"

	"github.com/milk9111/boomerang/ai"
	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/messenger"
)

func (e *Enemy) registerActions() {
	a := e.spec.Actions
	e.manager.Register(ActionIdle, &idleAction{e: e, timer: ai.NewTimer(a.IdleTime)})
	e.manager.Register(ActionWalk, &walkAction{e: e, timer: ai.NewTimer(a.WalkTime)})
	e.manager.Register(ActionJumpAttack, ai.NewSequence(
		&chargeAction{e: e, timer: ai.NewTimer(a.ChargeTime)},
		&jumpAction{e: e, timer: ai.NewTimer(a.JumpTimeout)},
		&landingAction{e: e, timer: ai.NewTimer(a.LandingTime)},
	))
	e.manager.Register(ActionBeam, ai.NewSequence(
		&beamChargeAction{e: e, timer: ai.NewTimer(a.BeamChargeTime)},
		&beamFireAction{e: e, timer: ai.NewTimer(a.BeamFireTime)},
		&beamRecoverAction{e: e, timer: ai.NewTimer(a.BeamRecoverTime)},
	))
	e.manager.Register(ActionDeath, &deathAction{e: e, timer: ai.NewTimer(a.DeathTime)})
}

type idleAction struct {
	e     *Enemy
	timer ai.Timer
}

func (a *idleAction) Enter() {
	a.timer.Reset()
	a.e.play(ClipIdle, a.timer.Duration, true)
}

func (a *idleAction) Update(dt float64) ai.State {
	a.e.Rotation(dt)
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *idleAction) Exit() {}

// walkAction walks along the boss forward while turning toward the player.
type walkAction struct {
	e     *Enemy
	timer ai.Timer
}

func (a *walkAction) Enter() {
	a.timer.Reset()
	a.e.play(ClipWalk, a.timer.Duration, true)
}

func (a *walkAction) Update(dt float64) ai.State {
	e := a.e
	e.Rotation(dt)
	if e.horizontalDistance() <= e.spec.Actions.AttackRange {
		return ai.End
	}
	if e.grounded {
		forward := e.transform.Rotation.Forward().Horizontal()
		e.transform.Position = e.transform.Position.Add(forward.Scale(e.spec.Actions.WalkSpeed * dt))
	}
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *walkAction) Exit() {}

// chargeAction winds up the jump attack.
type chargeAction struct {
	e     *Enemy
	timer ai.Timer
}

func (a *chargeAction) Enter() {
	a.timer.Reset()
	a.e.play(ClipCharge, a.timer.Duration, false)
	pos := a.e.position()
	pos.Y = chargeEffectHeight
	scale, _ := ecs.WorldScale(a.e.deps.World, a.e.self)
	a.e.deps.Messenger.Notify(messenger.CreateChargeEffect, messenger.ChargeEffect{Position: pos, Scale: scale})
}

func (a *chargeAction) Update(dt float64) ai.State {
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *chargeAction) Exit() {}

// jumpAction launches a ballistic arc at where the player stood on Enter and
// ends after touching the stage again.
type jumpAction struct {
	e        *Enemy
	timer    ai.Timer
	airborne bool
}

func (a *jumpAction) Enter() {
	a.timer.Reset()
	a.airborne = false
	e := a.e
	e.play(ClipJump, 0, false)

	g := math.Abs(e.deps.Gravity * e.spec.GravityScale)
	vy := math.Sqrt(2 * g * e.spec.Actions.JumpHeight)
	flight := 2 * vy / g

	var horizontal common.Vec3
	if target, ok := e.playerPosition(); ok && flight > 0 {
		horizontal = target.Sub(e.position()).Horizontal().Scale(1 / flight)
	}
	e.body.Launch(common.Vec3{X: horizontal.X, Y: vy, Z: horizontal.Z})
}

func (a *jumpAction) Update(dt float64) ai.State {
	if !a.e.grounded {
		a.airborne = true
	}
	if a.airborne && a.e.grounded {
		return ai.End
	}
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *jumpAction) Exit() {
	a.e.body.Velocity.X = 0
	a.e.body.Velocity.Z = 0
}

// landingAction is the shockwave after the jump.
type landingAction struct {
	e     *Enemy
	timer ai.Timer
}

func (a *landingAction) Enter() {
	a.timer.Reset()
	e := a.e
	e.play(ClipLanding, a.timer.Duration, false)
	act := e.spec.Actions
	pos := e.position()
	e.deps.Messenger.Notify(messenger.CreateImpactEffect, messenger.ImpactEffect{Position: pos, Radius: act.ImpactRadius})
	e.deps.Messenger.Notify(messenger.CameraShake, messenger.Shake{Amount: act.ImpactShake})
	if e.horizontalDistance() <= act.ImpactRadius {
		e.deps.Messenger.Notify(messenger.PlayerDamage, messenger.PlayerHit{Amount: act.ImpactDamage})
	}
}

func (a *landingAction) Update(dt float64) ai.State {
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *landingAction) Exit() {}

type beamChargeAction struct {
	e     *Enemy
	timer ai.Timer
}

func (a *beamChargeAction) Enter() {
	a.timer.Reset()
	a.e.play(ClipBeamCharge, a.timer.Duration, false)
	a.e.deps.Messenger.Notify(messenger.BeamCharge, a.e.beamPayload())
}

func (a *beamChargeAction) Update(dt float64) ai.State {
	a.e.Rotation(dt)
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *beamChargeAction) Exit() {}

type beamFireAction struct {
	e     *Enemy
	timer ai.Timer
}

func (a *beamFireAction) Enter() {
	a.timer.Reset()
	a.e.play(ClipBeamFire, a.timer.Duration, true)
	a.e.beam.setFiring(true)
	a.e.deps.Messenger.Notify(messenger.BeamFire, a.e.beamPayload())
}

func (a *beamFireAction) Update(dt float64) ai.State {
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *beamFireAction) Exit() { a.e.beam.setFiring(false) }

type beamRecoverAction struct {
	e     *Enemy
	timer ai.Timer
}

func (a *beamRecoverAction) Enter() {
	a.timer.Reset()
	a.e.play(ClipBeamRecover, a.timer.Duration, false)
}

func (a *beamRecoverAction) Update(dt float64) ai.State {
	if a.timer.Advance(dt) {
		return ai.End
	}
	return ai.Running
}

func (a *beamRecoverAction) Exit() {}

// deathAction plays out the defeat and reports it once.
type deathAction struct {
	e     *Enemy
	timer ai.Timer
	done  bool
}

func (a *deathAction) Enter() {
	a.timer.Reset()
	a.done = false
	a.e.play(ClipDeath, a.timer.Duration, false)
	a.e.beam.setFiring(false)
	a.e.deps.Messenger.Notify(messenger.BossDeathStart, messenger.Empty{})
}

func (a *deathAction) Update(dt float64) ai.State {
	if !a.timer.Advance(dt) {
		return ai.Running
	}
	if !a.done {
		a.done = true
		a.e.deps.Messenger.Notify(messenger.BossDefeated, messenger.Empty{})
	}
	return ai.End
}

func (a *deathAction) Exit() {}

func (e *Enemy) beamPayload() messenger.Beam {
	origin, _ := ecs.WorldPosition(e.deps.World, e.beam.entity)
	dir, _ := ecs.Forward(e.deps.World, e.self)
	return messenger.Beam{Origin: origin, Direction: dir}
}
