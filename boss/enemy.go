package boss

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/milk9111/boomerang/ai"
	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
)

// chargeEffectHeight puts charge effects just above the floor.
const chargeEffectHeight = 0.1

const never = -1e9

// Enemy is the boss actor. It is driven by UpdateActor once per frame and by
// collision callbacks during the collision pass of the same frame.
type Enemy struct {
	deps   Deps
	spec   *prefabs.BossSpec
	logger *slog.Logger

	self   ecs.Entity
	player ecs.Entity
	parts  ecs.Entity
	beam   *Beam

	transform *component.Transform
	body      *component.Rigidbody
	health    *component.Health
	anim      *component.Animation

	manager *ai.Manager[ActionID]
	phases  []phase
	phase   int
	bb      *ai.Blackboard

	grounded bool
	dead     bool
	clock    float64
	lastJump float64
	lastBeam float64
}

// New spawns the boss with its parts and beam children and starts idling.
func New(deps Deps, spec *prefabs.BossSpec, player ecs.Entity) (*Enemy, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, fmt.Errorf("boss: nil spec")
	}

	e := &Enemy{
		deps:     deps,
		spec:     spec,
		logger:   deps.Logger.With(slog.String("actor", spec.Name)),
		player:   player,
		bb:       ai.NewBlackboard(),
		lastJump: never,
		lastBeam: never,
	}
	if err := e.spawn(); err != nil {
		e.despawn()
		return nil, err
	}

	phases, err := buildPhases(spec, e.conditions())
	if err != nil {
		e.despawn()
		return nil, err
	}
	e.phases = phases

	e.manager = ai.NewManager[ActionID](
		ai.WithLogger(e.logger),
		ai.WithStrict(deps.Strict),
		ai.WithName(spec.Name),
	)
	e.registerActions()

	if err := e.Change(ActionIdle); err != nil {
		e.despawn()
		return nil, err
	}

	if deps.Collisions != nil {
		deps.Collisions.Register(e.self, e)
		deps.Collisions.Register(e.parts, partsListener{e: e})
		deps.Collisions.Register(e.beam.entity, e.beam)
	}
	return e, nil
}

func (e *Enemy) spawn() error {
	w := e.deps.World
	bodyCol, err := e.spec.Collider.Collider()
	if err != nil {
		return fmt.Errorf("boss: collider: %w", err)
	}
	partsCol, err := e.spec.Parts.Collider.Collider()
	if err != nil {
		return fmt.Errorf("boss: parts collider: %w", err)
	}
	beamCol, err := e.spec.Beam.Collider.Collider()
	if err != nil {
		return fmt.Errorf("boss: beam collider: %w", err)
	}
	beamCol.Enabled = false

	e.self = ecs.CreateEntity(w)
	e.transform = e.spec.Transform.Transform()
	e.body = &component.Rigidbody{GravityScale: e.spec.GravityScale}
	e.health = component.NewHealth(e.spec.MaxHP)
	e.anim = &component.Animation{Speed: 1}
	err = errors.Join(
		ecs.Add(w, e.self, component.ActorComponent.Kind(), &component.Actor{Tag: component.TagBossEnemy, Name: e.spec.Name}),
		ecs.Add(w, e.self, component.TransformComponent.Kind(), e.transform),
		ecs.Add(w, e.self, component.ColliderComponent.Kind(), bodyCol),
		ecs.Add(w, e.self, component.RigidbodyComponent.Kind(), e.body),
		ecs.Add(w, e.self, component.HealthComponent.Kind(), e.health),
		ecs.Add(w, e.self, component.AnimationComponent.Kind(), e.anim),
	)
	if err != nil {
		return fmt.Errorf("boss: spawn: %w", err)
	}

	e.parts, err = spawnChild(w, e.self, component.TagBossEnemyParts, e.spec.Name+"_parts", partsCol)
	if err != nil {
		return err
	}
	beamEnt, err := spawnChild(w, e.self, component.TagBeam, e.spec.Name+"_beam", beamCol)
	if err != nil {
		return err
	}
	e.beam = newBeam(w, beamEnt, e.deps.Messenger, e.spec.Beam)
	return nil
}

// despawn removes whatever spawn created. Used on failed construction.
func (e *Enemy) despawn() {
	w := e.deps.World
	if e.beam != nil {
		ecs.DestroyEntity(w, e.beam.entity)
	}
	ecs.DestroyEntity(w, e.parts)
	ecs.DestroyEntity(w, e.self)
}

func spawnChild(w *ecs.World, parent ecs.Entity, tag component.ObjectTag, name string, col *component.Collider) (ecs.Entity, error) {
	child := ecs.CreateEntity(w)
	err := errors.Join(
		ecs.Add(w, child, component.ActorComponent.Kind(), &component.Actor{Tag: tag, Name: name}),
		ecs.Add(w, child, component.TransformComponent.Kind(), component.NewTransform(common.Vec3{})),
		ecs.Add(w, child, component.ColliderComponent.Kind(), col),
		ecs.SetParent(w, child, parent),
	)
	if err != nil {
		ecs.DestroyEntity(w, child)
		return 0, fmt.Errorf("boss: spawn %s: %w", name, err)
	}
	return child, nil
}

// UpdateActor runs one frame of boss logic. Nothing happens while a fade is
// running. The tree is only consulted once the current action has ended.
func (e *Enemy) UpdateActor(dt float64) {
	fading := e.deps.Fade != nil && e.deps.Fade.IsFading()
	e.anim.Paused = fading
	if fading {
		return
	}
	dt *= e.phases[e.phase].speed
	e.clock += dt
	e.beam.update(dt)

	if !e.manager.Update(dt) || e.dead {
		return
	}

	e.refreshPhase()
	e.fillBlackboard()
	key, ok, err := e.phases[e.phase].tree.Tick(e.bb)
	if err != nil {
		e.logger.Warn("behavior tree tick failed", slog.String("phase", e.phases[e.phase].name), slog.Any("error", err))
		return
	}
	if ok {
		_ = e.Change(key)
	}
}

// Change switches the current action and stamps the attack cooldowns.
func (e *Enemy) Change(id ActionID) error {
	if err := e.manager.Change(id); err != nil {
		return err
	}
	switch id {
	case ActionJumpAttack:
		e.lastJump = e.clock
	case ActionBeam:
		e.lastBeam = e.clock
	}
	return nil
}

// AddDamage lowers HP and publishes the new ratio. The hit that takes HP to
// zero retargets the camera and starts the death action; later hits return
// ErrAlreadyDead.
func (e *Enemy) AddDamage(amount int) error {
	if e.dead {
		return ErrAlreadyDead
	}
	if amount <= 0 {
		return nil
	}

	e.health.HP -= amount
	ratio := e.health.Ratio()
	e.deps.Messenger.Notify(messenger.BossDamage, messenger.Damage{Ratio: ratio})
	e.logger.Debug("boss damaged", slog.Int("amount", amount), slog.Int("hp", e.health.HP), slog.Float64("ratio", ratio))

	if e.health.HP > 0 {
		return nil
	}
	e.health.HP = 0
	e.dead = true
	if e.deps.Camera != nil {
		e.deps.Camera.SetTarget(e.self)
	}
	if err := e.Change(ActionDeath); err != nil {
		e.logger.Error("death action missing", slog.Any("error", err))
	}
	return nil
}

// Rotation turns the boss toward the player around the vertical axis, at
// most RotationSpeed*dt radians per call.
func (e *Enemy) Rotation(dt float64) {
	target, ok := ecs.WorldPosition(e.deps.World, e.player)
	if !ok {
		return
	}
	pos, _ := ecs.WorldPosition(e.deps.World, e.self)
	dir, ok := target.Sub(pos).Horizontal().Normalize()
	if !ok {
		return
	}
	rot, _ := ecs.WorldRotation(e.deps.World, e.self)
	forward, ok := rot.Forward().Horizontal().Normalize()
	if !ok {
		return
	}

	axis := common.Vec3Up
	if forward.Cross(dir).Y < 0 {
		axis = common.Vec3Down
	}
	angle := math.Acos(common.Clamp(forward.Dot(dir), -1, 1))
	angle = math.Min(angle, e.spec.RotationSpeed*dt)
	if angle <= 0 {
		return
	}
	e.transform.Rotation = e.transform.Rotation.Mul(common.QuatFromAxisAngle(axis, angle)).Normalize()
}

// Landing stops the fall and marks the boss grounded.
func (e *Enemy) Landing() {
	e.body.ResetGravity()
	e.grounded = true
}

func (e *Enemy) OnCollisionEnter(c system.Collision) {
	if c.OtherTag == component.TagStage {
		e.Landing()
	}
}

func (e *Enemy) OnCollisionStay(c system.Collision) {
	if c.OtherTag == component.TagStage {
		e.Landing()
	}
}

func (e *Enemy) OnCollisionExit(c system.Collision) {
	if c.OtherTag == component.TagStage {
		e.grounded = false
		e.body.Resting = false
	}
}

func (e *Enemy) Entity() ecs.Entity { return e.self }

func (e *Enemy) Parts() ecs.Entity { return e.parts }

func (e *Enemy) BeamEntity() ecs.Entity { return e.beam.entity }

func (e *Enemy) HP() int { return e.health.HP }

func (e *Enemy) Ratio() float64 { return e.health.Ratio() }

func (e *Enemy) Dead() bool { return e.dead }

func (e *Enemy) Grounded() bool { return e.grounded }

func (e *Enemy) Current() (ActionID, bool) { return e.manager.Current() }

func (e *Enemy) Phase() string { return e.phases[e.phase].name }

func (e *Enemy) Firing() bool { return e.beam.firing }

func (e *Enemy) position() common.Vec3 {
	p, _ := ecs.WorldPosition(e.deps.World, e.self)
	return p
}

func (e *Enemy) playerPosition() (common.Vec3, bool) {
	return ecs.WorldPosition(e.deps.World, e.player)
}

// horizontalDistance is the XZ distance to the player, or +Inf without one.
func (e *Enemy) horizontalDistance() float64 {
	target, ok := e.playerPosition()
	if !ok {
		return math.Inf(1)
	}
	return target.Sub(e.position()).Horizontal().Length()
}
