package actor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
)

// Player walks the arena, jumps and throws one boomerang at a time. It takes
// damage through PlayerDamage messages and is briefly invulnerable after
// each hit.
type Player struct {
	deps   Deps
	spec   *prefabs.PlayerSpec
	input  Input
	logger *slog.Logger

	self      ecs.Entity
	transform *component.Transform
	body      *component.Rigidbody
	health    *component.Health

	facing       common.Vec3
	grounded     bool
	invulnerable float64
	dead         bool
	prev         InputState
	boomerang    *Boomerang

	stop func()
}

func NewPlayer(deps Deps, spec *prefabs.PlayerSpec, input Input) (*Player, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, errors.New("actor: nil player spec")
	}
	col, err := spec.Collider.Collider()
	if err != nil {
		return nil, fmt.Errorf("actor: player collider: %w", err)
	}

	w := deps.World
	p := &Player{
		deps:      deps,
		spec:      spec,
		input:     input,
		logger:    deps.Logger.With(slog.String("actor", spec.Name)),
		self:      ecs.CreateEntity(w),
		transform: spec.Transform.Transform(),
		body:      &component.Rigidbody{GravityScale: 1},
		health:    component.NewHealth(spec.MaxHP),
		facing:    common.Vec3Forward,
	}
	err = errors.Join(
		ecs.Add(w, p.self, component.ActorComponent.Kind(), &component.Actor{Tag: component.TagPlayer, Name: spec.Name}),
		ecs.Add(w, p.self, component.TransformComponent.Kind(), p.transform),
		ecs.Add(w, p.self, component.ColliderComponent.Kind(), col),
		ecs.Add(w, p.self, component.RigidbodyComponent.Kind(), p.body),
		ecs.Add(w, p.self, component.HealthComponent.Kind(), p.health),
	)
	if err != nil {
		ecs.DestroyEntity(w, p.self)
		return nil, fmt.Errorf("actor: spawn player: %w", err)
	}

	if deps.Collisions != nil {
		deps.Collisions.Register(p.self, p)
	}
	p.stop = messenger.Listen(deps.Messenger, messenger.PlayerDamage, p.onHit)
	return p, nil
}

func (p *Player) UpdateActor(dt float64) {
	if p.boomerang != nil {
		p.boomerang.update(dt)
		if p.boomerang.Done() {
			p.boomerang = nil
		}
	}
	if p.dead {
		p.body.Velocity.X, p.body.Velocity.Z = 0, 0
		return
	}
	if p.invulnerable > 0 {
		p.invulnerable -= dt
	}

	in := InputState{}
	if p.input != nil {
		in = p.input.State()
	}

	move := common.Vec3{X: in.MoveX, Z: in.MoveZ}
	if n, ok := move.Normalize(); ok {
		p.facing = n
		if move.Length() > 1 {
			move = n
		}
		p.body.Velocity.X = move.X * p.spec.MoveSpeed
		p.body.Velocity.Z = move.Z * p.spec.MoveSpeed
	} else {
		p.body.Velocity.X, p.body.Velocity.Z = 0, 0
	}

	if in.Jump && !p.prev.Jump && p.grounded {
		p.body.Launch(common.Vec3{X: p.body.Velocity.X, Y: p.spec.JumpSpeed, Z: p.body.Velocity.Z})
		p.grounded = false
	}
	if in.Throw && !p.prev.Throw && p.boomerang == nil {
		p.throw()
	}
	p.prev = in
}

func (p *Player) throw() {
	from, _ := ecs.WorldPosition(p.deps.World, p.self)
	b, err := newBoomerang(p.deps, p.self, p.spec.Boomerang, from, p.facing)
	if err != nil {
		p.logger.Warn("throw boomerang", slog.Any("error", err))
		return
	}
	p.boomerang = b
}

func (p *Player) onHit(hit messenger.PlayerHit) {
	if p.dead || p.invulnerable > 0 || hit.Amount <= 0 {
		return
	}
	p.health.HP -= hit.Amount
	p.invulnerable = p.spec.InvulnerableFor
	p.logger.Debug("player hit", slog.Int("amount", hit.Amount), slog.Int("hp", p.health.HP))
	if p.health.HP > 0 {
		return
	}
	p.health.HP = 0
	p.dead = true
	p.logger.Info("player died")
	p.deps.Messenger.Notify(messenger.PlayerDeath, messenger.Empty{})
}

func (p *Player) OnCollisionEnter(c system.Collision) {
	if c.OtherTag == component.TagStage {
		p.body.ResetGravity()
		p.grounded = true
	}
}

func (p *Player) OnCollisionStay(c system.Collision) { p.OnCollisionEnter(c) }

func (p *Player) OnCollisionExit(c system.Collision) {
	if c.OtherTag == component.TagStage {
		p.grounded = false
		p.body.Resting = false
	}
}

// Close detaches the player from the messenger.
func (p *Player) Close() {
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
}

func (p *Player) Entity() ecs.Entity { return p.self }

func (p *Player) HP() int { return p.health.HP }

func (p *Player) Ratio() float64 { return p.health.Ratio() }

func (p *Player) Dead() bool { return p.dead }

func (p *Player) Grounded() bool { return p.grounded }

func (p *Player) Facing() common.Vec3 { return p.facing }

// Boomerang is the one in flight, or nil.
func (p *Player) Boomerang() *Boomerang { return p.boomerang }
