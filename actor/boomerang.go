package actor

import (
	"errors"
	"fmt"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/prefabs"
)

// Boomerang flies out along a straight line until MaxRange or until it hits
// the boss parts, then homes back to its owner and is removed on catch.
type Boomerang struct {
	deps  Deps
	spec  prefabs.BoomerangSpec
	self  ecs.Entity
	owner ecs.Entity

	transform *component.Transform
	dir       common.Vec3
	travelled float64
	returning bool
	done      bool
}

func newBoomerang(deps Deps, owner ecs.Entity, spec prefabs.BoomerangSpec, from, dir common.Vec3) (*Boomerang, error) {
	dir, ok := dir.Horizontal().Normalize()
	if !ok {
		return nil, errors.New("actor: boomerang needs a horizontal direction")
	}
	col, err := spec.Collider.Collider()
	if err != nil {
		return nil, fmt.Errorf("actor: boomerang collider: %w", err)
	}

	w := deps.World
	b := &Boomerang{
		deps:      deps,
		spec:      spec,
		self:      ecs.CreateEntity(w),
		owner:     owner,
		transform: component.NewTransform(from.Add(common.Vec3{Y: spec.Height})),
		dir:       dir,
	}
	err = errors.Join(
		ecs.Add(w, b.self, component.ActorComponent.Kind(), &component.Actor{Tag: component.TagBoomerang, Name: "boomerang"}),
		ecs.Add(w, b.self, component.TransformComponent.Kind(), b.transform),
		ecs.Add(w, b.self, component.ColliderComponent.Kind(), col),
	)
	if err != nil {
		ecs.DestroyEntity(w, b.self)
		return nil, fmt.Errorf("actor: spawn boomerang: %w", err)
	}
	if deps.Collisions != nil {
		deps.Collisions.Register(b.self, b)
	}
	return b, nil
}

func (b *Boomerang) update(dt float64) {
	if b.done {
		return
	}
	if !b.returning {
		step := b.spec.Speed * dt
		b.transform.Position = b.transform.Position.Add(b.dir.Scale(step))
		b.travelled += step
		if b.travelled >= b.spec.MaxRange {
			b.returning = true
		}
		return
	}

	target, ok := ecs.WorldPosition(b.deps.World, b.owner)
	if !ok {
		b.remove()
		return
	}
	target.Y += b.spec.Height
	delta := target.Sub(b.transform.Position)
	dist := delta.Length()
	step := b.spec.ReturnSpeed * dt
	if dist <= b.spec.CatchRadius || dist <= step {
		b.remove()
		return
	}
	b.transform.Position = b.transform.Position.Add(delta.Scale(step / dist))
}

func (b *Boomerang) remove() {
	b.done = true
	if b.deps.Collisions != nil {
		b.deps.Collisions.Unregister(b.self)
	}
	ecs.DestroyEntity(b.deps.World, b.self)
}

func (b *Boomerang) OnCollisionEnter(c system.Collision) {
	if c.OtherTag == component.TagBossEnemyParts {
		b.returning = true
	}
}

func (b *Boomerang) OnCollisionStay(system.Collision) {}

func (b *Boomerang) OnCollisionExit(system.Collision) {}

func (b *Boomerang) Entity() ecs.Entity { return b.self }

func (b *Boomerang) Returning() bool { return b.returning }

// Done reports whether the boomerang was caught and removed.
func (b *Boomerang) Done() bool { return b.done }
