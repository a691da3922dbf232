package system

import (
	"log/slog"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
)

// Collision is delivered to the listener registered for Self.
type Collision struct {
	Self     ecs.Entity
	Other    ecs.Entity
	OtherTag component.ObjectTag
}

type CollisionListener interface {
	OnCollisionEnter(c Collision)
	OnCollisionStay(c Collision)
	OnCollisionExit(c Collision)
}

// minStep keeps cp reindexing shapes on frames with dt == 0.
const minStep = 1e-6

type colliderBody struct {
	body   *cp.Body
	shape  *cp.Shape
	radius float64
	tag    component.ObjectTag
	vol    volume
	active bool
}

type contactKey struct {
	a, b ecs.Entity
}

type contact struct {
	tagA, tagB component.ObjectTag
}

type collisionEvent struct {
	phase int
	c     Collision
}

const (
	phaseEnter = iota
	phaseStay
	phaseExit
)

// CollisionSystem reports trigger contacts between colliders. Broadphase runs
// in a cp space projected onto the XZ plane; the 3D volumes are tested
// afterwards. Contacts are dispatched in entity order so runs replay the same.
type CollisionSystem struct {
	space     *cp.Space
	bodies    map[ecs.Entity]*colliderBody
	listeners map[ecs.Entity]CollisionListener
	contacts  map[contactKey]contact
	logger    *slog.Logger
}

func NewCollisionSystem(logger *slog.Logger) *CollisionSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollisionSystem{
		space:     cp.NewSpace(),
		bodies:    make(map[ecs.Entity]*colliderBody),
		listeners: make(map[ecs.Entity]CollisionListener),
		contacts:  make(map[contactKey]contact),
		logger:    logger,
	}
}

// Register routes contacts of e to l. Registering nil removes the listener.
func (cs *CollisionSystem) Register(e ecs.Entity, l CollisionListener) {
	if l == nil {
		delete(cs.listeners, e)
		return
	}
	cs.listeners[e] = l
}

func (cs *CollisionSystem) Unregister(e ecs.Entity) {
	delete(cs.listeners, e)
}

// Touching reports whether a and b were in contact after the last update.
func (cs *CollisionSystem) Touching(a, b ecs.Entity) bool {
	_, ok := cs.contacts[makeContactKey(a, b)]
	return ok
}

func (cs *CollisionSystem) Update(w *ecs.World, dt float64) {
	if cs == nil || w == nil {
		return
	}

	cs.syncBodies(w)
	cs.space.Step(math.Max(dt, minStep))

	current := cs.findContacts()
	events := cs.diff(current)
	cs.contacts = current

	for _, ev := range events {
		l, ok := cs.listeners[ev.c.Self]
		if !ok || !ecs.IsAlive(w, ev.c.Self) {
			continue
		}
		switch ev.phase {
		case phaseEnter:
			l.OnCollisionEnter(ev.c)
		case phaseStay:
			l.OnCollisionStay(ev.c)
		case phaseExit:
			l.OnCollisionExit(ev.c)
		}
	}
}

func (cs *CollisionSystem) syncBodies(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{}, len(cs.bodies))

	ecs.ForEach3(w,
		component.ColliderComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ActorComponent.Kind(),
		func(e ecs.Entity, col *component.Collider, _ *component.Transform, actor *component.Actor) {
			seen[e] = struct{}{}
			vol, ok := worldVolume(w, e, col)
			if !ok {
				return
			}
			radius := vol.broadRadius()

			cb := cs.bodies[e]
			if cb == nil {
				body := cs.space.AddBody(cp.NewKinematicBody())
				cb = &colliderBody{body: body}
				cs.bodies[e] = cb
			}
			if cb.shape == nil || math.Abs(cb.radius-radius) > common.Epsilon {
				if cb.shape != nil {
					cs.space.RemoveShape(cb.shape)
				}
				shape := cp.NewCircle(cb.body, math.Max(radius, common.Epsilon), cp.Vector{})
				shape.SetSensor(true)
				shape.UserData = e
				cb.shape = cs.space.AddShape(shape)
				cb.radius = radius
			}

			cb.tag = actor.Tag
			cb.vol = vol
			cb.active = col.Enabled
			cb.shape.SetFilter(shapeFilter(actor.Tag, col))
			cb.body.SetPosition(cp.Vector{X: vol.center.X, Y: vol.center.Z})
		})

	for e, cb := range cs.bodies {
		if _, ok := seen[e]; ok {
			continue
		}
		cs.space.RemoveShape(cb.shape)
		cs.space.RemoveBody(cb.body)
		delete(cs.bodies, e)
		cs.logger.Debug("collider removed", slog.String("entity", e.String()))
	}
}

func shapeFilter(tag component.ObjectTag, col *component.Collider) cp.ShapeFilter {
	if !col.Enabled {
		return cp.NewShapeFilter(cp.NO_GROUP, 0, 0)
	}
	mask := component.AllTags &^ col.Exclude
	return cp.NewShapeFilter(cp.NO_GROUP, uint(1)<<tag, uint(mask))
}

func (cs *CollisionSystem) findContacts() map[contactKey]contact {
	out := make(map[contactKey]contact, len(cs.contacts))
	for e, cb := range cs.bodies {
		if !cb.active {
			continue
		}
		self := e
		cs.space.BBQuery(cb.shape.BB(), cb.shape.Filter, func(shape *cp.Shape, _ interface{}) {
			other, ok := shape.UserData.(ecs.Entity)
			if !ok || other <= self {
				return
			}
			ob := cs.bodies[other]
			if ob == nil || !ob.active || !cb.vol.overlaps(ob.vol) {
				return
			}
			out[makeContactKey(self, other)] = orderedContact(self, cb.tag, other, ob.tag)
		}, nil)
	}
	return out
}

func (cs *CollisionSystem) diff(current map[contactKey]contact) []collisionEvent {
	var events []collisionEvent
	for _, k := range sortedKeys(current) {
		phase := phaseStay
		if _, ok := cs.contacts[k]; !ok {
			phase = phaseEnter
		}
		events = appendPair(events, phase, k, current[k])
	}
	for _, k := range sortedKeys(cs.contacts) {
		if _, ok := current[k]; ok {
			continue
		}
		events = appendPair(events, phaseExit, k, cs.contacts[k])
	}
	return events
}

func appendPair(events []collisionEvent, phase int, k contactKey, c contact) []collisionEvent {
	return append(events,
		collisionEvent{phase: phase, c: Collision{Self: k.a, Other: k.b, OtherTag: c.tagB}},
		collisionEvent{phase: phase, c: Collision{Self: k.b, Other: k.a, OtherTag: c.tagA}},
	)
}

func makeContactKey(a, b ecs.Entity) contactKey {
	if b < a {
		a, b = b, a
	}
	return contactKey{a: a, b: b}
}

func orderedContact(a ecs.Entity, tagA component.ObjectTag, b ecs.Entity, tagB component.ObjectTag) contact {
	if b < a {
		tagA, tagB = tagB, tagA
	}
	return contact{tagA: tagA, tagB: tagB}
}

func sortedKeys(m map[contactKey]contact) []contactKey {
	keys := make([]contactKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
	return keys
}

// volume is a collider in world space.
type volume struct {
	shape   component.ColliderShape
	center  common.Vec3
	extents common.Vec3
	radius  float64
}

func worldVolume(w *ecs.World, e ecs.Entity, col *component.Collider) (volume, bool) {
	pos, ok := ecs.WorldPosition(w, e)
	if !ok {
		return volume{}, false
	}
	rot, _ := ecs.WorldRotation(w, e)
	scale, _ := ecs.WorldScale(w, e)

	v := volume{shape: col.Shape, center: pos.Add(rot.Rotate(col.Offset.Mul(scale)))}
	switch col.Shape {
	case component.ShapeSphere:
		v.radius = col.Radius * scale.Abs().MaxComponent()
	default:
		ext := col.Extents.Mul(scale).Abs()
		ax := rot.Rotate(common.Vec3{X: ext.X}).Abs()
		ay := rot.Rotate(common.Vec3{Y: ext.Y}).Abs()
		az := rot.Rotate(common.Vec3{Z: ext.Z}).Abs()
		v.extents = ax.Add(ay).Add(az)
	}
	return v, true
}

func (v volume) broadRadius() float64 {
	if v.shape == component.ShapeSphere {
		return v.radius
	}
	return math.Hypot(v.extents.X, v.extents.Z)
}

func (v volume) overlaps(o volume) bool {
	switch {
	case v.shape == component.ShapeSphere && o.shape == component.ShapeSphere:
		r := v.radius + o.radius
		return v.center.Sub(o.center).LengthSq() <= r*r
	case v.shape == component.ShapeSphere:
		return o.containsSphere(v.center, v.radius)
	case o.shape == component.ShapeSphere:
		return v.containsSphere(o.center, o.radius)
	default:
		d := v.center.Sub(o.center).Abs()
		s := v.extents.Add(o.extents)
		return d.X <= s.X && d.Y <= s.Y && d.Z <= s.Z
	}
}

func (v volume) containsSphere(c common.Vec3, r float64) bool {
	lo := v.center.Sub(v.extents)
	hi := v.center.Add(v.extents)
	closest := common.Vec3{
		X: common.Clamp(c.X, lo.X, hi.X),
		Y: common.Clamp(c.Y, lo.Y, hi.Y),
		Z: common.Clamp(c.Z, lo.Z, hi.Z),
	}
	return closest.Sub(c).LengthSq() <= r*r
}
