package ecs

import (
	"errors"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs/component"
)

// ErrTransformCycle is returned when a parent change would loop the hierarchy.
var ErrTransformCycle = errors.New("ecs: transform parent cycle")

const maxTransformDepth = 64

// SetParent attaches child under parent. A zero parent detaches it.
func SetParent(w *World, child, parent Entity) error {
	t, ok := Get(w, child, component.TransformComponent.Kind())
	if !ok {
		return component.ErrEntityNotAlive
	}
	if parent == 0 {
		t.Parent = 0
		return nil
	}
	if !Has(w, parent, component.TransformComponent.Kind()) {
		return component.ErrEntityNotAlive
	}
	for p, depth := parent, 0; p != 0; depth++ {
		if p == child || depth > maxTransformDepth {
			return ErrTransformCycle
		}
		pt, ok := Get(w, p, component.TransformComponent.Kind())
		if !ok {
			break
		}
		p = Entity(pt.Parent)
	}
	t.Parent = uint64(parent)
	return nil
}

// Parent returns the live parent of e.
func Parent(w *World, e Entity) (Entity, bool) {
	t, ok := Get(w, e, component.TransformComponent.Kind())
	if !ok || t.Parent == 0 {
		return 0, false
	}
	p := Entity(t.Parent)
	return p, IsAlive(w, p)
}

type worldTransform struct {
	pos   common.Vec3
	scale common.Vec3
	rot   common.Quat
}

func resolve(w *World, e Entity) (worldTransform, bool) {
	t, ok := Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return worldTransform{}, false
	}
	out := worldTransform{pos: t.Position, scale: t.Scale, rot: t.Rotation}
	for p, depth := Entity(t.Parent), 0; p != 0 && depth < maxTransformDepth; depth++ {
		pt, ok := Get(w, p, component.TransformComponent.Kind())
		if !ok {
			break
		}
		out.pos = pt.Position.Add(pt.Rotation.Rotate(out.pos.Mul(pt.Scale)))
		out.scale = out.scale.Mul(pt.Scale)
		out.rot = pt.Rotation.Mul(out.rot)
		p = Entity(pt.Parent)
	}
	return out, true
}

func WorldPosition(w *World, e Entity) (common.Vec3, bool) {
	r, ok := resolve(w, e)
	return r.pos, ok
}

func WorldScale(w *World, e Entity) (common.Vec3, bool) {
	r, ok := resolve(w, e)
	return r.scale, ok
}

func WorldRotation(w *World, e Entity) (common.Quat, bool) {
	r, ok := resolve(w, e)
	return r.rot, ok
}

// Forward is the world-space -Z axis of e.
func Forward(w *World, e Entity) (common.Vec3, bool) {
	r, ok := resolve(w, e)
	if !ok {
		return common.Vec3{}, false
	}
	return r.rot.Forward(), true
}
