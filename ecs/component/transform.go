package component

import "github.com/milk9111/boomerang/common"

// Transform is local to Parent. Parent holds the raw entity handle, zero
// meaning a root transform; use the ecs helpers to change it.
type Transform struct {
	Position common.Vec3
	Scale    common.Vec3
	Rotation common.Quat
	Parent   uint64
}

// NewTransform returns a root transform at pos with unit scale.
func NewTransform(pos common.Vec3) *Transform {
	return &Transform{Position: pos, Scale: common.Vec3One, Rotation: common.QuatIdentity}
}

var TransformComponent = NewComponent[Transform]("transform")
