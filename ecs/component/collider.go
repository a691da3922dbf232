package component

import "github.com/milk9111/boomerang/common"

type ColliderShape uint8

const (
	ShapeBox ColliderShape = iota
	ShapeSphere
)

// Collider describes a trigger volume. Extents are half sizes for boxes and
// Radius is used for spheres; both are scaled by the world scale.
type Collider struct {
	Shape   ColliderShape
	Extents common.Vec3
	Radius  float64
	Offset  common.Vec3
	Enabled bool
	// Exclude lists tags this collider never reports contacts with.
	Exclude TagSet
}

func (c *Collider) Excludes(t ObjectTag) bool {
	return c != nil && c.Exclude.Has(t)
}

var ColliderComponent = NewComponent[Collider]("collider")
