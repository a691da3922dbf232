package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/boomerang/common"
	"github.com/milk9111/boomerang/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec3Spec accepts either a [x, y, z] sequence or a {x, y, z} mapping.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v *Vec3Spec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 3 {
			return fmt.Errorf("line %d: vector needs 3 values, got %d", value.Line, len(xs))
		}
		v.X, v.Y, v.Z = xs[0], xs[1], xs[2]
		return nil
	case yaml.MappingNode:
		type plain Vec3Spec
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*v = Vec3Spec(p)
		return nil
	default:
		return fmt.Errorf("line %d: vector must be a sequence or mapping", value.Line)
	}
}

func (v Vec3Spec) Vec() common.Vec3 { return common.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

func (v Vec3Spec) IsZero() bool { return v == Vec3Spec{} }

type ColliderSpec struct {
	Shape   string   `yaml:"shape"`
	Extents Vec3Spec `yaml:"extents"`
	Radius  float64  `yaml:"radius"`
	Offset  Vec3Spec `yaml:"offset"`
	Exclude []string `yaml:"exclude"`
}

// Collider builds an enabled collider. Unknown shapes and tags are errors.
func (s ColliderSpec) Collider() (*component.Collider, error) {
	col := &component.Collider{
		Extents: s.Extents.Vec(),
		Radius:  s.Radius,
		Offset:  s.Offset.Vec(),
		Enabled: true,
	}
	switch s.Shape {
	case "", "box":
		col.Shape = component.ShapeBox
		if s.Extents.IsZero() {
			return nil, fmt.Errorf("%w: box collider without extents", ErrInvalidSpec)
		}
	case "sphere":
		col.Shape = component.ShapeSphere
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere collider without radius", ErrInvalidSpec)
		}
	default:
		return nil, fmt.Errorf("%w: unknown collider shape %q", ErrInvalidSpec, s.Shape)
	}
	for _, name := range s.Exclude {
		tag, err := component.ParseObjectTag(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
		}
		col.Exclude = col.Exclude.With(tag)
	}
	return col, nil
}

type TransformSpec struct {
	Position Vec3Spec `yaml:"position"`
	Scale    Vec3Spec `yaml:"scale"`
	// Yaw is in degrees around +Y.
	Yaw float64 `yaml:"yaw"`
}

func (s TransformSpec) Transform() *component.Transform {
	t := component.NewTransform(s.Position.Vec())
	if !s.Scale.IsZero() {
		t.Scale = s.Scale.Vec()
	}
	if s.Yaw != 0 {
		t.Rotation = common.QuatFromAxisAngle(common.Vec3Up, s.Yaw*degToRad)
	}
	return t
}

const degToRad = 3.141592653589793 / 180

func setDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setDefaultInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
