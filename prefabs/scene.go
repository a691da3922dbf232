package prefabs

const SceneFile = "scene.yaml"

type SceneSpec struct {
	Name    string          `yaml:"name"`
	Gravity float64         `yaml:"gravity"`
	Stage   StageSpec       `yaml:"stage"`
	Camera  SceneCameraSpec `yaml:"camera"`
	Fade    FadeSpec        `yaml:"fade"`
	Effects EffectLifetimes `yaml:"effects"`
	Debug   bool            `yaml:"debug"`
}

type StageSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
}

type SceneCameraSpec struct {
	Offset     Vec3Spec `yaml:"offset"`
	Smoothness float64  `yaml:"smoothness"`
}

type FadeSpec struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

// EffectLifetimes are in seconds.
type EffectLifetimes struct {
	Charge float64 `yaml:"charge"`
	Impact float64 `yaml:"impact"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *SceneSpec) applyDefaults() {
	if s.Name == "" {
		s.Name = "arena"
	}
	setDefault(&s.Gravity, -19.6)
	if s.Camera.Offset.IsZero() {
		s.Camera.Offset = Vec3Spec{Y: 12, Z: 16}
	}
	setDefault(&s.Camera.Smoothness, 6)
	setDefault(&s.Fade.In, 0.8)
	setDefault(&s.Fade.Out, 1.2)
	setDefault(&s.Effects.Charge, 1.2)
	setDefault(&s.Effects.Impact, 0.6)
	if s.Stage.Collider.Extents.IsZero() {
		s.Stage.Collider = ColliderSpec{Shape: "box", Extents: Vec3Spec{X: 30, Y: 1, Z: 30}}
		s.Stage.Transform.Position = Vec3Spec{Y: -1}
	}
}
