package prefabs

import "fmt"

const PlayerFile = "player.yaml"

type PlayerSpec struct {
	Name            string        `yaml:"name"`
	MaxHP           int           `yaml:"max_hp"`
	MoveSpeed       float64       `yaml:"move_speed"`
	JumpSpeed       float64       `yaml:"jump_speed"`
	InvulnerableFor float64       `yaml:"invulnerable_for"`
	Transform       TransformSpec `yaml:"transform"`
	Collider        ColliderSpec  `yaml:"collider"`
	Boomerang       BoomerangSpec `yaml:"boomerang"`
}

type BoomerangSpec struct {
	Speed       float64      `yaml:"speed"`
	ReturnSpeed float64      `yaml:"return_speed"`
	MaxRange    float64      `yaml:"max_range"`
	CatchRadius float64      `yaml:"catch_radius"`
	Height      float64      `yaml:"height"`
	Collider    ColliderSpec `yaml:"collider"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if _, err := spec.Collider.Collider(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	if _, err := spec.Boomerang.Collider.Collider(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: boomerang: %w", PlayerFile, err)
	}
	return &spec, nil
}

func (s *PlayerSpec) applyDefaults() {
	if s.Name == "" {
		s.Name = "player"
	}
	setDefaultInt(&s.MaxHP, 5)
	setDefault(&s.MoveSpeed, 6)
	setDefault(&s.JumpSpeed, 8)
	setDefault(&s.InvulnerableFor, 1)
	b := &s.Boomerang
	setDefault(&b.Speed, 14)
	setDefault(&b.ReturnSpeed, 16)
	setDefault(&b.MaxRange, 12)
	setDefault(&b.CatchRadius, 0.8)
	setDefault(&b.Height, 1)
}
