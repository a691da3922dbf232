package prefabs

import (
	"fmt"

	"github.com/milk9111/boomerang/ai"
)

const BossFile = "boss.yaml"

type BossSpec struct {
	Name          string         `yaml:"name"`
	MaxHP         int            `yaml:"max_hp"`
	RotationSpeed float64        `yaml:"rotation_speed"`
	GravityScale  float64        `yaml:"gravity_scale"`
	Transform     TransformSpec  `yaml:"transform"`
	Collider      ColliderSpec   `yaml:"collider"`
	Parts         BossPartsSpec  `yaml:"parts"`
	Beam          BossBeamSpec   `yaml:"beam"`
	Actions       BossActionSpec `yaml:"actions"`
	Cooldowns     CooldownSpec   `yaml:"cooldowns"`
	Phases        []PhaseSpec    `yaml:"phases"`
}

type BossPartsSpec struct {
	Collider        ColliderSpec `yaml:"collider"`
	BoomerangDamage int          `yaml:"boomerang_damage"`
}

type BossBeamSpec struct {
	Collider    ColliderSpec `yaml:"collider"`
	HitInterval float64      `yaml:"hit_interval"`
	Damage      int          `yaml:"damage"`
}

// BossActionSpec holds action timings in seconds and distances in world
// units.
type BossActionSpec struct {
	IdleTime        float64 `yaml:"idle_time"`
	WalkTime        float64 `yaml:"walk_time"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	AttackRange     float64 `yaml:"attack_range"`
	JumpDistance    float64 `yaml:"jump_distance"`
	ChargeTime      float64 `yaml:"charge_time"`
	JumpHeight      float64 `yaml:"jump_height"`
	JumpTimeout     float64 `yaml:"jump_timeout"`
	LandingTime     float64 `yaml:"landing_time"`
	ImpactRadius    float64 `yaml:"impact_radius"`
	ImpactDamage    int     `yaml:"impact_damage"`
	ImpactShake     float64 `yaml:"impact_shake"`
	BeamChargeTime  float64 `yaml:"beam_charge_time"`
	BeamFireTime    float64 `yaml:"beam_fire_time"`
	BeamRecoverTime float64 `yaml:"beam_recover_time"`
	DeathTime       float64 `yaml:"death_time"`
}

type CooldownSpec struct {
	Jump float64 `yaml:"jump"`
	Beam float64 `yaml:"beam"`
}

// PhaseSpec activates once the HP ratio drops to HPTrigger or below. The
// first phase is active from the start.
type PhaseSpec struct {
	Name      string   `yaml:"name"`
	HPTrigger float64  `yaml:"hp_trigger"`
	Speed     float64  `yaml:"speed"`
	Tree      TreeSpec `yaml:"tree"`
}

// TreeSpec is the yaml form of ai.NodeSpec.
type TreeSpec struct {
	Kind      string     `yaml:"kind"`
	Name      string     `yaml:"name"`
	Children  []TreeSpec `yaml:"children"`
	Condition string     `yaml:"condition"`
	Script    string     `yaml:"script"`
	Action    string     `yaml:"action"`
}

func (t TreeSpec) Node() ai.NodeSpec {
	n := ai.NodeSpec{
		Kind:      t.Kind,
		Name:      t.Name,
		Condition: t.Condition,
		Script:    t.Script,
		Action:    t.Action,
	}
	for _, c := range t.Children {
		n.Children = append(n.Children, c.Node())
	}
	return n
}

func LoadBossSpec() (*BossSpec, error) {
	return LoadBossSpecFile(BossFile)
}

func LoadBossSpecFile(filename string) (*BossSpec, error) {
	spec, err := LoadSpec[BossSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *BossSpec) applyDefaults() {
	if s.Name == "" {
		s.Name = "boss"
	}
	setDefaultInt(&s.MaxHP, 100)
	setDefault(&s.RotationSpeed, 2.5)
	setDefault(&s.GravityScale, 1)
	setDefaultInt(&s.Parts.BoomerangDamage, 10)
	setDefault(&s.Beam.HitInterval, 0.5)
	setDefaultInt(&s.Beam.Damage, 1)

	a := &s.Actions
	setDefault(&a.IdleTime, 1)
	setDefault(&a.WalkTime, 2)
	setDefault(&a.WalkSpeed, 3)
	setDefault(&a.AttackRange, 4)
	setDefault(&a.JumpDistance, 10)
	setDefault(&a.ChargeTime, 1.2)
	setDefault(&a.JumpHeight, 6)
	setDefault(&a.JumpTimeout, 3)
	setDefault(&a.LandingTime, 0.8)
	setDefault(&a.ImpactRadius, 5)
	setDefaultInt(&a.ImpactDamage, 1)
	setDefault(&a.ImpactShake, 0.6)
	setDefault(&a.BeamChargeTime, 1)
	setDefault(&a.BeamFireTime, 2)
	setDefault(&a.BeamRecoverTime, 0.8)
	setDefault(&a.DeathTime, 3)

	setDefault(&s.Cooldowns.Jump, 4)
	setDefault(&s.Cooldowns.Beam, 6)

	for i := range s.Phases {
		setDefault(&s.Phases[i].Speed, 1)
		if i == 0 && s.Phases[i].HPTrigger == 0 {
			s.Phases[i].HPTrigger = 1
		}
	}
}

// Validate checks the parts of the spec that defaults cannot repair.
func (s *BossSpec) Validate() error {
	if len(s.Phases) == 0 {
		return fmt.Errorf("%w: boss needs at least one phase", ErrInvalidSpec)
	}
	for i := 1; i < len(s.Phases); i++ {
		if s.Phases[i].HPTrigger >= s.Phases[i-1].HPTrigger {
			return fmt.Errorf("%w: phase %q trigger %.2f must be below %.2f",
				ErrInvalidSpec, s.Phases[i].Name, s.Phases[i].HPTrigger, s.Phases[i-1].HPTrigger)
		}
	}
	for _, c := range []ColliderSpec{s.Collider, s.Parts.Collider, s.Beam.Collider} {
		if _, err := c.Collider(); err != nil {
			return err
		}
	}
	return nil
}
