package boss

import (
	"gopkg.in/yaml.v3"

	"github.com/milk9111/boomerang/common"
)

// Snapshot is a debug dump of the boss state.
type Snapshot struct {
	Name     string      `yaml:"name"`
	HP       int         `yaml:"hp"`
	MaxHP    int         `yaml:"max_hp"`
	Phase    string      `yaml:"phase"`
	Action   string      `yaml:"action"`
	Clip     string      `yaml:"clip"`
	Grounded bool        `yaml:"grounded"`
	Firing   bool        `yaml:"firing"`
	Dead     bool        `yaml:"dead"`
	Clock    float64     `yaml:"clock"`
	Position common.Vec3 `yaml:"position"`
	Distance float64     `yaml:"distance"`
}

func (e *Enemy) Snapshot() Snapshot {
	s := Snapshot{
		Name:     e.spec.Name,
		HP:       e.health.HP,
		MaxHP:    e.health.MaxHP,
		Phase:    e.Phase(),
		Clip:     e.anim.Clip,
		Grounded: e.grounded,
		Firing:   e.beam.firing,
		Dead:     e.dead,
		Clock:    e.clock,
		Position: e.position(),
		Distance: e.horizontalDistance(),
	}
	if id, ok := e.manager.Current(); ok {
		s.Action = id.String()
	}
	return s
}

// YAML renders the snapshot for pasting into bug reports.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
