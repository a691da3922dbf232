package boss

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/boomerang/ai"
	"github.com/milk9111/boomerang/messenger"
	"github.com/milk9111/boomerang/prefabs"
)

// phase is one stage of the fight. Phases only advance, never go back.
type phase struct {
	name    string
	trigger float64
	speed   float64
	tree    *ai.Tree[ActionID]
}

func buildPhases(spec *prefabs.BossSpec, conds map[string]ai.Condition) ([]phase, error) {
	ctx := ai.BuildContext[ActionID]{
		Resolve:    ParseActionID,
		Conditions: conds,
		Vars:       BlackboardVars,
	}
	phases := make([]phase, 0, len(spec.Phases))
	for _, ps := range spec.Phases {
		var (
			tree *ai.Tree[ActionID]
			err  error
		)
		if ps.Tree.Kind == "" {
			tree, err = DefaultTree(conds)
		} else {
			tree, err = ai.Build(ps.Tree.Node(), ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("boss: phase %q: %w", ps.Name, err)
		}
		phases = append(phases, phase{
			name:    ps.Name,
			trigger: ps.HPTrigger,
			speed:   ps.Speed,
			tree:    tree,
		})
	}
	return phases, nil
}

func (e *Enemy) refreshPhase() {
	ratio := e.health.Ratio()
	next := e.phase
	for i := e.phase + 1; i < len(e.phases); i++ {
		if ratio <= e.phases[i].trigger {
			next = i
		}
	}
	if next == e.phase {
		return
	}
	e.phase = next
	p := e.phases[next]
	e.anim.Speed = p.speed
	e.logger.Info("boss phase change", slog.String("phase", p.name), slog.Float64("ratio", ratio))
	e.deps.Messenger.Notify(messenger.BossPhaseChange, messenger.PhaseChange{Phase: next, Name: p.name})
}

// Reload swaps in the trees, phases and tunables of spec. A running action is
// re-entered with the new tunables; an ended one is left for the tree to
// replace. HP and phase progress carry over.
func (e *Enemy) Reload(spec *prefabs.BossSpec) error {
	if spec == nil {
		return fmt.Errorf("boss: nil spec")
	}
	if e.dead {
		return ErrAlreadyDead
	}
	phases, err := buildPhases(spec, e.conditions())
	if err != nil {
		return err
	}
	current, _ := e.manager.Current()
	running := !e.manager.Free()
	e.manager.Stop()

	e.spec = spec
	e.phases = phases
	if e.phase >= len(phases) {
		e.phase = len(phases) - 1
	}
	e.beam.interval = spec.Beam.HitInterval
	e.beam.damage = spec.Beam.Damage
	e.registerActions()

	if running {
		return e.Change(current)
	}
	return nil
}
