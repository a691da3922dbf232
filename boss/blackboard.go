package boss

import "github.com/milk9111/boomerang/ai"

// BlackboardVars are the variables tree scripts can read.
var BlackboardVars = []string{
	"distance",
	"hp_ratio",
	"grounded",
	"since_jump",
	"since_beam",
	"clock",
	"jump_ready",
	"beam_ready",
	"in_attack_range",
	"far",
}

func (e *Enemy) fillBlackboard() {
	distance := e.horizontalDistance()
	sinceJump := e.clock - e.lastJump
	sinceBeam := e.clock - e.lastBeam

	e.bb.Set("distance", distance)
	e.bb.Set("hp_ratio", e.health.Ratio())
	e.bb.Set("grounded", e.grounded)
	e.bb.Set("since_jump", sinceJump)
	e.bb.Set("since_beam", sinceBeam)
	e.bb.Set("clock", e.clock)
	e.bb.Set("jump_ready", sinceJump >= e.spec.Cooldowns.Jump)
	e.bb.Set("beam_ready", sinceBeam >= e.spec.Cooldowns.Beam)
	e.bb.Set("in_attack_range", distance <= e.spec.Actions.AttackRange)
	e.bb.Set("far", distance > e.spec.Actions.JumpDistance)
}

// conditions are the named predicates trees reference by name.
func (e *Enemy) conditions() map[string]ai.Condition {
	flag := func(name string) ai.Condition {
		return ai.ConditionFunc(func(bb *ai.Blackboard) bool { return bb.Bool(name) })
	}
	return map[string]ai.Condition{
		"grounded":        flag("grounded"),
		"jump_ready":      flag("jump_ready"),
		"beam_ready":      flag("beam_ready"),
		"in_attack_range": flag("in_attack_range"),
		"far":             flag("far"),
	}
}
