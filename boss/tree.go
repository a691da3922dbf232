package boss

import "github.com/milk9111/boomerang/ai"

// DefaultTree is used by phases whose spec has no tree: jump at a player
// beyond JumpDistance, otherwise beam, walk into range and idle.
func DefaultTree(conds map[string]ai.Condition) (*ai.Tree[ActionID], error) {
	return ai.NewTree(ai.Selector("root",
		ai.SequenceNode("jump_when_far",
			ai.If[ActionID]("grounded", conds["grounded"]),
			ai.If[ActionID]("far", conds["far"]),
			ai.If[ActionID]("jump_ready", conds["jump_ready"]),
			ai.Request("jump", ActionJumpAttack),
		),
		ai.SequenceNode("beam",
			ai.If[ActionID]("grounded", conds["grounded"]),
			ai.Not("out_of_range", ai.If[ActionID]("in_attack_range", conds["in_attack_range"])),
			ai.If[ActionID]("beam_ready", conds["beam_ready"]),
			ai.Request("beam", ActionBeam),
		),
		ai.SequenceNode("approach",
			ai.Not("out_of_range", ai.If[ActionID]("in_attack_range", conds["in_attack_range"])),
			ai.Request("walk", ActionWalk),
		),
		ai.Request("idle", ActionIdle),
	))
}
