package ai

import (
	"fmt"
	"strings"
)

// NodeSpec is the data form of a tree node. Exactly one of Condition (a
// named code predicate) or Script (a tengo expression) is set on condition
// nodes; Action names the action of a request node.
type NodeSpec struct {
	Kind      string
	Name      string
	Children  []NodeSpec
	Condition string
	Script    string
	Action    string
}

// BuildContext resolves the names found in a NodeSpec.
type BuildContext[K comparable] struct {
	// Resolve turns an action name into a key and fails on unknown names.
	Resolve func(name string) (K, error)
	// Conditions are the named predicates available to Condition.
	Conditions map[string]Condition
	// Vars are the blackboard variables scripts may read.
	Vars []string
}

// Build converts spec into a validated tree. Unknown kinds, actions and
// conditions are returned as ConfigurationErrors.
func Build[K comparable](spec NodeSpec, ctx BuildContext[K]) (*Tree[K], error) {
	root, err := buildNode(spec, ctx, 0)
	if err != nil {
		return nil, err
	}
	return NewTree(root)
}

func buildNode[K comparable](spec NodeSpec, ctx BuildContext[K], depth int) (*Node[K], error) {
	if depth > MaxDepth {
		return nil, invalidTree(spec.Name, "deeper than %d", MaxDepth)
	}
	kind, ok := ParseKind(strings.ToLower(strings.TrimSpace(spec.Kind)))
	if !ok {
		return nil, invalidTree(spec.Name, "unknown kind %q", spec.Kind)
	}
	n := &Node[K]{Kind: kind, Name: spec.Name}

	switch kind {
	case KindCondition:
		c, err := buildCondition(spec, ctx)
		if err != nil {
			return nil, err
		}
		n.Check = c
	case KindRequest:
		if ctx.Resolve == nil {
			return nil, invalidTree(spec.Name, "no action resolver")
		}
		key, err := ctx.Resolve(spec.Action)
		if err != nil {
			return nil, &ConfigurationError{Key: spec.Action, Reason: err.Error(), Err: ErrUnknownAction}
		}
		n.Action = key
	}

	for _, cs := range spec.Children {
		child, err := buildNode(cs, ctx, depth+1)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func buildCondition[K comparable](spec NodeSpec, ctx BuildContext[K]) (Condition, error) {
	switch {
	case spec.Condition != "" && spec.Script != "":
		return nil, invalidTree(spec.Name, "condition and script are exclusive")
	case spec.Condition != "":
		c, ok := ctx.Conditions[spec.Condition]
		if !ok {
			return nil, invalidTree(spec.Name, "unknown condition %q", spec.Condition)
		}
		return c, nil
	case spec.Script != "":
		c, err := NewScriptCondition(spec.Script, ctx.Vars)
		if err != nil {
			return nil, &ConfigurationError{Key: spec.Name, Reason: err.Error(), Err: ErrInvalidTree}
		}
		return c, nil
	default:
		return nil, invalidTree(spec.Name, "condition needs a condition name or a script")
	}
}

// Describe renders a tree for debugging.
func Describe[K comparable](t *Tree[K]) string {
	var b strings.Builder
	describe(&b, t.root, 0)
	return b.String()
}

func describe[K comparable](b *strings.Builder, n *Node[K], depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Kind.String())
	if n.Name != "" {
		fmt.Fprintf(b, " %q", n.Name)
	}
	if n.Kind == KindRequest {
		fmt.Fprintf(b, " -> %v", n.Action)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		describe(b, c, depth+1)
	}
}
