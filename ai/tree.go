package ai

import "fmt"

type Kind uint8

const (
	KindSelector Kind = iota
	KindSequence
	KindCondition
	KindInverter
	KindRequest
)

var kindNames = [...]string{
	KindSelector:  "selector",
	KindSequence:  "sequence",
	KindCondition: "condition",
	KindInverter:  "inverter",
	KindRequest:   "request",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Condition is a predicate over the blackboard. It must not change state.
type Condition interface {
	Eval(bb *Blackboard) (bool, error)
}

type ConditionFunc func(bb *Blackboard) bool

func (f ConditionFunc) Eval(bb *Blackboard) (bool, error) { return f(bb), nil }

// Node is one behavior tree node. Which fields matter depends on Kind:
// composites use Children, conditions use Check, requests use Action.
type Node[K comparable] struct {
	Kind     Kind
	Name     string
	Children []*Node[K]
	Check    Condition
	Action   K
}

func Selector[K comparable](name string, children ...*Node[K]) *Node[K] {
	return &Node[K]{Kind: KindSelector, Name: name, Children: children}
}

func SequenceNode[K comparable](name string, children ...*Node[K]) *Node[K] {
	return &Node[K]{Kind: KindSequence, Name: name, Children: children}
}

func If[K comparable](name string, c Condition) *Node[K] {
	return &Node[K]{Kind: KindCondition, Name: name, Check: c}
}

func Not[K comparable](name string, child *Node[K]) *Node[K] {
	return &Node[K]{Kind: KindInverter, Name: name, Children: []*Node[K]{child}}
}

func Request[K comparable](name string, action K) *Node[K] {
	return &Node[K]{Kind: KindRequest, Name: name, Action: action}
}

// MaxDepth bounds tree height.
const MaxDepth = 32

// Validate checks arity and rejects cycles.
func Validate[K comparable](root *Node[K]) error {
	if root == nil {
		return invalidTree("", "nil root")
	}
	return validate(root, map[*Node[K]]bool{}, 0)
}

func validate[K comparable](n *Node[K], path map[*Node[K]]bool, depth int) error {
	if n == nil {
		return invalidTree("", "nil child")
	}
	if path[n] {
		return invalidTree(n.Name, "cycle")
	}
	if depth > MaxDepth {
		return invalidTree(n.Name, "deeper than %d", MaxDepth)
	}

	switch n.Kind {
	case KindSelector, KindSequence:
		if len(n.Children) == 0 {
			return invalidTree(n.Name, "%s needs children", n.Kind)
		}
	case KindInverter:
		if len(n.Children) != 1 {
			return invalidTree(n.Name, "inverter needs exactly one child, has %d", len(n.Children))
		}
	case KindCondition:
		if len(n.Children) != 0 || n.Check == nil {
			return invalidTree(n.Name, "condition needs a check and no children")
		}
	case KindRequest:
		if len(n.Children) != 0 {
			return invalidTree(n.Name, "request is a leaf")
		}
	default:
		return invalidTree(n.Name, "unknown node %s", n.Kind)
	}

	path[n] = true
	defer delete(path, n)
	for _, c := range n.Children {
		if err := validate(c, path, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Tree is a validated behavior tree.
type Tree[K comparable] struct {
	root *Node[K]
}

func NewTree[K comparable](root *Node[K]) (*Tree[K], error) {
	if err := Validate(root); err != nil {
		return nil, err
	}
	return &Tree[K]{root: root}, nil
}

func (t *Tree[K]) Root() *Node[K] { return t.root }

type tick[K comparable] struct {
	bb        *Blackboard
	request   K
	requested bool
}

// Tick evaluates the tree once and returns the first action requested, if
// any. Evaluation stops as soon as a request is made.
func (t *Tree[K]) Tick(bb *Blackboard) (K, bool, error) {
	tk := &tick[K]{bb: bb}
	_, err := tk.eval(t.root)
	return tk.request, tk.requested, err
}

func (tk *tick[K]) eval(n *Node[K]) (bool, error) {
	switch n.Kind {
	case KindSelector:
		for _, c := range n.Children {
			ok, err := tk.eval(c)
			if err != nil {
				return false, err
			}
			if ok || tk.requested {
				return true, nil
			}
		}
		return false, nil
	case KindSequence:
		for _, c := range n.Children {
			ok, err := tk.eval(c)
			if err != nil {
				return false, err
			}
			if tk.requested {
				return true, nil
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case KindInverter:
		ok, err := tk.eval(n.Children[0])
		if err != nil {
			return false, err
		}
		if tk.requested {
			return true, nil
		}
		return !ok, nil
	case KindCondition:
		ok, err := n.Check.Eval(tk.bb)
		if err != nil {
			return false, fmt.Errorf("ai: condition %q: %w", n.Name, err)
		}
		return ok, nil
	case KindRequest:
		tk.request = n.Action
		tk.requested = true
		return true, nil
	}
	return false, invalidTree(n.Name, "unknown node %s", n.Kind)
}
