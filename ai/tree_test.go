package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func above(name string, v float64) ConditionFunc {
	return func(bb *Blackboard) bool { return bb.Float(name) > v }
}

func TestTreeSelectorPicksFirstSuccess(t *testing.T) {
	root := Selector("root",
		SequenceNode("far",
			If[string]("distance > 8", above("distance", 8)),
			Request("jump", "jump"),
		),
		SequenceNode("mid",
			If[string]("distance > 3", above("distance", 3)),
			Request("beam", "beam"),
		),
		Request("idle", "idle"),
	)
	tree, err := NewTree(root)
	require.NoError(t, err)

	cases := []struct {
		distance float64
		want     string
	}{
		{10, "jump"},
		{5, "beam"},
		{1, "idle"},
	}
	for _, c := range cases {
		bb := NewBlackboard()
		bb.Set("distance", c.distance)
		got, ok, err := tree.Tick(bb)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, c.want, got)
	}
}

func TestTreeFirstRequestWins(t *testing.T) {
	tree, err := NewTree(SequenceNode("greedy",
		Request("a", "a"),
		Request("b", "b"),
	))
	require.NoError(t, err)

	got, ok, err := tree.Tick(NewBlackboard())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestTreeInverter(t *testing.T) {
	tree, err := NewTree(Selector("root",
		SequenceNode("not_grounded",
			Not("airborne", If[string]("grounded", ConditionFunc(func(bb *Blackboard) bool { return bb.Bool("grounded") }))),
			Request("wait", "wait"),
		),
		Request("walk", "walk"),
	))
	require.NoError(t, err)

	bb := NewBlackboard()
	got, _, _ := tree.Tick(bb)
	assert.Equal(t, "wait", got)

	bb.Set("grounded", true)
	got, _, _ = tree.Tick(bb)
	assert.Equal(t, "walk", got)
}

func TestTreeNoRequest(t *testing.T) {
	tree, err := NewTree(SequenceNode("gate",
		If[int]("never", ConditionFunc(func(*Blackboard) bool { return false })),
		Request("x", 1),
	))
	require.NoError(t, err)
	_, ok, err := tree.Tick(NewBlackboard())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateRejects(t *testing.T) {
	cyclic := Selector[string]("loop")
	cyclic.Children = []*Node[string]{SequenceNode("inner", cyclic)}

	cases := []struct {
		name string
		root *Node[string]
	}{
		{"nil_root", nil},
		{"empty_selector", Selector[string]("empty")},
		{"inverter_two_children", &Node[string]{Kind: KindInverter, Children: []*Node[string]{Request("a", "a"), Request("b", "b")}}},
		{"condition_without_check", &Node[string]{Kind: KindCondition, Name: "bare"}},
		{"request_with_children", &Node[string]{Kind: KindRequest, Children: []*Node[string]{Request("a", "a")}}},
		{"unknown_kind", &Node[string]{Kind: Kind(99)}},
		{"cycle", cyclic},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTree(c.root)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTree))
		})
	}
}

func TestValidateAllowsSharedSubtrees(t *testing.T) {
	shared := Request("idle", "idle")
	_, err := NewTree(Selector("root", SequenceNode("a", shared), SequenceNode("b", shared)))
	assert.NoError(t, err)
}

// Random trees never yield more than the single request the tick returns,
// and that request always names a leaf that exists in the tree.
func TestTreeAtMostOneRequestProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		leaves := map[int]bool{}
		next := 0
		var gen func(depth int) *Node[int]
		gen = func(depth int) *Node[int] {
			kind := rapid.IntRange(0, 4).Draw(t, "kind")
			if depth >= 4 {
				kind = rapid.SampledFrom([]int{int(KindCondition), int(KindRequest)}).Draw(t, "leaf")
			}
			switch Kind(kind) {
			case KindSelector, KindSequence:
				n := &Node[int]{Kind: Kind(kind)}
				for i := rapid.IntRange(1, 3).Draw(t, "width"); i > 0; i-- {
					n.Children = append(n.Children, gen(depth+1))
				}
				return n
			case KindInverter:
				return Not("not", gen(depth+1))
			case KindCondition:
				v := rapid.Bool().Draw(t, "cond")
				return If[int]("c", ConditionFunc(func(*Blackboard) bool { return v }))
			default:
				next++
				leaves[next] = true
				return Request("r", next)
			}
		}

		tree, err := NewTree(gen(0))
		if err != nil {
			t.Fatalf("generated tree invalid: %v", err)
		}
		got, ok, err := tree.Tick(NewBlackboard())
		if err != nil {
			t.Fatalf("tick: %v", err)
		}
		if ok && !leaves[got] {
			t.Fatalf("request %d is not a leaf of the tree", got)
		}
	})
}
