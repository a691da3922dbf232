package ai

import "sort"

// Blackboard holds the world facts a tree reads during one tick. Values are
// float64, int, bool or string.
type Blackboard struct {
	vars map[string]any
}

func NewBlackboard() *Blackboard {
	return &Blackboard{vars: make(map[string]any)}
}

func (b *Blackboard) Set(name string, v any) {
	if b.vars == nil {
		b.vars = make(map[string]any)
	}
	b.vars[name] = v
}

func (b *Blackboard) Get(name string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.vars[name]
	return v, ok
}

// Float reads a numeric value; missing or non-numeric values read as 0.
func (b *Blackboard) Float(name string) float64 {
	v, _ := b.Get(name)
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func (b *Blackboard) Bool(name string) bool {
	v, _ := b.Get(name)
	flag, _ := v.(bool)
	return flag
}

// Names returns the set variable names in order.
func (b *Blackboard) Names() []string {
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.vars))
	for k := range b.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
