package ai

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const scriptResult = "__res__"

// ScriptCondition is a tengo boolean expression over blackboard variables,
// for example `distance > 8 && since_jump > 4`. The script is compiled once
// with the declared variable names; each Eval copies the blackboard in and
// reruns it.
type ScriptCondition struct {
	expr     string
	vars     []string
	compiled *tengo.Compiled
}

func NewScriptCondition(expr string, vars []string) (*ScriptCondition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("ai: empty condition script")
	}
	src := fmt.Sprintf("math := import(\"math\")\n%s := (%s)", scriptResult, expr)
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, name := range vars {
		if err := script.Add(name, nil); err != nil {
			return nil, fmt.Errorf("ai: script variable %q: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %q: %w", expr, err)
	}
	return &ScriptCondition{
		expr:     expr,
		vars:     append([]string(nil), vars...),
		compiled: compiled,
	}, nil
}

func (s *ScriptCondition) Eval(bb *Blackboard) (bool, error) {
	for _, name := range s.vars {
		v, _ := bb.Get(name)
		if err := s.compiled.Set(name, v); err != nil {
			return false, fmt.Errorf("ai: set %q: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return false, fmt.Errorf("ai: run %q: %w", s.expr, err)
	}
	res := s.compiled.Get(scriptResult)
	if res.ValueType() != "bool" {
		return false, fmt.Errorf("ai: %q yields %s, want bool", s.expr, res.ValueType())
	}
	return res.Bool(), nil
}

func (s *ScriptCondition) String() string { return s.expr }
