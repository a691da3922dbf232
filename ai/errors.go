package ai

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction = errors.New("ai: unknown action")
	ErrInvalidTree   = errors.New("ai: invalid behavior tree")
)

// ConfigurationError reports authoring mistakes: missing actions and
// malformed trees.
type ConfigurationError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := e.Err.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Key)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func invalidTree(node, format string, args ...any) error {
	return &ConfigurationError{Key: node, Reason: fmt.Sprintf(format, args...), Err: ErrInvalidTree}
}
