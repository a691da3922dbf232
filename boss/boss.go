// Package boss implements the arena boss: an actor whose behavior trees pick
// combat actions that an action manager runs one at a time.
package boss

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/messenger"
)

//go:generate go tool mockgen -destination=./mocks/boss_mock.go -package=mocks . Camera,Fader

var ErrAlreadyDead = errors.New("boss: already dead")

// ActionID names the boss actions. Names in yaml are parsed into IDs when a
// tree is built so a typo fails the build instead of a tick.
type ActionID uint8

const (
	ActionIdle ActionID = iota
	ActionWalk
	ActionJumpAttack
	ActionBeam
	ActionDeath

	actionCount
)

var actionNames = [...]string{
	ActionIdle:       "idle",
	ActionWalk:       "walk",
	ActionJumpAttack: "jump_attack",
	ActionBeam:       "beam",
	ActionDeath:      "death",
}

func (a ActionID) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

func ParseActionID(s string) (ActionID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range actionNames {
		if name == s {
			return ActionID(i), nil
		}
	}
	return 0, fmt.Errorf("boss: unknown action %q", s)
}

// Notifier publishes scene messages.
type Notifier interface {
	Notify(t messenger.Type, payload any)
}

// Camera is retargeted onto the boss when it dies.
type Camera interface {
	SetTarget(e ecs.Entity)
}

// Fader freezes the boss while a transition runs.
type Fader interface {
	IsFading() bool
}

type CollisionRegistry interface {
	Register(e ecs.Entity, l system.CollisionListener)
}

// Deps are the scene services the boss talks to. World and Messenger are
// required.
type Deps struct {
	World      *ecs.World
	Messenger  Notifier
	Camera     Camera
	Fade       Fader
	Collisions CollisionRegistry
	Logger     *slog.Logger
	// Gravity must match the rigidbody system so jumps land on target.
	Gravity float64
	// Strict panics on unknown action changes.
	Strict bool
}

func (d *Deps) validate() error {
	if d.World == nil {
		return errors.New("boss: nil world")
	}
	if d.Messenger == nil {
		return errors.New("boss: nil messenger")
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Gravity == 0 {
		d.Gravity = system.DefaultGravity
	}
	return nil
}
