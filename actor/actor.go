// Package actor holds the non-boss scene actors: the player, its boomerang,
// the stage and the effect spawner.
package actor

import (
	"errors"
	"log/slog"

	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/system"
	"github.com/milk9111/boomerang/messenger"
)

// Updater is an actor that runs once per frame before physics.
type Updater interface {
	UpdateActor(dt float64)
}

// InputState is one frame of player input. Move is on the XZ plane.
type InputState struct {
	MoveX float64
	MoveZ float64
	Jump  bool
	Throw bool
}

// State lets a fixed InputState act as an Input.
func (s InputState) State() InputState { return s }

// Input is polled by the player once per frame.
type Input interface {
	State() InputState
}

type CollisionRegistry interface {
	Register(e ecs.Entity, l system.CollisionListener)
	Unregister(e ecs.Entity)
}

type Deps struct {
	World      *ecs.World
	Messenger  *messenger.Messenger
	Collisions CollisionRegistry
	Logger     *slog.Logger
}

func (d *Deps) validate() error {
	if d.World == nil {
		return errors.New("actor: nil world")
	}
	if d.Messenger == nil {
		return errors.New("actor: nil messenger")
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return nil
}
