package actor

import (
	"errors"
	"fmt"

	"github.com/milk9111/boomerang/ecs"
	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/prefabs"
)

// NewStage spawns the arena floor.
func NewStage(w *ecs.World, spec prefabs.StageSpec) (ecs.Entity, error) {
	col, err := spec.Collider.Collider()
	if err != nil {
		return 0, fmt.Errorf("actor: stage: %w", err)
	}
	e := ecs.CreateEntity(w)
	err = errors.Join(
		ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Tag: component.TagStage, Name: "stage"}),
		ecs.Add(w, e, component.TransformComponent.Kind(), spec.Transform.Transform()),
		ecs.Add(w, e, component.ColliderComponent.Kind(), col),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("actor: stage: %w", err)
	}
	return e, nil
}
