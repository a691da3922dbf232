package boss

import (
	"errors"
	"log/slog"

	"github.com/milk9111/boomerang/ecs/component"
	"github.com/milk9111/boomerang/ecs/system"
)

// partsListener turns boomerang hits on the weak spot into damage.
type partsListener struct {
	e *Enemy
}

func (p partsListener) OnCollisionEnter(c system.Collision) {
	if c.OtherTag != component.TagBoomerang {
		return
	}
	err := p.e.AddDamage(p.e.spec.Parts.BoomerangDamage)
	if err != nil && !errors.Is(err, ErrAlreadyDead) {
		p.e.logger.Warn("boomerang hit", slog.Any("error", err))
	}
}

func (partsListener) OnCollisionStay(system.Collision) {}

func (partsListener) OnCollisionExit(system.Collision) {}
