package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boomerang/actor"
)

// keyboardInput maps WASD or arrows to movement, Space to jump and J or the
// left mouse button to throw.
type keyboardInput struct{}

func (keyboardInput) State() actor.InputState {
	var s actor.InputState
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		s.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		s.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		s.MoveZ--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		s.MoveZ++
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		z := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if x*x+z*z > 0.09 {
			s.MoveX, s.MoveZ = x, z
		}
		s.Jump = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		s.Throw = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontTopRight)
	}

	s.Jump = s.Jump || ebiten.IsKeyPressed(ebiten.KeySpace)
	s.Throw = s.Throw || ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return s
}
