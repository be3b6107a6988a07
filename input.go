package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

const (
	stickDeadzone = 0.2
	// stickReach is how far from the torso the right stick places the aim point.
	stickReach = 150
)

// InputSystem polls ebiten and writes the player's Input component. Key-down
// edges are queued so a press is never lost between ticks.
type InputSystem struct {
	quit bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Quit reports whether the quit key was pressed.
func (i *InputSystem) Quit() bool {
	return i.quit
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	i.quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	dashPressed := inpututil.IsKeyJustPressed(ebiten.KeyZ)
	dashHeld := ebiten.IsKeyPressed(ebiten.KeyZ)

	cx, cy := ebiten.CursorPosition()
	pointerX, pointerY := float64(cx), float64(cy)

	var stickX, stickY float64
	stickAim := false
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			left = true
		}
		if leftX > stickDeadzone {
			right = true
		}

		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		dashPressed = dashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		dashHeld = dashHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			stickX, stickY = rx, ry
			stickAim = true
		}
	}

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.InputComponent.Kind()) {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		input.Left = left
		input.Right = right
		input.DashHeld = dashHeld
		input.PointerX, input.PointerY = pointerX, pointerY
		if stickAim {
			if x, y, ok := torsoPosition(w, e); ok {
				input.PointerX = x + stickX*stickReach
				input.PointerY = y + stickY*stickReach
			}
		}
		if jumpPressed {
			input.Press(component.ActionJump)
		}
		if dashPressed {
			input.Press(component.ActionDash)
		}
	}
}

func torsoPosition(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	rag, ok := ecs.Get(w, e, component.RagdollComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	pb, ok := ecs.Get(w, ecs.Entity(rag.Segment(component.Torso)), component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return 0, 0, false
	}
	pos := pb.Body.Position()
	return pos.X, pos.Y, true
}
