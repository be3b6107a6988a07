package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/common"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// PlayerControllerSystem turns the player's input into forces before the
// physics step: move, jump off the nearest limb, dash, cooldown, aim.
type PlayerControllerSystem struct {
	spec *config.MatchSpec
}

func NewPlayerControllerSystem(spec *config.MatchSpec) *PlayerControllerSystem {
	return &PlayerControllerSystem{spec: spec}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	controls := p.spec.Controls

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.RagdollComponent.Kind(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		rag, ok := ecs.Get(w, e, component.RagdollComponent.Kind())
		if !ok {
			continue
		}
		torso := segmentBody(w, rag, component.Torso)
		if torso == nil {
			continue
		}

		if input.Left {
			applyForce(torso, cp.Vector{X: -controls.MoveForce})
		}
		if input.Right {
			applyForce(torso, cp.Vector{X: controls.MoveForce})
		}

		jump, dash := input.Consume()
		// a dash key still held when the cooldown runs out dashes on that tick
		dash = dash || input.DashHeld

		if jump {
			if body := nearestSegment(w, rag, input.PointerX, input.PointerY); body != nil {
				pos := body.Position()
				dx, dy := common.Direction(input.PointerX, input.PointerY, pos.X, pos.Y)
				applyForce(body, cp.Vector{X: dx * controls.JumpForce, Y: dy * controls.JumpForce})
			}
		}

		cd, hasCooldown := ecs.Get(w, e, component.CooldownComponent.Kind())
		if dash && (!hasCooldown || cd.Frames <= 0) {
			pos := torso.Position()
			dx, dy := common.Direction(pos.X, pos.Y, input.PointerX, input.PointerY)
			applyForce(torso, cp.Vector{X: dx * controls.DashForce, Y: dy * controls.DashForce})
			if hasCooldown {
				cd.Frames = controls.DashCooldownTicks
			}
		}
		if hasCooldown && cd.Frames > 0 {
			cd.Frames--
		}

		if angle, ok := aimAngle(w, rag, input.PointerX, input.PointerY); ok {
			setArmAngle(w, rag, angle)
		}
	}
}

// nearestSegment returns the body segment closest to (x, y), excluding the
// weapon. Ties keep the earlier segment in rig order.
func nearestSegment(w *ecs.World, rag *component.Ragdoll, x, y float64) *cp.Body {
	var best *cp.Body
	bestDist := math.Inf(1)
	for _, seg := range rag.BodySegments() {
		body := bodyOf(w, seg)
		if body == nil {
			continue
		}
		pos := body.Position()
		if d := math.Hypot(x-pos.X, y-pos.Y); d < bestDist {
			best = body
			bestDist = d
		}
	}
	return best
}
