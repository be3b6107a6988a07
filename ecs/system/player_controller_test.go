package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerInput(t *testing.T, w *ecs.World, e ecs.Entity) *component.Input {
	t.Helper()
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	require.True(t, ok)
	return in
}

func TestPlayerControllerMove(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		wantSign    float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		{"both_cancel", true, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec, duel := newTestDuel(t)
			in := playerInput(t, w, duel.Player)
			in.Left, in.Right = c.left, c.right

			NewPlayerControllerSystem(spec).Update(w)

			torso := bodyFor(t, w, duel.Player, component.Torso)
			assert.InDelta(t, c.wantSign*spec.Controls.MoveForce, torso.Force().X, 1e-9)
		})
	}
}

func TestPlayerControllerJumpPushesNearestSegmentAway(t *testing.T) {
	w, spec, duel := newTestDuel(t)
	head := bodyFor(t, w, duel.Player, component.Head)
	in := playerInput(t, w, duel.Player)
	in.PointerX = head.Position().X
	in.PointerY = head.Position().Y - 100
	in.Press(component.ActionJump)

	pc := NewPlayerControllerSystem(spec)
	pc.Update(w)

	assert.InDelta(t, 0, head.Force().X, 1e-6)
	assert.InDelta(t, spec.Controls.JumpForce, head.Force().Y, 1e-6)
	assert.Empty(t, in.Presses)

	// the press was consumed, so a second tick adds nothing
	pc.Update(w)
	assert.InDelta(t, spec.Controls.JumpForce, head.Force().Y, 1e-6)
}

func TestPlayerControllerJumpAtSegmentCenter(t *testing.T) {
	w, spec, duel := newTestDuel(t)
	footL := bodyFor(t, w, duel.Player, component.FootL)
	in := playerInput(t, w, duel.Player)
	in.PointerX, in.PointerY = footL.Position().X, footL.Position().Y
	in.Press(component.ActionJump)

	NewPlayerControllerSystem(spec).Update(w)

	assert.Equal(t, cp.Vector{}, footL.Force())
}

func TestPlayerControllerDashCooldown(t *testing.T) {
	w, spec, duel := newTestDuel(t)
	in := playerInput(t, w, duel.Player)
	cd, ok := ecs.Get(w, duel.Player, component.CooldownComponent.Kind())
	require.True(t, ok)
	torso := bodyFor(t, w, duel.Player, component.Torso)
	in.PointerX = torso.Position().X + 200
	in.PointerY = torso.Position().Y

	pc := NewPlayerControllerSystem(spec)
	var dashes []int
	for tick := 0; tick <= 2*spec.Controls.DashCooldownTicks; tick++ {
		torso.SetForce(cp.Vector{})
		in.Press(component.ActionDash)
		pc.Update(w)
		if torso.Force().X > 0 {
			dashes = append(dashes, tick)
			assert.Equal(t, spec.Controls.DashCooldownTicks-1, cd.Frames)
		}
	}

	assert.Equal(t, []int{0, spec.Controls.DashCooldownTicks, 2 * spec.Controls.DashCooldownTicks}, dashes)
}

func TestPlayerControllerHeldDashFiresWhenCooldownClears(t *testing.T) {
	cases := []struct {
		name     string
		held     bool
		wantTick int // -1 = no dash
	}{
		{"held", true, 3},
		{"released", false, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec, duel := newTestDuel(t)
			in := playerInput(t, w, duel.Player)
			cd, ok := ecs.Get(w, duel.Player, component.CooldownComponent.Kind())
			require.True(t, ok)
			torso := bodyFor(t, w, duel.Player, component.Torso)
			in.PointerX = torso.Position().X + 200
			in.PointerY = torso.Position().Y
			cd.Frames = 3

			// pressed once mid-cooldown, then held or released
			in.Press(component.ActionDash)
			in.DashHeld = c.held

			pc := NewPlayerControllerSystem(spec)
			dashed := -1
			for tick := 0; tick < 6; tick++ {
				torso.SetForce(cp.Vector{})
				pc.Update(w)
				if torso.Force().X > 0 && dashed < 0 {
					dashed = tick
				}
			}
			assert.Equal(t, c.wantTick, dashed)
		})
	}
}

func TestPlayerControllerCooldownDecays(t *testing.T) {
	w, spec, duel := newTestDuel(t)
	cd, ok := ecs.Get(w, duel.Player, component.CooldownComponent.Kind())
	require.True(t, ok)
	cd.Frames = 3

	pc := NewPlayerControllerSystem(spec)
	for _, want := range []int{2, 1, 0, 0} {
		pc.Update(w)
		assert.Equal(t, want, cd.Frames)
	}
}

func TestPlayerControllerAim(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{"right", 100, 0, 0},
		{"down", 0, 100, math.Pi / 2},
		{"left", -100, 0, math.Pi},
		{"up", 0, -100, -math.Pi / 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec, duel := newTestDuel(t)
			upper := bodyFor(t, w, duel.Player, component.UpperArmR)
			lower := bodyFor(t, w, duel.Player, component.LowerArmR)
			upper.SetAngularVelocity(3)
			in := playerInput(t, w, duel.Player)
			in.PointerX = upper.Position().X + c.dx
			in.PointerY = upper.Position().Y + c.dy

			NewPlayerControllerSystem(spec).Update(w)

			assert.InDelta(t, c.want, upper.Angle(), 1e-9)
			assert.InDelta(t, c.want, lower.Angle(), 1e-9)
			assert.Zero(t, upper.AngularVelocity())
			assert.Zero(t, lower.AngularVelocity())
		})
	}
}
