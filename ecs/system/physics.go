package system

import (
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
)

// PhysicsSystem advances the shared space by one fixed step. Contact-begin
// events raised during the step land in the world's contact queue.
type PhysicsSystem struct {
	spec  *config.MatchSpec
	ticks int
}

func NewPhysicsSystem(spec *config.MatchSpec) *PhysicsSystem {
	return &PhysicsSystem{spec: spec}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.Step(ps.spec.Physics.Dt())
	ps.ticks++
}

// Ticks returns the number of steps taken.
func (ps *PhysicsSystem) Ticks() int {
	if ps == nil {
		return 0
	}
	return ps.ticks
}
