package system

import (
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// CommandSystem applies body writes queued outside the tick (the AI task)
// right before the physics step, so every body write happens on the tick.
type CommandSystem struct{}

func NewCommandSystem() *CommandSystem { return &CommandSystem{} }

func (s *CommandSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, cmd := range w.Commands().Drain() {
		body := bodyOf(w, cmd.Target)
		if body == nil {
			continue
		}
		switch cmd.Kind {
		case component.CommandForce:
			applyForce(body, cmd.Force)
		case component.CommandAngle:
			setAngle(body, cmd.Angle)
		}
	}
}
