package entity

import (
	"fmt"

	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// Duel holds the entities created for a match.
type Duel struct {
	Match  ecs.Entity
	Player ecs.Entity
	Bot    ecs.Entity
	Walls  []ecs.Entity
}

// NewDuel builds the physics world, arena, both combatants and the match
// singleton from spec.
func NewDuel(w *ecs.World, spec *config.MatchSpec) (*Duel, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("duel: nil world or spec")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("duel: %w", err)
	}
	if w.PhysicsWorld() == nil {
		w.SetPhysicsWorld(ecs.NewPhysicsWorld(spec.Physics.Gravity, spec.Physics.Damping, spec.Physics.Iterations))
	}

	walls, err := NewArena(w, spec.Arena)
	if err != nil {
		return nil, err
	}
	player, err := NewCombatant(w, component.RolePlayer, spec.Player, spec)
	if err != nil {
		return nil, err
	}
	bot, err := NewCombatant(w, component.RoleAI, spec.Bot, spec)
	if err != nil {
		return nil, err
	}

	match := w.CreateEntity()
	if err := ecs.Add(w, match, component.MatchComponent.Kind(), &component.Match{Phase: component.MatchActive, Round: 1}); err != nil {
		return nil, fmt.Errorf("duel: add match: %w", err)
	}

	return &Duel{Match: match, Player: player, Bot: bot, Walls: walls}, nil
}
