package entity

import (
	"fmt"

	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// NewCombatant creates a duelist with a full health bar and a ragdoll at
// its spawn point. Players get input and a dash cooldown, bots get AI state.
func NewCombatant(w *ecs.World, role component.Role, cs config.CombatantSpec, spec *config.MatchSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("combatant: nil match spec")
	}
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.CombatantComponent.Kind(), &component.Combatant{
		Role:   role,
		Name:   cs.Name,
		SpawnX: cs.Spawn.X,
		SpawnY: cs.Spawn.Y,
	}); err != nil {
		return 0, fmt.Errorf("combatant: add combatant: %w", err)
	}
	health := spec.Match.MaxHealth
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Initial: health, Current: health}); err != nil {
		return 0, fmt.Errorf("combatant: add health: %w", err)
	}

	switch role {
	case component.RolePlayer:
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return 0, fmt.Errorf("combatant: add player tag: %w", err)
		}
		input := &component.Input{PointerX: spec.Arena.Width / 2, PointerY: spec.Arena.Height / 2}
		if err := ecs.Add(w, e, component.InputComponent.Kind(), input); err != nil {
			return 0, fmt.Errorf("combatant: add input: %w", err)
		}
		if err := ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{}); err != nil {
			return 0, fmt.Errorf("combatant: add cooldown: %w", err)
		}
	case component.RoleAI:
		if err := ecs.Add(w, e, component.AITagComponent.Kind(), &component.AITag{}); err != nil {
			return 0, fmt.Errorf("combatant: add ai tag: %w", err)
		}
		if err := ecs.Add(w, e, component.AIStateComponent.Kind(), &component.AIState{}); err != nil {
			return 0, fmt.Errorf("combatant: add ai state: %w", err)
		}
	default:
		return 0, fmt.Errorf("combatant: unknown role %v", role)
	}

	if _, err := NewRagdoll(w, e, cs.Spawn.X, cs.Spawn.Y, cs.BodyColor.NRGBA, cs.WeaponColor.NRGBA, spec.Ragdoll, spec.Physics.TPS); err != nil {
		return 0, fmt.Errorf("combatant %s: %w", cs.Name, err)
	}
	return e, nil
}
