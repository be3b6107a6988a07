package system

import (
	"image/color"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// MatchSystem watches for a defeated combatant and schedules the round
// reset. Only one reset is pending at a time.
type MatchSystem struct {
	spec *config.MatchSpec
}

func NewMatchSystem(spec *config.MatchSpec) *MatchSystem {
	return &MatchSystem{spec: spec}
}

func (s *MatchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	match, ok := matchState(w)
	if !ok || match.Phase != component.MatchActive {
		return
	}

	var losers []ecs.Entity
	for _, e := range w.Query(component.CombatantComponent.Kind(), component.HealthComponent.Kind()) {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Down() {
			losers = append(losers, e)
		}
	}
	if len(losers) == 0 {
		return
	}

	match.Phase = component.MatchRoundEnding
	match.ResetPending = true
	for _, e := range losers {
		log.Printf("MatchSystem: round %d over, %s is down", match.Round, combatantName(w, e))
	}

	w.Timers().After(s.spec.Match.ResetDelay, func() {
		s.Reset(w)
	})
}

// Reset restores full health, puts every torso back on its spawn point at
// rest and starts the next round. Limbs are left where they are and get
// pulled along by their joints.
func (s *MatchSystem) Reset(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	maxHealth := s.spec.Match.MaxHealth

	for _, e := range w.Query(component.CombatantComponent.Kind()) {
		c, _ := ecs.Get(w, e, component.CombatantComponent.Kind())
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			h.Initial = maxHealth
			h.Current = maxHealth
		}
		rag, ok := ecs.Get(w, e, component.RagdollComponent.Kind())
		if !ok {
			continue
		}
		if torso := segmentBody(w, rag, component.Torso); torso != nil {
			torso.SetPosition(cp.Vector{X: c.SpawnX, Y: c.SpawnY})
			torso.SetVelocityVector(cp.Vector{})
			torso.SetAngularVelocity(0)
		}
	}

	if match, ok := matchState(w); ok {
		match.Phase = component.MatchActive
		match.ResetPending = false
		match.Round++
		log.Printf("MatchSystem: round %d start", match.Round)
	}
}

func matchState(w *ecs.World) (*component.Match, bool) {
	e, ok := ecs.First(w, component.MatchComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.MatchComponent.Kind())
}

// CombatantStatus is the HUD view of one duelist.
type CombatantStatus struct {
	Name      string
	Role      component.Role
	Health    int
	MaxHealth int
	Down      bool
	Color     color.NRGBA
}

// Scoreboard is a read-only snapshot of the match for presentation.
type Scoreboard struct {
	Phase        component.MatchPhase
	Round        int
	Player       CombatantStatus
	Bot          CombatantStatus
	DashCooldown int
	AIMode       component.AIMode
}

// DashCooldownSeconds converts the remaining cooldown ticks to seconds.
func (sb Scoreboard) DashCooldownSeconds(tps float64) float64 {
	if tps <= 0 {
		return 0
	}
	return float64(sb.DashCooldown) / tps
}

// ReadScoreboard collects the state the HUD draws.
func ReadScoreboard(w *ecs.World) Scoreboard {
	var sb Scoreboard
	if w == nil {
		return sb
	}
	if match, ok := matchState(w); ok {
		sb.Phase = match.Phase
		sb.Round = match.Round
	}

	for _, e := range w.Query(component.CombatantComponent.Kind(), component.HealthComponent.Kind()) {
		c, _ := ecs.Get(w, e, component.CombatantComponent.Kind())
		h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		status := CombatantStatus{
			Name:      c.Name,
			Role:      c.Role,
			Health:    h.Display(),
			MaxHealth: h.Initial,
			Down:      h.Down(),
			Color:     bodyColor(w, e),
		}
		switch c.Role {
		case component.RolePlayer:
			sb.Player = status
			if cd, ok := ecs.Get(w, e, component.CooldownComponent.Kind()); ok {
				sb.DashCooldown = cd.Frames
			}
		case component.RoleAI:
			sb.Bot = status
			if st, ok := ecs.Get(w, e, component.AIStateComponent.Kind()); ok {
				sb.AIMode = st.Mode
			}
		}
	}
	return sb
}

func bodyColor(w *ecs.World, e ecs.Entity) color.NRGBA {
	rag, ok := ecs.Get(w, e, component.RagdollComponent.Kind())
	if !ok {
		return color.NRGBA{}
	}
	seg, ok := ecs.Get(w, ecs.Entity(rag.Segment(component.Torso)), component.SegmentComponent.Kind())
	if !ok {
		return color.NRGBA{}
	}
	return seg.Color
}
