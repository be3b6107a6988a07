package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// Hit is one damage application resolved from a contact.
type Hit struct {
	Attacker ecs.Entity
	Target   ecs.Entity
	Segment  component.SegmentName
	Speed    float64
	Damage   int
}

// CombatSystem turns weapon contacts from the last physics step into damage.
type CombatSystem struct {
	spec *config.MatchSpec
	hits []Hit
}

func NewCombatSystem(spec *config.MatchSpec) *CombatSystem {
	return &CombatSystem{spec: spec}
}

// Damage maps a weapon speed in pixels per tick to health points.
func Damage(speed float64, c config.CombatSpec) int {
	if math.IsNaN(speed) || speed <= c.MinSpeed {
		return 0
	}
	d := math.Round(c.DamageScale * speed)
	if d > float64(c.MaxDamage) {
		return c.MaxDamage
	}
	return int(d)
}

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.hits = s.hits[:0]

	for _, contact := range w.Contacts().Drain() {
		s.resolve(w, contact.A, contact.B, contact.VelA)
		s.resolve(w, contact.B, contact.A, contact.VelB)
	}
}

// Hits returns the damage applied during the last update.
func (s *CombatSystem) Hits() []Hit {
	if s == nil {
		return nil
	}
	return s.hits
}

// resolve applies damage when weapon belongs to one combatant and other to
// the opposing one.
func (s *CombatSystem) resolve(w *ecs.World, weapon, other uint64, vel cp.Vector) {
	ws, ok := ecs.Get(w, ecs.Entity(weapon), component.SegmentComponent.Kind())
	if !ok || !ws.Name.IsWeapon() {
		return
	}
	ts, ok := ecs.Get(w, ecs.Entity(other), component.SegmentComponent.Kind())
	if !ok || ts.Owner == ws.Owner {
		return
	}
	target := ecs.Entity(ts.Owner)
	health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return
	}

	speed := vel.Length() / s.spec.Physics.TPS
	dmg := Damage(speed, s.spec.Combat)
	if dmg <= 0 {
		return
	}
	health.Current -= dmg

	hit := Hit{
		Attacker: ecs.Entity(ws.Owner),
		Target:   target,
		Segment:  ts.Name,
		Speed:    speed,
		Damage:   dmg,
	}
	s.hits = append(s.hits, hit)
	log.Printf("CombatSystem: %s hit %s %s speed=%.2f damage=%d health=%d",
		combatantName(w, hit.Attacker), combatantName(w, target), ts.Name, speed, dmg, health.Current)
}

func combatantName(w *ecs.World, e ecs.Entity) string {
	if c, ok := ecs.Get(w, e, component.CombatantComponent.Kind()); ok && c.Name != "" {
		return c.Name
	}
	return "unknown"
}
