package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCombat = config.CombatSpec{MinSpeed: 2, DamageScale: 2, MaxDamage: 20}

func TestDamage(t *testing.T) {
	cases := []struct {
		name  string
		speed float64
		want  int
	}{
		{"still", 0, 0},
		{"at_threshold", 2, 0},
		{"just_above", 2.1, 4},
		{"rounds_half_up", 3.25, 7},
		{"medium", 5, 10},
		{"fast", 9.9, 20},
		{"capped", 50, 20},
		{"nan", math.NaN(), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Damage(c.speed, testCombat))
		})
	}
}

func TestDamageMonotonic(t *testing.T) {
	prev := 0
	for s := 0.0; s <= 60; s += 0.125 {
		d := Damage(s, testCombat)
		assert.GreaterOrEqual(t, d, prev, "speed %v", s)
		assert.LessOrEqual(t, d, testCombat.MaxDamage)
		prev = d
	}
}

// velocityFor returns a velocity whose per-tick speed is speed.
func velocityFor(spec *config.MatchSpec, speed float64) cp.Vector {
	return cp.Vector{X: speed * spec.Physics.TPS}
}

func TestCombatSystemSwordToTorso(t *testing.T) {
	w, spec, duel := newTestDuel(t)
	playerRag := ragdollOf(t, w, duel.Player)
	botRag := ragdollOf(t, w, duel.Bot)

	w.Contacts().Push(component.Contact{
		A:    playerRag.Segment(component.Sword),
		B:    botRag.Segment(component.Torso),
		VelA: velocityFor(spec, 10),
	})

	combat := NewCombatSystem(spec)
	combat.Update(w)

	assert.Equal(t, 80, healthOf(t, w, duel.Bot).Current)
	assert.Equal(t, 100, healthOf(t, w, duel.Player).Current)
	require.Len(t, combat.Hits(), 1)
	hit := combat.Hits()[0]
	assert.Equal(t, duel.Player, hit.Attacker)
	assert.Equal(t, duel.Bot, hit.Target)
	assert.Equal(t, component.Torso, hit.Segment)
	assert.Equal(t, 20, hit.Damage)
	assert.Zero(t, w.Contacts().Len())
}

func TestCombatSystemOrderings(t *testing.T) {
	cases := []struct {
		name       string
		contacts   func(player, bot *component.Ragdoll, fast cp.Vector) []component.Contact
		wantPlayer int
		wantBot    int
	}{
		{
			name: "weapon_second",
			contacts: func(player, bot *component.Ragdoll, fast cp.Vector) []component.Contact {
				return []component.Contact{{A: player.Segment(component.Head), B: bot.Segment(component.Sword), VelB: fast}}
			},
			wantPlayer: 80, wantBot: 100,
		},
		{
			name: "two_segments_double_count",
			contacts: func(player, bot *component.Ragdoll, fast cp.Vector) []component.Contact {
				return []component.Contact{
					{A: player.Segment(component.Sword), B: bot.Segment(component.Torso), VelA: fast},
					{A: player.Segment(component.Sword), B: bot.Segment(component.UpperArmL), VelA: fast},
				}
			},
			wantPlayer: 100, wantBot: 60,
		},
		{
			name: "own_segment_ignored",
			contacts: func(player, bot *component.Ragdoll, fast cp.Vector) []component.Contact {
				return []component.Contact{{A: player.Segment(component.Sword), B: player.Segment(component.Torso), VelA: fast}}
			},
			wantPlayer: 100, wantBot: 100,
		},
		{
			name: "sword_on_sword_uses_each_velocity",
			contacts: func(player, bot *component.Ragdoll, fast cp.Vector) []component.Contact {
				return []component.Contact{{A: player.Segment(component.Sword), B: bot.Segment(component.Sword), VelA: fast}}
			},
			wantPlayer: 100, wantBot: 80,
		},
		{
			name: "slow_touch",
			contacts: func(player, bot *component.Ragdoll, fast cp.Vector) []component.Contact {
				return []component.Contact{{A: player.Segment(component.Sword), B: bot.Segment(component.Torso), VelA: fast.Mult(0.2)}}
			},
			wantPlayer: 100, wantBot: 100,
		},
		{
			name: "body_on_body",
			contacts: func(player, bot *component.Ragdoll, fast cp.Vector) []component.Contact {
				return []component.Contact{{A: player.Segment(component.Torso), B: bot.Segment(component.Torso), VelA: fast, VelB: fast}}
			},
			wantPlayer: 100, wantBot: 100,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, spec, duel := newTestDuel(t)
			fast := velocityFor(spec, 10)
			for _, contact := range c.contacts(ragdollOf(t, w, duel.Player), ragdollOf(t, w, duel.Bot), fast) {
				w.Contacts().Push(contact)
			}
			NewCombatSystem(spec).Update(w)
			assert.Equal(t, c.wantPlayer, healthOf(t, w, duel.Player).Current)
			assert.Equal(t, c.wantBot, healthOf(t, w, duel.Bot).Current)
		})
	}
}

func TestCombatSystemHealthGoesNegative(t *testing.T) {
	w, spec, duel := newTestDuel(t)
	healthOf(t, w, duel.Bot).Current = 5
	w.Contacts().Push(component.Contact{
		A:    ragdollOf(t, w, duel.Player).Segment(component.Sword),
		B:    ragdollOf(t, w, duel.Bot).Segment(component.Head),
		VelA: velocityFor(spec, 50),
	})
	NewCombatSystem(spec).Update(w)

	h := healthOf(t, w, duel.Bot)
	assert.Equal(t, -15, h.Current)
	assert.True(t, h.Down())
	assert.Equal(t, 0, h.Display())
}

func TestPhysicsReportsWeaponContact(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(0, 1, 10)
	w.SetPhysicsWorld(pw)

	attacker := w.CreateEntity()
	victim := w.CreateEntity()
	sword := w.CreateEntity()
	torso := w.CreateEntity()
	require.NoError(t, ecs.Add(w, sword, component.SegmentComponent.Kind(), &component.Segment{Name: component.Sword, Owner: uint64(attacker)}))
	require.NoError(t, ecs.Add(w, torso, component.SegmentComponent.Kind(), &component.Segment{Name: component.Torso, Owner: uint64(victim)}))
	require.NoError(t, ecs.Add(w, victim, component.HealthComponent.Kind(), &component.Health{Initial: 100, Current: 100}))

	swordBody, _ := pw.AddSegment(sword, ecs.SegmentShape{X: 100, Y: 100, Width: 60, Height: 8, Chamfer: 2, Density: 0.005, Group: 1, Weapon: true})
	pw.AddSegment(torso, ecs.SegmentShape{X: 120, Y: 100, Width: 16, Height: 48, Chamfer: 8, Density: 0.001, Group: 2})
	swordBody.SetVelocityVector(cp.Vector{X: 600})

	pw.Step(1.0 / 60.0)

	contacts := w.Contacts().Items()
	require.NotEmpty(t, contacts)
	c := contacts[0]
	assert.ElementsMatch(t, []uint64{uint64(sword), uint64(torso)}, []uint64{c.A, c.B})

	spec, err := config.DefaultMatchSpec()
	require.NoError(t, err)
	NewCombatSystem(spec).Update(w)
	assert.Less(t, healthOf(t, w, victim).Current, 100)
}
