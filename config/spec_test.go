package config

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchSpec(t *testing.T) {
	spec, err := DefaultMatchSpec()
	require.NoError(t, err)

	assert.Equal(t, 900.0, spec.Arena.Width)
	assert.Equal(t, 600.0, spec.Arena.Height)
	assert.Equal(t, 70*time.Millisecond, spec.AI.Interval)
	assert.Equal(t, 700*time.Millisecond, spec.Match.ResetDelay)
	assert.Equal(t, 100, spec.Match.MaxHealth)
	assert.Equal(t, 90, spec.Controls.DashCooldownTicks)
	assert.Equal(t, 20, spec.Combat.MaxDamage)
	assert.Equal(t, 2400.0, spec.Ragdoll.MaxSpeed)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}, spec.Player.BodyColor.NRGBA)
	assert.Greater(t, spec.AI.RetreatForce, spec.AI.ApproachForce)
	assert.InDelta(t, 1.0/60.0, spec.Physics.Dt(), 1e-12)
}

func TestParseMatchSpecRejectsBadValues(t *testing.T) {
	base, err := ConfigFS.ReadFile(DefaultMatchFile)
	require.NoError(t, err)

	cases := []struct {
		name    string
		replace [2]string
		want    string
	}{
		{"nan_spawn", [2]string{"spawn: { x: 180, y: 500 }", "spawn: { x: .nan, y: 500 }"}, "player.spawn must be finite"},
		{"inf_spawn", [2]string{"spawn: { x: 720, y: 500 }", "spawn: { x: 720, y: .inf }"}, "bot.spawn must be finite"},
		{"outside_arena", [2]string{"spawn: { x: 180, y: 500 }", "spawn: { x: 5000, y: 500 }"}, "player.spawn must lie inside the arena"},
		{"zero_interval", [2]string{"interval: 70ms", "interval: 0s"}, "ai.interval must be positive"},
		{"stiffness_above_one", [2]string{"joint_stiffness: 0.6", "joint_stiffness: 1.5"}, "ragdoll.joint_stiffness"},
		{"no_health", [2]string{"max_health: 100", "max_health: 0"}, "match.max_health"},
		{"negative_max_speed", [2]string{"max_speed: 2400", "max_speed: -1"}, "ragdoll.max_speed"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data := strings.Replace(string(base), c.replace[0], c.replace[1], 1)
			require.NotEqual(t, string(base), data, "fixture replacement did not apply")

			_, err := ParseMatchSpec([]byte(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSpec)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestParseMatchSpecRejectsBadColor(t *testing.T) {
	base, err := ConfigFS.ReadFile(DefaultMatchFile)
	require.NoError(t, err)

	data := strings.Replace(string(base), `body_color: "#ff4444"`, `body_color: "#zz4444"`, 1)
	_, err = ParseMatchSpec([]byte(data))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#f44", color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}, false},
		{"#36f", color.NRGBA{R: 0x33, G: 0x66, B: 0xff, A: 0xff}, false},
		{"ff2222", color.NRGBA{R: 0xff, G: 0x22, B: 0x22, A: 0xff}, false},
		{"#00000080", color.NRGBA{A: 0x80}, false},
		{"#12345", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCleanConfigPath(t *testing.T) {
	assert.Equal(t, "match.yaml", cleanConfigPath(""))
	assert.Equal(t, "match.yaml", cleanConfigPath("config/match.yaml"))
	assert.Equal(t, "other.yaml", cleanConfigPath("/tmp/other.yaml"))
}

func TestApplyReloadKeepsBakedValues(t *testing.T) {
	current, err := DefaultMatchSpec()
	require.NoError(t, err)
	next, err := DefaultMatchSpec()
	require.NoError(t, err)

	next.Arena.Width = 1200
	next.Ragdoll.Density = 1
	next.Physics.TPS = 120
	next.Physics.Gravity = 900
	next.AI.Interval = time.Second
	next.AI.RetreatForce = 20000
	next.Controls.DashCooldownTicks = 30
	next.Match.ResetDelay = time.Second

	current.ApplyReload(next)

	assert.Equal(t, 900.0, current.Arena.Width)
	assert.Equal(t, 0.001, current.Ragdoll.Density)
	assert.Equal(t, 60.0, current.Physics.TPS)
	assert.Equal(t, 70*time.Millisecond, current.AI.Interval)
	assert.Equal(t, 900.0, current.Physics.Gravity)
	assert.Equal(t, 20000.0, current.AI.RetreatForce)
	assert.Equal(t, 30, current.Controls.DashCooldownTicks)
	assert.Equal(t, time.Second, current.Match.ResetDelay)
}
