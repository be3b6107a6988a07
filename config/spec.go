package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("config: invalid spec")

type MatchSpec struct {
	Arena    ArenaSpec     `yaml:"arena"`
	Physics  PhysicsSpec   `yaml:"physics"`
	Ragdoll  RagdollSpec   `yaml:"ragdoll"`
	Player   CombatantSpec `yaml:"player"`
	Bot      CombatantSpec `yaml:"bot"`
	Controls ControlsSpec  `yaml:"controls"`
	AI       AISpec        `yaml:"ai"`
	Combat   CombatSpec    `yaml:"combat"`
	Match    RoundSpec     `yaml:"match"`
}

type ArenaSpec struct {
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	WallThickness float64   `yaml:"wall_thickness"`
	RoofThickness float64   `yaml:"roof_thickness"`
	Friction      float64   `yaml:"friction"`
	Elasticity    float64   `yaml:"elasticity"`
	GroundColor   YAMLColor `yaml:"ground_color"`
	RoofColor     YAMLColor `yaml:"roof_color"`
	WallColor     YAMLColor `yaml:"wall_color"`
	Background    YAMLColor `yaml:"background"`
}

type PhysicsSpec struct {
	TPS        float64 `yaml:"tps"`
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
}

// Dt returns the fixed step length in seconds.
func (p PhysicsSpec) Dt() float64 {
	if p.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / p.TPS
}

// TickDuration returns the fixed step length as a duration.
func (p PhysicsSpec) TickDuration() time.Duration {
	return time.Duration(p.Dt() * float64(time.Second))
}

type RagdollSpec struct {
	Density          float64 `yaml:"density"`
	WeaponDensity    float64 `yaml:"weapon_density"`
	Friction         float64 `yaml:"friction"`
	Elasticity       float64 `yaml:"elasticity"`
	JointStiffness   float64 `yaml:"joint_stiffness"`
	JointRestLength  float64 `yaml:"joint_rest_length"`
	WeaponStiffness  float64 `yaml:"weapon_stiffness"`
	WeaponRestLength float64 `yaml:"weapon_rest_length"`
	// MaxSpeed caps every segment's speed in px/s so a dash cannot carry a
	// limb through a wall in one step. Zero disables the cap.
	MaxSpeed float64 `yaml:"max_speed"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CombatantSpec struct {
	Name        string    `yaml:"name"`
	Spawn       PointSpec `yaml:"spawn"`
	BodyColor   YAMLColor `yaml:"body_color"`
	WeaponColor YAMLColor `yaml:"weapon_color"`
}

type ControlsSpec struct {
	MoveForce         float64 `yaml:"move_force"`
	JumpForce         float64 `yaml:"jump_force"`
	DashForce         float64 `yaml:"dash_force"`
	DashCooldownTicks int     `yaml:"dash_cooldown_ticks"`
}

type AISpec struct {
	Interval        time.Duration `yaml:"interval"`
	ApproachForce   float64       `yaml:"approach_force"`
	RetreatForce    float64       `yaml:"retreat_force"`
	CautionSpeed    float64       `yaml:"caution_speed"`
	CautionDistance float64       `yaml:"caution_distance"`
	LungeRange      float64       `yaml:"lunge_range"`
	LungeChance     float64       `yaml:"lunge_chance"`
	GroundMargin    float64       `yaml:"ground_margin"`
	LungeForceX     float64       `yaml:"lunge_force_x"`
	LungeForceYMin  float64       `yaml:"lunge_force_y_min"`
	LungeForceYMax  float64       `yaml:"lunge_force_y_max"`
	HopChance       float64       `yaml:"hop_chance"`
	HopMinHeight    float64       `yaml:"hop_min_height"`
	HopForceX       float64       `yaml:"hop_force_x"`
	HopForceY       float64       `yaml:"hop_force_y"`
}

// CombatSpec speeds are in pixels per physics tick.
type CombatSpec struct {
	MinSpeed    float64 `yaml:"min_speed"`
	DamageScale float64 `yaml:"damage_scale"`
	MaxDamage   int     `yaml:"max_damage"`
}

type RoundSpec struct {
	MaxHealth  int           `yaml:"max_health"`
	ResetDelay time.Duration `yaml:"reset_delay"`
}

// ParseMatchSpec decodes and validates a match spec.
func ParseMatchSpec(data []byte) (*MatchSpec, error) {
	var spec MatchSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("config: unmarshal match spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadMatchSpec loads a match spec by name (disk first, then embedded).
func LoadMatchSpec(name string) (*MatchSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}
	spec, err := ParseMatchSpec(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return spec, nil
}

// DefaultMatchSpec loads the embedded tuning file.
func DefaultMatchSpec() (*MatchSpec, error) {
	data, err := ConfigFS.ReadFile(DefaultMatchFile)
	if err != nil {
		return nil, fmt.Errorf("config: read embedded %s: %w", DefaultMatchFile, err)
	}
	return ParseMatchSpec(data)
}

// ApplyReload copies the sections of next that can change mid-match into s.
// Arena size, rig materials, tick rate and the AI interval are baked into
// the running world and keep their current values.
func (s *MatchSpec) ApplyReload(next *MatchSpec) {
	if s == nil || next == nil {
		return
	}
	keep := *s
	*s = *next
	s.Arena = keep.Arena
	s.Ragdoll = keep.Ragdoll
	s.Physics.TPS = keep.Physics.TPS
	s.Physics.Iterations = keep.Physics.Iterations
	s.AI.Interval = keep.AI.Interval
}

// Validate rejects specs that would break the simulation mid-match.
func (s *MatchSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(finite(s.Arena.Width) && s.Arena.Width > 0, "arena.width must be positive")
	check(finite(s.Arena.Height) && s.Arena.Height > 0, "arena.height must be positive")
	check(s.Physics.TPS > 0, "physics.tps must be positive")
	check(finite(s.Physics.Gravity), "physics.gravity must be finite")
	check(s.Physics.Damping >= 0 && s.Physics.Damping <= 1, "physics.damping must be in [0,1]")
	check(s.Ragdoll.Density > 0, "ragdoll.density must be positive")
	check(s.Ragdoll.WeaponDensity > 0, "ragdoll.weapon_density must be positive")
	check(s.Ragdoll.JointStiffness > 0 && s.Ragdoll.JointStiffness <= 1, "ragdoll.joint_stiffness must be in (0,1]")
	check(s.Ragdoll.WeaponStiffness > 0 && s.Ragdoll.WeaponStiffness <= 1, "ragdoll.weapon_stiffness must be in (0,1]")
	check(s.Ragdoll.JointRestLength >= 0 && s.Ragdoll.WeaponRestLength >= 0, "ragdoll rest lengths must not be negative")
	check(finite(s.Ragdoll.MaxSpeed) && s.Ragdoll.MaxSpeed >= 0, "ragdoll.max_speed must not be negative")
	for _, c := range []struct {
		key  string
		spec CombatantSpec
	}{{"player", s.Player}, {"bot", s.Bot}} {
		check(finite(c.spec.Spawn.X) && finite(c.spec.Spawn.Y), "%s.spawn must be finite", c.key)
		check(c.spec.Spawn.X >= 0 && c.spec.Spawn.X <= s.Arena.Width && c.spec.Spawn.Y >= 0 && c.spec.Spawn.Y <= s.Arena.Height,
			"%s.spawn must lie inside the arena", c.key)
	}
	check(s.Controls.DashCooldownTicks >= 0, "controls.dash_cooldown_ticks must not be negative")
	check(s.AI.Interval > 0, "ai.interval must be positive")
	check(s.AI.LungeForceYMax >= s.AI.LungeForceYMin, "ai.lunge_force_y_max must be >= lunge_force_y_min")
	check(s.Combat.MaxDamage >= 0, "combat.max_damage must not be negative")
	check(s.Match.MaxHealth > 0, "match.max_health must be positive")
	check(s.Match.ResetDelay >= 0, "match.reset_delay must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(problems, "; "))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

// ParseHexColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %s: %w", v, err)
		}
		return uint8(n), nil
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}
	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return color.NRGBA{}, err
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
