package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// segmentLayout places one segment relative to the ragdoll origin, which
// sits at the hips.
type segmentLayout struct {
	name    component.SegmentName
	dx, dy  float64
	radius  float64
	width   float64
	height  float64
	chamfer float64
}

var rigLayout = [component.SegmentCount]segmentLayout{
	{name: component.Head, dx: 0, dy: -70, radius: 18},
	{name: component.Torso, dx: 0, dy: -30, width: 16, height: 48, chamfer: 8},
	{name: component.UpperArmL, dx: -22, dy: -40, width: 32, height: 10, chamfer: 5},
	{name: component.UpperArmR, dx: 22, dy: -40, width: 32, height: 10, chamfer: 5},
	{name: component.LowerArmL, dx: -42, dy: -40, width: 28, height: 10, chamfer: 5},
	{name: component.LowerArmR, dx: 42, dy: -40, width: 28, height: 10, chamfer: 5},
	{name: component.HandL, dx: -56, dy: -40, radius: 8},
	{name: component.HandR, dx: 56, dy: -40, radius: 8},
	{name: component.UpperLegL, dx: -10, dy: 8, width: 12, height: 32, chamfer: 5},
	{name: component.UpperLegR, dx: 10, dy: 8, width: 12, height: 32, chamfer: 5},
	{name: component.LowerLegL, dx: -10, dy: 34, width: 12, height: 26, chamfer: 5},
	{name: component.LowerLegR, dx: 10, dy: 34, width: 12, height: 26, chamfer: 5},
	{name: component.FootL, dx: -10, dy: 50, radius: 8},
	{name: component.FootR, dx: 10, dy: 50, radius: 8},
	{name: component.Sword, dx: 76, dy: -40, width: 60, height: 8, chamfer: 2},
}

type jointLayout struct {
	a, b             component.SegmentName
	anchorA, anchorB cp.Vector
}

// skeleton is the joint tree rooted at the torso.
var skeleton = []jointLayout{
	{component.Head, component.Torso, cp.Vector{X: 0, Y: 18}, cp.Vector{X: 0, Y: -24}},
	{component.Torso, component.UpperArmL, cp.Vector{X: -8, Y: -20}, cp.Vector{X: 16, Y: 0}},
	{component.Torso, component.UpperArmR, cp.Vector{X: 8, Y: -20}, cp.Vector{X: -16, Y: 0}},
	{component.UpperArmL, component.LowerArmL, cp.Vector{X: -16, Y: 0}, cp.Vector{X: 14, Y: 0}},
	{component.UpperArmR, component.LowerArmR, cp.Vector{X: 16, Y: 0}, cp.Vector{X: -14, Y: 0}},
	{component.LowerArmL, component.HandL, cp.Vector{X: -14, Y: 0}, cp.Vector{}},
	{component.LowerArmR, component.HandR, cp.Vector{X: 14, Y: 0}, cp.Vector{}},
	{component.Torso, component.UpperLegL, cp.Vector{X: -6, Y: 24}, cp.Vector{X: 0, Y: -14}},
	{component.Torso, component.UpperLegR, cp.Vector{X: 6, Y: 24}, cp.Vector{X: 0, Y: -14}},
	{component.UpperLegL, component.LowerLegL, cp.Vector{X: 0, Y: 14}, cp.Vector{X: 0, Y: -13}},
	{component.UpperLegR, component.LowerLegR, cp.Vector{X: 0, Y: 14}, cp.Vector{X: 0, Y: -13}},
	{component.LowerLegL, component.FootL, cp.Vector{X: 0, Y: 13}, cp.Vector{}},
	{component.LowerLegR, component.FootR, cp.Vector{X: 0, Y: 13}, cp.Vector{}},
}

// weaponGrip couples the sword hilt to the dominant hand.
var weaponGrip = jointLayout{component.DominantHand, component.Sword, cp.Vector{X: 6, Y: 0}, cp.Vector{X: -25, Y: 0}}

// SkeletalJointCount is the number of body joints; the weapon joint is extra.
var SkeletalJointCount = len(skeleton)

// NewRagdoll builds the segments and joints of one combatant's rig at
// (originX, originY) and adds them to the world's physics space. The
// returned Ragdoll is also stored on owner.
func NewRagdoll(w *ecs.World, owner ecs.Entity, originX, originY float64, bodyColor, weaponColor color.NRGBA, spec config.RagdollSpec, tps float64) (*component.Ragdoll, error) {
	if w == nil {
		return nil, fmt.Errorf("ragdoll: nil world")
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return nil, fmt.Errorf("ragdoll: world has no physics world")
	}
	if !w.IsAlive(owner) {
		return nil, fmt.Errorf("ragdoll: owner %v: %w", owner, component.ErrEntityNotAlive)
	}
	if math.IsNaN(originX) || math.IsInf(originX, 0) || math.IsNaN(originY) || math.IsInf(originY, 0) {
		return nil, fmt.Errorf("ragdoll: non-finite origin (%v, %v)", originX, originY)
	}

	rag := &component.Ragdoll{Group: uint(owner.Index())}
	bodies := [component.SegmentCount]*cp.Body{}

	for _, l := range rigLayout {
		e := w.CreateEntity()
		weapon := l.name.IsWeapon()
		density := spec.Density
		clr := bodyColor
		if weapon {
			density = spec.WeaponDensity
			clr = weaponColor
		}

		body, shape := pw.AddSegment(e, ecs.SegmentShape{
			X:          originX + l.dx,
			Y:          originY + l.dy,
			Radius:     l.radius,
			Width:      l.width,
			Height:     l.height,
			Chamfer:    l.chamfer,
			Density:    density,
			Friction:   spec.Friction,
			Elasticity: spec.Elasticity,
			Group:      rag.Group,
			Weapon:     weapon,
			MaxSpeed:   spec.MaxSpeed,
		})
		if body == nil {
			return nil, fmt.Errorf("ragdoll: add %s body", l.name)
		}

		if err := ecs.Add(w, e, component.SegmentComponent.Kind(), &component.Segment{Name: l.name, Owner: uint64(owner), Color: clr}); err != nil {
			return nil, fmt.Errorf("ragdoll: add %s segment: %w", l.name, err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Body:    body,
			Shape:   shape,
			Width:   l.width,
			Height:  l.height,
			Radius:  l.radius,
			Chamfer: l.chamfer,
		}); err != nil {
			return nil, fmt.Errorf("ragdoll: add %s body component: %w", l.name, err)
		}
		rag.Segments[l.name] = uint64(e)
		bodies[l.name] = body
	}

	addJoint := func(j jointLayout, restLength, stiffness float64, weapon bool) error {
		c := pw.AddJoint(bodies[j.a], bodies[j.b], j.anchorA, j.anchorB, restLength, ErrorBias(stiffness, tps))
		if c == nil {
			return fmt.Errorf("ragdoll: add joint %s-%s", j.a, j.b)
		}
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.JointComponent.Kind(), &component.Joint{
			Constraint: c,
			A:          rag.Segments[j.a],
			B:          rag.Segments[j.b],
			AnchorA:    j.anchorA,
			AnchorB:    j.anchorB,
			RestLength: restLength,
			Stiffness:  stiffness,
			Weapon:     weapon,
		}); err != nil {
			return fmt.Errorf("ragdoll: add joint %s-%s component: %w", j.a, j.b, err)
		}
		rag.Joints = append(rag.Joints, uint64(e))
		return nil
	}

	for _, j := range skeleton {
		if err := addJoint(j, spec.JointRestLength, spec.JointStiffness, false); err != nil {
			return nil, err
		}
	}
	if err := addJoint(weaponGrip, spec.WeaponRestLength, spec.WeaponStiffness, true); err != nil {
		return nil, err
	}

	if err := ecs.Add(w, owner, component.RagdollComponent.Kind(), rag); err != nil {
		return nil, fmt.Errorf("ragdoll: add ragdoll to owner: %w", err)
	}
	return rag, nil
}

// ErrorBias converts a per-tick stiffness (fraction of joint error corrected
// each step) into Chipmunk's error bias (fraction left after one second).
func ErrorBias(stiffness, tps float64) float64 {
	if stiffness <= 0 || tps <= 0 {
		return 0
	}
	if stiffness >= 1 {
		return math.SmallestNonzeroFloat64
	}
	return math.Pow(1-stiffness, tps)
}
