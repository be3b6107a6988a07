package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeSegment
	collisionTypeWeapon
)

// minBoxSide keeps chamfered boxes from collapsing to a degenerate polygon.
const minBoxSide = 1.0

// SegmentShape describes one dynamic body to add to the space. Radius > 0
// builds a circle, otherwise a box of Width x Height whose corners are
// rounded by Chamfer.
type SegmentShape struct {
	X, Y       float64
	Radius     float64
	Width      float64
	Height     float64
	Chamfer    float64
	Density    float64
	Friction   float64
	Elasticity float64
	Group      uint
	Weapon     bool
	// MaxSpeed caps the body's speed after each velocity update, in px/s.
	// Zero leaves it unbounded.
	MaxSpeed float64
}

// PhysicsWorld owns the Chipmunk space, the static arena shapes and the
// shape->entity table used to turn arbiters into typed contacts.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	shapeToEntity map[*cp.Shape]Entity
	bodies        []*cp.Body
	constraints   []*cp.Constraint
	contacts      *EventQueue[component.Contact]
}

// NewPhysicsWorld creates a space with gravity pointing down the screen.
func NewPhysicsWorld(gravity, damping float64, iterations int) *PhysicsWorld {
	space := cp.NewSpace()
	if iterations <= 0 {
		iterations = 20
	}
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	if damping > 0 && damping <= 1 {
		space.SetDamping(damping)
	}

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
	pw.setupHandlers()
	return pw
}

// Tune updates gravity and damping on a running space.
func (pw *PhysicsWorld) Tune(gravity, damping float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.SetGravity(cp.Vector{X: 0, Y: gravity})
	if damping > 0 && damping <= 1 {
		pw.space.SetDamping(damping)
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddStaticBox adds a solid box to the space's static body.
func (pw *PhysicsWorld) AddStaticBox(e Entity, bb cp.BB, friction, elasticity float64) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(friction)
	shape.SetElasticity(elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return shape
}

// AddSegment creates a dynamic body and its shape for entity e.
func (pw *PhysicsWorld) AddSegment(e Entity, s SegmentShape) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}

	var mass, moment float64
	if s.Radius > 0 {
		mass = s.Density * math.Pi * s.Radius * s.Radius
		if mass <= 0 {
			mass = 1
		}
		moment = cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{})
	} else {
		mass = s.Density * s.Width * s.Height
		if mass <= 0 {
			mass = 1
		}
		moment = cp.MomentForBox(mass, s.Width, s.Height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: s.X, Y: s.Y})
	if s.MaxSpeed > 0 {
		limit := s.MaxSpeed
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity, damping, dt)
			if v := body.Velocity(); v.Length() > limit {
				body.SetVelocityVector(v.Clamp(limit))
			}
		})
	}

	var shape *cp.Shape
	if s.Radius > 0 {
		shape = cp.NewCircle(body, s.Radius, cp.Vector{})
	} else {
		// Chipmunk grows a polygon outward by its radius, so shrink the core
		// box to keep the outer size at Width x Height.
		w := math.Max(s.Width-2*s.Chamfer, minBoxSide)
		h := math.Max(s.Height-2*s.Chamfer, minBoxSide)
		shape = cp.NewBox(body, w, h, s.Chamfer)
	}
	shape.SetFriction(s.Friction)
	shape.SetElasticity(s.Elasticity)
	shape.SetFilter(cp.NewShapeFilter(s.Group, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	if s.Weapon {
		shape.SetCollisionType(collisionTypeWeapon)
	} else {
		shape.SetCollisionType(collisionTypeSegment)
	}

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	pw.bodies = append(pw.bodies, body)
	return body, shape
}

// AddJoint links two bodies with a slide joint that lets the anchors drift
// at most restLength apart. The minimum must stay zero: below the minimum
// Chipmunk normalizes the anchor delta, which is NaN for coincident anchors.
// The error bias is the fraction of joint error left uncorrected after a
// second.
func (pw *PhysicsWorld) AddJoint(a, b *cp.Body, anchorA, anchorB cp.Vector, restLength, errorBias float64) *cp.Constraint {
	if pw == nil || pw.space == nil || a == nil || b == nil {
		return nil
	}
	if restLength < 0 || math.IsNaN(restLength) {
		restLength = 0
	}
	joint := cp.NewSlideJoint(a, b, anchorA, anchorB, 0, restLength)
	if errorBias > 0 && errorBias < 1 {
		joint.SetErrorBias(errorBias)
	}
	joint.SetCollideBodies(false)
	pw.space.AddConstraint(joint)
	pw.constraints = append(pw.constraints, joint)
	return joint
}

// EntityForShape resolves a shape back to the entity that owns it.
func (pw *PhysicsWorld) EntityForShape(shape *cp.Shape) (Entity, bool) {
	if pw == nil || shape == nil {
		return 0, false
	}
	e, ok := pw.shapeToEntity[shape]
	return e, ok
}

// BodyCount returns the number of dynamic bodies added so far.
func (pw *PhysicsWorld) BodyCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// ConstraintCount returns the number of joints added so far.
func (pw *PhysicsWorld) ConstraintCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.constraints)
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	weaponSegment := pw.space.NewCollisionHandler(collisionTypeWeapon, collisionTypeSegment)
	weaponSegment.UserData = pw
	weaponSegment.BeginFunc = beginWeaponContact

	weaponWeapon := pw.space.NewCollisionHandler(collisionTypeWeapon, collisionTypeWeapon)
	weaponWeapon.UserData = pw
	weaponWeapon.BeginFunc = beginWeaponContact

	pw.handlersReady = true
}

func beginWeaponContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	world, ok := userData.(*PhysicsWorld)
	if !ok || world == nil || world.contacts == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := world.shapeToEntity[shapeA]
	b, okB := world.shapeToEntity[shapeB]
	if !okA || !okB {
		return true
	}
	world.contacts.Push(component.Contact{
		A:    uint64(a),
		B:    uint64(b),
		VelA: shapeA.Body().Velocity(),
		VelB: shapeB.Body().Velocity(),
	})
	return true
}
