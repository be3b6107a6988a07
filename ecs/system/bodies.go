package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// bodyOf resolves a segment entity handle to its physics body.
func bodyOf(w *ecs.World, segment uint64) *cp.Body {
	pb, ok := ecs.Get(w, ecs.Entity(segment), component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return nil
	}
	return pb.Body
}

// segmentBody returns the body of a named segment of rag.
func segmentBody(w *ecs.World, rag *component.Ragdoll, name component.SegmentName) *cp.Body {
	return bodyOf(w, rag.Segment(name))
}

// aimAngle returns the angle from the dominant upper arm to (x, y).
func aimAngle(w *ecs.World, rag *component.Ragdoll, x, y float64) (float64, bool) {
	upper := segmentBody(w, rag, component.DominantUpperArm)
	if upper == nil {
		return 0, false
	}
	origin := upper.Position()
	return math.Atan2(y-origin.Y, x-origin.X), true
}

// setArmAngle overrides the orientation of both dominant arm segments.
// Their spin is zeroed so joint torques do not carry into the next step.
func setArmAngle(w *ecs.World, rag *component.Ragdoll, angle float64) {
	for _, name := range []component.SegmentName{component.DominantUpperArm, component.DominantLowerArm} {
		if body := segmentBody(w, rag, name); body != nil {
			setAngle(body, angle)
		}
	}
}

func setAngle(body *cp.Body, angle float64) {
	body.SetAngle(angle)
	body.SetAngularVelocity(0)
}

func applyForce(body *cp.Body, force cp.Vector) {
	body.ApplyForceAtWorldPoint(force, body.Position())
}
