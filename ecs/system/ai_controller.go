package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/common"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// AISystem decides what the bot does. It does not run on the tick: Register
// schedules it on the world timers, and its decisions are queued as commands
// that the next tick applies.
type AISystem struct {
	spec *config.MatchSpec
	rng  *rand.Rand
}

func NewAISystem(spec *config.MatchSpec, rng *rand.Rand) *AISystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &AISystem{spec: spec, rng: rng}
}

// Register schedules the AI at the configured decision interval.
func (a *AISystem) Register(w *ecs.World) ecs.TimerID {
	if a == nil || w == nil {
		return 0
	}
	return w.Timers().Every(a.spec.AI.Interval, func() {
		a.Update(w)
	})
}

func (a *AISystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	opponent, ok := firstRagdoll(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	for _, e := range w.Query(component.AITagComponent.Kind(), component.RagdollComponent.Kind()) {
		rag, ok := ecs.Get(w, e, component.RagdollComponent.Kind())
		if !ok {
			continue
		}
		state, ok := ecs.Get(w, e, component.AIStateComponent.Kind())
		if !ok {
			state = &component.AIState{}
		}
		a.decide(w, rag, opponent, state)
	}
}

func (a *AISystem) decide(w *ecs.World, self, opponent *component.Ragdoll, state *component.AIState) {
	ai := a.spec.AI
	torso := segmentBody(w, self, component.Torso)
	target := segmentBody(w, opponent, component.Torso)
	if torso == nil || target == nil {
		return
	}
	pos := torso.Position()
	targetPos := target.Position()
	dx := targetPos.X - pos.X
	dir := common.Sign(dx)

	state.Decisions++
	state.Lunged = false
	state.Hopped = false

	if a.threatened(w, opponent, pos, dx) {
		state.Mode = component.AIModeCaution
		a.push(w, self, component.Torso, cp.Vector{X: -dir * ai.RetreatForce})
	} else {
		state.Mode = component.AIModeAdvance
		a.push(w, self, component.Torso, cp.Vector{X: dir * ai.ApproachForce})

		if math.Abs(dx) < ai.LungeRange && a.rng.Float64() < ai.LungeChance && a.grounded(w, self) {
			lift := ai.LungeForceYMin + a.rng.Float64()*(ai.LungeForceYMax-ai.LungeForceYMin)
			a.push(w, self, component.Torso, cp.Vector{X: dir * ai.LungeForceX, Y: -lift})
			state.Lunged = true
		}
	}

	if a.rng.Float64() < ai.HopChance && pos.Y > ai.HopMinHeight {
		a.push(w, self, component.Torso, cp.Vector{X: ai.HopForceX * (a.rng.Float64() - 0.5), Y: -ai.HopForceY})
		state.Hopped = true
	}

	if angle, ok := aimAngle(w, self, targetPos.X, targetPos.Y); ok {
		for _, name := range []component.SegmentName{component.DominantUpperArm, component.DominantLowerArm} {
			w.Commands().Push(component.Command{Kind: component.CommandAngle, Target: self.Segment(name), Angle: angle})
		}
	}
}

// threatened reports whether the opponent's sword is closing on the AI torso
// fast enough to back off.
func (a *AISystem) threatened(w *ecs.World, opponent *component.Ragdoll, torso cp.Vector, dx float64) bool {
	sword := segmentBody(w, opponent, component.Sword)
	if sword == nil {
		return false
	}
	vel := sword.Velocity()
	speed := vel.Length() / a.spec.Physics.TPS
	dist := sword.Position().Distance(torso)
	return speed > a.spec.AI.CautionSpeed && dist < a.spec.AI.CautionDistance && vel.X*dx < 0
}

// grounded reports whether either foot is near the floor.
func (a *AISystem) grounded(w *ecs.World, rag *component.Ragdoll) bool {
	floor := a.spec.Arena.Height - a.spec.AI.GroundMargin
	for _, name := range []component.SegmentName{component.FootL, component.FootR} {
		if foot := segmentBody(w, rag, name); foot != nil && foot.Position().Y > floor {
			return true
		}
	}
	return false
}

func (a *AISystem) push(w *ecs.World, rag *component.Ragdoll, name component.SegmentName, force cp.Vector) {
	w.Commands().Push(component.Command{Kind: component.CommandForce, Target: rag.Segment(name), Force: force})
}

// firstRagdoll returns the ragdoll of the first entity carrying tag.
func firstRagdoll(w *ecs.World, tag ecs.KindID) (*component.Ragdoll, bool) {
	for _, e := range w.Query(tag, component.RagdollComponent.Kind()) {
		if rag, ok := ecs.Get(w, e, component.RagdollComponent.Kind()); ok {
			return rag, true
		}
	}
	return nil, false
}
