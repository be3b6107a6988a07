package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// offscreenDepth extends every wall away from the arena so a segment that
// sinks past a wall's visible face is still pushed back inside.
const offscreenDepth = 200

// NewArena adds the ground, roof and side walls as static boxes. The side
// walls straddle the arena edges, so half of each sits off screen.
func NewArena(w *ecs.World, spec config.ArenaSpec) ([]ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return nil, fmt.Errorf("arena: world has no physics world")
	}

	width, height := spec.Width, spec.Height
	wall := spec.WallThickness
	roof := spec.RoofThickness

	walls := []component.Wall{
		{Side: component.WallGround, BB: cp.BB{L: -offscreenDepth, B: height - wall, R: width + offscreenDepth, T: height + offscreenDepth}, Color: spec.GroundColor.NRGBA},
		{Side: component.WallRoof, BB: cp.BB{L: -offscreenDepth, B: -offscreenDepth, R: width + offscreenDepth, T: roof}, Color: spec.RoofColor.NRGBA},
		{Side: component.WallLeft, BB: cp.BB{L: -wall/2 - offscreenDepth, B: 0, R: wall / 2, T: height}, Color: spec.WallColor.NRGBA},
		{Side: component.WallRight, BB: cp.BB{L: width - wall/2, B: 0, R: width + wall/2 + offscreenDepth, T: height}, Color: spec.WallColor.NRGBA},
	}

	out := make([]ecs.Entity, 0, len(walls))
	for i := range walls {
		e := w.CreateEntity()
		walls[i].Shape = pw.AddStaticBox(e, walls[i].BB, spec.Friction, spec.Elasticity)
		if err := ecs.Add(w, e, component.WallComponent.Kind(), &walls[i]); err != nil {
			return nil, fmt.Errorf("arena: add wall: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
