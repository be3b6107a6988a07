package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
)

// Renderer draws the arena and every ragdoll segment as vector shapes.
type Renderer struct {
	spec *config.MatchSpec
}

func NewRenderer(spec *config.MatchSpec) *Renderer {
	return &Renderer{spec: spec}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.spec.Arena.Background.NRGBA)

	ecs.ForEach(w, component.WallComponent.Kind(), func(_ ecs.Entity, wall *component.Wall) {
		bb := wall.BB
		vector.FillRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), wall.Color, false)
	})

	entities := w.Query(component.SegmentComponent.Kind(), component.PhysicsBodyComponent.Kind())
	// weapons on top, otherwise creation order
	sort.SliceStable(entities, func(i, j int) bool {
		wi := isWeapon(w, entities[i])
		wj := isWeapon(w, entities[j])
		if wi != wj {
			return wj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		seg, _ := ecs.Get(w, e, component.SegmentComponent.Kind())
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if pb.Body == nil {
			continue
		}
		drawSegment(screen, pb, seg.Color)
	}
}

func isWeapon(w *ecs.World, e ecs.Entity) bool {
	seg, ok := ecs.Get(w, e, component.SegmentComponent.Kind())
	return ok && seg.Name.IsWeapon()
}

func drawSegment(screen *ebiten.Image, pb *component.PhysicsBody, clr color.NRGBA) {
	body := pb.Body
	if pb.Radius > 0 {
		pos := body.Position()
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(pb.Radius), clr, true)
		return
	}
	// A box is a stroke along its local x axis as thick as its height.
	a := body.LocalToWorld(cp.Vector{X: -pb.Width / 2})
	b := body.LocalToWorld(cp.Vector{X: pb.Width / 2})
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(pb.Height), clr, true)
}
