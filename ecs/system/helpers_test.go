package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/component"
	"github.com/milk9111/swordduel/ecs/entity"
	"github.com/stretchr/testify/require"
)

func newTestDuel(t *testing.T) (*ecs.World, *config.MatchSpec, *entity.Duel) {
	t.Helper()
	spec, err := config.DefaultMatchSpec()
	require.NoError(t, err)

	w := ecs.NewWorld()
	duel, err := entity.NewDuel(w, spec)
	require.NoError(t, err)
	return w, spec, duel
}

func ragdollOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Ragdoll {
	t.Helper()
	rag, ok := ecs.Get(w, e, component.RagdollComponent.Kind())
	require.True(t, ok)
	return rag
}

func bodyFor(t *testing.T, w *ecs.World, e ecs.Entity, name component.SegmentName) *cp.Body {
	t.Helper()
	body := segmentBody(w, ragdollOf(t, w, e), name)
	require.NotNil(t, body)
	return body
}

func healthOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	return h
}
