package ecs

import (
	"testing"

	"github.com/milk9111/swordduel/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPosition struct{ X, Y float64 }
type testName struct{ Value string }

var (
	testPositionComponent = component.NewComponent[testPosition]()
	testNameComponent     = component.NewComponent[testName]()
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex >= 0 {
				gone := ents[c.destroyIndex]
				assert.True(t, DestroyEntity(w, gone))
				assert.False(t, IsAlive(w, gone))
				assert.False(t, DestroyEntity(w, gone), "double destroy")
				assert.Len(t, Entities(w), c.create-1)
			}
		})
	}
}

func TestWorldRecycledIDIsNotAlias(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	require.NoError(t, Add(w, old, testNameComponent.Kind(), &testName{Value: "old"}))
	require.True(t, w.DestroyEntity(old))

	fresh := w.CreateEntity()
	assert.Equal(t, old.Index(), fresh.Index())
	assert.NotEqual(t, old, fresh)
	assert.False(t, Has(w, fresh, testNameComponent.Kind()))

	_, ok := Get(w, old, testNameComponent.Kind())
	assert.False(t, ok)
}

func TestWorldAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	require.NoError(t, Add(w, e, testPositionComponent.Kind(), &testPosition{X: 1, Y: 2}))
	pos, ok := Get(w, e, testPositionComponent.Kind())
	require.True(t, ok)
	pos.X = 5

	again, _ := Get(w, e, testPositionComponent.Kind())
	assert.Equal(t, 5.0, again.X, "components are mutated in place")

	assert.True(t, Remove(w, e, testPositionComponent.Kind()))
	assert.False(t, Has(w, e, testPositionComponent.Kind()))
	assert.False(t, Remove(w, e, testPositionComponent.Kind()))
}

func TestWorldAddErrors(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	assert.ErrorIs(t, Add(w, e, testPositionComponent.Kind(), nil), component.ErrNilComponent)
	assert.ErrorIs(t, Add(w, Entity(0), testPositionComponent.Kind(), &testPosition{}), component.ErrEntityNotAlive)
	assert.ErrorIs(t, Add(w, e, component.ComponentKind[testPosition]{}, &testPosition{}), component.ErrInvalidComponentKind)
}

func TestWorldQuery(t *testing.T) {
	w := NewWorld()
	both := w.CreateEntity()
	onlyPos := w.CreateEntity()
	onlyName := w.CreateEntity()

	require.NoError(t, Add(w, both, testPositionComponent.Kind(), &testPosition{}))
	require.NoError(t, Add(w, both, testNameComponent.Kind(), &testName{Value: "both"}))
	require.NoError(t, Add(w, onlyPos, testPositionComponent.Kind(), &testPosition{}))
	require.NoError(t, Add(w, onlyName, testNameComponent.Kind(), &testName{Value: "name"}))

	assert.ElementsMatch(t, []Entity{both}, w.Query(testPositionComponent.Kind(), testNameComponent.Kind()))
	assert.ElementsMatch(t, []Entity{both, onlyPos}, w.Query(testPositionComponent.Kind()))
	assert.Empty(t, w.Query())

	w.DestroyEntity(both)
	assert.Empty(t, w.Query(testPositionComponent.Kind(), testNameComponent.Kind()))

	var seen []string
	ForEach(w, testNameComponent.Kind(), func(_ Entity, n *testName) {
		seen = append(seen, n.Value)
	})
	assert.Equal(t, []string{"name"}, seen)

	first, ok := First(w, testPositionComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, onlyPos, first)
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue[int]
	q.Push(1)
	q.Push(2)
	assert.Equal(t, []int{1, 2}, q.Items())
	assert.Equal(t, []int{1, 2}, q.Drain())
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Drain())
}

type countingSystem struct {
	name  string
	order *[]string
}

func (s countingSystem) Update(*World) { *s.order = append(*s.order, s.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(countingSystem{"a", &order}, nil, countingSystem{"b", &order})
	s.Add(countingSystem{"c", &order})

	s.Update(NewWorld())
	s.Update(nil)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Len(t, s.Systems(), 3)
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	assert.Equal(t, "1", e.String())
	w.DestroyEntity(e)
	assert.Equal(t, "1.1", w.CreateEntity().String())
	assert.Equal(t, "ecs.testName", testNameComponent.Kind().Name())
}
