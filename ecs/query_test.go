package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mossfeather/crowtub/ecs"
)

func TestQueryPanicsBeforeExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	assert.Panics(t, func() {
		for range query.Iter() {
		}
	})
}

func TestQuerySnapshot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})

	query.Execute()
	assert.Equal(t, 2, query.Count())

	// New entities appear only after the next Execute.
	storage.Spawn(Position{X: 3})
	assert.Equal(t, 2, query.Count())

	query.Execute()
	assert.Equal(t, 3, query.Count())
}

func TestQuerySeesNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	storage.Spawn(Position{X: 1})
	query.Execute()
	assert.Equal(t, 1, query.Count())

	// Same component in a brand-new archetype must still match.
	storage.Spawn(Position{X: 2}, Wet{})
	query.Execute()
	assert.Equal(t, 2, query.Count())
}
