package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossfeather/crowtub/ecs"
)

func TestViewIterRequiredComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Velocity{DX: 10})
	storage.Spawn(Position{X: 2}, Velocity{DX: 20})
	storage.Spawn(Position{X: 3}) // no velocity, must be skipped

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	seen := 0
	for _, item := range view.Iter() {
		seen++
		assert.Equal(t, item.Position.X*10, item.Velocity.DX)
	}
	assert.Equal(t, 2, seen)
}

func TestViewOptionalField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2}, Health{Current: 5, Max: 10})

	view := ecs.NewView[struct {
		*Position
		Health *Health `ecs:"optional"`
	}](storage)

	withHealth, without := 0, 0
	for item := range view.Values() {
		if item.Health != nil {
			withHealth++
			assert.Equal(t, float32(5), item.Health.Current)
		} else {
			without++
		}
	}
	assert.Equal(t, 1, withHealth)
	assert.Equal(t, 1, without)
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 9})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
	}](storage)

	for gotId, item := range view.Iter() {
		assert.Equal(t, id, gotId)
		assert.Equal(t, id, item.EntityId)
		assert.Equal(t, float32(9), item.Position.X)
	}
}

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 4}, Velocity{DX: 8})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	item := view.Get(id)
	require.NotNil(t, item)
	assert.Equal(t, float32(4), item.Position.X)

	// Mutations through the view hit storage.
	item.Position.X = 44
	assert.Equal(t, float32(44), ecs.ReadComponent[Position](storage, id).X)

	// An entity missing a required component yields nil.
	bare := storage.Spawn(Position{X: 1})
	assert.Nil(t, view.Get(bare))
}

func TestViewGetRef(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 4})
	ref := storage.CreateEntityRef(id)

	view := ecs.NewView[struct{ *Position }](storage)
	require.NotNil(t, view.GetRef(ref))

	storage.Delete(id)
	assert.Nil(t, view.GetRef(ref))
}

func TestViewRejectsBadStructs(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() {
		ecs.NewView[struct{ Position }](storage) // non-pointer field
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"maybe"`
		}](storage)
	})
}
