package ecs_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mossfeather/crowtub/ecs"
)

type commandProbe struct {
	Positions ecs.Query[struct {
		ecs.EntityId
		*Position
	}]
	act func(frame *ecs.UpdateFrame, s *commandProbe)
}

func (s *commandProbe) Execute(frame *ecs.UpdateFrame) {
	s.act(frame, s)
}

func runOnce(storage *ecs.Storage, act func(frame *ecs.UpdateFrame, s *commandProbe)) {
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&commandProbe{act: act})
	scheduler.Once(1.0)
}

func TestCommandsSpawnDeferred(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	runOnce(storage, func(frame *ecs.UpdateFrame, s *commandProbe) {
		frame.Commands.Spawn(Position{X: 1})
		// Not visible inside the same frame.
		assert.Equal(t, 0, s.Positions.Count())
	})

	count := 0
	for range ecs.NewView[struct{ *Position }](storage).Values() {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestCommandsDeleteWinsOverAdd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	runOnce(storage, func(frame *ecs.UpdateFrame, s *commandProbe) {
		frame.Commands.AddComponent(id, Wet{})
		frame.Commands.Delete(id)
	})

	assert.Nil(t, ecs.ReadComponent[Position](storage, id))
	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.TotalEntityCount)
}

func TestCommandsAddAndRemove(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1}, Wet{})

	runOnce(storage, func(frame *ecs.UpdateFrame, s *commandProbe) {
		frame.Commands.RemoveComponent(id, reflect.TypeFor[Wet]())
	})

	dry := 0
	for range ecs.NewView[struct {
		*Position
		*Wet
	}](storage).Values() {
		dry++
	}
	assert.Equal(t, 0, dry)
}

func TestCommandsDeferRunsAfterStructuralChanges(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var seen int
	runOnce(storage, func(frame *ecs.UpdateFrame, s *commandProbe) {
		frame.Commands.Spawn(Position{X: 1})
		frame.Commands.Defer(func() {
			for range ecs.NewView[struct{ *Position }](storage).Values() {
				seen++
			}
		})
	})

	assert.Equal(t, 1, seen)
}
