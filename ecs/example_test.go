package ecs_test

import (
	"fmt"

	"github.com/mossfeather/crowtub/ecs"
)

type SceneConfig struct {
	Title   string
	Scrubs  int
	MaxFPS  int
	Verbose bool
}

// ExampleNewSingleton demonstrates world-global components not attached to
// any entity, used for clocks, input state, and configuration.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	config := ecs.NewSingleton[SceneConfig](storage, SceneConfig{
		Title:  "Crow Tub",
		MaxFPS: 60,
	})
	fmt.Printf("%s at %d fps\n", config.Get().Title, config.Get().MaxFPS)

	config.Get().Scrubs = 10

	// A second accessor sees the same data.
	same := ecs.NewSingleton[SceneConfig](storage)
	fmt.Printf("scrubs: %d\n", same.Get().Scrubs)

	// Output:
	// Crow Tub at 60 fps
	// scrubs: 10
}

type Droplet struct {
	Size float32
}

type gravitySystem struct {
	Droplets ecs.Query[struct {
		ecs.EntityId
		*Droplet
	}]
}

func (s *gravitySystem) Execute(frame *ecs.UpdateFrame) {
	for id, item := range s.Droplets.Iter() {
		item.Droplet.Size -= float32(frame.DeltaTime)
		if item.Droplet.Size <= 0 {
			frame.Commands.Delete(id)
		}
	}
}

// ExampleScheduler shows the system lifecycle: query fields are bound at
// registration, snapshots are rebuilt before each execution, and structural
// changes flush after the tick.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Droplet](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Droplet{Size: 1.5})
	storage.Spawn(Droplet{Size: 0.5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&gravitySystem{})

	for range 2 {
		scheduler.Once(1.0)
		fmt.Printf("droplets left: %d\n", storage.CollectStats().TotalEntityCount)
	}

	// Output:
	// droplets left: 1
	// droplets left: 0
}
