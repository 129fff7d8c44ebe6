package ecs_test

import "github.com/mossfeather/crowtub/ecs"

// Shared fixtures for the package tests.

type Position struct {
	X, Y, Z float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current, Max float32
}

type Label struct {
	Text string
}

type Wet struct{}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Wet](registry)
	return registry
}
