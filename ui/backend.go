package ui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// Backend wraps the Ebiten-specific Dear ImGui backend so it can live in
// the world as a singleton.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui context and window.
func NewBackend(title string, width, height int) Backend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	return Backend{EbitenBackend: backend}
}
