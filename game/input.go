package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mossfeather/crowtub/ecs"
)

// PointerSystem samples the hardware cursor into PointerState. Everything
// downstream reads the singleton, never the device, so headless runs and
// tests can script the pointer directly.
type PointerSystem struct {
	Pointer ecs.Singleton[PointerState]
}

func (s *PointerSystem) Execute(frame *ecs.UpdateFrame) {
	pointer := s.Pointer.Get()

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Releasing outside the window arrives as pressed=false here, which is
	// exactly the release/leave handling the drag needs.
	pointer.Sample(x, y, pressed && !pointer.Blocked)
}
