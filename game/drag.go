package game

import "github.com/mossfeather/crowtub/ecs"

// DragSystem moves the sponge with the pointer. A drag starts when the
// press lands within GrabRadiusPx of the sponge on screen; while held, the
// pointer is unprojected onto the drag plane every frame; release (or the
// pointer leaving the window) ends the drag and glides the sponge home.
type DragSystem struct {
	Pointer ecs.Singleton[PointerState]
	Camera  ecs.Singleton[Camera]

	Sponges ecs.Query[struct {
		ecs.EntityId
		*Sponge
		*Transform
	}]
}

func (s *DragSystem) Execute(frame *ecs.UpdateFrame) {
	pointer := s.Pointer.Get()
	camera := s.Camera.Get()

	for id, item := range s.Sponges.Iter() {
		sponge := item.Sponge

		if pointer.JustPressed && !sponge.Dragging {
			sx, sy := camera.Project(item.Transform.Pos)
			dx := float64(pointer.X) - sx
			dy := float64(pointer.Y) - sy
			if dx*dx+dy*dy <= GrabRadiusPx*GrabRadiusPx {
				sponge.Dragging = true
				grabbed := camera.Unproject(float64(pointer.X), float64(pointer.Y), DragPlaneDepth)
				// The drag pulls the sponge onto the drag plane, so only
				// the in-plane part of the grab point is kept.
				sponge.GrabOffset = item.Transform.Pos.Sub(grabbed)
				sponge.GrabOffset.Z = 0
			}
		}

		if sponge.Dragging && pointer.Pressed {
			under := camera.Unproject(float64(pointer.X), float64(pointer.Y), DragPlaneDepth)
			item.Transform.Pos = under.Add(sponge.GrabOffset)
		}

		if sponge.Dragging && !pointer.Pressed {
			sponge.Dragging = false
			frame.Commands.AddComponent(id, Tween{
				From:     item.Transform.Pos,
				To:       sponge.Home,
				Duration: ReleaseTweenSec,
			})
		}
	}
}
