// Package ui renders the scene's overlay windows with Dear ImGui: the
// scrub HUD, the intro riddle, the glow banner, the dead screen, and a
// debug stats window. Widgets live in the world as components; the widget
// system defers their render closures to the end of the tick, once the
// frame's game state is settled.
package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/mossfeather/crowtub/ecs"
	"github.com/mossfeather/crowtub/game"
)

// Widget holds one window's render function, called once per frame.
type Widget struct {
	Render func()
}

// InputCapture is a singleton mirror of ImGui's input ownership for this
// frame.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// RegisterComponents registers the ui component types.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Widget](registry)
}

// WidgetSystem samples ImGui's capture state and queues every widget's
// render closure. The closures run after all systems, inside the frame's
// command flush, so they see the tick's final state.
type WidgetSystem struct {
	Capture ecs.Singleton[InputCapture]

	Widgets ecs.Query[struct{ *Widget }]
}

func (s *WidgetSystem) Execute(frame *ecs.UpdateFrame) {
	capture := s.Capture.Get()
	capture.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	capture.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range s.Widgets.Values() {
		frame.Commands.Defer(item.Widget.Render)
	}
}

// PointerGateSystem blocks the scene's pointer while a window owns the
// mouse, so clicking a button never also grabs the sponge. It must run
// before the pointer is sampled.
type PointerGateSystem struct {
	Capture ecs.Singleton[InputCapture]
	Pointer ecs.Singleton[game.PointerState]
}

func (s *PointerGateSystem) Execute(frame *ecs.UpdateFrame) {
	s.Pointer.Get().Blocked = s.Capture.Get().WantCaptureMouse
}
