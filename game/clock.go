package game

import "github.com/mossfeather/crowtub/ecs"

// ClockSystem accumulates scene time. It runs first so every other system
// in the same tick sees the same clock.
type ClockSystem struct {
	Clock ecs.Singleton[SceneClock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	s.Clock.Get().Elapsed += frame.DeltaTime
}
