package game

import "github.com/mossfeather/crowtub/ecs"

// StorySystem runs the scripted flow around the scene: once the intro
// modal is answered (either way), it arms a delayed dead transition on the
// scene clock, flips the flag when the deadline passes, and fades the
// overlay in. The pending transition is owned by scene state, so tearing
// the scene down or calling CancelDead before the deadline simply drops it.
type StorySystem struct {
	Clock ecs.Singleton[SceneClock]
	Story ecs.Singleton[StoryState]
}

func (s *StorySystem) Execute(frame *ecs.UpdateFrame) {
	now := s.Clock.Get().Elapsed
	story := s.Story.Get()

	if story.ChoiceMade && !story.DeadArmed {
		story.DeadArmed = true
		story.DeadPending = true
		story.DeadAt = now + DeadDelay
	}

	if story.DeadPending && now >= story.DeadAt {
		story.DeadPending = false
		story.Dead = true
	}

	if story.Dead && story.DeadFade < 1 {
		story.DeadFade += frame.DeltaTime / DeadFadeSec
		if story.DeadFade > 1 {
			story.DeadFade = 1
		}
	}
}
