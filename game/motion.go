package game

import (
	"math"

	"github.com/mossfeather/crowtub/ecs"
)

// BobOffset is the idle vertical displacement at elapsed scene time t.
// Pure: the same t always yields the same offset.
func BobOffset(t, amplitude, frequency float64) float64 {
	return amplitude * math.Sin(2*math.Pi*frequency*t)
}

// IdleMotionSystem animates entities that bob and spin while nobody is
// dragging them. Position and rotation are pure functions of the scene
// clock, so idle motion is reproducible frame for frame.
type IdleMotionSystem struct {
	Clock ecs.Singleton[SceneClock]

	Idlers ecs.Query[struct {
		*Transform
		*Bob
		Spin   *Spin   `ecs:"optional"`
		Sponge *Sponge `ecs:"optional"`
		Tween  *Tween  `ecs:"optional"`
	}]
}

func (s *IdleMotionSystem) Execute(frame *ecs.UpdateFrame) {
	t := s.Clock.Get().Elapsed

	for item := range s.Idlers.Values() {
		if item.Sponge != nil && item.Sponge.Dragging {
			continue
		}
		if item.Tween != nil {
			continue // the release glide owns the transform until it ends
		}

		pos := item.Bob.Origin
		pos.Y += BobOffset(t, item.Bob.Amplitude, item.Bob.Frequency)
		item.Transform.Pos = pos

		if item.Spin != nil {
			item.Transform.Rot = item.Spin.Speed * t
		}
	}
}

// TweenSystem advances release glides and drops them once finished.
type TweenSystem struct {
	Tweens ecs.Query[struct {
		ecs.EntityId
		*Transform
		*Tween
		Sponge *Sponge `ecs:"optional"`
	}]
}

func (s *TweenSystem) Execute(frame *ecs.UpdateFrame) {
	for id, item := range s.Tweens.Iter() {
		// Grabbing the sponge mid-glide cancels the glide.
		if item.Sponge != nil && item.Sponge.Dragging {
			frame.Commands.RemoveComponent(id, tweenType)
			continue
		}

		item.Tween.Elapsed += frame.DeltaTime
		t := item.Tween.Elapsed / item.Tween.Duration
		item.Transform.Pos = Lerp(item.Tween.From, item.Tween.To, t)

		if t >= 1 {
			frame.Commands.RemoveComponent(id, tweenType)
		}
	}
}
