package game

import "github.com/mossfeather/crowtub/ecs"

// Cue identifies a sound effect.
type Cue int

const (
	CueSqueak Cue = iota
	CuePop
)

// SfxQueue collects cues fired during a tick; the sfx system drains it.
type SfxQueue struct {
	Pending []Cue
}

// ScrubSystem is the debounced proximity detector. While the sponge is
// being dragged, a scrub fires when its distance to the target point drops
// strictly below the trigger radius, at most once per cooldown window. The
// cooldown is measured on the scene clock, so the detector's behavior is a
// function of its inputs alone.
type ScrubSystem struct {
	Clock ecs.Singleton[SceneClock]
	State ecs.Singleton[ScrubState]
	Queue ecs.Singleton[SfxQueue]

	Sponges ecs.Query[struct {
		*Sponge
		*Transform
	}]
	Targets ecs.Query[struct {
		*ScrubTarget
	}]
}

func (s *ScrubSystem) Execute(frame *ecs.UpdateFrame) {
	now := s.Clock.Get().Elapsed
	state := s.State.Get()

	if now < state.CooldownUntil {
		return
	}

	for sponge := range s.Sponges.Values() {
		if !sponge.Sponge.Dragging {
			continue // idle bobbing never scrubs
		}

		for target := range s.Targets.Values() {
			if sponge.Transform.Pos.Dist(target.ScrubTarget.Point) >= target.ScrubTarget.Radius {
				continue
			}

			state.Count++
			state.CooldownUntil = now + ScrubCooldown

			queue := s.Queue.Get()
			queue.Pending = append(queue.Pending, CueSqueak, CuePop)

			s.pulseGlow(frame)
			return // one scrub per window, no matter how many overlaps
		}
	}
}

// pulseGlow kicks the crow's highlight for this scrub.
func (s *ScrubSystem) pulseGlow(frame *ecs.UpdateFrame) {
	for item := range ecs.NewView[struct {
		*Crow
		*Glow
	}](frame.Storage).Values() {
		item.Glow.Intensity = 1.0
	}
}

// GlowSystem derives the monotonic glow flag from the scrub count and
// decays the per-scrub pulse.
type GlowSystem struct {
	State ecs.Singleton[ScrubState]

	Glows ecs.Query[struct {
		*Glow
	}]
}

func (s *GlowSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if !state.GlowUnlocked && state.Count >= state.Threshold {
		state.GlowUnlocked = true
	}

	for item := range s.Glows.Values() {
		if item.Glow.Intensity > 0 {
			item.Glow.Intensity -= item.Glow.FadeSpeed * frame.DeltaTime
			if item.Glow.Intensity < 0 {
				item.Glow.Intensity = 0
			}
		}
	}
}

// SfxSystem drains the cue queue into the player, fire and forget. Playback
// failures are the player's problem; the scene never waits on sound.
type SfxSystem struct {
	Queue  ecs.Singleton[SfxQueue]
	Player CuePlayer
}

// CuePlayer is anything that can start a cue without blocking.
type CuePlayer interface {
	Play(cue Cue)
}

func (s *SfxSystem) Execute(frame *ecs.UpdateFrame) {
	queue := s.Queue.Get()
	if len(queue.Pending) == 0 {
		return
	}

	if s.Player != nil {
		for _, cue := range queue.Pending {
			s.Player.Play(cue)
		}
	}
	queue.Pending = queue.Pending[:0]
}
