package game

import (
	"testing"

	"github.com/mossfeather/crowtub/ecs"
)

const testStep = 1.0 / 60.0

// testScene wires a headless scene: real storage, real systems, scripted
// pointer, no images, no audio device.
type testScene struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	clock   *SceneClock
	pointer *PointerState
	camera  *Camera
	scrub   *ScrubState
	story   *StoryState
	queue   *SfxQueue
}

// recordingPlayer collects cues instead of playing them.
type recordingPlayer struct {
	played []Cue
}

func (p *recordingPlayer) Play(cue Cue) {
	p.played = append(p.played, cue)
}

func newTestScene(t *testing.T, player CuePlayer) *testScene {
	t.Helper()

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	NewScene(storage, Art{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClockSystem{})
	scheduler.Register(&DragSystem{})
	scheduler.Register(&TweenSystem{})
	scheduler.Register(&IdleMotionSystem{})
	scheduler.Register(&ScrubSystem{})
	scheduler.Register(&GlowSystem{})
	scheduler.Register(&StorySystem{})
	scheduler.Register(&SfxSystem{Player: player})

	return &testScene{
		storage:   storage,
		scheduler: scheduler,
		clock:     ecs.NewSingleton[SceneClock](storage).Get(),
		pointer:   ecs.NewSingleton[PointerState](storage).Get(),
		camera:    ecs.NewSingleton[Camera](storage).Get(),
		scrub:     ecs.NewSingleton[ScrubState](storage).Get(),
		story:     ecs.NewSingleton[StoryState](storage).Get(),
		queue:     ecs.NewSingleton[SfxQueue](storage).Get(),
	}
}

// tick advances the scene one frame at the fixed test step.
func (s *testScene) tick() {
	s.scheduler.Once(testStep)
}

// tickFor advances the scene by whole frames until at least d seconds of
// scene time have passed.
func (s *testScene) tickFor(d float64) {
	frames := int(d/testStep) + 1
	for i := 0; i < frames; i++ {
		s.tick()
	}
}

// sponge returns live pointers to the sponge entity's parts.
func (s *testScene) sponge(t *testing.T) (ecs.EntityId, *Sponge, *Transform) {
	t.Helper()

	id, sponge, tf := s.spongeParts()
	if sponge == nil {
		t.Fatal("scene has no sponge")
	}
	return id, sponge, tf
}

func (s *testScene) spongeParts() (ecs.EntityId, *Sponge, *Transform) {
	for id, item := range ecs.NewView[struct {
		ecs.EntityId
		*Sponge
		*Transform
	}](s.storage).Iter() {
		return id, item.Sponge, item.Transform
	}
	return 0, nil, nil
}

func (s *testScene) crowGlow(t *testing.T) *Glow {
	t.Helper()

	for item := range ecs.NewView[struct {
		*Crow
		*Glow
	}](s.storage).Values() {
		return item.Glow
	}
	t.Fatal("scene has no crow")
	return nil
}

func (s *testScene) target(t *testing.T) *ScrubTarget {
	t.Helper()

	for item := range ecs.NewView[struct {
		*ScrubTarget
	}](s.storage).Values() {
		return item.ScrubTarget
	}
	t.Fatal("scene has no scrub target")
	return nil
}

// grabSponge scripts a press on the sponge's current screen position so the
// drag system picks it up, then moves it to pos while held.
func (s *testScene) grabSponge(t *testing.T, pos Vec3) {
	t.Helper()

	_, _, tf := s.sponge(t)
	sx, sy := s.camera.Project(tf.Pos)
	s.pointer.Sample(int(sx), int(sy), true)
	s.tick()

	s.moveSponge(pos)
}

// moveSponge scripts the held pointer over the screen point that unprojects
// to pos on the drag plane.
func (s *testScene) moveSponge(pos Vec3) {
	_, sponge, _ := s.spongeParts()
	want := pos.Sub(sponge.GrabOffset)
	sx, sy := s.camera.Project(Vec3{X: want.X, Y: want.Y, Z: DragPlaneDepth})
	s.pointer.Sample(int(sx), int(sy), true)
	s.tick()
}

func (s *testScene) releaseSponge() {
	s.pointer.Sample(s.pointer.X, s.pointer.Y, false)
	s.tick()
}
