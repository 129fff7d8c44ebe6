package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mossfeather/crowtub/ecs"
	"github.com/mossfeather/crowtub/game"
)

// The widget system itself needs a live ImGui context, so these tests
// cover the pieces around it: the pointer gate and widget spawning.

func newUIWorld() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	game.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[InputCapture](storage)
	ecs.NewSingleton[game.PointerState](storage)
	return storage
}

func TestPointerGateBlocksWhileWindowOwnsMouse(t *testing.T) {
	storage := newUIWorld()
	capture := ecs.NewSingleton[InputCapture](storage).Get()
	pointer := ecs.NewSingleton[game.PointerState](storage).Get()

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PointerGateSystem{})

	capture.WantCaptureMouse = true
	scheduler.Once(1.0 / 60.0)
	assert.True(t, pointer.Blocked)

	capture.WantCaptureMouse = false
	scheduler.Once(1.0 / 60.0)
	assert.False(t, pointer.Blocked, "the gate must release the pointer when the window lets go")
}

func TestSpawnersAddOneWidgetEach(t *testing.T) {
	storage := newUIWorld()
	ecs.NewSingleton[game.ScrubState](storage)
	ecs.NewSingleton[game.StoryState](storage)

	SpawnHUD(storage)
	SpawnIntroModal(storage)
	SpawnGlowBanner(storage)
	SpawnDeadOverlay(storage)

	count := 0
	for item := range ecs.NewView[struct{ *Widget }](storage).Values() {
		assert.NotNil(t, item.Widget.Render)
		count++
	}
	assert.Equal(t, 4, count)
}
