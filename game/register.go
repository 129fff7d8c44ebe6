package game

import (
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mossfeather/crowtub/ecs"
)

var tweenType = reflect.TypeFor[Tween]()

// RegisterComponents registers every scene component type.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Crow](registry)
	ecs.RegisterComponent[Tub](registry)
	ecs.RegisterComponent[Sponge](registry)
	ecs.RegisterComponent[ScrubTarget](registry)
	ecs.RegisterComponent[Bob](registry)
	ecs.RegisterComponent[Spin](registry)
	ecs.RegisterComponent[Glow](registry)
	ecs.RegisterComponent[Tween](registry)
}

// Art carries the resolved drawables for the scene entities. Nil images are
// legal (headless runs); the render system falls back to flat shapes.
type Art struct {
	Crow   *ebiten.Image
	Tub    *ebiten.Image
	Sponge *ebiten.Image
}

// NewScene seeds the singletons and spawns the tub, the crow, and the
// sponge. The returned storage is ready for the schedulers.
func NewScene(storage *ecs.Storage, art Art) {
	ecs.NewSingleton[SceneClock](storage)
	ecs.NewSingleton[PointerState](storage)
	ecs.NewSingleton[SfxQueue](storage)

	ecs.NewSingleton[Camera](storage, Camera{
		OriginX: ScreenWidth / 2,
		OriginY: ScreenHeight * 0.66,
		Scale:   120,
		SkewX:   0.18,
		Rise:    0.12,
		ScreenW: ScreenWidth,
		ScreenH: ScreenHeight,
	})

	ecs.NewSingleton[ScrubState](storage, ScrubState{
		Threshold: ScrubThreshold,
	})

	ecs.NewSingleton[StoryState](storage, StoryState{
		IntroOpen: true,
	})

	storage.Spawn(
		Tub{},
		Transform{Pos: Vec3{X: 0, Y: -0.2, Z: 0.2}, Scale: 1},
		Sprite{Image: art.Tub, Tint: [3]uint8{226, 232, 240}, Size: 3.4},
	)

	storage.Spawn(
		Crow{},
		Transform{Pos: Vec3{X: 0, Y: 0.35, Z: 0}, Scale: 1},
		Sprite{Image: art.Crow, Tint: [3]uint8{40, 40, 48}, Size: 1.3},
		ScrubTarget{Point: Vec3{X: 0, Y: 0.45, Z: 0}, Radius: ScrubRadius},
		Glow{FadeSpeed: GlowPulseFade, Color: [3]uint8{255, 214, 90}},
	)

	home := Vec3{X: 1.6, Y: 0.8, Z: -0.3}
	storage.Spawn(
		Sponge{Home: home},
		Transform{Pos: home, Scale: 1},
		Sprite{Image: art.Sponge, Tint: [3]uint8{250, 208, 90}, Size: 0.6},
		Bob{Origin: home, Amplitude: BobAmplitude, Frequency: BobFrequency},
		Spin{Speed: SpinSpeed},
	)
}
