// Crow Tub: there is a crow in your bathtub, and a sponge. Wash it.
package main

import (
	"flag"
	"image"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mossfeather/crowtub/assets"
	"github.com/mossfeather/crowtub/audio"
	"github.com/mossfeather/crowtub/ecs"
	"github.com/mossfeather/crowtub/game"
	"github.com/mossfeather/crowtub/ui"
)

type Game struct {
	storage         *ecs.Storage
	updateScheduler *ecs.Scheduler
	renderScheduler *ecs.Scheduler
	backend         *ecs.Singleton[ui.Backend]
	screen          *ecs.Singleton[game.Screen]
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.backend.Get().BeginFrame()
	g.updateScheduler.Once(1.0 / 60.0)
	g.backend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Get().Image = screen
	g.renderScheduler.Once(0)
	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// cueSampler adapts the audio sampler to the scene's cue interface.
type cueSampler struct {
	sampler *audio.Sampler
}

func (c cueSampler) Play(cue game.Cue) {
	c.sampler.Play(int(cue))
}

func main() {
	assetDir := flag.String("assets", "assets-data", "directory with crow.png, tub.png, sponge.png, squeak.wav, pop.wav")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "show the world stats window")
	flag.Parse()

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Crow Tub")

	backend := ui.NewBackend("Crow Tub", game.ScreenWidth, game.ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	game.RegisterComponents(registry)
	ui.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[ui.Backend](storage, backend)
	ecs.NewSingleton[ui.InputCapture](storage)
	ecs.NewSingleton[game.Screen](storage)

	bundle := assets.Load(os.DirFS(*assetDir))
	game.NewScene(storage, game.Art{
		Crow:   toEbiten(bundle.Crow.Image),
		Tub:    toEbiten(bundle.Tub.Image),
		Sponge: toEbiten(bundle.Sponge.Image),
	})

	var player game.CuePlayer
	if !*mute {
		sampler := audio.NewSampler(assets.SampleRate, game.SfxVolume)
		sampler.Register(int(game.CueSqueak), bundle.Squeak.PCM)
		sampler.Register(int(game.CuePop), bundle.Pop.PCM)
		player = cueSampler{sampler: sampler}
	}

	updateScheduler := ecs.NewScheduler(storage)
	updateScheduler.Register(&ui.PointerGateSystem{})
	updateScheduler.Register(&game.ClockSystem{})
	updateScheduler.Register(&game.PointerSystem{})
	updateScheduler.Register(&game.DragSystem{})
	updateScheduler.Register(&game.TweenSystem{})
	updateScheduler.Register(&game.IdleMotionSystem{})
	updateScheduler.Register(&game.ScrubSystem{})
	updateScheduler.Register(&game.GlowSystem{})
	updateScheduler.Register(&game.StorySystem{})
	updateScheduler.Register(&game.SfxSystem{Player: player})
	updateScheduler.Register(&ui.WidgetSystem{})

	renderScheduler := ecs.NewScheduler(storage)
	renderScheduler.Register(&game.RenderSystem{})

	ui.SpawnHUD(storage)
	ui.SpawnIntroModal(storage)
	ui.SpawnGlowBanner(storage)
	ui.SpawnDeadOverlay(storage)
	if *debug {
		ui.SpawnStatsWindow(storage, updateScheduler)
	}

	g := &Game{
		storage:         storage,
		updateScheduler: updateScheduler,
		renderScheduler: renderScheduler,
		backend:         ecs.NewSingleton[ui.Backend](storage),
		screen:          ecs.NewSingleton[game.Screen](storage),
	}

	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}

func toEbiten(img *image.RGBA) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
