package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/mossfeather/crowtub/ecs"
	"github.com/mossfeather/crowtub/game"
)

const overlayFlags = imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse | imgui.WindowFlagsAlwaysAutoResize

// SpawnHUD shows the scrub counter while the scene is live.
func SpawnHUD(storage *ecs.Storage) {
	scrub := ecs.NewSingleton[game.ScrubState](storage)
	story := ecs.NewSingleton[game.StoryState](storage)

	storage.Spawn(Widget{Render: func() {
		s := story.Get()
		if s.IntroOpen || s.Dead {
			return
		}

		imgui.SetNextWindowPosV(imgui.NewVec2(16, 16), imgui.CondOnce, imgui.NewVec2(0, 0))
		if !imgui.BeginV("Bath Time", nil, overlayFlags) {
			imgui.End()
			return
		}

		state := scrub.Get()
		imgui.Text(fmt.Sprintf("Scrubs: %d / %d", state.Count, state.Threshold))
		if !state.GlowUnlocked {
			imgui.Text("Drag the sponge onto the crow.")
		}
		imgui.End()
	}})
}

// SpawnIntroModal shows the opening riddle. Both answers lead to the same
// place; that is the joke.
func SpawnIntroModal(storage *ecs.Storage) {
	story := ecs.NewSingleton[game.StoryState](storage)

	storage.Spawn(Widget{Render: func() {
		s := story.Get()
		if !s.IntroOpen {
			return
		}

		center := imgui.NewVec2(game.ScreenWidth/2, game.ScreenHeight/2)
		imgui.SetNextWindowPosV(center, imgui.CondAlways, imgui.NewVec2(0.5, 0.5))
		if !imgui.BeginV("A Question", nil, overlayFlags) {
			imgui.End()
			return
		}

		imgui.Text("There is a crow in your bathtub.")
		imgui.Text("Will you wash it?")
		imgui.Separator()
		if imgui.Button("Yes") {
			s.Choose(true)
		}
		imgui.SameLine()
		if imgui.Button("No") {
			s.Choose(false)
		}
		imgui.End()
	}})
}

// SpawnGlowBanner congratulates the player once the crow sparkles.
func SpawnGlowBanner(storage *ecs.Storage) {
	scrub := ecs.NewSingleton[game.ScrubState](storage)
	story := ecs.NewSingleton[game.StoryState](storage)

	storage.Spawn(Widget{Render: func() {
		if !scrub.Get().GlowUnlocked || story.Get().Dead {
			return
		}

		imgui.SetNextWindowPosV(imgui.NewVec2(game.ScreenWidth/2, 40), imgui.CondAlways, imgui.NewVec2(0.5, 0))
		if !imgui.BeginV("##glow-banner", nil, overlayFlags|imgui.WindowFlagsNoTitleBar) {
			imgui.End()
			return
		}
		imgui.Text("Squeaky clean. The crow approves.")
		imgui.End()
	}})
}

// SpawnDeadOverlay shows the ending text once the dead flag flips.
func SpawnDeadOverlay(storage *ecs.Storage) {
	story := ecs.NewSingleton[game.StoryState](storage)
	scrub := ecs.NewSingleton[game.ScrubState](storage)

	storage.Spawn(Widget{Render: func() {
		s := story.Get()
		if !s.Dead {
			return
		}

		center := imgui.NewVec2(game.ScreenWidth/2, game.ScreenHeight/2)
		imgui.SetNextWindowPosV(center, imgui.CondAlways, imgui.NewVec2(0.5, 0.5))
		if !imgui.BeginV("##dead-overlay", nil, overlayFlags|imgui.WindowFlagsNoTitleBar) {
			imgui.End()
			return
		}

		imgui.Text("The crow is dead.")
		imgui.Text(fmt.Sprintf("It was scrubbed %d times.", scrub.Get().Count))
		imgui.End()
	}})
}

// SpawnStatsWindow shows scheduler timings and world population, for debug
// builds.
func SpawnStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	storage.Spawn(Widget{Render: func() {
		if !imgui.BeginV("World Stats", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		world := storage.CollectStats()
		imgui.Text(fmt.Sprintf("Entities: %d", world.TotalEntityCount))
		imgui.Text(fmt.Sprintf("Archetypes: %d", world.ArchetypeCount))
		imgui.Text(fmt.Sprintf("Singletons: %d", world.SingletonCount))
		imgui.Separator()

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, sys := range scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
			}
			imgui.EndTable()
		}
		imgui.End()
	}})
}
