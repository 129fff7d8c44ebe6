// scrub-soak runs the bath scene headless at a fixed tick rate, scripting
// the pointer through endless sponge passes over the crow. It exists to
// soak the scene logic for leaks and to sanity-check the debounce math at
// speed, without a window or an audio device.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/mossfeather/crowtub/ecs"
	"github.com/mossfeather/crowtub/game"
)

const tickStep = 1.0 / 60.0

// countingPlayer tallies cues instead of playing them.
type countingPlayer struct {
	played int
}

func (p *countingPlayer) Play(cue game.Cue) {
	p.played++
}

func main() {
	duration := flag.Duration("duration", 30*time.Second, "scene time to simulate")
	answer := flag.Bool("answer", true, "answer the intro riddle before scrubbing")
	flag.Parse()

	log.Println("Starting scrub soak...")

	registry := ecs.NewComponentRegistry()
	game.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	game.NewScene(storage, game.Art{})

	player := &countingPlayer{}
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&game.ClockSystem{})
	scheduler.Register(&game.DragSystem{})
	scheduler.Register(&game.TweenSystem{})
	scheduler.Register(&game.IdleMotionSystem{})
	scheduler.Register(&game.ScrubSystem{})
	scheduler.Register(&game.GlowSystem{})
	scheduler.Register(&game.StorySystem{})
	scheduler.Register(&game.SfxSystem{Player: player})

	script := newPointerScript(storage)

	if *answer {
		var story *game.StoryState
		if storage.ReadSingleton(&story) {
			story.Choose(true)
		}
	}

	report := &Report{Duration: *duration}
	runtime.ReadMemStats(&report.MemStatsStart)

	ticks := int(duration.Seconds() / tickStep)
	log.Printf("Simulating %s of scene time (%d ticks)...", *duration, ticks)

	wallStart := time.Now()
	for i := 0; i < ticks; i++ {
		script.step()

		tickStart := time.Now()
		scheduler.Once(tickStep)
		report.recordTick(time.Since(tickStart))
	}
	report.WallTime = time.Since(wallStart)
	report.Ticks = ticks

	runtime.ReadMemStats(&report.MemStatsEnd)
	report.fillScene(storage, player.played)
	report.Systems = scheduler.GetStats().Systems

	log.Println("Soak finished.")

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println()
}

// pointerScript drives the pointer through an endless scrub loop: grab the
// sponge, dunk it on the crow, pull it away, let the cooldown lapse, and
// every few passes drop it to exercise the release glide.
type pointerScript struct {
	storage *ecs.Storage
	camera  *game.Camera
	pointer *game.PointerState

	phase int
	pass  int
}

func newPointerScript(storage *ecs.Storage) *pointerScript {
	script := &pointerScript{storage: storage}
	storage.ReadSingleton(&script.camera)
	storage.ReadSingleton(&script.pointer)
	return script
}

// Phase boundaries in ticks within one pass.
const (
	phaseGrab    = 10
	phaseDunk    = 40
	phaseRetreat = 80
	phaseDrop    = 100
	phaseLen     = 110
)

func (s *pointerScript) step() {
	target, spongePos := s.scenePoints()
	away := target
	away.X += 2.4

	tick := s.phase
	s.phase++
	if s.phase >= phaseLen {
		s.phase = 0
		s.pass++
	}

	dropThisPass := s.pass%4 == 3

	switch {
	case tick < phaseGrab:
		// Press on the sponge wherever it currently floats.
		s.press(spongePos, tick > 2)
	case tick < phaseDunk:
		s.press(target, true)
	case tick < phaseRetreat:
		s.press(away, true)
	case tick < phaseDrop && dropThisPass:
		s.press(away, false)
	default:
		s.press(away, !dropThisPass)
	}
}

func (s *pointerScript) press(p game.Vec3, pressed bool) {
	p.Z = game.DragPlaneDepth
	sx, sy := s.camera.Project(p)
	s.pointer.Sample(int(sx), int(sy), pressed)
}

func (s *pointerScript) scenePoints() (target, sponge game.Vec3) {
	for item := range ecs.NewView[struct {
		*game.ScrubTarget
	}](s.storage).Values() {
		target = item.ScrubTarget.Point
	}
	for item := range ecs.NewView[struct {
		*game.Sponge
		*game.Transform
	}](s.storage).Values() {
		sponge = item.Transform.Pos
	}
	return target, sponge
}
