package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/mossfeather/crowtub/ecs"
	"github.com/mossfeather/crowtub/game"
)

type Report struct {
	// Configuration
	Duration time.Duration

	// Results
	Ticks    int
	WallTime time.Duration
	TickTime Stats

	Scrubs       int
	GlowUnlocked bool
	Dead         bool
	CuesPlayed   int

	Systems []ecs.SystemStats

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	total time.Duration
	n     int
}

func (r *Report) recordTick(d time.Duration) {
	s := &r.TickTime
	if s.n == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.total += d
	s.n++
	s.Avg = s.total / time.Duration(s.n)
}

func (r *Report) fillScene(storage *ecs.Storage, cuesPlayed int) {
	var scrub *game.ScrubState
	if storage.ReadSingleton(&scrub) {
		r.Scrubs = scrub.Count
		r.GlowUnlocked = scrub.GlowUnlocked
	}

	var story *game.StoryState
	if storage.ReadSingleton(&story) {
		r.Dead = story.Dead
	}

	r.CuesPlayed = cuesPlayed
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Scrub Soak Report

## Configuration
- **Scene Time:** {{.Duration}}
- **Ticks:** {{.Ticks}}

## Scene Outcome
- **Scrubs:** {{.Scrubs}}
- **Glow Unlocked:** {{.GlowUnlocked}}
- **Dead:** {{.Dead}}
- **Cues Fired:** {{.CuesPlayed}}

## Performance
- **Wall Time:** {{.WallTime}}
- **Tick Time:** avg {{.TickTime.Avg}}, min {{.TickTime.Min}}, max {{.TickTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Num GC:      {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}} (delta {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}})
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
