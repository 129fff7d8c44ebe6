package ecs

import (
	"context"
	"reflect"
	"time"
)

// storageBinder is implemented by Query and Singleton fields; the Scheduler
// binds them to its storage when the owning system is registered.
type storageBinder interface {
	Init(storage *Storage)
}

// snapshotter is implemented by Query fields; the Scheduler rebuilds each
// system's query snapshots immediately before that system executes.
type snapshotter interface {
	Execute()
}

// SchedulerStats summarizes execution across all registered systems.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats reports timing for one system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	system  System
	queries []snapshotter

	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes systems in registration order, once per tick.
type Scheduler struct {
	storage *Storage
	entries []*systemEntry
}

// NewScheduler creates a scheduler bound to the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register adds a system, binding its Query and Singleton fields to the
// scheduler's storage.
func (s *Scheduler) Register(system System) {
	entry := &systemEntry{
		system:      system,
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	}
	entry.queries = s.bindFields(system)
	s.entries = append(s.entries, entry)
}

// bindFields walks the system struct, initializes every Query/Singleton
// field, and returns the queries for per-tick snapshotting.
func (s *Scheduler) bindFields(system System) []snapshotter {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}
	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []snapshotter
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanAddr() || field.Kind() != reflect.Struct {
			continue
		}

		addr := field.Addr()
		if !addr.CanInterface() {
			continue
		}

		if binder, ok := addr.Interface().(storageBinder); ok {
			binder.Init(s.storage)
		}
		if query, ok := addr.Interface().(snapshotter); ok {
			queries = append(queries, query)
		}
	}
	return queries
}

// Once executes every system one time with the given delta time, then
// flushes the frame's deferred commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	for _, entry := range s.entries {
		for _, query := range entry.queries {
			query.Execute()
		}

		start := time.Now()
		entry.system.Execute(frame)
		duration := time.Since(start)

		entry.executionCount++
		entry.lastDuration = duration
		entry.totalDuration += duration
		if duration < entry.minDuration {
			entry.minDuration = duration
		}
		if duration > entry.maxDuration {
			entry.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.storage)
}

// Run ticks the scheduler at the given interval until ctx is cancelled,
// passing the measured wall-clock delta to each tick.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns timing statistics for every registered system.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.entries),
		Systems:     make([]SystemStats, len(s.entries)),
	}

	for i, entry := range s.entries {
		avg := time.Duration(0)
		if entry.executionCount > 0 {
			avg = entry.totalDuration / time.Duration(entry.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           entry.name,
			ExecutionCount: entry.executionCount,
			MinDuration:    entry.minDuration,
			MaxDuration:    entry.maxDuration,
			AvgDuration:    avg,
			LastDuration:   entry.lastDuration,
			TotalDuration:  entry.totalDuration,
		}
		stats.TotalExecutions += entry.executionCount
	}

	return stats
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
