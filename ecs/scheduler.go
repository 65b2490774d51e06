package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats reports how often and how long a scheduler ran.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	// Frames counts calls to Once.
	Frames int64
	// LastFrameDuration covers all systems and the command flush of the
	// latest frame.
	LastFrameDuration time.Duration
	Systems           []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTiming struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func newSystemTiming(name string) *systemTiming {
	return &systemTiming{name: name, min: time.Duration(1<<63 - 1)}
}

func (t *systemTiming) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	t.min = min(t.min, d)
	t.max = max(t.max, d)
}

func (t *systemTiming) snapshot() SystemStats {
	stats := SystemStats{
		Name:           t.name,
		ExecutionCount: t.count,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.count > 0 {
		stats.MinDuration = t.min
		stats.AvgDuration = t.total / time.Duration(t.count)
	}
	return stats
}

// Scheduler runs its systems in registration order against one Storage.
type Scheduler struct {
	storage   *Storage
	systems   []System
	timings   []*systemTiming
	commands  *Commands
	frames    int64
	lastFrame time.Duration
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: newCommands(),
	}
}

// Storage returns the storage the scheduler runs against.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register appends a system and initializes its Singleton fields.
func (s *Scheduler) Register(system System) {
	s.bindSingletons(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.timings = append(s.timings, newSystemTiming(systemType.Name()))
}

// bindSingletons calls Init on every exported Singleton[T] field of a
// struct system.
func (s *Scheduler) bindSingletons(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	storage := reflect.ValueOf(s.storage)
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if !strings.HasPrefix(field.Type().Name(), "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on Singleton field: " + v.Type().Field(i).Name)
		}
		initMethod.Call([]reflect.Value{storage})
	}
}

// Once executes all registered systems once with the given delta time, then
// flushes the commands they queued.
func (s *Scheduler) Once(dt float64) {
	frameStart := time.Now()
	frame := newUpdateFrame(dt, s.storage, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	s.commands.Flush()
	s.frames++
	s.lastFrame = time.Since(frameStart)
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled.
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

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:       len(s.systems),
		Frames:            s.frames,
		LastFrameDuration: s.lastFrame,
		Systems:           make([]SystemStats, len(s.timings)),
	}

	for i, timing := range s.timings {
		stats.Systems[i] = timing.snapshot()
		stats.TotalExecutions += timing.count
	}
	return stats
}
