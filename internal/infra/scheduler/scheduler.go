// Package scheduler runs delayed callbacks on timers grouped by key, so a whole
// group can be cancelled at once.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bezgo/internal/domain/service"

	"go.uber.org/fx"
)

type timerScheduler struct {
	mu      sync.Mutex
	groups  map[string]map[uint64]*time.Timer
	nextID  uint64
	stopped bool
	logger  *slog.Logger
}

// New returns a Scheduler backed by time.AfterFunc.
func New(logger *slog.Logger) service.Scheduler {
	return &timerScheduler{
		groups: make(map[string]map[uint64]*time.Timer),
		logger: logger,
	}
}

// Params holds dependencies for the fx-managed Scheduler
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewWithLifecycle returns a Scheduler that is stopped when the application stops.
func NewWithLifecycle(params Params) service.Scheduler {
	s := New(params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.Stop()

			return nil
		},
	})

	return s
}

func (s *timerScheduler) Schedule(group string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.nextID++
	id := s.nextID
	timers, ok := s.groups[group]
	if !ok {
		timers = make(map[uint64]*time.Timer)
		s.groups[group] = timers
	}

	timers[id] = time.AfterFunc(delay, func() {
		if !s.release(group, id) {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("[Scheduler] Callback panicked",
					slog.String("group", group),
					slog.Any("panic", r),
				)
			}
		}()
		fn()
	})
}

// release removes a fired timer and reports whether it was still pending.
func (s *timerScheduler) release(group string, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timers, ok := s.groups[group]
	if !ok {
		return false
	}
	if _, ok := timers[id]; !ok {
		return false
	}
	delete(timers, id)
	if len(timers) == 0 {
		delete(s.groups, group)
	}

	return true
}

func (s *timerScheduler) Cancel(group string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, timer := range s.groups[group] {
		timer.Stop()
	}
	delete(s.groups, group)
}

func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for group, timers := range s.groups {
		for _, timer := range timers {
			timer.Stop()
		}
		delete(s.groups, group)
	}
}
