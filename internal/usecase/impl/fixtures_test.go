package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/service"
)

var (
	freshFarm = entity.ActiveVendor{ID: "v1", Name: "Fresh Farm", Image: "/images/vendors/fresh-farm.png"}
	seaCatch  = entity.ActiveVendor{ID: "v2", Name: "Sea Catch", Image: "/images/vendors/sea-catch.png"}
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderItem(productID, name string, vendor entity.ActiveVendor, price float64) entity.OrderItem {
	return entity.OrderItem{
		ProductID:    productID,
		ProductName:  name,
		Weight:       "1kg",
		VendorID:     vendor.ID,
		VendorName:   vendor.Name,
		VendorImage:  vendor.Image,
		ProductPrice: price,
	}
}

func productTag(productID, name string, vendor entity.ActiveVendor, price float64) entity.Tag {
	return entity.Tag{
		Kind:        entity.TagProduct,
		VendorID:    vendor.ID,
		VendorName:  vendor.Name,
		VendorImage: vendor.Image,
		ProductID:   productID,
		ProductName: name,
		Price:       price,
	}
}

type manualTimer struct {
	group string
	at    time.Duration
	seq   int
	fn    func()
}

// manualScheduler runs callbacks on a virtual clock moved by Advance.
type manualScheduler struct {
	mu           sync.Mutex
	now          time.Duration
	seq          int
	timers       []*manualTimer
	stopped      bool
	ignoreCancel bool
}

var _ service.Scheduler = (*manualScheduler)(nil)

func (m *manualScheduler) Schedule(group string, delay time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}
	m.seq++
	m.timers = append(m.timers, &manualTimer{group: group, at: m.now + delay, seq: m.seq, fn: fn})
}

func (m *manualScheduler) Cancel(group string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ignoreCancel {
		return
	}
	m.timers = slices.DeleteFunc(m.timers, func(t *manualTimer) bool { return t.group == group })
}

func (m *manualScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	m.timers = nil
}

// Advance moves the clock and runs every callback that comes due, in order.
func (m *manualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		idx := -1
		for i, t := range m.timers {
			if t.at > target {
				continue
			}
			if idx < 0 || t.at < m.timers[idx].at || (t.at == m.timers[idx].at && t.seq < m.timers[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			m.now = target
			m.mu.Unlock()

			return
		}
		next := m.timers[idx]
		m.timers = slices.Delete(m.timers, idx, idx+1)
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

func (m *manualScheduler) Pending(group string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, t := range m.timers {
		if t.group == group {
			count++
		}
	}

	return count
}

// eventRecorder collects published lifecycle events.
type eventRecorder struct {
	mu     sync.Mutex
	events []service.LifecycleEvent
}

func (r *eventRecorder) record(_ context.Context, event *service.LifecycleEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)

	return nil
}

func (r *eventRecorder) stages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	stages := make([]string, 0, len(r.events))
	for _, e := range r.events {
		stages = append(stages, e.Stage)
	}

	return stages
}

func (r *eventRecorder) last() service.LifecycleEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.events[len(r.events)-1]
}
