// Package random draws the simulated outcomes of the order lifecycle.
package random

import (
	"math/rand/v2"
	"sync"
	"time"

	"bezgo/config"
	"bezgo/internal/domain/service"
)

type randomDecider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDecider returns a Decider seeded with seed. A zero seed is replaced by
// the current time.
func NewDecider(seed uint64) service.Decider {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &randomDecider{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// NewDeciderFromConfig seeds the Decider from lifecycle.seed.
func NewDeciderFromConfig(cfg *config.Config) service.Decider {
	var seed uint64
	if cfg.Lifecycle != nil {
		seed = cfg.Lifecycle.Seed
	}

	return NewDecider(seed)
}

func (d *randomDecider) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.rng.Float64() < p
}

// OrderNumber returns a number in [100000, 999999].
func (d *randomDecider) OrderNumber() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return 100000 + d.rng.IntN(900000)
}

// Fixed is a Decider with predetermined outcomes, used by tests and demos.
type Fixed struct {
	mu       sync.Mutex
	outcomes []bool
	Number   int
}

// NewFixed returns a Decider that answers Chance with outcomes in order and
// false once they run out.
func NewFixed(number int, outcomes ...bool) *Fixed {
	return &Fixed{outcomes: outcomes, Number: number}
}

func (f *Fixed) Chance(float64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.outcomes) == 0 {
		return false
	}
	next := f.outcomes[0]
	f.outcomes = f.outcomes[1:]

	return next
}

func (f *Fixed) OrderNumber() int {
	return f.Number
}
