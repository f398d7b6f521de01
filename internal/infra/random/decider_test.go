package random

import (
	"testing"

	"bezgo/config"

	"github.com/stretchr/testify/assert"
)

func TestDecider_SameSeedSameOutcomes(t *testing.T) {
	a := NewDecider(42)
	b := NewDecider(42)

	for range 50 {
		assert.Equal(t, a.Chance(0.5), b.Chance(0.5))
		assert.Equal(t, a.OrderNumber(), b.OrderNumber())
	}
}

func TestDecider_Bounds(t *testing.T) {
	d := NewDecider(7)

	for range 200 {
		assert.False(t, d.Chance(0))
		assert.True(t, d.Chance(1))

		n := d.OrderNumber()
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestDecider_RoughRate(t *testing.T) {
	d := NewDecider(1)
	hits := 0
	for range 10000 {
		if d.Chance(0.1) {
			hits++
		}
	}

	assert.InDelta(t, 1000, hits, 150)
}

func TestNewDeciderFromConfig(t *testing.T) {
	cfg := &config.Config{Lifecycle: &config.LifecycleConfig{Seed: 9}}

	assert.Equal(t, NewDecider(9).OrderNumber(), NewDeciderFromConfig(cfg).OrderNumber())
	assert.NotNil(t, NewDeciderFromConfig(&config.Config{}))
}

func TestFixed(t *testing.T) {
	f := NewFixed(123456, true, false)

	assert.True(t, f.Chance(0.1))
	assert.False(t, f.Chance(0.1))
	assert.False(t, f.Chance(0.9))
	assert.Equal(t, 123456, f.OrderNumber())
}
