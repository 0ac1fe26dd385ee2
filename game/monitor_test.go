package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameMonitor_SamplesFPS(t *testing.T) {
	start := time.Now()
	m := NewFrameMonitor(55, start)

	for i := 0; i < 3; i++ {
		assert.False(t, m.Tick(start, 0.125))
	}
	assert.True(t, m.Tick(start, 0.125))
	assert.Equal(t, 8.0, m.FPS)
}

func TestFrameMonitor_ReportsDropsAfterWarmup(t *testing.T) {
	start := time.Now()
	m := NewFrameMonitor(55, start)
	var drops []float64
	m.OnDrop = func(fps float64) { drops = append(drops, fps) }

	window := func(now time.Time) {
		for i := 0; i < 4; i++ {
			m.Tick(now, 0.125)
		}
	}

	window(start.Add(time.Second))
	assert.Empty(t, drops, "ignored during warmup")

	window(start.Add(4 * time.Second))
	assert.Equal(t, []float64{8}, drops)

	window(start.Add(8 * time.Second))
	assert.Len(t, drops, 1, "cooldown")

	window(start.Add(15 * time.Second))
	assert.Len(t, drops, 2)
}

func TestFrameMonitor_NoDropAtFullRate(t *testing.T) {
	start := time.Now()
	m := NewFrameMonitor(55, start)
	called := false
	m.OnDrop = func(float64) { called = true }

	now := start.Add(10 * time.Second)
	for i := 0; i < 64; i++ {
		m.Tick(now, 1.0/64)
	}
	assert.Equal(t, 64.0, m.FPS)
	assert.False(t, called)
}
