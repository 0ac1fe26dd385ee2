package game

import "time"

const fpsWindow = 0.5 // seconds per FPS sample

// FrameMonitor measures the update rate and reports sustained drops
type FrameMonitor struct {
	FPS float64

	counter int
	timer   float64

	threshold float64
	warmup    time.Duration
	cooldown  time.Duration
	startTime time.Time
	lastDrop  time.Time

	// OnDrop is called with the measured FPS when a drop is detected
	OnDrop func(fps float64)
}

// NewFrameMonitor creates a monitor; drops are ignored during the first warmup period
func NewFrameMonitor(threshold float64, now time.Time) *FrameMonitor {
	return &FrameMonitor{
		FPS:       60,
		threshold: threshold,
		warmup:    3 * time.Second,
		cooldown:  10 * time.Second,
		startTime: now,
	}
}

// Tick records one frame of length dt. It returns true when a new FPS sample
// was taken.
func (m *FrameMonitor) Tick(now time.Time, dt float64) bool {
	m.timer += dt
	m.counter++
	if m.timer < fpsWindow {
		return false
	}

	m.FPS = float64(m.counter) / m.timer
	m.counter = 0
	m.timer = 0

	if m.OnDrop != nil && m.FPS < m.threshold &&
		now.Sub(m.startTime) >= m.warmup &&
		(m.lastDrop.IsZero() || now.Sub(m.lastDrop) >= m.cooldown) {
		m.lastDrop = now
		m.OnDrop(m.FPS)
	}
	return true
}
