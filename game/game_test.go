package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame assembles a Game without a sprite image so no graphics context is needed
func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := testConfig()
	f, err := NewStarfield(cfg, NewSeededRand(5))
	require.NoError(t, err)

	now := time.Now()
	return &Game{
		config:         cfg,
		field:          f,
		renderer:       NewRenderer(f.Camera, nil),
		monitor:        NewFrameMonitor(cfg.ProfileFPSThreshold, now),
		lastUpdateTime: now,
	}
}

func TestGame_LayoutForwardsResize(t *testing.T) {
	g := newTestGame(t)
	before := append([]float32(nil), g.Field().Foreground.Opacity...)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.Equal(t, float32(1920)/float32(1080), g.Field().Camera.Aspect)

	// A minimised window reports zero; the previous surface is kept
	w, h = g.Layout(0, 0)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.Equal(t, float32(1920)/float32(1080), g.Field().Camera.Aspect)

	assert.Equal(t, before, g.Field().Foreground.Opacity)
	assert.Zero(t, g.Field().Frames)
}

func TestGame_UpdateClampsDeltaTime(t *testing.T) {
	g := newTestGame(t)
	g.lastUpdateTime = time.Now().Add(-time.Hour)

	require.NoError(t, g.Update())
	assert.Equal(t, uint64(1), g.Field().Frames)
	assert.InDelta(t, maxDeltaTime, g.Field().Elapsed, 1e-9)

	require.NoError(t, g.Update())
	assert.Equal(t, uint64(2), g.Field().Frames)
	assert.Less(t, g.Field().Elapsed, 2*maxDeltaTime)
}
