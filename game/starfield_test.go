package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Foreground.Count = 100
	cfg.Background.Count = 50
	cfg.Dust.Count = 20
	return cfg
}

func TestNewStarfield(t *testing.T) {
	f, err := NewStarfield(testConfig(), NewSeededRand(1))
	require.NoError(t, err)

	assert.Equal(t, 170, f.ParticleCount())
	assert.Equal(t, []*ParticleGroup{f.Background, f.Dust, f.Foreground}, f.Groups())
	assert.Equal(t, float32(5), f.Camera.Position.Z())
	assert.Equal(t, 0.0, f.Sky.Fraction)
}

func TestNewStarfield_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Dust.Palette = nil
	_, err := NewStarfield(cfg, NewSeededRand(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = testConfig()
	cfg.BackgroundBase = "not-a-colour"
	_, err = NewStarfield(cfg, NewSeededRand(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestStarfield_Step(t *testing.T) {
	f, err := NewStarfield(testConfig(), NewSeededRand(1))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		f.Step(0.5)
	}
	assert.Equal(t, uint64(10), f.Frames)
	assert.InDelta(t, 5.0, f.Elapsed, 1e-12)
	assert.InDelta(t, 10*0.0003, f.Sky.Fraction, 1e-12)
	assert.InDelta(t, 0.002*0.479425538604203, f.Camera.RotationX, 1e-7) // sin(0.5)
}

func TestStarfield_CountsRespawns(t *testing.T) {
	cfg := testConfig()
	f, err := NewStarfield(cfg, NewSeededRand(1))
	require.NoError(t, err)

	f.Foreground.Positions[0][2] = 500
	f.Dust.Positions[0][2] = 500
	f.Step(1.0 / 60)

	assert.Equal(t, uint64(1), f.Respawns[KindForegroundStars])
	assert.Equal(t, uint64(0), f.Respawns[KindBackgroundStars])
	assert.Equal(t, uint64(1), f.Respawns[KindDust])
}

func TestStarfield_SameSeedSameField(t *testing.T) {
	a, err := NewStarfield(testConfig(), NewSeededRand(99))
	require.NoError(t, err)
	b, err := NewStarfield(testConfig(), NewSeededRand(99))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		a.Step(1.0 / 60)
		b.Step(1.0 / 60)
	}
	assert.Equal(t, a.Foreground.Positions, b.Foreground.Positions)
	assert.Equal(t, a.Foreground.Opacity, b.Foreground.Opacity)
	assert.Equal(t, a.Dust.Colors, b.Dust.Colors)
}

func TestStarfield_ResizeLeavesParticlesAlone(t *testing.T) {
	f, err := NewStarfield(testConfig(), NewSeededRand(1))
	require.NoError(t, err)
	f.Step(1.0 / 60)

	positions := make(map[GroupKind][]mgl32.Vec3)
	alphas := make(map[GroupKind][]float32)
	for _, g := range f.Groups() {
		positions[g.Config.Kind] = append([]mgl32.Vec3(nil), g.Positions...)
		for i := 0; i < g.Len(); i++ {
			alphas[g.Config.Kind] = append(alphas[g.Config.Kind], g.Alpha(i))
		}
	}

	assert.True(t, f.Resize(800, 400))
	assert.Equal(t, float32(2), f.Camera.Aspect)
	assert.Equal(t, 800.0, f.Camera.Width)
	assert.Equal(t, 400.0, f.Camera.Height)

	for _, g := range f.Groups() {
		assert.Equal(t, positions[g.Config.Kind], g.Positions)
		for i := 0; i < g.Len(); i++ {
			assert.Equal(t, alphas[g.Config.Kind][i], g.Alpha(i))
		}
	}
}
