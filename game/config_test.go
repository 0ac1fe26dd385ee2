package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"zero frame time", func(c *Config) { c.FrameTime = 0 }},
		{"negative fade", func(c *Config) { c.FadeDuration = -1 }},
		{"fov", func(c *Config) { c.FOV = 180 }},
		{"far before near", func(c *Config) { c.FarPlane = 0.05 }},
		{"step", func(c *Config) { c.BackgroundStep = 0 }},
		{"empty layer", func(c *Config) { c.Foreground.Count = 0 }},
		{"extent", func(c *Config) { c.Background.Extent = 0 }},
		{"negative speed", func(c *Config) { c.Foreground.SpeedMin = -1 }},
		{"size", func(c *Config) { c.Background.SizeBase = 0 }},
		{"initial alpha", func(c *Config) { c.Dust.InitialAlphaMax = 2 }},
		{"back offset", func(c *Config) { c.Dust.BackOffset = 0 }},
		{"twinkle floor", func(c *Config) { c.Foreground.TwinkleFloor = 1.5 }},
		{"dust palette", func(c *Config) { c.Dust.Palette = nil }},
		{"unknown kind", func(c *Config) { c.Dust.Kind = GroupKind(7) }},
		{"foreground kind in background slot", func(c *Config) { c.Background.Kind = KindForegroundStars }},
		{"swapped layers", func(c *Config) { c.Foreground, c.Dust = c.Dust, c.Foreground }},
		{"twinkling palette", func(c *Config) { c.Dust.Twinkle = 0.01 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
