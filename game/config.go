package game

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds starfield configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// Seed feeds the PCG random source used for init and respawns
	Seed uint64

	// FrameTime is the fixed amount subtracted from fade timers every frame (seconds)
	FrameTime float32

	// FadeDuration is the length of the fade-in ramp after a respawn (seconds)
	FadeDuration float32

	// Camera parameters
	CameraZ   float32
	FOV       float32 // vertical field of view in degrees
	NearPlane float32
	FarPlane  float32

	// Background colour oscillation
	BackgroundBase   string // hex colour
	BackgroundTarget string // hex colour
	BackgroundStep   float64

	// Particle layers
	Foreground GroupConfig
	Background GroupConfig
	Dust       GroupConfig

	// Debug enables the on-screen overlay and per-second log lines
	Debug bool

	// ProfileOnDrop captures a CPU profile and trace when FPS drops below ProfileFPSThreshold
	ProfileOnDrop       bool
	ProfileFPSThreshold float64
	ProfilesDir         string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:         1024,
		ScreenHeight:        768,
		Seed:                1,
		FrameTime:           0.016,
		FadeDuration:        5,
		CameraZ:             5,
		FOV:                 75,
		NearPlane:           0.1,
		FarPlane:            4000,
		BackgroundBase:      "#02010d",
		BackgroundTarget:    "#050517",
		BackgroundStep:      0.0003,
		Foreground:          DefaultForegroundConfig(),
		Background:          DefaultBackgroundConfig(),
		Dust:                DefaultDustConfig(),
		ProfileFPSThreshold: 55.0,
		ProfilesDir:         "profiles",
	}
}

// DefaultForegroundConfig returns the bright, twinkling near-field star layer
func DefaultForegroundConfig() GroupConfig {
	return GroupConfig{
		Kind:            KindForegroundStars,
		Count:           3500,
		Extent:          4000,
		InitZNear:       200,
		InitZDepth:      3000,
		SpeedMin:        0.08,
		SpeedRange:      0.5,
		SizeBase:        5,
		SizeVariance:    4,
		InitialAlphaMax: 1,
		ForwardMargin:   100,
		BackOffset:      3000,
		BackJitter:      1000,
		Twinkle:         0.02,
		TwinkleFloor:    0.1,
		FadeIn:          true,
		Tint:            colornames.White,
	}
}

// DefaultBackgroundConfig returns the dim, slow far-field star layer
func DefaultBackgroundConfig() GroupConfig {
	return GroupConfig{
		Kind:          KindBackgroundStars,
		Count:         1200,
		Extent:        6000,
		InitZNear:     3000,
		InitZDepth:    2000,
		SpeedMin:      0.03,
		SpeedRange:    0.12,
		SizeBase:      3,
		SizeVariance:  3,
		ForwardMargin: 200,
		BackOffset:    4000,
		BackJitter:    2000,
		Tint:          color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	}
}

// DefaultDustConfig returns the large, faint cosmic dust layer
func DefaultDustConfig() GroupConfig {
	return GroupConfig{
		Kind:            KindDust,
		Count:           500,
		Extent:          5000,
		InitZNear:       2000,
		InitZDepth:      2000,
		SpeedMin:        0.008,
		SpeedRange:      0.015,
		SizeBase:        50,
		InitialAlphaMax: 0.5,
		ForwardMargin:   150,
		BackOffset:      2500,
		BackJitter:      2000,
		FadeIn:          true,
		Palette: []color.RGBA{
			{R: 180, G: 100, B: 255, A: 255}, // violet
			{R: 100, G: 150, B: 255, A: 255}, // blue
		},
		Tint: colornames.White,
	}
}

// Validate checks the configuration for values the simulator cannot work with
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.FrameTime <= 0 {
		return fmt.Errorf("%w: frame time %v must be positive", ErrInvalidConfig, c.FrameTime)
	}
	if c.FadeDuration <= 0 {
		return fmt.Errorf("%w: fade duration %v must be positive", ErrInvalidConfig, c.FadeDuration)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: fov %v out of range", ErrInvalidConfig, c.FOV)
	}
	if c.NearPlane <= 0 || c.FarPlane <= c.NearPlane {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidConfig, c.NearPlane, c.FarPlane)
	}
	if c.BackgroundStep <= 0 || c.BackgroundStep > 1 {
		return fmt.Errorf("%w: background step %v out of (0,1]", ErrInvalidConfig, c.BackgroundStep)
	}
	slots := [...]GroupConfig{
		KindForegroundStars: c.Foreground,
		KindBackgroundStars: c.Background,
		KindDust:            c.Dust,
	}
	for want, g := range slots {
		if err := g.Validate(); err != nil {
			return err
		}
		if g.Kind != GroupKind(want) {
			return fmt.Errorf("%w: %s slot holds a %s layer", ErrInvalidConfig, GroupKind(want), g.Kind)
		}
	}
	return nil
}
