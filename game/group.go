package game

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// GroupKind identifies a particle layer
type GroupKind int

const (
	KindForegroundStars GroupKind = iota
	KindBackgroundStars
	KindDust
)

func (k GroupKind) String() string {
	switch k {
	case KindForegroundStars:
		return "foreground"
	case KindBackgroundStars:
		return "background"
	case KindDust:
		return "dust"
	default:
		return fmt.Sprintf("GroupKind(%d)", int(k))
	}
}

// Rand is the random source consumed by the simulator.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float32() float32
}

// GroupConfig parameterises one particle layer
type GroupConfig struct {
	Kind  GroupKind
	Count int

	// Extent is the x/y span; positions are drawn from [-Extent/2, Extent/2)
	Extent float32

	// Initial z is drawn from (-InitZNear-InitZDepth, -InitZNear]
	InitZNear  float32
	InitZDepth float32

	// Per-frame z drift is SpeedMin + [0, SpeedRange)
	SpeedMin   float32
	SpeedRange float32

	// Size is SizeBase + [0, SizeVariance)
	SizeBase     float32
	SizeVariance float32

	// InitialAlphaMax bounds the random starting opacity/alpha
	InitialAlphaMax float32

	// Respawn when z > cameraZ + ForwardMargin, to
	// cameraZ - BackOffset - [0, BackJitter)
	ForwardMargin float32
	BackOffset    float32
	BackJitter    float32

	// Twinkle is the amplitude of the per-frame opacity random walk; 0 disables it
	Twinkle      float32
	TwinkleFloor float32

	// FadeIn ramps opacity from 0 to 1 after each respawn
	FadeIn bool

	// Palette gives per-particle RGBA colours (dust); one entry is picked at init
	Palette []color.RGBA

	// Tint multiplies the sprite colour when drawing
	Tint color.RGBA
}

// Validate reports parameters that would break the particle invariants
func (c GroupConfig) Validate() error {
	switch {
	case c.Kind < KindForegroundStars || c.Kind > KindDust:
		return fmt.Errorf("%w: unknown layer %s", ErrInvalidConfig, c.Kind)
	case c.Count <= 0:
		return fmt.Errorf("%w: %s count %d must be positive", ErrInvalidConfig, c.Kind, c.Count)
	case c.Extent <= 0:
		return fmt.Errorf("%w: %s extent %v must be positive", ErrInvalidConfig, c.Kind, c.Extent)
	case c.InitZDepth < 0:
		return fmt.Errorf("%w: %s init depth %v is negative", ErrInvalidConfig, c.Kind, c.InitZDepth)
	case c.SpeedMin < 0 || c.SpeedRange < 0:
		return fmt.Errorf("%w: %s speed range [%v,+%v) must be non-negative", ErrInvalidConfig, c.Kind, c.SpeedMin, c.SpeedRange)
	case c.SizeBase <= 0 || c.SizeVariance < 0:
		return fmt.Errorf("%w: %s size %v+%v", ErrInvalidConfig, c.Kind, c.SizeBase, c.SizeVariance)
	case c.InitialAlphaMax < 0 || c.InitialAlphaMax > 1:
		return fmt.Errorf("%w: %s initial alpha %v out of [0,1]", ErrInvalidConfig, c.Kind, c.InitialAlphaMax)
	case c.ForwardMargin < 0 || c.BackOffset <= 0 || c.BackJitter < 0:
		return fmt.Errorf("%w: %s respawn margin=%v back=%v jitter=%v", ErrInvalidConfig, c.Kind, c.ForwardMargin, c.BackOffset, c.BackJitter)
	case c.Twinkle < 0 || c.TwinkleFloor < 0 || c.TwinkleFloor > 1:
		return fmt.Errorf("%w: %s twinkle %v floor %v", ErrInvalidConfig, c.Kind, c.Twinkle, c.TwinkleFloor)
	case c.Kind == KindDust && len(c.Palette) == 0:
		return fmt.Errorf("%w: dust needs a palette", ErrInvalidConfig)
	case len(c.Palette) > 0 && c.Twinkle > 0:
		return fmt.Errorf("%w: %s twinkle needs an opacity buffer, palette layers have none", ErrInvalidConfig, c.Kind)
	}
	return nil
}

// Fade holds the frame-time step and ramp length shared by all fading layers
type Fade struct {
	FrameTime float32
	Duration  float32
}

// BufferFlags marks which per-group buffers changed since the renderer last read them
type BufferFlags struct {
	Positions bool
	Opacity   bool
	Colors    bool
}

// Any reports whether any buffer is dirty
func (f BufferFlags) Any() bool {
	return f.Positions || f.Opacity || f.Colors
}

// ParticleGroup is a fixed-size struct-of-arrays particle layer.
// Index i addresses the same particle in every slice.
type ParticleGroup struct {
	Config GroupConfig

	Positions  []mgl32.Vec3
	Speeds     []float32
	Sizes      []float32
	Opacity    []float32    // nil for layers without a walk or fade on a plain opacity
	FadeTimers []float32    // nil when FadeIn is off
	Colors     []mgl32.Vec4 // nil unless Palette is set; alpha lives in [3]

	Dirty BufferFlags

	fade Fade
}

// NewParticleGroup allocates and randomises a layer
func NewParticleGroup(cfg GroupConfig, fade Fade, rng Rand) *ParticleGroup {
	n := cfg.Count
	g := &ParticleGroup{
		Config:    cfg,
		Positions: make([]mgl32.Vec3, n),
		Speeds:    make([]float32, n),
		Sizes:     make([]float32, n),
		fade:      fade,
	}
	hasPalette := len(cfg.Palette) > 0
	if hasPalette {
		g.Colors = make([]mgl32.Vec4, n)
	} else if cfg.FadeIn || cfg.Twinkle > 0 {
		g.Opacity = make([]float32, n)
	}
	if cfg.FadeIn {
		g.FadeTimers = make([]float32, n)
	}

	for i := 0; i < n; i++ {
		g.Positions[i] = mgl32.Vec3{
			(rng.Float32() - 0.5) * cfg.Extent,
			(rng.Float32() - 0.5) * cfg.Extent,
			-cfg.InitZNear - rng.Float32()*cfg.InitZDepth,
		}
		g.Speeds[i] = cfg.SpeedMin + rng.Float32()*cfg.SpeedRange
		g.Sizes[i] = cfg.SizeBase + rng.Float32()*cfg.SizeVariance

		if hasPalette {
			idx := int(rng.Float32() * float32(len(cfg.Palette)))
			if idx >= len(cfg.Palette) {
				idx = len(cfg.Palette) - 1
			}
			c := cfg.Palette[idx]
			g.Colors[i] = mgl32.Vec4{
				float32(c.R) / 255,
				float32(c.G) / 255,
				float32(c.B) / 255,
				rng.Float32() * cfg.InitialAlphaMax,
			}
		} else if g.Opacity != nil {
			g.Opacity[i] = rng.Float32() * cfg.InitialAlphaMax
		}
	}

	g.Dirty = BufferFlags{Positions: true, Opacity: g.Opacity != nil, Colors: g.Colors != nil}
	return g
}

// Len returns the particle count
func (g *ParticleGroup) Len() int {
	return len(g.Positions)
}

// Alpha returns the effective opacity of particle i
func (g *ParticleGroup) Alpha(i int) float32 {
	switch {
	case g.Colors != nil:
		return g.Colors[i][3]
	case g.Opacity != nil:
		return g.Opacity[i]
	default:
		return 1
	}
}

// Update advances every particle one frame and recycles the ones that passed
// the camera. It returns how many particles respawned.
func (g *ParticleGroup) Update(cameraZ float32, rng Rand) int {
	cfg := &g.Config
	limit := cameraZ + cfg.ForwardMargin
	respawned := 0

	for i := range g.Positions {
		g.Positions[i][2] += g.Speeds[i]

		if g.Opacity != nil {
			if cfg.Twinkle > 0 {
				op := g.Opacity[i] + (rng.Float32()-0.5)*cfg.Twinkle
				g.Opacity[i] = clamp32(op, cfg.TwinkleFloor, 1)
			}
			// The ramp overwrites the walk while a fade is running
			if g.FadeTimers != nil && g.FadeTimers[i] > 0 {
				g.Opacity[i] = g.stepFade(i)
			}
		} else if g.Colors != nil && g.FadeTimers != nil && g.FadeTimers[i] > 0 {
			g.Colors[i][3] = g.stepFade(i)
		}

		if g.Positions[i][2] > limit {
			g.respawn(i, cameraZ, rng)
			respawned++
		}
	}

	g.Dirty.Positions = true
	if g.Opacity != nil {
		g.Dirty.Opacity = true
	}
	if g.Colors != nil {
		g.Dirty.Colors = true
	}
	return respawned
}

// stepFade decrements the fade timer of particle i and returns the ramp value.
// A timer that runs out is snapped to 0 so the particle ends fully opaque.
func (g *ParticleGroup) stepFade(i int) float32 {
	t := g.FadeTimers[i] - g.fade.FrameTime
	if t < 0 {
		t = 0
	}
	g.FadeTimers[i] = t
	return clamp32(1-t/g.fade.Duration, 0, 1)
}

func (g *ParticleGroup) respawn(i int, cameraZ float32, rng Rand) {
	cfg := &g.Config
	g.Positions[i] = mgl32.Vec3{
		(rng.Float32() - 0.5) * cfg.Extent,
		(rng.Float32() - 0.5) * cfg.Extent,
		cameraZ - cfg.BackOffset - rng.Float32()*cfg.BackJitter,
	}
	if g.Opacity != nil {
		g.Opacity[i] = 0
	}
	if g.Colors != nil {
		g.Colors[i][3] = 0
	}
	if g.FadeTimers != nil {
		g.FadeTimers[i] = g.fade.Duration
	}
}

// ConsumeDirty returns the dirty flags and clears them
func (g *ParticleGroup) ConsumeDirty() BufferFlags {
	f := g.Dirty
	g.Dirty = BufferFlags{}
	return f
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
