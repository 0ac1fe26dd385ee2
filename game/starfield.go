package game

import (
	"fmt"
	"math/rand/v2"
)

// Starfield is the simulation context: the three particle layers, the camera
// and the background oscillator, advanced together once per frame.
type Starfield struct {
	Foreground *ParticleGroup
	Background *ParticleGroup
	Dust       *ParticleGroup

	Camera *Camera
	Sky    *ColorOscillator

	// Elapsed drives the camera sway, in seconds
	Elapsed float64
	Frames  uint64

	// Respawns counts recycled particles per layer since creation
	Respawns [3]uint64

	rng Rand
}

// NewSeededRand returns a PCG-backed source so runs can be replayed
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewStarfield validates cfg and populates every layer from rng
func NewStarfield(cfg Config, rng Rand) (*Starfield, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sky, err := NewColorOscillator(cfg.BackgroundBase, cfg.BackgroundTarget, cfg.BackgroundStep)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	fade := Fade{FrameTime: cfg.FrameTime, Duration: cfg.FadeDuration}
	return &Starfield{
		Foreground: NewParticleGroup(cfg.Foreground, fade, rng),
		Background: NewParticleGroup(cfg.Background, fade, rng),
		Dust:       NewParticleGroup(cfg.Dust, fade, rng),
		Camera:     NewCamera(cfg),
		Sky:        sky,
		rng:        rng,
	}, nil
}

// Groups returns the layers in draw order, farthest first
func (s *Starfield) Groups() []*ParticleGroup {
	return []*ParticleGroup{s.Background, s.Dust, s.Foreground}
}

// ParticleCount returns the total number of particles across all layers
func (s *Starfield) ParticleCount() int {
	n := 0
	for _, g := range s.Groups() {
		n += g.Len()
	}
	return n
}

// Step advances the whole field by one frame. dt only feeds the elapsed-time
// oscillators; particle drift is per frame.
func (s *Starfield) Step(dt float64) {
	s.Elapsed += dt
	s.Sky.Advance()
	s.Camera.Sway(s.Elapsed)

	cz := s.Camera.Position.Z()
	for _, g := range []*ParticleGroup{s.Foreground, s.Background, s.Dust} {
		s.Respawns[g.Config.Kind] += uint64(g.Update(cz, s.rng))
	}
	s.Frames++
}

// Resize forwards a new output size to the camera; particles are untouched
func (s *Starfield) Resize(width, height int) bool {
	return s.Camera.SetViewport(width, height)
}
