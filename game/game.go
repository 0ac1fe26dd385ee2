package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// maxDeltaTime clamps long pauses (window drags, breakpoints) to one jump
const maxDeltaTime = 0.1

// Game drives the starfield from ebiten's update/draw callbacks
type Game struct {
	config   Config
	field    *Starfield
	renderer *Renderer
	monitor  *FrameMonitor
	profiler *Profiler

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame builds the simulation, the sprite texture and the renderer
func NewGame(config Config) (*Game, error) {
	field, err := NewStarfield(config, NewSeededRand(config.Seed))
	if err != nil {
		return nil, err
	}

	tex, err := CircleTextureFromColor(colornames.White, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to build star sprite: %w", err)
	}

	now := time.Now()
	g := &Game{
		config:         config,
		field:          field,
		renderer:       NewRenderer(field.Camera, ebiten.NewImageFromImage(tex)),
		monitor:        NewFrameMonitor(config.ProfileFPSThreshold, now),
		lastUpdateTime: now,
	}

	if config.ProfileOnDrop {
		g.profiler, err = NewProfiler(config.ProfilesDir, 5*time.Second)
		if err != nil {
			return nil, err
		}
		g.monitor.OnDrop = g.onFPSDrop
	}

	log.Printf("starfield: %d particles (seed %d)", field.ParticleCount(), config.Seed)
	return g, nil
}

// Field exposes the simulation context
func (g *Game) Field() *Starfield {
	return g.field
}

// Update advances the simulation one frame
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}

	g.field.Step(deltaTime)

	if g.monitor.Tick(now, deltaTime) && g.config.Debug {
		r := g.field.Respawns
		log.Printf("fps=%.1f respawns fg=%d bg=%d dust=%d sky=%.4f",
			g.monitor.FPS, r[KindForegroundStars], r[KindBackgroundStars], r[KindDust], g.field.Sky.Fraction)
	}
	return nil
}

// Draw renders the field
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.field)
	if g.config.Debug {
		drawDebugOverlay(screen, g.field)
	}
}

// Layout follows the window size; a changed size only touches the camera
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.field.Resize(outsideWidth, outsideHeight) && g.config.Debug {
		log.Printf("resize: %dx%d aspect=%.3f", outsideWidth, outsideHeight, g.field.Camera.Aspect)
	}
	return int(g.field.Camera.Width), int(g.field.Camera.Height)
}

func (g *Game) onFPSDrop(fps float64) {
	load := g.field.Load(fps)
	log.Printf("FPS drop: %s; capturing profile", load)
	if err := g.profiler.CaptureProfile(load); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}
