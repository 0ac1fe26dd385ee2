package main

import (
	"flag"
	"log"
	"math"
	"runtime"
	"time"

	"starfield/game"

	"golang.org/x/image/colornames"
)

func main() {
	frames := flag.Int("frames", 3600, "Number of frames to simulate")
	seed := flag.Uint64("seed", 1, "Random seed")
	dt := flag.Float64("dt", 1.0/60.0, "Seconds per frame fed to the oscillators")
	spriteOut := flag.String("sprite-out", "", "Write the star sprite texture to this PNG file")
	flag.Parse()

	log.Printf("Starting headless starfield with GOMAXPROCS=%d", runtime.GOMAXPROCS(0))

	if *spriteOut != "" {
		tex, err := game.CircleTextureFromColor(colornames.White, 1)
		if err != nil {
			log.Fatalf("Failed to build sprite: %v", err)
		}
		if err := game.SaveTexturePNG(tex, *spriteOut); err != nil {
			log.Fatalf("Failed to save sprite: %v", err)
		}
		log.Printf("Sprite saved to: %s", *spriteOut)
	}

	config := game.DefaultConfig()
	config.Seed = *seed

	field, err := game.NewStarfield(config, game.NewSeededRand(config.Seed))
	if err != nil {
		log.Fatalf("Failed to create starfield: %v", err)
	}

	start := time.Now()
	for i := 0; i < *frames; i++ {
		field.Step(*dt)
	}
	elapsed := time.Since(start)

	log.Printf("%d frames in %v (%.1f µs/frame, %d particles)",
		field.Frames, elapsed, float64(elapsed.Microseconds())/math.Max(1, float64(field.Frames)), field.ParticleCount())
	for _, g := range field.Groups() {
		lo, hi := alphaRange(g)
		log.Printf("%-10s respawned=%-6d alpha=[%.3f, %.3f]", g.Config.Kind, field.Respawns[g.Config.Kind], lo, hi)
	}
	log.Printf("sky fraction=%.4f direction=%+.0f", field.Sky.Fraction, field.Sky.Direction)
}

func alphaRange(g *game.ParticleGroup) (lo, hi float32) {
	lo, hi = 1, 0
	for i := 0; i < g.Len(); i++ {
		a := g.Alpha(i)
		lo = min(lo, a)
		hi = max(hi, a)
	}
	return lo, hi
}
