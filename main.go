package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"starfield/game"
)

func main() {
	config := game.DefaultConfig()

	flag.IntVar(&config.ScreenWidth, "width", config.ScreenWidth, "Initial window width")
	flag.IntVar(&config.ScreenHeight, "height", config.ScreenHeight, "Initial window height")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "Random seed for star placement")
	flag.BoolVar(&config.Debug, "debug", config.Debug, "Show the debug overlay and log stats")
	flag.BoolVar(&config.ProfileOnDrop, "profile-on-drop", config.ProfileOnDrop, "Capture a CPU profile and trace when FPS drops")
	flag.StringVar(&config.ProfilesDir, "profiles-dir", config.ProfilesDir, "Directory for captured profiles")
	flag.Parse()

	g, err := game.NewGame(config)
	if err != nil {
		log.Fatalf("Failed to create starfield: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Starfield")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
