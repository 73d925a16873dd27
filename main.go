package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/spectrum-particles/internal/config"
	"github.com/iburimskiy/spectrum-particles/internal/game"
	"github.com/iburimskiy/spectrum-particles/internal/spectrum"
)

func trackFromArgs(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	if _, err := os.Stat(config.DefaultTrack); err == nil {
		return config.DefaultTrack
	}
	return ""
}

func main() {
	track := trackFromArgs(os.Args)
	if track != "" && !spectrum.Supported(track) {
		log.Fatalf("unsupported file type: %s", track)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Spectrum Particles - Start: play, Space: pause, Esc/Q: quit")
	ebiten.SetTPS(config.TicksPerSecond)

	g := game.New(track)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
