package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Render tick, ~33ms per frame
	TicksPerSecond = 30
	TickPeriod     = time.Second / TicksPerSecond

	// Spectrum analysis
	FFTSize     = 512
	BandCount   = FFTSize / 2
	Smoothing   = 0.3
	BlockSize   = 2048
	MinDecibels = -100.0
	MaxDecibels = -30.0

	// Particles
	ParticleCount = 50
	WrapMargin    = -100
	BandMin       = 1
	BandMax       = 128
	StrokeWidth   = 1

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	DefaultTrack = "track002.ogg"
)

// Palette holds the particle fill colors.
var Palette = [...]string{
	"#69D2E7",
	"#A7DBD8",
	"#E0E4CC",
	"#F38630",
	"#FA6900",
	"#FF4E50",
	"#F9D423",
}
