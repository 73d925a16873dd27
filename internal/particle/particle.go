package particle

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/spectrum-particles/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

var palette = mustPalette(config.Palette[:])

func mustPalette(hexes []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("particle: bad palette entry %q: %v", h, err))
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}

// Particle is a single pulsing circle. Everything except X, Y and Pulse is
// fixed at creation.
type Particle struct {
	X, Y    float64
	Level   int
	Speed   float64
	Radius  float64
	Pulse   float64
	Color   color.RGBA
	Opacity float64
	Band    int
}

// New creates a particle at a random spot inside a w×h canvas.
func New(rng *rand.Rand, w, h int) Particle {
	return Particle{
		X:       float64(Random(rng, 0, float64(w))),
		Y:       float64(Random(rng, 0, float64(h))),
		Level:   Random(rng, 1, 4),
		Speed:   uniform(rng, 0.5, 2),
		Radius:  uniform(rng, 10, 70),
		Pulse:   uniform(rng, 0.01, 0.1),
		Color:   palette[Random(rng, 0, float64(len(palette)-1))],
		Opacity: uniform(rng, 0.2, 1),
		Band:    int(math.Floor(uniform(rng, config.BandMin, config.BandMax))),
	}
}

// Scale is the radius modulated by the current pulse.
func (p *Particle) Scale() float64 {
	s := math.Exp(p.Pulse) * p.Radius
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return p.Radius
	}
	return s
}

func (p *Particle) alpha() float64 {
	return p.Opacity / float64(p.Level)
}

// Draw renders the particle and then advances it.
func (p *Particle) Draw(s Surface, canvasHeight float64) {
	clr := color.NRGBA{
		R: p.Color.R,
		G: p.Color.G,
		B: p.Color.B,
		A: uint8(math.Round(clamp01(p.alpha()) * 255)),
	}
	x, y, r := float32(p.X), float32(p.Y), float32(p.Scale())
	s.FillCircle(x, y, r, clr)
	s.StrokeCircle(x, y, r, config.StrokeWidth, clr)

	p.Move(canvasHeight)
}

// Move drifts the particle upwards and wraps it to the bottom once it is
// well past the top edge.
func (p *Particle) Move(canvasHeight float64) {
	p.Y -= p.Speed * float64(p.Level)
	if p.Y < config.WrapMargin {
		p.Y = canvasHeight
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
