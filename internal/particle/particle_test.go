package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

type circle struct {
	x, y, r float32
	clr     color.Color
	stroke  bool
}

type recordingSurface struct {
	clears  int
	circles []circle
}

func (s *recordingSurface) Clear() { s.clears++ }

func (s *recordingSurface) FillCircle(x, y, r float32, clr color.Color) {
	s.circles = append(s.circles, circle{x: x, y: y, r: r, clr: clr})
}

func (s *recordingSurface) StrokeCircle(x, y, r, _ float32, clr color.Color) {
	s.circles = append(s.circles, circle{x: x, y: y, r: r, clr: clr, stroke: true})
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRandomStaysInInclusiveRange(t *testing.T) {
	rng := newRand()
	tests := []struct{ min, max float64 }{
		{0, 6},
		{1, 4},
		{0, 800},
	}
	for _, tt := range tests {
		seen := map[int]bool{}
		for i := 0; i < 200000; i++ {
			v := Random(rng, tt.min, tt.max)
			if float64(v) < tt.min || float64(v) > tt.max {
				t.Fatalf("Random(%v, %v) = %d, out of range", tt.min, tt.max, v)
			}
			seen[v] = true
		}
		if tt.max-tt.min < 10 {
			if !seen[int(tt.min)] || !seen[int(tt.max)] {
				t.Fatalf("Random(%v, %v) never hit an endpoint: %v", tt.min, tt.max, seen)
			}
		}
	}
}

func TestNewParticleRanges(t *testing.T) {
	rng := newRand()
	for i := 0; i < 5000; i++ {
		p := New(rng, 800, 600)
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Fatalf("position out of canvas: %+v", p)
		}
		if p.Level < 1 || p.Level > 4 {
			t.Fatalf("level out of range: %d", p.Level)
		}
		if p.Speed < 0.5 || p.Speed >= 2 {
			t.Fatalf("speed out of range: %v", p.Speed)
		}
		if p.Radius < 10 || p.Radius >= 70 {
			t.Fatalf("radius out of range: %v", p.Radius)
		}
		if p.Pulse < 0.01 || p.Pulse >= 0.1 {
			t.Fatalf("pulse out of range: %v", p.Pulse)
		}
		if p.Opacity < 0.2 || p.Opacity >= 1 {
			t.Fatalf("opacity out of range: %v", p.Opacity)
		}
		if p.Band < 1 || p.Band > 127 {
			t.Fatalf("band out of range: %d", p.Band)
		}
		found := false
		for _, c := range palette {
			if c == p.Color {
				found = true
			}
		}
		if !found {
			t.Fatalf("color %v not in palette", p.Color)
		}
	}
}

func TestPaletteParsesHex(t *testing.T) {
	want := color.RGBA{R: 0x69, G: 0xD2, B: 0xE7, A: 255}
	if palette[0] != want {
		t.Fatalf("expected %v, got %v", want, palette[0])
	}
	if len(palette) != 7 {
		t.Fatalf("expected 7 palette entries, got %d", len(palette))
	}
}

func TestScale(t *testing.T) {
	p := Particle{Radius: 40}
	if got := p.Scale(); got != 40 {
		t.Fatalf("expected zero pulse to keep radius 40, got %v", got)
	}

	p.Pulse = 1
	if got := p.Scale(); math.Abs(got-40*math.E) > 1e-9 {
		t.Fatalf("expected %v, got %v", 40*math.E, got)
	}

	p.Pulse = math.NaN()
	if got := p.Scale(); got != 40 {
		t.Fatalf("expected NaN pulse to fall back to radius, got %v", got)
	}

	p.Pulse = math.Inf(1)
	if got := p.Scale(); got != 40 {
		t.Fatalf("expected +Inf pulse to fall back to radius, got %v", got)
	}

	p.Pulse = math.Inf(-1)
	if got := p.Scale(); got != 40 {
		t.Fatalf("expected -Inf pulse to fall back to radius, got %v", got)
	}
	if p.Radius != 40 {
		t.Fatalf("scale mutated radius: %v", p.Radius)
	}
}

func TestDrawFillsStrokesAndMoves(t *testing.T) {
	s := &recordingSurface{}
	p := Particle{X: 10, Y: 300, Level: 2, Speed: 1.5, Radius: 20, Opacity: 0.8, Color: palette[3]}
	p.Draw(s, 600)

	if len(s.circles) != 2 {
		t.Fatalf("expected fill and stroke, got %d calls", len(s.circles))
	}
	fill, stroke := s.circles[0], s.circles[1]
	if fill.stroke || !stroke.stroke {
		t.Fatal("expected fill before stroke")
	}
	if fill.x != 10 || fill.y != 300 || fill.r != 20 {
		t.Fatalf("unexpected fill circle %+v", fill)
	}
	want := color.NRGBA{R: palette[3].R, G: palette[3].G, B: palette[3].B, A: 102}
	if fill.clr != want || stroke.clr != want {
		t.Fatalf("expected both calls with %v, got %v and %v", want, fill.clr, stroke.clr)
	}
	if p.Y != 297 {
		t.Fatalf("expected y to drop by speed*level to 297, got %v", p.Y)
	}
	if p.X != 10 {
		t.Fatalf("x changed: %v", p.X)
	}
}

func TestMoveWrapsToBottom(t *testing.T) {
	p := Particle{X: 5, Y: -99, Level: 1, Speed: 1.5}
	p.Move(600)
	if p.Y != 600 {
		t.Fatalf("expected wrap to 600, got %v", p.Y)
	}
	if p.X != 5 {
		t.Fatalf("wrap changed x: %v", p.X)
	}

	p = Particle{Y: -99, Level: 1, Speed: 1}
	p.Move(600)
	if p.Y != -100 {
		t.Fatalf("expected -100 to stay unwrapped, got %v", p.Y)
	}
}
