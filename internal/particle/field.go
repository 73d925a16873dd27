package particle

import (
	"math/rand/v2"
	"sync"
)

// Field owns a fixed population of particles. Bind is called from the audio
// goroutine and Render from the game loop, so both take the lock.
type Field struct {
	mu        sync.Mutex
	particles []Particle
	height    int
}

// NewField creates count particles scattered over a w×h canvas.
func NewField(rng *rand.Rand, count, w, h int) *Field {
	ps := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		ps = append(ps, New(rng, w, h))
	}
	return &Field{particles: ps, height: h}
}

// Render clears the surface and draws every particle in insertion order,
// later particles on top.
func (f *Field) Render(s Surface) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s.Clear()
	for i := range f.particles {
		f.particles[i].Draw(s, float64(f.height))
	}
}

// Bind maps each particle's band energy (0-255) to its pulse.
func (f *Field) Bind(bands []uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.particles {
		p := &f.particles[i]
		if p.Band < 0 || p.Band >= len(bands) {
			p.Pulse = 0
			continue
		}
		p.Pulse = float64(bands[p.Band]) / 256
	}
}

// Snapshot returns a copy of the current particles.
func (f *Field) Snapshot() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

func (f *Field) Len() int {
	return len(f.particles)
}
