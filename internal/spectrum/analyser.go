package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Analyser turns the most recent fftSize mono samples into byte-scaled
// frequency magnitudes, smoothing each bin over time.
type Analyser struct {
	fftSize   int
	smoothing float64
	minDb     float64
	maxDb     float64

	ring     []float64
	next     int
	window   []float64
	frame    []float64
	smoothed []float64
}

// NewAnalyser creates an analyser over fftSize samples producing fftSize/2
// bins. smoothing is the weight of the previous value, in [0, 1).
func NewAnalyser(fftSize int, smoothing, minDb, maxDb float64) *Analyser {
	return &Analyser{
		fftSize:   fftSize,
		smoothing: smoothing,
		minDb:     minDb,
		maxDb:     maxDb,
		ring:      make([]float64, fftSize),
		window:    window.Blackman(fftSize),
		frame:     make([]float64, fftSize),
		smoothed:  make([]float64, fftSize/2),
	}
}

// BinCount is the number of magnitudes ByteFrequencyData produces.
func (a *Analyser) BinCount() int {
	return a.fftSize / 2
}

// Push appends one mono sample, dropping the oldest.
func (a *Analyser) Push(sample float64) {
	a.ring[a.next] = sample
	a.next++
	if a.next >= len(a.ring) {
		a.next = 0
	}
}

// ByteFrequencyData runs the transform over the buffered samples and writes
// up to BinCount magnitudes into dst, each mapped from [minDb, maxDb] onto
// [0, 255].
func (a *Analyser) ByteFrequencyData(dst []uint8) {
	// oldest sample first
	n := copy(a.frame, a.ring[a.next:])
	copy(a.frame[n:], a.ring[:a.next])
	for i := range a.frame {
		a.frame[i] *= a.window[i]
	}

	spectrum := fft.FFTReal(a.frame)

	bins := a.BinCount()
	if len(dst) < bins {
		bins = len(dst)
	}
	for k := 0; k < bins; k++ {
		mag := cmplx.Abs(spectrum[k]) / float64(a.fftSize)
		v := a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		a.smoothed[k] = v
		dst[k] = a.toByte(v)
	}
}

func (a *Analyser) toByte(mag float64) uint8 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	scaled := 255 * (db - a.minDb) / (a.maxDb - a.minDb)
	switch {
	case scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	}
	return uint8(scaled)
}
