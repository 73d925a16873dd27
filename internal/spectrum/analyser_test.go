package spectrum

import (
	"math"
	"testing"
)

func TestAnalyserSilenceIsZero(t *testing.T) {
	a := NewAnalyser(512, 0.3, -100, -30)
	for i := 0; i < 512; i++ {
		a.Push(0)
	}
	dst := make([]uint8, a.BinCount())
	a.ByteFrequencyData(dst)
	for k, v := range dst {
		if v != 0 {
			t.Fatalf("bin %d: expected 0 for silence, got %d", k, v)
		}
	}
}

func TestAnalyserPeaksAtToneBin(t *testing.T) {
	a := NewAnalyser(512, 0.3, -100, -30)
	const bin = 32
	for i := 0; i < 512; i++ {
		a.Push(math.Sin(2 * math.Pi * bin * float64(i) / 512))
	}
	dst := make([]uint8, a.BinCount())
	a.ByteFrequencyData(dst)

	if dst[bin] != 255 {
		t.Fatalf("expected tone bin to saturate at 255, got %d", dst[bin])
	}
	if dst[100] >= 200 {
		t.Fatalf("expected far bin well below the tone, got %d", dst[100])
	}
}

func TestAnalyserShortDestination(t *testing.T) {
	a := NewAnalyser(512, 0.3, -100, -30)
	for i := 0; i < 512; i++ {
		a.Push(1)
	}
	dst := make([]uint8, 4)
	a.ByteFrequencyData(dst)
	if dst[0] == 0 {
		t.Fatal("expected DC energy in bin 0")
	}
}

func TestAnalyserSmoothingDecays(t *testing.T) {
	a := NewAnalyser(512, 0.3, -100, -30)
	for i := 0; i < 512; i++ {
		a.Push(math.Sin(2 * math.Pi * 8 * float64(i) / 512))
	}
	dst := make([]uint8, a.BinCount())
	a.ByteFrequencyData(dst)
	if dst[8] == 0 {
		t.Fatal("expected energy at bin 8")
	}

	for i := 0; i < 512; i++ {
		a.Push(0)
	}
	prev := a.smoothed[8]
	a.ByteFrequencyData(dst)
	if got, want := a.smoothed[8], prev*0.3; math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected smoothed value %v after silence, got %v", want, got)
	}
}
