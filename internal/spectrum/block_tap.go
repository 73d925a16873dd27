package spectrum

import "github.com/faiface/beep"

// blockTap wraps a beep.Streamer, feeds every played frame to an analyser and
// calls onBlock each time blockSize frames have gone through. Audio passes
// through untouched.
type blockTap struct {
	Source    beep.Streamer
	analyser  *Analyser
	blockSize int
	pending   int
	onBlock   func()
}

func newBlockTap(src beep.Streamer, a *Analyser, blockSize int, onBlock func()) *blockTap {
	return &blockTap{
		Source:    src,
		analyser:  a,
		blockSize: blockSize,
		onBlock:   onBlock,
	}
}

func (t *blockTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	for i := 0; i < n; i++ {
		t.analyser.Push((samples[i][0] + samples[i][1]) * 0.5)
		t.pending++
		if t.pending >= t.blockSize {
			t.pending = 0
			if t.onBlock != nil {
				t.onBlock()
			}
		}
	}
	return n, ok
}

func (t *blockTap) Err() error { return t.Source.Err() }
