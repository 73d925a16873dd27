package spectrum

import (
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/iburimskiy/spectrum-particles/internal/config"
)

// Source plays a track and keeps a per-block snapshot of its spectrum.
//
// If the track cannot be opened or the output cannot be initialised, the
// error is logged and nothing else happens: Ready never closes and no
// spectrum updates are delivered.
type Source struct {
	mu       sync.Mutex
	playing  bool
	bands    []uint8
	update   func(bands []uint8)
	analyser *Analyser
	out      Output
	open     OpenFunc
	logger   *log.Logger

	paused   atomic.Bool
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	format   beep.Format
	ready    chan struct{}
}

// NewSource creates an idle Source that will play whatever open yields.
func NewSource(out Output, open OpenFunc) *Source {
	a := NewAnalyser(config.FFTSize, config.Smoothing, config.MinDecibels, config.MaxDecibels)
	return &Source{
		bands:    make([]uint8, a.BinCount()),
		analyser: a,
		out:      out,
		open:     open,
		logger:   log.New(os.Stderr, "spectrum: ", log.LstdFlags),
		ready:    make(chan struct{}),
	}
}

// SetUpdate registers the single consumer called once per block while
// playback is not paused. The slice is only valid for the duration of the
// call.
func (s *Source) SetUpdate(fn func(bands []uint8)) {
	s.mu.Lock()
	s.update = fn
	s.mu.Unlock()
}

// SetLogger replaces the logger used for backend failures.
func (s *Source) SetLogger(l *log.Logger) {
	s.logger = l
}

// Start begins playback. Only the first call has an effect; the output is
// brought up asynchronously.
func (s *Source) Start() {
	s.mu.Lock()
	if s.playing {
		s.mu.Unlock()
		return
	}
	s.playing = true
	s.mu.Unlock()

	go s.resume()
}

func (s *Source) resume() {
	streamer, format, err := s.open()
	if err != nil {
		s.logger.Printf("open track: %v", err)
		return
	}
	if err := s.out.Init(format); err != nil {
		s.logger.Printf("init output: %v", err)
		_ = streamer.Close()
		return
	}

	// track -> ctrl -> tap -> output
	ctrl := &beep.Ctrl{Streamer: streamer, Paused: s.paused.Load()}
	tap := newBlockTap(ctrl, s.analyser, config.BlockSize, s.process)

	s.mu.Lock()
	s.ctrl = ctrl
	s.streamer = streamer
	s.format = format
	s.mu.Unlock()

	s.out.Play(beep.Seq(tap, beep.Callback(func() {
		_ = streamer.Close()
	})))
	close(s.ready)
}

// process runs on the playback goroutine once per block.
func (s *Source) process() {
	s.mu.Lock()
	s.analyser.ByteFrequencyData(s.bands)
	update := s.update
	s.mu.Unlock()

	if s.paused.Load() || update == nil {
		return
	}
	// bands is only written from this goroutine
	update(s.bands)
}

// Ready is closed once the pipeline is wired and playing.
func (s *Source) Ready() <-chan struct{} {
	return s.ready
}

// Playing reports whether Start has been called.
func (s *Source) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Bands returns a copy of the latest spectrum snapshot.
func (s *Source) Bands() []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uint8, len(s.bands))
	copy(out, s.bands)
	return out
}

// BandCount is the fixed number of bins in every snapshot.
func (s *Source) BandCount() int {
	return len(s.bands)
}

func (s *Source) Paused() bool {
	return s.paused.Load()
}

// SetPaused pauses or resumes playback. Spectrum sampling keeps running on
// silence but the consumer is not called while paused.
func (s *Source) SetPaused(p bool) {
	s.paused.Store(p)

	s.mu.Lock()
	ctrl := s.ctrl
	s.mu.Unlock()
	if ctrl == nil {
		return
	}
	s.out.Lock()
	ctrl.Paused = p
	s.out.Unlock()
}

func (s *Source) TogglePause() {
	s.SetPaused(!s.paused.Load())
}

// Progress returns the playback position and total length, or zeros before
// the pipeline is ready.
func (s *Source) Progress() (pos, total time.Duration) {
	s.mu.Lock()
	streamer, format := s.streamer, s.format
	s.mu.Unlock()
	if streamer == nil {
		return 0, 0
	}
	s.out.Lock()
	defer s.out.Unlock()
	return format.SampleRate.D(streamer.Position()), Duration(streamer, format)
}
