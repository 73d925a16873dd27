package spectrum

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Output is the audio sink a Source plays into. Lock and Unlock guard state
// shared with the playback goroutine.
type Output interface {
	Init(format beep.Format) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// Speaker is the default Output backed by beep's speaker package.
type Speaker struct {
	initDone bool
	rate     beep.SampleRate
}

func (sp *Speaker) Init(format beep.Format) error {
	if sp.initDone && sp.rate == format.SampleRate {
		return nil
	}
	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		return err
	}
	sp.initDone = true
	sp.rate = format.SampleRate
	return nil
}

func (sp *Speaker) Play(s beep.Streamer) { speaker.Play(s) }

func (sp *Speaker) Lock() { speaker.Lock() }

func (sp *Speaker) Unlock() { speaker.Unlock() }
