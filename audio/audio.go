// Package audio plays the game's feedback cues through the beep speaker.
//
// All sounds are synthesized; no asset files are needed. A SoundManager
// satisfies pulse.Cues and is silent until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue frequencies and lengths.
const (
	hitFreq      = 880.0
	hitLength    = 60 * time.Millisecond
	missFreq     = 140.0
	missLength   = 120 * time.Millisecond
	finishLength = 90 * time.Millisecond
)

// finishNotes is the arpeggio played at the end of a run. A new best
// adds the top note.
var finishNotes = []float64{523.25, 659.25, 783.99, 1046.5}

// SoundManager mixes short cues into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences all cues. beep has no speaker close; clearing the mixer
// is enough to stop output.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Hit plays a short high blip.
func (sm *SoundManager) Hit() {
	sm.play(newTone(hitFreq, hitLength, sampleRate))
}

// Miss plays a low buzz.
func (sm *SoundManager) Miss() {
	sm.play(newBuzz(missFreq, missLength, sampleRate))
}

// Finish plays a rising arpeggio; newBest extends it by one note.
func (sm *SoundManager) Finish(newBest bool) {
	sm.play(finishStreamer(newBest))
}

func finishStreamer(newBest bool) beep.Streamer {
	notes := finishNotes[:len(finishNotes)-1]
	if newBest {
		notes = finishNotes
	}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = newTone(f, finishLength, sampleRate)
	}
	return beep.Seq(parts...)
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// tone is a sine wave with a linear fade-out so cues end without a click.
type tone struct {
	freq   float64
	total  int
	pos    int
	rate   beep.SampleRate
	square bool
}

func newTone(freq float64, d time.Duration, sr beep.SampleRate) *tone {
	return &tone{freq: freq, total: sr.N(d), rate: sr}
}

// newBuzz is a square wave, harsher than a tone.
func newBuzz(freq float64, d time.Duration, sr beep.SampleRate) *tone {
	return &tone{freq: freq, total: sr.N(d), rate: sr, square: true}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.rate)
		v := math.Sin(phase)
		if t.square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v *= 0.25 * env
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
