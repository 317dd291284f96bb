// Package audio plays the short confirmation tone heard when a point is added.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(48000)

// Speaker plays tones on the default audio device. All tones go through one
// mixer, so overlapping taps overlap their tones instead of queueing.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// Volume is on the 0-255 scale of the device the tone was tuned on.
func NewSpeaker(volume uint8) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: float64(volume) / 255,
	}
}

func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "initializing speaker")
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Tone does not block. It is a no-op before Init.
func (s *Speaker) Tone(frequency float64, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(toneStreamer(sampleRate, frequency, duration, s.volume))
	speaker.Unlock()
}

func toneStreamer(sr beep.SampleRate, frequency float64, duration time.Duration, volume float64) beep.Streamer {
	return beep.Take(sr.N(duration), &sine{sr: sr, freq: frequency, amp: volume})
}

// Endless sine wave
type sine struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

func (g *sine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := g.amp * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sine) Err() error {
	return nil
}

// Silent swallows tones. Use it when there is no audio device.
type Silent struct{}

func (Silent) Tone(float64, time.Duration) {}
