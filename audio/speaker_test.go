package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer) [][2]float64 {
	var all [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
}

func TestToneStreamer(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(toneStreamer(rate, 659.26, 50*time.Millisecond, 48.0/255))

	assert.Len(t, samples, rate.N(50*time.Millisecond))

	peak := 0.0
	for _, s := range samples {
		assert.Equal(t, s[0], s[1], "mono")
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.InDelta(t, 48.0/255, peak, 0.01)
	assert.Equal(t, 0.0, samples[0][0])
}

func TestToneFrequency(t *testing.T) {
	rate := beep.SampleRate(48000)
	samples := drain(toneStreamer(rate, 100, time.Second, 1))

	// A 100Hz wave crosses zero upward once per period
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if samples[i-1][0] < 0 && samples[i][0] >= 0 {
			crossings++
		}
	}
	assert.InDelta(t, 100, crossings, 1)
}

func TestSpeakerIsQuietBeforeInit(t *testing.T) {
	s := NewSpeaker(48)
	s.Tone(440, time.Millisecond)
	assert.Equal(t, 0, s.mixer.Len())
	s.Close()
}

func TestSilent(t *testing.T) {
	assert.NotPanics(t, func() { Silent{}.Tone(440, time.Second) })
}
