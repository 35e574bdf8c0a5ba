package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"rayframe/internal/game"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 and below is silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, d/2, rate)
}

// melody plays notes back to back.
func melody(freqs []float64, note time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = tone(f, note, wave, rate)
	}
	return beep.Seq(parts...)
}

// CreateCueSound builds the sound for a game cue at the given volume.
func CreateCueSound(c game.Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case game.CueKeyCollected:
		// Bell: fundamental with an octave overtone
		d := 250 * time.Millisecond
		s = beep.Take(rate.N(d), beep.Mix(
			newVolume(tone(880, d, WaveSine, rate), 0.7),
			newVolume(tone(1760, d, WaveSine, rate), 0.3),
		))
	case game.CueDoorOpened:
		// Scrape of noise over a low saw
		d := 400 * time.Millisecond
		s = beep.Take(rate.N(d), beep.Mix(
			newVolume(tone(0, d, WaveNoise, rate), 0.3),
			newVolume(tone(70, d, WaveSaw, rate), 0.5),
		))
	case game.CueLevelStart:
		s = melody([]float64{392, 523.25}, 120*time.Millisecond, WaveSquare, rate)
		vol *= 0.5
	case game.CueWon:
		s = melody([]float64{523.25, 659.25, 783.99, 1046.5}, 150*time.Millisecond, WaveSine, rate)
	case game.CueLost:
		s = melody([]float64{392, 311.13, 233.08}, 250*time.Millisecond, WaveSquare, rate)
		vol *= 0.6
	default:
		return nil
	}
	return newVolume(s, vol)
}
