package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"rayframe/internal/config"
	"rayframe/internal/game"
)

// drain streams s to the end and returns the number of samples produced and
// the peak absolute value.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorEnds verifies the oscillator stops after its duration
func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)
	n, _ := drain(t, osc, 10000)
	if n != 50 {
		t.Errorf("Expected 50 samples, got %d", n)
	}
}

// TestEnvelopeShapes verifies the attack starts silent and the release ends quiet
func TestEnvelopeShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("First sample should be silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain should be at full volume, got %f", samples[50][0])
	}
	if samples[99][0] > 0.2 {
		t.Errorf("Last sample should be released, got %f", samples[99][0])
	}
}

// TestCueSounds verifies every cue produces a finite, bounded sound
func TestCueSounds(t *testing.T) {
	rate := beep.SampleRate(22050)
	cues := []game.Cue{game.CueKeyCollected, game.CueDoorOpened, game.CueLevelStart, game.CueWon, game.CueLost}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := CreateCueSound(c, rate, 0.5)
			if s == nil {
				t.Fatal("Expected a sound")
			}
			n, peak := drain(t, s, rate.N(5*time.Second))
			if n == 0 {
				t.Error("Expected samples")
			}
			if peak == 0 || peak > 1.0 {
				t.Errorf("Peak %f outside (0, 1]", peak)
			}
		})
	}

	if CreateCueSound(game.Cue(99), rate, 1) != nil {
		t.Error("Unknown cues should have no sound")
	}
}

// TestSilentVolume verifies a zero volume mutes the cue
func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	_, peak := drain(t, CreateCueSound(game.CueWon, rate, 0), rate.N(5*time.Second))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

// TestSoundManagerWithoutSpeaker verifies cues are dropped safely before init
func TestSoundManagerWithoutSpeaker(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled manager should initialise without a device: %v", err)
	}
	sm.Play(game.CueWon)
	sm.Cleanup()

	var _ game.CuePlayer = sm
}
