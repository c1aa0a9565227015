package synth

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/skyfire/internal/audio"
)

func TestGeneratorSamplesInRange(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		g := NewGenerator(Tone{Wave: wave, From: 440, To: 220, Duration: 20 * time.Millisecond, Volume: 0.5}, beep.SampleRate(44100))
		samples := make([][2]float64, 512)
		n, ok := g.Stream(samples)
		if !ok || n != len(samples) {
			t.Fatalf("wave %d: Stream = %d,%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -0.5 || samples[i][0] > 0.5 {
				t.Fatalf("wave %d sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Fatalf("wave %d sample %d not mono", wave, i)
			}
		}
		if g.Err() != nil {
			t.Fatalf("unexpected error: %v", g.Err())
		}
	}
}

func TestEveryEventHasATone(t *testing.T) {
	for e := audio.ShotFired; e <= audio.LevelStarted; e++ {
		if _, ok := tones[e]; !ok {
			t.Errorf("no tone for %v", e)
		}
	}
}

func TestPlayBeforeInitIsSilent(t *testing.T) {
	s := New(nil)
	s.Play(audio.ShotFired) // must not touch the speaker
	s.Close()
}
