// Package synth plays sound events through the system audio device using
// procedurally generated tones.
package synth

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/skyfire/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// Wave selects the oscillator shape of a tone.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Tone describes one synthesized cue: a frequency sweep with a decaying envelope.
type Tone struct {
	Wave     Wave
	From, To float64 // Hz, swept linearly over the duration
	Duration time.Duration
	Volume   float64
}

// tones maps every event to its cue. Events without an entry are silent.
var tones = map[audio.Event]Tone{
	audio.ShotFired:        {Wave: WaveSquare, From: 880, To: 660, Duration: 40 * time.Millisecond, Volume: 0.05},
	audio.EnemyHit:         {Wave: WaveSquare, From: 220, To: 180, Duration: 30 * time.Millisecond, Volume: 0.08},
	audio.EnemyDestroyed:   {Wave: WaveNoise, From: 0, To: 0, Duration: 250 * time.Millisecond, Volume: 0.2},
	audio.PlayerDamaged:    {Wave: WaveSquare, From: 160, To: 60, Duration: 200 * time.Millisecond, Volume: 0.2},
	audio.PowerUpRapid:     {Wave: WaveSine, From: 660, To: 1320, Duration: 150 * time.Millisecond, Volume: 0.15},
	audio.PowerUpShield:    {Wave: WaveSine, From: 440, To: 880, Duration: 200 * time.Millisecond, Volume: 0.15},
	audio.PowerUpDamage:    {Wave: WaveSquare, From: 330, To: 660, Duration: 150 * time.Millisecond, Volume: 0.1},
	audio.PowerUpBomb:      {Wave: WaveSine, From: 220, To: 440, Duration: 150 * time.Millisecond, Volume: 0.15},
	audio.PowerUpLife:      {Wave: WaveSine, From: 523, To: 1046, Duration: 300 * time.Millisecond, Volume: 0.15},
	audio.BombUsed:         {Wave: WaveNoise, From: 0, To: 0, Duration: 600 * time.Millisecond, Volume: 0.3},
	audio.RunEnded:         {Wave: WaveSine, From: 440, To: 110, Duration: 900 * time.Millisecond, Volume: 0.25},
	audio.PortalSpawned:    {Wave: WaveSine, From: 200, To: 800, Duration: 500 * time.Millisecond, Volume: 0.15},
	audio.BlackHoleEntered: {Wave: WaveSine, From: 600, To: 60, Duration: 800 * time.Millisecond, Volume: 0.25},
	audio.WhiteHoleEntered: {Wave: WaveSine, From: 300, To: 1200, Duration: 400 * time.Millisecond, Volume: 0.2},
	audio.LevelStarted:     {Wave: WaveSquare, From: 392, To: 784, Duration: 350 * time.Millisecond, Volume: 0.12},
}

// Synth is an audio.Player backed by the speaker.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// New creates a synth. Call Init before playing.
func New(logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.Default()
	}
	return &Synth{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the audio device. A failure leaves the synth silent.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		s.logger.Warn("audio device unavailable, sound disabled", "err", err)
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play implements audio.Player.
func (s *Synth) Play(e audio.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	tone, ok := tones[e]
	if !ok {
		return
	}
	streamer := beep.Take(sampleRate.N(tone.Duration), NewGenerator(tone, sampleRate))

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

var _ audio.Player = (*Synth)(nil)

// Generator streams one Tone.
type Generator struct {
	tone  Tone
	sr    beep.SampleRate
	total int
	pos   int
	phase float64
	noise *rand.Rand
}

// NewGenerator creates a streamer for tone at sample rate sr.
func NewGenerator(tone Tone, sr beep.SampleRate) *Generator {
	return &Generator{
		tone:  tone,
		sr:    sr,
		total: max(sr.N(tone.Duration), 1),
		noise: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Stream implements beep.Streamer.
func (g *Generator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		if progress > 1 {
			progress = 1
		}
		freq := g.tone.From + (g.tone.To-g.tone.From)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		var sample float64
		switch g.tone.Wave {
		case WaveSquare:
			if math.Sin(g.phase) >= 0 {
				sample = 1
			} else {
				sample = -1
			}
		case WaveNoise:
			sample = g.noise.Float64()*2 - 1
		default:
			sample = math.Sin(g.phase)
		}

		// Short attack, exponential decay
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		envelope := attack * math.Exp(-3*progress)
		sample *= envelope * g.tone.Volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *Generator) Err() error {
	return nil
}
