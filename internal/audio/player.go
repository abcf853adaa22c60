// Package audio plays the game's sound cues through gopxl/beep.
// Every cue is synthesized; there are no sound files to load. When no
// output device is available the player stays silent.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

const sampleRate = beep.SampleRate(44100)

// Player implements breakout.SoundPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	logger      *log.Logger
	initialized bool
}

var _ breakout.SoundPlayer = (*Player)(nil)

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. A failure is logged and returned; the player
// keeps working as a silent sink either way.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sound reaches a device.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts the cue for s without blocking.
func (p *Player) Play(s breakout.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	switch s {
	case breakout.SoundMusic:
		p.stopMusicLocked()
		p.music = &beep.Ctrl{Streamer: newVolume(newMelody(sampleRate), 0.25)}
		p.mixer.Add(p.music)
		return
	case breakout.SoundGameOver:
		p.stopMusicLocked()
	}

	if cue := p.cue(s); cue != nil {
		p.mixer.Add(cue)
	}
}

// stopMusicLocked pauses the background loop. Callers hold the speaker lock.
func (p *Player) stopMusicLocked() {
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.stopMusicLocked()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// cue builds the finite streamer for a one-shot sound.
func (p *Player) cue(s breakout.Sound) beep.Streamer {
	var streamer beep.Streamer
	switch s {
	case breakout.SoundWall:
		streamer = p.tone(440, 40*time.Millisecond)
	case breakout.SoundPaddle:
		streamer = p.tone(330, 60*time.Millisecond)
	case breakout.SoundBrick:
		streamer = beep.Mix(
			p.tone(660, 70*time.Millisecond),
			newVolume(beep.Take(sampleRate.N(70*time.Millisecond), newNoise(sampleRate, 30)), 0.3),
		)
	case breakout.SoundPowerUp:
		streamer = beep.Seq(
			p.tone(523.25, 60*time.Millisecond),
			p.tone(659.25, 60*time.Millisecond),
			p.tone(783.99, 90*time.Millisecond),
		)
	case breakout.SoundLifeLost:
		streamer = beep.Seq(
			p.tone(392, 120*time.Millisecond),
			p.tone(262, 200*time.Millisecond),
		)
	case breakout.SoundGameOver:
		streamer = beep.Seq(
			p.tone(392, 180*time.Millisecond),
			p.tone(330, 180*time.Millisecond),
			p.tone(262, 180*time.Millisecond),
			p.tone(196, 400*time.Millisecond),
		)
	default:
		return nil
	}
	return newVolume(streamer, 0.5)
}

// tone is a decaying sine of the given length. Falls back to silence if the
// generator rejects the frequency.
func (p *Player) tone(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		p.logger.Debug("tone generator failed", "freq", freq, "error", err)
		return beep.Silence(n)
	}
	return newDecay(beep.Take(n, sine), n)
}

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// decay fades a finite stream linearly to zero over total samples.
type decay struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func newDecay(s beep.Streamer, total int) *decay {
	return &decay{streamer: s, total: max(total, 1)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.pos)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// noiseGenerator produces a crackle with an exponential decay.
type noiseGenerator struct {
	sr    beep.SampleRate
	pos   int
	seed  uint32
	decay float64
}

func newNoise(sr beep.SampleRate, decay float64) *noiseGenerator {
	return &noiseGenerator{sr: sr, seed: 2463534242, decay: decay}
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		// xorshift32
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := math.Exp(-t*g.decay) * noise
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error { return nil }
