package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// theme is the background loop: note frequencies in Hz, 0 for a rest.
var theme = []float64{
	261.63, 329.63, 392.00, 523.25,
	392.00, 329.63, 261.63, 0,
	293.66, 349.23, 440.00, 587.33,
	440.00, 349.23, 293.66, 0,
}

const noteLength = 180 * time.Millisecond

// melodyGenerator plays theme forever. It never reports the end of the
// stream, so it loops without a seekable source.
type melodyGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	perNote int
	pos     int
	phase   float64
}

func newMelody(sr beep.SampleRate) *melodyGenerator {
	return &melodyGenerator{
		sr:      sr,
		notes:   theme,
		perNote: max(sr.N(noteLength), 1),
	}
}

func (g *melodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.perNote) % len(g.notes)
		offset := g.pos % g.perNote
		freq := g.notes[note]

		var sample float64
		if freq > 0 {
			// Square-ish lead with a short release at the note tail.
			g.phase += freq / float64(g.sr)
			g.phase -= math.Floor(g.phase)
			env := 1 - float64(offset)/float64(g.perNote)
			sample = math.Tanh(3*math.Sin(2*math.Pi*g.phase)) * env * 0.4
		}
		samples[i][0] = sample
		samples[i][1] = sample

		g.pos++
		if g.pos == g.perNote*len(g.notes) {
			g.pos = 0
		}
	}
	return len(samples), true
}

func (g *melodyGenerator) Err() error { return nil }
