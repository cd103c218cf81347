package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// NewChirp returns a short rising tone starting at freq
func NewChirp(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sr.N(d), &ChirpGenerator{sr: sr, freq: freq, samples: sr.N(d)})
}

// NewThud returns a low tone whose pitch and volume drop quickly
func NewThud(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sr.N(d), &ThudGenerator{sr: sr, freq: freq})
}

// NewDecay returns filtered noise over a low rumble, fading out
func NewDecay(sr beep.SampleRate, d time.Duration, seed int64) beep.Streamer {
	return beep.Take(sr.N(d), &DecayGenerator{sr: sr, seed: seed})
}

// ChirpGenerator sweeps up half an octave under a sine envelope
type ChirpGenerator struct {
	sr      beep.SampleRate
	freq    float64
	samples int
	pos     int
	phase   float64
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(max(g.samples, 1))
		freq := g.freq * (1 + 0.5*progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Sin(math.Pi * math.Min(progress, 1))
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// ThudGenerator is a kick-like hit
type ThudGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	phase float64
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 20)
		freq := g.freq * (1 + 2*envelope)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.4 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// DecayGenerator is a crackle fading into silence
type DecayGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*80*t)

		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}
