package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade-in avoids a click
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// SweepGenerator glides exponentially from one frequency to another under a
// decaying envelope, then ends
type SweepGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	total     int
	pos       int
	phase     float64
}

// NewSweepGenerator creates a finite sweep of the given duration
func NewSweepGenerator(sr beep.SampleRate, startFreq, endFreq float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.total)
		freq := g.startFreq * math.Pow(g.endFreq/g.startFreq, progress)

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		envelope := 0.25 * (1 - progress)
		sample := envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
