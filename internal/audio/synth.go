package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSaw
	WaveNoise
)

// Ramp selects how a parameter moves from its start to its end value.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExp
)

// Voice describes a single synthesized tone: a waveform with a pitch glide,
// a gain envelope over its whole length and an optional pitch wobble.
type Voice struct {
	Wave WaveType

	FreqFrom, FreqTo float64
	Glide            time.Duration
	FreqRamp         Ramp

	GainFrom, GainTo float64
	GainRamp         Ramp

	Length time.Duration

	// LFO modulates frequency by ±LFODepth Hz at LFORate Hz.
	LFORate, LFODepth float64
}

type tone struct {
	v        Voice
	rate     beep.SampleRate
	total    int
	glide    int
	pos      int
	phase    float64
	lfoPhase float64
}

// NewTone returns a finite streamer that renders v at the given rate.
func NewTone(v Voice, rate beep.SampleRate) beep.Streamer {
	return &tone{
		v:     v,
		rate:  rate,
		total: rate.N(v.Length),
		glide: rate.N(v.Glide),
	}
}

func ramp(kind Ramp, from, to, frac float64) float64 {
	if frac <= 0 {
		return from
	}
	if frac >= 1 {
		return to
	}
	if kind == RampExp && from > 0 && to > 0 {
		return from * math.Pow(to/from, frac)
	}
	return from + (to-from)*frac
}

func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		freq := t.v.FreqFrom
		if t.glide > 0 {
			freq = ramp(t.v.FreqRamp, t.v.FreqFrom, t.v.FreqTo, float64(t.pos)/float64(t.glide))
		}
		if t.v.LFODepth != 0 {
			freq += t.v.LFODepth * math.Sin(2*math.Pi*t.lfoPhase)
			t.lfoPhase += t.v.LFORate / float64(t.rate)
			t.lfoPhase -= math.Floor(t.lfoPhase)
		}
		gain := ramp(t.v.GainRamp, t.v.GainFrom, t.v.GainTo, float64(t.pos)/float64(t.total))

		val := sample(t.v.Wave, t.phase) * gain
		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
