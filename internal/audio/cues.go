package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/mathdrop/internal/core"
)

const ms = time.Millisecond

// cueVoices lists the layers mixed together for each cue.
var cueVoices = map[core.Cue][]Voice{
	core.CueLand: {
		{Wave: WaveSine, FreqFrom: 200, FreqTo: 50, Glide: 150 * ms, FreqRamp: RampExp,
			GainFrom: 0.4, GainTo: 0.01, GainRamp: RampExp, Length: 200 * ms},
	},
	core.CueCorrect: {
		{Wave: WaveSine, FreqFrom: 880, FreqTo: 1760, Glide: 100 * ms, FreqRamp: RampExp,
			GainFrom: 0.3, GainTo: 0.01, GainRamp: RampExp, Length: 400 * ms},
		{Wave: WaveTriangle, FreqFrom: 1046.50, FreqTo: 1318.51, Glide: 100 * ms,
			GainFrom: 0.2, GainTo: 0.01, Length: 300 * ms},
	},
	core.CueWrong: {
		{Wave: WaveSaw, FreqFrom: 150, FreqTo: 80, Glide: 300 * ms,
			GainFrom: 0.2, GainTo: 0.01, Length: 300 * ms},
	},
	core.CueGameOver: {
		{Wave: WaveSaw, FreqFrom: 300, FreqTo: 50, Glide: 1500 * ms, FreqRamp: RampExp,
			GainFrom: 0.3, GainTo: 0, Length: 1500 * ms, LFORate: 10, LFODepth: 20},
	},
	core.CueMegaClear: megaClear(),
}

func megaClear() []Voice {
	chord := []float64{523.25, 659.25, 783.99, 1046.50}
	voices := make([]Voice, 0, len(chord)+1)
	for i, f := range chord {
		wave := WaveSine
		if i%2 == 0 {
			wave = WaveTriangle
		}
		voices = append(voices, Voice{
			Wave: wave, FreqFrom: f, FreqTo: f * 1.02, Glide: 500 * ms,
			GainFrom: 0.1, GainTo: 0.001, GainRamp: RampExp, Length: 800 * ms,
		})
	}
	return append(voices, Voice{
		Wave: WaveNoise, GainFrom: 0.3, GainTo: 0.001, GainRamp: RampExp, Length: 400 * ms,
	})
}

// CueLength returns how long the sound for c plays. Unknown cues are silent.
func CueLength(c core.Cue) time.Duration {
	var longest time.Duration
	for _, v := range cueVoices[c] {
		longest = max(longest, v.Length)
	}
	return longest
}

// NewCue builds the streamer for one cue, or nil for an unknown cue.
func NewCue(c core.Cue, rate beep.SampleRate) beep.Streamer {
	voices, ok := cueVoices[c]
	if !ok {
		return nil
	}
	layers := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		layers[i] = NewTone(v, rate)
	}
	return beep.Take(rate.N(CueLength(c)), beep.Mix(layers...))
}
