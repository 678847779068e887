package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Note is one step of the background loop. Freq 0 is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// Melody is the background loop: a four-bar pentatonic phrase.
var Melody = []Note{
	{523.25, 250 * ms}, {0, 250 * ms}, {392.00, 250 * ms}, {440.00, 250 * ms},
	{523.25, 250 * ms}, {392.00, 250 * ms}, {329.63, 250 * ms}, {0, 250 * ms},
	{349.23, 250 * ms}, {349.23, 250 * ms}, {440.00, 250 * ms}, {523.25, 250 * ms},
	{493.88, 250 * ms}, {440.00, 250 * ms}, {392.00, 500 * ms},
}

const (
	noteAttack  = 20 * ms
	noteRelease = 50 * ms
	notePeak    = 0.08
	noteFloor   = 0.001
)

type melody struct {
	notes []Note
	rate  beep.SampleRate
	idx   int
	pos   int
	phase float64
}

// NewMelody returns an endless streamer that loops notes with a marimba-like
// envelope: a short linear attack, then an exponential decay that reaches
// silence just before the next note.
func NewMelody(notes []Note, rate beep.SampleRate) beep.Streamer {
	return &melody{notes: notes, rate: rate}
}

func (m *melody) envelope(n Note) float64 {
	t := time.Duration(m.pos) * time.Second / time.Duration(m.rate)
	if t < noteAttack {
		return notePeak * float64(t) / float64(noteAttack)
	}
	decay := n.Dur - noteRelease - noteAttack
	if decay <= 0 || t >= n.Dur-noteRelease {
		return 0
	}
	frac := float64(t-noteAttack) / float64(decay)
	return notePeak * math.Pow(noteFloor/notePeak, frac)
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		note := m.notes[m.idx]
		var val float64
		if note.Freq > 0 {
			val = sample(WaveTriangle, m.phase) * m.envelope(note)
			m.phase += note.Freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		m.pos++
		if m.pos >= m.rate.N(note.Dur) {
			m.pos = 0
			m.phase = 0
			m.idx = (m.idx + 1) % len(m.notes)
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }
