// Package audio synthesizes Math Drop's sound effects and background loop
// with beep. Nothing is loaded from disk; every cue is generated on demand.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/mathdrop/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager plays cues through the local speaker.
// All methods are safe to call before Initialize; they only track state.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	muted       bool
	musicOn     bool
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker and starts the master mix.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.master.Silent = sm.muted
	speaker.Play(sm.master)
	sm.initialized = true
	if sm.musicOn {
		sm.startMusicLocked()
	}
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}

// Play mixes in the sound for c. Muted or uninitialized managers drop it.
func (sm *SoundManager) Play(c core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := NewCue(c, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new value.
// Music keeps its place and resumes on unmute.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = sm.muted
		if sm.music != nil {
			sm.music.Paused = sm.muted
		}
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports whether sound is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// StartMusic starts the background loop if it is not already playing.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicOn = true
	if sm.initialized {
		sm.startMusicLocked()
	}
}

func (sm *SoundManager) startMusicLocked() {
	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = sm.muted
		return
	}
	sm.music = &beep.Ctrl{Streamer: NewMelody(Melody, sampleRate), Paused: sm.muted}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicOn = false
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// MusicOn reports whether the background loop was requested.
func (sm *SoundManager) MusicOn() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}
