// Package audio synthesizes short sound effects for game events. Everything is
// generated with oscillators at runtime; there are no asset files. When no
// audio backend is available the manager degrades to a silent no-op.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// VolumeStep is the increment used by the volume keys.
const VolumeStep = 0.1

// Default volume levels.
const (
	DefaultMasterVolume = 0.7
	DefaultEffectVolume = 0.8
	DefaultMusicVolume  = 0.5
)

// Manager owns the speaker and plays per-event effects into a shared mixer.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	master float64
	effect float64
	music  float64

	musicSrc  *musicLoop
	musicNode *effects.Volume
}

// NewManager creates an uninitialized audio manager.
func NewManager() *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		master: DefaultMasterVolume,
		effect: DefaultEffectVolume,
		music:  DefaultMusicVolume,
	}
}

// Initialize opens the audio backend. Failure is not fatal: the manager logs a
// warning and every Play call becomes a no-op.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		log.Warn("audio unavailable, continuing without sound", "err", err)
		return
	}

	speaker.Play(m.mixer)
	m.initialized = true
}

// Cleanup stops all sounds.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.musicSrc = nil
	m.musicNode = nil
	m.initialized = false
}

// PlayEvent plays the effect mapped to a game event.
func (m *Manager) PlayEvent(e core.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	vol := m.effect * m.master
	var s beep.Streamer
	switch e {
	case core.EventFruitCollected:
		s = newPickupSound(sampleRate, vol)
	case core.EventSpecialFruit:
		s = newSpecialSound(sampleRate, vol)
	case core.EventPlayerCaught:
		s = newCaughtSound(sampleRate, vol)
	case core.EventGameOver:
		s = newGameOverSound(sampleRate, vol)
	case core.EventPaused:
		s = newClickSound(sampleRate, vol)
	default:
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayClick plays the menu navigation blip.
func (m *Manager) PlayClick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	speaker.Lock()
	m.mixer.Add(newClickSound(sampleRate, m.effect*m.master))
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value.
// Muting also silences the background music.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	m.retuneMusicLocked()
	return m.muted
}

// IsMuted reports the current mute state.
func (m *Manager) IsMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// MasterVolume returns the current master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.master
}

// VolumeUp raises the master volume by one step.
func (m *Manager) VolumeUp() float64 {
	return m.adjustMaster(VolumeStep)
}

// VolumeDown lowers the master volume by one step.
func (m *Manager) VolumeDown() float64 {
	return m.adjustMaster(-VolumeStep)
}

func (m *Manager) adjustMaster(delta float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.master = clampVolume(m.master + delta)
	m.retuneMusicLocked()
	return m.master
}

// EffectVolume returns the current effect volume.
func (m *Manager) EffectVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.effect
}

// SetEffectVolume sets the effect volume, clamped to [0, 1].
func (m *Manager) SetEffectVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.effect = clampVolume(v)
}

// MusicVolume returns the current music volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.music
}

// SetMusicVolume sets the music volume, clamped to [0, 1]. A running
// background loop picks up the new level immediately.
func (m *Manager) SetMusicVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.music = clampVolume(v)
	m.retuneMusicLocked()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
