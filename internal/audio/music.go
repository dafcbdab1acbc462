package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Background loop timing.
const musicNoteTime = 400 * time.Millisecond

// musicNotes is one bar of a calm A-minor arpeggio. The loop cycles it
// endlessly; 0 is a rest.
var musicNotes = []float64{
	220.00, 261.63, 329.63, 440.00, // A3 C4 E4 A4
	329.63, 261.63, 220.00, 0,
}

// musicLoop is an endless streamer that plays musicNotes in a cycle. It keeps
// streaming until stopped, so it must sit behind a Volume node rather than be
// sequenced with finite effects.
type musicLoop struct {
	rate    beep.SampleRate
	idx     int
	current beep.Streamer
	stopped bool
}

func newMusicLoop(rate beep.SampleRate) *musicLoop {
	return &musicLoop{rate: rate}
}

func (l *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	if l.stopped {
		return 0, false
	}
	for n < len(samples) {
		if l.current == nil {
			l.current = newMusicNote(musicNotes[l.idx], l.rate)
			l.idx = (l.idx + 1) % len(musicNotes)
		}
		m, more := l.current.Stream(samples[n:])
		n += m
		if !more {
			l.current = nil
		}
	}
	return n, true
}

func (l *musicLoop) Err() error { return nil }

// newMusicNote builds one shaped note of the loop. A zero frequency becomes a
// silent rest of the same length.
func newMusicNote(freq float64, rate beep.SampleRate) beep.Streamer {
	if freq <= 0 {
		return beep.Silence(rate.N(musicNoteTime))
	}
	osc := NewOscillator(freq, musicNoteTime, WaveSine, rate)
	return NewEnvelope(osc, musicNoteTime, 20*time.Millisecond, 160*time.Millisecond, rate)
}

// StartMusic begins the looping background track. A second call while the loop
// is running is a no-op, as is any call before Initialize succeeded.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.musicSrc != nil {
		return
	}

	src := newMusicLoop(sampleRate)
	node := &effects.Volume{Streamer: src, Base: 2}
	m.musicSrc = src
	m.musicNode = node
	m.retuneMusicLocked()

	speaker.Lock()
	m.mixer.Add(node)
	speaker.Unlock()
}

// StopMusic stops the background track. The loop drains out of the mixer on
// its next stream call.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.musicSrc == nil {
		return
	}

	speaker.Lock()
	m.musicSrc.stopped = true
	speaker.Unlock()
	m.musicSrc = nil
	m.musicNode = nil
}

// retuneMusicLocked applies the current music*master level and mute state to a
// running loop. Callers hold m.mu.
func (m *Manager) retuneMusicLocked() {
	if m.musicNode == nil {
		return
	}

	vol := m.music * m.master
	speaker.Lock()
	if m.muted || vol <= 0 {
		m.musicNode.Silent = true
	} else {
		m.musicNode.Silent = false
		m.musicNode.Volume = math.Log2(vol)
	}
	speaker.Unlock()
}
