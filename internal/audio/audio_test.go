package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	var buf [512][2]float64
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf[:])
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return 0
}

func TestOscillatorFinite(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSine, sampleRate)

	got := drain(t, osc)
	want := sampleRate.N(dur)
	if got != want {
		t.Errorf("oscillator produced %d samples, want %d", got, want)
	}
}

func TestOscillatorAmplitudeBounded(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(200, 50*time.Millisecond, wave, sampleRate)
		var buf [256][2]float64
		for {
			n, ok := osc.Stream(buf[:])
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("wave %d: sample %f out of range", wave, buf[i][0])
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestEnvelopeRampsToSilence(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSquare, sampleRate)
	env := NewEnvelope(osc, dur, 10*time.Millisecond, 40*time.Millisecond, sampleRate)

	var buf [64][2]float64
	var last float64
	for {
		n, ok := env.Stream(buf[:])
		if n > 0 {
			last = buf[n-1][0]
		}
		if !ok {
			break
		}
	}

	if last < -0.05 || last > 0.05 {
		t.Errorf("final sample %f, want faded near zero", last)
	}
}

func TestEffectBuildersReturnStreamers(t *testing.T) {
	builders := map[string]beep.Streamer{
		"click":    newClickSound(sampleRate, 0.5),
		"pickup":   newPickupSound(sampleRate, 0.5),
		"special":  newSpecialSound(sampleRate, 0.5),
		"caught":   newCaughtSound(sampleRate, 0.5),
		"gameover": newGameOverSound(sampleRate, 0.5),
	}
	for name, s := range builders {
		if got := drain(t, s); got == 0 {
			t.Errorf("%s produced no samples", name)
		}
	}
}

func TestManagerVolumeSteps(t *testing.T) {
	m := NewManager()

	if m.MasterVolume() != DefaultMasterVolume {
		t.Fatalf("master = %.2f, want %.2f", m.MasterVolume(), DefaultMasterVolume)
	}

	m.VolumeUp()
	if got := m.MasterVolume(); got < 0.79 || got > 0.81 {
		t.Errorf("master after up = %.2f, want 0.8", got)
	}

	for i := 0; i < 20; i++ {
		m.VolumeDown()
	}
	if got := m.MasterVolume(); got != 0 {
		t.Errorf("master after floor = %.2f, want 0", got)
	}

	for i := 0; i < 20; i++ {
		m.VolumeUp()
	}
	if got := m.MasterVolume(); got != 1 {
		t.Errorf("master after ceiling = %.2f, want 1", got)
	}
}

func TestManagerMute(t *testing.T) {
	m := NewManager()

	if m.IsMuted() {
		t.Fatal("new manager starts muted")
	}
	if !m.ToggleMute() {
		t.Error("first toggle should mute")
	}
	if m.ToggleMute() {
		t.Error("second toggle should unmute")
	}
}

func TestManagerPlayWithoutInitIsNoop(t *testing.T) {
	m := NewManager()
	// Never initialized; must not panic or touch the speaker.
	m.PlayClick()
	m.StartMusic()
	m.StopMusic()
	m.Cleanup()
}

func TestManagerChannelVolumes(t *testing.T) {
	m := NewManager()

	if m.EffectVolume() != DefaultEffectVolume {
		t.Fatalf("effect = %.2f, want %.2f", m.EffectVolume(), DefaultEffectVolume)
	}
	if m.MusicVolume() != DefaultMusicVolume {
		t.Fatalf("music = %.2f, want %.2f", m.MusicVolume(), DefaultMusicVolume)
	}

	m.SetEffectVolume(1.5)
	if got := m.EffectVolume(); got != 1 {
		t.Errorf("effect after over-set = %.2f, want 1", got)
	}
	m.SetEffectVolume(-0.2)
	if got := m.EffectVolume(); got != 0 {
		t.Errorf("effect after under-set = %.2f, want 0", got)
	}

	m.SetMusicVolume(0.25)
	if got := m.MusicVolume(); got != 0.25 {
		t.Errorf("music = %.2f, want 0.25", got)
	}
}

func TestMusicLoopStreamsUntilStopped(t *testing.T) {
	loop := newMusicLoop(sampleRate)

	var buf [512][2]float64
	for i := 0; i < 100; i++ {
		n, ok := loop.Stream(buf[:])
		if !ok || n != len(buf) {
			t.Fatalf("chunk %d: n=%d ok=%v, want full chunk", i, n, ok)
		}
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %f out of range", buf[j][0])
			}
		}
	}

	loop.stopped = true
	if n, ok := loop.Stream(buf[:]); n != 0 || ok {
		t.Errorf("stopped loop returned n=%d ok=%v, want 0 false", n, ok)
	}
}
