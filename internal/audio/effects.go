package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect.
// math.Log2(0) is -Inf, so zero volume is handled with the Silent flag.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Effect timing
const (
	clickDuration   = 40 * time.Millisecond
	pickupDuration  = 120 * time.Millisecond
	specialNoteTime = 90 * time.Millisecond
	caughtDuration  = 250 * time.Millisecond
	overNoteTime    = 180 * time.Millisecond
	shortAttack     = 5 * time.Millisecond
	shortRelease    = 30 * time.Millisecond
)

// newClickSound is a soft blip for menu navigation and pausing.
func newClickSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(660.0, clickDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, clickDuration, shortAttack, shortRelease, rate)
	return newVolume(shaped, vol)
}

// newPickupSound is a bell ding for a regular fruit: a fundamental with a
// quieter octave overtone.
func newPickupSound(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := NewOscillator(880.0, pickupDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, pickupDuration, shortAttack, 90*time.Millisecond, rate)

	over := NewOscillator(1760.0, pickupDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, pickupDuration, shortAttack, 60*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, vol)
}

// newSpecialSound is a rising two-note chime for a special fruit.
func newSpecialSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(987.77, specialNoteTime, WaveSquare, rate)  // B5
	n2 := NewOscillator(1318.51, specialNoteTime, WaveSquare, rate) // E6

	seq := beep.Seq(
		NewEnvelope(n1, specialNoteTime, shortAttack, 50*time.Millisecond, rate),
		NewEnvelope(n2, specialNoteTime, shortAttack, 70*time.Millisecond, rate),
	)
	return newVolume(seq, vol)
}

// newCaughtSound is a harsh low buzz for getting caught.
func newCaughtSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110.0, caughtDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, caughtDuration, shortAttack, 120*time.Millisecond, rate)
	return newVolume(shaped, vol)
}

// newGameOverSound is a falling three-note phrase.
func newGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	freqs := []float64{523.25, 392.0, 261.63} // C5, G4, C4
	var notes []beep.Streamer
	for _, f := range freqs {
		osc := NewOscillator(f, overNoteTime, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, overNoteTime, shortAttack, 100*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), vol)
}
