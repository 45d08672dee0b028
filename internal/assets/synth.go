package assets

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/jadedm/feed-the-cow/internal/scene"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator is a finite tone. sweep is the frequency change per second.
type oscillator struct {
	freq  float64
	sweep float64
	phase float64
	pos   int
	total int
	wave  wave
	rate  beep.SampleRate
	rng   *rand.Rand
}

func newOscillator(w wave, freq float64, d time.Duration, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:  freq,
		total: rate.N(d),
		wave:  w,
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.pos)/float64(o.rate)
		o.phase += math.Max(freq, 0) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a finite streamer in and out linearly.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Max(float64(left)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales a streamer by a linear factor.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(w wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(w, freq, d, rate), d, 5*time.Millisecond, d/3, rate)
}

func rest(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return beep.Silence(rate.N(d))
}

// Pitches in Hz.
const (
	noteC3 = 130.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteF3 = 174.61
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteE6 = 1318.51
)

// musicClip is a short farmyard jig: a square-wave melody over a sine bass,
// one bar per chord. It is written to loop seamlessly.
func musicClip(rate beep.SampleRate) beep.Streamer {
	const beat = 200 * time.Millisecond

	melody := []float64{
		noteE5, noteG5, noteA5, noteG5, noteE5, noteD5, noteC5, noteD5,
		noteE5, noteE5, noteD5, noteE5, noteG5, noteE5, noteD5, 0,
	}
	bass := []float64{noteC3, noteA3, noteF3, noteG3}

	var lead []beep.Streamer
	for _, f := range melody {
		if f == 0 {
			lead = append(lead, rest(beat, rate))
			continue
		}
		lead = append(lead, note(waveSquare, f, beat, rate))
	}

	var low []beep.Streamer
	for _, f := range bass {
		low = append(low, note(waveSine, f, 4*beat, rate))
	}

	return beep.Mix(
		gain(beep.Seq(lead...), 0.25),
		gain(beep.Seq(low...), 0.5),
	)
}

// hurtClip is a falling buzz with a burst of noise.
func hurtClip(rate beep.SampleRate) beep.Streamer {
	const d = 400 * time.Millisecond

	buzz := newOscillator(waveSaw, 320, d, rate)
	buzz.sweep = -600
	noise := newOscillator(waveNoise, 0, d/2, rate)

	return beep.Mix(
		gain(newEnvelope(buzz, d, 2*time.Millisecond, d/2, rate), 0.5),
		gain(newEnvelope(noise, d/2, time.Millisecond, d/3, rate), 0.2),
	)
}

// selectClip is a two-note rising chime.
func selectClip(rate beep.SampleRate) beep.Streamer {
	return gain(beep.Seq(
		note(waveSquare, noteA5, 70*time.Millisecond, rate),
		note(waveSquare, noteE6, 150*time.Millisecond, rate),
	), 0.3)
}

// recipes synthesise the built-in clips.
var recipes = map[string]func(beep.SampleRate) beep.Streamer{
	scene.AudioMusic:  musicClip,
	scene.AudioHurt:   hurtClip,
	scene.AudioSelect: selectClip,
}
