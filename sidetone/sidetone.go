// Package sidetone is an audio channel: a sine tone that sounds while the
// channel is active.
//
// Output goes to the default PortAudio device. The tone is shaped by a short
// linear ramp on every transition so that keying does not click.
package sidetone

import (
	"math"
	"sync/atomic"

	pa "github.com/gordonklaus/portaudio"

	"github.com/ezrec/keyer/channel"
)

const (
	DEFAULT_FREQUENCY   = 700   // Tone frequency, in Hz.
	DEFAULT_SAMPLE_RATE = 44100 // Output sample rate, in Hz.
	DEFAULT_AMPLITUDE   = 0.5   // Peak amplitude, 0 to 1.
	DEFAULT_RAMP        = 0.005 // Rise and fall time, in seconds.
)

// Tone generates the sidetone samples.
type Tone struct {
	Frequency  float64
	SampleRate float64
	Amplitude  float64
	Ramp       float64

	active atomic.Bool
	phase  float64 // Current phase, in radians.
	gain   float64 // Current envelope, 0 to 1.

	stream *pa.Stream
}

var _ channel.Channel = (*Tone)(nil)

func (tone *Tone) defaults() {
	if tone.Frequency == 0 {
		tone.Frequency = DEFAULT_FREQUENCY
	}
	if tone.SampleRate == 0 {
		tone.SampleRate = DEFAULT_SAMPLE_RATE
	}
	if tone.Amplitude == 0 {
		tone.Amplitude = DEFAULT_AMPLITUDE
	}
	if tone.Ramp == 0 {
		tone.Ramp = DEFAULT_RAMP
	}
}

// Open starts a mono output stream on the default device.
func Open(frequency float64) (tone *Tone, err error) {
	err = pa.Initialize()
	if err != nil {
		return
	}

	t := &Tone{Frequency: frequency}
	t.defaults()

	stream, err := pa.OpenDefaultStream(0, 1, t.SampleRate, 0, t.Process)
	if err != nil {
		pa.Terminate()
		return
	}

	err = stream.Start()
	if err != nil {
		stream.Close()
		pa.Terminate()
		return
	}

	t.stream = stream
	tone = t
	return
}

// Close stops the stream and releases PortAudio.
func (tone *Tone) Close() (err error) {
	if tone.stream == nil {
		return
	}

	err = tone.stream.Stop()
	if cerr := tone.stream.Close(); err == nil {
		err = cerr
	}
	if terr := pa.Terminate(); err == nil {
		err = terr
	}
	tone.stream = nil

	return
}

func (tone *Tone) Activate() {
	tone.active.Store(true)
}

func (tone *Tone) Deactivate() {
	tone.active.Store(false)
}

// Active reports the keyed state.
func (tone *Tone) Active() bool {
	return tone.active.Load()
}

// Process fills out with the next samples. It is the stream callback.
func (tone *Tone) Process(out []float32) {
	tone.defaults()

	step := 2 * math.Pi * tone.Frequency / tone.SampleRate
	slew := 1.0 / (tone.Ramp * tone.SampleRate)

	target := 0.0
	if tone.active.Load() {
		target = 1.0
	}

	for n := range out {
		switch {
		case tone.gain < target:
			tone.gain = math.Min(target, tone.gain+slew)
		case tone.gain > target:
			tone.gain = math.Max(target, tone.gain-slew)
		}

		if tone.gain == 0 {
			out[n] = 0
			tone.phase = 0
			continue
		}

		out[n] = float32(tone.Amplitude * tone.gain * math.Sin(tone.phase))
		tone.phase += step
		if tone.phase >= 2*math.Pi {
			tone.phase -= 2 * math.Pi
		}
	}
}
