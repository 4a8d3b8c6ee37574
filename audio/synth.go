package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Voice generates sound for note events. A Voice is also a beep.Streamer;
// the engine streams whichever voice is active to the speaker.
type Voice interface {
	beep.Streamer

	// NoteOn begins sounding a MIDI note, replacing any sounding note.
	NoteOn(note uint8)
	// NoteOff releases the sounding note. Idempotent.
	NoteOff()
	// SetProgram switches the GM program used by subsequent NoteOn calls.
	SetProgram(program uint8)
}

// envelopeMs is the linear attack/release ramp length. Long enough to
// avoid clicks, short enough to feel immediate under a finger.
const envelopeMs = 20

// SynthVoice is the oscillator fallback voice: a single phase-accumulator
// oscillator gated by a linear envelope. Monophonic - the canvas sounds
// one note at a time.
type SynthVoice struct {
	sampleRate float64
	wave       Waveform

	freq  float64
	phase float64
	gate  bool

	gain    float64 // current envelope level 0..maxGain
	maxGain float64
	step    float64 // envelope change per sample
}

// NewSynthVoice creates a silent oscillator voice.
func NewSynthVoice(sampleRate int) *SynthVoice {
	sr := float64(sampleRate)
	return &SynthVoice{
		sampleRate: sr,
		wave:       Sine,
		maxGain:    0.3,
		step:       0.3 / (sr * envelopeMs / 1000),
	}
}

func (v *SynthVoice) NoteOn(note uint8) {
	v.freq = midiToFreq(note)
	v.gate = true
}

func (v *SynthVoice) NoteOff() {
	v.gate = false
}

// SetProgram maps GM program families onto oscillator shapes.
func (v *SynthVoice) SetProgram(program uint8) {
	switch {
	case program >= 80 && program < 88: // synth leads
		v.wave = Square
	case program >= 40 && program < 56: // strings, ensemble
		v.wave = Saw
	case program >= 24 && program < 32: // guitars
		v.wave = Triangle
	case program >= 16 && program < 24: // organs
		v.wave = Square
	default:
		v.wave = Sine
	}
}

// Stream implements beep.Streamer.
func (v *SynthVoice) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if v.gate {
			v.gain += v.step
			if v.gain > v.maxGain {
				v.gain = v.maxGain
			}
		} else {
			v.gain -= v.step
			if v.gain < 0 {
				v.gain = 0
			}
		}

		value := oscSample(v.wave, v.phase) * v.gain
		samples[i][0] = value
		samples[i][1] = value

		_, v.phase = math.Modf(v.phase + v.freq/v.sampleRate)
	}
	return len(samples), true
}

func (v *SynthVoice) Err() error {
	return nil
}

func oscSample(wave Waveform, phase float64) float64 {
	switch wave {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2*phase - 1
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// midiToFreq converts a MIDI note number to Hz (A4 = 69 = 440Hz).
func midiToFreq(note uint8) float64 {
	return 440 * math.Pow(2, (float64(note)-69)/12)
}
