package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"sonastroke/debug"
	"sonastroke/scale"
)

// SampleRate is the engine's output sample rate.
const SampleRate = 44100

// Engine is the speaker-backed Output. It owns one active Voice and maps
// palette colors to notes through the scale table. Built with a fallback
// chain: the configured SoundFont sampler first, the oscillator synth when
// the font is missing or unreadable. Audio failures never reach the canvas.
type Engine struct {
	voice    Voice
	sounding bool
}

// NewEngine initializes the speaker and picks a voice. soundFontPath may
// be empty to go straight to the oscillator synth.
func NewEngine(soundFontPath string) (*Engine, error) {
	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}

	e := &Engine{voice: pickVoice(soundFontPath)}
	speaker.Play(e)
	return e, nil
}

// pickVoice runs the sampler-then-synth fallback chain.
func pickVoice(soundFontPath string) Voice {
	if soundFontPath != "" {
		sampler, err := NewSamplerVoice(soundFontPath, SampleRate)
		if err == nil {
			debug.Log("audio", "sampler voice: %s", soundFontPath)
			return sampler
		}
		debug.Log("audio", "sampler unavailable (%v), using synth voice", err)
	} else {
		debug.Log("audio", "no soundfont configured, using synth voice")
	}
	return NewSynthVoice(SampleRate)
}

// StartNote implements Output.
func (e *Engine) StartNote(colorIndex int) {
	note := scale.MIDINote(colorIndex)
	speaker.Lock()
	e.voice.NoteOn(note)
	e.sounding = true
	speaker.Unlock()
}

// StopNote implements Output.
func (e *Engine) StopNote() {
	speaker.Lock()
	if e.sounding {
		e.voice.NoteOff()
		e.sounding = false
	}
	speaker.Unlock()
}

// SetInstrument implements Output.
func (e *Engine) SetInstrument(name string) {
	inst := GetInstrument(name)
	speaker.Lock()
	e.voice.SetProgram(inst.Program)
	speaker.Unlock()
	debug.Log("audio", "instrument %s (program %d)", inst.Name, inst.Program)
}

// Close silences and shuts down the speaker.
func (e *Engine) Close() {
	e.StopNote()
	speaker.Close()
}

// Stream implements beep.Streamer by delegating to the active voice.
// Runs on the speaker goroutine under the speaker lock.
func (e *Engine) Stream(samples [][2]float64) (int, bool) {
	return e.voice.Stream(samples)
}

func (e *Engine) Err() error {
	return nil
}
