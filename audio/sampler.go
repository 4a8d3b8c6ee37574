package audio

import (
	"fmt"
	"os"

	"github.com/sinshu/go-meltysynth/meltysynth"
)

// programChange is the MIDI command the synthesizer interprets as a
// program (instrument) switch on a channel.
const programChange = 0xC0

// SamplerVoice renders notes through a SoundFont synthesizer. Everything
// plays on channel 0; the canvas sounds one note at a time, so the voice
// tracks the last note for the global note-off.
type SamplerVoice struct {
	synth *meltysynth.Synthesizer

	lastNote int32
	sounding bool

	// Render scratch buffers, grown to the speaker's chunk size.
	left  []float32
	right []float32
}

// NewSamplerVoice loads a SoundFont file and builds a synthesizer for it.
func NewSamplerVoice(soundFontPath string, sampleRate int) (*SamplerVoice, error) {
	f, err := os.Open(soundFontPath)
	if err != nil {
		return nil, fmt.Errorf("open soundfont: %w", err)
	}
	defer f.Close()

	soundFont, err := meltysynth.NewSoundFont(f)
	if err != nil {
		return nil, fmt.Errorf("parse soundfont %s: %w", soundFontPath, err)
	}

	settings := meltysynth.NewSynthesizerSettings(int32(sampleRate))
	synth, err := meltysynth.NewSynthesizer(soundFont, settings)
	if err != nil {
		return nil, fmt.Errorf("create synthesizer: %w", err)
	}

	return &SamplerVoice{synth: synth}, nil
}

func (v *SamplerVoice) NoteOn(note uint8) {
	if v.sounding {
		v.synth.NoteOff(0, v.lastNote)
	}
	v.lastNote = int32(note)
	v.sounding = true
	v.synth.NoteOn(0, v.lastNote, 100)
}

func (v *SamplerVoice) NoteOff() {
	if !v.sounding {
		return
	}
	v.synth.NoteOff(0, v.lastNote)
	v.sounding = false
}

func (v *SamplerVoice) SetProgram(program uint8) {
	v.synth.ProcessMidiMessage(0, programChange, int32(program), 0)
}

// Stream implements beep.Streamer by rendering the synthesizer into the
// sample buffer. The synthesizer emits silence when nothing sounds, so
// the stream never ends.
func (v *SamplerVoice) Stream(samples [][2]float64) (int, bool) {
	n := len(samples)
	if len(v.left) < n {
		v.left = make([]float32, n)
		v.right = make([]float32, n)
	}

	v.synth.Render(v.left[:n], v.right[:n])
	for i := 0; i < n; i++ {
		samples[i][0] = float64(v.left[i])
		samples[i][1] = float64(v.right[i])
	}
	return n, true
}

func (v *SamplerVoice) Err() error {
	return nil
}
