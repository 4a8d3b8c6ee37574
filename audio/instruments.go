package audio

// Waveform selects the oscillator shape used by the synth voice when no
// SoundFont is available.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Saw
	Triangle
)

// Instrument is a named voice configuration: the General MIDI program for
// sampler and MIDI backends, and the oscillator shape the synth voice
// approximates it with.
type Instrument struct {
	Name     string
	Program  uint8 // GM program number
	Waveform Waveform
}

// Instruments contains all selectable voice presets.
var Instruments = map[string]Instrument{
	"piano":      {Name: "Acoustic Grand Piano", Program: 0, Waveform: Sine},
	"marimba":    {Name: "Marimba", Program: 12, Waveform: Triangle},
	"guitar":     {Name: "Nylon Guitar", Program: 24, Waveform: Triangle},
	"violin":     {Name: "Violin", Program: 40, Waveform: Saw},
	"flute":      {Name: "Flute", Program: 73, Waveform: Sine},
	"synth lead": {Name: "Square Lead", Program: 80, Waveform: Square},
	"organ":      {Name: "Drawbar Organ", Program: 16, Waveform: Square},
}

// InstrumentNames returns the preset keys in menu order.
func InstrumentNames() []string {
	return []string{"piano", "marimba", "guitar", "violin", "flute", "synth lead", "organ"}
}

// GetInstrument returns a preset by key, defaulting to piano if not found.
func GetInstrument(name string) Instrument {
	if inst, ok := Instruments[name]; ok {
		return inst
	}
	return Instruments[DefaultInstrument]
}

// DefaultInstrument is the default preset key.
const DefaultInstrument = "piano"
