package audio

// Output is the sound collaborator driven by the canvas: one note per
// palette color, one note sounding at a time. Implementations never report
// failure to the caller - a note that can't sound is dropped, drawing and
// playback proceed regardless.
type Output interface {
	// StartNote begins sounding the note mapped to colorIndex.
	StartNote(colorIndex int)

	// StopNote silences whatever is currently sounding. Idempotent.
	StopNote()

	// SetInstrument switches the voice used by subsequent StartNote calls.
	// Unknown names fall back to the default instrument.
	SetInstrument(name string)
}

// Null is an Output that produces no sound.
type Null struct{}

func (Null) StartNote(int)        {}
func (Null) StopNote()            {}
func (Null) SetInstrument(string) {}
