package scale

// Entry maps one palette color to its note and default instrument.
type Entry struct {
	Color      string  // display name
	Hex        string  // display hex, e.g. "#e74c3c"
	Note       string  // note name, e.g. "C4"
	MIDI       uint8   // MIDI note number
	Freq       float64 // equal temperament frequency in Hz
	Instrument string  // default instrument preset name
}

// Size is the number of palette entries. The canvas, the audio output and
// the TUI all index into the same 7-entry table.
const Size = 7

// Entries is the fixed color/note table: a C major scale from C4 to B4,
// one color per degree. Theme changes restyle the display only - the
// note and instrument mapping never changes at runtime.
var Entries = [Size]Entry{
	{Color: "red", Hex: "#e74c3c", Note: "C4", MIDI: 60, Freq: 261.63, Instrument: "piano"},
	{Color: "orange", Hex: "#e67e22", Note: "D4", MIDI: 62, Freq: 293.66, Instrument: "piano"},
	{Color: "yellow", Hex: "#f1c40f", Note: "E4", MIDI: 64, Freq: 329.63, Instrument: "marimba"},
	{Color: "green", Hex: "#2ecc71", Note: "F4", MIDI: 65, Freq: 349.23, Instrument: "flute"},
	{Color: "blue", Hex: "#3498db", Note: "G4", MIDI: 67, Freq: 392.00, Instrument: "guitar"},
	{Color: "indigo", Hex: "#34495e", Note: "A4", MIDI: 69, Freq: 440.00, Instrument: "violin"},
	{Color: "violet", Hex: "#9b59b6", Note: "B4", MIDI: 71, Freq: 493.88, Instrument: "synth lead"},
}

// Get returns the entry for a color index, clamping out-of-range values
// to the nearest end of the table.
func Get(colorIndex int) Entry {
	if colorIndex < 0 {
		return Entries[0]
	}
	if colorIndex >= Size {
		return Entries[Size-1]
	}
	return Entries[colorIndex]
}

// MIDINote returns the MIDI note number for a color index.
func MIDINote(colorIndex int) uint8 {
	return Get(colorIndex).MIDI
}

// Freq returns the frequency in Hz for a color index.
func Freq(colorIndex int) float64 {
	return Get(colorIndex).Freq
}
