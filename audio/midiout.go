package audio

import (
	"strings"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"sonastroke/debug"
	"sonastroke/scale"
)

// MIDIOut is an Output that drives an external synthesizer over a MIDI
// port instead of the built-in engine. The port is opened lazily on first
// use; a port that can't be opened just drops notes, it never fails the
// canvas.
type MIDIOut struct {
	portName string
	channel  uint8

	mu       sync.Mutex
	sender   func(gomidi.Message) error
	lastNote uint8
	sounding bool
}

// NewMIDIOut creates an output for the named port on MIDI channel 1.
// An empty name matches the first available output port.
func NewMIDIOut(portName string) *MIDIOut {
	return &MIDIOut{portName: portName}
}

// StartNote implements Output.
func (o *MIDIOut) StartNote(colorIndex int) {
	note := scale.MIDINote(colorIndex)

	o.mu.Lock()
	defer o.mu.Unlock()

	sender := o.senderLocked()
	if sender == nil {
		return
	}
	if o.sounding {
		sender(gomidi.NoteOff(o.channel, o.lastNote))
	}
	o.lastNote = note
	o.sounding = true
	sender(gomidi.NoteOn(o.channel, note, 100))
}

// StopNote implements Output.
func (o *MIDIOut) StopNote() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.sounding {
		return
	}
	o.sounding = false
	if sender := o.senderLocked(); sender != nil {
		sender(gomidi.NoteOff(o.channel, o.lastNote))
	}
}

// SetInstrument implements Output by sending a program change.
func (o *MIDIOut) SetInstrument(name string) {
	inst := GetInstrument(name)

	o.mu.Lock()
	defer o.mu.Unlock()

	if sender := o.senderLocked(); sender != nil {
		sender(gomidi.ProgramChange(o.channel, inst.Program))
	}
}

// Close releases the sounding note and the port.
func (o *MIDIOut) Close() {
	o.StopNote()
	gomidi.CloseDriver()
}

// senderLocked lazily opens the configured port.
func (o *MIDIOut) senderLocked() func(gomidi.Message) error {
	if o.sender != nil {
		return o.sender
	}

	for _, port := range gomidi.GetOutPorts() {
		if o.portName == "" || strings.Contains(strings.ToLower(port.String()), strings.ToLower(o.portName)) {
			sender, err := gomidi.SendTo(port)
			if err != nil {
				debug.Log("midi", "open %s: %v", port.String(), err)
				continue
			}
			debug.Log("midi", "sending to %s", port.String())
			o.sender = sender
			return sender
		}
	}

	debug.LogEvery(50, "midi", "no output port matching %q", o.portName)
	return nil
}

// ListPorts returns the names of available MIDI output ports.
func ListPorts() []string {
	var names []string
	for _, port := range gomidi.GetOutPorts() {
		names = append(names, port.String())
	}
	return names
}
