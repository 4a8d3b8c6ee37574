// soundtest plays each palette note through the configured audio backend,
// for checking the soundfont / MIDI setup without starting the TUI.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sonastroke/audio"
	"sonastroke/scale"
)

func main() {
	soundFont := flag.String("sf2", "", "path to a SoundFont file (empty = oscillator synth)")
	midiPort := flag.String("midi", "", "send to a MIDI port instead of the built-in engine")
	instrument := flag.String("instrument", audio.DefaultInstrument, "instrument preset")
	flag.Parse()

	var out audio.Output
	if *midiPort != "" {
		fmt.Println("Available MIDI ports:")
		for _, name := range audio.ListPorts() {
			fmt.Printf("  %s\n", name)
		}
		m := audio.NewMIDIOut(*midiPort)
		defer m.Close()
		out = m
	} else {
		engine, err := audio.NewEngine(*soundFont)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer engine.Close()
		out = engine
	}

	out.SetInstrument(*instrument)
	fmt.Printf("Playing the %d palette notes with %q\n", scale.Size, *instrument)

	for i := 0; i < scale.Size; i++ {
		entry := scale.Get(i)
		fmt.Printf("  %-7s %s (%d, %.2f Hz)\n", entry.Color, entry.Note, entry.MIDI, entry.Freq)
		out.StartNote(i)
		time.Sleep(300 * time.Millisecond)
		out.StopNote()
		time.Sleep(200 * time.Millisecond)
	}
}
