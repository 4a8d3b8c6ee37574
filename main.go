package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sonastroke/audio"
	"sonastroke/canvas"
	"sonastroke/config"
	"sonastroke/debug"
	"sonastroke/theme"
	"sonastroke/tui"
)

func main() {
	if os.Getenv("SONASTROKE_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Theme
	palette := theme.DefaultPalette()
	if cfg.UI.PaletteFile != "" {
		if p, err := theme.LoadGPL(cfg.UI.PaletteFile); err == nil {
			palette = p
		} else {
			debug.Log("theme", "palette %s: %v", cfg.UI.PaletteFile, err)
		}
	}
	th := theme.New(palette)

	// Audio backend
	out, closeAudio, err := buildOutput(cfg)
	if err != nil {
		fmt.Printf("Error starting audio: %v\n", err)
		os.Exit(1)
	}
	defer closeAudio()
	out.SetInstrument(cfg.Audio.Instrument)

	// Canvas controller
	mgr := canvas.NewManager(out, canvas.TimerClock{})
	mgr.SetSpeed(cfg.Playback.Speed)

	// TUI
	m := tui.NewModel(mgr, out, th, cfg.Audio.Instrument)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// buildOutput picks the configured sound backend.
func buildOutput(cfg *config.Config) (audio.Output, func(), error) {
	switch cfg.Audio.Backend {
	case config.BackendMIDI:
		out := audio.NewMIDIOut(cfg.Audio.MIDIPort)
		return out, out.Close, nil

	case config.BackendSynth:
		engine, err := audio.NewEngine("")
		if err != nil {
			return nil, nil, err
		}
		return engine, engine.Close, nil

	default:
		engine, err := audio.NewEngine(cfg.Audio.SoundFont)
		if err != nil {
			return nil, nil, err
		}
		return engine, engine.Close, nil
	}
}
