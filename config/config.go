package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Backend selects how notes are sounded.
type Backend string

const (
	// BackendAuto tries the SoundFont sampler, falling back to the
	// oscillator synth.
	BackendAuto Backend = "auto"
	// BackendSynth always uses the oscillator synth.
	BackendSynth Backend = "synth"
	// BackendMIDI sends notes to an external MIDI port.
	BackendMIDI Backend = "midi"
)

// AudioConfig selects the sound backend.
type AudioConfig struct {
	Backend    Backend `json:"backend,omitempty"`
	SoundFont  string  `json:"soundFont,omitempty"` // path to an .sf2 file
	MIDIPort   string  `json:"midiPort,omitempty"`  // substring match
	Instrument string  `json:"instrument,omitempty"`
}

// PlaybackConfig tunes replay pacing.
type PlaybackConfig struct {
	Speed float64 `json:"speed,omitempty"`
}

// UIConfig stores display preferences.
type UIConfig struct {
	PaletteFile string `json:"paletteFile,omitempty"` // GPL theme palette
}

// Config is the main configuration structure.
type Config struct {
	Audio    AudioConfig    `json:"audio,omitempty"`
	Playback PlaybackConfig `json:"playback,omitempty"`
	UI       UIConfig       `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			Backend:    BackendAuto,
			Instrument: "piano",
		},
		Playback: PlaybackConfig{
			Speed: 1.0,
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sonastroke"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Audio.Backend == "" {
		cfg.Audio.Backend = BackendAuto
	}
	if cfg.Playback.Speed <= 0 {
		cfg.Playback.Speed = 1.0
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
