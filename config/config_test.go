package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Audio.Backend != BackendAuto {
		t.Fatalf("backend = %q, want auto", cfg.Audio.Backend)
	}
	if cfg.Audio.Instrument != "piano" {
		t.Fatalf("instrument = %q, want piano", cfg.Audio.Instrument)
	}
	if cfg.Playback.Speed != 1.0 {
		t.Fatalf("speed = %v, want 1.0", cfg.Playback.Speed)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Audio.Backend = BackendMIDI
	cfg.Audio.MIDIPort = "FluidSynth"
	cfg.Playback.Speed = 2.0
	cfg.UI.PaletteFile = "/tmp/warm.gpl"
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Audio.Backend != BackendMIDI {
		t.Fatalf("backend = %q, want midi", loaded.Audio.Backend)
	}
	if loaded.Audio.MIDIPort != "FluidSynth" {
		t.Fatalf("midi port = %q", loaded.Audio.MIDIPort)
	}
	if loaded.Playback.Speed != 2.0 {
		t.Fatalf("speed = %v, want 2.0", loaded.Playback.Speed)
	}
	if loaded.UI.PaletteFile != "/tmp/warm.gpl" {
		t.Fatalf("palette file = %q", loaded.UI.PaletteFile)
	}
}

func TestLoadBackfillsZeroValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "sonastroke")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	raw := []byte(`{"audio": {"soundFont": "/tmp/x.sf2"}, "playback": {"speed": 0}}`)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), raw, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Audio.Backend != BackendAuto {
		t.Fatalf("backend = %q, want backfilled auto", cfg.Audio.Backend)
	}
	if cfg.Playback.Speed != 1.0 {
		t.Fatalf("speed = %v, want backfilled 1.0", cfg.Playback.Speed)
	}
	if cfg.Audio.SoundFont != "/tmp/x.sf2" {
		t.Fatalf("soundFont = %q", cfg.Audio.SoundFont)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "sonastroke")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for malformed config")
	}
}
