package audio

import "testing"

func TestInstrumentNamesCoverAllPresets(t *testing.T) {
	names := InstrumentNames()
	if len(names) != len(Instruments) {
		t.Fatalf("menu lists %d presets, table has %d", len(names), len(Instruments))
	}
	for _, name := range names {
		if _, ok := Instruments[name]; !ok {
			t.Fatalf("menu name %q missing from preset table", name)
		}
	}
}

func TestGetInstrumentFallsBackToDefault(t *testing.T) {
	got := GetInstrument("theremin")
	if got != Instruments[DefaultInstrument] {
		t.Fatalf("unknown preset resolved to %+v, want %q", got, DefaultInstrument)
	}

	if got := GetInstrument("violin"); got.Program != 40 {
		t.Fatalf("violin program = %d, want 40", got.Program)
	}
}
