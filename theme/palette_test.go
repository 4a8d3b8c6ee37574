package theme

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleGPL = `GIMP Palette
Name: duotone
Columns: 2
#
  0   0   0 ink
255 255 255 paper
`

func writeGPL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gpl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGPL(t *testing.T) {
	p, err := LoadGPL(writeGPL(t, sampleGPL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "duotone" {
		t.Fatalf("name = %q, want duotone", p.Name)
	}
	if len(p.Colors) != 2 {
		t.Fatalf("colors = %d, want 2", len(p.Colors))
	}
	if p.Colors[0] != (RGB{0, 0, 0}) || p.Colors[1] != (RGB{255, 255, 255}) {
		t.Fatalf("colors = %v", p.Colors)
	}
}

func TestLoadGPLRejectsEmptyPalette(t *testing.T) {
	if _, err := LoadGPL(writeGPL(t, "GIMP Palette\nName: empty\n#\n")); err == nil {
		t.Fatal("expected an error for a palette with no colors")
	}
}

func TestLoadGPLMissingFile(t *testing.T) {
	if _, err := LoadGPL(filepath.Join(t.TempDir(), "nope.gpl")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLookupEndsAreExact(t *testing.T) {
	p := DefaultPalette()
	if got := p.Lookup(0); got != p.Colors[0] {
		t.Fatalf("Lookup(0) = %v, want %v", got, p.Colors[0])
	}
	if got := p.Lookup(1); got != p.Colors[len(p.Colors)-1] {
		t.Fatalf("Lookup(1) = %v, want %v", got, p.Colors[len(p.Colors)-1])
	}
	if got := p.Lookup(-2); got != p.Colors[0] {
		t.Fatalf("Lookup(-2) = %v, want clamp to first", got)
	}
}

func TestLookupBlendsBetweenStops(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {255, 255, 255}}}
	mid := p.Lookup(0.5)
	if mid == p.Colors[0] || mid == p.Colors[1] {
		t.Fatalf("Lookup(0.5) = %v, want a blend between the stops", mid)
	}
	// A black/white blend stays neutral.
	if mid[0] != mid[1] || mid[1] != mid[2] {
		t.Fatalf("Lookup(0.5) = %v, want a gray", mid)
	}
}

func TestIndexClamps(t *testing.T) {
	p := DefaultPalette()
	if got := p.Index(-1); got != p.Colors[0] {
		t.Fatalf("Index(-1) = %v, want first", got)
	}
	if got := p.Index(100); got != p.Colors[len(p.Colors)-1] {
		t.Fatalf("Index(100) = %v, want last", got)
	}
	if got := p.Index(2); got != p.Colors[2] {
		t.Fatalf("Index(2) = %v, want %v", got, p.Colors[2])
	}
}
