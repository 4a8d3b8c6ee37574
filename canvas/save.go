package canvas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// sketchFile is the on-disk shape of a saved sketch.
type sketchFile struct {
	Name    string    `json:"name,omitempty"`
	SavedAt time.Time `json:"savedAt"`
	Strokes []Stroke  `json:"strokes"`
}

// SketchInfo describes one saved sketch for listing.
type SketchInfo struct {
	Filename string
	Name     string // empty if unnamed
	SavedAt  time.Time
}

// SketchesDir returns the sketch directory path.
func SketchesDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sonastroke", "sketches"), nil
}

// SaveSketch writes the strokes as a timestamped JSON sketch and returns
// the filename.
func SaveSketch(name string, strokes []Stroke) (string, error) {
	dir, err := SketchesDir()
	if err != nil {
		return "", err
	}
	return SaveSketchTo(dir, name, strokes)
}

// SaveSketchTo is SaveSketch into an explicit directory.
func SaveSketchTo(dir, name string, strokes []Stroke) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	now := time.Now()
	filename := now.Format("20060102-150405")
	if name != "" {
		filename += "-" + sanitizeName(name)
	}
	filename += ".json"

	data, err := json.MarshalIndent(sketchFile{
		Name:    name,
		SavedAt: now,
		Strokes: strokes,
	}, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// ListSketches returns saved sketches, newest first. A missing directory
// is an empty list, not an error.
func ListSketches() ([]SketchInfo, error) {
	dir, err := SketchesDir()
	if err != nil {
		return nil, err
	}
	return ListSketchesIn(dir)
}

// ListSketchesIn is ListSketches over an explicit directory.
func ListSketchesIn(dir string) ([]SketchInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SketchInfo{}, nil
		}
		return nil, err
	}

	var infos []SketchInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		infos = append(infos, parseSketchFilename(entry.Name()))
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SavedAt.After(infos[j].SavedAt)
	})
	return infos, nil
}

// LoadSketch reads a saved sketch by filename.
func LoadSketch(filename string) ([]Stroke, error) {
	dir, err := SketchesDir()
	if err != nil {
		return nil, err
	}
	return LoadSketchFrom(dir, filename)
}

// LoadSketchFrom is LoadSketch from an explicit directory.
func LoadSketchFrom(dir, filename string) ([]Stroke, error) {
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return nil, err
	}

	var sf sketchFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse sketch %s: %w", filename, err)
	}
	return sf.Strokes, nil
}

// parseSketchFilename recovers timestamp and name from
// "20060102-150405[-name].json".
func parseSketchFilename(filename string) SketchInfo {
	info := SketchInfo{Filename: filename}
	base := strings.TrimSuffix(filename, ".json")

	parts := strings.SplitN(base, "-", 3)
	if len(parts) >= 2 {
		if ts, err := time.ParseInLocation("20060102-150405", parts[0]+"-"+parts[1], time.Local); err == nil {
			info.SavedAt = ts
		}
	}
	if len(parts) == 3 {
		info.Name = parts[2]
	}
	return info
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}
