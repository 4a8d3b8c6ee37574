package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	enabled bool
)

// Enable starts debug logging to ~/.config/sonastroke/debug.log. The TUI
// owns the terminal, so diagnostics go to a file instead of stderr.
func Enable() error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".config", "sonastroke")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	logFile = f
	enabled = true

	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %-8s %s\n", ts, "debug", "=== logging started ===")
	logFile.Sync()
	return nil
}

// Disable stops debug logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	enabled = false
}

// Log writes a category-tagged line to the debug log. No-op when logging
// is not enabled.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}

	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %-8s %s\n", ts, category, fmt.Sprintf(format, args...))
	logFile.Sync() // flush immediately so the log survives a crash
}

var counters = make(map[string]int)

// LogEvery logs only every nth call with the same category+format, for
// high-frequency events like pointer motion.
func LogEvery(n int, category, format string, args ...any) {
	mu.Lock()
	key := category + format
	counters[key]++
	count := counters[key]
	mu.Unlock()

	if count%n == 0 {
		Log(category, format+" (count=%d)", append(args, count)...)
	}
}
