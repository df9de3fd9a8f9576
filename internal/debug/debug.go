package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging.
const EnvVar = "WELD_DEBUG"

var (
	out      io.WriteCloser
	mu       sync.Mutex
	envOnce  sync.Once
	disabled bool
)

// Init opens path for appending and directs subsequent Log calls to it.
// Any previously opened log is closed first.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if out != nil {
		out.Close()
	}
	out = f
	disabled = false
	return nil
}

// SetOutput directs log lines to w. Passing nil disables logging.
func SetOutput(w io.WriteCloser) {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	out = w
	disabled = w == nil
}

// Close closes the debug log.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		err := out.Close()
		out = nil
		return err
	}
	return nil
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadEnvLocked()
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadEnvLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	if f, ok := out.(*os.File); ok {
		f.Sync()
	}
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

func loadEnvLocked() {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" && !disabled {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "weld: %v\n", err)
			}
		}
	})
}
