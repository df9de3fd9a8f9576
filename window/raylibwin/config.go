package raylibwin

import "errors"

// Config configures the native window.
type Config struct {
	Title     string
	Width     int
	Height    int
	FPS       int
	FontSize  int
	Resizable bool
}

// DefaultConfig returns an 800x600 resizable window at 60 FPS.
func DefaultConfig() Config {
	return Config{
		Title:     "weld",
		Width:     800,
		Height:    600,
		FPS:       60,
		FontSize:  18,
		Resizable: true,
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("raylibwin: window size must be positive")
	}
	if c.FPS <= 0 {
		return errors.New("raylibwin: fps must be positive")
	}
	if c.FontSize <= 0 {
		return errors.New("raylibwin: font size must be positive")
	}
	return nil
}
