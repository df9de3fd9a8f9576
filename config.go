package weld

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable form of the app and window settings.
//
//	title: Counter
//	width: 640
//	height: 480
//	background: "#1e1e1e"
//	frame_rate: 60
//	queue_size: 256
//	direction: rtl
//	debug_log: /tmp/weld.log
//
// Width and height size the native window only. Terminal windows take
// their size from the terminal, and Options never sets a viewport.
type Config struct {
	Title      string  `yaml:"title"`
	Width      float32 `yaml:"width"`
	Height     float32 `yaml:"height"`
	Background string  `yaml:"background"`
	FrameRate  int     `yaml:"frame_rate"`
	QueueSize  int     `yaml:"queue_size"`
	Direction  string  `yaml:"direction"`
	DebugLog   string  `yaml:"debug_log"`
}

// DefaultConfig returns the settings used when a file leaves a field out.
func DefaultConfig() Config {
	return Config{
		Title:      "weld",
		Width:      800,
		Height:     600,
		Background: "#ffffff",
		FrameRate:  60,
		QueueSize:  256,
		Direction:  "ltr",
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !finiteSize(c.Width) || !finiteSize(c.Height) {
		return fmt.Errorf("config: size %gx%g must be finite", c.Width, c.Height)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: size %gx%g must not be negative", c.Width, c.Height)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("config: frame_rate %d outside 1-240", c.FrameRate)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("config: queue_size must be at least 1")
	}
	if _, err := c.TextDirection(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func finiteSize(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// BackgroundColor parses Background.
func (c Config) BackgroundColor() (RGBA, error) {
	return HexColor(c.Background)
}

// TextDirection parses Direction ("ltr" or "rtl", case-insensitive).
func (c Config) TextDirection() (TextDirection, error) {
	switch strings.ToLower(c.Direction) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return LTR, fmt.Errorf("direction %q: expected ltr or rtl", c.Direction)
	}
}

// Viewport returns the configured native window size.
func (c Config) Viewport() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// Options converts the config into app options. Invalid fields surface
// as errors when the options are applied.
func (c Config) Options() []AppOption {
	opts := []AppOption{
		WithTitle(c.Title),
		WithQueueSize(c.QueueSize),
		WithFrameRate(c.FrameRate),
	}
	bg, err := c.BackgroundColor()
	if err != nil {
		opts = append(opts, failOption(fmt.Errorf("config: background: %w", err)))
	} else {
		opts = append(opts, WithBackground(bg))
	}
	dir, err := c.TextDirection()
	if err != nil {
		opts = append(opts, failOption(fmt.Errorf("config: %w", err)))
	} else {
		opts = append(opts, WithDirection(dir))
	}
	if c.DebugLog != "" {
		opts = append(opts, WithDebugLog(c.DebugLog))
	}
	return opts
}

func failOption(err error) AppOption {
	return func(*appConfig) error { return err }
}
