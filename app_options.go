package weld

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*appConfig) error

type appConfig struct {
	title      string
	viewport   Size
	background RGBA
	queueSize  int
	onError    func(error)
	debugLog   string
	direction  TextDirection
	watchers   []Watcher
	frameRate  int
}

func defaultAppConfig() appConfig {
	return appConfig{
		title:      "weld",
		background: White,
		queueSize:  256,
		frameRate:  60,
	}
}

// WithTitle sets the window title. Windows that implement TitleSetter show it.
func WithTitle(title string) AppOption {
	return func(c *appConfig) error {
		c.title = title
		return nil
	}
}

// WithViewport lays the tree out for size instead of the window's reported size.
func WithViewport(size Size) AppOption {
	return func(c *appConfig) error {
		if size.Width < 0 || size.Height < 0 {
			return fmt.Errorf("viewport %gx%g must not be negative", size.Width, size.Height)
		}
		c.viewport = size
		return nil
	}
}

// WithBackground sets the colour each frame is cleared to. Default is white.
func WithBackground(color RGBA) AppOption {
	return func(c *appConfig) error {
		c.background = color
		return nil
	}
}

// WithQueueSize sets the capacity of the message queue fed by Send and
// watchers. Default is 256. Must be at least 1.
func WithQueueSize(size int) AppOption {
	return func(c *appConfig) error {
		if size < 1 {
			return fmt.Errorf("queue size must be at least 1")
		}
		c.queueSize = size
		return nil
	}
}

// WithErrorHandler receives routing and handler errors. They are dropped
// after logging otherwise.
func WithErrorHandler(fn func(error)) AppOption {
	return func(c *appConfig) error {
		c.onError = fn
		return nil
	}
}

// WithDebugLog writes debug logging to path.
func WithDebugLog(path string) AppOption {
	return func(c *appConfig) error {
		c.debugLog = path
		return nil
	}
}

// WithDirection sets the text direction. RTL mirrors rows.
func WithDirection(dir TextDirection) AppOption {
	return func(c *appConfig) error {
		if dir != LTR && dir != RTL {
			return fmt.Errorf("unknown text direction %d", dir)
		}
		c.direction = dir
		return nil
	}
}

// WithWatchers starts the watchers when Run begins. Nil watchers and
// timers with a non-positive interval are rejected.
func WithWatchers(watchers ...Watcher) AppOption {
	return func(c *appConfig) error {
		for i, w := range watchers {
			if w == nil {
				return fmt.Errorf("watcher %d is nil", i)
			}
			if v, ok := w.(watcherValidator); ok {
				if err := v.validate(); err != nil {
					return fmt.Errorf("watcher %d: %w", i, err)
				}
			}
		}
		c.watchers = append(c.watchers, watchers...)
		return nil
	}
}

// WithFrameRate records the target frame rate for back-ends that pace
// their loop. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(c *appConfig) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		c.frameRate = fps
		return nil
	}
}

// FrameDuration converts a frame rate to the time budget of one frame.
func FrameDuration(fps int) time.Duration {
	if fps < 1 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// WithConfig applies every setting of a loaded Config.
func WithConfig(cfg Config) AppOption {
	return func(c *appConfig) error {
		for _, opt := range cfg.Options() {
			if err := opt(c); err != nil {
				return err
			}
		}
		return nil
	}
}
