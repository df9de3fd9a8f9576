package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grindlemire/go-weld"
	"github.com/grindlemire/go-weld/examples/button"
	"github.com/grindlemire/go-weld/examples/todo"
	"github.com/grindlemire/go-weld/widgets"
	"github.com/grindlemire/go-weld/window/raylibwin"
	"github.com/grindlemire/go-weld/window/tcellwin"
)

// units sizes the demos for a back-end.
type units struct {
	metrics button.Metrics
	row     float32
	theme   string
}

var (
	pixelUnits = units{metrics: button.Pixels, row: 32, theme: "light"}
	cellUnits  = units{metrics: button.Cells, row: 1, theme: "dark"}
)

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	backend, err := chooseBackend(opts.backend, stdoutIsTerminal(), os.Getenv)
	if err != nil {
		return err
	}

	switch backend {
	case "gl":
		rcfg := raylibwin.DefaultConfig()
		rcfg.Title = cfg.Title
		rcfg.Width, rcfg.Height = int(cfg.Width), int(cfg.Height)
		rcfg.FPS = cfg.FrameRate
		return raylibwin.Run(ctx, rcfg, func(ctx context.Context, w *raylibwin.Window) error {
			return drive(ctx, w, opts, cfg, pixelUnits)
		})
	case "term":
		w, err := tcellwin.New()
		if err != nil {
			return err
		}
		defer w.Close()
		return drive(ctx, w, opts, cfg, cellUnits)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
}

func drive(ctx context.Context, w weld.Window, opts options, cfg weld.Config, u units) error {
	kit := kitFor(opts.theme, u.theme)

	switch opts.app {
	case "button":
		return runApp(ctx, w, button.New(u.metrics, kit), cfg, nil)
	case "todo":
		seed := func(send func(target string, payload any) bool) {
			for _, s := range opts.seeds {
				send("input", todo.TextChanged{Text: s})
			}
		}
		return runApp(ctx, w, todo.New(u.row, kit), cfg, seed)
	default:
		return fmt.Errorf("unknown app %q", opts.app)
	}
}

func kitFor(requested, fallback string) widgets.Kit {
	name := requested
	if name == "" {
		name = fallback
	}
	if name == "dark" {
		return widgets.Kit{Theme: widgets.DarkTheme()}
	}
	return widgets.Kit{Theme: widgets.LightTheme()}
}

func runApp[S weld.State](ctx context.Context, w weld.Window, initial S, cfg weld.Config, seed func(send func(string, any) bool)) error {
	app, err := weld.NewApp(w, initial, cfg.Options()...)
	if err != nil {
		return err
	}
	if seed != nil {
		seed(app.Send)
	}
	return app.Run(ctx)
}
