package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grindlemire/go-weld"
	"github.com/mattn/go-isatty"
)

type options struct {
	app     string
	backend string
	config  string
	theme   string
	seeds   []string
	version bool
}

func parseArgs(args []string) (options, error) {
	var opts options
	var seeds string

	fs := flag.NewFlagSet("weld-demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.app, "app", "button", "")
	fs.StringVar(&opts.backend, "backend", "auto", "")
	fs.StringVar(&opts.config, "config", "", "")
	fs.StringVar(&opts.theme, "theme", "", "")
	fs.StringVar(&seeds, "seed", "", "")
	fs.BoolVar(&opts.version, "version", false, "")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	switch opts.app {
	case "button", "todo":
	default:
		return options{}, fmt.Errorf("unknown app %q", opts.app)
	}
	switch opts.backend {
	case "auto", "gl", "term":
	default:
		return options{}, fmt.Errorf("unknown backend %q", opts.backend)
	}
	switch opts.theme {
	case "", "light", "dark":
	default:
		return options{}, fmt.Errorf("unknown theme %q", opts.theme)
	}
	for _, s := range strings.Split(seeds, ",") {
		if s = strings.TrimSpace(s); s != "" {
			opts.seeds = append(opts.seeds, s)
		}
	}
	return opts, nil
}

// chooseBackend resolves "auto": a graphical session gets the native
// window, a bare terminal gets tcell.
func chooseBackend(requested string, stdoutTTY bool, getenv func(string) string) (string, error) {
	if requested != "auto" {
		return requested, nil
	}
	if getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != "" {
		return "gl", nil
	}
	if stdoutTTY {
		return "term", nil
	}
	return "", fmt.Errorf("no display and stdout is not a terminal")
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func loadConfig(path string) (weld.Config, error) {
	if path == "" {
		return weld.DefaultConfig(), nil
	}
	return weld.LoadConfig(path)
}
