// Package main runs the weld demo apps on a terminal or a native window.
//
// Usage:
//
//	weld-demo [options]
//
// Examples:
//
//	weld-demo -app button                 Counter demo on the best back-end
//	weld-demo -app todo -backend term     Todo list in the terminal
//	weld-demo -app todo -seed milk,eggs   Todo list with two items queued
//	weld-demo -config weld.yaml           Window settings from YAML
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

const version = "0.1.0"

const usage = `weld-demo - run a weld demo app

Usage:
  weld-demo [options]

Options:
  -app name        button or todo (default button)
  -backend name    auto, gl or term (default auto)
  -config path     YAML window and app settings
  -seed a,b,...    todo items sent to the todo app at start
  -theme name      light or dark (default: dark in the terminal)
  -version         print version information
`

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if opts.version {
		fmt.Printf("weld-demo version %s\n", version)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
