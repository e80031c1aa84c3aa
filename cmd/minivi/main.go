// Package main is the entry point for the minivi editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/minivi/internal/app"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Debug, "debug", false, "Write a debug log to minivi.log")
	flag.BoolVar(&opts.Debug, "d", false, "Write a debug log (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "minivi - a small modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: minivi [options] [filename]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  minivi                 Open with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  minivi notes.txt       Open a file\n")
		fmt.Fprintf(os.Stderr, "  minivi -c mv.toml f    Open with a config file\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("minivi %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.Filename = flag.Arg(0)
	}

	return opts
}
