// Command tapemachine runs audio through the tape machine emulation.
//
// Usage:
//
//	tapemachine <command> [flags]
//
// Commands:
//
//	render  process a WAV file into a new WAV file
//	tone    process a synthetic sine and print level and distortion figures
//	play    process a WAV file and play it on the default output device
//	params  print the parameter table with current values
//
// Every command accepts the parameter flags (-input, -tilt, -shape, -bias,
// -flutter, -speed, -bump, -bumpHz, -output, -bypass) in display units,
// e.g. -input 3dB -flutter 20% -bumpHz 90Hz, and -state to load a saved
// JSON parameter file.
//
// Examples:
//
//	tapemachine render -in mix.wav -out mix-tape.wav -bias 65% -bump 40%
//	tapemachine tone -freq 100 -amp 0.8 -input 6dB
//	tapemachine play -in loop.wav -flutter 70% -speed 30%
//	tapemachine params -bias 80% -save preset.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout io.Writer, logger *slog.Logger) error
}

var commands = []command{
	{"render", "process a WAV file into a new WAV file", runRender},
	{"tone", "process a synthetic sine and print an analysis", runTone},
	{"play", "process a WAV file and play it", runPlay},
	{"params", "print the parameter table", runParams},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return flag.ErrHelp
	}

	for _, c := range commands {
		if c.name == args[0] {
			logger := newLogger(stderr, hasVerbose(args[1:]))
			return c.run(args[1:], stdout, logger)
		}
	}

	printUsage(stderr)
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: tapemachine <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "\nRun 'tapemachine <command> -h' for command flags.\n")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func hasVerbose(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--v" || a == "-v=true" || a == "--v=true" {
			return true
		}
	}
	return false
}
