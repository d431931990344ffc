package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-tape/internal/wavio"
)

func runRender(args []string, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	pf := bindParamFlags(fs)
	in := fs.String("in", "", "input WAV file")
	out := fs.String("out", "", "output WAV file")
	bits := fs.Int("bits", 0, "output bit depth (0 keeps the input depth)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("render: -in and -out are required")
	}

	audio, err := wavio.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Debug("decoded input",
		"path", *in,
		"sampleRate", audio.SampleRate,
		"channels", len(audio.Channels),
		"bitDepth", audio.BitDepth,
		"frames", audio.Frames(),
	)

	proc, params, err := pf.processor(float64(audio.SampleRate))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	before := channelLevels(audio.Channels)
	if err := proc.Process(audio.Channels); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	after := channelLevels(audio.Channels)

	if *bits != 0 {
		audio.BitDepth = *bits
	}
	if err := wavio.WriteFile(*out, audio); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Info("rendered",
		"in", *in,
		"out", *out,
		"seconds", audio.Duration(),
		"bypass", params.Bypassed(),
	)

	return printLevels(stdout, before, after)
}
