package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-tape/dsp/param"
	"github.com/cwbudde/algo-tape/internal/wavio"
	"github.com/cwbudde/algo-tape/measure/response"
)

func runTone(args []string, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("tone", flag.ContinueOnError)
	pf := bindParamFlags(fs)
	freqArg := fs.String("freq", "1kHz", "tone frequency (Hz or kHz)")
	amp := fs.Float64("amp", 0.5, "tone amplitude (linear)")
	rate := fs.Int("rate", 48000, "sample rate in Hz")
	length := fs.String("length", "1s", "tone length (ms or s)")
	harmonics := fs.Int("harmonics", 9, "harmonics included in THD")
	out := fs.String("out", "", "also write the processed tone to this WAV file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	freq, err := param.ParseHz(*freqArg)
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}
	ms, err := param.ParseMilliseconds(*length)
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}

	frames := int(ms * float64(*rate) / 1000)
	if frames < 2 {
		return errors.New("tone: -length too short")
	}
	if freq <= 0 || freq >= float64(*rate)/2 {
		return fmt.Errorf("tone: frequency %s outside (0, %d Hz)", param.FormatHz(freq), *rate/2)
	}

	proc, params, err := pf.processor(float64(*rate))
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}

	audio := wavio.New(*rate, 24, 2, frames)
	fillSine(audio.Channels, freq, *amp, float64(*rate))
	before := channelLevels(audio.Channels)

	if err := proc.Process(audio.Channels); err != nil {
		return fmt.Errorf("tone: %w", err)
	}
	logger.Debug("processed tone", "freq", param.FormatHz(freq), "length", param.FormatMilliseconds(ms), "frames", frames)

	// Skip the first half so filters and ramps have settled.
	tail := widen(audio.Channels[0][frames/2:])
	rep, err := response.Analyze(tail, response.Config{
		SampleRate:  float64(*rate),
		Fundamental: freq,
		Harmonics:   *harmonics,
	})
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}

	if *out != "" {
		if err := wavio.WriteFile(*out, audio); err != nil {
			return fmt.Errorf("tone: %w", err)
		}
		logger.Info("wrote tone", "path", *out)
	}

	if err := printParams(stdout, params); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if err := printLevels(stdout, before, channelLevels(audio.Channels)); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	return printReport(stdout, rep)
}
