package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/cwbudde/algo-tape/host/stream"
)

func runPlay(args []string, _ io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	pf := bindParamFlags(fs)
	in := fs.String("in", "", "input WAV file")
	buffer := fs.Duration("buffer", 100*time.Millisecond, "speaker buffer length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("play: -in is required")
	}

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	defer f.Close()

	src, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	defer src.Close()

	proc, _, err := pf.processor(float64(format.SampleRate))
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	tape := stream.New(src, proc)

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(*buffer)); err != nil {
		return fmt.Errorf("play: speaker: %w", err)
	}
	defer speaker.Close()

	logger.Info("playing",
		"path", *in,
		"sampleRate", int(format.SampleRate),
		"seconds", format.SampleRate.D(src.Len()).Seconds(),
	)

	done := make(chan struct{})
	speaker.Play(beep.Seq(tape, beep.Callback(func() {
		close(done)
	})))
	<-done

	return tape.Err()
}
