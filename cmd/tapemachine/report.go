package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-tape/dsp/core"
	"github.com/cwbudde/algo-tape/measure/response"
)

func channelLevels(channels [][]float32) []response.Levels {
	out := make([]response.Levels, len(channels))
	for i, ch := range channels {
		out[i] = response.Measure(ch)
	}
	return out
}

func printLevels(w io.Writer, before, after []response.Levels) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Channel\tIn RMS\tOut RMS\tGain\tIn Peak\tOut Peak\tOut DC\t")
	for i := range after {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%.2e\t\n",
			i,
			db(before[i].RMSdB()),
			db(after[i].RMSdB()),
			db(after[i].RMSdB()-before[i].RMSdB()),
			db(before[i].PeakdB()),
			db(after[i].PeakdB()),
			after[i].DC,
		)
	}
	return tw.Flush()
}

func printReport(w io.Writer, rep response.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Fundamental\t%.2f Hz\n", rep.FundamentalFreq)
	fmt.Fprintf(tw, "Level\t%s\n", db(20*math.Log10(rep.FundamentalLevel)))
	fmt.Fprintf(tw, "THD\t%.4f %%\t%s\n", rep.THD*100, db(rep.THDdB))
	for i, h := range rep.Harmonics {
		fmt.Fprintf(tw, "H%d\t%s\n", i+2, db(20*math.Log10(h)))
	}
	return tw.Flush()
}

func db(v float64) string {
	if math.IsInf(v, -1) || math.IsNaN(v) {
		return "-inf dB"
	}
	return fmt.Sprintf("%.2f dB", v)
}

func fillSine(channels [][]float32, freq, amp, sampleRate float64) {
	step := 2 * math.Pi * freq / sampleRate
	for _, ch := range channels {
		for i := range ch {
			ch[i] = float32(amp * math.Sin(step*float64(i)))
		}
	}
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	core.Convert(out, x)
	return out
}
