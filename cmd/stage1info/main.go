// Command stage1info prints properties of the stage-1 decimation filter.
//
// Usage:
//
//	stage1info [flags]
//
// It decodes the shipped bit-plane coefficient tables, prints tap
// statistics for both output phases, and tabulates the frequency response
// at a set of probe frequencies.
//
// Examples:
//
//	stage1info
//	stage1info -freqs 1000,48000,96000
//	stage1info -designed -nfft 16384
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/crsknr/lib-mic-array-192/dsp/decimator"
	"github.com/crsknr/lib-mic-array-192/dsp/design"
	"github.com/crsknr/lib-mic-array-192/dsp/fir1bit"
)

func main() {
	rate := flag.Float64("rate", 3.072e6, "PDM bit rate in Hz")
	nfft := flag.Int("nfft", 8192, "FFT size for stopband analysis")
	freqList := flag.String("freqs", "100,1000,10000,40000,80000,96000,112000", "comma-separated probe frequencies in Hz")
	designed := flag.Bool("designed", false, "analyze the regenerated design instead of the shipped tables")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stage1info [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints tap statistics and frequency response of the stage-1 decimation filter.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stage1info\n")
		fmt.Fprintf(os.Stderr, "  stage1info -freqs 1000,48000,96000\n")
		fmt.Fprintf(os.Stderr, "  stage1info -designed -nfft 16384\n")
	}
	flag.Parse()

	freqs, err := parseFreqs(*freqList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	after, before := decimator.Stage1Tables()
	if *designed {
		after, before, err = regenerate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	printTapStats(after, before)
	fmt.Println()
	printResponse(after, *rate, freqs)
	fmt.Println()
	printStopband(after, *rate, *nfft)
}

func parseFreqs(s string) ([]float64, error) {
	var freqs []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q", part)
		}
		freqs = append(freqs, f)
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("no probe frequencies given")
	}
	return freqs, nil
}

func regenerate() (after, before *fir1bit.Filter, err error) {
	taps, err := design.Stage1(design.DefaultStage1())
	if err != nil {
		return nil, nil, err
	}
	q, err := design.Quantize(taps)
	if err != nil {
		return nil, nil, err
	}
	after, err = design.Pack(q, design.PadAfter)
	if err != nil {
		return nil, nil, err
	}
	before, err = design.Pack(q, design.PadBefore)
	if err != nil {
		return nil, nil, err
	}
	return after, before, nil
}

func printTapStats(after, before *fir1bit.Filter) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Phase\tActive Taps\tPeak\tSum\tOutput Scale\n")
	fmt.Fprintf(tw, "-----\t-----------\t----\t---\t------------\n")

	for _, e := range []struct {
		name string
		f    *fir1bit.Filter
	}{{"even", after}, {"odd", before}} {
		taps := e.f.Taps()
		var active int
		var peak, sum int64
		for _, c := range taps {
			if c != 0 {
				active++
			}
			sum += int64(c)
			a := int64(c)
			if a < 0 {
				a = -a
			}
			if a > peak {
				peak = a
			}
		}
		// Full-scale output after the half-sum dot and the output shift.
		scale := sum / 2 << decimator.OutputShift
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", e.name, active, peak, sum, scale)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(f *fir1bit.Filter, rate float64, freqs []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "--------------\t--------------\n")
	for _, freq := range freqs {
		fmt.Fprintf(tw, "%.0f\t%.2f\n", freq, f.MagnitudeDB(freq, rate))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printStopband(f *fir1bit.Filter, rate float64, nfft int) {
	taps := f.Taps()
	ft := make([]float64, len(taps))
	for i, c := range taps {
		ft[i] = float64(c)
	}

	resp, err := design.ResponseDB(ft, nfft, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	// Everything above the output Nyquist folds back after decimation.
	outNyquist := rate / float64(decimator.DecimationFactor) / 2
	fmt.Printf("Stopband peak above %.0f Hz: %.2f dB (nfft %d)\n",
		outNyquist, design.StopbandPeakDB(resp, rate, outNyquist), nfft)
}
