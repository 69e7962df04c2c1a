// Package design synthesizes and analyzes the stage-1 decimation filter.
//
// The shipped coefficient tables in dsp/decimator are authoritative; this
// package exists to regenerate the filter from its published design
// parameters, quantize and pack coefficient sets into the bit-plane form
// the convolution engine consumes, and measure frequency responses. The
// published parameters reproduce a slightly lower-resolution fit of the
// shipped taps (the exact rounding behind the shipped tables is not
// recorded), so
// agreement is verified by tolerance rather than bit identity.
package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrTapCount indicates a non-positive tap count.
	ErrTapCount = errors.New("design: tap count must be > 0")
	// ErrCutoff indicates a cutoff outside (0, sampleRate/2).
	ErrCutoff = errors.New("design: cutoff must lie in (0, sampleRate/2)")
	// ErrBeta indicates a negative Kaiser beta.
	ErrBeta = errors.New("design: kaiser beta must be >= 0")
	// ErrPeakScale indicates a non-positive peak scale.
	ErrPeakScale = errors.New("design: peak scale must be > 0")
)

// Stage1Params holds the stage-1 low-pass design parameters.
type Stage1Params struct {
	// Taps is the number of active filter taps.
	Taps int
	// CutoffHz is the low-pass cutoff frequency in Hz.
	CutoffHz float64
	// SampleRateHz is the PDM bit rate in Hz.
	SampleRateHz float64
	// KaiserBeta is the Kaiser window shape parameter.
	KaiserBeta float64
	// PeakScale is the value the largest tap is normalized to.
	PeakScale float64
}

// DefaultStage1 returns the parameters of the shipped stage-1 filter:
// 240 taps, 80 kHz cutoff at a 3.072 MHz bit rate, Kaiser beta 4.0, peak
// tap 32768.
func DefaultStage1() Stage1Params {
	return Stage1Params{
		Taps:         240,
		CutoffHz:     80e3,
		SampleRateHz: 3.072e6,
		KaiserBeta:   4.0,
		PeakScale:    32768,
	}
}

// Stage1 designs a Kaiser-windowed sinc low pass from p and normalizes the
// peak tap to p.PeakScale. The result is symmetric about its center.
func Stage1(p Stage1Params) ([]float64, error) {
	if p.Taps <= 0 {
		return nil, ErrTapCount
	}
	if p.SampleRateHz <= 0 || p.CutoffHz <= 0 || p.CutoffHz >= p.SampleRateHz/2 {
		return nil, fmt.Errorf("%w: cutoff %.1f Hz at rate %.1f Hz", ErrCutoff, p.CutoffHz, p.SampleRateHz)
	}
	if p.KaiserBeta < 0 {
		return nil, ErrBeta
	}
	if p.PeakScale <= 0 {
		return nil, ErrPeakScale
	}

	fc := p.CutoffHz / p.SampleRateHz

	taps := make([]float64, p.Taps)
	win := make([]float64, p.Taps)
	center := 0.5 * float64(p.Taps-1)
	for n := range taps {
		t := float64(n) - center
		taps[n] = 2 * fc * sinc(2*fc*t)
		win[n] = kaiserWindow(n, p.Taps, p.KaiserBeta)
	}
	vecmath.MulBlockInPlace(taps, win)

	var peak float64
	for _, v := range taps {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return nil, fmt.Errorf("design: degenerate zero filter for %+v", p)
	}

	scale := p.PeakScale / peak
	for i := range taps {
		taps[i] *= scale
	}
	return taps, nil
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}

func kaiserWindow(i, n int, beta float64) float64 {
	if n <= 1 || beta == 0 {
		return 1
	}

	t := 2*float64(i)/float64(n-1) - 1
	a := math.Sqrt(math.Max(0, 1-t*t))

	return i0(beta*a) / i0(beta)
}

func i0(x float64) float64 {
	// Power series approximation.
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}
