package design

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrFFTSize indicates an FFT size that is not a power of two or is
	// smaller than the tap count.
	ErrFFTSize = errors.New("design: fft size must be a power of two >= len(taps)")
	// ErrSampleRate indicates a non-positive sample rate.
	ErrSampleRate = errors.New("design: sample rate must be > 0")
)

// ResponseDB computes the magnitude response of taps in dB relative to DC,
// from bin 0 to Nyquist inclusive (nfft/2 + 1 values). The bin spacing is
// sampleRate/nfft Hz. nfft must be a power of two at least len(taps).
func ResponseDB(taps []float64, nfft int, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, ErrSampleRate
	}
	if nfft < len(taps) || nfft <= 0 || bits.OnesCount(uint(nfft)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, nfft)
	}

	in := make([]complex128, nfft)
	for i, v := range taps {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("design: fft plan: %w", err)
	}

	out := make([]complex128, nfft)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("design: fft: %w", err)
	}

	n := nfft/2 + 1
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range n {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	dc := mag[0]
	if dc == 0 {
		return nil, errors.New("design: zero DC response")
	}

	for i, m := range mag {
		if m == 0 {
			mag[i] = math.Inf(-1)
			continue
		}
		mag[i] = 20 * math.Log10(m/dc)
	}
	return mag, nil
}

// StopbandPeakDB returns the largest response value at or above fromHz.
// respDB must span bin 0 to Nyquist as returned by ResponseDB.
func StopbandPeakDB(respDB []float64, sampleRate, fromHz float64) float64 {
	peak := math.Inf(-1)
	binHz := sampleRate / float64(2*(len(respDB)-1))
	for i, v := range respDB {
		if float64(i)*binHz >= fromHz && v > peak {
			peak = v
		}
	}
	return peak
}
