package decimator

import (
	"testing"

	"github.com/crsknr/lib-mic-array-192/internal/testutil"
)

// fullScale is the steady-state output for a constant +1 input stream
// (half the tap sum, left-shifted by the output scale).
const fullScale = 620520 / 2 << OutputShift

func TestStream_DCLevel(t *testing.T) {
	// A sigma-delta modulated constant of +0.5 must settle to exactly half
	// of full scale: the modulator's idle pattern is periodic and falls
	// entirely inside the filter's stop band.
	const blocks = 220
	d := newInitialized(t, 1)
	samples := run(d, testutil.DCBlocks(0.5, blocks))

	want := int32(fullScale / 2)
	for i := 40; i < len(samples); i++ {
		diff := samples[i] - want
		if diff < -1024 || diff > 1024 {
			t.Fatalf("sample %d: got %d, want %d within 1024", i, samples[i], want)
		}
	}
}

func TestStream_SineTone(t *testing.T) {
	// 6 kHz at 3.072 MHz lands well inside the pass band and decimates to
	// 32 samples per period at 192 kHz.
	const (
		blocks    = 400
		amplitude = 0.5
	)
	d := newInitialized(t, 1)
	samples := run(d, testutil.SineBlocks(6e3, 3.072e6, amplitude, blocks))
	samples = samples[40:] // settling

	peak := testutil.MaxAbsInt32(samples)
	want := int32(amplitude * fullScale)
	if low, high := want-want/16, want+want/16; peak < low || peak > high {
		t.Errorf("peak: got %d, want %d within ~6%%", peak, want)
	}

	// Sign changes every half period of 16 output samples.
	last := -1
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			if last >= 0 {
				if gap := i - last; gap != 16 {
					t.Fatalf("zero crossing gap at sample %d: got %d, want 16", i, gap)
				}
			}
			last = i
		}
	}
	if last < 0 {
		t.Fatal("no zero crossings found")
	}
}
