// Package decimator converts streams of 1-bit PDM microphone samples into
// 16x decimated PCM samples, one 32-bit block per channel per call.
//
// The conversion is a single FIR stage: every incoming block is filtered
// twice against the channel's bit history, once per phase table, yielding
// two output samples per block (3.072 MHz in, 192 kHz out). The processing
// path is pure computation over fixed-size state with no allocation, sized
// for use on a real-time capture cadence.
package decimator

import (
	"errors"
	"fmt"

	"github.com/crsknr/lib-mic-array-192/dsp/fir1bit"
)

// ErrChannelCount indicates a non-positive channel count.
var ErrChannelCount = errors.New("decimator: channel count must be >= 1")

const (
	// DecimationFactor is the input-bit to output-sample rate ratio.
	DecimationFactor = 16
	// SamplesPerBlock is the number of output samples produced per channel
	// for each processed input block.
	SamplesPerBlock = fir1bit.BlockBits / DecimationFactor
	// OutputShift is the left shift applied to the convolution result to
	// align the fixed-point output range. It belongs to the shipped filter
	// design; regenerated coefficient sets must re-derive it.
	OutputShift = 3
)

// Decimator is a single-stage 16:1 PDM decimator for a fixed number of
// microphone channels.
//
// A Decimator must be initialized with Init before processing. Channels
// carry no shared mutable state, but one instance expects a single caller:
// blocks for a given channel must arrive in stream order from one goroutine
// at a time, or the sliding-window state is corrupted without detection.
type Decimator struct {
	// Phase tables, shared read-only process-wide. Nil until Init.
	filter [SamplesPerBlock]*fir1bit.Filter
	// One bit-history window per channel, fixed capacity, prefilled with
	// the filler pattern at construction.
	history []fir1bit.History
}

// New creates a decimator for the given channel count. Histories start at
// the documented filler pattern, so the filter output settles at zero until
// real signal has filled the window.
func New(channels int) (*Decimator, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrChannelCount, channels)
	}
	d := &Decimator{history: make([]fir1bit.History, channels)}
	for ch := range d.history {
		d.history[ch].Reset()
	}
	return d, nil
}

// Init binds the stage-1 phase tables. It must be called once before the
// first ProcessBlock; processing an uninitialized decimator panics.
func (d *Decimator) Init() {
	d.filter[0] = stage1ZeroAfter
	d.filter[1] = stage1ZeroBefore
}

// Channels returns the channel count the decimator was created with.
func (d *Decimator) Channels() int {
	return len(d.history)
}

// ProcessBlock consumes one 32-bit block of PDM samples per channel and
// writes two decimated samples per channel.
//
// in holds one block per channel; within a block, bit 31 is the newest
// sample. out[0] receives the phase whose taps zero-pad the newest samples
// (older history dominates), out[1] the phase zero-padding the oldest
// samples (fresher history dominates); out[0][ch] therefore precedes
// out[1][ch] in output stream order. Both output slices and in must have
// exactly Channels() elements.
//
// Channels are processed independently; calls never block, never allocate,
// and run a fixed amount of work per channel. Precondition violations panic.
func (d *Decimator) ProcessBlock(out *[SamplesPerBlock][]int32, in []uint32) {
	if d.filter[0] == nil || d.filter[1] == nil {
		panic("decimator: ProcessBlock before Init")
	}
	if len(in) != len(d.history) {
		panic(fmt.Sprintf("decimator: input blocks %d, channels %d", len(in), len(d.history)))
	}
	if len(out[0]) != len(d.history) || len(out[1]) != len(d.history) {
		panic(fmt.Sprintf("decimator: output slots %d/%d, channels %d",
			len(out[0]), len(out[1]), len(d.history)))
	}

	for ch := range d.history {
		h := &d.history[ch]
		h.Ingest(in[ch])
		out[0][ch] = d.filter[0].Dot(h) << OutputShift
		out[1][ch] = d.filter[1].Dot(h) << OutputShift
		h.Advance()
	}
}

// Reset refills every channel's history with the filler pattern, as if the
// decimator had just been constructed. Bound phase tables are kept.
func (d *Decimator) Reset() {
	for ch := range d.history {
		d.history[ch].Reset()
	}
}

// Stage1Tables returns the two shipped phase tables: the zero-padded-after
// phase (output slot 0) and the zero-padded-before phase (output slot 1).
// The filters are shared and read-only.
func Stage1Tables() (zeroAfter, zeroBefore *fir1bit.Filter) {
	return stage1ZeroAfter, stage1ZeroBefore
}
