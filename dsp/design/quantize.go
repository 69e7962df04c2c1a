package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/crsknr/lib-mic-array-192/dsp/fir1bit"
)

var (
	// ErrTapRange indicates a tap outside the representable range.
	ErrTapRange = errors.New("design: tap outside [-32768, 32768]")
	// ErrTapParity indicates an odd tap value, which the bit-plane
	// representation cannot express.
	ErrTapParity = errors.New("design: tap must be even")
	// ErrTapOverflow indicates more active taps than the filter span.
	ErrTapOverflow = errors.New("design: too many taps for filter span")
)

// Padding selects where the zero taps of a phase table are placed.
type Padding int

const (
	// PadAfter zero-pads the taps aligned with the newest samples.
	PadAfter Padding = iota
	// PadBefore zero-pads the taps aligned with the oldest samples.
	PadBefore
)

// Quantize rounds float taps to the nearest even integer, the grid the
// bit-plane representation covers.
func Quantize(taps []float64) ([]int32, error) {
	out := make([]int32, len(taps))
	for i, v := range taps {
		q := 2 * math.Round(v/2)
		if q < -32768 || q > 32768 {
			return nil, fmt.Errorf("%w: tap %d = %.1f", ErrTapRange, i, v)
		}
		out[i] = int32(q)
	}
	return out, nil
}

// Pack encodes quantized taps into a packed bit-plane filter, zero-padding
// the remaining span on the side selected by pad. Taps must be even values
// in [-32768, 32768] and at most fir1bit.TapCount long.
//
// The encoding is canonical: Pack followed by Filter.Taps returns the
// padded input exactly. Packed tables produced by other encoders can
// differ in word content while decoding to the same taps, because the two
// unit-weight planes make the representation redundant.
func Pack(taps []int32, pad Padding) (*fir1bit.Filter, error) {
	if len(taps) > fir1bit.TapCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrTapOverflow, len(taps), fir1bit.TapCount)
	}

	offset := 0
	if pad == PadBefore {
		offset = fir1bit.TapCount - len(taps)
	}

	var words [fir1bit.FilterWords]uint32
	// Zero taps first: position i of the span defaults to the canonical
	// encoding of zero unless an active tap overwrites it.
	for i := range fir1bit.TapCount {
		var c int32
		if i >= offset && i < offset+len(taps) {
			c = taps[i-offset]
		}
		planes, err := encodeTap(c)
		if err != nil {
			return nil, fmt.Errorf("design: tap %d: %w", i, err)
		}
		word := fir1bit.PlaneWords - 1 - i/32
		bit := uint(i % 32)
		for k := range fir1bit.PlaneCount {
			if planes>>k&1 == 1 {
				words[k*fir1bit.PlaneWords+word] |= 1 << bit
			}
		}
	}
	return fir1bit.NewFilter(words), nil
}

// encodeTap returns the 16 plane bits encoding c over the plane weights
// {1, 1, 2, ..., 16384}. A set plane bit contributes -weight, so the bits
// are a subset sum: sum of set weights = (32768 - c) / 2.
func encodeTap(c int32) (uint16, error) {
	if c < -32768 || c > 32768 {
		return 0, ErrTapRange
	}
	if c%2 != 0 {
		return 0, ErrTapParity
	}

	m := (32768 - c) / 2
	if m == 32768 {
		// c = -32768: every plane set.
		return 0xFFFF, nil
	}

	// Binary bits of m spread over the weight ladder; the second
	// unit-weight plane (bit 1) stays clear in canonical form.
	var planes uint16
	planes |= uint16(m & 1)
	planes |= uint16(m>>1&0x3FFF) << 2
	return planes, nil
}
