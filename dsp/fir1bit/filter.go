package fir1bit

import (
	"math"
	"math/bits"
	"math/cmplx"
)

const (
	// TapCount is the filter span in bits.
	TapCount = 256
	// BlockBits is the number of stream bits consumed per processed block.
	BlockBits = 32
	// PlaneCount is the number of binary coefficient planes.
	PlaneCount = 16
	// PlaneWords is the number of 32-bit words per plane.
	PlaneWords = TapCount / 32
	// FilterWords is the total packed table size in 32-bit words.
	FilterWords = PlaneCount * PlaneWords
)

// planeWeight[k] is the signed magnitude contributed by plane k. The two
// unit weights make every even integer in [-32768, 32768] representable.
var planeWeight = [PlaneCount]int32{
	1, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384,
}

// weightSum is the sum of all plane weights; popcount accumulation over a
// full window is offset by weightSum*TapCount/2 to recover the signed dot.
const weightSum = 32768

// Filter is a bit-plane packed 256-tap FIR coefficient table.
//
// The packed layout is 16 plane rows of 8 words each. Within every row,
// tap i occupies bit i%32 of word 7-i/32; tap indices ascend with time, so
// tap 255 weights the newest sample of the window. Filters are immutable
// after construction and safe to share across goroutines.
type Filter struct {
	planes [FilterWords]uint32
}

// NewFilter constructs a filter from a packed coefficient table.
// The words are copied; the caller's array is not retained.
func NewFilter(words [FilterWords]uint32) *Filter {
	return &Filter{planes: words}
}

// Words returns a copy of the packed coefficient table.
func (f *Filter) Words() [FilterWords]uint32 {
	return f.planes
}

// Dot computes the bit-weighted convolution of the filter with the window.
//
// Each window bit contributes its tap weight signed by the bit value: a set
// bit adds the tap, a cleared bit subtracts it. The result is half of that
// signed sum; since every representable tap is even, no precision is lost.
// The computation is a fixed 128 XOR/popcount pairs with no branches on
// data, no allocation and no hidden state.
func (f *Filter) Dot(h *History) int32 {
	var acc int32
	for k := range PlaneCount {
		row := f.planes[k*PlaneWords : k*PlaneWords+PlaneWords]
		pc := bits.OnesCount32(h[0]^row[0]) +
			bits.OnesCount32(h[1]^row[1]) +
			bits.OnesCount32(h[2]^row[2]) +
			bits.OnesCount32(h[3]^row[3]) +
			bits.OnesCount32(h[4]^row[4]) +
			bits.OnesCount32(h[5]^row[5]) +
			bits.OnesCount32(h[6]^row[6]) +
			bits.OnesCount32(h[7]^row[7])
		acc += planeWeight[k] * int32(pc)
	}
	// acc counts sign disagreements weighted per plane; recenter so that a
	// window matching every plane bit yields -weightSum*TapCount/2 and a
	// window opposing every bit yields +weightSum*TapCount/2.
	return acc - weightSum*TapCount/2
}

// Taps decodes the packed planes back into the 256 signed tap values,
// ordered oldest to newest.
func (f *Filter) Taps() []int32 {
	taps := make([]int32, TapCount)
	for i := range TapCount {
		word := PlaneWords - 1 - i/32
		bit := uint(i % 32)
		var v int32
		for k := range PlaneCount {
			if f.planes[k*PlaneWords+word]>>bit&1 == 0 {
				v += planeWeight[k]
			} else {
				v -= planeWeight[k]
			}
		}
		taps[i] = v
	}
	return taps
}

// Response computes the complex frequency response H(e^{-jw}) of the decoded
// taps at the given frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.Taps() {
		h += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency,
// relative to the DC response.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	dc := cmplx.Abs(f.Response(0, sampleRate))
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate))/dc)
}
