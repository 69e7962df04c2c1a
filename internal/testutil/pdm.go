package testutil

import "math"

// FillerBlocks returns n copies of the given bit pattern, the shape a
// silent PDM stream takes.
func FillerBlocks(pattern uint32, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = pattern
	}
	return out
}

// SigmaDelta is a first-order sigma-delta modulator turning a [-1, 1]
// signal into a PDM bit stream. Deterministic: identical input sequences
// produce identical bit streams.
type SigmaDelta struct {
	integrator float64
}

// Bit modulates one sample into one PDM bit.
func (m *SigmaDelta) Bit(x float64) uint32 {
	m.integrator += x
	if m.integrator >= 0 {
		m.integrator--
		return 1
	}
	m.integrator++
	return 0
}

// Blocks modulates a signal into packed 32-bit PDM blocks. Within each
// block bit 0 is the earliest sample and bit 31 the latest. The signal
// length must be a multiple of 32; a trailing partial block is dropped.
func (m *SigmaDelta) Blocks(signal []float64) []uint32 {
	out := make([]uint32, 0, len(signal)/32)
	var word uint32
	for i, x := range signal {
		word |= m.Bit(x) << (uint(i) % 32)
		if i%32 == 31 {
			out = append(out, word)
			word = 0
		}
	}
	return out
}

// SineBlocks returns a sine of the given frequency, amplitude and length
// (in blocks), sigma-delta modulated into PDM blocks at the given bit rate.
func SineBlocks(freqHz, bitRateHz, amplitude float64, blocks int) []uint32 {
	n := blocks * 32
	sig := make([]float64, n)
	step := 2 * math.Pi * freqHz / bitRateHz
	for i := range sig {
		sig[i] = amplitude * math.Sin(step*float64(i))
	}
	var m SigmaDelta
	return m.Blocks(sig)
}

// DCBlocks returns a constant-level signal modulated into PDM blocks.
func DCBlocks(level float64, blocks int) []uint32 {
	sig := make([]float64, blocks*32)
	for i := range sig {
		sig[i] = level
	}
	var m SigmaDelta
	return m.Blocks(sig)
}
