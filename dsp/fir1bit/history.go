package fir1bit

// HistoryWords is the number of 32-bit words in a history window.
const HistoryWords = TapCount / 32

// Filler is the bit pattern history windows start from. Alternating bits
// encode an alternating +-1 stream, the zero-signal convention of the +-1
// bit weighting, so an unfed filter settles to a zero output rather than a
// DC offset.
const Filler uint32 = 0x55555555

// History is a sliding window over the most recent 256 bits of a PDM
// stream, packed into words with word 0 holding the newest block. Within a
// block, bit 31 is the newest sample and bit 0 the oldest.
//
// A window is advanced in two steps per processed block: Ingest writes the
// new block into word 0, and Advance ages every word by one position once
// the block has been filtered. Between the two calls the window spans the
// newest 256 bits of the stream including the fresh block.
type History [HistoryWords]uint32

// NewHistory returns a window prefilled with the filler pattern.
func NewHistory() History {
	var h History
	h.Reset()
	return h
}

// Ingest places one new 32-bit block at the newest end of the window.
// It must be followed by exactly one Advance per block.
func (h *History) Ingest(block uint32) {
	h[0] = block
}

// Advance ages the window by one block: every word moves one position
// toward the oldest end and the oldest 32 bits fall out of the filter span.
// Word 0 is left in place for the next Ingest to overwrite.
func (h *History) Advance() {
	for w := HistoryWords - 1; w > 0; w-- {
		h[w] = h[w-1]
	}
}

// Reset refills the window with the filler pattern.
func (h *History) Reset() {
	for w := range h {
		h[w] = Filler
	}
}
