// Package fir1bit implements a FIR filter over a 1-bit (PDM) signal using a
// bit-plane packed coefficient representation.
//
// Each of the 256 filter taps is a signed integer expressed as a signed sum
// over 16 binary planes with weights {1, 1, 2, 4, ..., 16384}. A plane bit of
// 0 contributes +weight to the tap, a bit of 1 contributes -weight. Because
// the input samples are themselves single bits interpreted as +-1, a full
// convolution collapses into XOR and population-count operations per plane:
// no multiplications are needed.
//
// The signal history is kept as eight 32-bit words forming a sliding window
// over the most recent 256 stream bits, in the exact layout the convolution
// consumes. Both the filter and the history are fixed-size value types; the
// processing path performs no allocation.
package fir1bit
