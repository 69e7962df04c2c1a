package fir1bit

import (
	"math/rand"
	"testing"
)

// naiveDot is the definitional bit-weighted convolution: every window bit
// contributes +tap when set and -tap when clear. Returns the full sum; Dot
// returns half of it.
func naiveDot(h *History, taps []int32) int64 {
	var sum int64
	for i := range TapCount {
		word := HistoryWords - 1 - i/32
		bit := uint(i % 32)
		if h[word]>>bit&1 == 1 {
			sum += int64(taps[i])
		} else {
			sum -= int64(taps[i])
		}
	}
	return sum
}

func randomFilter(rng *rand.Rand) *Filter {
	var words [FilterWords]uint32
	for i := range words {
		words[i] = rng.Uint32()
	}
	return NewFilter(words)
}

func TestDot_MatchesNaiveConvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := range 100 {
		f := randomFilter(rng)
		taps := f.Taps()

		var h History
		for w := range h {
			h[w] = rng.Uint32()
		}

		want := naiveDot(&h, taps)
		if want%2 != 0 {
			t.Fatalf("trial %d: naive dot %d not even", trial, want)
		}
		if got := f.Dot(&h); int64(got)*2 != want {
			t.Fatalf("trial %d: Dot=%d, naive/2=%d", trial, got, want/2)
		}
	}
}

func TestDot_AllPlanesClear(t *testing.T) {
	// All plane bits clear encodes every tap as +32768.
	f := NewFilter([FilterWords]uint32{})

	var ones History
	for w := range ones {
		ones[w] = 0xFFFFFFFF
	}
	if got, want := f.Dot(&ones), int32(TapCount*32768/2); got != want {
		t.Errorf("all-ones window: got %d, want %d", got, want)
	}

	var zeros History
	if got, want := f.Dot(&zeros), int32(-TapCount*32768/2); got != want {
		t.Errorf("all-zeros window: got %d, want %d", got, want)
	}
}

func TestDot_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	f := randomFilter(rng)
	var h History
	for w := range h {
		h[w] = rng.Uint32()
	}

	first := f.Dot(&h)
	for range 10 {
		if got := f.Dot(&h); got != first {
			t.Fatalf("Dot not deterministic: %d then %d", first, got)
		}
	}
}

func TestTaps_PlaneWeights(t *testing.T) {
	// Setting all bits of a single plane row subtracts twice that plane's
	// weight from every tap.
	for k := range PlaneCount {
		var words [FilterWords]uint32
		for w := range PlaneWords {
			words[k*PlaneWords+w] = 0xFFFFFFFF
		}
		f := NewFilter(words)
		want := int32(32768) - 2*planeWeight[k]
		for i, tap := range f.Taps() {
			if tap != want {
				t.Fatalf("plane %d tap %d: got %d, want %d", k, i, tap, want)
			}
		}
	}
}

func TestWords_Copy(t *testing.T) {
	var words [FilterWords]uint32
	words[0] = 0xDEADBEEF
	f := NewFilter(words)

	got := f.Words()
	if got != words {
		t.Fatal("Words does not round-trip the packed table")
	}
	got[0] = 0
	if f.Words()[0] != 0xDEADBEEF {
		t.Fatal("Words returned a view into filter state")
	}
}

func TestResponse_DCOfConstantFilter(t *testing.T) {
	// All taps +32768: DC response is the tap sum, 0 dB relative to itself.
	f := NewFilter([FilterWords]uint32{})

	dc := f.Response(0, 3.072e6)
	if got, want := real(dc), float64(TapCount)*32768; got != want || imag(dc) != 0 {
		t.Fatalf("DC response: got %v, want %v", dc, want)
	}
	if db := f.MagnitudeDB(0, 3.072e6); db != 0 {
		t.Errorf("MagnitudeDB(0): got %v, want 0", db)
	}
}
