// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"testing"
)

func mustSplitter(t *testing.T) *Splitter {
	t.Helper()

	s, err := NewSplitter(8000, 800, 2500)
	if err != nil {
		t.Fatalf("NewSplitter: %v", err)
	}
	return s
}

func TestSplitReconstructsExactly(t *testing.T) {
	t.Parallel()

	s := mustSplitter(t)

	// A busy broadband signal: three tones plus a deterministic noise
	// term.
	seed := uint32(12345)
	for i := 0; i < 16000; i++ {
		ts := float64(i) / 8000
		x := 0.3*math.Sin(2*math.Pi*220*ts) +
			0.3*math.Sin(2*math.Pi*1500*ts) +
			0.2*math.Sin(2*math.Pi*3300*ts)

		seed = seed*1103515245 + 12345
		x += 0.1 * (float64(seed>>16)/32768.0 - 1.0)

		in := float32(x)
		low, mid, high := s.Split(in)
		out := Recombine(low, mid, high)

		if math.Abs(float64(out-in)) > 1e-5 {
			t.Fatalf("sample %d: recombined %v, input %v", i, out, in)
		}
	}
}

func TestSplitBandSeparation(t *testing.T) {
	t.Parallel()

	// bandRMS measures per-band energy for a pure tone after settling.
	bandRMS := func(freq float64) (low, mid, high float64) {
		s, err := NewSplitter(8000, 800, 2500)
		if err != nil {
			t.Fatalf("NewSplitter: %v", err)
		}

		const total = 16000
		for i := 0; i < total; i++ {
			x := float32(math.Sin(2 * math.Pi * freq * float64(i) / 8000))
			l, m, h := s.Split(x)

			if i >= total/2 {
				low += float64(l) * float64(l)
				mid += float64(m) * float64(m)
				high += float64(h) * float64(h)
			}
		}
		return math.Sqrt(low), math.Sqrt(mid), math.Sqrt(high)
	}

	low, mid, high := bandRMS(200)
	if low < mid || low < high {
		t.Errorf("200 Hz: low band not dominant (low=%v mid=%v high=%v)", low, mid, high)
	}

	low, mid, high = bandRMS(1500)
	if mid < low {
		t.Errorf("1.5 kHz: mid band below low band (low=%v mid=%v)", low, mid)
	}

	low, mid, high = bandRMS(3600)
	if high < low || high < mid {
		t.Errorf("3.6 kHz: high band not dominant (low=%v mid=%v high=%v)", low, mid, high)
	}
}

func TestSplitterInvalidCrossovers(t *testing.T) {
	t.Parallel()

	if _, err := NewSplitter(8000, 800, 4000); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("high crossover at Nyquist: got %v, want ErrInvalidFrequency", err)
	}
	if _, err := NewSplitter(8000, 0, 2500); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("zero low crossover: got %v, want ErrInvalidFrequency", err)
	}
}

func TestSplitterReset(t *testing.T) {
	t.Parallel()

	s := mustSplitter(t)

	for n := 0; n < 100; n++ {
		s.Split(0.8)
	}
	s.Reset()

	low, mid, high := s.Split(0)
	if low != 0 || mid != 0 || high != 0 {
		t.Errorf("state leaked through Reset: (%v, %v, %v)", low, mid, high)
	}
}
