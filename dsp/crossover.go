// SPDX-License-Identifier: EPL-2.0

package dsp

import "fmt"

// Splitter is the three-way crossover network feeding the band
// compressors. Each crossover point pairs a Butterworth low-pass with
// its complement (input minus low-pass output), so the three bands sum
// back to the input exactly:
//
//	low  = LP(splitLow)(x)
//	mid  = LP(splitHigh)(x - low)
//	high = x - low - mid
//
// Complementary pairs trade steeper band edges for perfect
// reconstruction, which is the property the recombiner relies on.
type Splitter struct {
	lowCross  *Biquad
	highCross *Biquad
}

// NewSplitter builds the crossover. Points must satisfy
// 0 < splitLow < splitHigh < Nyquist.
func NewSplitter(sampleRate float64, splitLow, splitHigh float32) (*Splitter, error) {
	if splitLow <= 0 || splitHigh <= splitLow {
		return nil, fmt.Errorf("crossover points %v..%v Hz: %w", splitLow, splitHigh, ErrInvalidFrequency)
	}

	lowCross, err := NewLowpass(sampleRate, float64(splitLow))
	if err != nil {
		return nil, fmt.Errorf("low crossover: %w", err)
	}

	highCross, err := NewLowpass(sampleRate, float64(splitHigh))
	if err != nil {
		return nil, fmt.Errorf("high crossover: %w", err)
	}

	return &Splitter{lowCross: lowCross, highCross: highCross}, nil
}

// Split divides one sample into its three frequency bands.
func (s *Splitter) Split(x float32) (low, mid, high float32) {
	low = s.lowCross.Process(x)
	rest := x - low
	mid = s.highCross.Process(rest)
	high = rest - mid
	return low, mid, high
}

// Recombine sums per-band samples back into one signal. Band target
// levels are tuned so the sum stays near unity; the limiter downstream
// handles any overshoot.
func Recombine(low, mid, high float32) float32 {
	return low + mid + high
}

// Reset zeroes both crossover filters.
func (s *Splitter) Reset() {
	s.lowCross.Reset()
	s.highCross.Reset()
}
