// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
)

// butterworthQ gives a maximally flat passband for a single second
// order section.
const butterworthQ = math.Sqrt2 / 2

// Biquad is a second order IIR section in Direct Form I. Coefficients
// and delay state are kept in float64 so that cascaded sections stay
// numerically stable at low corner frequencies. Each instance owns its
// delay state exclusively, one per stream.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 float64
	y1, y2 float64
}

// NewLowpass designs a Butterworth low-pass section with the given
// cutoff. The cutoff must lie strictly between 0 and Nyquist, or
// ErrInvalidFrequency is returned.
func NewLowpass(sampleRate, cutoff float64) (*Biquad, error) {
	sin, cos, err := biquadOmega(sampleRate, cutoff)
	if err != nil {
		return nil, err
	}

	alpha := sin / (2 * butterworthQ)
	b1 := 1 - cos
	b0 := b1 / 2

	f := &Biquad{}
	f.normalize(b0, b1, b0, 1+alpha, -2*cos, 1-alpha)
	return f, nil
}

// NewHighpass designs a Butterworth high-pass section with the given
// cutoff. Same stability constraints as NewLowpass.
func NewHighpass(sampleRate, cutoff float64) (*Biquad, error) {
	sin, cos, err := biquadOmega(sampleRate, cutoff)
	if err != nil {
		return nil, err
	}

	alpha := sin / (2 * butterworthQ)
	b0 := (1 + cos) / 2

	f := &Biquad{}
	f.normalize(b0, -2*b0, b0, 1+alpha, -2*cos, 1-alpha)
	return f, nil
}

func biquadOmega(sampleRate, cutoff float64) (sin, cos float64, err error) {
	if sampleRate <= 0 {
		return 0, 0, fmt.Errorf("sample rate %v Hz: %w", sampleRate, ErrInvalidFrequency)
	}

	nyquist := sampleRate / 2
	if cutoff <= 0 || cutoff >= nyquist {
		return 0, 0, fmt.Errorf("cutoff %v Hz not in (0, %v): %w", cutoff, nyquist, ErrInvalidFrequency)
	}

	omega := 2 * math.Pi * cutoff / sampleRate
	return math.Sin(omega), math.Cos(omega), nil
}

func (f *Biquad) normalize(b0, b1, b2, a0, a1, a2 float64) {
	inv := 1 / a0
	f.b0 = b0 * inv
	f.b1 = b1 * inv
	f.b2 = b2 * inv
	f.a1 = a1 * inv
	f.a2 = a2 * inv
}

// Process runs one sample through the section.
func (f *Biquad) Process(x float32) float32 {
	x0 := float64(x)

	y0 := f.b0*x0 + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2

	f.x2 = f.x1
	f.x1 = x0
	f.y2 = f.y1
	f.y1 = y0

	return float32(y0)
}

// Reset zeroes the delay state. Call it between independent streams so
// no tail from a previous call leaks into the next.
func (f *Biquad) Reset() {
	f.x1, f.x2 = 0, 0
	f.y1, f.y2 = 0, 0
}
