// SPDX-License-Identifier: EPL-2.0

package dsp

import "fmt"

// Bandpass restricts the signal to the voice band. It cascades a
// Butterworth high-pass at the low corner with a Butterworth low-pass
// at the high corner, giving at least 12 dB/octave attenuation outside
// [low, high].
type Bandpass struct {
	hp *Biquad
	lp *Biquad
}

// NewBandpass builds the cascade. Corners must satisfy
// 0 < low < high < Nyquist; violations return ErrInvalidFrequency.
func NewBandpass(sampleRate float64, low, high float32) (*Bandpass, error) {
	if low <= 0 || high <= low {
		return nil, fmt.Errorf("bandpass corners %v..%v Hz: %w", low, high, ErrInvalidFrequency)
	}

	hp, err := NewHighpass(sampleRate, float64(low))
	if err != nil {
		return nil, fmt.Errorf("bandpass high-pass section: %w", err)
	}

	lp, err := NewLowpass(sampleRate, float64(high))
	if err != nil {
		return nil, fmt.Errorf("bandpass low-pass section: %w", err)
	}

	return &Bandpass{hp: hp, lp: lp}, nil
}

// Process runs one sample through both sections.
func (b *Bandpass) Process(x float32) float32 {
	return b.lp.Process(b.hp.Process(x))
}

// Reset zeroes both sections.
func (b *Bandpass) Reset() {
	b.hp.Reset()
	b.lp.Reset()
}
