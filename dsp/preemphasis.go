// SPDX-License-Identifier: EPL-2.0

package dsp

import "fmt"

// Preemphasis is the first order high-frequency boost
// y[n] = x[n] - alpha*x[n-1]. It counteracts the spectral roll-off the
// compressors introduce later in the chain, keeping speech presence.
type Preemphasis struct {
	alpha float32
	prev  float32
}

// NewPreemphasis validates alpha against [0, 1). An alpha of 0 makes
// the filter a pass-through.
func NewPreemphasis(alpha float32) (*Preemphasis, error) {
	if alpha < 0 || alpha >= 1 {
		return nil, fmt.Errorf("preemphasis alpha %v not in [0,1): %w", alpha, ErrInvalidConfig)
	}

	return &Preemphasis{alpha: alpha}, nil
}

// Process runs one sample through the filter.
func (p *Preemphasis) Process(x float32) float32 {
	y := x - p.alpha*p.prev
	p.prev = x
	return y
}

// Reset zeroes the filter memory for a new stream.
func (p *Preemphasis) Reset() {
	p.prev = 0
}
