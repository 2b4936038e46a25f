// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
)

// Limiter is the final ceiling before encoding. Samples below the
// threshold pass unchanged; above it the magnitude saturates
// exponentially toward 1.0:
//
//	y = t + (1-t) * (1 - exp(-(|x|-t)/(1-t)))
//
// The curve meets the identity line at the threshold with slope 1, so
// there is no discontinuity, and the output magnitude never exceeds
// 1.0 for any finite input.
type Limiter struct {
	threshold float32
}

// NewLimiter validates the threshold against (0, 1).
func NewLimiter(threshold float32) (*Limiter, error) {
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("limiter threshold %v not in (0,1): %w", threshold, ErrInvalidConfig)
	}

	return &Limiter{threshold: threshold}, nil
}

// Process limits one sample. NaN input becomes silence.
func (l *Limiter) Process(x float32) float32 {
	if x != x { // NaN
		return 0
	}

	mag := x
	if mag < 0 {
		mag = -mag
	}
	if mag <= l.threshold {
		return x
	}

	span := 1 - l.threshold
	y := l.threshold + span*float32(1-math.Exp(float64(-(mag-l.threshold)/span)))

	if x < 0 {
		return -y
	}
	return y
}

// ProcessBuf limits a buffer in place.
func (l *Limiter) ProcessBuf(buf []float32) {
	for i, x := range buf {
		buf[i] = l.Process(x)
	}
}
