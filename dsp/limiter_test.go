// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"testing"
)

func mustLimiter(t *testing.T, threshold float32) *Limiter {
	t.Helper()

	l, err := NewLimiter(threshold)
	if err != nil {
		t.Fatalf("NewLimiter(%v): %v", threshold, err)
	}
	return l
}

func TestLimiterPassesBelowThreshold(t *testing.T) {
	t.Parallel()

	l := mustLimiter(t, 0.9)

	for _, x := range []float32{0, 0.1, -0.5, 0.9, -0.9} {
		if got := l.Process(x); got != x {
			t.Errorf("Process(%v) = %v, want identity", x, got)
		}
	}
}

func TestLimiterNeverReachesFullScale(t *testing.T) {
	t.Parallel()

	l := mustLimiter(t, 0.9)

	for x := float32(0.91); x <= 10.0; x += 0.05 {
		got := l.Process(x)
		if got > 1.0 {
			t.Fatalf("Process(%v) = %v, ceiling breached", x, got)
		}
		if got <= 0.9 {
			t.Fatalf("Process(%v) = %v, fell below threshold", x, got)
		}
	}
}

func TestLimiterMonotone(t *testing.T) {
	t.Parallel()

	l := mustLimiter(t, 0.9)

	prev := l.Process(0.9)
	for x := float32(0.901); x <= 5.0; x += 0.01 {
		got := l.Process(x)
		if got < prev {
			t.Fatalf("Process(%v) = %v below previous %v", x, got, prev)
		}
		prev = got
	}
}

func TestLimiterContinuousAtThreshold(t *testing.T) {
	t.Parallel()

	l := mustLimiter(t, 0.9)

	below := l.Process(0.9)
	above := l.Process(0.9001)

	if math.Abs(float64(above-below)) > 1e-3 {
		t.Errorf("jump at threshold: %v vs %v", below, above)
	}
}

func TestLimiterSymmetric(t *testing.T) {
	t.Parallel()

	l := mustLimiter(t, 0.9)

	for _, x := range []float32{0.5, 0.95, 1.5, 3.0} {
		pos := l.Process(x)
		neg := l.Process(-x)
		if pos != -neg {
			t.Errorf("asymmetric: Process(%v)=%v, Process(%v)=%v", x, pos, -x, neg)
		}
	}
}

func TestLimiterNaNBecomesSilence(t *testing.T) {
	t.Parallel()

	l := mustLimiter(t, 0.9)

	if got := l.Process(float32(math.NaN())); got != 0 {
		t.Errorf("NaN produced %v, want 0", got)
	}
}

func TestLimiterInvalidThreshold(t *testing.T) {
	t.Parallel()

	for _, threshold := range []float32{0, 1, -0.5, 1.5} {
		if _, err := NewLimiter(threshold); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("threshold %v: got %v, want ErrInvalidConfig", threshold, err)
		}
	}
}

func TestLimiterProcessBuf(t *testing.T) {
	t.Parallel()

	l := mustLimiter(t, 0.9)

	buf := []float32{0.5, 2.0, -3.0, float32(math.NaN())}
	l.ProcessBuf(buf)

	if buf[0] != 0.5 {
		t.Errorf("buf[0] = %v, want 0.5", buf[0])
	}
	if buf[1] > 1.0 || buf[1] <= 0.9 {
		t.Errorf("buf[1] = %v, want in (0.9, 1.0]", buf[1])
	}
	if buf[2] < -1.0 || buf[2] >= -0.9 {
		t.Errorf("buf[2] = %v, want in [-1.0, -0.9)", buf[2])
	}
	if buf[3] != 0 {
		t.Errorf("buf[3] = %v, want 0", buf[3])
	}
}
