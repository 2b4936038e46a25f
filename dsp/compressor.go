// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
)

// envelopeFloor avoids division by a vanishing envelope at silence.
const envelopeFloor = 1e-10

// Compressor is a single-band dynamic range compressor with an
// attack/release envelope follower, a noise gate and a soft-knee
// gain curve. One instance serves one band of one stream; the envelope
// is the only mutable state and is never shared.
type Compressor struct {
	cfg BandConfig

	attackCoeff  float32
	releaseCoeff float32

	gateThreshold float32
	gateRatio     float32

	// Derived once from cfg.
	threshold float32 // ThresholdFactor * TargetLevel
	makeup    float32 // below-threshold gain toward TargetLevel, capped

	envelope  float32
	anomalies uint64
}

// NewCompressor builds a band compressor. The gate parameters are
// process-wide (shared by all three bands) and are validated by
// Config.Validate; cfg is validated here.
func NewCompressor(sampleRate float64, cfg BandConfig, gateThreshold, gateRatio float32) (*Compressor, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("compressor sample rate %v Hz: %w", sampleRate, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("band config: %w", err)
	}

	threshold := cfg.ThresholdFactor * cfg.TargetLevel
	makeup := cfg.TargetLevel / (threshold + envelopeFloor)
	if makeup > 1.2 {
		makeup = 1.2
	}

	return &Compressor{
		cfg:           cfg,
		attackCoeff:   smoothingCoeff(cfg.Attack, sampleRate),
		releaseCoeff:  smoothingCoeff(cfg.Release, sampleRate),
		gateThreshold: gateThreshold,
		gateRatio:     gateRatio,
		threshold:     threshold,
		makeup:        makeup,
	}, nil
}

// smoothingCoeff converts a time constant in seconds to the per-sample
// envelope coefficient exp(-1/(t*rate)).
func smoothingCoeff(seconds float32, sampleRate float64) float32 {
	return float32(math.Exp(-1 / (float64(seconds) * sampleRate)))
}

// Process runs one sample through the compressor. A disabled band is a
// bypass: the sample passes through unmodified but still contributes to
// the recombined sum. Non-finite input or gain never aborts the stream;
// the sample is recovered to a safe value and counted.
func (c *Compressor) Process(x float32) float32 {
	if !c.cfg.Enabled {
		return x
	}

	if !isFinite(x) {
		c.anomalies++
		return 0
	}

	level := x
	if level < 0 {
		level = -level
	}

	// Envelope follower: rise with the attack constant, fall with the
	// release constant.
	if level > c.envelope {
		c.envelope = c.attackCoeff*c.envelope + (1-c.attackCoeff)*level
	} else {
		c.envelope = c.releaseCoeff*c.envelope + (1-c.releaseCoeff)*level
	}
	if !(c.envelope >= 0) { // catches NaN as well as negative drift
		c.anomalies++
		c.envelope = 0
	}

	// Noise gate rides the envelope, not the raw sample, so a single
	// zero crossing does not chatter the gate.
	if c.envelope < c.gateThreshold {
		x *= c.gateRatio
	}

	var gain float32
	if c.envelope > c.threshold {
		excess := c.envelope - c.threshold

		// Soft knee: the effective ratio blends quadratically from 1:1
		// at the threshold to the full ratio at the knee edge.
		ratio := c.cfg.Ratio
		if c.cfg.KneeWidth > 0 && excess < c.cfg.KneeWidth {
			blend := excess / c.cfg.KneeWidth
			ratio = 1 + (c.cfg.Ratio-1)*blend*blend
		}

		compressed := c.threshold + excess/ratio
		if c.envelope > envelopeFloor {
			gain = compressed / c.envelope
		} else {
			gain = 1
		}
	} else {
		// Quiet signal: gentle makeup toward the band target level.
		gain = c.makeup
	}

	if !isFinite(gain) {
		c.anomalies++
		return x
	}

	if gain < 0.1 {
		gain = 0.1
	} else if gain > 2 {
		gain = 2
	}

	return x * gain
}

// Envelope exposes the current envelope level, mainly for tests and
// metering.
func (c *Compressor) Envelope() float32 { return c.envelope }

// Anomalies reports how many non-finite samples or gains this band
// recovered from since the last Reset.
func (c *Compressor) Anomalies() uint64 { return c.anomalies }

// Reset discards the stream state so the instance can serve a new
// independent stream. Loudness history never leaks between calls.
func (c *Compressor) Reset() {
	c.envelope = 0
	c.anomalies = 0
}
