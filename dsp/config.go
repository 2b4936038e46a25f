// SPDX-License-Identifier: EPL-2.0

package dsp

import "fmt"

// TelephonyRate is the narrowband telephony sample rate in Hz. The
// conditioning pipeline accepts other rates, but G.711 transport always
// runs at 8 kHz.
const TelephonyRate = 8000

// Config holds the global parameters of the conditioning pipeline.
// Frequencies are in Hz, thresholds and ratios are linear amplitude
// values in [0,1]. A Config is immutable once validated and may be
// shared read-only by any number of pipeline instances.
type Config struct {
	// PreemphasisAlpha is the coefficient of the high-frequency boost
	// filter y[n] = x[n] - alpha*x[n-1]. Must be in [0, 1).
	PreemphasisAlpha float32

	// BandpassLow and BandpassHigh bound the voice band. Telephony uses
	// 300-3400 Hz.
	BandpassLow  float32
	BandpassHigh float32

	// SplitLow and SplitHigh are the crossover points dividing the
	// voice band into the three compressor bands. The ordering
	// invariant 0 < BandpassLow < SplitLow < SplitHigh < BandpassHigh
	// must hold.
	SplitLow  float32
	SplitHigh float32

	// NoiseGateThreshold is the envelope level below which a band is
	// attenuated by NoiseGateRatio.
	NoiseGateThreshold float32
	NoiseGateRatio     float32

	// LimiterThreshold is the level above which the final soft limiter
	// starts saturating toward ±1.0. Must be in (0, 1).
	LimiterThreshold float32
}

// DefaultConfig returns the tuned telephony defaults.
func DefaultConfig() Config {
	return Config{
		PreemphasisAlpha:   0.95,
		BandpassLow:        300.0,
		BandpassHigh:       3400.0,
		SplitLow:           800.0,
		SplitHigh:          2500.0,
		NoiseGateThreshold: 0.01, // -40 dB
		NoiseGateRatio:     0.1,
		LimiterThreshold:   0.9,
	}
}

// Validate checks the configuration against sampleRate. Ordering and
// range violations return an error wrapping ErrInvalidConfig; corner
// frequencies at or above Nyquist wrap ErrInvalidFrequency. A pipeline
// is never built from an invalid Config.
func (c Config) Validate(sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate %d Hz: %w", sampleRate, ErrInvalidConfig)
	}

	if c.PreemphasisAlpha < 0 || c.PreemphasisAlpha >= 1 {
		return fmt.Errorf("preemphasis alpha %v not in [0,1): %w", c.PreemphasisAlpha, ErrInvalidConfig)
	}

	// Frequency ordering invariant:
	// 0 < BandpassLow < SplitLow < SplitHigh < BandpassHigh
	if c.BandpassLow <= 0 {
		return fmt.Errorf("bandpass low %v Hz must be positive: %w", c.BandpassLow, ErrInvalidConfig)
	}
	if c.SplitLow <= c.BandpassLow {
		return fmt.Errorf("split low %v Hz below bandpass low %v Hz: %w",
			c.SplitLow, c.BandpassLow, ErrInvalidConfig)
	}
	if c.SplitHigh <= c.SplitLow {
		return fmt.Errorf("split high %v Hz below split low %v Hz: %w",
			c.SplitHigh, c.SplitLow, ErrInvalidConfig)
	}
	if c.BandpassHigh <= c.SplitHigh {
		return fmt.Errorf("bandpass high %v Hz below split high %v Hz: %w",
			c.BandpassHigh, c.SplitHigh, ErrInvalidConfig)
	}

	nyquist := float32(sampleRate) / 2
	if c.BandpassHigh >= nyquist {
		return fmt.Errorf("bandpass high %v Hz at or above Nyquist %v Hz: %w",
			c.BandpassHigh, nyquist, ErrInvalidFrequency)
	}

	if c.NoiseGateThreshold < 0 || c.NoiseGateThreshold >= 1 {
		return fmt.Errorf("noise gate threshold %v not in [0,1): %w", c.NoiseGateThreshold, ErrInvalidConfig)
	}
	if c.NoiseGateRatio < 0 || c.NoiseGateRatio > 1 {
		return fmt.Errorf("noise gate ratio %v not in [0,1]: %w", c.NoiseGateRatio, ErrInvalidConfig)
	}
	if c.LimiterThreshold <= 0 || c.LimiterThreshold >= 1 {
		return fmt.Errorf("limiter threshold %v not in (0,1): %w", c.LimiterThreshold, ErrInvalidConfig)
	}

	return nil
}

// BandConfig holds the per-band compressor parameters. Attack and
// Release are in seconds; TargetLevel, ThresholdFactor and KneeWidth
// are linear amplitude values.
type BandConfig struct {
	TargetLevel     float32
	Attack          float32
	Release         float32
	Ratio           float32
	ThresholdFactor float32
	KneeWidth       float32
	Enabled         bool
}

// DefaultBands returns the three tuned band records: an aggressive
// low-mid band for bass control, a gentle mid band preserving speech,
// and a fast high-mid band for transient and presence control.
func DefaultBands() [3]BandConfig {
	return [3]BandConfig{
		// Low-mid (bandpass low .. split low)
		{
			TargetLevel:     0.4,
			Attack:          0.010,
			Release:         0.15,
			Ratio:           4.0,
			ThresholdFactor: 0.6,
			KneeWidth:       0.15,
			Enabled:         true,
		},
		// Mid (split low .. split high)
		{
			TargetLevel:     0.6,
			Attack:          0.020,
			Release:         0.08,
			Ratio:           2.5,
			ThresholdFactor: 0.75,
			KneeWidth:       0.2,
			Enabled:         true,
		},
		// High-mid (split high .. bandpass high)
		{
			TargetLevel:     0.7,
			Attack:          0.005,
			Release:         0.05,
			Ratio:           2.0,
			ThresholdFactor: 0.8,
			KneeWidth:       0.1,
			Enabled:         true,
		},
	}
}

// Validate checks a band record's parameter ranges.
func (b BandConfig) Validate() error {
	if b.TargetLevel <= 0 || b.TargetLevel > 1 {
		return fmt.Errorf("target level %v not in (0,1]: %w", b.TargetLevel, ErrInvalidConfig)
	}
	if b.Attack <= 0 || b.Attack > 1 {
		return fmt.Errorf("attack time %vs not in (0,1]: %w", b.Attack, ErrInvalidConfig)
	}
	if b.Release <= 0 || b.Release > 5 {
		return fmt.Errorf("release time %vs not in (0,5]: %w", b.Release, ErrInvalidConfig)
	}
	if b.Ratio < 1 || b.Ratio > 20 {
		return fmt.Errorf("compression ratio %v not in [1,20]: %w", b.Ratio, ErrInvalidConfig)
	}
	if b.ThresholdFactor < 0 || b.ThresholdFactor > 1 {
		return fmt.Errorf("threshold factor %v not in [0,1]: %w", b.ThresholdFactor, ErrInvalidConfig)
	}
	if b.KneeWidth < 0 || b.KneeWidth > 1 {
		return fmt.Errorf("knee width %v not in [0,1]: %w", b.KneeWidth, ErrInvalidConfig)
	}

	return nil
}
