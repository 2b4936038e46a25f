// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"fmt"
	"math"
)

// Config describes a generated tone. Generation is a pure function of
// the config, so the same Config always yields the same samples.
type Config struct {
	// Frequency in Hz. Must be positive and below Nyquist.
	Frequency float64
	// Amplitude in (0, 1].
	Amplitude float64
	// SampleRate in Hz.
	SampleRate int
	// Duration of the generated signal in seconds.
	Duration float64
}

// DefaultConfig is a 440 Hz (A4) tone at half amplitude, 30 seconds at
// the telephony rate.
func DefaultConfig() Config {
	return Config{
		Frequency:  440.0,
		Amplitude:  0.5,
		SampleRate: 8000,
		Duration:   30.0,
	}
}

// Validate checks the config ranges.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d Hz: %w", c.SampleRate, ErrInvalidTone)
	}
	if c.Frequency <= 0 || c.Frequency >= float64(c.SampleRate)/2 {
		return fmt.Errorf("frequency %v Hz not below Nyquist: %w", c.Frequency, ErrInvalidTone)
	}
	if c.Amplitude <= 0 || c.Amplitude > 1 {
		return fmt.Errorf("amplitude %v not in (0,1]: %w", c.Amplitude, ErrInvalidTone)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration %vs must be positive: %w", c.Duration, ErrInvalidTone)
	}

	return nil
}

func (c Config) totalSamples() int {
	return int(float64(c.SampleRate) * c.Duration)
}

// Generate produces amplitude*sin(2*pi*f*n/rate) for
// n = 0..duration*rate. Bit-for-bit deterministic across runs.
func Generate(cfg Config) ([]float32, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	samples := make([]float32, cfg.totalSamples())
	fillSine(samples, cfg, 0)

	return samples, nil
}

// fillSine writes amplitude*sin(2*pi*f*n/rate) into dst starting at
// absolute sample index offset. Shared by Generate and the streaming
// Source so both produce identical sequences.
func fillSine(dst []float32, cfg Config, offset int) {
	angular := 2 * math.Pi * cfg.Frequency
	for i := range dst {
		t := float64(offset+i) / float64(cfg.SampleRate)
		dst[i] = float32(cfg.Amplitude * math.Sin(angular*t))
	}
}

// dtmfPairs maps each DTMF digit to its low/high frequency pair per
// ITU-T Q.23.
var dtmfPairs = map[byte][2]float64{
	'1': {697, 1209}, '2': {697, 1336}, '3': {697, 1477}, 'A': {697, 1633},
	'4': {770, 1209}, '5': {770, 1336}, '6': {770, 1477}, 'B': {770, 1633},
	'7': {852, 1209}, '8': {852, 1336}, '9': {852, 1477}, 'C': {852, 1633},
	'*': {941, 1209}, '0': {941, 1336}, '#': {941, 1477}, 'D': {941, 1633},
}

// DTMF generates the dual-tone signal for one dialing digit. The two
// sines are mixed at half weight so the pair peaks at cfg.Amplitude.
// cfg.Frequency is ignored. Unknown digits return ErrInvalidDigit.
func DTMF(digit byte, cfg Config) ([]float32, error) {
	pair, ok := dtmfPairs[digit]
	if !ok {
		return nil, fmt.Errorf("digit %q: %w", digit, ErrInvalidDigit)
	}

	// Frequency is taken from the DTMF table; validate the rest against
	// the higher of the two tones.
	high := cfg
	high.Frequency = pair[1]
	if err := high.Validate(); err != nil {
		return nil, err
	}

	total := cfg.totalSamples()
	samples := make([]float32, total)

	angularLow := 2 * math.Pi * pair[0]
	angularHigh := 2 * math.Pi * pair[1]
	for n := 0; n < total; n++ {
		t := float64(n) / float64(cfg.SampleRate)
		mixed := (math.Sin(angularLow*t) + math.Sin(angularHigh*t)) * 0.5
		samples[n] = float32(cfg.Amplitude * mixed)
	}

	return samples, nil
}

// ComfortNoise generates low-level deterministic noise for silence
// periods, using a fixed-seed linear congruential generator so output
// is reproducible. cfg.Frequency is ignored; cfg.Amplitude should be
// small (0.01 is typical).
func ComfortNoise(cfg Config) ([]float32, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d Hz: %w", cfg.SampleRate, ErrInvalidTone)
	}
	if cfg.Amplitude <= 0 || cfg.Amplitude > 1 {
		return nil, fmt.Errorf("amplitude %v not in (0,1]: %w", cfg.Amplitude, ErrInvalidTone)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration %vs must be positive: %w", cfg.Duration, ErrInvalidTone)
	}

	total := cfg.totalSamples()
	samples := make([]float32, total)

	// 32-bit LCG with the classic glibc constants; normalizing by the
	// modulus spreads values evenly across (-0.5, 0.5).
	seed := uint32(12345)
	for n := 0; n < total; n++ {
		seed = seed*1103515245 + 12345
		value := float64(seed)/float64(math.MaxUint32+1) - 0.5
		samples[n] = float32(cfg.Amplitude * value)
	}

	return samples, nil
}
