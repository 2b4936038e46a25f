// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/ik5/narrowband/dsp"
)

// File is the on-disk TOML schema for the conditioning pipeline. Only
// the audio processing section lives here; SIP, RTP and supervision
// settings belong to the surrounding application.
type File struct {
	Processing Processing `toml:"processing"`
}

// Processing mirrors dsp.Config plus the three band records.
type Processing struct {
	PreemphasisAlpha     float32 `toml:"preemphasis_alpha"`
	BandpassLowFreq      float32 `toml:"bandpass_low_freq"`
	BandpassHighFreq     float32 `toml:"bandpass_high_freq"`
	BandSplitFreq1       float32 `toml:"band_split_freq_1"`
	BandSplitFreq2       float32 `toml:"band_split_freq_2"`
	NoiseGateThreshold   float32 `toml:"noise_gate_threshold"`
	NoiseGateRatio       float32 `toml:"noise_gate_ratio"`
	SoftLimiterThreshold float32 `toml:"soft_limiter_threshold"`

	Band1 Band `toml:"band1_compressor"`
	Band2 Band `toml:"band2_compressor"`
	Band3 Band `toml:"band3_compressor"`
}

// Band mirrors dsp.BandConfig.
type Band struct {
	TargetLevel     float32 `toml:"target_level"`
	AttackTime      float32 `toml:"attack_time"`
	ReleaseTime     float32 `toml:"release_time"`
	Ratio           float32 `toml:"ratio"`
	ThresholdFactor float32 `toml:"threshold_factor"`
	KneeWidth       float32 `toml:"knee_width"`
	Enabled         bool    `toml:"enabled"`
}

// Default returns a File carrying the tuned dsp defaults.
func Default() File {
	cfg := dsp.DefaultConfig()
	bands := dsp.DefaultBands()

	return File{
		Processing: Processing{
			PreemphasisAlpha:     cfg.PreemphasisAlpha,
			BandpassLowFreq:      cfg.BandpassLow,
			BandpassHighFreq:     cfg.BandpassHigh,
			BandSplitFreq1:       cfg.SplitLow,
			BandSplitFreq2:       cfg.SplitHigh,
			NoiseGateThreshold:   cfg.NoiseGateThreshold,
			NoiseGateRatio:       cfg.NoiseGateRatio,
			SoftLimiterThreshold: cfg.LimiterThreshold,
			Band1:                bandFromDSP(bands[0]),
			Band2:                bandFromDSP(bands[1]),
			Band3:                bandFromDSP(bands[2]),
		},
	}
}

func bandFromDSP(b dsp.BandConfig) Band {
	return Band{
		TargetLevel:     b.TargetLevel,
		AttackTime:      b.Attack,
		ReleaseTime:     b.Release,
		Ratio:           b.Ratio,
		ThresholdFactor: b.ThresholdFactor,
		KneeWidth:       b.KneeWidth,
		Enabled:         b.Enabled,
	}
}

func (b Band) toDSP() dsp.BandConfig {
	return dsp.BandConfig{
		TargetLevel:     b.TargetLevel,
		Attack:          b.AttackTime,
		Release:         b.ReleaseTime,
		Ratio:           b.Ratio,
		ThresholdFactor: b.ThresholdFactor,
		KneeWidth:       b.KneeWidth,
		Enabled:         b.Enabled,
	}
}

// Pipeline converts the file form into the dsp configuration pair.
func (f File) Pipeline() (dsp.Config, [3]dsp.BandConfig) {
	p := f.Processing
	cfg := dsp.Config{
		PreemphasisAlpha:   p.PreemphasisAlpha,
		BandpassLow:        p.BandpassLowFreq,
		BandpassHigh:       p.BandpassHighFreq,
		SplitLow:           p.BandSplitFreq1,
		SplitHigh:          p.BandSplitFreq2,
		NoiseGateThreshold: p.NoiseGateThreshold,
		NoiseGateRatio:     p.NoiseGateRatio,
		LimiterThreshold:   p.SoftLimiterThreshold,
	}

	return cfg, [3]dsp.BandConfig{p.Band1.toDSP(), p.Band2.toDSP(), p.Band3.toDSP()}
}

// Validate checks the whole file against sampleRate using the dsp
// validation rules. An invalid file never reaches a pipeline.
func (f File) Validate(sampleRate int) error {
	cfg, bands := f.Pipeline()

	if err := cfg.Validate(sampleRate); err != nil {
		return fmt.Errorf("processing: %w", err)
	}
	for i, b := range bands {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("band %d: %w", i+1, err)
		}
	}

	return nil
}

// Load reads and validates a TOML configuration file. When the file
// does not exist, the defaults are written to path and returned, so a
// fresh deployment starts with a tuned, editable config.
func Load(path string) (File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.WithField("path", path).Warn("configuration file missing, writing defaults")

		f := Default()
		if err := f.Save(path); err != nil {
			return File{}, err
		}
		return f, nil
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := f.Validate(dsp.TelephonyRate); err != nil {
		return File{}, fmt.Errorf("validating %s: %w", path, err)
	}

	return f, nil
}

// Save writes the configuration as TOML, creating parent directories as
// needed.
func (f File) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	if err := toml.NewEncoder(out).Encode(f); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}
