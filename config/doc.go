// SPDX-License-Identifier: EPL-2.0

// Package config loads and saves the conditioning pipeline settings as
// TOML. It is the bridge between an operator-edited file and the
// immutable dsp.Config/dsp.BandConfig values the pipeline is built
// from.
//
// A minimal file looks like:
//
//	[processing]
//	preemphasis_alpha = 0.95
//	bandpass_low_freq = 300.0
//	bandpass_high_freq = 3400.0
//	band_split_freq_1 = 800.0
//	band_split_freq_2 = 2500.0
//	noise_gate_threshold = 0.01
//	noise_gate_ratio = 0.1
//	soft_limiter_threshold = 0.9
//
//	[processing.band1_compressor]
//	target_level = 0.4
//	attack_time = 0.01
//	release_time = 0.15
//	ratio = 4.0
//	threshold_factor = 0.6
//	knee_width = 0.15
//	enabled = true
//
// (band2_compressor and band3_compressor follow the same shape.)
//
// Load validates the frequency-ordering invariant and all parameter
// ranges before returning; an invalid file is rejected up front so no
// pipeline is ever built from partial configuration. A missing file is
// replaced with tuned defaults and a warning, which keeps fresh
// deployments runnable.
package config
