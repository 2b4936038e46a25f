// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the telephony audio conditioning chain: it
// turns full-band program material into band-limited, dynamically
// compressed, noise-gated audio that survives narrowband G.711
// transmission.
//
// # Pipeline
//
// The full chain, in processing order:
//
//	preemphasis -> bandpass (300-3400 Hz) -> 3-way crossover
//	    -> per-band compressor (envelope, gate, soft knee)
//	    -> recombine -> soft limiter
//
// Build it from a validated Config and three BandConfig records:
//
//	pipe, err := dsp.NewPipeline(dsp.TelephonyRate, dsp.DefaultConfig(), dsp.DefaultBands())
//	if err != nil {
//	    // configuration was rejected before any audio was touched
//	}
//	pipe.Process(buf) // conditions buf in place
//
// Or wrap a mono Source to get a streaming stage:
//
//	proc, err := dsp.NewProcessor(monoSource, cfg, bands)
//	n, err := proc.ReadSamples(buf)
//
// # State Ownership
//
// Every filter and compressor owns its state exclusively. A Pipeline
// serves exactly one stream at a time; concurrent calls build one
// Pipeline each and share only the immutable configuration, so no
// locking exists anywhere in the package. Reset clears all state for
// reuse on a new stream.
//
// # Numeric Safety
//
// Per-sample anomalies (NaN or infinite values from unstable input)
// never abort a stream. The offending sample or gain is replaced with a
// safe value, the event is counted, and the first occurrence per stream
// is logged. Configuration problems, in contrast, fail construction up
// front: frequency ordering must satisfy
//
//	0 < BandpassLow < SplitLow < SplitHigh < BandpassHigh < Nyquist
//
// and corner frequencies at or above Nyquist are rejected with
// ErrInvalidFrequency before any audio is processed.
//
// # Crossover Reconstruction
//
// The Splitter uses complementary low-pass pairs, so splitting and
// recombining with unity-ratio compressors reproduces the input
// exactly. This is the invariant that keeps the three-band chain
// transparent when compression is dialed back.
package dsp
