// SPDX-License-Identifier: EPL-2.0

// Package tone generates deterministic test and signaling tones for the
// telephony path: plain sine tones, DTMF digit pairs, and low-level
// comfort noise for silence periods.
//
// Generation is a pure function of the Config, so identical parameters
// always yield bit-identical sample sequences, which matters both for test
// reproducibility and for serving the same fallback tone to many calls.
//
// # Batch and Streaming
//
// Generate returns a complete buffer:
//
//	samples, err := tone.Generate(tone.Config{
//	    Frequency: 440, Amplitude: 0.5, SampleRate: 8000, Duration: 1,
//	})
//
// NewSource returns the same tone as a streaming audio.Source, which
// lets a tone feed the soft limiter and G.711 encoder like any decoded
// file. It is the fallback path when file-based audio fails:
//
//	src, err := tone.NewSource(cfg)
//	n, err := src.ReadSamples(buf)
//
// DTMF covers the 16 dialing digits per ITU-T Q.23, and ComfortNoise
// produces reproducible low-amplitude noise from a fixed-seed LCG.
package tone
