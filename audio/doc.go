// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the conditioning
// pipeline is built from.
//
// This package contains the building blocks shared by every stage:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel folding
//   - Registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines. The telephony
// chain is typically:
//
//	decoder -> MonoMixer -> Resampler (8 kHz) -> dsp.Processor -> g711
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic
// interpolation, with a low-pass anti-aliasing stage when downsampling:
//
//	resampler, err := audio.NewResampler(source, 8000)
//	if err != nil {
//	    // source or destination rate was not positive
//	}
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// NewResampler rejects non-positive rates with ErrInvalidRate. A
// same-rate resampler is a valid pass-through.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Narrowband telephony audio is always mono, so decoded streams pass
// through a MonoMixer before resampling.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
