// SPDX-License-Identifier: EPL-2.0

package narrowband

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/narrowband/audio"
	"github.com/ik5/narrowband/dsp"
	"github.com/ik5/narrowband/g711"
	"github.com/ik5/narrowband/tone"
)

// Stats summarizes a finished conditioning run for logging and call
// statistics.
type Stats struct {
	// Samples is the number of encoded samples (== payload bytes, one
	// byte per sample in G.711).
	Samples int
	// Duration is the effective playback time at the telephony rate.
	Duration time.Duration
	// Anomalies counts non-finite samples recovered during processing.
	// A non-zero value is worth logging; a large value means the source
	// material is pathological.
	Anomalies uint64
}

// ConditionToG711 runs the complete telephony chain over a decoded
// source and returns an RTP-ready payload:
//
//	src -> mono downmix -> resample (8 kHz) -> preemphasis -> bandpass
//	    -> 3-band compression -> soft limiter -> G.711
//
// The source may have any channel count and sample rate. Configuration
// errors abort before any audio is processed; per-sample numeric
// anomalies never abort the stream and are reported in Stats.
//
// bufferSize controls the streaming chunk size; 4096 is a reasonable
// default.
func ConditionToG711(src audio.Source, cfg dsp.Config, bands [3]dsp.BandConfig, codec g711.Codec, bufferSize int) ([]byte, Stats, error) {
	mono := audio.NewMonoMixer(src)

	resampler, err := audio.NewResampler(mono, dsp.TelephonyRate)
	if err != nil {
		return nil, Stats{}, err
	}

	proc, err := dsp.NewProcessor(resampler, cfg, bands)
	if err != nil {
		return nil, Stats{}, err
	}

	payload := make([]byte, 0, dsp.TelephonyRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := proc.ReadSamples(buf)
		if n > 0 {
			payload = g711.Append(payload, codec, buf[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, Stats{}, fmt.Errorf("%w", err)
		}
	}

	return payload, payloadStats(len(payload), proc.Pipeline().Anomalies()), nil
}

// ToneToG711 generates a test tone and encodes it through the soft
// limiter only, bypassing the filter/compressor chain. This is the path
// used when an undistorted fallback tone is wanted. The tone sample rate
// must be the telephony rate for the payload to be playable on a G.711
// call.
func ToneToG711(cfg tone.Config, limiterThreshold float32, codec g711.Codec) ([]byte, Stats, error) {
	samples, err := tone.Generate(cfg)
	if err != nil {
		return nil, Stats{}, err
	}

	limiter, err := dsp.NewLimiter(limiterThreshold)
	if err != nil {
		return nil, Stats{}, err
	}
	limiter.ProcessBuf(samples)

	payload := g711.Encode(codec, samples)
	return payload, payloadStats(len(payload), 0), nil
}

func payloadStats(samples int, anomalies uint64) Stats {
	return Stats{
		Samples:   samples,
		Duration:  time.Duration(samples) * time.Second / dsp.TelephonyRate,
		Anomalies: anomalies,
	}
}
