// SPDX-License-Identifier: EPL-2.0

package narrowband

import (
	"io"

	"github.com/ik5/narrowband/audio"
	"github.com/ik5/narrowband/utils"
)

// ResampleToMono16 resamples a source to targetRate, downmixes it to
// mono and collects the result as 16-bit PCM. It is the plain
// transcoding path: no filtering, compression or companding is applied.
// Use ConditionToG711 for the full telephony chain.
//
// bufferSize controls the streaming chunk size; 4096 is a reasonable
// default.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(src)

	resampler, err := audio.NewResampler(mono, targetRate)
	if err != nil {
		return nil, 0, err
	}

	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := resampler.ReadSamples(buf)
		for _, sample := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(sample))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, 0, err
		}
	}

	return pcm16, targetRate, nil
}
