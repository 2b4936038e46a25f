// SPDX-License-Identifier: EPL-2.0

/*
Package wav decodes and writes RIFF/WAVE files.

The decoder is built on github.com/go-audio/wav and exposes the result
as an audio.Source, so a WAV file can feed the resampler and the
conditioning pipeline directly:

	f, _ := os.Open("prompt.wav")
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		// handle ErrNotWavFile / ErrOnlyPCM16bitSupported
	}
	defer src.Close()

Only 16-bit PCM is accepted; compressed or float WAV variants return
ErrOnlyPCM16bitSupported. If the input reader does not seek, the whole
file is buffered in memory first.

WriteWAV16 goes the other way: it serializes mono int16 PCM as a
canonical 44-byte-header WAV, which is handy for dumping pipeline
output next to the G.711 payload when debugging.
*/
package wav
