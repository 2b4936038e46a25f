// SPDX-License-Identifier: EPL-2.0

/*
Package narrowband conditions arbitrary audio for telephony playback.

A decoded stream of any rate and channel layout is downmixed to mono,
resampled to 8 kHz, spectrally shaped to the 300-3400 Hz voiceband,
compressed in three bands, soft-limited and companded to G.711, ready
to frame as RTP payload:

	f, _ := os.Open("prompt.wav")
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	payload, stats, err := narrowband.ConditionToG711(
		src, dsp.DefaultConfig(), dsp.DefaultBands(), g711.PCMU, 4096)

The sub-packages compose through the audio.Source interface and can be
used on their own:

  - audio: the Source interface, resampler, mono mixer and decoder
    registry
  - formats/wav, formats/mp3, formats/vorbis, formats/aiff: file
    decoders
  - dsp: the conditioning pipeline (preemphasis, bandpass, three-band
    compression, soft limiter)
  - g711: bit-exact mu-law and A-law companding
  - tone: sine, DTMF and comfort noise generators
  - config: TOML configuration for the pipeline parameters
*/
package narrowband
