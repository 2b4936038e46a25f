// SPDX-License-Identifier: EPL-2.0

/*
Package mp3 decodes MPEG-1 Layer III audio.

The decoder wraps github.com/hajimehoshi/go-mp3 and exposes the stream
as an audio.Source. go-mp3 always produces stereo 16-bit PCM, so the
source reports two channels regardless of the file's original layout;
feed it through audio.NewMonoMixer before telephony processing:

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		// not an MP3, or a corrupt stream
	}
	defer src.Close()

	mono := audio.NewMonoMixer(src)
*/
package mp3
