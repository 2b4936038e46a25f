// SPDX-License-Identifier: EPL-2.0

/*
Package vorbis decodes Ogg Vorbis audio.

The decoder wraps github.com/jfreymuth/oggvorbis and exposes the stream
as an audio.Source. Vorbis decodes natively to float32, so no PCM
conversion happens here; samples are passed through interleaved as the
library produces them.

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		// not an Ogg Vorbis stream
	}
	defer src.Close()

ReadSamples rounds the destination length down to a whole number of
frames; a buffer smaller than one frame is rejected with
audio.ErrInvalidDstSize.
*/
package vorbis
