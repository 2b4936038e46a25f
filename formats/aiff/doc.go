// SPDX-License-Identifier: EPL-2.0

/*
Package aiff decodes AIFF (Audio Interchange File Format) files.

The decoder wraps github.com/go-audio/aiff and exposes the result as an
audio.Source. Only 16-bit PCM is accepted; other bit depths return
ErrOnlyPCM16bitSupported. If the input reader does not seek, the whole
file is buffered in memory first.

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		// handle ErrNotAiffFile / ErrOnlyPCM16bitSupported
	}
	defer src.Close()
*/
package aiff
