// SPDX-License-Identifier: EPL-2.0

package g711

import (
	"github.com/ik5/narrowband/utils"
)

// Codec selects the companding law negotiated for a call.
type Codec uint8

const (
	// PCMU is ITU-T G.711 mu-law (RTP payload type 0).
	PCMU Codec = iota
	// PCMA is ITU-T G.711 A-law (RTP payload type 8).
	PCMA
)

func (c Codec) String() string {
	switch c {
	case PCMU:
		return "PCMU"
	case PCMA:
		return "PCMA"
	}
	return "unknown"
}

const (
	muBias = 0x84 // 132
	muClip = 8159 // clip in the 14-bit domain
)

// Segment end tables from the CCITT reference implementation. Encoding
// finds the first segment whose end is >= the biased magnitude; the
// segment index becomes the exponent bits of the companded byte.
var (
	segUend = [8]int32{0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF, 0x1FFF}
	segAend = [8]int32{0x1F, 0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF}
)

func segment(v int32, ends []int32) int {
	for i, end := range ends {
		if v <= end {
			return i
		}
	}
	return len(ends)
}

// EncodeMuLaw compands one 16-bit linear PCM sample to a mu-law byte.
// Digital zero encodes to 0xFF. Negative magnitudes take the one's
// complement, so the smallest negative inputs land on the negative
// zero code 0x7F instead of collapsing onto 0xFF.
func EncodeMuLaw(pcm int16) byte {
	v := int32(pcm) >> 2 // mu-law operates on 14-bit magnitudes
	var mask int32
	if v < 0 {
		v = ^v
		mask = 0x7F
	} else {
		mask = 0xFF
	}
	if v > muClip {
		v = muClip
	}
	v += muBias >> 2

	seg := segment(v, segUend[:])
	if seg >= 8 {
		return byte(0x7F ^ mask)
	}

	uval := int32(seg)<<4 | (v>>(seg+1))&0xF
	return byte(uval ^ mask)
}

// DecodeMuLaw expands one mu-law byte back to 16-bit linear PCM. The
// value is the midpoint of the encoded segment, so re-encoding a
// decoded byte yields the same byte. Negative codes sit one step below
// the mirrored positive midpoint, matching the one's complement used
// on encode; 0x7F therefore decodes to -1 while 0xFF decodes to 0.
func DecodeMuLaw(b byte) int16 {
	u := int32(^b)

	t := (u&0xF)<<3 + muBias
	t <<= (u & 0x70) >> 4

	if u&0x80 != 0 {
		return int16(muBias - t - 1)
	}
	return int16(t - muBias)
}

// EncodeALaw compands one 16-bit linear PCM sample to an A-law byte.
// Digital zero encodes to 0xD5 (the even-bit-inverted zero code).
func EncodeALaw(pcm int16) byte {
	v := int32(pcm) >> 3 // A-law operates on 13-bit magnitudes
	var mask int32
	if v >= 0 {
		mask = 0xD5
	} else {
		mask = 0x55
		v = -v - 1
	}

	seg := segment(v, segAend[:])
	if seg >= 8 {
		return byte(0x7F ^ mask)
	}

	aval := int32(seg) << 4
	if seg < 2 {
		aval |= (v >> 1) & 0xF
	} else {
		aval |= (v >> seg) & 0xF
	}
	return byte(aval ^ mask)
}

// DecodeALaw expands one A-law byte back to 16-bit linear PCM.
func DecodeALaw(b byte) int16 {
	a := int32(b ^ 0x55)

	t := (a & 0xF) << 4
	seg := (a & 0x70) >> 4
	switch seg {
	case 0:
		t += 8
	case 1:
		t += 0x108
	default:
		t += 0x108
		t <<= uint(seg - 1)
	}

	if a&0x80 != 0 {
		return int16(t)
	}
	return int16(-t)
}

// EncodeSample compands one normalized float sample. Input outside
// [-1,1] is clamped to full scale rather than failing.
func (c Codec) EncodeSample(x float32) byte {
	pcm := utils.Float32ToInt16(x)
	if c == PCMA {
		return EncodeALaw(pcm)
	}
	return EncodeMuLaw(pcm)
}

// DecodeSample expands one companded byte to a normalized float sample.
func (c Codec) DecodeSample(b byte) float32 {
	var pcm int16
	if c == PCMA {
		pcm = DecodeALaw(b)
	} else {
		pcm = DecodeMuLaw(b)
	}
	return float32(pcm) / 32768.0
}

// Encode compands a whole buffer of normalized float samples, one byte
// per sample, ready for RTP payload framing.
func Encode(c Codec, samples []float32) []byte {
	return Append(make([]byte, 0, len(samples)), c, samples)
}

// Append compands samples onto dst, growing it as needed. Useful for
// chunked streaming without per-chunk allocations.
func Append(dst []byte, c Codec, samples []float32) []byte {
	for _, x := range samples {
		dst = append(dst, c.EncodeSample(x))
	}
	return dst
}
