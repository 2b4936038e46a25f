// SPDX-License-Identifier: EPL-2.0

// Package g711 implements ITU-T G.711 companding: mu-law (PCMU) and
// A-law (PCMA) encoding of 16-bit linear PCM into one byte per sample.
//
// The segment boundaries follow the CCITT reference implementation
// bit-exactly. This is the one place strict external compatibility
// matters: an off-by-one in a segment boundary produces audibly wrong
// output on a real SIP endpoint. The decoder returns segment midpoints,
// which gives the standard round-trip property
//
//	EncodeMuLaw(DecodeMuLaw(b)) == b   for every byte b
//
// and the same for A-law.
//
// # Zero Codes
//
// Digital silence encodes to the standard zero codes: 0xFF for mu-law
// and 0xD5 for A-law (A-law transmits with even bits inverted, so the
// zero magnitude pattern is 0x55 XOR applied to 0x80). Mu-law also has
// a negative zero code, 0x7F, which decodes to -1 so the two zero
// codes stay distinguishable through a round trip.
//
// # Float Input
//
// The Codec helpers accept normalized float32 samples in [-1,1], as
// produced by the conditioning pipeline:
//
//	payload := g711.Encode(g711.PCMU, samples)
//
// Samples outside [-1,1] are clamped to full scale before companding.
package g711
