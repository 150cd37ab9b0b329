// SPDX-License-Identifier: EPL-2.0

// Package aud decodes the game's AUD sound container into 16-bit PCM.
//
// A container is a 12 byte little-endian header followed by the payload:
//
//	offset size field
//	0      2    sample rate (1..48000)
//	2      4    decompressed size
//	6      4    compressed size (payload length)
//	10     1    flags: bit 0 stereo, bit 1 16-bit
//	11     1    compression: 0 none, 1 WW ADPCM, 99 IMA ADPCM
//
// Uncompressed payloads are copied (16-bit) or re-centred and scaled
// (8-bit). WW ADPCM payloads are 16 byte frames, each restarting the
// decoder from a seed sample and step index and yielding 25 samples; in
// stereo the frames alternate left and right. IMA ADPCM payloads are one
// continuous stream of 4-bit codes, two samples per byte.
//
// Usage:
//
//	clip, err := aud.DecodeBytes(data)
//	if errors.Is(err, aud.ErrUnsupportedCompression) {
//		// ...
//	}
package aud
