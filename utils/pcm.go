// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// PutPCM16LE writes src as little-endian signed 16-bit samples into dst and
// returns the number of bytes written. dst must hold 2*len(src) bytes.
func PutPCM16LE(dst []byte, src []float32) int {
	n := min(len(src), len(dst)/2)
	for i := range n {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToInt16(src[i])))
	}
	return n * 2
}

// PCM16LE decodes little-endian signed 16-bit samples. A trailing odd byte
// is ignored.
func PCM16LE(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return out
}
