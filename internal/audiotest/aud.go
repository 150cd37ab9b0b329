// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// AUD container flags and compression tags, repeated here so fixtures do
// not depend on the decoder under test.
const (
	Stereo = 1 << 0
	Bits16 = 1 << 1

	CompressNone = 0
	CompressWW   = 1
	CompressIMA  = 99
)

// AUD assembles a container with the given header fields and payload.
func AUD(rate uint16, flags, compression uint8, payload []byte) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, rate)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)*2))
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.WriteByte(flags)
	buf.WriteByte(compression)
	buf.Write(payload)

	return buf.Bytes()
}

// SilentAUD is an uncompressed 16-bit mono container of the given length.
func SilentAUD(rate uint16, samples int) []byte {
	return AUD(rate, Bits16, CompressNone, make([]byte, samples*2))
}
