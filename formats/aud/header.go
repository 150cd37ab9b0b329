// SPDX-License-Identifier: EPL-2.0

package aud

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed size of the container header.
const HeaderSize = 12

// MaxSampleRate is the highest sample rate accepted by ParseHeader.
const MaxSampleRate = 48000

const (
	flagStereo = 1 << 0
	flag16Bit  = 1 << 1
)

// Compression is the codec tag stored in the last header byte.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionWW   Compression = 1
	CompressionIMA  Compression = 99
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "Uncompressed"
	case CompressionWW:
		return "WW ADPCM"
	case CompressionIMA:
		return "IMA ADPCM"
	default:
		return "Unknown"
	}
}

// Header is the 12 byte little-endian container header.
type Header struct {
	SampleRate       uint16
	DecompressedSize uint32
	CompressedSize   uint32
	Flags            uint8
	Compression      Compression
}

func (h Header) Stereo() bool { return h.Flags&flagStereo != 0 }
func (h Header) Is16Bit() bool { return h.Flags&flag16Bit != 0 }

func (h Header) Channels() int {
	if h.Stereo() {
		return 2
	}
	return 1
}

func (h Header) BitsPerSample() int {
	if h.Is16Bit() {
		return 16
	}
	return 8
}

// Payload returns the compressed bytes that follow the header in b.
// b must already have passed ParseHeader.
func (h Header) Payload(b []byte) []byte {
	return b[HeaderSize : HeaderSize+int(h.CompressedSize)]
}

// ParseHeader reads and validates the header at the start of b. An unknown
// compression tag is not an error here; Decode reports it.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrTooSmall, len(b))
	}

	h := Header{
		SampleRate:       binary.LittleEndian.Uint16(b[0:2]),
		DecompressedSize: binary.LittleEndian.Uint32(b[2:6]),
		CompressedSize:   binary.LittleEndian.Uint32(b[6:10]),
		Flags:            b[10],
		Compression:      Compression(b[11]),
	}

	if h.SampleRate == 0 || h.SampleRate > MaxSampleRate {
		return Header{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, h.SampleRate)
	}

	if h.CompressedSize == 0 {
		return Header{}, ErrEmptyPayload
	}

	if uint64(len(b)) < HeaderSize+uint64(h.CompressedSize) {
		return Header{}, fmt.Errorf("%w: have %d, want %d",
			ErrTruncated, len(b), HeaderSize+uint64(h.CompressedSize))
	}

	return h, nil
}

// MarshalBinary encodes the header in its on-disk layout.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], h.SampleRate)
	binary.LittleEndian.PutUint32(b[2:6], h.DecompressedSize)
	binary.LittleEndian.PutUint32(b[6:10], h.CompressedSize)
	b[10] = h.Flags
	b[11] = uint8(h.Compression)

	return b, nil
}
