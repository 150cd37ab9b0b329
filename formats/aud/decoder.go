// SPDX-License-Identifier: EPL-2.0

package aud

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/utils"
)

const (
	frameSize      = 16
	frameCodeBytes = 12
	// seed sample plus two codes per byte
	samplesPerFrame = 1 + frameCodeBytes*2
)

// Decode turns a validated header and its payload into a clip.
func Decode(h Header, payload []byte) (*audio.Clip, error) {
	var samples []int16

	switch h.Compression {
	case CompressionNone:
		samples = decodePCM(payload, h.Is16Bit())
	case CompressionWW:
		if h.Stereo() {
			samples = decodeWWStereo(payload)
		} else {
			samples = decodeWWMono(payload)
		}
	case CompressionIMA:
		samples = decodeIMA(payload)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, uint8(h.Compression))
	}

	if len(samples) == 0 {
		return nil, ErrEmptyResult
	}

	return audio.NewClip(samples, int(h.SampleRate), h.Channels())
}

// DecodeBytes parses the header at the start of b and decodes its payload.
func DecodeBytes(b []byte) (*audio.Clip, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}

	return Decode(h, h.Payload(b))
}

func decodePCM(payload []byte, is16 bool) []int16 {
	if is16 {
		return utils.PCM16LE(payload)
	}

	out := make([]int16, len(payload))
	for i, u := range payload {
		out[i] = (int16(u) - 128) * 256
	}
	return out
}

func frameState(f []byte) adpcmState {
	return newState(int16(binary.LittleEndian.Uint16(f[0:2])), f[2])
}

func decodeWWMono(payload []byte) []int16 {
	frames := len(payload) / frameSize
	out := make([]int16, 0, frames*samplesPerFrame)

	for i := range frames {
		f := payload[i*frameSize : (i+1)*frameSize]
		st := frameState(f)
		out = append(out, int16(st.predictor))

		for _, b := range f[4:] {
			out = append(out, st.next(b&0x0f), st.next(b>>4))
		}
	}

	return out
}

// decodeWWStereo reads frames in left/right pairs; a trailing unpaired
// frame is dropped.
func decodeWWStereo(payload []byte) []int16 {
	pairs := len(payload) / (frameSize * 2)
	out := make([]int16, 0, pairs*samplesPerFrame*2)

	for i := range pairs {
		lf := payload[i*2*frameSize : i*2*frameSize+frameSize]
		rf := payload[i*2*frameSize+frameSize : (i+1)*2*frameSize]
		l, r := frameState(lf), frameState(rf)
		out = append(out, int16(l.predictor), int16(r.predictor))

		for k := range frameCodeBytes {
			lb, rb := lf[4+k], rf[4+k]
			out = append(out, l.next(lb&0x0f), r.next(rb&0x0f))
			out = append(out, l.next(lb>>4), r.next(rb>>4))
		}
	}

	return out
}

// decodeIMA runs one state over the whole payload. Stereo payloads are
// read as an interleaved stream through that single state.
func decodeIMA(payload []byte) []int16 {
	out := make([]int16, 0, len(payload)*2)
	var st adpcmState

	for _, b := range payload {
		out = append(out, st.next(b&0x0f), st.next(b>>4))
	}

	return out
}

// Decoder reads a complete container from a reader.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aud data: %w", err)
	}

	return DecodeBytes(data)
}
