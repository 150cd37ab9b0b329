// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audcore/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	// go-audio requires io.ReadSeeker
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	return readClip(dec, int(dec.SampleRate), int(dec.NumChans))
}

func readClip(dec aiffReader, sampleRate, channels int) (*audio.Clip, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedAiffLayout, channels)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	clip, err := audio.NewClip(samples, sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return clip, nil
}
