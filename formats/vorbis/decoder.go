// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readClip(dec)
}

func readClip(dec oggReader) (*audio.Clip, error) {
	channels := dec.Channels()
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, channels)
	}

	var samples []int16
	buf := make([]float32, 4096*channels)

	for {
		// Read returns values, always a multiple of the channel count
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			samples = append(samples, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	clip, err := audio.NewClip(samples, dec.SampleRate(), channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return clip, nil
}
