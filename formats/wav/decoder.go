// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audcore/audio"
)

const formatPCM = 1

// wavReader is the part of wav.Decoder used here, so tests can stub it.
type wavReader interface {
	IsValidFile() bool
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

// Decode reads a PCM WAV asset fully into a clip. Replacement sound packs
// ship WAV files next to the original containers.
func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}
	if dec.NumChans != 1 && dec.NumChans != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, dec.NumChans)
	}

	return decodePCM(dec, int(dec.BitDepth), int(dec.SampleRate), int(dec.NumChans))
}

func decodePCM(dec wavReader, bitDepth, sampleRate, channels int) (*audio.Clip, error) {
	if bitDepth != 8 && bitDepth != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == 8 {
			samples[i] = int16((v - 128) * 256)
		} else {
			samples[i] = int16(v)
		}
	}

	clip, err := audio.NewClip(samples, sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return clip, nil
}
