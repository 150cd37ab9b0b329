// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/utils"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always emits interleaved stereo S16LE.
const outputChannels = 2

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return readClip(dec)
}

func readClip(dec mp3Reader) (*audio.Clip, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	// drop a dangling half frame
	pcm = pcm[:len(pcm)/(2*outputChannels)*(2*outputChannels)]
	if len(pcm) == 0 {
		return nil, ErrNoSamples
	}

	clip, err := audio.NewClip(utils.PCM16LE(pcm), dec.SampleRate(), outputChannels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return clip, nil
}
