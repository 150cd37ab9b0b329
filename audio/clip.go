// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"time"

	goaudio "github.com/go-audio/audio"
)

// Clip is a fully decoded sound: interleaved signed 16-bit samples at a
// fixed rate. A Clip is not modified after construction.
type Clip struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// NewClip validates and wraps decoded samples.
func NewClip(samples []int16, sampleRate, channels int) (*Clip, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}
	if len(samples) == 0 {
		return nil, ErrEmptyClip
	}

	return &Clip{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// Frames is the number of samples per channel.
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// DurationMs is (samples / channels) * 1000 / sample_rate, truncated.
func (c *Clip) DurationMs() uint32 {
	if c.SampleRate <= 0 {
		return 0
	}
	return uint32(uint64(c.Frames()) * 1000 / uint64(c.SampleRate))
}

func (c *Clip) Duration() time.Duration {
	return time.Duration(c.DurationMs()) * time.Millisecond
}

// Bytes returns the samples as little-endian PCM, the layout devices expect.
func (c *Clip) Bytes() []byte {
	out := make([]byte, len(c.Samples)*2)
	for i, s := range c.Samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// IntBuffer exposes the clip as a go-audio buffer, e.g. for WAV encoding.
func (c *Clip) IntBuffer() *goaudio.IntBuffer {
	data := make([]int, len(c.Samples))
	for i, s := range c.Samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: c.Channels,
			SampleRate:  c.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// Source streams the clip as float32 samples. With loop set the stream
// restarts from the first frame instead of returning io.EOF.
func (c *Clip) Source(loop bool) Source {
	return &clipSource{clip: c, loop: loop}
}
