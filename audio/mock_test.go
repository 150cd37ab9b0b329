// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource streams frames produced by wave until frames run out.
type mockSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	closed   bool
	wave     func(frame, channel int) float32
}

func newMockSource(rate, channels, frames int, wave func(frame, channel int) float32) *mockSource {
	return &mockSource{rate: rate, channels: channels, frames: frames, wave: wave}
}

func newSilentSource(rate, channels, frames int) *mockSource {
	return newConstantSource(rate, channels, frames, 0)
}

func newConstantSource(rate, channels, frames int, v float32) *mockSource {
	return newMockSource(rate, channels, frames, func(int, int) float32 { return v })
}

func newSineSource(rate, channels, frames int, hz float64) *mockSource {
	return newMockSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * hz * float64(frame) / float64(rate)))
	})
}

func (m *mockSource) SampleRate() int { return m.rate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
