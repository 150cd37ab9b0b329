// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/audcore/utils"
)

type clipSource struct {
	clip   *Clip
	pos    int
	loop   bool
	closed bool
}

func (s *clipSource) SampleRate() int { return s.clip.SampleRate }
func (s *clipSource) Channels() int   { return s.clip.Channels }
func (s *clipSource) BufSize() int    { return 4096 }

func (s *clipSource) Close() error {
	s.closed = true
	return nil
}

func (s *clipSource) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, io.EOF
	}
	if len(dst)%s.clip.Channels != 0 {
		return 0, ErrInvalidDstSize
	}

	samples := s.clip.Samples
	n := 0
	for n < len(dst) {
		if s.pos >= len(samples) {
			if !s.loop || len(samples) == 0 {
				break
			}
			s.pos = 0
		}

		k := copyInt16(dst[n:], samples[s.pos:])
		n += k
		s.pos += k
	}

	if n == 0 {
		return 0, io.EOF
	}
	if !s.loop && s.pos >= len(samples) {
		return n, io.EOF
	}
	return n, nil
}

func copyInt16(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = utils.Int16ToFloat32(src[i])
	}
	return n
}
