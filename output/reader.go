// SPDX-License-Identifier: EPL-2.0

package output

import (
	"io"

	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/utils"
)

// pcmReader renders a stereo Source as signed 16-bit little-endian bytes.
type pcmReader struct {
	src audio.Source
	buf []float32
	eof bool
}

func (r *pcmReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}

	// whole stereo frames only
	n := len(p) / 4 * 2
	if n == 0 {
		return 0, nil
	}
	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}
	buf := r.buf[:n]

	got, err := r.src.ReadSamples(buf)
	written := utils.PutPCM16LE(p, buf[:got])

	if err == io.EOF {
		r.eof = true
		if written == 0 {
			return 0, io.EOF
		}
		return written, nil
	}
	if err != nil {
		return written, err
	}

	return written, nil
}
