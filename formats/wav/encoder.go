// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audcore/audio"
)

// Encode writes clip as a 16-bit PCM WAV file. The header sizes are patched
// on close, hence the io.WriteSeeker.
func Encode(w io.WriteSeeker, clip *audio.Clip) error {
	enc := wav.NewEncoder(w, clip.SampleRate, 16, clip.Channels, formatPCM)

	if err := enc.Write(clip.IntBuffer()); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}
