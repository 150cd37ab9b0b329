// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNoSamples indicates the stream decoded to nothing.
	ErrNoSamples = errors.New("mp3 stream has no samples")
)
