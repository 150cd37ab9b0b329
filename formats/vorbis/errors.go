// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNoSamples           = errors.New("vorbis stream has no samples")
	ErrUnsupportedChannels = errors.New("only mono and stereo vorbis supported")
)
