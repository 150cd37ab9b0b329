// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidChannels is returned for clips that are neither mono nor stereo.
	ErrInvalidChannels = errors.New("channel count must be 1 or 2")

	// ErrInvalidSampleRate is returned for clips with a non positive rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrEmptyClip is returned when a clip holds no samples.
	ErrEmptyClip = errors.New("clip has no samples")

	// ErrSampleRateMismatch is returned by devices that cannot play a clip
	// at its native rate.
	ErrSampleRateMismatch = errors.New("clip sample rate does not match device")

	// ErrUnknownClip is returned when a handle does not name a live clip.
	ErrUnknownClip = errors.New("unknown clip handle")

	// ErrUnsupportedBitDepth is returned for PCM uploads that are not 16-bit.
	ErrUnsupportedBitDepth = errors.New("only 16-bit PCM is supported")
)
