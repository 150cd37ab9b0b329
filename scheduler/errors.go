// SPDX-License-Identifier: EPL-2.0

package scheduler

import "errors"

var (
	// ErrNoDecoder is returned when no registered decoder matches the
	// extension of a clip name.
	ErrNoDecoder = errors.New("no decoder for clip")

	// ErrClipUnavailable is returned when a clip failed to load earlier.
	ErrClipUnavailable = errors.New("clip unavailable")

	ErrUnknownVoice = errors.New("unknown announcer voice")
)
