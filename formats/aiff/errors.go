// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for 8, 24 and 32-bit
	// replacement assets. Clips are always uploaded as 16-bit PCM.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout covers channel counts other than mono and
	// stereo.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
