// SPDX-License-Identifier: EPL-2.0

package archive

import "errors"

var (
	// ErrNotFound is returned when neither the name nor any fallback
	// exists.
	ErrNotFound = errors.New("asset not found")

	ErrInvalidName = errors.New("invalid asset name")
)
