// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit AIFF replacement assets into clips using
// github.com/go-audio/aiff.
package aiff
