// SPDX-License-Identifier: EPL-2.0

package aud

import "errors"

var (
	// ErrTooSmall indicates fewer than 12 bytes were available for the header.
	ErrTooSmall = errors.New("aud: data too small for header")

	// ErrInvalidSampleRate indicates a sample rate of 0 or above 48000 Hz.
	ErrInvalidSampleRate = errors.New("aud: invalid sample rate")

	// ErrEmptyPayload indicates a header declaring a zero compressed size.
	ErrEmptyPayload = errors.New("aud: zero compressed size")

	// ErrTruncated indicates the payload is shorter than the header declares.
	ErrTruncated = errors.New("aud: truncated payload")

	// ErrUnsupportedCompression indicates an unknown compression tag.
	ErrUnsupportedCompression = errors.New("aud: unsupported compression")

	// ErrEmptyResult indicates decoding produced no samples.
	ErrEmptyResult = errors.New("aud: decoded no samples")
)
