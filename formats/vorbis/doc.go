// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis replacement assets into clips using
// github.com/jfreymuth/oggvorbis. Mono and stereo streams are accepted.
//
//	clip, err := vorbis.Decoder{}.Decode(f)
package vorbis
