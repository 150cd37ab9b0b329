// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 replacement assets into clips using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces stereo, so every clip from this package has two
// channels at the stream's native rate:
//
//	clip, err := mp3.Decoder{}.Decode(f)
package mp3
