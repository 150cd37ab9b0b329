// SPDX-License-Identifier: EPL-2.0

// Package wav reads replacement WAV assets into clips and exports clips
// back to WAV.
//
// Decoding goes through github.com/go-audio/wav and accepts 8-bit and
// 16-bit PCM, mono or stereo, at any rate. 8-bit samples are re-centred
// the same way the AUD decoder treats them.
//
//	clip, err := wav.Decoder{}.Decode(f)
//
// Encode writes a clip to a seekable file; WriteWAV16 writes a fixed
// header and streams, for pipes:
//
//	err := wav.Encode(out, clip)
//	err = wav.WriteWAV16(os.Stdout, clip.SampleRate, clip.Channels, clip.Samples)
package wav
