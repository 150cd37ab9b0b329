// SPDX-License-Identifier: EPL-2.0

// Package audio holds the shared types of the audio core.
//
//   - Clip is a decoded sound: interleaved int16 samples, a sample rate
//     and a channel count (1 or 2).
//   - Decoder turns an encoded asset into a Clip; Registry maps file
//     extensions to decoders.
//   - Device is the playback backend the scheduler drives through small
//     integer handles.
//   - Source and Panner stream a clip as float32 samples with volume and
//     balance applied, for backends that pull PCM.
//
// # Clips
//
//	clip, err := audio.NewClip(samples, 22050, 1)
//	fmt.Println(clip.DurationMs())
//
// Duration is (samples / channels) * 1000 / rate, truncated to whole
// milliseconds.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("aud", aud.Decoder{})
//	dec, ok := registry.ForName("XPLOS.AUD")
//
// # Panning
//
// Pan runs from -1 (left) to 1 (right). Centre keeps both channels at the
// clip volume; panning to one side attenuates the other side linearly:
//
//	p := audio.NewPanner(clip.Source(false), 0.8, -0.25)
//	n, err := p.ReadSamples(buf)
//
// Volume and pan can be changed while another goroutine reads.
package audio
