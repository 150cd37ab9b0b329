// SPDX-License-Identifier: EPL-2.0

// Package audcore is the audio core of a real-time strategy game.
//
// It decodes Westwood AUD clips (and WAV, MP3, Ogg Vorbis and AIFF
// replacements), rate limits gameplay sound events, queues announcer
// lines by priority and bounds how many sounds play at once.
//
// # Packages
//
//   - formats/aud: AUD header parsing and the PCM, WW ADPCM and IMA ADPCM decoders.
//   - audio: decoded clips, the decoder registry and the Device interface.
//   - cooldown: global, per-cell and per-entity event rate limits.
//   - announce: the one-at-a-time announcer queue.
//   - scheduler: the playback pipeline that ties the above to a Device.
//   - archive: case-insensitive asset lookup with replacement formats.
//   - output: a Device backed by oto.
//   - config: the event and voice tables, loaded from YAML and the environment.
//
// # Quick Start
//
//	cfg, _ := config.LoadFile("audio.yaml")
//	dev, _ := output.NewOto(22050)
//	s, _ := audcore.New(cfg, dev)
//
//	// every game tick
//	s.Update(nowMs)
//	s.PlayAt("XPLOBIG.AUD", x, y, 1, config.ExplosionLarge)
//	s.Announce(config.VoiceBaseAttack)
package audcore
