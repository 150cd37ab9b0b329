// SPDX-License-Identifier: EPL-2.0

// Package scheduler decides which game sounds actually reach the audio
// device.
//
// Requests come in per frame from gameplay code, tagged with a
// cooldown.Category. Each request runs through, in order:
//
//  1. mute and distance culling (PlayAt only): a sound at or beyond
//     MaxAudibleDistance is dropped without any device call;
//  2. the final volume, base × category × mix group × master ×
//     attenuation, against MinAudibleVolume;
//  3. clip lookup, decoding and uploading the clip on first use;
//  4. the category cap, the per clip cap and the global cap;
//  5. the category cooldowns (global, per cell or per entity).
//
// A request that fails any step is dropped silently. Denials never
// return errors; audio must not break the game loop.
//
// The announcer runs on its own channel through an announce.Queue and is
// not counted against the effect caps.
//
// Everything runs on the game tick: call Update once per frame with the
// current millisecond time so finished sounds release their slots and the
// announcer can move on. Only Preload may run concurrently, and it must
// not overlap other calls on the same Scheduler.
package scheduler
