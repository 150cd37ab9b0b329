// SPDX-License-Identifier: EPL-2.0

// Package cooldown rate limits game audio events.
//
// Each Category carries up to three minimum intervals:
//
//   - Global: between any two events of the category.
//   - Position: between events of the category in the same map cell.
//   - Identity: between events of the category for the same entity.
//
// A zero interval always allows and records nothing. The first occurrence
// of any key is allowed. Combined checks (TryFireGlobalAndPosition,
// TryFireGlobalAndObject) record timestamps only when every scope allows,
// so a denied event never extends a cooldown.
//
// Time is a uint32 millisecond counter supplied by a Clock and may wrap;
// an elapsed time above 2^31 is treated as expired.
//
//	clock := &cooldown.ManualClock{}
//	t := cooldown.New(clock.Clock())
//	t.Configure(explosion, cooldown.Cooldowns{Global: 100, Position: 300})
//	if t.TryFireGlobalAndPosition(explosion, cellX, cellY) {
//		// play it
//	}
//
// Call Cleanup periodically to drop per-cell and per-entity entries that
// have been idle for a minute.
package cooldown
