// SPDX-License-Identifier: EPL-2.0

package cooldown

import "time"

// Clock returns a monotonic millisecond count. It is allowed to wrap at
// 2^32; the tracker compares timestamps with modular arithmetic.
type Clock func() uint32

// SystemClock counts milliseconds since the call.
func SystemClock() Clock {
	start := time.Now()
	return func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	}
}

// ManualClock is a settable clock for game loops that drive time
// themselves, and for tests.
type ManualClock struct {
	now uint32
}

func (c *ManualClock) Now() uint32       { return c.now }
func (c *ManualClock) Set(ms uint32)     { c.now = ms }
func (c *ManualClock) Advance(ms uint32) { c.now += ms }
func (c *ManualClock) Clock() Clock      { return c.Now }
