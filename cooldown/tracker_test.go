// SPDX-License-Identifier: EPL-2.0

package cooldown

import "testing"

const (
	catExplosion Category = iota
	catSelect
	catClick
	catUnconfigured
)

func newTracker() (*Tracker, *ManualClock) {
	clock := &ManualClock{}
	clock.Set(1000)

	t := New(clock.Clock())
	t.Configure(catExplosion, Cooldowns{Global: 100, Position: 300})
	t.Configure(catSelect, Cooldowns{Global: 100, Identity: 500})
	t.Configure(catClick, Cooldowns{})

	return t, clock
}

func TestTryFireGlobal_FirstAllowed(t *testing.T) {
	t.Parallel()

	tr, _ := newTracker()
	if !tr.TryFireGlobal(catExplosion) {
		t.Error("TryFireGlobal() first call = false, want true")
	}
}

func TestTryFireGlobal_Window(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		advance uint32
		want    bool
	}{
		{"immediately", 0, false},
		{"just before", 99, false},
		{"exactly at cooldown", 100, true},
		{"well after", 5000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr, clock := newTracker()
			tr.TryFireGlobal(catExplosion)
			clock.Advance(tt.advance)

			if got := tr.TryFireGlobal(catExplosion); got != tt.want {
				t.Errorf("TryFireGlobal() after %dms = %v, want %v", tt.advance, got, tt.want)
			}
		})
	}
}

func TestTryFire_ZeroCooldownRecordsNothing(t *testing.T) {
	t.Parallel()

	tr, _ := newTracker()
	for range 5 {
		if !tr.TryFireGlobal(catClick) {
			t.Fatal("TryFireGlobal() with zero cooldown = false, want true")
		}
		if !tr.TryFireAtPosition(catUnconfigured, 3, 4) {
			t.Fatal("TryFireAtPosition() unconfigured = false, want true")
		}
	}

	if tr.Tracked() != 0 {
		t.Errorf("Tracked() = %d, want 0", tr.Tracked())
	}
}

func TestTryFireAtPosition_PerCell(t *testing.T) {
	t.Parallel()

	tr, clock := newTracker()

	if !tr.TryFireAtPosition(catExplosion, 10, 10) {
		t.Fatal("first fire at (10,10) denied")
	}
	if tr.TryFireAtPosition(catExplosion, 10, 10) {
		t.Error("second fire at (10,10) allowed inside cooldown")
	}
	if !tr.TryFireAtPosition(catExplosion, 11, 10) {
		t.Error("fire at neighbouring cell denied")
	}

	clock.Advance(300)
	if !tr.TryFireAtPosition(catExplosion, 10, 10) {
		t.Error("fire at (10,10) denied after cooldown")
	}
}

func TestTryFireGlobalAndPosition(t *testing.T) {
	t.Parallel()

	tr, clock := newTracker()

	// (true, false): second call at the same tick and cell.
	first := tr.TryFireGlobalAndPosition(catExplosion, 5, 5)
	second := tr.TryFireGlobalAndPosition(catExplosion, 5, 5)
	if !first || second {
		t.Fatalf("got (%v, %v), want (true, false)", first, second)
	}

	// Global cooldown passed, position cooldown has not.
	clock.Advance(150)
	if tr.TryFireGlobalAndPosition(catExplosion, 5, 5) {
		t.Error("allowed while position cooldown active")
	}

	// Other cell: global passed, position fresh.
	if !tr.TryFireGlobalAndPosition(catExplosion, 6, 5) {
		t.Error("denied at a fresh cell after global cooldown")
	}
}

func TestTryFireGlobalAndPosition_DenialRecordsNothing(t *testing.T) {
	t.Parallel()

	tr, clock := newTracker()
	tr.TryFireAtPosition(catExplosion, 1, 1) // position busy, global free

	if tr.TryFireGlobalAndPosition(catExplosion, 1, 1) {
		t.Fatal("allowed while position cooldown active")
	}

	// The denied attempt must not have touched the global timestamp.
	if !tr.CanFireGlobal(catExplosion) {
		t.Error("global cooldown recorded by a denied combined check")
	}

	clock.Advance(300)
	if !tr.TryFireGlobalAndPosition(catExplosion, 1, 1) {
		t.Error("denied after both cooldowns passed")
	}
}

func TestTryFireGlobalAndObject(t *testing.T) {
	t.Parallel()

	tr, clock := newTracker()

	if !tr.TryFireGlobalAndObject(catSelect, 42) {
		t.Fatal("first select denied")
	}
	clock.Advance(100)
	if tr.TryFireGlobalAndObject(catSelect, 42) {
		t.Error("same unit allowed inside identity cooldown")
	}
	if !tr.TryFireGlobalAndObject(catSelect, 43) {
		t.Error("different unit denied after global cooldown")
	}
	clock.Advance(400)
	if !tr.TryFireForIdentity(catSelect, 42) {
		t.Error("identity denied after its cooldown")
	}
}

func TestTryFire_Wraparound(t *testing.T) {
	t.Parallel()

	tr, clock := newTracker()

	clock.Set(0xFFFFFFF0)
	if !tr.TryFireGlobal(catExplosion) {
		t.Fatal("first fire near wrap denied")
	}

	// 0x20 - 0xFFFFFFF0 == 0x30 ms elapsed across the wrap.
	clock.Set(0x20)
	if tr.TryFireGlobal(catExplosion) {
		t.Error("allowed 48ms after a fire across the wrap")
	}

	clock.Set(0x60)
	if !tr.TryFireGlobal(catExplosion) {
		t.Error("denied 112ms after a fire across the wrap")
	}
}

func TestTryFire_TimestampInFutureCountsAsExpired(t *testing.T) {
	t.Parallel()

	tr, clock := newTracker()
	clock.Set(5000)
	tr.TryFireGlobal(catExplosion)

	// clock moved backwards: elapsed wraps to just under 2^32
	clock.Set(4990)
	if !tr.TryFireGlobal(catExplosion) {
		t.Error("denied with a last-fire time in the future")
	}
}

func TestCanFire_DoesNotRecord(t *testing.T) {
	t.Parallel()

	tr, _ := newTracker()

	for range 3 {
		if !tr.CanFireGlobal(catExplosion) || !tr.CanFireAtPosition(catExplosion, 0, 0) || !tr.CanFireForIdentity(catSelect, 1) {
			t.Fatal("CanFire* = false before any fire")
		}
	}
	if tr.Tracked() != 0 {
		t.Errorf("Tracked() = %d after peeks, want 0", tr.Tracked())
	}
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	tr, clock := newTracker()
	tr.TryFireGlobalAndPosition(catExplosion, 1, 1)
	tr.TryFireGlobalAndObject(catSelect, 9)

	if tr.Tracked() != 4 {
		t.Fatalf("Tracked() = %d, want 4", tr.Tracked())
	}

	clock.Advance(EvictAfter)
	if n := tr.Cleanup(); n != 0 {
		t.Errorf("Cleanup() at exactly %dms = %d, want 0", EvictAfter, n)
	}

	clock.Advance(1)
	if n := tr.Cleanup(); n != 2 {
		t.Errorf("Cleanup() = %d, want 2", n)
	}

	// global entries survive
	if tr.Tracked() != 2 {
		t.Errorf("Tracked() after cleanup = %d, want 2", tr.Tracked())
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	tr, _ := newTracker()
	tr.TryFireGlobal(catExplosion)
	tr.TryFireGlobal(catExplosion)

	if s := tr.Stats(); s.Fired != 1 || s.Limited != 1 {
		t.Errorf("Stats() = %+v, want 1 fired, 1 limited", s)
	}

	tr.Reset()
	if tr.Tracked() != 0 || tr.Stats() != (Stats{}) {
		t.Error("Reset() left state behind")
	}
	if !tr.TryFireGlobal(catExplosion) {
		t.Error("TryFireGlobal() after Reset = false, want true")
	}
	if _, ok := tr.Config(catExplosion); !ok {
		t.Error("Reset() dropped configuration")
	}
}

func TestSystemClock_Monotonic(t *testing.T) {
	t.Parallel()

	clock := SystemClock()
	a := clock()
	b := clock()
	if b < a {
		t.Errorf("SystemClock went backwards: %d then %d", a, b)
	}
}

func BenchmarkTryFireGlobalAndPosition(b *testing.B) {
	tr := New((&ManualClock{}).Clock())
	tr.Configure(catExplosion, Cooldowns{Global: 100, Position: 300})

	b.ReportAllocs()

	i := 0
	for b.Loop() {
		tr.TryFireGlobalAndPosition(catExplosion, i%64, i/64%64)
		i++
	}
}
