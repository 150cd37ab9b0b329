// SPDX-License-Identifier: EPL-2.0

package cooldown

// Category identifies a class of event sharing one cooldown configuration,
// such as "small explosion" or "unit acknowledgement".
type Category int

// Cooldowns are minimum intervals in milliseconds. Zero disables that scope.
type Cooldowns struct {
	Global   uint32
	Position uint32
	Identity uint32
}

// EvictAfter is how long an unused position or identity entry survives
// Cleanup.
const EvictAfter uint32 = 60000

// wrapThreshold: an elapsed time above this is a timestamp from the
// "future" after the clock wrapped, and counts as expired.
const wrapThreshold uint32 = 0x80000000

type positionKey struct {
	cat  Category
	x, y int16
}

type identityKey struct {
	cat Category
	id  uint32
}

// Stats counts try-fire outcomes since creation or the last Reset.
type Stats struct {
	Fired   uint64
	Limited uint64
}

// Tracker decides whether an event may fire given when it, or an event
// of the same category at the same cell or for the same entity, last
// fired. It is not safe for concurrent use.
type Tracker struct {
	clock Clock

	configs  map[Category]Cooldowns
	global   map[Category]uint32
	position map[positionKey]uint32
	identity map[identityKey]uint32

	stats Stats
}

func New(clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock()
	}

	return &Tracker{
		clock:    clock,
		configs:  make(map[Category]Cooldowns),
		global:   make(map[Category]uint32),
		position: make(map[positionKey]uint32),
		identity: make(map[identityKey]uint32),
	}
}

// Configure sets the cooldowns of a category. Existing timestamps are kept.
func (t *Tracker) Configure(cat Category, c Cooldowns) {
	t.configs[cat] = c
}

// Config returns the cooldowns of a category and whether it was configured.
func (t *Tracker) Config(cat Category) (Cooldowns, bool) {
	c, ok := t.configs[cat]
	return c, ok
}

func expired(last, now, cooldown uint32) bool {
	elapsed := now - last
	if elapsed > wrapThreshold {
		return true
	}
	return elapsed >= cooldown
}

func ready[K comparable](m map[K]uint32, key K, now, cooldown uint32) bool {
	if cooldown == 0 {
		return true
	}
	last, seen := m[key]
	if !seen {
		return true
	}
	return expired(last, now, cooldown)
}

func record[K comparable](m map[K]uint32, key K, now, cooldown uint32) {
	if cooldown != 0 {
		m[key] = now
	}
}

func (t *Tracker) count(ok bool) bool {
	if ok {
		t.stats.Fired++
	} else {
		t.stats.Limited++
	}
	return ok
}

func posKey(cat Category, x, y int) positionKey {
	return positionKey{cat: cat, x: int16(x), y: int16(y)}
}

// CanFireGlobal reports whether TryFireGlobal would allow, without recording.
func (t *Tracker) CanFireGlobal(cat Category) bool {
	return ready(t.global, cat, t.clock(), t.configs[cat].Global)
}

// CanFireAtPosition reports whether TryFireAtPosition would allow, without recording.
func (t *Tracker) CanFireAtPosition(cat Category, cellX, cellY int) bool {
	return ready(t.position, posKey(cat, cellX, cellY), t.clock(), t.configs[cat].Position)
}

// CanFireForIdentity reports whether TryFireForIdentity would allow, without recording.
func (t *Tracker) CanFireForIdentity(cat Category, id uint32) bool {
	return ready(t.identity, identityKey{cat, id}, t.clock(), t.configs[cat].Identity)
}

// TryFireGlobal allows the event if the category's global cooldown has
// passed and records now as its last fire time.
func (t *Tracker) TryFireGlobal(cat Category) bool {
	now, cd := t.clock(), t.configs[cat].Global
	if !ready(t.global, cat, now, cd) {
		return t.count(false)
	}
	record(t.global, cat, now, cd)
	return t.count(true)
}

// TryFireAtPosition applies the position cooldown of cat to one map cell.
func (t *Tracker) TryFireAtPosition(cat Category, cellX, cellY int) bool {
	now, cd := t.clock(), t.configs[cat].Position
	key := posKey(cat, cellX, cellY)
	if !ready(t.position, key, now, cd) {
		return t.count(false)
	}
	record(t.position, key, now, cd)
	return t.count(true)
}

// TryFireForIdentity applies the identity cooldown of cat to one entity.
func (t *Tracker) TryFireForIdentity(cat Category, id uint32) bool {
	now, cd := t.clock(), t.configs[cat].Identity
	key := identityKey{cat, id}
	if !ready(t.identity, key, now, cd) {
		return t.count(false)
	}
	record(t.identity, key, now, cd)
	return t.count(true)
}

// TryFireGlobalAndPosition checks both scopes and records both only if
// both allow. A denial leaves every timestamp untouched.
func (t *Tracker) TryFireGlobalAndPosition(cat Category, cellX, cellY int) bool {
	now, c := t.clock(), t.configs[cat]
	key := posKey(cat, cellX, cellY)

	if !ready(t.global, cat, now, c.Global) || !ready(t.position, key, now, c.Position) {
		return t.count(false)
	}

	record(t.global, cat, now, c.Global)
	record(t.position, key, now, c.Position)
	return t.count(true)
}

// TryFireGlobalAndObject is TryFireGlobalAndPosition for entity ids.
func (t *Tracker) TryFireGlobalAndObject(cat Category, id uint32) bool {
	now, c := t.clock(), t.configs[cat]
	key := identityKey{cat, id}

	if !ready(t.global, cat, now, c.Global) || !ready(t.identity, key, now, c.Identity) {
		return t.count(false)
	}

	record(t.global, cat, now, c.Global)
	record(t.identity, key, now, c.Identity)
	return t.count(true)
}

// Cleanup evicts position and identity entries older than EvictAfter and
// returns how many were removed. Global entries are never evicted.
func (t *Tracker) Cleanup() int {
	now := t.clock()
	removed := 0

	for k, last := range t.position {
		if now-last > EvictAfter {
			delete(t.position, k)
			removed++
		}
	}
	for k, last := range t.identity {
		if now-last > EvictAfter {
			delete(t.identity, k)
			removed++
		}
	}

	return removed
}

// Reset forgets every timestamp and counter. Configuration is kept.
func (t *Tracker) Reset() {
	clear(t.global)
	clear(t.position)
	clear(t.identity)
	t.stats = Stats{}
}

// Tracked is the number of timestamps held across all scopes.
func (t *Tracker) Tracked() int {
	return len(t.global) + len(t.position) + len(t.identity)
}

func (t *Tracker) Stats() Stats { return t.stats }
