// SPDX-License-Identifier: EPL-2.0

package scheduler

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/ik5/audcore/announce"
	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/cooldown"
	"github.com/ik5/audcore/formats/aud"
)

// playing is the bookkeeping for one tracked effect.
type playing struct {
	clip     string
	category cooldown.Category
	priority uint8
}

// Scheduler turns gameplay audio requests into a bounded set of device
// plays. All methods except Preload must be called from the game tick.
type Scheduler struct {
	cfg      Config
	dev      audio.Device
	res      Resolver
	registry *audio.Registry
	listener Listener
	logger   *log.Logger

	now         uint32
	lastCleanup uint32

	tracker *cooldown.Tracker
	voices  *announce.Queue
	units   unitChannel

	categories map[cooldown.Category]CategoryConfig
	mix        [mixGroups]float64
	master     float64
	muted      bool
	lx, ly     int

	clips       map[string]*clipEntry
	active      map[audio.PlayHandle]playing
	perCategory map[cooldown.Category]int
	perClip     map[string]int

	stats   counters
	denyLog *rate.Limiter
}

func New(cfg Config, dev audio.Device, res Resolver, opts ...Option) *Scheduler {
	cfg = cfg.normalized()

	s := &Scheduler{
		cfg:         cfg,
		dev:         dev,
		res:         res,
		logger:      log.Default(),
		categories:  make(map[cooldown.Category]CategoryConfig),
		master:      cfg.MasterVolume,
		clips:       make(map[string]*clipEntry),
		active:      make(map[audio.PlayHandle]playing),
		perCategory: make(map[cooldown.Category]int),
		perClip:     make(map[string]int),
		denyLog:     rate.NewLimiter(rate.Every(time.Second), 5),
	}
	for g := range s.mix {
		s.mix[g] = 1
	}

	for _, o := range opts {
		o(s)
	}

	if s.registry == nil {
		s.registry = audio.NewRegistry()
		s.registry.Register("aud", aud.Decoder{})
	}

	clock := func() uint32 { return s.now }
	s.tracker = cooldown.New(clock)
	s.voices = announce.New(clock, voiceDispatcher{s}, announce.WithLogger(s.logger))
	s.units = unitChannel{
		info:    make(map[UnitVoice]UnitVoiceInfo),
		limiter: cooldown.New(clock),
	}

	return s
}

// ConfigureCategory sets the cooldowns, caps and volume of a category.
// Unconfigured categories play at full volume with no limits beyond the
// global caps.
func (s *Scheduler) ConfigureCategory(cat cooldown.Category, cc CategoryConfig) {
	cc.DefaultVolume = clamp01(cc.DefaultVolume)
	s.categories[cat] = cc
	s.tracker.Configure(cat, cc.Cooldowns)
}

func (s *Scheduler) category(cat cooldown.Category) CategoryConfig {
	if cc, ok := s.categories[cat]; ok {
		return cc
	}
	return defaultCategory()
}

func (s *Scheduler) SetMixVolume(g MixGroup, v float64) {
	if g < 0 || g >= mixGroups {
		return
	}
	s.mix[g] = clamp01(v)
}

func (s *Scheduler) MixVolume(g MixGroup) float64 {
	if g < 0 || g >= mixGroups {
		return 1
	}
	return s.mix[g]
}

func (s *Scheduler) SetMasterVolume(v float64) { s.master = clamp01(v) }
func (s *Scheduler) MasterVolume() float64     { return s.master }

// SetMuted silences every request. Muting also stops what is playing.
func (s *Scheduler) SetMuted(muted bool) {
	s.muted = muted
	if muted {
		s.StopAll()
	}
}

func (s *Scheduler) Muted() bool { return s.muted }

// SetListenerPosition moves the listener. With a Listener option set the
// next Update overrides it.
func (s *Scheduler) SetListenerPosition(x, y int) {
	s.lx, s.ly = x, y
}

func (s *Scheduler) ListenerPosition() (x, y int) { return s.lx, s.ly }

// Now is the time base set by the last Update.
func (s *Scheduler) Now() uint32 { return s.now }

// Play starts a non positional sound subject to the category's global
// cooldown. The boolean is false when the request was denied.
func (s *Scheduler) Play(name string, volume float64, cat cooldown.Category) (audio.PlayHandle, bool) {
	return s.play(name, volume, cat, 0, func() bool {
		return s.tracker.TryFireGlobal(cat)
	})
}

// PlayFor is Play with an additional per-entity cooldown, e.g. for unit
// acknowledgements keyed by the unit's id.
func (s *Scheduler) PlayFor(name string, id uint32, volume float64, cat cooldown.Category) (audio.PlayHandle, bool) {
	return s.play(name, volume, cat, 0, func() bool {
		return s.tracker.TryFireGlobalAndObject(cat, id)
	})
}

// PlayAt starts a sound at a world position. Volume falls off linearly
// with distance from the listener and pan follows the horizontal offset.
// Cooldowns apply per category and per cell.
func (s *Scheduler) PlayAt(name string, x, y int, volume float64, cat cooldown.Category) (audio.PlayHandle, bool) {
	dx := float64(x - s.lx)
	dy := float64(y - s.ly)

	att := Attenuation(math.Hypot(dx, dy), s.cfg.MaxAudibleDistance)
	if att <= 0 {
		return s.deny("out of range", name, cat)
	}

	pan := max(-1, min(1, dx/s.cfg.MaxAudibleDistance))
	cx, cy := x/s.cfg.TileSize, y/s.cfg.TileSize

	return s.play(name, volume*att, cat, pan, func() bool {
		return s.tracker.TryFireGlobalAndPosition(cat, cx, cy)
	})
}

// PlayAtCell plays at the centre of a map cell.
func (s *Scheduler) PlayAtCell(name string, cellX, cellY int, volume float64, cat cooldown.Category) (audio.PlayHandle, bool) {
	t := s.cfg.TileSize
	return s.PlayAt(name, cellX*t+t/2, cellY*t+t/2, volume, cat)
}

// Attenuation is 1 at the listener and falls linearly to 0 at maxDistance
// and beyond.
func Attenuation(distance, maxDistance float64) float64 {
	if maxDistance <= 0 || distance >= maxDistance {
		return 0
	}
	return 1 - distance/maxDistance
}

// play runs the checks shared by every entry point. Cheap checks come
// first so a culled sound never touches the device; cooldowns are
// recorded last so a capped request does not extend them.
func (s *Scheduler) play(name string, volume float64, cat cooldown.Category, pan float64, fire func() bool) (audio.PlayHandle, bool) {
	if s.muted {
		return s.deny("muted", name, cat)
	}

	cc := s.category(cat)
	final := volume * cc.DefaultVolume * s.MixVolume(cc.Mix) * s.master
	if final < s.cfg.MinAudibleVolume {
		return s.deny("inaudible", name, cat)
	}

	e := s.clip(name)
	if e == nil {
		return s.deny("clip unavailable", name, cat)
	}

	victim, ok := s.admit(e.key, cat, cc)
	if !ok {
		return s.deny("concurrency cap", name, cat)
	}

	if !fire() {
		return s.deny("cooldown", name, cat)
	}

	h, err := s.dev.Play(e.handle, final, pan, false)
	if err != nil {
		s.stats.failed++
		s.logger.Error("Scheduler: device rejected play", "clip", e.key, "error", err)
		return audio.NoPlay, false
	}

	if victim != audio.NoPlay {
		s.logger.Debug("Scheduler: preempting", "handle", victim, "clip", s.active[victim].clip, "for", e.key)
		s.Stop(victim)
	}

	s.track(h, playing{clip: e.key, category: cat, priority: cc.Priority})
	s.stats.played++

	return h, true
}

// admit applies the category, per clip and global caps. A full global
// cap denies the request unless preemption is enabled, in which case a
// strictly lower priority sound may be picked to give way.
func (s *Scheduler) admit(key string, cat cooldown.Category, cc CategoryConfig) (audio.PlayHandle, bool) {
	if cc.MaxConcurrent > 0 && s.perCategory[cat] >= cc.MaxConcurrent {
		return audio.NoPlay, false
	}
	if s.cfg.MaxSameClip > 0 && s.perClip[key] >= s.cfg.MaxSameClip {
		return audio.NoPlay, false
	}
	if len(s.active) < s.cfg.MaxConcurrentSounds {
		return audio.NoPlay, true
	}
	if !s.cfg.PreemptLowerPriority {
		return audio.NoPlay, false
	}

	victim := audio.NoPlay
	lowest := cc.Priority
	for h, p := range s.active {
		if p.priority < lowest || (p.priority == lowest && victim != audio.NoPlay && h < victim) {
			victim, lowest = h, p.priority
		}
	}

	return victim, victim != audio.NoPlay
}

func (s *Scheduler) deny(reason, name string, cat cooldown.Category) (audio.PlayHandle, bool) {
	s.stats.denied++
	if s.denyLog.Allow() {
		s.logger.Debug("Scheduler: denied", "reason", reason, "clip", name, "category", cat)
	}
	return audio.NoPlay, false
}

func (s *Scheduler) track(h audio.PlayHandle, p playing) {
	s.active[h] = p
	s.perCategory[p.category]++
	s.perClip[p.clip]++
}

func (s *Scheduler) release(h audio.PlayHandle) {
	p, ok := s.active[h]
	if !ok {
		return
	}

	delete(s.active, h)
	if s.perCategory[p.category] > 0 {
		s.perCategory[p.category]--
	}
	if s.perClip[p.clip] > 0 {
		s.perClip[p.clip]--
	}
}

// Stop ends a play started by this scheduler. Unknown or finished handles
// are ignored.
func (s *Scheduler) Stop(h audio.PlayHandle) {
	if _, ok := s.active[h]; !ok {
		return
	}

	s.dev.Stop(h)
	s.release(h)
}

// StopAll stops every tracked effect, the announcer and the unit voice,
// and drops queued announcements. Cooldown timestamps survive.
func (s *Scheduler) StopAll() {
	for h := range s.active {
		s.dev.Stop(h)
	}

	clear(s.active)
	clear(s.perCategory)
	clear(s.perClip)

	s.voices.Clear()
	s.voices.Stop()
	s.StopUnitVoice()
}

// Update advances the time base to now and retires finished plays before
// letting the announcer move on, so a line that just ended frees its slot
// first. Call it once per tick.
func (s *Scheduler) Update(now uint32) {
	s.now = now

	if s.listener != nil {
		s.lx, s.ly = s.listener.ListenerPosition()
	}

	for h := range s.active {
		if !s.dev.IsPlaying(h) {
			s.release(h)
		}
	}

	s.updateUnitVoice()
	s.voices.Update()

	if now-s.lastCleanup >= s.cfg.CleanupIntervalMs {
		if n := s.tracker.Cleanup(); n > 0 {
			s.logger.Debug("Scheduler: evicted cooldown entries", "count", n)
		}
		s.lastCleanup = now
	}
}

// IsPlaying reports whether h is a tracked effect that was still playing
// at the last Update.
func (s *Scheduler) IsPlaying(h audio.PlayHandle) bool {
	_, ok := s.active[h]
	return ok
}

// Active counts tracked effects.
func (s *Scheduler) Active() int { return len(s.active) }

// Close stops everything and releases every uploaded clip. The scheduler
// must not be used afterwards.
func (s *Scheduler) Close() error {
	s.StopAll()

	for key, e := range s.clips {
		if e.err == nil {
			s.dev.DestroyClip(e.handle)
		}
		delete(s.clips, key)
	}

	return nil
}

func clipKey(name string) string {
	return strings.ToUpper(name)
}
