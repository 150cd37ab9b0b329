// SPDX-License-Identifier: EPL-2.0

package scheduler

import (
	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/cooldown"
)

// UnitVoice is a unit acknowledgement line ("Yes sir", "Moving out").
type UnitVoice int

// Faction picks between a line's clip variants.
type Faction uint8

const (
	FactionNeutral Faction = iota
	FactionAllied
	FactionSoviet
)

func (f Faction) String() string {
	switch f {
	case FactionNeutral:
		return "neutral"
	case FactionAllied:
		return "allied"
	case FactionSoviet:
		return "soviet"
	default:
		return "unknown"
	}
}

// ParseFaction maps a configuration name to its faction.
func ParseFaction(name string) (Faction, bool) {
	for f := FactionNeutral; f <= FactionSoviet; f++ {
		if f.String() == name {
			return f, true
		}
	}
	return FactionNeutral, false
}

// UnitVoiceInfo is the static wiring of one unit line.
type UnitVoiceInfo struct {
	Clip string
	// SovietClip replaces Clip for FactionSoviet when set.
	SovietClip string
	// MinInterval is the least time between two plays of the line, in ms.
	MinInterval uint32
}

func (i UnitVoiceInfo) clip(f Faction) string {
	if f == FactionSoviet && i.SovietClip != "" {
		return i.SovietClip
	}
	return i.Clip
}

// unitChannel is the single channel unit acknowledgements play on. A new
// line replaces the one playing.
type unitChannel struct {
	info    map[UnitVoice]UnitVoiceInfo
	limiter *cooldown.Tracker
	handle  audio.PlayHandle
	current UnitVoice
}

func (s *Scheduler) ConfigureUnitVoice(v UnitVoice, info UnitVoiceInfo) {
	s.units.info[v] = info
	s.units.limiter.Configure(cooldown.Category(v), cooldown.Cooldowns{Global: info.MinInterval})
}

// PlayUnitVoice speaks a unit line for faction f on the unit channel,
// stopping the line already playing there. It is denied when muted,
// inside the line's minimum interval, or when the clip is unavailable.
// Unit lines do not count against the effect caps.
func (s *Scheduler) PlayUnitVoice(v UnitVoice, f Faction) (audio.PlayHandle, bool) {
	info, ok := s.units.info[v]
	if !ok || s.muted {
		s.stats.denied++
		return audio.NoPlay, false
	}

	if !s.units.limiter.CanFireGlobal(cooldown.Category(v)) {
		s.stats.denied++
		return audio.NoPlay, false
	}

	name := info.clip(f)
	e := s.clip(name)
	if e == nil {
		return s.deny("clip unavailable", name, cooldown.Category(v))
	}

	s.StopUnitVoice()

	h, err := s.dev.Play(e.handle, s.cfg.AnnouncementVolume*s.master, 0, false)
	if err != nil {
		s.stats.failed++
		s.logger.Error("Scheduler: device rejected unit voice", "clip", e.key, "error", err)
		return audio.NoPlay, false
	}

	s.units.limiter.TryFireGlobal(cooldown.Category(v))
	s.units.handle, s.units.current = h, v
	s.stats.announced++

	return h, true
}

// StopUnitVoice stops the unit line, if any.
func (s *Scheduler) StopUnitVoice() {
	if s.units.handle != audio.NoPlay {
		s.dev.Stop(s.units.handle)
	}
	s.units.handle, s.units.current = audio.NoPlay, 0
}

// UnitSpeaking returns the unit line playing as of the last Update.
func (s *Scheduler) UnitSpeaking() (UnitVoice, bool) {
	return s.units.current, s.units.handle != audio.NoPlay
}

// updateUnitVoice forgets a unit line that finished on its own.
func (s *Scheduler) updateUnitVoice() {
	if s.units.handle != audio.NoPlay && !s.dev.IsPlaying(s.units.handle) {
		s.units.handle, s.units.current = audio.NoPlay, 0
	}
}
