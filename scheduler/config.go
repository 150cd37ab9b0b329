// SPDX-License-Identifier: EPL-2.0

package scheduler

import (
	"github.com/ik5/audcore/cooldown"
)

// Config holds the process-wide playback limits.
type Config struct {
	// MaxConcurrentSounds caps every tracked effect across categories.
	MaxConcurrentSounds int `yaml:"max_concurrent_sounds"`
	// MaxSameClip caps simultaneous plays of one clip. Zero disables it.
	MaxSameClip int `yaml:"max_same_clip"`
	// MaxAudibleDistance in world pixels. Sounds at or beyond it are culled.
	MaxAudibleDistance float64 `yaml:"max_audible_distance"`
	// MinAudibleVolume culls plays whose final volume falls below it.
	MinAudibleVolume float64 `yaml:"min_audible_volume"`
	// TileSize converts world pixels to cells for position cooldowns.
	TileSize     int     `yaml:"tile_size"`
	MasterVolume float64 `yaml:"master_volume"`
	// CleanupIntervalMs is how often Update evicts stale cooldown entries.
	CleanupIntervalMs uint32 `yaml:"cleanup_interval_ms"`
	// AnnouncementVolume is applied to announcer lines before master volume.
	AnnouncementVolume float64 `yaml:"announcement_volume"`
	// PreemptLowerPriority lets a request at the global cap stop the
	// lowest priority effect when that priority is strictly lower. When
	// false a full global cap drops the request.
	PreemptLowerPriority bool `yaml:"preempt_lower_priority"`
}

func DefaultConfig() Config {
	return Config{
		MaxConcurrentSounds: 16,
		MaxSameClip:         3,
		MaxAudibleDistance:  1200,
		MinAudibleVolume:    0.05,
		TileSize:            24,
		MasterVolume:        1.0,
		CleanupIntervalMs:   5000,
		AnnouncementVolume:  1.0,
	}
}

// normalized replaces values that would make distance or cell math
// meaningless with their defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MaxAudibleDistance <= 0 {
		c.MaxAudibleDistance = def.MaxAudibleDistance
	}
	if c.TileSize <= 0 {
		c.TileSize = def.TileSize
	}
	if c.MaxConcurrentSounds <= 0 {
		c.MaxConcurrentSounds = def.MaxConcurrentSounds
	}
	c.MasterVolume = clamp01(c.MasterVolume)
	c.AnnouncementVolume = clamp01(c.AnnouncementVolume)

	return c
}

// MixGroup is a user facing volume slider shared by several categories.
type MixGroup int

const (
	MixUI MixGroup = iota
	MixCombat
	MixUnit
	MixAmbient
	MixSpecial

	mixGroups
)

func (g MixGroup) String() string {
	switch g {
	case MixUI:
		return "ui"
	case MixCombat:
		return "combat"
	case MixUnit:
		return "unit"
	case MixAmbient:
		return "ambient"
	case MixSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// ParseMixGroup is the inverse of MixGroup.String.
func ParseMixGroup(s string) (MixGroup, bool) {
	for g := MixUI; g < mixGroups; g++ {
		if g.String() == s {
			return g, true
		}
	}
	return MixUI, false
}

// CategoryConfig is the static wiring of one event category.
type CategoryConfig struct {
	Cooldowns cooldown.Cooldowns
	// Priority decides which sound gives way at the global cap when
	// Config.PreemptLowerPriority is set.
	Priority uint8
	// MaxConcurrent caps active plays of the category. Zero disables it.
	MaxConcurrent int
	DefaultVolume float64
	Mix           MixGroup
}

func defaultCategory() CategoryConfig {
	return CategoryConfig{DefaultVolume: 1, Mix: MixUI}
}

// Resolver supplies raw asset bytes by name. Preload calls it from
// several goroutines.
type Resolver interface {
	FindBytes(name string) ([]byte, error)
}

// Locator is implemented by resolvers that may serve a name from a
// different file, e.g. a replacement asset in another format. The
// decoder is then chosen by the located name.
type Locator interface {
	Locate(name string) (string, error)
}

// Listener reports the world position sounds are heard from, usually the
// centre of the viewport.
type Listener interface {
	ListenerPosition() (x, y int)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
