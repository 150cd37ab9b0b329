// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvAssets              = "AUDCORE_ASSETS"
	EnvLogLevel            = "AUDCORE_LOG_LEVEL"
	EnvMuted               = "AUDCORE_MUTED"
	EnvMaxConcurrentSounds = "AUDCORE_MAX_CONCURRENT_SOUNDS"
	EnvMaxSameClip         = "AUDCORE_MAX_SAME_CLIP"
	EnvMaxAudibleDistance  = "AUDCORE_MAX_AUDIBLE_DISTANCE"
	EnvMinAudibleVolume    = "AUDCORE_MIN_AUDIBLE_VOLUME"
	EnvTileSize            = "AUDCORE_TILE_SIZE"
	EnvMasterVolume        = "AUDCORE_MASTER_VOLUME"
	EnvAnnouncementVolume  = "AUDCORE_ANNOUNCEMENT_VOLUME"
	EnvPreemptLower        = "AUDCORE_PREEMPT_LOWER_PRIORITY"
)

// LoadEnv loads the given .env files, or ./.env when none are given, into
// the process environment and applies AUDCORE_* overrides. A missing
// default .env is not an error. Values that fail to parse are logged and
// ignored.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading env: %w", err)
		}
	}

	c.Assets = getEnv(EnvAssets, c.Assets)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.Muted = getEnvBool(EnvMuted, c.Muted)

	s := &c.Scheduler
	s.MaxConcurrentSounds = getEnvInt(EnvMaxConcurrentSounds, s.MaxConcurrentSounds)
	s.MaxSameClip = getEnvInt(EnvMaxSameClip, s.MaxSameClip)
	s.MaxAudibleDistance = getEnvFloat(EnvMaxAudibleDistance, s.MaxAudibleDistance)
	s.MinAudibleVolume = getEnvFloat(EnvMinAudibleVolume, s.MinAudibleVolume)
	s.TileSize = getEnvInt(EnvTileSize, s.TileSize)
	s.MasterVolume = getEnvFloat(EnvMasterVolume, s.MasterVolume)
	s.AnnouncementVolume = getEnvFloat(EnvAnnouncementVolume, s.AnnouncementVolume)
	s.PreemptLowerPriority = getEnvBool(EnvPreemptLower, s.PreemptLowerPriority)

	return c.Validate()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("Config: ignoring invalid integer", "key", key, "value", value, "error", err)
		return defaultValue
	}
	return intValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn("Config: ignoring invalid float", "key", key, "value", value, "error", err)
		return defaultValue
	}
	return floatValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn("Config: ignoring invalid bool", "key", key, "value", value, "error", err)
		return defaultValue
	}
	return boolValue
}
