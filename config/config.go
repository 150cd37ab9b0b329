// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audcore/announce"
	"github.com/ik5/audcore/cooldown"
	"github.com/ik5/audcore/scheduler"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrUnknownVoice = errors.New("unknown voice")
	ErrUnknownMix   = errors.New("unknown mix group")
	ErrVolume       = errors.New("volume must be within [0,1]")
)

// Category configures one gameplay event.
type Category struct {
	// Clip is the sound played for the event when the caller does not
	// pick one.
	Clip          string  `yaml:"clip,omitempty"`
	GlobalMs      uint32  `yaml:"global_ms"`
	PositionMs    uint32  `yaml:"position_ms"`
	IdentityMs    uint32  `yaml:"identity_ms"`
	Priority      uint8   `yaml:"priority"`
	MaxConcurrent int     `yaml:"max_concurrent"`
	Volume        float64 `yaml:"volume"`
	Mix           string  `yaml:"mix"`
}

// Voice configures one announcer line.
type Voice struct {
	Clip          string `yaml:"clip"`
	Priority      uint8  `yaml:"priority"`
	MinIntervalMs uint32 `yaml:"min_interval_ms"`
}

// UnitVoice configures one unit acknowledgement line.
type UnitVoice struct {
	Clip string `yaml:"clip"`
	// SovietClip is played instead of Clip for Soviet units when set.
	SovietClip    string `yaml:"soviet_clip,omitempty"`
	MinIntervalMs uint32 `yaml:"min_interval_ms"`
}

// Config is the startup wiring of the audio core.
type Config struct {
	Scheduler scheduler.Config `yaml:"scheduler"`
	// Assets is the directory game audio is read from.
	Assets     string               `yaml:"assets"`
	LogLevel   string               `yaml:"log_level"`
	Muted      bool                 `yaml:"muted"`
	Mix        map[string]float64   `yaml:"mix"`
	Events     map[string]Category  `yaml:"events"`
	Voices     map[string]Voice     `yaml:"voices"`
	UnitVoices map[string]UnitVoice `yaml:"unit_voices"`
}

// Default returns the built-in tables.
func Default() *Config {
	return &Config{
		Scheduler: scheduler.DefaultConfig(),
		Assets:    ".",
		LogLevel:  "info",
		Mix: map[string]float64{
			"ui":      1,
			"combat":  1,
			"unit":    1,
			"ambient": 1,
			"special": 1,
		},
		Events:     defaultEvents(),
		Voices:     defaultVoices(),
		UnitVoices: defaultUnitVoices(),
	}
}

// overlay mirrors Config with raw nodes so a file only replaces the
// fields it names.
type overlay struct {
	Scheduler  yaml.Node            `yaml:"scheduler"`
	Assets     *string              `yaml:"assets"`
	LogLevel   *string              `yaml:"log_level"`
	Muted      *bool                `yaml:"muted"`
	Mix        map[string]float64   `yaml:"mix"`
	Events     map[string]yaml.Node `yaml:"events"`
	Voices     map[string]yaml.Node `yaml:"voices"`
	UnitVoices map[string]yaml.Node `yaml:"unit_voices"`
}

// LoadFile reads a YAML file over the defaults.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads YAML from r over the defaults. Events and voices that the
// document mentions keep every field it leaves out.
func Load(r io.Reader) (*Config, error) {
	var o overlay
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	c := Default()
	if err := c.merge(&o); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) merge(o *overlay) error {
	if !o.Scheduler.IsZero() {
		if err := o.Scheduler.Decode(&c.Scheduler); err != nil {
			return fmt.Errorf("parsing scheduler: %w", err)
		}
	}
	if o.Assets != nil {
		c.Assets = *o.Assets
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.Muted != nil {
		c.Muted = *o.Muted
	}

	for k, v := range o.Mix {
		c.Mix[k] = v
	}
	for name, n := range o.Events {
		ev := c.Events[name]
		if err := n.Decode(&ev); err != nil {
			return fmt.Errorf("parsing event %s: %w", name, err)
		}
		c.Events[name] = ev
	}
	for name, n := range o.Voices {
		v := c.Voices[name]
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("parsing voice %s: %w", name, err)
		}
		c.Voices[name] = v
	}
	for name, n := range o.UnitVoices {
		v := c.UnitVoices[name]
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("parsing unit voice %s: %w", name, err)
		}
		c.UnitVoices[name] = v
	}

	return nil
}

// Validate checks every name and volume.
func (c *Config) Validate() error {
	var errs []error

	for name, v := range c.Mix {
		if _, ok := scheduler.ParseMixGroup(name); !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownMix, name))
		}
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: mix %s = %v", ErrVolume, name, v))
		}
	}

	for name, ev := range c.Events {
		if _, ok := events[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownEvent, name))
		}
		if _, ok := scheduler.ParseMixGroup(ev.Mix); !ok {
			errs = append(errs, fmt.Errorf("%w: %s in event %s", ErrUnknownMix, ev.Mix, name))
		}
		if ev.Volume < 0 || ev.Volume > 1 {
			errs = append(errs, fmt.Errorf("%w: event %s = %v", ErrVolume, name, ev.Volume))
		}
	}

	for name := range c.Voices {
		if _, ok := voices[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownVoice, name))
		}
	}

	for name := range c.UnitVoices {
		if _, ok := unitVoices[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: unit %s", ErrUnknownVoice, name))
		}
	}

	for _, v := range []float64{c.Scheduler.MasterVolume, c.Scheduler.AnnouncementVolume, c.Scheduler.MinAudibleVolume} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: scheduler %v", ErrVolume, v))
		}
	}

	return errors.Join(errs...)
}

// Apply wires the configuration into s.
func (c *Config) Apply(s *scheduler.Scheduler) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for name, ev := range c.Events {
		mix, _ := scheduler.ParseMixGroup(ev.Mix)
		s.ConfigureCategory(events[name], scheduler.CategoryConfig{
			Cooldowns: cooldown.Cooldowns{
				Global:   ev.GlobalMs,
				Position: ev.PositionMs,
				Identity: ev.IdentityMs,
			},
			Priority:      ev.Priority,
			MaxConcurrent: ev.MaxConcurrent,
			DefaultVolume: ev.Volume,
			Mix:           mix,
		})
	}

	for name, v := range c.Voices {
		s.ConfigureVoice(voices[name], announce.Info{
			Name:        v.Clip,
			Priority:    v.Priority,
			MinInterval: v.MinIntervalMs,
		})
	}

	for name, v := range c.UnitVoices {
		s.ConfigureUnitVoice(unitVoices[name], scheduler.UnitVoiceInfo{
			Clip:        v.Clip,
			SovietClip:  v.SovietClip,
			MinInterval: v.MinIntervalMs,
		})
	}

	for name, v := range c.Mix {
		g, _ := scheduler.ParseMixGroup(name)
		s.SetMixVolume(g, v)
	}
	s.SetMuted(c.Muted)

	return nil
}

// Clips lists every clip named by events, voices and unit voices, sorted and without
// duplicates, e.g. for Scheduler.Preload.
func (c *Config) Clips() []string {
	seen := make(map[string]bool)
	for _, ev := range c.Events {
		if ev.Clip != "" {
			seen[ev.Clip] = true
		}
	}
	for _, v := range c.Voices {
		if v.Clip != "" {
			seen[v.Clip] = true
		}
	}
	for _, v := range c.UnitVoices {
		for _, clip := range []string{v.Clip, v.SovietClip} {
			if clip != "" {
				seen[clip] = true
			}
		}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Logger builds a logger at the configured level. Unknown levels fall
// back to info.
func (c *Config) Logger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: true})

	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		l.Warn("Config: unknown log level, using info", "level", c.LogLevel)
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}
