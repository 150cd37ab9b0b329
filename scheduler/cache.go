// SPDX-License-Identifier: EPL-2.0

package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"github.com/remeh/sizedwaitgroup"

	"github.com/ik5/audcore/audio"
)

// clipEntry is a cached load result. Failed loads are kept too so a
// missing asset is reported once.
type clipEntry struct {
	key    string
	clip   *audio.Clip
	handle audio.ClipHandle
	err    error
}

// clip returns the loaded entry for name, loading it on first use. It
// returns nil for clips that failed to load.
func (s *Scheduler) clip(name string) *clipEntry {
	key := clipKey(name)
	e, ok := s.clips[key]
	if !ok {
		c, err := s.decode(name)
		e = s.store(key, c, err)
	}

	if e.err != nil {
		return nil
	}
	return e
}

// decode resolves and decodes name without touching scheduler state.
func (s *Scheduler) decode(name string) (*audio.Clip, error) {
	if l, ok := s.res.(Locator); ok {
		p, err := l.Locate(name)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		name = p
	}

	dec, ok := s.registry.ForName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDecoder, name)
	}

	b, err := s.res.FindBytes(name)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", name, err)
	}

	c, err := dec.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return c, nil
}

// store uploads a decoded clip to the device and caches the outcome.
func (s *Scheduler) store(key string, c *audio.Clip, err error) *clipEntry {
	e := &clipEntry{key: key, clip: c, err: err}

	if err == nil {
		h, cerr := s.dev.CreateClip(c.Bytes(), c.SampleRate, c.Channels, 16)
		if cerr != nil {
			e.clip = nil
			e.err = fmt.Errorf("create clip %s: %w", key, cerr)
		} else {
			e.handle = h
		}
	}

	if e.err != nil {
		s.logger.Warn("Scheduler: clip unavailable", "clip", key, "error", e.err)
	} else {
		s.logger.Debug("Scheduler: clip loaded", "clip", key,
			"rate", c.SampleRate, "channels", c.Channels, "duration", c.Duration())
	}

	s.clips[key] = e
	return e
}

// Preload decodes names in parallel and uploads them to the device from
// the calling goroutine. Names already cached, loaded or not, are
// skipped. It returns how many clips became available and stops early
// with ctx's error when ctx is done.
func (s *Scheduler) Preload(ctx context.Context, names []string) (int, error) {
	type result struct {
		key  string
		clip *audio.Clip
		err  error
	}

	var pending []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		key := clipKey(name)
		if _, ok := s.clips[key]; ok || seen[key] {
			continue
		}
		seen[key] = true
		pending = append(pending, name)
	}

	results := make([]result, len(pending))
	wg := sizedwaitgroup.New(runtime.NumCPU())

	started := 0
	var ctxErr error
	for i, name := range pending {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		if ctxErr = wg.AddWithContext(ctx); ctxErr != nil {
			break
		}
		started++

		go func(i int, name string) {
			defer wg.Done()

			c, err := s.decode(name)
			results[i] = result{key: clipKey(name), clip: c, err: err}
		}(i, name)
	}
	wg.Wait()

	loaded := 0
	for _, r := range results[:started] {
		if s.store(r.key, r.clip, r.err).err == nil {
			loaded++
		}
	}

	if ctxErr != nil {
		return loaded, fmt.Errorf("preload: %w", ctxErr)
	}
	return loaded, nil
}

// Loaded reports whether name is cached and usable.
func (s *Scheduler) Loaded(name string) bool {
	e, ok := s.clips[clipKey(name)]
	return ok && e.err == nil
}

// Clip returns the decoded clip for name, loading it if needed.
func (s *Scheduler) Clip(name string) (*audio.Clip, error) {
	if e := s.clip(name); e != nil {
		return e.clip, nil
	}

	e := s.clips[clipKey(name)]
	return nil, fmt.Errorf("%w: %w", ErrClipUnavailable, e.err)
}
