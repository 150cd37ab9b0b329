// SPDX-License-Identifier: EPL-2.0

package scheduler

import (
	"fmt"

	"github.com/ik5/audcore/announce"
	"github.com/ik5/audcore/audio"
)

// ConfigureVoice registers an announcer line. info.Name is the clip played
// for it.
func (s *Scheduler) ConfigureVoice(v announce.Voice, info announce.Info) {
	s.voices.Configure(v, info)
}

// Announce requests an announcer line. It interrupts a lower priority
// line, queues behind an equal or higher one, and returns false when the
// voice is muted, rate limited or could not be played.
func (s *Scheduler) Announce(v announce.Voice) bool {
	if s.muted {
		s.stats.denied++
		return false
	}
	return s.voices.Request(v)
}

// EnqueueAnnouncement queues v behind the current line without trying to
// play it now.
func (s *Scheduler) EnqueueAnnouncement(v announce.Voice) {
	if s.muted {
		return
	}
	s.voices.Enqueue(v)
}

// ClearAnnouncements drops queued lines; the current one keeps playing.
func (s *Scheduler) ClearAnnouncements() {
	s.voices.Clear()
}

// Speaking returns the announcer line being played, if any.
func (s *Scheduler) Speaking() (announce.Voice, bool) {
	return s.voices.Current()
}

// voiceDispatcher plays announcer lines outside the effect caps: the
// announcer owns a single dedicated channel.
type voiceDispatcher struct {
	s *Scheduler
}

func (d voiceDispatcher) Speak(v announce.Voice) (audio.PlayHandle, error) {
	info, ok := d.s.voices.Info(v)
	if !ok {
		return audio.NoPlay, fmt.Errorf("%w: %d", ErrUnknownVoice, v)
	}

	e := d.s.clip(info.Name)
	if e == nil {
		return audio.NoPlay, fmt.Errorf("%w: %s", ErrClipUnavailable, info.Name)
	}

	h, err := d.s.dev.Play(e.handle, d.s.cfg.AnnouncementVolume*d.s.master, 0, false)
	if err != nil {
		d.s.stats.failed++
		return audio.NoPlay, fmt.Errorf("play %s: %w", info.Name, err)
	}

	d.s.stats.announced++
	return h, nil
}

func (d voiceDispatcher) Stop(h audio.PlayHandle) { d.s.dev.Stop(h) }

func (d voiceDispatcher) IsPlaying(h audio.PlayHandle) bool { return d.s.dev.IsPlaying(h) }
