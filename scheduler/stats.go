// SPDX-License-Identifier: EPL-2.0

package scheduler

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/ik5/audcore/cooldown"
)

type counters struct {
	played    uint64
	announced uint64
	denied    uint64
	failed    uint64
}

// Stats is a snapshot of scheduler state for debug overlays.
type Stats struct {
	LoadedClips  int
	MissingClips int
	CachedBytes  uint64
	Active       int
	Queued       int

	Played    uint64
	Announced uint64
	Denied    uint64
	Failed    uint64

	Cooldowns cooldown.Stats
	// Tracked is the number of live cooldown entries.
	Tracked int
}

func (s *Scheduler) Stats() Stats {
	st := Stats{
		Active:    len(s.active),
		Queued:    s.voices.Len(),
		Played:    s.stats.played,
		Announced: s.stats.announced,
		Denied:    s.stats.denied,
		Failed:    s.stats.failed,
		Cooldowns: s.tracker.Stats(),
		Tracked:   s.tracker.Tracked(),
	}

	for _, e := range s.clips {
		if e.err != nil {
			st.MissingClips++
			continue
		}
		st.LoadedClips++
		st.CachedBytes += uint64(len(e.clip.Samples) * 2)
	}

	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("clips %d loaded (%s), %d missing; active %d, queued %d; played %s, announced %s, denied %s, failed %s",
		st.LoadedClips, humanize.Bytes(st.CachedBytes), st.MissingClips,
		st.Active, st.Queued,
		humanize.Comma(int64(st.Played)), humanize.Comma(int64(st.Announced)),
		humanize.Comma(int64(st.Denied)), humanize.Comma(int64(st.Failed)))
}
