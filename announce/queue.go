// SPDX-License-Identifier: EPL-2.0

package announce

import (
	"container/heap"

	"github.com/charmbracelet/log"

	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/cooldown"
)

// Voice identifies an announcer line.
type Voice int

// Info is the static configuration of a voice.
type Info struct {
	// Name is the asset played for the voice, e.g. "BASEATK1.AUD".
	Name string
	// Priority decides preemption and queue order; higher wins.
	Priority uint8
	// MinInterval is the minimum time in milliseconds between two
	// plays of the same voice. Zero disables it.
	MinInterval uint32
}

// State of the single announcer channel.
type State int

const (
	Idle State = iota
	Speaking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Speaking:
		return "speaking"
	default:
		return "unknown"
	}
}

// Dispatcher plays voice lines on behalf of the queue.
type Dispatcher interface {
	Speak(v Voice) (audio.PlayHandle, error)
	Stop(h audio.PlayHandle)
	IsPlaying(h audio.PlayHandle) bool
}

// Queue runs one announcer channel: a single line plays at a time, a
// higher priority request interrupts it and anything else waits in a
// priority queue. Not safe for concurrent use.
type Queue struct {
	clock      cooldown.Clock
	dispatcher Dispatcher
	limiter    *cooldown.Tracker
	logger     *log.Logger

	voices  map[Voice]Info
	pending entryHeap
	seq     uint64

	state           State
	current         Voice
	currentPriority uint8
	handle          audio.PlayHandle
}

type Option func(*Queue)

func WithLogger(l *log.Logger) Option {
	return func(q *Queue) { q.logger = l }
}

func New(clock cooldown.Clock, d Dispatcher, opts ...Option) *Queue {
	if clock == nil {
		clock = cooldown.SystemClock()
	}

	q := &Queue{
		clock:      clock,
		dispatcher: d,
		limiter:    cooldown.New(clock),
		logger:     log.Default(),
		voices:     make(map[Voice]Info),
	}
	for _, o := range opts {
		o(q)
	}

	return q
}

// Configure registers the static settings of a voice.
func (q *Queue) Configure(v Voice, info Info) {
	q.voices[v] = info
	q.limiter.Configure(cooldown.Category(v), cooldown.Cooldowns{Global: info.MinInterval})
}

// Info returns the configuration of v.
func (q *Queue) Info(v Voice) (Info, bool) {
	info, ok := q.voices[v]
	return info, ok
}

// Request asks for v at its configured priority. It reports whether the
// line was played or queued; false means it was rate limited or the
// dispatcher failed.
func (q *Queue) Request(v Voice) bool {
	return q.RequestPriority(v, q.voices[v].Priority)
}

// RequestPriority is Request with an explicit priority.
func (q *Queue) RequestPriority(v Voice, priority uint8) bool {
	if !q.eligible(v) {
		q.logger.Debug("Announce: rate limited", "voice", v)
		return false
	}

	if q.state == Idle {
		return q.dispatch(v, priority)
	}

	if priority > q.currentPriority {
		q.logger.Debug("Announce: interrupting", "current", q.current, "voice", v, "priority", priority)
		q.stopCurrent()
		return q.dispatch(v, priority)
	}

	q.push(v, priority)
	return true
}

// Enqueue adds v to the queue without trying to play it.
func (q *Queue) Enqueue(v Voice) {
	q.push(v, q.voices[v].Priority)
}

// OnPlaybackFinished marks the channel idle and starts the next eligible
// queued line. Entries that are still inside their minimum interval are
// discarded.
func (q *Queue) OnPlaybackFinished() {
	q.state = Idle
	q.handle = audio.NoPlay
	q.advance()
}

// Update polls the dispatcher for the end of the current line and keeps
// the queue moving. Call it once per tick.
func (q *Queue) Update() {
	if q.state == Speaking && !q.dispatcher.IsPlaying(q.handle) {
		q.OnPlaybackFinished()
		return
	}

	if q.state == Idle {
		q.advance()
	}
}

// Clear drops every queued line. The current line keeps playing.
func (q *Queue) Clear() {
	q.pending = q.pending[:0]
}

// Stop silences the current line without touching the queue.
func (q *Queue) Stop() {
	q.stopCurrent()
}

func (q *Queue) State() State { return q.state }
func (q *Queue) Len() int     { return q.pending.Len() }

// Current returns the playing voice, if any.
func (q *Queue) Current() (Voice, bool) {
	return q.current, q.state == Speaking
}

func (q *Queue) eligible(v Voice) bool {
	return q.limiter.CanFireGlobal(cooldown.Category(v))
}

func (q *Queue) push(v Voice, priority uint8) {
	q.seq++
	heap.Push(&q.pending, entry{
		voice:    v,
		priority: priority,
		queuedAt: q.clock(),
		seq:      q.seq,
	})
}

func (q *Queue) advance() {
	for q.state == Idle && q.pending.Len() > 0 {
		e := heap.Pop(&q.pending).(entry)

		if !q.eligible(e.voice) {
			q.logger.Debug("Announce: dropping stale entry", "voice", e.voice)
			continue
		}

		q.dispatch(e.voice, e.priority)
	}
}

func (q *Queue) dispatch(v Voice, priority uint8) bool {
	h, err := q.dispatcher.Speak(v)
	if err != nil {
		q.logger.Error("Announce: dispatch failed", "voice", v, "error", err)
		return false
	}

	q.limiter.TryFireGlobal(cooldown.Category(v))
	q.state = Speaking
	q.current = v
	q.currentPriority = priority
	q.handle = h

	return true
}

func (q *Queue) stopCurrent() {
	if q.state == Speaking {
		q.dispatcher.Stop(q.handle)
	}
	q.state = Idle
	q.handle = audio.NoPlay
	q.currentPriority = 0
}
