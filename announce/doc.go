// SPDX-License-Identifier: EPL-2.0

// Package announce drives the single announcer voice channel.
//
// Only one line plays at a time. A Request while idle plays at once; a
// Request with a strictly higher priority than the current line stops it
// and plays instead (the interrupted line is not resumed); anything else
// is queued and reported as accepted. Queued lines leave in priority order,
// oldest first within a priority, when the current line ends. Every voice
// has a minimum interval between plays, checked at request time and again
// when it leaves the queue, so stale entries are dropped silently.
//
// The Queue does not touch audio devices itself. A Dispatcher plays and
// stops the lines, and the owner calls Update each tick so the queue can
// notice finished playback.
package announce
