// SPDX-License-Identifier: EPL-2.0

package scheduler

import (
	"github.com/charmbracelet/log"

	"github.com/ik5/audcore/audio"
)

type Option func(*Scheduler)

func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithListener makes Update poll l for the listener position.
func WithListener(l Listener) Option {
	return func(s *Scheduler) { s.listener = l }
}

// WithRegistry sets the decoders used to load clips. The default only
// knows the AUD container.
func WithRegistry(r *audio.Registry) Option {
	return func(s *Scheduler) { s.registry = r }
}
