// SPDX-License-Identifier: EPL-2.0

package audcore

import (
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ik5/audcore/archive"
	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/config"
	"github.com/ik5/audcore/formats/aiff"
	"github.com/ik5/audcore/formats/aud"
	"github.com/ik5/audcore/formats/mp3"
	"github.com/ik5/audcore/formats/vorbis"
	"github.com/ik5/audcore/formats/wav"
	"github.com/ik5/audcore/scheduler"
)

// DefaultRegistry returns a registry holding every bundled decoder, keyed
// by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("aud", aud.Decoder{})
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

type options struct {
	fsys      fs.FS
	logger    *log.Logger
	schedOpts []scheduler.Option
}

type Option func(*options)

// WithFS serves assets from fsys instead of the Assets directory.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSchedulerOptions passes extra options, e.g. a listener, to the
// scheduler.
func WithSchedulerOptions(opts ...scheduler.Option) Option {
	return func(o *options) { o.schedOpts = append(o.schedOpts, opts...) }
}

// New wires a scheduler from cfg: assets are resolved from cfg.Assets
// with replacement lookups, every bundled format is decodable and the
// event and voice tables are applied.
func New(cfg *config.Config, dev audio.Device, opts ...Option) (*scheduler.Scheduler, error) {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		o.fsys = os.DirFS(cfg.Assets)
	}

	dir := archive.NewDir(o.fsys, archive.WithLogger(o.logger))

	schedOpts := append([]scheduler.Option{
		scheduler.WithLogger(o.logger),
		scheduler.WithRegistry(DefaultRegistry()),
	}, o.schedOpts...)
	s := scheduler.New(cfg.Scheduler, dev, dir, schedOpts...)

	if err := cfg.Apply(s); err != nil {
		return nil, err
	}

	o.logger.Debug("Audio: scheduler ready", "assets", cfg.Assets,
		"events", len(cfg.Events), "voices", len(cfg.Voices))

	return s, nil
}
