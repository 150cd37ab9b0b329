// SPDX-License-Identifier: EPL-2.0

package archive

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultFallbacks are tried, in order, when an asset is missing under
// its own name.
var DefaultFallbacks = []string{".aud", ".wav", ".ogg", ".mp3", ".aiff", ".aif"}

// Dir resolves asset names against a file system tree, ignoring case.
// It is safe for concurrent use.
type Dir struct {
	fsys      fs.FS
	fallbacks []string
	logger    *log.Logger

	once  sync.Once
	index map[string]string
	err   error
}

type Option func(*Dir)

// WithFallbacks replaces DefaultFallbacks. Pass no extensions to disable
// fallback lookups.
func WithFallbacks(exts ...string) Option {
	return func(d *Dir) { d.fallbacks = exts }
}

func WithLogger(l *log.Logger) Option {
	return func(d *Dir) { d.logger = l }
}

func NewDir(fsys fs.FS, opts ...Option) *Dir {
	d := &Dir{
		fsys:      fsys,
		fallbacks: DefaultFallbacks,
		logger:    log.Default(),
	}
	for _, o := range opts {
		o(d)
	}

	return d
}

// Locate returns the path of the file serving name. The exact name wins;
// otherwise the same stem with each fallback extension is tried.
func (d *Dir) Locate(name string) (string, error) {
	key, err := normalize(name)
	if err != nil {
		return "", err
	}

	if err := d.load(); err != nil {
		return "", err
	}

	if p, ok := d.index[key]; ok {
		return p, nil
	}

	stem := strings.TrimSuffix(key, path.Ext(key))
	for _, ext := range d.fallbacks {
		if p, ok := d.index[stem+strings.ToUpper(ext)]; ok {
			d.logger.Debug("Archive: using replacement", "name", name, "path", p)
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// FindBytes reads the file serving name.
func (d *Dir) FindBytes(name string) ([]byte, error) {
	p, err := d.Locate(name)
	if err != nil {
		return nil, err
	}

	b, err := fs.ReadFile(d.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}

	return b, nil
}

// Names lists every indexed file path.
func (d *Dir) Names() ([]string, error) {
	if err := d.load(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(d.index))
	for _, p := range d.index {
		out = append(out, p)
	}

	return out, nil
}

// load indexes the tree once. Files are keyed by their upper-cased path;
// on collisions the first path in lexical order wins.
func (d *Dir) load() error {
	d.once.Do(func() {
		d.index = make(map[string]string)
		d.err = fs.WalkDir(d.fsys, ".", func(p string, e fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if e.IsDir() {
				return nil
			}

			key := strings.ToUpper(p)
			if _, dup := d.index[key]; !dup {
				d.index[key] = p
			}
			return nil
		})
		if d.err != nil {
			d.err = fmt.Errorf("indexing assets: %w", d.err)
			return
		}

		d.logger.Debug("Archive: indexed", "files", len(d.index))
	})

	return d.err
}

func normalize(name string) (string, error) {
	name = strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return strings.ToUpper(name), nil
}
