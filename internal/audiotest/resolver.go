// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"strings"
	"sync"
)

// ErrMissing is returned by Resolver for unknown names.
var ErrMissing = errors.New("audiotest: asset not found")

// Resolver serves assets from a map. Names are case insensitive.
type Resolver struct {
	mtx    sync.Mutex
	assets map[string][]byte
	hits   map[string]int
}

func NewResolver() *Resolver {
	return &Resolver{
		assets: make(map[string][]byte),
		hits:   make(map[string]int),
	}
}

// Add registers an asset and returns the resolver for chaining.
func (r *Resolver) Add(name string, data []byte) *Resolver {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.assets[strings.ToUpper(name)] = data
	return r
}

func (r *Resolver) FindBytes(name string) ([]byte, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	key := strings.ToUpper(name)
	r.hits[key]++

	b, ok := r.assets[key]
	if !ok {
		return nil, ErrMissing
	}
	return b, nil
}

// Lookups reports how many times name was requested.
func (r *Resolver) Lookups(name string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.hits[strings.ToUpper(name)]
}

// Listener is a fixed listener position that tests move by hand.
type Listener struct {
	X, Y int
}

func (l *Listener) ListenerPosition() (int, int) { return l.X, l.Y }
