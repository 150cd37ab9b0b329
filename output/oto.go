// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audcore/audio"
	"github.com/ik5/audcore/utils"
)

// player is the subset of *oto.Player the device drives.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

type voice struct {
	player player
	panner *audio.Panner
}

// Oto plays clips through one stereo signed 16-bit oto context. Clips
// must match the context's sample rate; nothing is resampled. It is safe
// for concurrent use.
type Oto struct {
	rate      int
	newPlayer func(r io.Reader) player
	logger    *log.Logger

	mtx      sync.Mutex
	clips    map[audio.ClipHandle]*audio.Clip
	voices   map[audio.PlayHandle]*voice
	nextClip audio.ClipHandle
	nextPlay audio.PlayHandle
}

type Option func(*Oto)

func WithLogger(l *log.Logger) Option {
	return func(o *Oto) { o.logger = l }
}

// NewOto opens the audio output. oto allows a single context per
// process, so create one Oto and share it.
func NewOto(sampleRate int, opts ...Option) (*Oto, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio output: %w", err)
	}
	<-ready

	return newDevice(sampleRate, func(r io.Reader) player {
		return ctx.NewPlayer(r)
	}, opts...), nil
}

func newDevice(sampleRate int, newPlayer func(io.Reader) player, opts ...Option) *Oto {
	o := &Oto{
		rate:      sampleRate,
		newPlayer: newPlayer,
		logger:    log.Default(),
		clips:     make(map[audio.ClipHandle]*audio.Clip),
		voices:    make(map[audio.PlayHandle]*voice),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *Oto) SampleRate() int { return o.rate }

// CreateClip copies 16-bit little-endian PCM into a new clip.
func (o *Oto) CreateClip(pcm []byte, sampleRate, channels, bits int) (audio.ClipHandle, error) {
	if bits != 16 {
		return audio.NoClip, fmt.Errorf("%w: got %d", audio.ErrUnsupportedBitDepth, bits)
	}
	if sampleRate != o.rate {
		return audio.NoClip, fmt.Errorf("%w: clip %d Hz, device %d Hz", audio.ErrSampleRateMismatch, sampleRate, o.rate)
	}

	c, err := audio.NewClip(utils.PCM16LE(pcm), sampleRate, channels)
	if err != nil {
		return audio.NoClip, err
	}

	o.mtx.Lock()
	defer o.mtx.Unlock()

	o.nextClip++
	o.clips[o.nextClip] = c

	return o.nextClip, nil
}

// DestroyClip forgets c. Plays already started keep their data.
func (o *Oto) DestroyClip(c audio.ClipHandle) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	delete(o.clips, c)
}

func (o *Oto) Play(c audio.ClipHandle, volume, pan float64, loop bool) (audio.PlayHandle, error) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	clip, ok := o.clips[c]
	if !ok {
		return audio.NoPlay, fmt.Errorf("%w: %d", audio.ErrUnknownClip, c)
	}

	pn := audio.NewPanner(clip.Source(loop), volume, pan)
	p := o.newPlayer(&pcmReader{src: pn})
	p.Play()

	o.nextPlay++
	o.voices[o.nextPlay] = &voice{player: p, panner: pn}

	// reap finished players so the map does not grow with fire and forget
	// callers that never poll
	for h, v := range o.voices {
		if h != o.nextPlay && !v.player.IsPlaying() {
			o.closeVoice(h, v)
		}
	}

	return o.nextPlay, nil
}

func (o *Oto) IsPlaying(h audio.PlayHandle) bool {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	v, ok := o.voices[h]
	return ok && v.player.IsPlaying()
}

func (o *Oto) Stop(h audio.PlayHandle) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if v, ok := o.voices[h]; ok {
		v.player.Pause()
		o.closeVoice(h, v)
	}
}

func (o *Oto) SetVolume(h audio.PlayHandle, volume float64) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	if v, ok := o.voices[h]; ok {
		v.panner.SetVolume(volume)
	}
}

// Close stops every play. Clips stay valid.
func (o *Oto) Close() error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	for h, v := range o.voices {
		v.player.Pause()
		o.closeVoice(h, v)
	}

	return nil
}

// closeVoice must be called with mtx held.
func (o *Oto) closeVoice(h audio.PlayHandle, v *voice) {
	if err := v.player.Close(); err != nil {
		o.logger.Warn("Output: closing player", "handle", h, "error", err)
	}
	delete(o.voices, h)
}
