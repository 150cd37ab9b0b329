// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"sync"

	"github.com/ik5/audcore/audio"
)

// ErrRejected is returned by Device when a failure was injected.
var ErrRejected = errors.New("audiotest: device rejected call")

// PlayCall records one Device.Play invocation.
type PlayCall struct {
	Clip   audio.ClipHandle
	Volume float64
	Pan    float64
	Loop   bool
	Handle audio.PlayHandle
}

// UploadedClip is the PCM a clip was created from.
type UploadedClip struct {
	PCM        []byte
	SampleRate int
	Channels   int
	Bits       int
}

// Device is an in-memory audio.Device. Plays stay active until Finish or
// Stop is called for their handle.
type Device struct {
	mtx sync.Mutex

	// FailCreate and FailPlay make the next calls return ErrRejected.
	FailCreate bool
	FailPlay   bool

	clips    map[audio.ClipHandle]UploadedClip
	playing  map[audio.PlayHandle]bool
	volumes  map[audio.PlayHandle]float64
	plays    []PlayCall
	stops    []audio.PlayHandle
	creates  int
	destroys int
	calls    int

	nextClip audio.ClipHandle
	nextPlay audio.PlayHandle
}

func NewDevice() *Device {
	return &Device{
		clips:   make(map[audio.ClipHandle]UploadedClip),
		playing: make(map[audio.PlayHandle]bool),
		volumes: make(map[audio.PlayHandle]float64),
	}
}

func (d *Device) CreateClip(pcm []byte, sampleRate, channels, bits int) (audio.ClipHandle, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.calls++
	d.creates++
	if d.FailCreate {
		return audio.NoClip, ErrRejected
	}

	d.nextClip++
	d.clips[d.nextClip] = UploadedClip{
		PCM:        pcm,
		SampleRate: sampleRate,
		Channels:   channels,
		Bits:       bits,
	}

	return d.nextClip, nil
}

func (d *Device) DestroyClip(c audio.ClipHandle) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.calls++
	d.destroys++
	delete(d.clips, c)
}

func (d *Device) Play(c audio.ClipHandle, volume, pan float64, loop bool) (audio.PlayHandle, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.calls++
	if d.FailPlay {
		return audio.NoPlay, ErrRejected
	}
	if _, ok := d.clips[c]; !ok {
		return audio.NoPlay, audio.ErrUnknownClip
	}

	d.nextPlay++
	d.playing[d.nextPlay] = true
	d.volumes[d.nextPlay] = volume
	d.plays = append(d.plays, PlayCall{
		Clip:   c,
		Volume: volume,
		Pan:    pan,
		Loop:   loop,
		Handle: d.nextPlay,
	})

	return d.nextPlay, nil
}

func (d *Device) IsPlaying(h audio.PlayHandle) bool {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.playing[h]
}

func (d *Device) Stop(h audio.PlayHandle) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.calls++
	if d.playing[h] {
		d.stops = append(d.stops, h)
	}
	delete(d.playing, h)
}

func (d *Device) SetVolume(h audio.PlayHandle, volume float64) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.calls++
	if d.playing[h] {
		d.volumes[h] = volume
	}
}

// Finish ends the given plays as if they ran to completion.
func (d *Device) Finish(hs ...audio.PlayHandle) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	for _, h := range hs {
		delete(d.playing, h)
	}
}

// FinishAll ends every active play.
func (d *Device) FinishAll() {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	clear(d.playing)
}

// Plays returns a copy of every successful Play call in order.
func (d *Device) Plays() []PlayCall {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return append([]PlayCall(nil), d.plays...)
}

// Stops returns the handles stopped while they were still playing.
func (d *Device) Stops() []audio.PlayHandle {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return append([]audio.PlayHandle(nil), d.stops...)
}

// Active counts plays that have not finished.
func (d *Device) Active() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return len(d.playing)
}

// Clip returns what was uploaded for c.
func (d *Device) Clip(c audio.ClipHandle) (UploadedClip, bool) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	u, ok := d.clips[c]
	return u, ok
}

// Clips counts live clips.
func (d *Device) Clips() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return len(d.clips)
}

// Creates counts CreateClip calls, including failed ones.
func (d *Device) Creates() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.creates
}

// Calls counts every mutating call made on the device. IsPlaying is
// excluded since the scheduler polls it every tick.
func (d *Device) Calls() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.calls
}

// Volume returns the current volume of h.
func (d *Device) Volume(h audio.PlayHandle) float64 {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.volumes[h]
}
