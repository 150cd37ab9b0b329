// SPDX-License-Identifier: EPL-2.0

package audio

// ClipHandle names PCM data uploaded to a Device.
type ClipHandle uint32

// PlayHandle names one playing instance of a clip.
type PlayHandle uint32

const (
	// NoClip is never returned by a successful CreateClip.
	NoClip ClipHandle = 0
	// NoPlay is never returned by a successful Play.
	NoPlay PlayHandle = 0
)

// Device is the playback backend. Volume is linear in [0,1] and pan runs
// from -1 (left) to 1 (right).
type Device interface {
	CreateClip(pcm []byte, sampleRate, channels, bits int) (ClipHandle, error)
	DestroyClip(c ClipHandle)
	Play(c ClipHandle, volume, pan float64, loop bool) (PlayHandle, error)
	IsPlaying(h PlayHandle) bool
	Stop(h PlayHandle)
	SetVolume(h PlayHandle, volume float64)
}
