// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Panner turns a mono or stereo Source into a stereo Source with volume
// and balance applied. Volume and pan may be changed while another
// goroutine is reading.
type Panner struct {
	src Source
	tmp []float32

	volume atomic.Uint64
	pan    atomic.Uint64
}

func NewPanner(src Source, volume, pan float64) *Panner {
	p := &Panner{
		src: src,
		tmp: make([]float32, 4096),
	}
	p.SetVolume(volume)
	p.SetPan(pan)

	return p
}

func (p *Panner) SampleRate() int { return p.src.SampleRate() }
func (p *Panner) Channels() int   { return 2 }
func (p *Panner) BufSize() int    { return p.src.BufSize() }
func (p *Panner) Close() error {
	err := p.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// SetVolume clamps v to [0,1].
func (p *Panner) SetVolume(v float64) {
	p.volume.Store(math.Float64bits(clamp(v, 0, 1)))
}

// SetPan clamps v to [-1,1].
func (p *Panner) SetPan(v float64) {
	p.pan.Store(math.Float64bits(clamp(v, -1, 1)))
}

func (p *Panner) Volume() float64 { return math.Float64frombits(p.volume.Load()) }
func (p *Panner) Pan() float64    { return math.Float64frombits(p.pan.Load()) }

// Gains returns the left and right multipliers. Centre pan leaves both
// channels at full volume; panning attenuates the opposite side linearly.
func (p *Panner) Gains() (left, right float32) {
	return PanGains(p.Volume(), p.Pan())
}

// PanGains is the balance law used by Panner.
func PanGains(volume, pan float64) (left, right float32) {
	volume = clamp(volume, 0, 1)
	pan = clamp(pan, -1, 1)

	l, r := volume, volume
	if pan > 0 {
		l *= 1 - pan
	} else if pan < 0 {
		r *= 1 + pan
	}

	return float32(l), float32(r)
}

func (p *Panner) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := p.src.Channels()
	frames := len(dst) / 2
	samplesNeeded := frames * channels

	if cap(p.tmp) < samplesNeeded {
		p.tmp = make([]float32, samplesNeeded)
	}
	p.tmp = p.tmp[:samplesNeeded]

	n, err := p.src.ReadSamples(p.tmp)
	if n == 0 {
		return 0, err
	}
	got := n / channels
	gl, gr := p.Gains()

	switch channels {
	case 1:
		for f := range got {
			s := p.tmp[f]
			dst[f<<1] = s * gl
			dst[f<<1+1] = s * gr
		}
	case 2:
		for f := range got {
			idx := f << 1
			dst[idx] = p.tmp[idx] * gl
			dst[idx+1] = p.tmp[idx+1] * gr
		}
	default:
		inv := float32(1.0) / float32(channels)
		for f := range got {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += p.tmp[base+c]
			}
			sum *= inv
			dst[f<<1] = sum * gl
			dst[f<<1+1] = sum * gr
		}
	}

	return got * 2, err
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
