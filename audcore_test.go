// SPDX-License-Identifier: EPL-2.0

package audcore

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/ik5/audcore/archive"
	"github.com/ik5/audcore/config"
	"github.com/ik5/audcore/formats/wav"
	"github.com/ik5/audcore/internal/audiotest"
)

func wavBytes(t *testing.T, rate, frames int) []byte {
	t.Helper()

	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = int16(i % 512)
	}

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, rate, 1, samples); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	got := DefaultRegistry().Formats()
	want := []string{"aif", "aiff", "aud", "mp3", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestDefaultRegistry_HasFallbacks(t *testing.T) {
	t.Parallel()

	for _, f := range DefaultRegistry().Formats() {
		if !slices.Contains(archive.DefaultFallbacks, "."+f) {
			t.Errorf("format %q has no entry in archive.DefaultFallbacks", f)
		}
	}
}

func TestNew_ReplacementAsset(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"xplobig.wav": {Data: wavBytes(t, 22050, 2205)},
		"CLICK.AUD":   {Data: audiotest.SilentAUD(22050, 441)},
	}
	dev := audiotest.NewDevice()

	s, err := New(config.Default(), dev, WithFS(fsys), WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	s.Update(1000)
	if _, ok := s.Play("XPLOBIG.AUD", 1, config.ExplosionLarge); !ok {
		t.Fatal("Play(XPLOBIG.AUD) denied")
	}
	if _, ok := s.Play("click.aud", 1, config.UIClick); !ok {
		t.Fatal("Play(click.aud) denied")
	}

	plays := dev.Plays()
	if len(plays) != 2 {
		t.Fatalf("plays = %d, want 2", len(plays))
	}
	up, ok := dev.Clip(plays[0].Clip)
	if !ok {
		t.Fatal("replacement clip not uploaded")
	}
	if up.SampleRate != 22050 || up.Channels != 1 || len(up.PCM) != 2205*2 {
		t.Errorf("uploaded clip = %d Hz, %d ch, %d bytes", up.SampleRate, up.Channels, len(up.PCM))
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Mix["music"] = 1

	_, err := New(cfg, audiotest.NewDevice(), WithFS(fstest.MapFS{}), WithLogger(log.New(io.Discard)))
	if !errors.Is(err, config.ErrUnknownMix) {
		t.Errorf("New() error = %v, want %v", err, config.ErrUnknownMix)
	}
}

func TestNew_MissingAsset(t *testing.T) {
	t.Parallel()

	dev := audiotest.NewDevice()
	s, err := New(config.Default(), dev, WithFS(fstest.MapFS{}), WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, ok := s.Play("GONE.AUD", 1, config.UIClick); ok {
		t.Error("Play() of a missing asset succeeded")
	}
	if dev.Calls() != 0 {
		t.Errorf("device calls = %d, want 0", dev.Calls())
	}
}
