// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (*Clip, error) {
	return NewClip(make([]int16, 100), 22050, 1)
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (*Clip, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "aud"}

	registry.Register("aud", decoder)

	got, ok := registry.Get("aud")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "aud"}
	registry.Register("AUD", decoder)

	if got, ok := registry.Get("aud"); !ok || got != decoder {
		t.Errorf("Registry.Get(%q) = %v, %v, want registered decoder", "aud", got, ok)
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	audDecoder := &mockDecoder{name: "aud"}
	wavDecoder := &mockDecoder{name: "wav"}
	oggDecoder := &mockDecoder{name: "ogg"}

	registry.Register("aud", audDecoder)
	registry.Register("wav", wavDecoder)
	registry.Register("ogg", oggDecoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"aud", audDecoder, true},
		{"wav", wavDecoder, true},
		{"ogg", oggDecoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}
}

func TestRegistry_ForName(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	audDecoder := &mockDecoder{name: "aud"}
	registry.Register("aud", audDecoder)

	tests := []struct {
		name   string
		wantOK bool
	}{
		{"XPLOS.AUD", true},
		{"sounds/xplos.aud", true},
		{"XPLOS", false},
		{"XPLOS.WAV", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := registry.ForName(tt.name)
			if ok != tt.wantOK {
				t.Errorf("Registry.ForName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && got != audDecoder {
				t.Errorf("Registry.ForName(%q) returned wrong decoder", tt.name)
			}
		})
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})
	registry.Register("aud", &mockDecoder{})
	registry.Register("ogg", &failingDecoder{})

	got := registry.Formats()
	want := []string{"aud", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Registry.Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register("aud", decoder1)
	registry.Register("aud", decoder2)

	got, ok := registry.Get("aud")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestRegistry_DecodeThroughRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("aud", &mockDecoder{})
	registry.Register("bad", &failingDecoder{})

	dec, _ := registry.ForName("ok.aud")
	clip, err := dec.Decode(nil)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if clip.Frames() != 100 {
		t.Errorf("Frames() = %d, want 100", clip.Frames())
	}

	dec, _ = registry.ForName("broken.bad")
	if _, err := dec.Decode(nil); err == nil {
		t.Error("Decode() error = nil, want failure")
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.codecs == nil {
		t.Error("NewRegistry() did not initialize codecs map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("aud", &mockDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("aud")
	}
}

func BenchmarkRegistry_ForName(b *testing.B) {
	registry := NewRegistry()
	registry.Register("aud", &mockDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.ForName("XPLOS.AUD")
	}
}
