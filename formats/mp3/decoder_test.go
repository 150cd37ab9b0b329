// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	r          io.Reader
}

func (m *mockMP3Reader) SampleRate() int            { return m.sampleRate }
func (m *mockMP3Reader) Read(b []byte) (int, error) { return m.r.Read(b) }

func pcmBytes(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("bad frame") }

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an mp3 stream")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid input")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestReadClip_Stereo(t *testing.T) {
	t.Parallel()

	dec := &mockMP3Reader{sampleRate: 44100, r: bytes.NewReader(pcmBytes(1, -1, 100, -100))}
	clip, err := readClip(dec)
	if err != nil {
		t.Fatalf("readClip() error = %v", err)
	}

	if clip.Channels != 2 || clip.SampleRate != 44100 {
		t.Errorf("clip = %dch/%dHz, want 2ch/44100Hz", clip.Channels, clip.SampleRate)
	}
	want := []int16{1, -1, 100, -100}
	for i := range want {
		if clip.Samples[i] != want[i] {
			t.Errorf("Samples[%d] = %d, want %d", i, clip.Samples[i], want[i])
		}
	}
}

func TestReadClip_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	data := append(pcmBytes(5, 6), 0x01, 0x02, 0x03)
	clip, err := readClip(&mockMP3Reader{sampleRate: 22050, r: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("readClip() error = %v", err)
	}
	if clip.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", clip.Frames())
	}
}

func TestReadClip_Empty(t *testing.T) {
	t.Parallel()

	_, err := readClip(&mockMP3Reader{sampleRate: 22050, r: bytes.NewReader([]byte{1, 2})})
	if !errors.Is(err, ErrNoSamples) {
		t.Errorf("readClip() error = %v, want ErrNoSamples", err)
	}
}

func TestReadClip_ReadError(t *testing.T) {
	t.Parallel()

	if _, err := readClip(&mockMP3Reader{sampleRate: 22050, r: errReader{}}); err == nil {
		t.Error("readClip() error = nil, want read failure")
	}
}
