// SPDX-License-Identifier: EPL-2.0

package aud

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// wwFrame builds one 16 byte frame.
func wwFrame(seed int16, index uint8, codes byte) []byte {
	f := make([]byte, frameSize)
	binary.LittleEndian.PutUint16(f[0:2], uint16(seed))
	f[2] = index
	for i := 4; i < frameSize; i++ {
		f[i] = codes
	}
	return f
}

func TestDecode_PCM16(t *testing.T) {
	t.Parallel()

	payload := []byte{0x01, 0x00, 0xff, 0xff, 0x00, 0x80, 0xff, 0x7f}
	clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionNone, payload))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	want := []int16{1, -1, -32768, 32767}
	if len(clip.Samples) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(clip.Samples), len(want))
	}
	for i := range want {
		if clip.Samples[i] != want[i] {
			t.Errorf("Samples[%d] = %d, want %d", i, clip.Samples[i], want[i])
		}
	}
}

func TestDecode_PCM16OddTrailingByte(t *testing.T) {
	t.Parallel()

	clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionNone, []byte{1, 0, 2, 0, 9}))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if len(clip.Samples) != 2 {
		t.Errorf("len(Samples) = %d, want 2", len(clip.Samples))
	}
}

func TestDecode_PCM16SingleByteIsEmpty(t *testing.T) {
	t.Parallel()

	_, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionNone, []byte{1}))
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("DecodeBytes() error = %v, want ErrEmptyResult", err)
	}
}

func TestDecode_PCM8(t *testing.T) {
	t.Parallel()

	payload := []byte{0, 128, 255, 129}
	clip, err := DecodeBytes(buildAUD(11025, 0, CompressionNone, payload))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	if len(clip.Samples) != len(payload) {
		t.Fatalf("len(Samples) = %d, want %d", len(clip.Samples), len(payload))
	}
	for i, b := range payload {
		want := (int16(b) - 128) * 256
		if clip.Samples[i] != want {
			t.Errorf("Samples[%d] = %d, want %d", i, clip.Samples[i], want)
		}
	}
	if clip.SampleRate != 11025 || clip.Channels != 1 {
		t.Errorf("clip = %dHz/%dch, want 11025Hz/1ch", clip.SampleRate, clip.Channels)
	}
}

func TestDecode_WWMonoFrameCount(t *testing.T) {
	t.Parallel()

	for _, frames := range []int{1, 2, 7} {
		payload := bytes.Repeat(wwFrame(0, 0, 0x37), frames)
		clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionWW, payload))
		if err != nil {
			t.Fatalf("DecodeBytes(%d frames) error = %v", frames, err)
		}
		if got, want := len(clip.Samples), 25*frames; got != want {
			t.Errorf("%d frames: len(Samples) = %d, want %d", frames, got, want)
		}
	}
}

func TestDecode_WWSeedIsFirstSample(t *testing.T) {
	t.Parallel()

	clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionWW, wwFrame(1000, 0, 0x00)))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	// code 0 at index 0 adds 7>>3 == 0, so the seed holds for the whole frame.
	for i, s := range clip.Samples {
		if s != 1000 {
			t.Fatalf("Samples[%d] = %d, want 1000", i, s)
		}
	}
}

func TestDecode_WWIgnoresPartialFrame(t *testing.T) {
	t.Parallel()

	payload := append(wwFrame(0, 0, 0), make([]byte, 10)...)
	clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionWW, payload))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if len(clip.Samples) != samplesPerFrame {
		t.Errorf("len(Samples) = %d, want %d", len(clip.Samples), samplesPerFrame)
	}
}

func TestDecode_WWTooSmall(t *testing.T) {
	t.Parallel()

	_, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionWW, make([]byte, 15)))
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("DecodeBytes() error = %v, want ErrEmptyResult", err)
	}
}

func TestDecode_WWStereoInterleaves(t *testing.T) {
	t.Parallel()

	payload := append(wwFrame(100, 0, 0), wwFrame(-100, 0, 0)...)
	payload = append(payload, wwFrame(5, 0, 0)...) // unpaired, dropped

	clip, err := DecodeBytes(buildAUD(22050, flagStereo|flag16Bit, CompressionWW, payload))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	if len(clip.Samples) != 50 {
		t.Fatalf("len(Samples) = %d, want 50", len(clip.Samples))
	}
	if clip.Channels != 2 {
		t.Errorf("Channels = %d, want 2", clip.Channels)
	}
	for f := range 25 {
		if clip.Samples[2*f] != 100 || clip.Samples[2*f+1] != -100 {
			t.Fatalf("frame %d = (%d, %d), want (100, -100)", f, clip.Samples[2*f], clip.Samples[2*f+1])
		}
	}
}

func TestDecode_WWStereoSingleFrameIsEmpty(t *testing.T) {
	t.Parallel()

	_, err := DecodeBytes(buildAUD(22050, flagStereo|flag16Bit, CompressionWW, wwFrame(0, 0, 0)))
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("DecodeBytes() error = %v, want ErrEmptyResult", err)
	}
}

func TestDecode_WWClampsIndexAndPredictor(t *testing.T) {
	t.Parallel()

	// index 200 clamps to 88 (step 32767); code 7 then overshoots and the
	// predictor saturates.
	clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionWW, wwFrame(0, 200, 0x77)))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	if clip.Samples[1] != 32767 {
		t.Errorf("Samples[1] = %d, want 32767", clip.Samples[1])
	}
	for i, s := range clip.Samples[1:] {
		if s != 32767 {
			t.Fatalf("Samples[%d] = %d, want saturated 32767", i+1, s)
		}
	}

	clip, _ = DecodeBytes(buildAUD(22050, flag16Bit, CompressionWW, wwFrame(0, 200, 0xff)))
	if clip.Samples[len(clip.Samples)-1] != -32768 {
		t.Errorf("last sample = %d, want -32768", clip.Samples[len(clip.Samples)-1])
	}
}

func TestDecode_IMASampleCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 33, 1000} {
		clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionIMA, make([]byte, n)))
		if err != nil {
			t.Fatalf("DecodeBytes(%d bytes) error = %v", n, err)
		}
		if len(clip.Samples) != 2*n {
			t.Errorf("%d bytes: len(Samples) = %d, want %d", n, len(clip.Samples), 2*n)
		}
	}
}

func TestDecode_IMAKnownVector(t *testing.T) {
	t.Parallel()

	// (0,0) + code 7: diff 0+1+3+7 = 11, index 8.
	// (11,8) + code 0: step 16, diff 2 -> 13, index 7.
	clip, err := DecodeBytes(buildAUD(22050, flag16Bit, CompressionIMA, []byte{0x07}))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if clip.Samples[0] != 11 || clip.Samples[1] != 13 {
		t.Errorf("Samples = %v, want [11 13]", clip.Samples)
	}
}

func TestDecode_IMAStatePersists(t *testing.T) {
	t.Parallel()

	one, _ := DecodeBytes(buildAUD(22050, flag16Bit, CompressionIMA, []byte{0x07}))
	two, _ := DecodeBytes(buildAUD(22050, flag16Bit, CompressionIMA, []byte{0x07, 0x07}))

	// the second byte starts from the state the first left behind
	if two.Samples[2] == one.Samples[0] {
		t.Errorf("Samples[2] = %d, state was reset between bytes", two.Samples[2])
	}
}

func TestDecode_UnsupportedCompression(t *testing.T) {
	t.Parallel()

	_, err := DecodeBytes(buildAUD(22050, flag16Bit, Compression(5), []byte{1, 2}))
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Errorf("DecodeBytes() error = %v, want ErrUnsupportedCompression", err)
	}
}

func TestDecoder_Reader(t *testing.T) {
	t.Parallel()

	data := buildAUD(22050, flag16Bit, CompressionIMA, make([]byte, 11025))
	clip, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if clip.DurationMs() != 1000 {
		t.Errorf("DurationMs() = %d, want 1000", clip.DurationMs())
	}
}

func TestDecoder_HeaderErrorsPropagate(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("Decode() error = %v, want ErrTooSmall", err)
	}
}

func TestStepTableBounds(t *testing.T) {
	t.Parallel()

	if stepTable[0] != 7 || stepTable[88] != 32767 {
		t.Errorf("stepTable ends = %d..%d, want 7..32767", stepTable[0], stepTable[88])
	}
	for i := 1; i < len(stepTable); i++ {
		if stepTable[i] <= stepTable[i-1] {
			t.Errorf("stepTable not increasing at %d", i)
		}
	}
}

func BenchmarkDecode_IMA(b *testing.B) {
	data := buildAUD(22050, flag16Bit, CompressionIMA, bytes.Repeat([]byte{0x3c, 0xa5}, 11025))

	b.ReportAllocs()

	for b.Loop() {
		_, _ = DecodeBytes(data)
	}
}

func BenchmarkDecode_WW(b *testing.B) {
	data := buildAUD(22050, flag16Bit, CompressionWW, bytes.Repeat(wwFrame(0, 10, 0x4b), 1000))

	b.ReportAllocs()

	for b.Loop() {
		_, _ = DecodeBytes(data)
	}
}
