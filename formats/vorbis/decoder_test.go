// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/narrowband/audio"
)

// fakeOgg feeds canned float samples through the oggReader interface.
type fakeOgg struct {
	samples  []float32
	pos      int
	rate     int
	channels int
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.pos >= len(f.samples) {
		return 0, io.EOF
	}
	n := copy(p, f.samples[f.pos:])
	f.pos += n
	return n, nil
}

func newFakeSource(samples []float32, channels int) *source {
	return &source{
		dec:        &fakeOgg{samples: samples, rate: 44100, channels: channels},
		sampleRate: 44100,
		channels:   channels,
		frameBuf:   make([]float32, 16),
	}
}

func TestReadSamplesPassesFloatsThrough(t *testing.T) {
	t.Parallel()

	want := []float32{0.1, -0.1, 0.25, -0.25}
	s := newFakeSource(want, 2)

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if n != 4 {
		t.Fatalf("got %d samples, want 4", n)
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestReadSamplesRoundsToFrames(t *testing.T) {
	t.Parallel()

	s := newFakeSource([]float32{1, 2, 3, 4, 5, 6}, 2)

	// 5 floats for stereo frames rounds down to 4
	dst := make([]float32, 5)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if n != 4 {
		t.Fatalf("got %d samples, want 4", n)
	}
}

func TestReadSamplesTinyBuffer(t *testing.T) {
	t.Parallel()

	s := newFakeSource([]float32{1, 2}, 2)

	_, err := s.ReadSamples(make([]float32, 1))
	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Fatalf("got %v, want ErrInvalidDstSize", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg container")))
	if err == nil {
		t.Fatal("expected error for non-Vorbis input")
	}
}
