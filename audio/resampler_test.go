package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func mustResampler(t testing.TB, src Source, dstRate int) *Resampler {
	t.Helper()

	r, err := NewResampler(src, dstRate)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}
	return r
}

func TestNewResampler_InvalidRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
	}{
		{"zero destination", 44100, 0},
		{"negative destination", 44100, -8000},
		{"zero source", 0, 8000},
		{"negative source", -44100, 8000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSilentSource(tt.srcRate, 1, 100)
			_, err := NewResampler(src, tt.dstRate)
			if !errors.Is(err, ErrInvalidRate) {
				t.Errorf("NewResampler() error = %v, want ErrInvalidRate", err)
			}
		})
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	resampler := mustResampler(t, src, 8000)

	if resampler.SampleRate() != 8000 {
		t.Errorf("Resampler.SampleRate() = %d, want 8000", resampler.SampleRate())
	}

	if resampler.Channels() != 2 {
		t.Errorf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}
}

func TestResampler_SameRate(t *testing.T) {
	t.Parallel()

	// Same-rate resampling is the no-op case
	src := newConstantSource(8000, 1, 100, 0.5)
	resampler := mustResampler(t, src, 8000)

	buf := make([]float32, 100)
	n, err := resampler.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n == 0 {
		t.Fatal("ReadSamples() returned 0 samples")
	}

	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-0.5)) > 0.1 {
			t.Errorf("buf[%d] = %v, want ≈0.5", i, buf[i])
		}
	}
}

func TestResampler_SameRateCopiesExactly(t *testing.T) {
	t.Parallel()

	// When rates match the resampler must be a plain copy: every
	// sample preserved, starting from the very first one, with no
	// samples dropped at either end.
	const total = 8000
	src := newMockSource(8000, 1, total, func(sample int, channel int) float32 {
		return float32(sample) / total
	})

	samples := readAll(t, mustResampler(t, src, 8000))

	if len(samples) != total {
		t.Fatalf("Resampled %d samples, want %d", len(samples), total)
	}

	for i, s := range samples {
		want := float32(i) / total
		if s != want {
			t.Fatalf("samples[%d] = %v, want %v", i, s, want)
		}
	}
}

func readAll(t *testing.T, src Source) []float32 {
	t.Helper()

	buf := make([]float32, 1024)
	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			return samples
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Downsampling(t *testing.T) {
	t.Parallel()

	// 1 second of 440 Hz at 44.1kHz down to the telephony rate
	src := newSineSource(44100, 1, 44100, 440.0)
	samples := readAll(t, mustResampler(t, src, 8000))

	if len(samples) != 8000 {
		t.Errorf("Resampled %d samples, want 8000", len(samples))
	}

	if len(samples) > 0 && samples[0] != 0 {
		t.Errorf("samples[0] = %v, want 0 (first source sample)", samples[0])
	}

	for i, s := range samples {
		if s < -1.5 || s > 1.5 {
			t.Errorf("samples[%d] = %v, outside reasonable range [-1.5, 1.5]", i, s)
		}
	}
}

func TestResampler_Upsampling(t *testing.T) {
	t.Parallel()

	src := newSineSource(8000, 1, 8000, 440.0)
	samples := readAll(t, mustResampler(t, src, 44100))

	if len(samples) != 44100 {
		t.Errorf("Resampled %d samples, want 44100", len(samples))
	}
}

func TestResampler_PitchPreserved(t *testing.T) {
	t.Parallel()

	// Downsampling must not shift the tone: count zero crossings of a
	// 440 Hz sine after 44.1kHz -> 8kHz conversion. One second of a
	// 440 Hz tone has ~880 zero crossings regardless of sample rate.
	src := newSineSource(44100, 1, 44100, 440.0)
	samples := readAll(t, mustResampler(t, src, 8000))

	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			crossings++
		}
	}

	if crossings < 850 || crossings > 910 {
		t.Errorf("zero crossings = %d, want ≈880", crossings)
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 2, 1000, func(sample int, channel int) float32 {
		if channel == 0 {
			return 0.3 // Left
		}
		return 0.7 // Right
	})

	resampler := mustResampler(t, src, 8000)

	if resampler.Channels() != 2 {
		t.Fatalf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}

	buf := make([]float32, 20) // 10 stereo frames
	n, err := resampler.ReadSamples(buf)
	if n == 0 {
		t.Fatal("ReadSamples() returned 0 samples")
	}
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	frames := n / 2
	for f := 0; f < frames; f++ {
		left := buf[f*2]
		right := buf[f*2+1]

		if math.Abs(float64(left-0.3)) > 0.2 {
			t.Errorf("frame[%d] left = %v, want ≈0.3", f, left)
		}
		if math.Abs(float64(right-0.7)) > 0.2 {
			t.Errorf("frame[%d] right = %v, want ≈0.7", f, right)
		}
	}
}

func TestResampler_EOF(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 1, 100)
	resampler := mustResampler(t, src, 8000)

	buf := make([]float32, 1024)

	var totalRead int
	for {
		n, err := resampler.ReadSamples(buf)
		totalRead += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if totalRead == 0 {
		t.Error("No samples read before EOF")
	}

	// Next read should return EOF immediately
	n, err := resampler.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("After EOF, ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("After EOF, ReadSamples() n = %d, want 0", n)
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	resampler := mustResampler(t, src, 8000)

	// Buffer size not multiple of channels (2)
	buf := make([]float32, 7)
	_, err := resampler.ReadSamples(buf)

	if err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() with invalid size error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_VeryShortSource(t *testing.T) {
	t.Parallel()

	// Source with only 2 samples
	src := newSilentSource(44100, 1, 2)
	resampler := mustResampler(t, src, 8000)

	buf := make([]float32, 10)
	n, err := resampler.ReadSamples(buf)

	if err != io.EOF && err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n < 0 {
		t.Errorf("ReadSamples() n = %d, should be non-negative", n)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	resampler := mustResampler(t, src, 8000)

	if err := resampler.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

// BenchmarkResampler_Downsample benchmarks downsampling 44.1kHz -> 8kHz
func BenchmarkResampler_Downsample(b *testing.B) {
	src := newSineSource(44100, 2, 100000, 440.0)
	resampler := mustResampler(b, src, 8000)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src.Reset()
		for {
			_, err := resampler.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}

// BenchmarkResampler_Upsample benchmarks upsampling 8kHz -> 44.1kHz
func BenchmarkResampler_Upsample(b *testing.B) {
	src := newSineSource(8000, 2, 20000, 440.0)
	resampler := mustResampler(b, src, 44100)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src.Reset()
		for {
			_, err := resampler.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}
