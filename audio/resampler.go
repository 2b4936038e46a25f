// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/narrowband/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples; preserves channel count.
// When downsampling, a one-pole low-pass tuned below the destination
// Nyquist frequency runs ahead of the interpolator to limit aliasing.
//
// Output frame k is taken at source position k*srcRate/dstRate, so
// the first output frame reproduces the first source frame and the
// stream is flushed through the last source frame at EOF. When the
// rates match the resampler is a plain pass-through copy.
//
// All interpolation and filter state is private to the instance, so a
// fresh Resampler starts from silence and never carries artifacts from
// a previous stream.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // srcRate / dstRate - source samples per output sample
	channels int

	// Rates match: copy frames straight through, no interpolation.
	passthrough bool

	// Window of 4 frames for cubic interpolation.
	// frames[1] holds source frame winBase; frames[0] is winBase-1,
	// frames[2] is winBase+1 and frames[3] is winBase+2. Past EOF the
	// last real frame is duplicated into the tail slots.
	frames  [4][]float32
	winBase int
	primed  bool

	// outIndex is the next output frame; srcCount is how many source
	// frames have been read so far (the stream total once eof is set).
	outIndex int
	srcCount int
	eof      bool

	// Buffer for reading from source
	srcBuf []float32

	// Anti-aliasing low-pass state (active only when downsampling)
	filterState []float32
	useFilter   bool
	filterAlpha float32
}

// NewResampler builds a resampler from src to dstRate. Both the source
// rate and dstRate must be positive; otherwise ErrInvalidRate is
// returned. A same-rate resampler is valid and copies samples through
// unchanged.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	srcRate := src.SampleRate()
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("resample %d Hz to %d Hz: %w", srcRate, dstRate, ErrInvalidRate)
	}

	channels := src.Channels()
	ratio := float64(srcRate) / float64(dstRate)

	// The anti-aliasing filter only matters when source content above
	// the destination Nyquist frequency exists, i.e. when downsampling.
	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		// One-pole low-pass with cutoff at 90% of the destination
		// Nyquist frequency: alpha = 1 - exp(-2*pi*fc/fs)
		cutoff := 0.9 * float64(dstRate) / 2.0
		filterAlpha = float32(1.0 - math.Exp(-2.0*math.Pi*cutoff/float64(srcRate)))
	}

	r := &Resampler{
		src:         src,
		srcRate:     float64(srcRate),
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		passthrough: srcRate == dstRate,
		srcBuf:      make([]float32, 4096),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads one source frame into dst, running the anti-aliasing
// filter when active. Returns false once the source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(dst, r.srcBuf[:n])
		r.srcCount++

		if r.useFilter {
			for c := 0; c < r.channels; c++ {
				// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
				dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		return n > 0, nil
	}
	if err != nil {
		return n > 0, fmt.Errorf("%w", err)
	}

	return n > 0, nil
}

// prime fills the interpolation window so frames[1] holds the first
// source frame and frames[0] duplicates it as the virtual frame -1.
func (r *Resampler) prime() error {
	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(r.frames[1], r.srcBuf[:n])
		r.srcCount++

		// Seed filter state with the first sample to avoid a warm-up
		// transient from zero.
		if r.useFilter {
			copy(r.filterState, r.srcBuf[:n])
		}
	}
	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	copy(r.frames[0], r.frames[1])

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.frames[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.frames[i], r.frames[i-1])
		}
	}

	r.primed = true
	return nil
}

// advance shifts the window forward one source frame, duplicating the
// last real frame once the source is exhausted.
func (r *Resampler) advance() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.winBase++

	ok, err := r.readFrame(r.frames[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.frames[3], r.frames[2])
	}
	return nil
}

// ReadSamples produces dst samples at r.dstRate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.passthrough {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		// Absolute source position of the next output frame.
		pos := float64(r.outIndex) * r.ratio

		for !r.eof && r.winBase < int(pos) {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// Flushed once the position passes the final source frame.
		if r.eof && pos >= float64(r.srcCount)-1e-9 {
			return written * r.channels, io.EOF
		}

		// Post-EOF positions still inside the stream interpolate
		// against duplicated tail frames.
		for r.winBase < int(pos) {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		alpha := float32(pos - float64(r.winBase))

		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = utils.CubicInterpolate(
				r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], alpha)
		}

		written++
		r.outIndex++
	}

	return written * r.channels, nil
}
