// SPDX-License-Identifier: EPL-2.0

package tone

import "io"

// Source streams a generated sine tone through the audio.Source
// interface, so a tone can feed the limiter/encoder stages (or the
// whole conditioning chain) exactly like a decoded file. Samples are
// computed on the fly from the absolute index, so the stream is
// deterministic and needs no precomputed buffer.
type Source struct {
	cfg   Config
	total int
	pos   int
}

// NewSource validates cfg and returns a mono streaming tone.
func NewSource(cfg Config) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Source{
		cfg:   cfg,
		total: cfg.totalSamples(),
	}, nil
}

func (s *Source) SampleRate() int { return s.cfg.SampleRate }
func (s *Source) Channels() int   { return 1 }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

// Reset rewinds the stream to the first sample.
func (s *Source) Reset() {
	s.pos = 0
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.total {
		return 0, io.EOF
	}

	n := len(dst)
	if remaining := s.total - s.pos; n > remaining {
		n = remaining
	}

	fillSine(dst[:n], s.cfg, s.pos)
	s.pos += n

	if s.pos >= s.total {
		return n, io.EOF
	}
	return n, nil
}
