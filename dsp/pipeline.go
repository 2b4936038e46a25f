// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ik5/narrowband/audio"
)

// Pipeline is one stream's conditioning chain:
//
//	preemphasis -> bandpass -> splitter -> 3x compressor -> recombine -> limiter
//
// All filter and compressor state is owned exclusively by the instance,
// so concurrent calls each build their own Pipeline and need no
// locking. The Config and BandConfig values are copied at construction
// and shared read-only.
type Pipeline struct {
	sampleRate int

	pre     *Preemphasis
	band    *Bandpass
	split   *Splitter
	comps   [3]*Compressor
	limiter *Limiter

	filterAnomalies uint64
	warned          bool
}

// NewPipeline validates cfg and bands against sampleRate and builds the
// chain. Configuration errors are fatal to construction; no partially
// configured pipeline is ever returned.
func NewPipeline(sampleRate int, cfg Config, bands [3]BandConfig) (*Pipeline, error) {
	if err := cfg.Validate(sampleRate); err != nil {
		return nil, err
	}

	rate := float64(sampleRate)

	pre, err := NewPreemphasis(cfg.PreemphasisAlpha)
	if err != nil {
		return nil, err
	}

	band, err := NewBandpass(rate, cfg.BandpassLow, cfg.BandpassHigh)
	if err != nil {
		return nil, err
	}

	split, err := NewSplitter(rate, cfg.SplitLow, cfg.SplitHigh)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		sampleRate: sampleRate,
		pre:        pre,
		band:       band,
		split:      split,
	}

	for i, bc := range bands {
		comp, err := NewCompressor(rate, bc, cfg.NoiseGateThreshold, cfg.NoiseGateRatio)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i+1, err)
		}
		p.comps[i] = comp
	}

	p.limiter, err = NewLimiter(cfg.LimiterThreshold)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sample_rate": sampleRate,
		"bandpass":    fmt.Sprintf("%v-%v Hz", cfg.BandpassLow, cfg.BandpassHigh),
		"crossovers":  fmt.Sprintf("%v/%v Hz", cfg.SplitLow, cfg.SplitHigh),
	}).Debug("audio conditioning pipeline created")

	return p, nil
}

// SampleRate reports the rate the filters were designed for.
func (p *Pipeline) SampleRate() int { return p.sampleRate }

// Process conditions buf in place. Per-sample numeric anomalies are
// recovered locally and counted; Process never fails mid-stream.
func (p *Pipeline) Process(buf []float32) {
	for i, x := range buf {
		y := p.pre.Process(x)
		y = p.band.Process(y)
		if !isFinite(y) {
			p.filterAnomalies++
			y = 0
		}

		low, mid, high := p.split.Split(y)
		sum := Recombine(
			p.comps[0].Process(low),
			p.comps[1].Process(mid),
			p.comps[2].Process(high),
		)

		buf[i] = p.limiter.Process(sum)
	}

	if !p.warned {
		if n := p.Anomalies(); n > 0 {
			p.warned = true
			logrus.WithField("count", n).Warn("recovered non-finite samples in conditioning pipeline")
		}
	}
}

// Anomalies reports the total non-finite samples recovered across all
// stages since the last Reset.
func (p *Pipeline) Anomalies() uint64 {
	n := p.filterAnomalies
	for _, c := range p.comps {
		n += c.Anomalies()
	}
	return n
}

// Reset clears every stage's state so the same instance can condition a
// new independent stream without cross-call artifacts.
func (p *Pipeline) Reset() {
	p.pre.Reset()
	p.band.Reset()
	p.split.Reset()
	for _, c := range p.comps {
		c.Reset()
	}
	p.filterAnomalies = 0
	p.warned = false
}

func isFinite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Processor chains a Pipeline into the streaming Source style, so a
// decoded mono stream can be conditioned with the usual ReadSamples
// loop. The source must already be mono (use audio.NewMonoMixer) and at
// its final rate (use audio.NewResampler).
type Processor struct {
	src  audio.Source
	pipe *Pipeline
}

// NewProcessor wraps src with a conditioning pipeline designed for the
// source's sample rate. Multi-channel sources are rejected with
// ErrNotMono.
func NewProcessor(src audio.Source, cfg Config, bands [3]BandConfig) (*Processor, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%d channels: %w", src.Channels(), ErrNotMono)
	}

	pipe, err := NewPipeline(src.SampleRate(), cfg, bands)
	if err != nil {
		return nil, err
	}

	return &Processor{src: src, pipe: pipe}, nil
}

func (p *Processor) SampleRate() int { return p.src.SampleRate() }
func (p *Processor) Channels() int   { return 1 }
func (p *Processor) BufSize() int    { return p.src.BufSize() }

func (p *Processor) Close() error {
	err := p.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Pipeline exposes the wrapped chain, mainly for anomaly counters.
func (p *Processor) Pipeline() *Pipeline { return p.pipe }

func (p *Processor) ReadSamples(dst []float32) (int, error) {
	n, err := p.src.ReadSamples(dst)
	if n > 0 {
		p.pipe.Process(dst[:n])
	}
	return n, err
}
