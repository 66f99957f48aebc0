// SPDX-License-Identifier: MIT

// Package array: functional options for the random constructors.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions resolves them.
//
// Determinism: with WithSource the output depends only on the source state.
// Without it the math/rand/v2 global generator is used.
package array

import (
	"math"
	"math/rand/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultUniformMin and DefaultUniformMax bound Rand: samples lie in [min, max).
	DefaultUniformMin = 0.0
	DefaultUniformMax = 1.0

	// DefaultNormalMean and DefaultNormalStdDev parameterize RandN.
	DefaultNormalMean   = 0.0
	DefaultNormalStdDev = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSourceNil     = "array: WithSource: source must not be nil"
	panicBoundsInvalid = "array: WithUniformBounds: bounds must be finite with min < max"
	panicNormalInvalid = "array: WithNormalParams: mean must be finite, stddev finite and > 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the resolved random-fill configuration.
type Options struct {
	src      rand.Source
	min, max float64
	mu, sig  float64
}

// WithSource draws samples from src instead of the global generator.
// Sources are not safe for concurrent use; give each goroutine its own.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.src = src }
}

// WithUniformBounds changes the Rand interval to [min, max).
func WithUniformBounds(min, max float64) Option {
	if !isFinite(min) || !isFinite(max) || !(min < max) {
		panic(panicBoundsInvalid)
	}

	return func(o *Options) { o.min, o.max = min, max }
}

// WithNormalParams changes the RandN mean and standard deviation.
func WithNormalParams(mean, stddev float64) Option {
	if !isFinite(mean) || !isFinite(stddev) || !(stddev > 0) {
		panic(panicNormalInvalid)
	}

	return func(o *Options) { o.mu, o.sig = mean, stddev }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		min: DefaultUniformMin,
		max: DefaultUniformMax,
		mu:  DefaultNormalMean,
		sig: DefaultNormalStdDev,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
