// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only through an
//     explicit source (WithSource) or the math/rand/v2 global generator.
//   - The storage order is chosen once, here, and never flips implicitly.
package matrix

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvnum/array"
	"github.com/katalvlaran/lvnum/dense"
)

// Order is the storage order of a Matrix (alias of dense.Order).
type Order = dense.Order

// Storage orders.
const (
	RowMajor = dense.RowMajor
	ColMajor = dense.ColMajor
)

// ---------- Defaults (single source of truth) ----------

// DefaultOrder is the storage order used when no order option is given.
const DefaultOrder = RowMajor

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrderInvalid = "matrix: WithOrder: order must be RowMajor or ColMajor"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	order Order          // DefaultOrder
	rnd   []array.Option // forwarded to array.Rand / array.RandN
}

// ---------- Constructors (WithX) ----------

// WithOrder selects the storage order.
// Panics when order is neither RowMajor nor ColMajor.
func WithOrder(order Order) Option {
	if order != RowMajor && order != ColMajor {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithRowMajor selects row-major storage (the default).
func WithRowMajor() Option { return WithOrder(RowMajor) }

// WithColMajor selects column-major storage.
func WithColMajor() Option { return WithOrder(ColMajor) }

// WithSource makes Rand/RandN draw from src. Panics on nil src.
func WithSource(src rand.Source) Option {
	rnd := array.WithSource(src)

	return func(o *Options) { o.rnd = append(o.rnd, rnd) }
}

// WithUniformBounds changes the Rand interval to [min, max).
func WithUniformBounds(min, max float64) Option {
	rnd := array.WithUniformBounds(min, max)

	return func(o *Options) { o.rnd = append(o.rnd, rnd) }
}

// WithNormalParams changes the RandN mean and standard deviation.
func WithNormalParams(mean, stddev float64) Option {
	rnd := array.WithNormalParams(mean, stddev)

	return func(o *Options) { o.rnd = append(o.rnd, rnd) }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{order: DefaultOrder}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
