// SPDX-License-Identifier: MIT

// Package shortestpath defines core types and configuration options for
// (min, +) distance computations on weighted sparse adjacency matrices.
//
// Errors (sentinel):
//
//	– ErrGraphNil         if the provided matrix is nil.
//	– ErrNonSquare        if the adjacency matrix is not square.
//	– ErrStartOutOfRange  if a source vertex is outside [0,n).
//	– ErrNegativeCycle    if a negative-weight cycle is reachable.
//	– ErrTypeMismatch     if an untyped matrix is not float64-valued.
//	– ErrOptionViolation  if an invalid Option is supplied.
package shortestpath

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by the distance engines.
var (
	// ErrGraphNil indicates that a nil matrix was passed.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrNonSquare indicates a rows != cols adjacency matrix.
	ErrNonSquare = errors.New("shortestpath: adjacency matrix must be square")

	// ErrStartOutOfRange indicates a source vertex outside [0,n).
	ErrStartOutOfRange = errors.New("shortestpath: start vertex out of range")

	// ErrNegativeCycle indicates that one more relaxation still lowered a
	// distance, so no shortest path is defined.
	ErrNegativeCycle = errors.New("shortestpath: negative-weight cycle detected")

	// ErrTypeMismatch indicates that the matrix value domain is not float64.
	ErrTypeMismatch = errors.New("shortestpath: unsupported matrix type, want float64")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("shortestpath: invalid option supplied")
)

// Options configures the distance engines.
//
// Ctx     – checked once per relaxation round.
// Logger  – Debug per round, Warn when a negative cycle is found.
// Workers – forwarded to the sparse multiply (1 = serial, 0 = GOMAXPROCS).
type Options struct {
	Ctx     context.Context
	Logger  *slog.Logger
	Workers int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the engines.
type Option func(*Options)

// DefaultOptions returns background context, a discarding logger and
// serial multiplication.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of row-block workers for each product.
// Negative values are recorded and surface as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// Distances holds the shortest distances from one source; Dist[v] is +Inf
// when v is unreachable.
type Distances struct {
	Source int       `json:"source"`
	Dist   []float64 `json:"dist"`
}

// To returns the distance to v and whether v is reachable.
func (d Distances) To(v int) (float64, bool) {
	if v < 0 || v >= len(d.Dist) || math.IsInf(d.Dist[v], 1) {
		return math.Inf(1), false
	}

	return d.Dist[v], true
}
