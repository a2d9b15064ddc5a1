// SPDX-License-Identifier: MIT

package triangles

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for triangle counting.
var (
	ErrGraphNil        = errors.New("triangles: graph is nil")
	ErrNonSquare       = errors.New("triangles: adjacency matrix must be square")
	ErrAsymmetricGraph = errors.New("triangles: graph is not undirected (asymmetric matrix)")
	ErrUnknownMethod   = errors.New("triangles: unknown method")
	ErrTypeMismatch    = errors.New("triangles: unsupported matrix type, want bool")
	ErrOptionViolation = errors.New("triangles: invalid option supplied")
)

// Method selects a whole-graph counting algorithm.
type Method int

const (
	// MethodCohen counts with (L ⊗ U) masked by G.
	MethodCohen Method = iota
	// MethodSandia counts with (L ⊗ L) masked by L.
	MethodSandia
	// MethodForEachVertex sums the per-vertex counts and divides by 3.
	MethodForEachVertex
)

// String returns the method name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodCohen:
		return "cohen"
	case MethodSandia:
		return "sandia"
	case MethodForEachVertex:
		return "vertex"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "cohen", "sandia" or "vertex" (any case) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cohen":
		return MethodCohen, nil
	case "sandia":
		return MethodSandia, nil
	case "vertex", "per-vertex", "foreachvertex":
		return MethodForEachVertex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Options configures the counting kernels.
type Options struct {
	// Logger receives one Debug record per count.
	Logger *slog.Logger

	// Workers is forwarded to the sparse multiply.
	Workers int

	err error
}

// Option configures counting via functional arguments.
type Option func(*Options)

// DefaultOptions returns a discarding logger and serial multiplication.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers: 1,
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

// WithWorkers sets the row-block workers of the product; n < 0 is an
// ErrOptionViolation.
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
