// SPDX-License-Identifier: MIT

// Package bfs provides tunable options, error definitions and result types
// for breadth-first search over a sparse.Matrix[bool].
package bfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil matrix is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNonSquare is returned when the adjacency matrix is not square.
	ErrNonSquare = errors.New("bfs: adjacency matrix must be square")

	// ErrStartOutOfRange is returned when a start vertex is outside [0,n).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrTypeMismatch is returned when the matrix value domain is not bool.
	ErrTypeMismatch = errors.New("bfs: unsupported matrix type, want bool")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by ParentTree.PathTo for an unreached vertex.
	ErrNoPath = errors.New("bfs: no path")
)

// Sentinels in result arrays.
const (
	// Unreached marks a vertex BFS never reached.
	Unreached = -1

	// Root marks the source vertex in a parent array.
	Root = -1

	// NoParent marks a vertex MultiSourceBFS never reached.
	NoParent = -2
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines; checked once per round.
	Ctx context.Context

	// Logger receives per-round Debug records.
	Logger *slog.Logger

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Workers is forwarded to the sparse multiply of MultiSourceBFS.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - a logger that discards everything
//   - no depth limit (MaxDepth == 0)
//   - serial multiply (Workers == 1)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxDepth: 0,
		Workers:  1,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for per-round diagnostics. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth stops the search after the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithWorkers sets the number of goroutines for the multi-source product.
//
//	n > 0: use n workers
//	n == 0: use GOMAXPROCS
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// gatherOptions applies opts over the defaults and surfaces the first violation.
func gatherOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// ParentTree is the shortest-path tree grown from one source.
//   - Source: the start vertex.
//   - Parents[v]: predecessor of v, Root for the source, NoParent if unreached.
type ParentTree struct {
	Source  int   `json:"source"`
	Parents []int `json:"parents"`
}

// PathTo reconstructs the path from the source to dest.
// Returns ErrNoPath if dest was not reached.
func (t *ParentTree) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(t.Parents) {
		return nil, fmt.Errorf("%w: vertex %d not in [0,%d)", ErrStartOutOfRange, dest, len(t.Parents))
	}
	if t.Parents[dest] == NoParent {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, t.Source, dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; cur != Root; cur = t.Parents[cur] {
		if cur < 0 || cur >= len(t.Parents) || len(path) == len(t.Parents) {
			return nil, fmt.Errorf("%w: parent chain from %d does not reach %d", ErrNoPath, dest, t.Source)
		}
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Depth returns the hop count from the source to v, or Unreached.
func (t *ParentTree) Depth(v int) int {
	p, err := t.PathTo(v)
	if err != nil {
		return Unreached
	}

	return len(p) - 1
}
