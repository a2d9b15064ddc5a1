// SPDX-License-Identifier: MIT
// Package: sparse
//
// options.go - functional options for the multiply kernels.

package sparse

import (
	"fmt"
	"runtime"
)

// Options configures the multiply kernels.
type Options struct {
	// Workers is the number of goroutines used by MxM row blocks.
	// 1 runs serially on the calling goroutine.
	Workers int

	// internal error recorded while applying options
	err error
}

// Option configures kernels via functional arguments.
type Option func(*Options)

// DefaultOptions returns serial execution.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers splits MxM into row blocks computed on up to n goroutines.
//
//	n > 0:  use n workers
//	n == 0: use runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
//
// Output is assembled in row order, so results match the serial path exactly.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// gatherOptions applies opts over the defaults and surfaces the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
