// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for multiplication.
// This file defines:
//   - MulStrategy and its documented default,
//   - Option / Options (functional options with unexported state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that applies user options over defaults.
//
// Notes:
//   - Both strategies produce identical results; they differ only in how the
//     right operand is scanned.
package sparse

import "fmt"

// MulStrategy selects how Mul walks the right operand for each non-zero of
// the left operand.
type MulStrategy int

const (
	// MulColumnScan probes every column j of the right operand with At(k, j).
	// Time O(nnz(A)·cols(B)); no auxiliary memory.
	MulColumnScan MulStrategy = iota

	// MulRowIndexed first groups the right operand's non-zeros by row, then
	// visits only the non-zeros of row k.
	// Time O(nnz(B) + nnz(A)·avg-nnz-per-row(B)); Space O(nnz(B)).
	MulRowIndexed
)

// DefaultMulStrategy is the strategy used when no option overrides it.
const DefaultMulStrategy = MulColumnScan

// String returns the config-file spelling of the strategy.
func (s MulStrategy) String() string {
	switch s {
	case MulColumnScan:
		return "column_scan"
	case MulRowIndexed:
		return "row_indexed"
	default:
		return fmt.Sprintf("MulStrategy(%d)", int(s))
	}
}

// ParseMulStrategy maps "column_scan" / "row_indexed" to a MulStrategy.
// An empty string yields DefaultMulStrategy.
func ParseMulStrategy(s string) (MulStrategy, error) {
	switch s {
	case "":
		return DefaultMulStrategy, nil
	case "column_scan":
		return MulColumnScan, nil
	case "row_indexed":
		return MulRowIndexed, nil
	default:
		return 0, fmt.Errorf("sparse: unknown mul strategy %q", s)
	}
}

// Option mutates Options. Options are applied in order; the last one wins.
type Option func(*Options)

// Options holds the resolved configuration for a single operation call.
// Fields are unexported; build it through NewOptions or pass ...Option.
type Options struct {
	mulStrategy MulStrategy
}

// MulStrategy reports the resolved multiplication strategy.
func (o Options) MulStrategy() MulStrategy { return o.mulStrategy }

// WithMulStrategy selects the multiplication strategy.
// Panics if s is not one of the declared MulStrategy constants.
func WithMulStrategy(s MulStrategy) Option {
	if s != MulColumnScan && s != MulRowIndexed {
		panic(fmt.Sprintf("sparse: WithMulStrategy(%d): unknown strategy", int(s)))
	}

	return func(o *Options) { o.mulStrategy = s }
}

// WithRowIndexedMul is shorthand for WithMulStrategy(MulRowIndexed).
func WithRowIndexedMul() Option { return WithMulStrategy(MulRowIndexed) }

// NewOptions resolves opts over the package defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func defaultOptions() Options {
	return Options{mulStrategy: DefaultMulStrategy}
}

// gatherOptions applies user options over defaults; nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
