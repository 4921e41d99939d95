// SPDX-License-Identifier: MIT
// Package planform: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// planform package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package planform

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "planform: ..." for consistency and easy
// grepping across logs. Do NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with planformErrorf at the outer
// boundary; callers still match via errors.Is.

var (
	// ErrTooManyArguments indicates that more than one configuration
	// argument was supplied to Resolve. Resolution accepts zero or one
	// Partial; anything else is a caller error.
	// Usage: if errors.Is(err, planform.ErrTooManyArguments) { ... }.
	ErrTooManyArguments = errors.New("planform: too many configuration arguments")

	// ErrInvalidInput indicates that a supplied configuration argument is
	// not a usable record: a nil Partial passed to Resolve, a non-positive
	// size/frequency/scale field, or an unresolved Config passed to
	// Generate.
	// Usage: if errors.Is(err, planform.ErrInvalidInput) { ... }.
	ErrInvalidInput = errors.New("planform: invalid configuration input")

	// ErrUnsupportedTopology indicates that ComponentCount is neither 4
	// nor 6 at generation time. No partial Images mapping is produced.
	// Usage: if errors.Is(err, planform.ErrUnsupportedTopology) { ... }.
	ErrUnsupportedTopology = errors.New("planform: unsupported lattice topology")
)

// planformErrorf wraps a sentinel (or lower-level error) with method context.
// It returns an error of the form "<Method>: <detail>: <err>"; detail may be
// empty, in which case the form is "<Method>: <err>".
// Callers branch on the underlying sentinel via errors.Is.
func planformErrorf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
