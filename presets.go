// SPDX-License-Identifier: MIT
// Package planform: named preset configurations.
//
// The three canonical stimuli of the symmetry-perception literature, as
// ready-made Partial values. Presets return fresh records on every call so
// callers can tweak fields without aliasing.

package planform

import "math"

// Square returns the canonical square planform: all defaults
// (4 components, both pairs at phase 0).
func Square() *Partial {
	return &Partial{}
}

// SuperSquare returns the super-square variant: the second 4-component
// pair phase-shifted by π relative to the first.
func SuperSquare() *Partial {
	return &Partial{PhaseOffset: Float64(math.Pi)}
}

// Hexagonal returns the 6-component hexagonal planform.
func Hexagonal() *Partial {
	return &Partial{ComponentCount: Int(HexagonalComponents)}
}
