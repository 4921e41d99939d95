// SPDX-License-Identifier: MIT
// Package planform: configuration records, output naming, and documented
// defaults (single source of truth).
//
// Design:
//   - Partial is the caller-facing record: every field optional (pointer),
//     absent fields resolve to the documented defaults below.
//   - Config is the fully resolved record: plain values plus derived planes
//     (coordinate grids, cycles-per-pixel, Gaussian mask).
//   - Defaults are deterministic, documented, and live here only; no
//     process-wide mutable state.

package planform

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lattice topology selectors. ComponentCount must be one of these two
// values at generation time; anything else yields ErrUnsupportedTopology.
const (
	// SquareComponents selects the 4-component topology: two orthogonal
	// grating pairs split by ±LatticeAngle around the axes.
	SquareComponents = 4

	// HexagonalComponents selects the 6-component topology: three grating
	// pairs at 2π/3 steps, each split by ±LatticeAngle.
	HexagonalComponents = 6
)

// DEFAULTS - single source of truth for absent-field behavior.
// Each constant below is substituted (with one notice) for the matching
// Partial field when that field is nil.
const (
	// DefaultImageSizePx is the side length of the square output grid.
	DefaultImageSizePx = 600

	// DefaultCyclesPerImage is the spatial frequency expressed as full sine
	// cycles spanning the image width.
	DefaultCyclesPerImage = 12.0

	// DefaultGaussianSizeFactor scales ImageSizePx into the default
	// Gaussian space constant (3×size ⇒ effectively no edge attenuation
	// at the default image size).
	DefaultGaussianSizeFactor = 3.0

	// DefaultGrayScale is the output intensity range ceiling.
	DefaultGrayScale = 255.0

	// DefaultAmplitude is the grating peak deviation before gray-scale
	// mapping.
	DefaultAmplitude = 1.0

	// DefaultBaseAngleOffset is the global rotation applied to all
	// components, radians.
	DefaultBaseAngleOffset = 0.0

	// DefaultPhaseOffset is the phase shift applied to the second pair of
	// components in the 4-component topology. 0 ⇒ square; π ⇒ super-square.
	DefaultPhaseOffset = 0.0

	// DefaultComponentCount selects the 4-component (square) topology.
	DefaultComponentCount = SquareComponents
)

// DefaultLatticeAngle returns the default per-pair rotation: atan2(1,3),
// the angle of a 3:1 lattice (≈0.3217505544 rad). Computed, not stored,
// since math.Atan2 is not a constant expression.
func DefaultLatticeAngle() float64 {
	return math.Atan2(1, 3)
}

// Partial is a partially specified planform configuration. Every field is
// optional; nil means "assign the documented default and emit a notice".
// A zero Partial therefore resolves to the canonical square planform.
//
// Fields mirror Config's user-facing fields one-to-one; see Config for the
// semantics of each.
type Partial struct {
	ImageSizePx           *int
	CyclesPerImage        *float64
	GaussianSpaceConstant *float64
	GrayScale             *float64
	Amplitude             *float64
	BaseAngleOffset       *float64
	LatticeAngle          *float64
	PhaseOffset           *float64
	ComponentCount        *int
}

// Int returns a pointer to v, for concise Partial literals.
func Int(v int) *int { return &v }

// Float64 returns a pointer to v, for concise Partial literals.
func Float64(v float64) *float64 { return &v }

// Config is a fully resolved planform configuration.
//
// User-facing fields (defaulted by Resolve when absent):
//   - ImageSizePx           — side of the square pixel grid, > 0.
//   - CyclesPerImage        — full sine cycles across the image width, > 0.
//   - GaussianSpaceConstant — Gaussian envelope width in pixels, > 0.
//   - GrayScale             — output intensity ceiling, > 0.
//   - Amplitude             — grating peak deviation before gray mapping.
//   - BaseAngleOffset       — global rotation of all components, radians.
//   - LatticeAngle          — per-pair split angle, radians.
//   - PhaseOffset           — phase shift of the second 4-component pair;
//     has no effect in the 6-component topology (kept for numeric
//     compatibility with the original generator).
//   - ComponentCount        — 4 or 6; validated at generation time.
//
// Derived fields (recomputed unconditionally on every Resolve; pure
// functions of the inputs above, never user-supplied):
//   - CoordX, CoordY   — N×N pixel coordinate grids, CoordX[i,j]=j,
//     CoordY[i,j]=i (row index is y, column index is x).
//   - CyclesPerPixel   — CyclesPerImage / ImageSizePx.
//   - GaussianMask     — N×N isotropic Gaussian in (0,1], centered at the
//     image center.
//
// Images is populated by Generate and holds the named output planes.
type Config struct {
	ImageSizePx           int
	CyclesPerImage        float64
	GaussianSpaceConstant float64
	GrayScale             float64
	Amplitude             float64
	BaseAngleOffset       float64
	LatticeAngle          float64
	PhaseOffset           float64
	ComponentCount        int

	CoordX         *mat.Dense
	CoordY         *mat.Dense
	CyclesPerPixel float64
	GaussianMask   *mat.Dense

	Images Images
}

// Images maps an output name to its generated plane. Every pixel of every
// plane lies in [0, GrayScale].
type Images map[string]*mat.Dense

// Output name constants. The 4-component topology produces
// {C1..C4, P12, P34, P1234}; the 6-component topology produces
// {C1..C6, P12, P34, P56, P123456}.
const (
	// NameC1..NameC4 are the masked, normalized single gratings.
	NameC1 = "C1"
	NameC2 = "C2"
	NameC3 = "C3"
	NameC4 = "C4"

	// NameC5 and NameC6 exist only in the 6-component topology. Their
	// pixel content comes from the C3 and C4 gratings respectively, a
	// long-standing quirk of the original generator, preserved here; see
	// the package documentation.
	NameC5 = "C5"
	NameC6 = "C6"

	// NameP12/NameP34/NameP56 are masked, normalized pairwise means.
	NameP12 = "P12"
	NameP34 = "P34"
	NameP56 = "P56"

	// NameP1234 and NameP123456 are the full composite planforms.
	NameP1234   = "P1234"
	NameP123456 = "P123456"
)
