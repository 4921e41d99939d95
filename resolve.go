// SPDX-License-Identifier: MIT
// Package planform: configuration resolution.
//
// resolve.go — fills a Partial into a complete Config.
//
// Resolution policy (strict and deterministic):
//   - Zero arguments ⇒ every user-facing field takes its documented default.
//   - Exactly one non-nil *Partial ⇒ absent fields take defaults, present
//     fields are copied through unchanged.
//   - Each defaulted field is reported with one informational notice:
//     "Assigning default value of <field> = <value>".
//   - The three derived fields (coordinate grids, cycles-per-pixel,
//     Gaussian mask) are recomputed unconditionally on EVERY call, never
//     incrementally and never from cache, so resolution is idempotent and the
//     derived planes are always consistent with their inputs.

package planform

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Canonical user-facing field names, used to prefix notices and to attach
// context to validation errors (no magic strings at call sites).
const (
	fieldImageSizePx           = "ImageSizePx"
	fieldCyclesPerImage        = "CyclesPerImage"
	fieldGaussianSpaceConstant = "GaussianSpaceConstant"
	fieldGrayScale             = "GrayScale"
	fieldAmplitude             = "Amplitude"
	fieldBaseAngleOffset       = "BaseAngleOffset"
	fieldLatticeAngle          = "LatticeAngle"
	fieldPhaseOffset           = "PhaseOffset"
	fieldComponentCount        = "ComponentCount"
)

// MethodResolve prefixes resolution errors for context.
const MethodResolve = "Resolve"

// noticeFormat is the exact default-assignment notice line.
const noticeFormat = "Assigning default value of %s = %v"

// Resolver turns partial configurations into complete ones. The zero-cost
// default (package-level Resolve) reports notices through slog.Default();
// construct one with NewResolver(WithLogger(...)) to route or silence them.
type Resolver struct {
	log *slog.Logger
}

// Option mutates a Resolver during construction. Safe to apply repeatedly.
type Option func(*Resolver)

// WithLogger routes default-assignment notices to l. Passing nil panics:
// a Resolver without a destination for notices is a programmer error.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("planform: WithLogger: logger must be non-nil")
	}

	return func(r *Resolver) { r.log = l }
}

// NewResolver constructs a Resolver with slog.Default() as the notice
// destination, then applies opts in order (last-writer-wins).
// Complexity: O(len(opts)) time, O(1) space.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve fills absent fields of an optional Partial with the documented
// defaults and derives the coordinate grids, cycles-per-pixel, and Gaussian
// mask. It is the package-level convenience for NewResolver().Resolve.
func Resolve(partial ...*Partial) (*Config, error) {
	return NewResolver().Resolve(partial...)
}

// Resolve produces a complete Config from zero or one Partial.
//
// Stage 1 (Validate): arity and argument shape.
//   - more than one argument ⇒ ErrTooManyArguments
//   - a single nil argument  ⇒ ErrInvalidInput
//
// Stage 2 (Default): copy present fields, substitute documented defaults
// for absent ones, emitting one notice per substitution.
//
// Stage 3 (Validate values): ImageSizePx, CyclesPerImage,
// GaussianSpaceConstant, and GrayScale must be positive ⇒ ErrInvalidInput
// otherwise. ComponentCount is deliberately NOT validated here; topology
// selection is checked at generation time (see Generate).
//
// Stage 4 (Finalize): unconditionally recompute CoordX/CoordY,
// CyclesPerPixel, and GaussianMask.
//
// Complexity: O(N²) time and space for an N×N grid.
func (r *Resolver) Resolve(partial ...*Partial) (*Config, error) {
	// Arity: zero or one configuration argument.
	if len(partial) > 1 {
		return nil, planformErrorf(MethodResolve, fmt.Sprintf("got %d configuration arguments", len(partial)), ErrTooManyArguments)
	}
	var p *Partial
	if len(partial) == 1 {
		if partial[0] == nil {
			return nil, planformErrorf(MethodResolve, "nil partial configuration", ErrInvalidInput)
		}
		p = partial[0]
	}
	if p == nil {
		p = &Partial{} // all defaults
	}

	c := &Config{}

	// Per-field defaulting; one notice per absent field, in declaration
	// order so the notice stream is stable across runs.
	if p.ImageSizePx == nil {
		c.ImageSizePx = DefaultImageSizePx
		r.notice(fieldImageSizePx, DefaultImageSizePx)
	} else {
		c.ImageSizePx = *p.ImageSizePx
	}
	if p.CyclesPerImage == nil {
		c.CyclesPerImage = DefaultCyclesPerImage
		r.notice(fieldCyclesPerImage, DefaultCyclesPerImage)
	} else {
		c.CyclesPerImage = *p.CyclesPerImage
	}
	if p.GaussianSpaceConstant == nil {
		// The default envelope width tracks the resolved image size.
		c.GaussianSpaceConstant = DefaultGaussianSizeFactor * float64(c.ImageSizePx)
		r.notice(fieldGaussianSpaceConstant, c.GaussianSpaceConstant)
	} else {
		c.GaussianSpaceConstant = *p.GaussianSpaceConstant
	}
	if p.GrayScale == nil {
		c.GrayScale = DefaultGrayScale
		r.notice(fieldGrayScale, DefaultGrayScale)
	} else {
		c.GrayScale = *p.GrayScale
	}
	if p.Amplitude == nil {
		c.Amplitude = DefaultAmplitude
		r.notice(fieldAmplitude, DefaultAmplitude)
	} else {
		c.Amplitude = *p.Amplitude
	}
	if p.BaseAngleOffset == nil {
		c.BaseAngleOffset = DefaultBaseAngleOffset
		r.notice(fieldBaseAngleOffset, DefaultBaseAngleOffset)
	} else {
		c.BaseAngleOffset = *p.BaseAngleOffset
	}
	if p.LatticeAngle == nil {
		c.LatticeAngle = DefaultLatticeAngle()
		r.notice(fieldLatticeAngle, c.LatticeAngle)
	} else {
		c.LatticeAngle = *p.LatticeAngle
	}
	if p.PhaseOffset == nil {
		c.PhaseOffset = DefaultPhaseOffset
		r.notice(fieldPhaseOffset, DefaultPhaseOffset)
	} else {
		c.PhaseOffset = *p.PhaseOffset
	}
	if p.ComponentCount == nil {
		c.ComponentCount = DefaultComponentCount
		r.notice(fieldComponentCount, DefaultComponentCount)
	} else {
		c.ComponentCount = *p.ComponentCount
	}

	// Positivity checks for the fields the derivations divide by or
	// exponentiate with. Angles, phase, and amplitude are unrestricted
	// reals.
	if c.ImageSizePx <= 0 {
		return nil, planformErrorf(MethodResolve, fieldImageSizePx+" must be > 0", ErrInvalidInput)
	}
	if c.CyclesPerImage <= 0 || isNonFinite(c.CyclesPerImage) {
		return nil, planformErrorf(MethodResolve, fieldCyclesPerImage+" must be a positive finite real", ErrInvalidInput)
	}
	if c.GaussianSpaceConstant <= 0 || isNonFinite(c.GaussianSpaceConstant) {
		return nil, planformErrorf(MethodResolve, fieldGaussianSpaceConstant+" must be a positive finite real", ErrInvalidInput)
	}
	if c.GrayScale <= 0 || isNonFinite(c.GrayScale) {
		return nil, planformErrorf(MethodResolve, fieldGrayScale+" must be a positive finite real", ErrInvalidInput)
	}

	finalizeConfig(c)

	return c, nil
}

// DefaultConfig returns the fully resolved all-defaults configuration: the
// canonical square planform. Unlike Resolve(), it emits no notices; use it
// when the defaults are wanted as a value rather than as fallbacks.
// Complexity: O(N²) for the default 600×600 grid.
func DefaultConfig() *Config {
	c := &Config{
		ImageSizePx:           DefaultImageSizePx,
		CyclesPerImage:        DefaultCyclesPerImage,
		GaussianSpaceConstant: DefaultGaussianSizeFactor * DefaultImageSizePx,
		GrayScale:             DefaultGrayScale,
		Amplitude:             DefaultAmplitude,
		BaseAngleOffset:       DefaultBaseAngleOffset,
		LatticeAngle:          DefaultLatticeAngle(),
		PhaseOffset:           DefaultPhaseOffset,
		ComponentCount:        DefaultComponentCount,
	}
	finalizeConfig(c)

	return c
}

// notice emits one default-assignment line through the configured logger.
func (r *Resolver) notice(field string, value any) {
	r.log.Info(fmt.Sprintf(noticeFormat, field, value))
}

// finalizeConfig recomputes all derived fields in exactly one place.
// It is called on every resolution, never incrementally, so the derived
// planes can never drift from their inputs.
// Complexity: O(N²) time and space.
func finalizeConfig(c *Config) {
	c.CoordX, c.CoordY = coordGrids(c.ImageSizePx)
	c.CyclesPerPixel = c.CyclesPerImage / float64(c.ImageSizePx)
	c.GaussianMask = gaussianMask(c.ImageSizePx, c.GaussianSpaceConstant)
}

// coordGrids builds the N×N pixel coordinate grids: x[i,j] = j, y[i,j] = i.
// Row index is y, column index is x (standard grid pairing).
func coordGrids(n int) (x, y *mat.Dense) {
	x = mat.NewDense(n, n, nil)
	y = mat.NewDense(n, n, nil)
	xd, yd := x.RawMatrix(), y.RawMatrix()
	for i := 0; i < n; i++ {
		xb, yb := i*xd.Stride, i*yd.Stride
		row := float64(i) // cache the row coordinate once per row
		for j := 0; j < n; j++ {
			xd.Data[xb+j] = float64(j)
			yd.Data[yb+j] = row
		}
	}

	return x, y
}

// gaussianMask builds the isotropic Gaussian envelope on a CENTERED
// coordinate system: n samples linearly spaced over [-n/2, n/2] per axis
// (same resolution as the pixel grid, but centered rather than
// origin-anchored; the two coordinate systems are distinct).
//
//	mask[i,j] = exp(-(cx[j]² + cy[i]²) / space²)
//
// Every entry lies in (0,1]; the center sample is exactly 1.
func gaussianMask(n int, space float64) *mat.Dense {
	centered := linspace(-float64(n)/2, float64(n)/2, n)
	inv := 1 / (space * space)

	m := mat.NewDense(n, n, nil)
	md := m.RawMatrix()
	for i := 0; i < n; i++ {
		base := i * md.Stride
		y2 := centered[i] * centered[i] // squared y once per row
		for j := 0; j < n; j++ {
			md.Data[base+j] = math.Exp(-(centered[j]*centered[j] + y2) * inv)
		}
	}

	return m
}

// linspace returns n samples evenly spaced over [lo, hi] inclusive.
// A single sample sits at the midpoint, so a 1×1 grid is measured at the
// image center (distance 0 ⇒ mask value exactly 1).
func linspace(lo, hi float64, n int) []float64 {
	s := make([]float64, n)
	if n == 1 {
		s[0] = (lo + hi) / 2

		return s
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		s[i] = lo + float64(i)*step
	}

	return s
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
