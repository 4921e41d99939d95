// SPDX-License-Identifier: MIT
// Package planform: planform generation.
//
// generate.go — composes gratings into the named output images.
//
// Topology contract (component angular offsets, added to BaseAngleOffset;
// L is the lattice angle):
//
//	4-component (pair angle π/2):
//	  C1=+L  C2=π/2+L  C3=π/2−L  C4=−L
//	  C1,C2 at phase 0; C3,C4 at phase PhaseOffset.
//	  Outputs: C1..C4, P12, P34, P1234.
//
//	6-component (pair angle 2π/3):
//	  C1=+L  C2=2π/3+L  C3=2π/3−L  C4=−L  C5=4π/3+L  C6=4π/3−L
//	  All at phase 0; PhaseOffset is a deliberate no-op here.
//	  Outputs: C1..C6, P12, P34, P56, P123456.
//
// Every output is normalize(mean(components)·mask) where
// normalize(v) = v·GrayScale/2 + GrayScale/2 maps the nominal [-1,1]
// signal (Gaussian attenuation only shrinks magnitude) into [0, GrayScale].

package planform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MethodGenerate prefixes generation errors for context.
const MethodGenerate = "Generate"

// pairAngleSquare and pairAngleHexagonal separate successive grating pairs
// in the two topologies.
const (
	pairAngleSquare    = math.Pi / 2
	pairAngleHexagonal = 2 * math.Pi / 3
)

// Generate synthesizes the planform image set for a resolved configuration.
//
// Stage 1 (Validate): cfg must be non-nil and resolved (derived planes
// present) ⇒ ErrInvalidInput otherwise; ComponentCount must be 4 or 6 ⇒
// ErrUnsupportedTopology otherwise. On failure no partial mapping is
// produced and cfg.Images is left untouched.
//
// Stage 2 (Synthesize): build the raw grating components.
//
// Stage 3 (Compose): mask, average, and normalize into the named outputs,
// attach the mapping to cfg.Images, and return it.
//
// Deterministic: repeated calls with an identical configuration produce
// bit-identical planes. Complexity: O(k·N²) for k components.
//
// Compatibility note (6-component only): the images published under NameC5
// and NameC6 are computed from the C3 and C4 gratings, the original
// generator's behavior, preserved bit-for-bit. The true C5/C6 gratings
// contribute only to P56 and P123456.
func Generate(cfg *Config) (Images, error) {
	if cfg == nil {
		return nil, planformErrorf(MethodGenerate, "nil configuration", ErrInvalidInput)
	}
	if cfg.CoordX == nil || cfg.CoordY == nil || cfg.GaussianMask == nil {
		return nil, planformErrorf(MethodGenerate, "configuration not resolved", ErrInvalidInput)
	}

	switch cfg.ComponentCount {
	case SquareComponents:
		cfg.Images = generateSquare(cfg)
	case HexagonalComponents:
		cfg.Images = generateHexagonal(cfg)
	default:
		return nil, fmt.Errorf("%s: component count %d: %w", MethodGenerate, cfg.ComponentCount, ErrUnsupportedTopology)
	}

	return cfg.Images, nil
}

// generateSquare builds the 4-component (square / super-square) image set.
func generateSquare(cfg *Config) Images {
	b, l := cfg.BaseAngleOffset, cfg.LatticeAngle

	c1 := cfg.grating(0, b+l)
	c2 := cfg.grating(0, b+pairAngleSquare+l)
	c3 := cfg.grating(cfg.PhaseOffset, b+pairAngleSquare-l)
	c4 := cfg.grating(cfg.PhaseOffset, b-l)

	return Images{
		NameC1:    cfg.composite(c1),
		NameC2:    cfg.composite(c2),
		NameC3:    cfg.composite(c3),
		NameC4:    cfg.composite(c4),
		NameP12:   cfg.composite(c1, c2),
		NameP34:   cfg.composite(c3, c4),
		NameP1234: cfg.composite(c1, c2, c3, c4),
	}
}

// generateHexagonal builds the 6-component (hexagonal) image set.
// PhaseOffset is intentionally not applied to any component here.
func generateHexagonal(cfg *Config) Images {
	b, l := cfg.BaseAngleOffset, cfg.LatticeAngle

	c1 := cfg.grating(0, b+l)
	c2 := cfg.grating(0, b+pairAngleHexagonal+l)
	c3 := cfg.grating(0, b+pairAngleHexagonal-l)
	c4 := cfg.grating(0, b-l)
	c5 := cfg.grating(0, b+2*pairAngleHexagonal+l)
	c6 := cfg.grating(0, b+2*pairAngleHexagonal-l)

	return Images{
		NameC1: cfg.composite(c1),
		NameC2: cfg.composite(c2),
		NameC3: cfg.composite(c3),
		NameC4: cfg.composite(c4),
		// C5/C6 reuse the C3/C4 gratings for numeric compatibility with
		// the original generator; see the package documentation.
		NameC5:      cfg.composite(c3),
		NameC6:      cfg.composite(c4),
		NameP12:     cfg.composite(c1, c2),
		NameP34:     cfg.composite(c3, c4),
		NameP56:     cfg.composite(c5, c6),
		NameP123456: cfg.composite(c1, c2, c3, c4, c5, c6),
	}
}

// composite is the shared normalization pipeline:
//
//	normalize(mean(planes) · mask),  normalize(v) = v·gray/2 + gray/2
//
// The mean keeps the pre-mask signal nominally within [-1,1], the mask
// only shrinks magnitude, so every output pixel lands in [0, GrayScale].
func (c *Config) composite(planes ...*mat.Dense) *mat.Dense {
	half := c.GrayScale / 2

	return ewScaleShift(ewMul(ewMean(planes), c.GaussianMask), half, half)
}
