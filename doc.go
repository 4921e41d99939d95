// Package planform synthesizes grayscale stimuli for symmetry-perception
// experiments: sums of sinusoidal gratings ("planforms") arranged as
// 4-component (square / super-square) or 6-component (hexagonal) lattices,
// windowed by a Gaussian spatial envelope.
//
// 🚀 What is a planform?
//
//	A planform is a composite luminance pattern built from 4 or 6 plane
//	sine-wave gratings whose orientations are split symmetrically around the
//	lattice axes.  Such patterns are the standard stimuli in studies of
//	mirror- and rotational-symmetry perception:
//	  • square lattice      — two orthogonal grating pairs, equal phase
//	  • super-square        — the second pair phase-shifted by π
//	  • hexagonal lattice   — three grating pairs at 2π/3 steps
//
// ✨ Key features:
//   - explicit partial configuration with documented defaults (Resolve)
//   - deterministic, purely functional synthesis (Generate)
//   - dense float64 planes backed by gonum's mat.Dense
//   - Gaussian windowing with a configurable space constant
//   - per-component and composite output images under stable names
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/planform"
//
//	cfg, err := planform.Resolve(planform.SuperSquare())
//	if err != nil { ... }
//	imgs, err := planform.Generate(cfg)
//	if err != nil { ... }
//	full := imgs[planform.NameP1234] // *mat.Dense in [0, GrayScale]
//
// Every field left unset on the Partial is assigned its documented default
// and reported with one informational notice per field, format:
//
//	Assigning default value of <field> = <value>
//
// Compatibility note: in the 6-component topology the images published under
// the names C5 and C6 are computed from the C3 and C4 gratings, and the
// PhaseOffset parameter has no effect.  Both behaviors mirror the original
// generator bit-for-bit and are kept so existing numeric expectations hold;
// the true C5/C6 gratings contribute only to P56 and P123456.
//
// Performance:
//
//   - Time:   O(k·N²) for k components on an N×N grid
//   - Memory: O(N²) per output plane
//
// See example_test.go for runnable scenarios.
package planform
