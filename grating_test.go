package planform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planform"
)

// grids resolves an n×n configuration and returns its coordinate grids.
func grids(t *testing.T, n int) (*planform.Config, error) {
	t.Helper()
	r, _ := newCaptureResolver()

	return r.Resolve(&planform.Partial{ImageSizePx: planform.Int(n)})
}

// TestGrating_OriginValue: the grating argument vanishes at the grid
// origin, so the value there is amplitude·cos(phase) for any angle and
// frequency.
func TestGrating_OriginValue(t *testing.T) {
	cfg, err := grids(t, 8)
	require.NoError(t, err)

	g := planform.Grating(cfg.CoordX, cfg.CoordY, 2.0, 0, 1.234, 0.05)
	assert.Equal(t, 2.0, g.At(0, 0), "cos(0) at the origin, scaled by amplitude")

	g = planform.Grating(cfg.CoordX, cfg.CoordY, 1.0, math.Pi, 0.5, 0.05)
	assert.InDelta(t, -1.0, g.At(0, 0), 1e-12, "phase π flips the origin value")
}

// TestGrating_HorizontalWave: angle 0 propagates along x, so every value
// depends only on the column, and a quarter-cycle-per-pixel frequency hits
// the known cosine lattice points.
func TestGrating_HorizontalWave(t *testing.T) {
	cfg, err := grids(t, 8)
	require.NoError(t, err)

	g := planform.Grating(cfg.CoordX, cfg.CoordY, 1.0, 0, 0, 0.25)

	// Column constancy: every row sees the same wave.
	for i := 1; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.InDelta(t, g.At(0, j), g.At(i, j), 1e-12, "horizontal wave is row-invariant")
		}
	}
	// cos(2π·0.25·j) = 1, 0, -1, 0, 1, ...
	assert.InDelta(t, 1.0, g.At(0, 0), 1e-12)
	assert.InDelta(t, 0.0, g.At(0, 1), 1e-12)
	assert.InDelta(t, -1.0, g.At(0, 2), 1e-12)
	assert.InDelta(t, 0.0, g.At(0, 3), 1e-12)
	assert.InDelta(t, 1.0, g.At(0, 4), 1e-12)
}

// TestGrating_VerticalWave: angle π/2 propagates along y, so the value
// depends only on the row.
func TestGrating_VerticalWave(t *testing.T) {
	cfg, err := grids(t, 8)
	require.NoError(t, err)

	g := planform.Grating(cfg.CoordX, cfg.CoordY, 1.0, 0, math.Pi/2, 0.25)

	for i := 0; i < 8; i++ {
		for j := 1; j < 8; j++ {
			assert.InDelta(t, g.At(i, 0), g.At(i, j), 1e-9, "vertical wave is column-invariant")
		}
	}
	assert.InDelta(t, -1.0, g.At(2, 0), 1e-9, "half cycle down the rows")
}

// TestGrating_AmplitudeScaling: the output is linear in amplitude.
func TestGrating_AmplitudeScaling(t *testing.T) {
	cfg, err := grids(t, 6)
	require.NoError(t, err)

	one := planform.Grating(cfg.CoordX, cfg.CoordY, 1.0, 0.3, 0.7, 0.11)
	three := planform.Grating(cfg.CoordX, cfg.CoordY, 3.0, 0.3, 0.7, 0.11)

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.InDelta(t, 3*one.At(i, j), three.At(i, j), 1e-12, "amplitude scales linearly")
		}
	}
}

// TestGrating_Bounded: for amplitude 1 every sample lies in [-1, 1].
func TestGrating_Bounded(t *testing.T) {
	cfg, err := grids(t, 16)
	require.NoError(t, err)

	g := planform.Grating(cfg.CoordX, cfg.CoordY, 1.0, 0.9, 2.1, 0.07)
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			v := g.At(i, j)
			require.GreaterOrEqual(t, v, -1.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}
