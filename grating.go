// SPDX-License-Identifier: MIT
// Package planform: plane sine-wave synthesis.

package planform

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grating synthesizes a plane sine-wave luminance pattern over the given
// coordinate grids:
//
//	f = cyclesPerPixel · 2π
//	a = cos(angle)·f,  b = sin(angle)·f
//	out[i,j] = amplitude · cos(a·coordX[i,j] + b·coordY[i,j] + phase)
//
// angle sets the propagation direction, cyclesPerPixel the spatial
// frequency, phase shifts the wave, amplitude scales it. Pure function
// with no failure modes for well-formed numeric inputs; coordX and coordY
// must share one shape (the resolver always produces such a pair).
// Complexity: O(N²) time and space for an N×N grid.
func Grating(coordX, coordY *mat.Dense, amplitude, phase, angle, cyclesPerPixel float64) *mat.Dense {
	f := cyclesPerPixel * 2 * math.Pi
	a := math.Cos(angle) * f
	b := math.Sin(angle) * f

	r, c := coordX.Dims()
	out := mat.NewDense(r, c, nil)
	xd, yd, od := coordX.RawMatrix(), coordY.RawMatrix(), out.RawMatrix()

	for i := 0; i < r; i++ {
		xb, yb, ob := i*xd.Stride, i*yd.Stride, i*od.Stride
		for j := 0; j < c; j++ {
			od.Data[ob+j] = amplitude * math.Cos(a*xd.Data[xb+j]+b*yd.Data[yb+j]+phase)
		}
	}

	return out
}

// grating binds Grating to the configuration's grids, amplitude, and
// spatial frequency; only phase and angle vary between components.
func (c *Config) grating(phase, angle float64) *mat.Dense {
	return Grating(c.CoordX, c.CoordY, c.Amplitude, phase, angle, c.CyclesPerPixel)
}
