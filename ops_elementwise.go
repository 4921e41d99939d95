// SPDX-License-Identifier: MIT
// Package planform: private element-wise kernels (ew*) shared by the
// generator, kept out of the composition code so the topology formulas in
// generate.go stay readable and directly testable per pixel.
//
// Design:
//   - All ew* are UNEXPORTED micro-kernels over *mat.Dense planes.
//   - Inputs are produced internally and always share one shape; the
//     kernels rely on that invariant rather than re-validating it.
//   - Fixed loop orders (i→j over the flat row-major buffer); no hidden
//     allocations beyond the output plane. O(N²) time and space each.

package planform

import "gonum.org/v1/gonum/mat"

// ewMean computes out[i,j] = (Σ planes[k][i,j]) / len(planes).
// Summation order follows the planes slice, so results are bit-stable for
// a fixed component order.
func ewMean(planes []*mat.Dense) *mat.Dense {
	r, c := planes[0].Dims()
	out := mat.NewDense(r, c, nil)
	od := out.RawMatrix()
	inv := 1 / float64(len(planes))

	for _, p := range planes {
		pd := p.RawMatrix()
		for i := 0; i < r; i++ {
			ob, pb := i*od.Stride, i*pd.Stride
			for j := 0; j < c; j++ {
				od.Data[ob+j] += pd.Data[pb+j]
			}
		}
	}
	for i := 0; i < r; i++ {
		ob := i * od.Stride
		for j := 0; j < c; j++ {
			od.Data[ob+j] *= inv
		}
	}

	return out
}

// ewMul computes the Hadamard product out[i,j] = a[i,j] * b[i,j].
func ewMul(a, b *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	ad, bd, od := a.RawMatrix(), b.RawMatrix(), out.RawMatrix()

	for i := 0; i < r; i++ {
		ab, bb, ob := i*ad.Stride, i*bd.Stride, i*od.Stride
		for j := 0; j < c; j++ {
			od.Data[ob+j] = ad.Data[ab+j] * bd.Data[bb+j]
		}
	}

	return out
}

// ewScaleShift computes out[i,j] = a[i,j]*scale + shift, in place on a.
// The generator owns every plane it passes here, so in-place mutation is
// safe and saves one N² allocation per output image.
func ewScaleShift(a *mat.Dense, scale, shift float64) *mat.Dense {
	r, c := a.Dims()
	ad := a.RawMatrix()

	for i := 0; i < r; i++ {
		base := i * ad.Stride
		for j := 0; j < c; j++ {
			ad.Data[base+j] = ad.Data[base+j]*scale + shift
		}
	}

	return a
}
