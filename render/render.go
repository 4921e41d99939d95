// SPDX-License-Identifier: MIT
// Package render: plane→image conversion helpers.

package render

import (
	"errors"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrNilPlane indicates that a nil plane was passed to Gray.
	ErrNilPlane = errors.New("render: plane is nil")

	// ErrBadGrayScale indicates a non-positive or non-finite gray-scale
	// ceiling.
	ErrBadGrayScale = errors.New("render: gray scale must be a positive finite real")
)

// Gray maps a float plane with values in [0, grayScale] onto an 8-bit
// grayscale image: out = round(v/grayScale·255), clamped. Values outside
// the nominal range (callers feeding their own planes) clamp rather than
// wrap.
// Complexity: O(N²) time and space.
func Gray(plane *mat.Dense, grayScale float64) (*image.Gray, error) {
	if plane == nil {
		return nil, ErrNilPlane
	}
	if grayScale <= 0 || math.IsNaN(grayScale) || math.IsInf(grayScale, 0) {
		return nil, ErrBadGrayScale
	}

	r, c := plane.Dims()
	out := image.NewGray(image.Rect(0, 0, c, r))
	pd := plane.RawMatrix()
	scale := 255 / grayScale

	for i := 0; i < r; i++ {
		base := i * pd.Stride
		for j := 0; j < c; j++ {
			v := pd.Data[base+j] * scale
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			out.SetGray(j, i, color.Gray{Y: uint8(math.Round(v))})
		}
	}

	return out, nil
}

// Thumbnail returns an interpolated copy of img scaled so its longer side
// equals maxSide, preserving aspect ratio. Images already within bounds
// (or a non-positive maxSide) are returned unchanged.
func Thumbnail(img image.Image, maxSide int) image.Image {
	if img == nil || maxSide <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	// Scale the longer side down to maxSide.
	var tw, th int
	if w >= h {
		tw = maxSide
		th = int(math.Round(float64(h) * float64(maxSide) / float64(w)))
	} else {
		th = maxSide
		tw = int(math.Round(float64(w) * float64(maxSide) / float64(h)))
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewGray(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	return dst
}
