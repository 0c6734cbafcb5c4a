package gray8

import (
	"math"

	"github.com/pkg/errors"
	"github.com/quadtag/gray8/utils"
)

// convolve1D filters a single row or column of length n into dst using an
// odd length fixed-point kernel whose weights are scaled by 256. The first
// and last k/2 samples are copied through unfiltered.
func convolve1D(src, dst []uint8, n int, k []uint8) {
	ksz := len(k)

	for i := 0; i < ksz/2 && i < n; i++ {
		dst[i] = src[i]
	}

	for i := 0; i < n-ksz; i++ {
		var acc uint32

		for j := 0; j < ksz; j++ {
			acc += uint32(k[j]) * uint32(src[i+j])
		}

		dst[ksz/2+i] = uint8(acc >> 8)
	}

	for i := utils.Max(0, n-ksz+ksz/2); i < n; i++ {
		dst[i] = src[i]
	}
}

// Convolve filters the image in place with a separable 2-D convolution: a
// horizontal pass followed by a vertical pass, both using the same kernel.
// This equals true 2-D convolution only for kernels that are products of 1-D
// kernels, which holds for the Gaussian kernels built by GaussianBlur. The
// kernel length must be odd.
func (im *Image) Convolve(k []uint8) error {
	if len(k)&1 != 1 {
		return errors.Errorf("gray8: kernel length %d is not odd", len(k))
	}

	scratch := make([]uint8, utils.Max(im.Width, im.Height))

	for y := 0; y < im.Height; y++ {
		copy(scratch, im.row(y))
		convolve1D(scratch, im.row(y), im.Width, k)
	}

	column := make([]uint8, im.Height)
	for x := 0; x < im.Width; x++ {
		for y := 0; y < im.Height; y++ {
			column[y] = im.Pix[y*im.Stride+x]
		}

		convolve1D(column, scratch, im.Height, k)

		for y := 0; y < im.Height; y++ {
			im.Pix[y*im.Stride+x] = scratch[y]
		}
	}

	return nil
}

// GaussianBlur blurs the image in place with a Gaussian kernel of standard
// deviation sigma and odd length ksz. A sigma of zero leaves the image
// untouched.
func (im *Image) GaussianBlur(sigma float64, ksz int) error {
	if sigma == 0 {
		return nil
	}

	if ksz&1 != 1 {
		return errors.Errorf("gray8: kernel size %d is not odd", ksz)
	}

	// Sample the Gaussian at integer offsets centered on the kernel:
	// for length 5, dk[0] = f(-2) .. dk[4] = f(2).
	dk := make([]float64, ksz)
	for i := 0; i < ksz; i++ {
		x := float64(-ksz/2 + i)
		dk[i] = math.Exp(-0.5 * utils.Sq(x/sigma))
	}

	var acc float64
	for i := 0; i < ksz; i++ {
		acc += dk[i]
	}

	k := make([]uint8, ksz)
	for i := 0; i < ksz; i++ {
		k[i] = uint8(dk[i] / acc * 255)
	}

	return im.Convolve(k)
}
