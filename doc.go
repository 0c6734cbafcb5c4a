/*
Package gray8 is a small grayscale raster-image processing library. It provides
an 8-bit pixel buffer with an explicit, alignment-controlled row stride, binary
PNM file I/O, separable convolution, nearest-neighbor rotation, box-filter
decimation and a handful of in-place drawing primitives.

The package is meant as a building block for computer-vision pipelines (for
instance fiducial-marker detectors) that need a predictable memory layout and
allocation-light pixel operations rather than a general purpose image codec.

The package provides a command line interface for converting and processing
images. To check the supported commands type:

	$ gray8 --help

In case you wish to integrate the API in a self constructed environment here is
a simple example:

	package main

	import (
		"fmt"
		"github.com/quadtag/gray8"
	)

	func main() {
		im, err := gray8.LoadPNM("input.pgm")
		if err != nil {
			fmt.Printf("Error loading image: %s", err.Error())
		}

		if err := im.GaussianBlur(0.8, 5); err != nil {
			fmt.Printf("Error blurring image: %s", err.Error())
		}

		small := im.Decimate(2)
		if err := small.SavePGM("output.pgm"); err != nil {
			fmt.Printf("Error saving image: %s", err.Error())
		}
	}
*/
package gray8
