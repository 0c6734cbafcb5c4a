package gray8

import (
	"image"
	"image/color"
)

// FloatImage is the accessor contract for a floating point grayscale image
// with the same row-major stride layout as Image and samples in [0, 1].
type FloatImage interface {
	// Dims returns the width, height and stride of the image, with the
	// stride counted in samples.
	Dims() (width, height, stride int)

	// Floats returns the backing sample array of length stride * height.
	Floats() []float32
}

// FromFloat converts a floating point image to an 8 bit image by scaling
// each sample by 255 and truncating. No clamping is applied, so samples
// outside [0, 1] must be clamped by the caller beforehand.
func FromFloat(src FloatImage) *Image {
	width, height, stride := src.Dims()
	pix := src.Floats()

	im := New(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			im.Pix[y*im.Stride+x] = uint8(255 * pix[y*stride+x])
		}
	}

	return im
}

// FromImage converts any stdlib image to a grayscale image using the same
// (r + 2g + b) / 4 luma the pixmap decoder applies, with fast paths for the
// gray and NRGBA layouts.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	im := New(width, height)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < height; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(im.row(y), src.Pix[si:si+width])
		}
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < width; x++ {
				r := int(src.Pix[si+0])
				g := int(src.Pix[si+1])
				b := int(src.Pix[si+2])
				im.Pix[y*im.Stride+x] = uint8((r + g + g + b) / 4)
				si += 4
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				r, g, b := int(c.R), int(c.G), int(c.B)
				im.Pix[y*im.Stride+x] = uint8((r + g + g + b) / 4)
			}
		}
	}

	return im
}

// ToGray copies the image into a stdlib *image.Gray, dropping the stride
// padding, so it can be handed to the standard encoders.
func (im *Image) ToGray() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, im.Width, im.Height))

	for y := 0; y < im.Height; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+im.Width], im.row(y))
	}

	return dst
}
