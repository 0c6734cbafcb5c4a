package gray8

import "fmt"

// DefaultAlignment is the row alignment applied by New, chosen as the least
// common multiple of a 64 byte cache line and the 24 byte stride needed for
// RGB in 8-wide vector processing.
const DefaultAlignment = 96

// Image is a grayscale image backed by a contiguous byte buffer. Rows start
// every Stride bytes; the bytes between Width and Stride on each row are
// padding with undefined content and are never read by any operation.
type Image struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

// New allocates a zero filled image whose stride is Width rounded up to
// DefaultAlignment.
func New(width, height int) *Image {
	return NewAlignment(width, height, DefaultAlignment)
}

// NewAlignment allocates a zero filled image whose stride is the smallest
// multiple of alignment that is >= width.
func NewAlignment(width, height, alignment int) *Image {
	stride := width

	if stride%alignment != 0 {
		stride += alignment - stride%alignment
	}

	return NewStride(width, height, stride)
}

// NewStride allocates a zero filled image with the exact stride requested.
// It panics if stride < width.
func NewStride(width, height, stride int) *Image {
	if stride < width {
		panic(fmt.Sprintf("gray8: stride %d is smaller than width %d", stride, width))
	}

	return &Image{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]uint8, stride*height),
	}
}

// Clone returns a deep copy of the image with identical geometry and
// independent backing storage.
func (im *Image) Clone() *Image {
	pix := make([]uint8, len(im.Pix))
	copy(pix, im.Pix)

	return &Image{
		Width:  im.Width,
		Height: im.Height,
		Stride: im.Stride,
		Pix:    pix,
	}
}

// Release detaches the backing pixel buffer so it becomes eligible for
// collection. It is safe to call on a nil image.
func (im *Image) Release() {
	if im == nil {
		return
	}
	im.Pix = nil
	im.Width, im.Height, im.Stride = 0, 0, 0
}

// row returns the addressable pixels of row y, excluding the stride padding.
func (im *Image) row(y int) []uint8 {
	return im.Pix[y*im.Stride : y*im.Stride+im.Width]
}
