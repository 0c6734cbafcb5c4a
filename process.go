package gray8

import (
	"io"

	"github.com/pkg/errors"
)

// Processor bundles the processing stages shared by the command line
// interface and library consumers. Stages with zero values are skipped; the
// enabled ones run in a fixed order: blur, decimate, rotate, darken.
type Processor struct {
	// BlurSigma is the Gaussian standard deviation; zero disables the blur.
	BlurSigma float64

	// KernelSize is the odd Gaussian kernel length used when blurring.
	KernelSize int

	// DecimateFactor reduces resolution when greater than one. Supported
	// values are 1.5 and integer factors >= 2.
	DecimateFactor float64

	// RotateAngle rotates the image, in radians; zero disables rotation.
	RotateAngle float64

	// RotatePad is the intensity used for pixels outside the source
	// footprint after rotation.
	RotatePad uint8

	// Darken halves every pixel as a final stage.
	Darken bool
}

// Apply runs the enabled stages over the image and returns the result. The
// input image is mutated by the in-place stages and must not be reused.
func (p *Processor) Apply(im *Image) (*Image, error) {
	if p.BlurSigma > 0 {
		ksz := p.KernelSize
		if ksz == 0 {
			// Cover +/- 3 sigma, forced odd.
			ksz = 2*int(3*p.BlurSigma) + 1
		}
		if err := im.GaussianBlur(p.BlurSigma, ksz); err != nil {
			return nil, err
		}
	}

	if p.DecimateFactor > 1 {
		im = im.Decimate(float32(p.DecimateFactor))
	}

	if p.RotateAngle != 0 {
		im = im.Rotate(p.RotateAngle, p.RotatePad)
	}

	if p.Darken {
		im.Darken()
	}

	return im, nil
}

// Process decodes a binary PNM stream, applies the enabled stages and
// encodes the result as a binary 8 bit graymap.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	im, err := DecodePNM(r)
	if err != nil {
		return errors.Wrap(err, "decoding the source image")
	}

	out, err := p.Apply(im)
	if err != nil {
		return err
	}

	return out.EncodePGM(w)
}
