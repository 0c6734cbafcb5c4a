package gray8

import (
	"math"

	"github.com/quadtag/gray8/utils"
)

// Rotate returns a new image holding the source rotated by rad radians
// around its center. The output is sized to the axis-aligned bounding box of
// the rotated corners, so it generally differs from the source size except at
// angle zero. Sampling is nearest neighbor with no interpolation; output
// pixels that map outside the source are set to pad.
func (im *Image) Rotate(rad float64, pad uint8) *Image {
	iwidth, iheight := im.Width, im.Height

	// Negate so that a positive angle rotates consistently with a
	// downward-increasing row axis.
	rad = -rad

	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))

	corners := [4][2]float32{
		{0, 0},
		{float32(iwidth), 0},
		{float32(iwidth), float32(iheight)},
		{0, float32(iheight)},
	}

	icx := float32(iwidth) / 2
	icy := float32(iheight) / 2

	xmin, xmax := float32(math.Inf(1)), float32(math.Inf(-1))
	ymin, ymax := float32(math.Inf(1)), float32(math.Inf(-1))

	for _, p := range corners {
		px := p[0] - icx
		py := p[1] - icy

		nx := px*c - py*s
		ny := px*s + py*c

		xmin = utils.Min(xmin, nx)
		xmax = utils.Max(xmax, nx)
		ymin = utils.Min(ymin, ny)
		ymax = utils.Max(ymax, ny)
	}

	owidth := int(math.Ceil(float64(xmax - xmin)))
	oheight := int(math.Ceil(float64(ymax - ymin)))
	out := New(owidth, oheight)

	// Work backwards from destination coordinates, sampling pixel centers.
	for oy := 0; oy < oheight; oy++ {
		for ox := 0; ox < owidth; ox++ {
			sx := float32(ox) - float32(owidth)/2 + 0.5
			sy := float32(oy) - float32(oheight)/2 + 0.5

			// Project into input-image space.
			ix := int(math.Floor(float64(sx*c + sy*s + icx)))
			iy := int(math.Floor(float64(-sx*s + sy*c + icy)))

			if ix >= 0 && iy >= 0 && ix < iwidth && iy < iheight {
				out.Pix[oy*out.Stride+ox] = im.Pix[iy*im.Stride+ix]
			} else {
				out.Pix[oy*out.Stride+ox] = pad
			}
		}
	}

	return out
}
