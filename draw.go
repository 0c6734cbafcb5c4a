package gray8

import (
	"fmt"
	"math"

	"github.com/quadtag/gray8/utils"
)

// LUT maps a squared pixel distance to an intensity contribution for
// FillLineMax. Scale converts a squared distance to a table index by
// truncation; indices at or beyond len(Values) contribute nothing. The table
// is owned by the caller and only read for the duration of one fill call.
type LUT struct {
	Scale  float32
	Values []uint8
}

// DrawCircle fills the disk of radius r centered at (x0, y0) with v. The
// shape is silently clipped to the image bounds.
func (im *Image) DrawCircle(x0, y0, r float32, v uint8) {
	r2 := r * r

	for y := int(y0 - r); y <= int(y0+r); y++ {
		for x := int(x0 - r); x <= int(x0+r); x++ {
			d := (float32(x)-x0)*(float32(x)-x0) + (float32(y)-y0)*(float32(y)-y0)
			if d > r2 {
				continue
			}

			if x >= 0 && x < im.Width && y >= 0 && y < im.Height {
				im.Pix[y*im.Stride+x] = v
			}
		}
	}
}

// DrawAnnulus fills the ring r0 <= d <= r1 centered at (x0, y0) with v. It
// performs no bounds checking; keeping the ring inside the image is the
// caller's responsibility. It panics unless r0 < r1.
func (im *Image) DrawAnnulus(x0, y0, r0, r1 float32, v uint8) {
	if r0 >= r1 {
		panic(fmt.Sprintf("gray8: annulus radii %v >= %v", r0, r1))
	}

	r0 = r0 * r0
	r1 = r1 * r1

	for y := int(y0 - r1); y <= int(y0+r1); y++ {
		for x := int(x0 - r1); x <= int(x0+r1); x++ {
			d := (float32(x)-x0)*(float32(x)-x0) + (float32(y)-y0)*(float32(y)-y0)
			if d < r0 || d > r1 {
				continue
			}

			im.Pix[y*im.Stride+x] = v
		}
	}
}

// DrawLine plots the segment from (x0, y0) to (x1, y1) with v by walking the
// segment at a sub-pixel step and setting the nearest pixel. A width greater
// than one additionally plots the right and below neighbors of each pixel,
// which thickens the line crudely rather than stroking it. Out of bounds
// pixels are silently skipped.
func (im *Image) DrawLine(x0, y0, x1, y1 float32, v uint8, width int) {
	dist := math.Sqrt(float64((y1-y0)*(y1-y0) + (x1-x0)*(x1-x0)))
	delta := 0.5 / dist

	for f := 0.0; f <= 1; f += delta {
		x := int(float64(x1) + float64(x0-x1)*f)
		y := int(float64(y1) + float64(y0-y1)*f)

		if x < 0 || y < 0 || x >= im.Width || y >= im.Height {
			continue
		}

		idx := y*im.Stride + x
		im.Pix[idx] = v
		if width > 1 {
			if x+1 < im.Width {
				im.Pix[idx+1] = v
			}
			if y+1 < im.Height {
				im.Pix[idx+im.Stride] = v
			}
			if x+1 < im.Width && y+1 < im.Height {
				im.Pix[idx+1+im.Stride] = v
			}
		}
	}
}

// Darken halves the intensity of every pixel in place.
func (im *Image) Darken() {
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			im.Pix[y*im.Stride+x] /= 2
		}
	}
}

// FillLineMax renders an anti-aliased thick segment from (x0, y0) to
// (x1, y1). For every pixel within the lookup table's effective radius of
// the segment it computes the squared distance to the closest point on the
// segment, looks up an intensity and writes it only if it exceeds the
// pixel's current value. The max composite keeps overlapping fills from
// darkening each other.
func (im *Image) FillLineMax(lut *LUT, x0, y0, x1, y1 float32) {
	// The largest distance that still lands inside the table.
	maxDist2 := float32(len(lut.Values)-1) / lut.Scale
	maxDist := float32(math.Sqrt(float64(maxDist2)))

	// The orientation of the line.
	theta := math.Atan2(float64(y1-y0), float64(x1-x0))
	v, u := float32(math.Sin(theta)), float32(math.Cos(theta))

	ix0 := utils.Clamp(int(utils.Min(x0, x1)-maxDist), 0, im.Width-1)
	ix1 := utils.Clamp(int(utils.Max(x0, x1)+maxDist), 0, im.Width-1)

	iy0 := utils.Clamp(int(utils.Min(y0, y1)-maxDist), 0, im.Height-1)
	iy1 := utils.Clamp(int(utils.Max(y0, y1)+maxDist), 0, im.Height-1)

	// The segment is parameterized in line coordinates with (x0, y0)
	// fixed at coordinate zero.
	endCoord := (x1-x0)*u + (y1-y0)*v

	minCoord := utils.Min(0, endCoord)
	maxCoord := utils.Max(0, endCoord)

	for iy := iy0; iy <= iy1; iy++ {
		y := float32(iy) + 0.5

		for ix := ix0; ix <= ix1; ix++ {
			x := float32(ix) + 0.5

			// Line coordinate of this pixel, clamped to the extent
			// of the segment.
			coord := (x-x0)*u + (y-y0)*v
			if coord < minCoord {
				coord = minCoord
			} else if coord > maxCoord {
				coord = maxCoord
			}

			px := x0 + coord*u
			py := y0 + coord*v

			dist2 := (x-px)*(x-px) + (y-py)*(y-py)

			idx := int(dist2 * lut.Scale)
			if idx >= len(lut.Values) {
				continue
			}

			if lutValue := lut.Values[idx]; lutValue > im.Pix[iy*im.Stride+ix] {
				im.Pix[iy*im.Stride+ix] = lutValue
			}
		}
	}
}
