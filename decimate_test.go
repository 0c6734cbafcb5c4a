package gray8

import (
	"fmt"
	"testing"
)

func uniformImage(width, height int, v uint8) *Image {
	im := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			im.Pix[y*im.Stride+x] = v
		}
	}
	return im
}

func TestDecimate_UniformInvariance(t *testing.T) {
	const v = 100

	testCases := []struct {
		factor float32
		want   uint8
	}{
		{1.5, v},
		{2, v},
		{3, v},
		// Factor 4 sums 12 samples over a divisor of 16, an uneven
		// weighting preserved for numeric compatibility.
		{4, uint8(12 * v >> 4)},
		{5, v},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("factor %v", tc.factor), func(t *testing.T) {
			im := uniformImage(24, 24, v)
			decim := im.Decimate(tc.factor)

			for y := 0; y < decim.Height; y++ {
				for x := 0; x < decim.Width; x++ {
					if decim.Pix[y*decim.Stride+x] != tc.want {
						t.Fatalf("pixel (%d,%d) expected to be %d. Got %d", x, y, tc.want, decim.Pix[y*decim.Stride+x])
					}
				}
			}
		})
	}
}

func TestDecimate_Factor2Average(t *testing.T) {
	im := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			im.Pix[y*im.Stride+x] = uint8(y*4 + x)
		}
	}

	decim := im.Decimate(2)

	if decim.Width != 2 || decim.Height != 2 {
		t.Fatalf("dimensions expected to be 2x2. Got %dx%d", decim.Width, decim.Height)
	}

	// Each destination pixel is the truncated mean of its 2x2 block.
	want := [2][2]uint8{
		{(0 + 1 + 4 + 5) / 4, (2 + 3 + 6 + 7) / 4},
		{(8 + 9 + 12 + 13) / 4, (10 + 11 + 14 + 15) / 4},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if decim.Pix[y*decim.Stride+x] != want[y][x] {
				t.Errorf("pixel (%d,%d) expected to be %d. Got %d", x, y, want[y][x], decim.Pix[y*decim.Stride+x])
			}
		}
	}
}

func TestDecimate_RemainderDropped(t *testing.T) {
	im := uniformImage(5, 5, 10)
	decim := im.Decimate(2)

	if decim.Width != 2 || decim.Height != 2 {
		t.Errorf("remainder rows and columns should be dropped. Got %dx%d", decim.Width, decim.Height)
	}
}

func TestDecimate_Factor15Weighting(t *testing.T) {
	// a b c
	// d e f
	// g h i
	block := [3][3]uint8{
		{9, 18, 27},
		{36, 45, 54},
		{63, 72, 81},
	}

	im := New(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			im.Pix[y*im.Stride+x] = block[y][x]
		}
	}

	decim := im.Decimate(1.5)

	if decim.Width != 2 || decim.Height != 2 {
		t.Fatalf("dimensions expected to be 2x2. Got %dx%d", decim.Width, decim.Height)
	}

	// Each output pixel weighs its quadrant 4/9, 2/9, 2/9, 1/9 toward
	// the block corner, edges and center.
	want := [2][2]uint8{
		{(4*9 + 2*18 + 2*36 + 45) / 9, (4*27 + 2*18 + 2*54 + 45) / 9},
		{(4*63 + 2*36 + 2*72 + 45) / 9, (4*81 + 2*54 + 2*72 + 45) / 9},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if decim.Pix[y*decim.Stride+x] != want[y][x] {
				t.Errorf("pixel (%d,%d) expected to be %d. Got %d", x, y, want[y][x], decim.Pix[y*decim.Stride+x])
			}
		}
	}
}

func TestDecimate_Factor15Dimensions(t *testing.T) {
	im := uniformImage(9, 9, 10)
	decim := im.Decimate(1.5)

	if decim.Width != 6 || decim.Height != 6 {
		t.Errorf("dimensions expected to be 6x6. Got %dx%d", decim.Width, decim.Height)
	}
}

func TestDecimate_WideMatchesScalar(t *testing.T) {
	// Deliberately odd width so the packed path exercises its scalar tail.
	im := New(37, 12)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			im.Pix[y*im.Stride+x] = uint8(x*251 + y*197)
		}
	}

	scalar := New(im.Width/2, im.Height/2)
	wide := New(im.Width/2, im.Height/2)

	decimate2(scalar, im)
	wideDecimate2(wide, im)

	for y := 0; y < scalar.Height; y++ {
		for x := 0; x < scalar.Width; x++ {
			if scalar.Pix[y*scalar.Stride+x] != wide.Pix[y*wide.Stride+x] {
				t.Fatalf("pixel (%d,%d) expected %d. Got %d", x, y, scalar.Pix[y*scalar.Stride+x], wide.Pix[y*wide.Stride+x])
			}
		}
	}
}

func TestDecimate_WideKillSwitch(t *testing.T) {
	t.Run("disabled by env", func(t *testing.T) {
		t.Setenv("GRAY8_NO_WIDE", "1")
		if useWideDecimate() {
			t.Errorf("GRAY8_NO_WIDE should force the scalar path")
		}
	})

	t.Run("explicit false keeps platform default", func(t *testing.T) {
		t.Setenv("GRAY8_NO_WIDE", "false")
		if useWideDecimate() != hasWideDecimate {
			t.Errorf("GRAY8_NO_WIDE=false should leave the platform default %v", hasWideDecimate)
		}
	})

	t.Run("results unchanged", func(t *testing.T) {
		t.Setenv("GRAY8_NO_WIDE", "1")

		im := uniformImage(8, 8, 60)
		decim := im.Decimate(2)
		if decim.Pix[0] != 60 {
			t.Errorf("scalar fallback expected to produce 60. Got %d", decim.Pix[0])
		}
	})
}

func BenchmarkDecimate2Scalar(b *testing.B) {
	im := uniformImage(640, 480, 128)
	decim := New(320, 240)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		decimate2(decim, im)
	}
}

func BenchmarkDecimate2Wide(b *testing.B) {
	im := uniformImage(640, 480, 128)
	decim := New(320, 240)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wideDecimate2(decim, im)
	}
}
