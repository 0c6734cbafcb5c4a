package gray8

import "testing"

func TestConvolve_EvenKernelRejected(t *testing.T) {
	im := New(ImgWidth, ImgHeight)
	if err := im.Convolve([]uint8{128, 128}); err == nil {
		t.Errorf("even kernel length should be rejected")
	}
	if err := im.GaussianBlur(1.0, 4); err == nil {
		t.Errorf("even kernel size should be rejected")
	}
}

func TestGaussianBlur_ZeroSigmaIsIdentity(t *testing.T) {
	im := New(ImgWidth, ImgHeight)
	for i := range im.Pix {
		im.Pix[i] = uint8(i * 13)
	}
	want := im.Clone()

	if err := im.GaussianBlur(0, 7); err != nil {
		t.Fatalf("blur failed: %v", err)
	}

	for i := range im.Pix {
		if im.Pix[i] != want.Pix[i] {
			t.Fatalf("sigma 0 should leave pixel %d untouched. Got %d want %d", i, im.Pix[i], want.Pix[i])
		}
	}
}

func TestConvolve_UniformStaysUniform(t *testing.T) {
	// The kernel weights sum to 256, so interior pixels reproduce the
	// input exactly and the border pixels are copied through.
	im := New(ImgWidth, ImgHeight)
	for i := range im.Pix {
		im.Pix[i] = 90
	}

	if err := im.Convolve([]uint8{64, 128, 64}); err != nil {
		t.Fatalf("convolve failed: %v", err)
	}

	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			if im.Pix[y*im.Stride+x] != 90 {
				t.Fatalf("pixel (%d,%d) expected to stay 90. Got %d", x, y, im.Pix[y*im.Stride+x])
			}
		}
	}
}

func TestConvolve_ImpulseResponse(t *testing.T) {
	im := New(9, 1)
	im.Pix[4] = 255

	if err := im.Convolve([]uint8{64, 128, 64}); err != nil {
		t.Fatalf("convolve failed: %v", err)
	}

	want := []uint8{0, 0, 0, 63, 127, 63, 0, 0, 0}
	for x, w := range want {
		if im.Pix[x] != w {
			t.Errorf("pixel %d expected to be %d. Got %d", x, w, im.Pix[x])
		}
	}
}

func TestConvolve_BorderCopiedUnfiltered(t *testing.T) {
	im := New(9, 1)
	for x := 0; x < im.Width; x++ {
		im.Pix[x] = uint8(10 * x)
	}

	if err := im.Convolve([]uint8{0, 0, 0, 0, 0}); err != nil {
		t.Fatalf("convolve failed: %v", err)
	}

	// A zero kernel blanks the filtered interior but the first and last
	// k/2 samples pass through, as do the trailing interior positions the
	// 1-D pass deliberately skips.
	for _, x := range []int{0, 1, 6, 7, 8} {
		if im.Pix[x] != uint8(10*x) {
			t.Errorf("border pixel %d expected to be %d. Got %d", x, 10*x, im.Pix[x])
		}
	}
	for x := 2; x < 6; x++ {
		if im.Pix[x] != 0 {
			t.Errorf("interior pixel %d expected to be zeroed. Got %d", x, im.Pix[x])
		}
	}
}
