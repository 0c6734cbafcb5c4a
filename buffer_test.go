package gray8

import "testing"

const ImgWidth = 10
const ImgHeight = 10

func TestBuffer_DefaultAlignment(t *testing.T) {
	for _, width := range []int{1, 10, 95, 96, 97, 640} {
		im := New(width, ImgHeight)

		if im.Stride < im.Width {
			t.Errorf("stride %d should not be smaller than width %d", im.Stride, im.Width)
		}
		if im.Stride%DefaultAlignment != 0 {
			t.Errorf("stride %d should be a multiple of %d", im.Stride, DefaultAlignment)
		}
		if len(im.Pix) != im.Stride*im.Height {
			t.Errorf("pixel buffer length expected to be %d. Got %d", im.Stride*im.Height, len(im.Pix))
		}
	}
}

func TestBuffer_CustomAlignment(t *testing.T) {
	for _, alignment := range []int{1, 2, 24, 50} {
		im := NewAlignment(ImgWidth, ImgHeight, alignment)

		if im.Stride < ImgWidth {
			t.Errorf("stride %d should not be smaller than width %d", im.Stride, ImgWidth)
		}
		if im.Stride%alignment != 0 {
			t.Errorf("stride %d should be a multiple of %d", im.Stride, alignment)
		}
		if im.Stride-ImgWidth >= alignment {
			t.Errorf("stride %d is not the smallest multiple of %d covering width %d", im.Stride, alignment, ImgWidth)
		}
	}
}

func TestBuffer_ZeroInitialized(t *testing.T) {
	im := New(ImgWidth, ImgHeight)
	for i, p := range im.Pix {
		if p != 0 {
			t.Fatalf("pixel %d expected to be zero. Got %d", i, p)
		}
	}
}

func TestBuffer_StrideSmallerThanWidthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewStride should panic when stride < width")
		}
	}()
	NewStride(ImgWidth, ImgHeight, ImgWidth-1)
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	im := New(ImgWidth, ImgHeight)
	im.Pix[3*im.Stride+4] = 120

	cp := im.Clone()

	if cp.Width != im.Width || cp.Height != im.Height || cp.Stride != im.Stride {
		t.Errorf("clone geometry expected %dx%d stride %d. Got %dx%d stride %d",
			im.Width, im.Height, im.Stride, cp.Width, cp.Height, cp.Stride)
	}
	if cp.Pix[3*cp.Stride+4] != 120 {
		t.Errorf("clone content should match the source")
	}

	cp.Pix[3*cp.Stride+4] = 7
	if im.Pix[3*im.Stride+4] != 120 {
		t.Errorf("mutating the clone should not change the source")
	}
}

func TestBuffer_ReleaseIsNilSafe(t *testing.T) {
	var im *Image
	im.Release()

	im = New(ImgWidth, ImgHeight)
	im.Release()
	if im.Pix != nil {
		t.Errorf("release should detach the pixel buffer")
	}
}
