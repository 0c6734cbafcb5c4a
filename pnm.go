package gray8

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Errors reported by the PNM codec. Resource errors coming from the
// underlying file are wrapped and can be unwrapped with errors.Cause.
var (
	// ErrBadHeader is returned when the PNM header is malformed or the
	// magic number is not one of the supported binary variants.
	ErrBadHeader = errors.New("pnm: malformed header")

	// ErrUnsupportedMaxval is returned when the declared maximum sample
	// value is neither 255 nor 65535. The codec never guesses a sample
	// layout it does not know.
	ErrUnsupportedMaxval = errors.New("pnm: unsupported maximum sample value")

	// ErrShortWrite is returned when a row could not be written in full.
	ErrShortWrite = errors.New("pnm: short write")
)

// PNM magic numbers of the supported binary variants.
const (
	magicBitmap  = "P4"
	magicGraymap = "P5"
	magicPixmap  = "P6"
)

// LoadPNM reads a binary PBM, PGM or PPM file into a grayscale image using
// the default stride alignment.
func LoadPNM(path string) (*Image, error) {
	return LoadPNMAlignment(path, DefaultAlignment)
}

// LoadPNMAlignment is like LoadPNM with a caller supplied stride alignment.
func LoadPNMAlignment(path string, alignment int) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open the source image")
	}
	defer f.Close()

	return DecodePNMAlignment(f, alignment)
}

// DecodePNM decodes a binary PBM, PGM or PPM stream into a grayscale image
// using the default stride alignment.
func DecodePNM(r io.Reader) (*Image, error) {
	return DecodePNMAlignment(r, DefaultAlignment)
}

// DecodePNMAlignment decodes a binary PBM, PGM or PPM stream into a grayscale
// image. Color pixmaps are reduced with the luma formula (r + 2g + b) / 4 and
// 16 bit samples keep only the high byte of each big-endian sample. The
// output stride is governed by alignment, independent of the input layout.
func DecodePNMAlignment(r io.Reader, alignment int) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := nextToken(br)
	if err != nil {
		return nil, errors.Wrap(ErrBadHeader, err.Error())
	}

	width, err := nextInt(br)
	if err != nil {
		return nil, err
	}
	height, err := nextInt(br)
	if err != nil {
		return nil, err
	}

	maxval := 1
	if magic != magicBitmap {
		if maxval, err = nextInt(br); err != nil {
			return nil, err
		}
	}

	switch magic {
	case magicBitmap:
		return decodeBitmap(br, width, height, alignment)
	case magicGraymap:
		return decodeGraymap(br, width, height, maxval, alignment)
	case magicPixmap:
		return decodePixmap(br, width, height, maxval, alignment)
	default:
		return nil, errors.Wrapf(ErrBadHeader, "magic number %q", magic)
	}
}

// decodeBitmap expands a 1 bit per pixel bitmap whose rows are padded to
// whole bytes. A set bit is opaque ink, so it maps to intensity 0.
func decodeBitmap(br *bufio.Reader, width, height, alignment int) (*Image, error) {
	im := NewAlignment(width, height, alignment)

	rowBytes := (width + 7) / 8
	row := make([]uint8, rowBytes)

	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, errors.Wrap(err, "reading bitmap row")
		}
		for x := 0; x < width; x++ {
			if row[x/8]>>(7-(x&7))&1 == 1 {
				im.Pix[y*im.Stride+x] = 0
			} else {
				im.Pix[y*im.Stride+x] = 255
			}
		}
	}

	return im, nil
}

func decodeGraymap(br *bufio.Reader, width, height, maxval, alignment int) (*Image, error) {
	im := NewAlignment(width, height, alignment)

	switch maxval {
	case 255:
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(br, im.row(y)); err != nil {
				return nil, errors.Wrap(err, "reading graymap row")
			}
		}
	case 65535:
		row := make([]uint8, 2*width)
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(br, row); err != nil {
				return nil, errors.Wrap(err, "reading graymap row")
			}
			for x := 0; x < width; x++ {
				im.Pix[y*im.Stride+x] = row[2*x]
			}
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedMaxval, "graymap maxval %d", maxval)
	}

	return im, nil
}

func decodePixmap(br *bufio.Reader, width, height, maxval, alignment int) (*Image, error) {
	im := NewAlignment(width, height, alignment)

	switch maxval {
	case 255:
		row := make([]uint8, 3*width)
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(br, row); err != nil {
				return nil, errors.Wrap(err, "reading pixmap row")
			}
			for x := 0; x < width; x++ {
				r := int(row[3*x+0])
				g := int(row[3*x+1])
				b := int(row[3*x+2])
				im.Pix[y*im.Stride+x] = uint8((r + g + g + b) / 4)
			}
		}
	case 65535:
		row := make([]uint8, 6*width)
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(br, row); err != nil {
				return nil, errors.Wrap(err, "reading pixmap row")
			}
			for x := 0; x < width; x++ {
				r := int(row[6*x+0])
				g := int(row[6*x+2])
				b := int(row[6*x+4])
				im.Pix[y*im.Stride+x] = uint8((r + g + g + b) / 4)
			}
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedMaxval, "pixmap maxval %d", maxval)
	}

	return im, nil
}

// EncodePGM writes the image as a binary 8 bit graymap: a three line ASCII
// header followed by Height rows of exactly Width bytes. Stride padding is
// never written.
func (im *Image) EncodePGM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", im.Width, im.Height); err != nil {
		return errors.Wrap(err, "writing graymap header")
	}

	for y := 0; y < im.Height; y++ {
		n, err := w.Write(im.row(y))
		if err != nil {
			return errors.Wrapf(err, "writing graymap row %d", y)
		}
		if n != im.Width {
			return errors.Wrapf(ErrShortWrite, "row %d", y)
		}
	}

	return nil
}

// SavePGM writes the image to path as a binary 8 bit graymap. An open
// failure is reported distinctly from a short write mid-row.
func (im *Image) SavePGM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not open the destination image")
	}

	if err := im.EncodePGM(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// nextToken returns the next whitespace separated header token, skipping
// '#' comments per the netpbm specification. It consumes the single
// whitespace byte that terminates the token and nothing beyond it, so raw
// sample data can follow immediately.
func nextToken(br *bufio.Reader) (string, error) {
	var tok []byte

	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}

		switch {
		case c == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func nextInt(br *bufio.Reader) (int, error) {
	tok, err := nextToken(br)
	if err != nil {
		return 0, errors.Wrap(ErrBadHeader, err.Error())
	}

	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrBadHeader, "expected integer, got %q", tok)
	}

	return v, nil
}
