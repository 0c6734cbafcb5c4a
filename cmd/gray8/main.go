// Command gray8 converts images to and from binary PNM and applies the
// grayscale processing stages of the gray8 library.
package main

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	"golang.org/x/term"

	"github.com/quadtag/gray8"
	"github.com/quadtag/gray8/utils"
)

const helpBanner = `
┌─┐┬─┐┌─┐┬ ┬┌─┐
│ ┬├┬┘├─┤└┬┘├─┤
└─┘┴└─┴ ┴ ┴ └─┘

Grayscale raster-image processing tool.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var version = "dev"

func main() {
	log.SetFlags(0)
	os.Exit(run())
}

func run() int {
	var (
		source      string
		destination string
		blurSigma   float64
		kernelSize  int
		decimate    float64
		rotate      float64
		pad         int
		darken      bool
		alignment   int
		showVersion bool
	)

	pflag.StringVarP(&source, "in", "i", pipeName, "Source image, '-' for stdin (PNM)")
	pflag.StringVarP(&destination, "out", "o", pipeName, "Destination image, '-' for stdout (PGM)")
	pflag.Float64Var(&blurSigma, "blur", 0, "Gaussian blur sigma, 0 disables")
	pflag.IntVar(&kernelSize, "ksize", 0, "Gaussian kernel size (odd), 0 derives it from sigma")
	pflag.Float64Var(&decimate, "decimate", 0, "Decimation factor (1.5 or an integer >= 2)")
	pflag.Float64Var(&rotate, "rotate", 0, "Rotation angle in degrees")
	pflag.IntVar(&pad, "pad", 0, "Padding intensity for rotated corners (0-255)")
	pflag.BoolVar(&darken, "darken", false, "Halve every pixel intensity")
	pflag.IntVar(&alignment, "align", gray8.DefaultAlignment, "Row stride alignment of decoded images")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, version)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if showVersion {
		fmt.Println(version)
		return 0
	}

	proc := &gray8.Processor{
		BlurSigma:      blurSigma,
		KernelSize:     kernelSize,
		DecimateFactor: decimate,
		RotateAngle:    rotate * math.Pi / 180,
		RotatePad:      uint8(utils.Clamp(pad, 0, 255)),
		Darken:         darken,
	}

	var spinner *utils.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) && destination != pipeName {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ GRAY8", utils.StatusMessage),
			utils.DecorateText("is processing the image...", utils.DefaultMessage))
		spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)
		spinner.Start()
	}

	start := time.Now()
	err := process(proc, source, destination, alignment)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		log.Printf("%s %s",
			utils.DecorateText("Error processing the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage))
		return 1
	}

	if destination != pipeName {
		log.Printf("%s %s",
			utils.DecorateText("✔ Done in:", utils.SuccessMessage),
			utils.DecorateText(utils.FormatTime(time.Since(start)), utils.DefaultMessage))
	}

	return 0
}

// process loads the source image, runs the processor stages over it and
// writes the result in the format implied by the destination extension.
func process(proc *gray8.Processor, source, destination string, alignment int) error {
	im, err := load(source, alignment)
	if err != nil {
		return err
	}

	out, err := proc.Apply(im)
	if err != nil {
		return err
	}

	return save(out, destination)
}

// load reads a binary PNM directly; any other format goes through the
// stdlib decoders and the grayscale conversion.
func load(source string, alignment int) (*gray8.Image, error) {
	if source == pipeName {
		return gray8.DecodePNMAlignment(os.Stdin, alignment)
	}

	switch ext(source) {
	case ".pnm", ".pgm", ".ppm", ".pbm":
		return gray8.LoadPNMAlignment(source, alignment)
	default:
		img, err := imaging.Open(source)
		if err != nil {
			return nil, err
		}
		return gray8.FromImage(img), nil
	}
}

func save(im *gray8.Image, destination string) error {
	if destination == pipeName {
		return im.EncodePGM(os.Stdout)
	}

	switch e := ext(destination); e {
	case ".pnm", ".pgm":
		return im.SavePGM(destination)
	case ".png", ".jpg", ".jpeg", ".bmp":
		f, err := os.Create(destination)
		if err != nil {
			return err
		}
		defer f.Close()

		switch e {
		case ".png":
			return png.Encode(f, im.ToGray())
		case ".jpg", ".jpeg":
			return jpeg.Encode(f, im.ToGray(), &jpeg.Options{Quality: 100})
		default:
			return bmp.Encode(f, im.ToGray())
		}
	default:
		return fmt.Errorf("unsupported output format %q", e)
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
