package transforms

import (
	"context"
	"fmt"
	"image"
	"math"
	"math/cmplx"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/mjibson/go-dsp/fft"

	cv "github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/validators"
)

// Blur smooths an image with a uniform, gaussian, median or bilateral
// kernel.
type Blur struct{ base }

func NewBlur() *Blur {
	return &Blur{base{
		name:        "blur",
		description: "Blur an image with a uniform, gaussian, median or bilateral filter",
		schema: validators.Schema{
			"method":      validators.NewOption("uniform", "gaussian", "median", "bilateral").WithDefault(1),
			"size":        validators.NewNumber().Min(1).Odd().WithDefault(5),
			"sigma":       validators.NewNumber().Min(0).WithDefault(0),
			"sigma_color": validators.NewNumber().Min(0).WithDefault(75),
			"sigma_space": validators.NewNumber().Min(0).WithDefault(75),
		},
	}}
}

func (t *Blur) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	size := args.Int("size")

	var (
		out image.Image
		err error
	)
	switch args.String("method") {
	case "uniform":
		out, err = cv.BoxBlur(img, size)
	case "median":
		out, err = cv.MedianBlur(img, size)
	case "bilateral":
		out, err = cv.BilateralFilter(img, size, args.Float("sigma_color"), args.Float("sigma_space"))
	default:
		out, err = cv.GaussianBlur(img, size, args.Float("sigma"))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name(), err)
	}
	return imageOutput(out), nil
}

// Sharpen enhances edges with an unsharp mask or a fixed 3×3 kernel.
type Sharpen struct{ base }

func NewSharpen() *Sharpen {
	return &Sharpen{base{
		name:        "sharpen",
		description: "Sharpen an image with an unsharp mask or a 3x3 sharpening kernel",
		schema: validators.Schema{
			"method": validators.NewOption("unsharp", "kernel").WithDefault(0),
			"sigma":  validators.NewNumber().Min(1e-30).WithDefault(1),
		},
	}}
}

func (t *Sharpen) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	if args.String("method") == "kernel" {
		return imageOutput(effect.Sharpen(img)), nil
	}
	return imageOutput(imaging.Sharpen(img, args.Float("sigma"))), nil
}

// SharpnessResult reports how sharp an image is. Higher is sharper.
type SharpnessResult struct {
	Method string  `json:"method"`
	Value  float64 `json:"value"`
}

// Sharpness measures focus. "laplace" is the variance of the Laplacian of
// the luminance. "fft" removes the lowest frequencies (a square of half-size
// size around DC) and returns the mean log magnitude, in dB, of what is
// left.
type Sharpness struct{ base }

func NewSharpness() *Sharpness {
	return &Sharpness{base{
		name:        "sharpness",
		description: "Measure image sharpness by Laplacian variance or FFT high-frequency content",
		schema: validators.Schema{
			"method": validators.NewMethod(map[string][]string{
				"laplace": {},
				"fft":     {"size"},
			}).WithDefault("laplace"),
			"size": validators.NewNumber().Min(1).Integer().WithDefault(60),
		},
	}}
}

func (t *Sharpness) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	lum := cv.Luminance(img)
	method := args.String("method")

	var value float64
	if method == "fft" {
		value = fftSharpness(lum, args.Int("size"))
	} else {
		value = cv.Laplacian(lum).Stats().Variance
	}

	return dataOutput(&SharpnessResult{Method: method, Value: value}), nil
}

// magnitudeFloor keeps log() finite where the high-pass removed everything.
const magnitudeFloor = 1e-10

func fftSharpness(lum *cv.Field, size int) float64 {
	rows := make([][]float64, lum.Height)
	for y := range rows {
		rows[y] = lum.Data[y*lum.Width : (y+1)*lum.Width]
	}

	spectrum := fft.FFT2Real(rows)

	// Zero a (2*size)² block around DC in the centred spectrum.
	zeroBand(spectrum, size, lum.Height, lum.Width)

	recon := fft.IFFT2(spectrum)

	var sum float64
	for _, row := range recon {
		for _, v := range row {
			sum += 20 * math.Log(math.Max(cmplx.Abs(v), magnitudeFloor))
		}
	}
	return sum / float64(lum.Width*lum.Height)
}

// zeroBand clears frequencies within size of DC along each axis, the same
// block a shifted spectrum would have cleared at its centre.
func zeroBand(spectrum [][]complex128, size, h, w int) {
	cy, cx := h/2, w/2
	for sy := max(cy-size, 0); sy < min(cy+size, h); sy++ {
		y := ((sy-cy)%h + h) % h
		for sx := max(cx-size, 0); sx < min(cx+size, w); sx++ {
			x := ((sx-cx)%w + w) % w
			spectrum[y][x] = 0
		}
	}
}
