package transforms

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/samber/lo"

	cv "github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/validators"
)

// Grayscale converts an image to single-channel luminance.
type Grayscale struct{ base }

func NewGrayscale() *Grayscale {
	return &Grayscale{base{
		name:        "grayscale",
		description: "Convert an image to grayscale",
		schema:      validators.Schema{},
	}}
}

func (t *Grayscale) Process(_ context.Context, img image.Image, _ validators.Args) (*Output, error) {
	return imageOutput(cv.Grayscale(img)), nil
}

// FilterChannels zeroes color channels. Indices follow scheme: with "rgb"
// 0 is red, with "bgr" 0 is blue.
type FilterChannels struct{ base }

func NewFilterChannels() *FilterChannels {
	return &FilterChannels{base{
		name:        "filter_channels",
		description: "Remove color channels from an image",
		schema: validators.Schema{
			"channels": validators.NewList(validators.NewNumber().Between(0, 2).Integer()),
			"scheme":   validators.NewOption("rgb", "bgr").WithDefault(0),
		},
	}}
}

func (t *FilterChannels) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	channels := args.Ints("channels")
	if args.String("scheme") == "bgr" {
		channels = lo.Map(channels, func(c int, _ int) int { return 2 - c })
	}
	return imageOutput(cv.FilterChannels(img, channels)), nil
}

// GammaCorrection applies out = 255·(in/255)^(1/gamma) to every channel.
// Any gamma is accepted above zero, but gammas below 0.0001 act as 0.0001.
type GammaCorrection struct{ base }

func NewGammaCorrection() *GammaCorrection {
	return &GammaCorrection{base{
		name:        "gamma_correction",
		description: "Adjust image gamma; values above 1 brighten, below 1 darken",
		schema: validators.Schema{
			"gamma": validators.NewNumber().Min(1e-30).WithDefault(1),
		},
	}}
}

func (t *GammaCorrection) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	return imageOutput(imaging.AdjustGamma(img, args.Float("gamma"))), nil
}

// Negative inverts every color channel.
type Negative struct{ base }

func NewNegative() *Negative {
	return &Negative{base{
		name:        "negative",
		description: "Invert the colors of an image",
		schema:      validators.Schema{},
	}}
}

func (t *Negative) Process(_ context.Context, img image.Image, _ validators.Args) (*Output, error) {
	return imageOutput(imaging.Invert(img)), nil
}

// ConvertColor re-encodes the image in another color space.
type ConvertColor struct{ base }

func NewConvertColor() *ConvertColor {
	return &ConvertColor{base{
		name:        "convert_color",
		description: "Convert an image to another color space (channels packed as 8-bit)",
		schema: validators.Schema{
			"space": validators.NewOption(cv.ColorSpaces...).WithDefault(0),
		},
	}}
}

func (t *ConvertColor) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	out, err := cv.ConvertColor(img, args.String("space"))
	if err != nil {
		return nil, err
	}
	return imageOutput(out), nil
}

// DominantColors reports the most frequent quantized colors.
type DominantColors struct{ base }

func NewDominantColors() *DominantColors {
	return &DominantColors{base{
		name:        "dominant_colors",
		description: "Find the most common colors in an image",
		schema: validators.Schema{
			"count": validators.NewNumber().Min(1).Integer().WithDefault(5),
		},
	}}
}

func (t *DominantColors) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	return dataOutput(cv.DominantColors(img, args.Int("count"))), nil
}
