package transforms

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/easycv/internal/errs"
	cv "github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/validators"
)

func kernelSize() *validators.Number {
	return validators.NewNumber().Between(1, 31).Odd().WithDefault(5)
}

// Gradient computes the first derivative along one axis with a Sobel
// operator, or the Laplacian, of the grayscale image.
type Gradient struct{ base }

func NewGradient() *Gradient {
	return &Gradient{base{
		name:        "gradient",
		description: "Compute the Sobel gradient along an axis or the Laplacian of an image",
		schema: validators.Schema{
			"axis":   validators.NewOption("x", "y").WithDefault(0),
			"method": validators.NewOption("sobel", "laplace").WithDefault(0),
			"size":   kernelSize(),
		},
	}}
}

func (t *Gradient) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	lum := cv.Luminance(cv.Grayscale(img))

	if args.String("method") == "laplace" {
		return fieldOutput(cv.Laplacian(lum)), nil
	}
	if args.String("axis") == "y" {
		return fieldOutput(cv.Sobel(lum, 0, 1, args.Int("size"))), nil
	}
	return fieldOutput(cv.Sobel(lum, 1, 0, args.Int("size"))), nil
}

// GradientMagnitude computes sqrt(gx² + gy²) from Sobel derivatives.
type GradientMagnitude struct{ base }

func NewGradientMagnitude() *GradientMagnitude {
	return &GradientMagnitude{base{
		name:        "gradient_magnitude",
		description: "Compute the gradient magnitude of an image",
		schema: validators.Schema{
			"size": kernelSize(),
		},
	}}
}

func (t *GradientMagnitude) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	gx, gy := sobelPair(img, args.Int("size"))
	return fieldOutput(gx.Combine(gy, math.Hypot)), nil
}

// GradientAngle computes atan2(gx, gy) from Sobel derivatives, in radians.
// The x derivative is the first argument.
type GradientAngle struct{ base }

func NewGradientAngle() *GradientAngle {
	return &GradientAngle{base{
		name:        "gradient_angle",
		description: "Compute the gradient angle of an image, atan2(gx, gy) in radians",
		schema: validators.Schema{
			"size": kernelSize(),
		},
	}}
}

func (t *GradientAngle) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	gx, gy := sobelPair(img, args.Int("size"))
	return fieldOutput(gx.Combine(gy, math.Atan2)), nil
}

func sobelPair(img image.Image, size int) (*cv.Field, *cv.Field) {
	lum := cv.Luminance(cv.Grayscale(img))
	return cv.Sobel(lum, 1, 0, size), cv.Sobel(lum, 0, 1, size)
}

// Canny detects edges with hysteresis thresholds low and high.
type Canny struct{ base }

func NewCanny() *Canny {
	return &Canny{base{
		name:        "canny",
		description: "Detect edges with the Canny algorithm",
		schema: validators.Schema{
			"low":  validators.NewNumber().Between(1, 255).Integer().WithDefault(100),
			"high": validators.NewNumber().Between(1, 255).Integer().WithDefault(200),
		},
	}}
}

func (t *Canny) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	low, high := args.Int("low"), args.Int("high")
	if low > high {
		return nil, &errs.InvalidArgumentError{
			Transform: t.Name(),
			Argument:  "low",
			Value:     low,
			Reason:    "must be less than or equal to high",
		}
	}
	edges, err := cv.Canny(img, float64(low), float64(high))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name(), err)
	}
	return imageOutput(edges), nil
}
