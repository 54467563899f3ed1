package transforms

import (
	"context"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/easycv/internal/errs"
	cv "github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/validators"
)

// Crop cuts out a box [x1, y1, x2, y2] (end exclusive) or a named region,
// then optionally scales the result.
type Crop struct{ base }

func NewCrop() *Crop {
	return &Crop{base{
		name:        "crop",
		description: "Crop an image to a box [x1, y1, x2, y2] or a named region, optionally scaling the result",
		schema: validators.Schema{
			"method": validators.NewMethod(map[string][]string{
				"box":      {"box"},
				"quadrant": {"region"},
			}).WithDefault("box"),
			"box":    validators.NewList(validators.NewNumber().Min(0).Integer()).Length(4),
			"region": validators.NewOption(cv.Quadrants...),
			"scale":  validators.NewNumber().Min(1e-30).WithDefault(1),
		},
	}}
}

func (t *Crop) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	var rect image.Rectangle
	if args.String("method") == "quadrant" {
		r, err := cv.QuadrantRect(img.Bounds(), args.String("region"))
		if err != nil {
			return nil, &errs.InvalidArgumentError{Transform: t.Name(), Argument: "region", Value: args.String("region"), Reason: err.Error()}
		}
		rect = r
	} else {
		b := args.Ints("box")
		rect = image.Rectangle{Min: image.Pt(b[0], b[1]), Max: image.Pt(b[2], b[3])}
	}

	out, err := cv.Crop(img, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, args.Float("scale"))
	if err != nil {
		arg := "box"
		if args.String("method") == "quadrant" {
			arg = "scale"
		}
		return nil, &errs.InvalidArgumentError{Transform: t.Name(), Argument: arg, Value: args[arg], Reason: err.Error()}
	}
	return imageOutput(out), nil
}

var resampleFilters = map[string]imaging.ResampleFilter{
	"nearest": imaging.NearestNeighbor,
	"linear":  imaging.Linear,
	"cubic":   imaging.CatmullRom,
	"lanczos": imaging.Lanczos,
}

// Resize scales an image. A zero width or height keeps the aspect ratio.
type Resize struct{ base }

func NewResize() *Resize {
	return &Resize{base{
		name:        "resize",
		description: "Resize an image; set width or height to 0 to keep the aspect ratio",
		schema: validators.Schema{
			"width":  validators.NewNumber().Min(0).Integer().WithDefault(0),
			"height": validators.NewNumber().Min(0).Integer().WithDefault(0),
			"filter": validators.NewOption("nearest", "linear", "cubic", "lanczos").WithDefault(3),
		},
	}}
}

func (t *Resize) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	w, h := args.Int("width"), args.Int("height")
	if w == 0 && h == 0 {
		return nil, &errs.InvalidArgumentError{
			Transform: t.Name(),
			Argument:  "width",
			Value:     w,
			Reason:    "width and height cannot both be 0",
		}
	}
	return imageOutput(imaging.Resize(img, w, h, resampleFilters[args.String("filter")])), nil
}

// Rotate turns an image counter-clockwise by angle degrees. The canvas grows
// to fit and uncovered areas are filled with background.
type Rotate struct{ base }

func NewRotate() *Rotate {
	return &Rotate{base{
		name:        "rotate",
		description: "Rotate an image counter-clockwise by an angle in degrees",
		schema: validators.Schema{
			"angle":      validators.NewNumber().WithDefault(0),
			"background": validators.NewType[string]().WithDefault("#000000"),
		},
	}}
}

func (t *Rotate) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	bg, err := cv.ParseHexColor(args.String("background"))
	if err != nil {
		return nil, &errs.InvalidArgumentError{Transform: t.Name(), Argument: "background", Value: args.String("background"), Reason: "must be a hex color like #RRGGBB"}
	}
	return imageOutput(imaging.Rotate(img, args.Float("angle"), bg)), nil
}

// Flip mirrors an image.
type Flip struct{ base }

func NewFlip() *Flip {
	return &Flip{base{
		name:        "flip",
		description: "Mirror an image horizontally or vertically",
		schema: validators.Schema{
			"axis": validators.NewOption("horizontal", "vertical").WithDefault(0),
		},
	}}
}

func (t *Flip) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	if args.String("axis") == "vertical" {
		return imageOutput(imaging.FlipV(img)), nil
	}
	return imageOutput(imaging.FlipH(img)), nil
}
