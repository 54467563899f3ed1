package transforms

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/ironsheep/easycv/internal/errs"
	cv "github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/validators"
)

var (
	labelColor   = color.RGBA{255, 255, 255, 255}
	labelBgColor = color.RGBA{0, 0, 0, 180}
)

// Draw renders shapes, text or a coordinate grid onto a copy of the image.
//
// Shape coordinates are in pixels:
//
//	rectangle  [x, y, width, height]
//	ellipse    [cx, cy, width, height]
//	line       [x1, y1, x2, y2]
//	polygon    [[x, y], ...] (at least 3 points, closed)
//	points     [[x, y], ...] (dots of radius thickness)
//	text       text at org [x, y], the left end of the baseline
//	grid       lines every spacing pixels, labelled "x,y" at intersections
type Draw struct{ base }

func NewDraw() *Draw {
	point := validators.NewList(validators.NewNumber()).Length(2)
	return &Draw{base{
		name:        "draw",
		description: "Draw a rectangle, ellipse, line, polygon, points, text or a coordinate grid on an image",
		schema: validators.Schema{
			"method": validators.NewMethod(map[string][]string{
				"rectangle": {"rectangle"},
				"ellipse":   {"ellipse"},
				"line":      {"line"},
				"polygon":   {"polygon"},
				"points":    {"points"},
				"text":      {"text", "org"},
				"grid":      {"spacing"},
			}).WithDefault("rectangle"),
			"rectangle": validators.NewList(validators.NewNumber()).Length(4),
			"ellipse":   validators.NewList(validators.NewNumber()).Length(4),
			"line":      validators.NewList(validators.NewNumber()).Length(4),
			"polygon":   validators.NewList(point).MinLength(3),
			"points":    validators.NewList(point).MinLength(1),
			"text":      validators.NewType[string](),
			"org":       point,
			"spacing":   validators.NewNumber().Min(2).Integer(),
			"labels":    validators.NewType[bool]().WithDefault(true),
			"color":     validators.NewType[string]().WithDefault("#FF0000"),
			"thickness": validators.NewNumber().Min(1).Integer().WithDefault(2),
			"filled":    validators.NewType[bool]().WithDefault(false),
		},
	}}
}

func (t *Draw) Process(_ context.Context, img image.Image, args validators.Args) (*Output, error) {
	c, err := cv.ParseHexColor(args.String("color"))
	if err != nil {
		return nil, &errs.InvalidArgumentError{Transform: t.Name(), Argument: "color", Value: args.String("color"), Reason: "must be a hex color like #RRGGBB"}
	}

	dc := gg.NewContextForImage(imaging.Clone(img))
	dc.SetColor(c)
	dc.SetLineWidth(args.Float("thickness"))

	filled := args.Bool("filled")
	finish := func() {
		if filled {
			dc.Fill()
		} else {
			dc.Stroke()
		}
	}

	switch method := args.String("method"); method {
	case "rectangle":
		r := args.Floats("rectangle")
		dc.DrawRectangle(r[0], r[1], r[2], r[3])
		finish()
	case "ellipse":
		e := args.Floats("ellipse")
		dc.DrawEllipse(e[0], e[1], e[2]/2, e[3]/2)
		finish()
	case "line":
		l := args.Floats("line")
		dc.DrawLine(l[0], l[1], l[2], l[3])
		dc.Stroke()
	case "polygon":
		pts := args.Points("polygon")
		dc.MoveTo(pts[0][0], pts[0][1])
		for _, p := range pts[1:] {
			dc.LineTo(p[0], p[1])
		}
		dc.ClosePath()
		finish()
	case "points":
		for _, p := range args.Points("points") {
			dc.DrawCircle(p[0], p[1], args.Float("thickness"))
			dc.Fill()
		}
	case "text":
		org := args.Floats("org")
		dc.DrawString(args.String("text"), org[0], org[1])
	case "grid":
		drawGrid(dc, args.Int("spacing"), args.Bool("labels"))
	default:
		return nil, fmt.Errorf("draw: unhandled method %q", method)
	}

	return imageOutput(dc.Image()), nil
}

// drawGrid strokes vertical and horizontal lines every spacing pixels with
// the current color and line width, then labels each intersection with its
// coordinates.
func drawGrid(dc *gg.Context, spacing int, labels bool) {
	w, h := dc.Width(), dc.Height()

	for x := spacing; x < w; x += spacing {
		dc.DrawLine(float64(x), 0, float64(x), float64(h))
	}
	for y := spacing; y < h; y += spacing {
		dc.DrawLine(0, float64(y), float64(w), float64(y))
	}
	dc.Stroke()

	if !labels {
		return
	}

	for y := spacing; y < h; y += spacing {
		for x := spacing; x < w; x += spacing {
			label := fmt.Sprintf("%d,%d", x, y)
			lw, lh := dc.MeasureString(label)

			dc.SetColor(labelBgColor)
			dc.DrawRectangle(float64(x+2), float64(y+2), lw+2, lh+2)
			dc.Fill()

			dc.SetColor(labelColor)
			dc.DrawStringAnchored(label, float64(x+3), float64(y+3), 0, 1)
		}
	}
}
