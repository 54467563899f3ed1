package transforms

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/samber/lo"

	"github.com/ironsheep/easycv/internal/errs"
	"github.com/ironsheep/easycv/internal/selector"
	"github.com/ironsheep/easycv/internal/validators"
)

// EllipseSelection is the select result for the ellipse method.
type EllipseSelection struct {
	Center [2]int `json:"center"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Select asks the user to mark a region of the image. All coordinates in the
// result are rounded to whole pixels:
//
//	rectangle  [[x1, y1], [x2, y2]]
//	ellipse    {"center": [cx, cy], "width": w, "height": h}
//	point      [[x, y], ...] with exactly n points
type Select struct {
	base
	sel selector.Selector
}

func NewSelect(sel selector.Selector) *Select {
	return &Select{
		base: base{
			name:        "select",
			description: "Interactively select a rectangle, an ellipse or n points on an image",
			schema: validators.Schema{
				"method": validators.NewMethod(map[string][]string{
					"rectangle": {},
					"ellipse":   {},
					"point":     {"n"},
				}).WithDefault("rectangle"),
				"n": validators.NewNumber().Min(0).Integer().WithDefault(2),
			},
		},
		sel: sel,
	}
}

func (t *Select) Process(ctx context.Context, img image.Image, args validators.Args) (*Output, error) {
	switch args.String("method") {
	case "ellipse":
		e, err := t.sel.Ellipse(ctx, img)
		if err != nil {
			return nil, err
		}
		if round(e.Width) == 0 || round(e.Height) == 0 {
			return nil, &errs.InvalidSelectionError{Reason: "must select an ellipse"}
		}
		return dataOutput(EllipseSelection{
			Center: roundPoint(e.Center),
			Width:  round(e.Width),
			Height: round(e.Height),
		}), nil

	case "point":
		n := args.Int("n")
		pts, err := t.sel.Points(ctx, img, n)
		if err != nil {
			return nil, err
		}
		if len(pts) != n {
			return nil, &errs.InvalidSelectionError{Reason: fmt.Sprintf("must select %d points", n)}
		}
		return dataOutput(lo.Map(pts, func(p selector.Point, _ int) [2]int {
			return roundPoint(p)
		})), nil

	default:
		r, err := t.sel.Rectangle(ctx, img)
		if err != nil {
			return nil, err
		}
		x, y := round(r.X), round(r.Y)
		w, h := round(r.Width), round(r.Height)
		if w == 0 || h == 0 {
			return nil, &errs.InvalidSelectionError{Reason: "must select a rectangle"}
		}
		return dataOutput([][2]int{{x, y}, {x + w, y + h}}), nil
	}
}

// round rounds half to even.
func round(v float64) int {
	return int(math.RoundToEven(v))
}

func roundPoint(p selector.Point) [2]int {
	return [2]int{round(p.X), round(p.Y)}
}
