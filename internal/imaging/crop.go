package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Quadrants lists the named regions accepted by QuadrantRect.
var Quadrants = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// Crop extracts the rectangle (x1,y1)-(x2,y2) from img, end exclusive, and
// optionally scales it with a Lanczos filter.
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64) (image.Image, error) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g collapses the %dx%d region", scale, cropped.Bounds().Dx(), cropped.Bounds().Dy())
		}
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	return cropped, nil
}

// halves places each named region on a 2x2 grid: {x1, y1, x2, y2} where 0 is
// the left/top edge, 1 the midline and 2 the right/bottom edge.
var halves = map[string][4]int{
	"top-left":     {0, 0, 1, 1},
	"top-right":    {1, 0, 2, 1},
	"bottom-left":  {0, 1, 1, 2},
	"bottom-right": {1, 1, 2, 2},
	"top-half":     {0, 0, 2, 1},
	"bottom-half":  {0, 1, 2, 2},
	"left-half":    {0, 0, 1, 2},
	"right-half":   {1, 0, 2, 2},
}

// QuadrantRect returns the rectangle of a named region of bounds.
// "center" is the middle 50% of the image.
func QuadrantRect(bounds image.Rectangle, region string) (image.Rectangle, error) {
	w, h := bounds.Dx(), bounds.Dy()

	var r image.Rectangle
	if region == "center" {
		r = image.Rect(w/4, h/4, w-w/4, h-h/4)
	} else {
		g, ok := halves[region]
		if !ok {
			return image.Rectangle{}, fmt.Errorf("unknown region: %s", region)
		}
		r = image.Rect(w*g[0]/2, h*g[1]/2, w*g[2]/2, h*g[3]/2)
	}

	return r.Add(bounds.Min), nil
}
