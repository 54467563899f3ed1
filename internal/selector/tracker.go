package selector

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

type shape int

const (
	shapeRectangle shape = iota
	shapeEllipse
	shapePoints
)

// viewport maps between widget coordinates and image pixels for an image
// drawn with "contain" fill: scaled uniformly and centred.
type viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
	imgW    int
	imgH    int
}

func fit(widgetW, widgetH float64, imgW, imgH int) viewport {
	if imgW <= 0 || imgH <= 0 || widgetW <= 0 || widgetH <= 0 {
		return viewport{scale: 1, imgW: imgW, imgH: imgH}
	}
	scale := math.Min(widgetW/float64(imgW), widgetH/float64(imgH))
	return viewport{
		scale:   scale,
		offsetX: (widgetW - float64(imgW)*scale) / 2,
		offsetY: (widgetH - float64(imgH)*scale) / 2,
		imgW:    imgW,
		imgH:    imgH,
	}
}

// toImage converts a widget position to image coordinates, clamped to the
// image.
func (v viewport) toImage(x, y float64) Point {
	ix := (x - v.offsetX) / v.scale
	iy := (y - v.offsetY) / v.scale
	return Point{
		X: math.Max(0, math.Min(ix, float64(v.imgW))),
		Y: math.Max(0, math.Min(iy, float64(v.imgH))),
	}
}

func (v viewport) toScreen(p Point) (float64, float64) {
	return p.X*v.scale + v.offsetX, p.Y*v.scale + v.offsetY
}

// tracker accumulates pointer events into a selection.
type tracker struct {
	shape    shape
	n        int
	start    Point
	current  Point
	dragging bool
	marked   bool
	points   []Point
}

func newTracker(s shape, n int) *tracker {
	return &tracker{shape: s, n: n}
}

// drag extends the box being drawn; the first call anchors it.
func (t *tracker) drag(p Point) {
	if t.shape == shapePoints {
		return
	}
	if !t.dragging {
		t.start = p
		t.dragging = true
		t.marked = true
	}
	t.current = p
}

func (t *tracker) release() {
	t.dragging = false
}

// tap records a point and reports whether the selection is complete.
func (t *tracker) tap(p Point) bool {
	if t.shape != shapePoints {
		return false
	}
	if len(t.points) < t.n {
		t.points = append(t.points, p)
	}
	return len(t.points) >= t.n
}

func (t *tracker) rect() Rect {
	if !t.marked {
		return Rect{}
	}
	return Rect{
		X:      math.Min(t.start.X, t.current.X),
		Y:      math.Min(t.start.Y, t.current.Y),
		Width:  math.Abs(t.current.X - t.start.X),
		Height: math.Abs(t.current.Y - t.start.Y),
	}
}

func (t *tracker) ellipse() Ellipse {
	r := t.rect()
	return Ellipse{
		Center: Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2},
		Width:  r.Width,
		Height: r.Height,
	}
}

var markColor = color.NRGBA{R: 0, G: 255, B: 255, A: 255}

// render draws the current selection as a transparent w×h overlay.
func (t *tracker) render(v viewport, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(markColor)
	dc.SetLineWidth(2)

	switch t.shape {
	case shapeRectangle:
		if t.marked {
			r := t.rect()
			x, y := v.toScreen(Point{X: r.X, Y: r.Y})
			dc.DrawRectangle(x, y, r.Width*v.scale, r.Height*v.scale)
			dc.Stroke()
		}
	case shapeEllipse:
		if t.marked {
			e := t.ellipse()
			cx, cy := v.toScreen(e.Center)
			dc.DrawEllipse(cx, cy, e.Width*v.scale/2, e.Height*v.scale/2)
			dc.Stroke()
		}
	case shapePoints:
		for _, p := range t.points {
			x, y := v.toScreen(p)
			dc.DrawCircle(x, y, 4)
			dc.Fill()
		}
	}
	return dc.Image()
}
