//go:build gui

package selector

import (
	"context"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const (
	windowTitle = "Selector"
	maxWindowW  = 1200
	maxWindowH  = 900
)

// New returns a selector that opens a fyne window for each request.
//
// Drag to draw a rectangle or ellipse, click to place points. Press Q or
// Escape, or close the window, to finish. Point selection also finishes on
// its own once n points are placed. fyne must own the main goroutine, so
// call it from there.
func New(logger zerolog.Logger) Selector {
	return &window{logger: logger}
}

type window struct {
	logger zerolog.Logger
}

func (w *window) Rectangle(ctx context.Context, img image.Image) (Rect, error) {
	t := newTracker(shapeRectangle, 0)
	if err := w.run(ctx, img, t); err != nil {
		return Rect{}, err
	}
	return t.rect(), nil
}

func (w *window) Ellipse(ctx context.Context, img image.Image) (Ellipse, error) {
	t := newTracker(shapeEllipse, 0)
	if err := w.run(ctx, img, t); err != nil {
		return Ellipse{}, err
	}
	return t.ellipse(), nil
}

func (w *window) Points(ctx context.Context, img image.Image, n int) ([]Point, error) {
	t := newTracker(shapePoints, n)
	if n == 0 {
		return nil, nil
	}
	if err := w.run(ctx, img, t); err != nil {
		return nil, err
	}
	return t.points, nil
}

// run shows img and blocks until the window closes.
func (w *window) run(ctx context.Context, img image.Image, t *tracker) error {
	a := app.New()
	win := a.NewWindow(windowTitle)
	win.SetMaster()

	area := newArea(img, t, win.Close)
	win.SetContent(area)
	win.Resize(initialSize(img.Bounds()))

	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyQ, fyne.KeyEscape:
			win.Close()
		}
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(win.Close)
		case <-done:
		}
	}()

	w.logger.Debug().
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("opening selector window")

	win.ShowAndRun()
	return ctx.Err()
}

func initialSize(b image.Rectangle) fyne.Size {
	v := fit(maxWindowW, maxWindowH, b.Dx(), b.Dy())
	scale := v.scale
	if scale > 1 {
		scale = 1
	}
	return fyne.NewSize(float32(float64(b.Dx())*scale), float32(float64(b.Dy())*scale))
}

// area displays the image and feeds pointer events to a tracker.
type area struct {
	widget.BaseWidget

	source  image.Image
	tracker *tracker
	onDone  func()

	image   *canvas.Image
	overlay *canvas.Raster
}

func newArea(img image.Image, t *tracker, onDone func()) *area {
	a := &area{source: img, tracker: t, onDone: onDone}
	a.ExtendBaseWidget(a)
	return a
}

func (a *area) CreateRenderer() fyne.WidgetRenderer {
	a.image = canvas.NewImageFromImage(a.source)
	a.image.FillMode = canvas.ImageFillContain

	a.overlay = canvas.NewRaster(func(w, h int) image.Image {
		return a.tracker.render(a.viewportFor(float64(w), float64(h)), w, h)
	})

	return &areaRenderer{image: a.image, overlay: a.overlay}
}

func (a *area) viewportFor(w, h float64) viewport {
	b := a.source.Bounds()
	return fit(w, h, b.Dx(), b.Dy())
}

func (a *area) toImage(pos fyne.Position) Point {
	size := a.Size()
	return a.viewportFor(float64(size.Width), float64(size.Height)).toImage(float64(pos.X), float64(pos.Y))
}

func (a *area) Tapped(ev *fyne.PointEvent) {
	if a.tracker.tap(a.toImage(ev.Position)) {
		a.onDone()
		return
	}
	a.overlay.Refresh()
}

func (a *area) Dragged(ev *fyne.DragEvent) {
	if !a.tracker.dragging {
		// The first event already moved by Dragged; anchor at the press.
		a.tracker.drag(a.toImage(ev.Position.Subtract(ev.Dragged)))
	}
	a.tracker.drag(a.toImage(ev.Position))
	a.overlay.Refresh()
}

func (a *area) DragEnd() {
	a.tracker.release()
	a.overlay.Refresh()
}

type areaRenderer struct {
	image   *canvas.Image
	overlay *canvas.Raster
}

func (r *areaRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
	r.overlay.Resize(size)
}

func (r *areaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 150)
}

func (r *areaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image, r.overlay}
}

func (r *areaRenderer) Refresh() {
	r.image.Refresh()
	r.overlay.Refresh()
}

func (r *areaRenderer) Destroy() {}
