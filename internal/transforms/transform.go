// Package transforms holds the image transforms and the machinery to run
// them.
//
// A transform declares a name, a description and a validators.Schema of the
// arguments it accepts. Apply resolves caller arguments against that schema,
// filling defaults and rejecting bad values, and only then hands the
// normalized values to Process. Process itself is a thin call into an image
// library.
//
// Outputs come in three shapes. Most transforms return an image. Gradient
// transforms return a float64 Field, together with a normalized 8-bit
// preview so they can still be chained or saved. Measuring transforms
// (sharpness, dominant_colors, select, ocr) return Data and no image.
package transforms

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"

	cv "github.com/ironsheep/easycv/internal/imaging"
	"github.com/ironsheep/easycv/internal/validators"
)

// Transform is a named image operation with a declared argument schema.
type Transform interface {
	Name() string
	Description() string
	Arguments() validators.Schema

	// Process runs the operation. args have already been resolved against
	// Arguments().
	Process(ctx context.Context, img image.Image, args validators.Args) (*Output, error)
}

// Output is the result of a transform.
type Output struct {
	// Image is the resulting image, nil for data-only transforms.
	Image image.Image

	// Field holds float64 results such as gradients. Image then carries a
	// min-max normalized preview of it.
	Field *cv.Field

	// Data holds measured values; it is JSON-serializable.
	Data interface{}
}

func imageOutput(img image.Image) *Output {
	return &Output{Image: img}
}

func fieldOutput(f *cv.Field) *Output {
	return &Output{Image: f.Normalized(), Field: f}
}

func dataOutput(data interface{}) *Output {
	return &Output{Data: data}
}

// base carries the declarative part shared by every transform.
type base struct {
	name        string
	description string
	schema      validators.Schema
}

func (b *base) Name() string                 { return b.name }
func (b *base) Description() string          { return b.description }
func (b *base) Arguments() validators.Schema { return b.schema }

// Apply resolves args against t's schema and runs t on img. The logger is
// taken from ctx.
func Apply(ctx context.Context, t Transform, img image.Image, args validators.Args) (*Output, error) {
	logger := zerolog.Ctx(ctx)

	resolved, err := t.Arguments().Resolve(t.Name(), args)
	if err != nil {
		logger.Debug().Err(err).Str("transform", t.Name()).Msg("argument validation failed")
		return nil, err
	}

	start := time.Now()
	out, err := t.Process(ctx, img, resolved)
	if err != nil {
		logger.Debug().Err(err).Str("transform", t.Name()).Msg("transform failed")
		return nil, err
	}

	logger.Debug().
		Str("transform", t.Name()).
		Interface("args", resolved).
		Dur("duration", time.Since(start)).
		Msg("transform applied")

	return out, nil
}

// Step is one entry of a pipeline.
type Step struct {
	Name string          `json:"name"`
	Args validators.Args `json:"args,omitempty"`
}

// Pipeline applies steps in order, feeding each output image into the next
// step. A step that yields no image ends the pipeline with its output. An
// empty pipeline returns img unchanged.
func Pipeline(ctx context.Context, reg *Registry, img image.Image, steps []Step) (*Output, error) {
	out := imageOutput(img)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t, err := reg.Lookup(step.Name)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		out, err = Apply(ctx, t, out.Image, step.Args)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}

		if out.Image == nil && i < len(steps)-1 {
			zerolog.Ctx(ctx).Debug().
				Str("transform", step.Name).
				Int("skipped", len(steps)-i-1).
				Msg("pipeline ended by data-only step")
			break
		}
	}

	return out, nil
}
