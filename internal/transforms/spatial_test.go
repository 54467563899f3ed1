package transforms

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/easycv/internal/errs"
	"github.com/ironsheep/easycv/internal/validators"
)

func TestCrop_Transform(t *testing.T) {
	img := newSquareImage(100, 80)

	tests := []struct {
		name string
		args validators.Args
		want image.Point
	}{
		{"box", validators.Args{"box": []int{10, 20, 60, 50}}, image.Pt(50, 30)},
		{"box scaled", validators.Args{"box": []int{0, 0, 50, 40}, "scale": 0.5}, image.Pt(25, 20)},
		{"quadrant", validators.Args{"method": "quadrant", "region": "top-left"}, image.Pt(50, 40)},
		{"center", validators.Args{"method": "quadrant", "region": "center"}, image.Pt(50, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Apply(context.Background(), NewCrop(), img, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Image.Bounds().Size())
		})
	}
}

func TestCrop_Errors(t *testing.T) {
	img := newSquareImage(100, 80)

	_, err := Apply(context.Background(), NewCrop(), img, nil)
	var missing *errs.ArgumentNotProvidedError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "box", missing.Argument)
	assert.Equal(t, "box", missing.Method)

	_, err = Apply(context.Background(), NewCrop(), img, validators.Args{"method": "quadrant"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "region", missing.Argument)

	_, err = Apply(context.Background(), NewCrop(), img, validators.Args{"box": []int{0, 0, 200, 50}})
	var argErr *errs.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "box", argErr.Argument)

	_, err = Apply(context.Background(), NewCrop(), img, validators.Args{"box": []int{0, 0, 10}})
	require.ErrorAs(t, err, &argErr)
}

func TestResize_Transform(t *testing.T) {
	img := newSquareImage(40, 20)

	out, err := Apply(context.Background(), NewResize(), img, validators.Args{"height": 10, "filter": "nearest"})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(20, 10), out.Image.Bounds().Size())

	out, err = Apply(context.Background(), NewResize(), img, validators.Args{"width": 7, "height": 9})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(7, 9), out.Image.Bounds().Size())

	_, err = Apply(context.Background(), NewResize(), img, nil)
	var argErr *errs.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "resize", argErr.Transform)
}

func TestRotate_Transform(t *testing.T) {
	img := newTestImage(40, 20, color.White)

	out, err := Apply(context.Background(), NewRotate(), img, validators.Args{"angle": 90})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(20, 40), out.Image.Bounds().Size())

	_, err = Apply(context.Background(), NewRotate(), img, validators.Args{"background": "blue"})
	var argErr *errs.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "background", argErr.Argument)
}

func TestFlip_Transform(t *testing.T) {
	img := newTestImage(4, 2, color.White)
	img.Set(0, 0, color.Black)

	h, err := Apply(context.Background(), NewFlip(), img, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), rgbaAt(h.Image, 3, 0).R)

	v, err := Apply(context.Background(), NewFlip(), img, validators.Args{"axis": "vertical"})
	require.NoError(t, err)
	assert.Equal(t, uint8(0), rgbaAt(v.Image, 0, 1).R)
	assert.Equal(t, uint8(255), rgbaAt(v.Image, 0, 0).R)
}
