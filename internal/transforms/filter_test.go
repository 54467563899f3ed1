package transforms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/easycv/internal/errs"
	"github.com/ironsheep/easycv/internal/validators"
)

func TestBlur_Methods(t *testing.T) {
	img := newSquareImage(32, 24)

	for _, method := range []string{"uniform", "gaussian", "median", "bilateral"} {
		t.Run(method, func(t *testing.T) {
			out, err := Apply(context.Background(), NewBlur(), img, validators.Args{"method": method, "size": 3})
			require.NoError(t, err)
			assert.Equal(t, img.Bounds().Size(), out.Image.Bounds().Size())
		})
	}
}

func TestBlur_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args validators.Args
		arg  string
	}{
		{"even size", validators.Args{"size": 4}, "size"},
		{"negative sigma", validators.Args{"sigma": -1}, "sigma"},
		{"unknown method", validators.Args{"method": "motion"}, "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(context.Background(), NewBlur(), newSquareImage(8, 8), tt.args)
			var argErr *errs.InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.arg, argErr.Argument)
		})
	}
}

func TestSharpen(t *testing.T) {
	img := newSquareImage(16, 16)
	for _, method := range []string{"unsharp", "kernel"} {
		out, err := Apply(context.Background(), NewSharpen(), img, validators.Args{"method": method})
		require.NoError(t, err, method)
		assert.Equal(t, img.Bounds().Size(), out.Image.Bounds().Size())
	}

	_, err := Apply(context.Background(), NewSharpen(), img, validators.Args{"sigma": 0})
	assert.Error(t, err)
}

func TestSharpness_Laplace(t *testing.T) {
	flat, err := Apply(context.Background(), NewSharpness(), newGrayImage(32, 32, 128), nil)
	require.NoError(t, err)
	require.Nil(t, flat.Image)

	res := flat.Data.(*SharpnessResult)
	assert.Equal(t, "laplace", res.Method)
	assert.Zero(t, res.Value)

	edged, err := Apply(context.Background(), NewSharpness(), newSquareImage(32, 32), nil)
	require.NoError(t, err)
	assert.Greater(t, edged.Data.(*SharpnessResult).Value, 0.0)
}

func TestSharpness_FFT(t *testing.T) {
	sharp := newSquareImage(64, 64)
	blurred, err := Apply(context.Background(), NewBlur(), sharp, validators.Args{"size": 9, "sigma": 3})
	require.NoError(t, err)

	args := validators.Args{"method": "fft", "size": 8}

	sharpOut, err := Apply(context.Background(), NewSharpness(), sharp, args)
	require.NoError(t, err)
	blurOut, err := Apply(context.Background(), NewSharpness(), blurred.Image, args)
	require.NoError(t, err)

	assert.Equal(t, "fft", sharpOut.Data.(*SharpnessResult).Method)
	assert.Greater(t, sharpOut.Data.(*SharpnessResult).Value, blurOut.Data.(*SharpnessResult).Value)
}

func TestZeroBand(t *testing.T) {
	spectrum := make([][]complex128, 8)
	for y := range spectrum {
		spectrum[y] = make([]complex128, 8)
		for x := range spectrum[y] {
			spectrum[y][x] = 1
		}
	}

	zeroBand(spectrum, 1, 8, 8)

	zeroed := map[[2]int]bool{{0, 0}: true, {0, 7}: true, {7, 0}: true, {7, 7}: true}
	for y := range spectrum {
		for x := range spectrum[y] {
			want := complex128(1)
			if zeroed[[2]int{y, x}] {
				want = 0
			}
			assert.Equal(t, want, spectrum[y][x], "spectrum[%d][%d]", y, x)
		}
	}
}
