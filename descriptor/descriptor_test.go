package descriptor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	haar "github.com/ajroetker/go-haar"
)

func TestNewBlockBinaryPixelSum_Errors(t *testing.T) {
	tests := []struct {
		name          string
		target, block image.Point
	}{
		{"zero target", image.Pt(0, 4), image.Pt(2, 2)},
		{"negative block", image.Pt(4, 4), image.Pt(-1, 2)},
		{"block too wide", image.Pt(4, 4), image.Pt(8, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBlockBinaryPixelSum(tt.target, tt.block)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestDescribe_SameSize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	// Top-left block: 1 of 4 set. Top-right: all set. Bottom-right: 2 set.
	img.SetGray(0, 0, color.Gray{Y: 9})
	for _, p := range []image.Point{{2, 0}, {3, 0}, {2, 1}, {3, 1}, {2, 3}, {3, 2}} {
		img.SetGray(p.X, p.Y, color.Gray{Y: 200})
	}

	d, err := NewBlockBinaryPixelSum(image.Pt(4, 4), image.Pt(2, 2))
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())

	assert.Equal(t, []float64{0.25, 1, 0, 0.5}, d.Describe(img))
}

func TestDescribe_Resizes(t *testing.T) {
	d, err := NewBlockBinaryPixelSum(image.Pt(8, 8), image.Pt(4, 2))
	require.NoError(t, err)
	require.Equal(t, 8, d.Len())

	white := image.NewRGBA(image.Rect(0, 0, 33, 17))
	for i := range white.Pix {
		white.Pix[i] = 255
	}
	for _, f := range d.Describe(white) {
		assert.Equal(t, 1.0, f)
	}

	black := image.NewGray(image.Rect(0, 0, 20, 40))
	for _, f := range d.Describe(black) {
		assert.Equal(t, 0.0, f)
	}
}

func TestDescribeGrid(t *testing.T) {
	g := haar.FromSlices([][]float32{
		{0.2, 0, 3, 0},
		{0, 0, 0, 0},
	})
	d, err := NewBlockBinaryPixelSum(image.Pt(4, 2), image.Pt(2, 2))
	require.NoError(t, err)

	// 0.2 rounds to zero.
	assert.Equal(t, []float64{0, 0.25}, d.DescribeGrid(g))
	assert.Equal(t, []float64{0, 0}, d.DescribeGrid(nil))
}

func TestDescribe_EmptyImage(t *testing.T) {
	d, err := NewBlockBinaryPixelSum(image.Pt(4, 4), image.Pt(2, 2))
	require.NoError(t, err)

	white := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range white.Pix {
		white.Pix[i] = 255
	}
	assert.Equal(t, []float64{1, 1, 1, 1}, d.Describe(white))

	assert.Equal(t, []float64{0, 0, 0, 0}, d.Describe(image.NewGray(image.Rectangle{})))
	assert.Equal(t, []float64{0, 0, 0, 0}, d.Describe(image.NewRGBA(image.Rect(3, 3, 3, 9))))
}
