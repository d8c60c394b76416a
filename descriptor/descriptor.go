// Package descriptor computes block binary pixel sum features: an image is
// converted to gray, resized to a fixed target size and split into blocks,
// and every block contributes the fraction of its pixels that are non-zero.
package descriptor

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	haar "github.com/ajroetker/go-haar"
)

// ErrInvalidSize is returned for non-positive sizes or a block larger than
// the target.
var ErrInvalidSize = errors.New("descriptor: invalid size")

// BlockBinaryPixelSum describes images by the share of non-zero pixels in
// each block. It reuses internal buffers and is not safe for concurrent use.
type BlockBinaryPixelSum struct {
	target image.Point
	block  image.Point

	gray     *image.Gray
	features []float64
}

// NewBlockBinaryPixelSum returns a descriptor that resizes to target and
// sums over blocks of size block. Trailing pixels that do not fill a whole
// block are ignored.
func NewBlockBinaryPixelSum(target, block image.Point) (*BlockBinaryPixelSum, error) {
	if target.X <= 0 || target.Y <= 0 || block.X <= 0 || block.Y <= 0 {
		return nil, fmt.Errorf("%w: target %v, block %v", ErrInvalidSize, target, block)
	}
	if block.X > target.X || block.Y > target.Y {
		return nil, fmt.Errorf("%w: block %v exceeds target %v", ErrInvalidSize, block, target)
	}
	return &BlockBinaryPixelSum{
		target:   target,
		block:    block,
		gray:     image.NewGray(image.Rectangle{Max: target}),
		features: make([]float64, (target.X/block.X)*(target.Y/block.Y)),
	}, nil
}

// Len returns the number of features Describe produces.
func (d *BlockBinaryPixelSum) Len() int { return len(d.features) }

// Describe returns one feature per block in row-major block order. An
// image with empty bounds gives all-zero features. The returned slice is
// overwritten by the next call.
func (d *BlockBinaryPixelSum) Describe(img image.Image) []float64 {
	sr := img.Bounds()
	if sr.Empty() {
		clear(d.features)
		return d.features
	}
	dr := d.gray.Bounds()
	if sr.Size() == d.target {
		draw.Draw(d.gray, dr, img, sr.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(d.gray, dr, img, sr, draw.Src, nil)
	}

	bx, by := d.block.X, d.block.Y
	cols := d.target.X / bx
	area := float64(bx * by)
	for i := range d.features {
		x0 := (i % cols) * bx
		y0 := (i / cols) * by
		nonZero := 0
		for y := y0; y < y0+by; y++ {
			row := d.gray.Pix[y*d.gray.Stride+x0 : y*d.gray.Stride+x0+bx]
			for _, p := range row {
				if p != 0 {
					nonZero++
				}
			}
		}
		d.features[i] = float64(nonZero) / area
	}
	return d.features
}

// DescribeGrid describes a sample grid, rounding and clamping its samples
// to 8 bits first.
func (d *BlockBinaryPixelSum) DescribeGrid(g *haar.Grid) []float64 {
	img := haar.ToGray(g)
	if img == nil {
		clear(d.features)
		return d.features
	}
	return d.Describe(img)
}
