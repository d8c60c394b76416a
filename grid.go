package haar

import (
	"image"
	"image/color"
	"math"

	hwyimage "github.com/ajroetker/go-highway/hwy/contrib/image"
)

// Grid is a dense single-channel float32 image. Rows are padded to the SIMD
// vector width; only the first Width() samples of a row are meaningful.
type Grid = hwyimage.Image[float32]

// Number is the set of sample types that convert element-wise to float32.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// NewGrid allocates a zeroed width x height grid.
func NewGrid(width, height int) *Grid {
	return hwyimage.NewImage[float32](width, height)
}

// FromSlices converts a 2D slice to a Grid, converting every sample to
// float32. The width is taken from the first row; shorter rows leave the
// remaining samples at zero.
func FromSlices[T Number](data [][]T) *Grid {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil
	}
	height := len(data)
	width := len(data[0])

	g := NewGrid(width, height)
	for y := range height {
		row := g.Row(y)[:width]
		for x, v := range data[y][:min(width, len(data[y]))] {
			row[x] = float32(v)
		}
	}
	return g
}

// ToSlices copies a Grid into a freshly allocated 2D slice.
func ToSlices(g *Grid) [][]float32 {
	if isEmpty(g) {
		return nil
	}
	width := g.Width()
	height := g.Height()

	data := make([][]float32, height)
	for y := range height {
		data[y] = make([]float32, width)
		copy(data[y], g.Row(y)[:width])
	}
	return data
}

// FromImage converts img to a grid of luma samples in [0, 255].
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	g := NewGrid(b.Dx(), b.Dy())

	if gray, ok := img.(*image.Gray); ok {
		for y := range b.Dy() {
			src := gray.Pix[gray.PixOffset(b.Min.X, b.Min.Y+y):]
			row := g.Row(y)
			for x := range b.Dx() {
				row[x] = float32(src[x])
			}
		}
		return g
	}

	for y := range b.Dy() {
		row := g.Row(y)
		for x := range b.Dx() {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			row[x] = float32(c.Y)
		}
	}
	return g
}

// ToGray rounds and clamps every sample to [0, 255].
func ToGray(g *Grid) *image.Gray {
	if isEmpty(g) {
		return nil
	}
	width := g.Width()
	height := g.Height()

	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := range height {
		dst := out.Pix[y*out.Stride : y*out.Stride+width]
		for x, v := range g.Row(y)[:width] {
			dst[x] = clampSample(v)
		}
	}
	return out
}

func clampSample(v float32) uint8 {
	if math.IsNaN(float64(v)) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Clone returns a deep copy of g.
func Clone(g *Grid) *Grid {
	if isEmpty(g) {
		return nil
	}
	out := NewGrid(g.Width(), g.Height())
	copyGrid(out, g)
	return out
}

// Flatten copies the samples of g into a single row-major slice.
func Flatten(g *Grid) []float32 {
	if isEmpty(g) {
		return nil
	}
	width := g.Width()
	out := make([]float32, 0, width*g.Height())
	for y := range g.Height() {
		out = append(out, g.Row(y)[:width]...)
	}
	return out
}

// Equal reports whether a and b have the same dimensions and samples.
func Equal(a, b *Grid) bool {
	return ApproxEqual(a, b, 0)
}

// ApproxEqual reports whether a and b have the same dimensions and every
// pair of samples differs by at most tol.
func ApproxEqual(a, b *Grid, tol float32) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	width := a.Width()
	for y := range a.Height() {
		rowB := b.Row(y)
		for x, v := range a.Row(y)[:width] {
			if float32(math.Abs(float64(v-rowB[x]))) > tol {
				return false
			}
		}
	}
	return true
}

func isEmpty(g *Grid) bool {
	return g == nil || g.Width() == 0 || g.Height() == 0
}

// sameStorage reports whether a and b are backed by the same samples.
func sameStorage(a, b *Grid) bool {
	if a == b {
		return true
	}
	if isEmpty(a) || isEmpty(b) {
		return false
	}
	return &a.Row(0)[0] == &b.Row(0)[0]
}

// copyGrid copies the overlapping samples of src into dst.
func copyGrid(dst, src *Grid) {
	width := min(dst.Width(), src.Width())
	height := min(dst.Height(), src.Height())
	for y := range height {
		copy(dst.Row(y)[:width], src.Row(y)[:width])
	}
}

// Region is a rectangular view into a Grid. Coordinates are relative to the
// region origin and reads and writes go straight to the backing grid.
type Region struct {
	g *Grid
	r image.Rectangle
}

// NewRegion returns the view of g covered by r, clipped to the grid bounds.
func NewRegion(g *Grid, r image.Rectangle) Region {
	if g == nil {
		return Region{}
	}
	return Region{g: g, r: r.Intersect(image.Rect(0, 0, g.Width(), g.Height()))}
}

// Bounds returns the region rectangle in grid coordinates.
func (r Region) Bounds() image.Rectangle { return r.r }

// Dx returns the region width.
func (r Region) Dx() int { return r.r.Dx() }

// Dy returns the region height.
func (r Region) Dy() int { return r.r.Dy() }

// At returns the sample at column x, row y of the region.
func (r Region) At(x, y int) float32 {
	return r.g.At(r.r.Min.X+x, r.r.Min.Y+y)
}

// Set stores v at column x, row y of the region.
func (r Region) Set(x, y int, v float32) {
	r.g.Set(r.r.Min.X+x, r.r.Min.Y+y, v)
}

// Row returns row y of the region, sharing storage with the grid.
func (r Region) Row(y int) []float32 {
	return r.g.Row(r.r.Min.Y + y)[r.r.Min.X:r.r.Max.X]
}

// CopyFrom copies the overlapping top-left part of src into r. The two
// regions must not overlap in the same grid.
func (r Region) CopyFrom(src Region) {
	height := min(r.Dy(), src.Dy())
	for y := range height {
		copy(r.Row(y), src.Row(y))
	}
}
