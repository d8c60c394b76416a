package haar

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// DefaultLevels is the decomposition depth Denoise uses when none is given.
const DefaultLevels = 3

// DenoiseOptions controls Denoise.
type DenoiseOptions struct {
	// Levels is the decomposition depth. 0 means min(DefaultLevels, MaxLevels).
	Levels int

	// Shrink is the policy applied to detail coefficients.
	Shrink Shrink

	// Threshold is the shrinkage threshold. Ignored when AutoThreshold is set.
	Threshold float32

	// AutoThreshold derives the threshold from the estimated noise level:
	// UniversalThreshold(EstimateNoise(img), width*height).
	AutoThreshold bool
}

// DefaultDenoiseOptions are used when Denoise is given nil options.
var DefaultDenoiseOptions = DenoiseOptions{
	Shrink:        ShrinkSoft,
	AutoThreshold: true,
}

// Denoise decomposes img, shrinks its detail coefficients and reconstructs
// it into a new grid. img is not modified.
func Denoise(img *Grid, opts *DenoiseOptions) (*Grid, error) {
	if opts == nil {
		opts = &DefaultDenoiseOptions
	}
	if isEmpty(img) {
		return nil, ErrEmptyGrid
	}

	levels := opts.Levels
	if levels == 0 {
		levels = min(DefaultLevels, MaxLevels(img.Width(), img.Height()))
	}

	t := opts.Threshold
	if opts.AutoThreshold {
		t = UniversalThreshold(EstimateNoise(img), img.Width()*img.Height())
	}

	coeffs, err := Forward(nil, img, levels)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	out, err := Inverse(coeffs, coeffs, levels, opts.Shrink, t)
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	return out, nil
}

// ShrinkDetails applies policy kind with threshold t in place to every
// detail coefficient of a levels-deep coefficient grid. Running Inverse with
// threshold 0 and ShrinkHard afterwards gives the same result as running
// Inverse with kind and t directly.
func ShrinkDetails(g *Grid, levels int, kind Shrink, t float32) error {
	if err := checkThreshold(t); err != nil {
		return err
	}
	op, err := kind.vec()
	if err != nil {
		return err
	}
	if err := checkLevels(g, levels); err != nil {
		return err
	}

	width := g.Width()
	height := g.Height()
	for k := 1; k <= levels; k++ {
		for _, q := range detailQuadrants {
			r := NewRegion(g, QuadrantBounds(width, height, k, q))
			for y := range r.Dy() {
				shrinkRun(r.Row(y), t, op)
			}
		}
	}
	return nil
}

// DetailEnergy returns the sum of squares of every detail coefficient of a
// levels-deep coefficient grid.
func DetailEnergy(g *Grid, levels int) (float64, error) {
	if err := checkLevels(g, levels); err != nil {
		return 0, err
	}

	width := g.Width()
	height := g.Height()
	var energy float64
	for k := 1; k <= levels; k++ {
		for _, q := range detailQuadrants {
			r := NewRegion(g, QuadrantBounds(width, height, k, q))
			for y := range r.Dy() {
				energy += sumSquares(r.Row(y))
			}
		}
	}
	return energy, nil
}

func sumSquares(data []float32) float64 {
	n := len(data)
	lanes := hwy.MaxLanes[float32]()
	var sum float64
	i := 0

	for ; i+lanes <= n; i += lanes {
		v := hwy.Load(data[i:])
		sum += float64(hwy.ReduceSum(hwy.Mul(v, v)))
	}
	for ; i < n; i++ {
		sum += float64(data[i]) * float64(data[i])
	}
	return sum
}

// EstimateNoise returns the standard deviation of additive Gaussian noise
// in g using Immerkaer's fast estimator (a 3x3 Laplacian-difference mask
// over the interior samples). Grids smaller than 3x3 return 0.
func EstimateNoise(g *Grid) float32 {
	if isEmpty(g) || g.Width() < 3 || g.Height() < 3 {
		return 0
	}
	width := g.Width()
	height := g.Height()

	var sum float64
	for y := 1; y < height-1; y++ {
		up := g.Row(y - 1)
		mid := g.Row(y)
		down := g.Row(y + 1)
		for x := 1; x < width-1; x++ {
			conv := up[x-1] - 2*up[x] + up[x+1] -
				2*mid[x-1] + 4*mid[x] - 2*mid[x+1] +
				down[x-1] - 2*down[x] + down[x+1]
			sum += math.Abs(float64(conv))
		}
	}
	factor := math.Sqrt(0.5*math.Pi) / (6 * float64(width-2) * float64(height-2))
	return float32(sum * factor)
}

// UniversalThreshold returns sigma * sqrt(2 ln n), the VisuShrink threshold
// for n samples with noise level sigma.
func UniversalThreshold(sigma float32, n int) float32 {
	if n < 2 || sigma <= 0 {
		return 0
	}
	return float32(float64(sigma) * math.Sqrt(2*math.Log(float64(n))))
}
