package haar

import (
	"fmt"
	"image"
	"math/bits"
)

// Quadrant identifies one of the four sub-bands produced by a decomposition
// level.
type Quadrant int

const (
	Approximation Quadrant = iota // top-left, c
	Horizontal                    // top-right, dh
	Vertical                      // bottom-left, dv
	Diagonal                      // bottom-right, dd
)

func (q Quadrant) String() string {
	switch q {
	case Approximation:
		return "approximation"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// detailQuadrants are the sub-bands subject to shrinkage.
var detailQuadrants = [...]Quadrant{Horizontal, Vertical, Diagonal}

// LevelSize returns the quadrant size at level k: each dimension shifted
// right by k, truncating odd sizes.
func LevelSize(width, height, level int) (w, h int) {
	return width >> level, height >> level
}

// MaxLevels returns floor(log2(min(width, height))), the deepest
// decomposition a width x height grid supports.
func MaxLevels(width, height int) int {
	n := min(width, height)
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// QuadrantBounds returns the rectangle occupied by quadrant q at level
// (1-indexed) in a width x height coefficient grid.
func QuadrantBounds(width, height, level int, q Quadrant) image.Rectangle {
	w, h := LevelSize(width, height, level)
	switch q {
	case Approximation:
		return image.Rect(0, 0, w, h)
	case Horizontal:
		return image.Rect(w, 0, 2*w, h)
	case Vertical:
		return image.Rect(0, h, w, 2*h)
	case Diagonal:
		return image.Rect(w, h, 2*w, 2*h)
	}
	return image.Rectangle{}
}

// checkLevels validates the grid and level count shared by every transform.
func checkLevels(g *Grid, levels int) error {
	if isEmpty(g) {
		return ErrEmptyGrid
	}
	if levels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLevels, levels)
	}
	if limit := MaxLevels(g.Width(), g.Height()); levels > limit {
		return fmt.Errorf("%w: %d exceeds %d for a %dx%d grid",
			ErrInvalidLevels, levels, limit, g.Width(), g.Height())
	}
	return nil
}

// checkDst validates an optional destination grid against src.
func checkDst(dst, src *Grid) error {
	if dst == nil {
		return nil
	}
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return fmt.Errorf("%w: destination %dx%d, source %dx%d",
			ErrSizeMismatch, dst.Width(), dst.Height(), src.Width(), src.Height())
	}
	return nil
}
