package haar

import "image"

// Forward performs a levels-deep 2-D Haar decomposition of src and returns
// the coefficient grid.
//
// If dst is nil a new grid is allocated; otherwise dst must have the same
// dimensions as src and receives the coefficients. dst may be src itself.
// src is left untouched unless it is also dst.
//
// levels must be in [1, MaxLevels(width, height)]. Samples outside every
// 2x2 block (the last row or column of an odd-sized level) are carried over
// unchanged, so Inverse restores them exactly.
func Forward(dst, src *Grid, levels int) (*Grid, error) {
	if err := checkLevels(src, levels); err != nil {
		return nil, err
	}
	if err := checkDst(dst, src); err != nil {
		return nil, err
	}

	width := src.Width()
	height := src.Height()
	if dst == nil {
		dst = NewGrid(width, height)
	}

	// work holds the level being decomposed; reads never see writes to out.
	work := getScratch(width, height)
	defer putScratch(work)
	copyGrid(work.g, src)

	out := dst
	if sameStorage(dst, src) {
		tmp := getScratch(width, height)
		defer putScratch(tmp)
		out = tmp.g
	}
	copyGrid(out, src)

	for k := range levels {
		hw, hh := LevelSize(width, height, k+1)
		analyzeLevel(out, work.g, hw, hh)

		level := image.Rect(0, 0, 2*hw, 2*hh)
		NewRegion(work.g, level).CopyFrom(NewRegion(out, level))
	}

	if out != dst {
		copyGrid(dst, out)
	}
	return dst, nil
}

// analyzeLevel decomposes the top-left 2hw x 2hh block of in into the four
// hw x hh quadrants of out.
func analyzeLevel(out, in *Grid, hw, hh int) {
	for y := range hh {
		r0 := in.Row(2 * y)
		r1 := in.Row(2*y + 1)
		top := out.Row(y)
		bottom := out.Row(y + hh)
		for x := range hw {
			a, b := r0[2*x], r0[2*x+1]
			d, e := r1[2*x], r1[2*x+1]

			top[x] = 0.5 * (a + b + d + e)
			top[x+hw] = 0.5 * (a + d - b - e)
			bottom[x] = 0.5 * (a + b - d - e)
			bottom[x+hw] = 0.5 * (a - b - d + e)
		}
	}
}
