package haar

import "image"

// Inverse reconstructs a grid from a levels-deep coefficient grid produced
// by Forward, shrinking every detail coefficient with policy kind and
// threshold before it is used. Approximation coefficients are never shrunk.
//
// dst follows the same rules as in Forward: nil allocates, otherwise it must
// match src and may be src itself.
//
// With threshold 0 and ShrinkHard the result equals the original samples up
// to float32 rounding.
func Inverse(dst, src *Grid, levels int, kind Shrink, threshold float32) (*Grid, error) {
	shrink, err := kind.Func()
	if err != nil {
		return nil, err
	}
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}
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

	// Coarsest to finest. Each level's reconstruction becomes the
	// approximation quadrant read by the next one.
	for k := levels; k >= 1; k-- {
		hw, hh := LevelSize(width, height, k)
		synthesizeLevel(out, work.g, hw, hh, shrink, threshold)

		fw, fh := LevelSize(width, height, k-1)
		level := image.Rect(0, 0, fw, fh)
		NewRegion(work.g, level).CopyFrom(NewRegion(out, level))
	}

	if out != dst {
		copyGrid(dst, out)
	}
	return dst, nil
}

// synthesizeLevel rebuilds the 2hw x 2hh block of out from the four hw x hh
// quadrants of in.
func synthesizeLevel(out, in *Grid, hw, hh int, shrink ShrinkFunc, t float32) {
	for y := range hh {
		top := in.Row(y)
		bottom := in.Row(y + hh)
		o0 := out.Row(2 * y)
		o1 := out.Row(2*y + 1)
		for x := range hw {
			c := top[x]
			dh := shrink(top[x+hw], t)
			dv := shrink(bottom[x], t)
			dd := shrink(bottom[x+hw], t)

			o0[2*x] = 0.5 * (c + dh + dv + dd)
			o0[2*x+1] = 0.5 * (c - dh + dv - dd)
			o1[2*x] = 0.5 * (c + dh - dv - dd)
			o1[2*x+1] = 0.5 * (c - dh - dv + dd)
		}
	}
}
