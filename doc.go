// Package haar implements a multi-level 2-D Haar wavelet transform with
// detail-coefficient shrinkage for image denoising.
//
// Samples live in a Grid, a float32 image from go-highway's contrib/image
// package. After n forward levels the grid holds the standard pyramidal
// layout: at level k the top-left (height>>k) x (width>>k) block is split
// into approximation (top-left), horizontal detail (top-right), vertical
// detail (bottom-left) and diagonal detail (bottom-right) quadrants.
//
// Decomposition and reconstruction:
//
//	coeffs, err := haar.Forward(nil, img, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := haar.Inverse(nil, coeffs, 3, haar.ShrinkSoft, 12)
//
// Both transforms accept the same grid as source and destination:
//
//	haar.Forward(img, img, 3)
//
// One-shot denoising with a noise-derived threshold:
//
//	out, err := haar.Denoise(img, &haar.DenoiseOptions{
//	    Shrink:        haar.ShrinkGarrote,
//	    AutoThreshold: true,
//	})
//
// With threshold 0 and ShrinkHard, Inverse is the exact inverse of Forward
// up to float32 rounding. Any positive threshold makes it lossy.
package haar
