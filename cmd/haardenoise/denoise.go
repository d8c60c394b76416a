package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	haar "github.com/ajroetker/go-haar"
	"github.com/ajroetker/go-haar/descriptor"
	"github.com/ajroetker/go-haar/internal/logging"
)

type denoiseFlags struct {
	input     string
	output    string
	levels    int
	shrink    string
	threshold float32
	auto      bool
	describe  string
}

func newDenoiseCmd() *cobra.Command {
	var f denoiseFlags

	cmd := &cobra.Command{
		Use:   "denoise",
		Short: "Denoise an image and write the result as PNG",
		Long: "Decodes a PNG, JPEG, TIFF or BMP image, converts it to luma, shrinks its\n" +
			"Haar detail coefficients and writes the reconstruction as 8-bit PNG.\n" +
			"Without --threshold the threshold is derived from the estimated noise.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd.Flags().Changed("threshold"))
			if err != nil {
				return err
			}
			return runDenoise(cmd.OutOrStdout(), f, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "", "input image (png, jpeg, tiff, bmp)")
	fs.StringVarP(&f.output, "output", "o", "", "output PNG path")
	fs.IntVar(&f.levels, "levels", 0, "decomposition levels (0 = min(3, max for the image))")
	fs.StringVar(&f.shrink, "shrink", "soft", "shrinkage policy (hard, soft, garrote)")
	fs.Float32Var(&f.threshold, "threshold", 0, "shrinkage threshold")
	fs.BoolVar(&f.auto, "auto", false, "derive the threshold from the estimated noise level")
	fs.StringVar(&f.describe, "describe", "", "print the block binary pixel sum of the result, as WxH:BWxBH")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("threshold", "auto")

	return cmd
}

func (f denoiseFlags) options(thresholdSet bool) (haar.DenoiseOptions, error) {
	kind, err := haar.ParseShrink(f.shrink)
	if err != nil {
		return haar.DenoiseOptions{}, err
	}
	if f.levels < 0 {
		return haar.DenoiseOptions{}, fmt.Errorf("--levels must not be negative, got %d", f.levels)
	}
	return haar.DenoiseOptions{
		Levels:        f.levels,
		Shrink:        kind,
		Threshold:     f.threshold,
		AutoThreshold: f.auto || !thresholdSet,
	}, nil
}

func runDenoise(w io.Writer, f denoiseFlags, opts haar.DenoiseOptions) error {
	var bbps *descriptor.BlockBinaryPixelSum
	if f.describe != "" {
		target, block, err := parseDescribe(f.describe)
		if err != nil {
			return err
		}
		if bbps, err = descriptor.NewBlockBinaryPixelSum(target, block); err != nil {
			return err
		}
	}

	img, format, err := decodeFile(f.input)
	if err != nil {
		return err
	}
	g := haar.FromImage(img)
	if g == nil {
		return fmt.Errorf("%s: empty image", f.input)
	}
	logging.Debugf("decoded %s: %s %dx%d", f.input, format, g.Width(), g.Height())

	opts = resolveThreshold(g, opts)

	out, err := haar.Denoise(g, &opts)
	if err != nil {
		return fmt.Errorf("denoise %s: %w", f.input, err)
	}

	if err := encodeFile(f.output, haar.ToGray(out)); err != nil {
		return err
	}
	logging.Infof("wrote %s (%s shrinkage, threshold %.3f)", f.output, opts.Shrink, opts.Threshold)

	if bbps != nil {
		features := bbps.DescribeGrid(out)
		parts := make([]string, len(features))
		for i, v := range features {
			parts[i] = fmt.Sprintf("%.4f", v)
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
	return nil
}

// resolveThreshold replaces an automatic threshold with the value derived
// from g's estimated noise, so it is computed once and can be logged.
func resolveThreshold(g *haar.Grid, opts haar.DenoiseOptions) haar.DenoiseOptions {
	if !opts.AutoThreshold {
		return opts
	}
	sigma := haar.EstimateNoise(g)
	opts.Threshold = haar.UniversalThreshold(sigma, g.Width()*g.Height())
	opts.AutoThreshold = false
	logging.Infof("estimated noise sigma %.3f, threshold %.3f", sigma, opts.Threshold)
	return opts
}

func decodeFile(path string) (image.Image, string, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer fp.Close()

	img, format, err := image.Decode(fp)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

func encodeFile(path string, img image.Image) (err error) {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(fp, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

var errDescribeFormat = errors.New("describe: want WxH:BWxBH, e.g. 32x32:8x8")

// parseDescribe parses "WxH:BWxBH" into a target and block size.
func parseDescribe(s string) (target, block image.Point, err error) {
	t, b, ok := strings.Cut(s, ":")
	if !ok {
		return target, block, fmt.Errorf("%w: %q", errDescribeFormat, s)
	}
	if target, err = parseSize(t); err != nil {
		return target, block, fmt.Errorf("%w: %q", errDescribeFormat, s)
	}
	if block, err = parseSize(b); err != nil {
		return target, block, fmt.Errorf("%w: %q", errDescribeFormat, s)
	}
	return target, block, nil
}

func parseSize(s string) (image.Point, error) {
	var p image.Point
	n, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &p.X, &p.Y)
	if err != nil || n != 2 {
		return p, errDescribeFormat
	}
	return p, nil
}
