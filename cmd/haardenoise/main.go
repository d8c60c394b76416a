// Command haardenoise removes noise from grayscale images with a multi-level
// Haar wavelet transform.
//
// Usage:
//
//	haardenoise denoise -i noisy.png -o clean.png --shrink soft --auto
//	haardenoise denoise -i scan.tiff -o out.png --levels 4 --threshold 12 --describe 32x32:8x8
//	haardenoise cpuinfo
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-haar/internal/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "haardenoise",
		Short:         "Haar wavelet denoising for grayscale images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !logging.SetLevelFromString(logLevel) {
				logging.Warnf("unknown log level %q, using info", logLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newDenoiseCmd(), newCPUInfoCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
