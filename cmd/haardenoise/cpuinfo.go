package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-highway/hwy"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the SIMD dispatch target used by the shrinkage kernels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printCPUInfo(cmd.OutOrStdout())
		},
	}
}

func printCPUInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Highway dispatch name: %s\n", hwy.CurrentName())
	fmt.Fprintf(w, "float32 lanes: %d\n", hwy.MaxLanes[float32]())

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "\n=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD: %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasSVE:   %v\n", cpu.ARM64.HasSVE)
		fmt.Fprintf(w, "  HasSVE2:  %v\n", cpu.ARM64.HasSVE2)
	case "amd64":
		fmt.Fprintln(w, "\n=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
		fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
	}
}
