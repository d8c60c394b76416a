package haar

import (
	"fmt"
	"math"
	"strings"

	"github.com/ajroetker/go-highway/hwy"
)

// Shrink selects the nonlinearity applied to detail coefficients during
// reconstruction.
type Shrink int

const (
	ShrinkHard    Shrink = iota // keep d when |d| > t
	ShrinkSoft                  // sign(d) * (|d| - t) when |d| > t
	ShrinkGarrote               // d - t*t/d when |d| > t
)

// ShrinkFunc maps a detail coefficient d and threshold t to its shrunk value.
type ShrinkFunc func(d, t float32) float32

func (s Shrink) String() string {
	switch s {
	case ShrinkHard:
		return "hard"
	case ShrinkSoft:
		return "soft"
	case ShrinkGarrote:
		return "garrote"
	}
	return fmt.Sprintf("Shrink(%d)", int(s))
}

// ParseShrink returns the policy named by s (case-insensitive).
func ParseShrink(s string) (Shrink, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return ShrinkHard, nil
	case "soft":
		return ShrinkSoft, nil
	case "garrote", "garrot":
		return ShrinkGarrote, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShrink, s)
}

// Func returns the scalar function for s.
func (s Shrink) Func() (ShrinkFunc, error) {
	switch s {
	case ShrinkHard:
		return HardShrink, nil
	case ShrinkSoft:
		return SoftShrink, nil
	case ShrinkGarrote:
		return GarroteShrink, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownShrink, int(s))
}

// HardShrink zeroes d when |d| <= t and keeps it otherwise.
func HardShrink(d, t float32) float32 {
	if abs32(d) > t {
		return d
	}
	return 0
}

// SoftShrink zeroes d when |d| <= t and moves it t closer to zero otherwise.
func SoftShrink(d, t float32) float32 {
	if a := abs32(d); a > t {
		return sign32(d) * (a - t)
	}
	return 0
}

// GarroteShrink zeroes d when |d| <= t and returns d - t*t/d otherwise.
// d is never zero on the second branch as long as t >= 0.
func GarroteShrink(d, t float32) float32 {
	if abs32(d) > t {
		return d - (t*t)/d
	}
	return 0
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

func sign32(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func checkThreshold(t float32) error {
	if t < 0 || math.IsNaN(float64(t)) {
		return fmt.Errorf("%w: %v", ErrNegativeThreshold, t)
	}
	return nil
}

// ShrinkSlice applies policy kind with threshold t to every element of data
// in place.
func ShrinkSlice(kind Shrink, data []float32, t float32) error {
	if err := checkThreshold(t); err != nil {
		return err
	}
	op, err := kind.vec()
	if err != nil {
		return err
	}
	shrinkRun(data, t, op)
	return nil
}

// vecShrink is the vector form of a ShrinkFunc. tv holds t in every lane.
type vecShrink func(v, tv, zero hwy.Vec[float32]) hwy.Vec[float32]

func (s Shrink) vec() (vecShrink, error) {
	switch s {
	case ShrinkHard:
		return hardShrinkVec, nil
	case ShrinkSoft:
		return softShrinkVec, nil
	case ShrinkGarrote:
		return garroteShrinkVec, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownShrink, int(s))
}

func hardShrinkVec(v, tv, zero hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.IfThenElse(hwy.GreaterThan(hwy.Abs(v), tv), v, zero)
}

func softShrinkVec(v, tv, zero hwy.Vec[float32]) hwy.Vec[float32] {
	m := hwy.Max(hwy.Sub(hwy.Abs(v), tv), zero)
	return hwy.IfThenElse(hwy.LessThan(v, zero), hwy.Neg(m), m)
}

func garroteShrinkVec(v, tv, zero hwy.Vec[float32]) hwy.Vec[float32] {
	// Lanes with |v| <= t may divide by zero; they are masked out.
	shrunk := hwy.Sub(v, hwy.Div(hwy.Mul(tv, tv), v))
	return hwy.IfThenElse(hwy.GreaterThan(hwy.Abs(v), tv), shrunk, zero)
}

func shrinkRun(data []float32, t float32, op vecShrink) {
	n := len(data)
	if n == 0 {
		return
	}

	tv := hwy.Set(t)
	zero := hwy.Zero[float32]()
	lanes := hwy.MaxLanes[float32]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		v := hwy.Load(data[i:])
		hwy.Store(op(v, tv, zero), data[i:])
	}

	if remaining := n - i; remaining > 0 {
		buf := make([]float32, lanes)
		copy(buf, data[i:])
		v := hwy.Load(buf)
		hwy.Store(op(v, tv, zero), buf)
		copy(data[i:], buf[:remaining])
	}
}
