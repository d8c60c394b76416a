package haar

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFromSlices_ToSlices(t *testing.T) {
	data := [][]uint8{
		{0, 1, 2},
		{3, 4, 255},
	}
	g := FromSlices(data)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size %dx%d, want 3x2", g.Width(), g.Height())
	}

	got := ToSlices(g)
	for y := range data {
		for x := range data[y] {
			if got[y][x] != float32(data[y][x]) {
				t.Errorf("at (%d,%d): got %v, want %v", x, y, got[y][x], data[y][x])
			}
		}
	}

	if FromSlices([][]float64{}) != nil {
		t.Error("FromSlices of empty input should be nil")
	}
	if ToSlices(nil) != nil {
		t.Error("ToSlices(nil) should be nil")
	}
}

func TestFromSlices_ShortRows(t *testing.T) {
	g := FromSlices([][]int{
		{1, 2, 3},
		{4},
	})
	if got := g.At(0, 1); got != 4 {
		t.Errorf("At(0,1) = %v, want 4", got)
	}
	if got := g.At(2, 1); got != 0 {
		t.Errorf("At(2,1) = %v, want 0", got)
	}
}

func TestFromImage(t *testing.T) {
	t.Run("gray", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 4, 3))
		for i := range img.Pix {
			img.Pix[i] = uint8(i * 10)
		}
		g := FromImage(img)
		for y := range 3 {
			for x := range 4 {
				if got, want := g.At(x, y), float32(img.GrayAt(x, y).Y); got != want {
					t.Errorf("at (%d,%d): got %v, want %v", x, y, got, want)
				}
			}
		}
	})

	t.Run("gray sub-image", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 6, 6))
		for i := range img.Pix {
			img.Pix[i] = uint8(i)
		}
		sub := img.SubImage(image.Rect(2, 3, 5, 6))
		g := FromImage(sub)
		if g.Width() != 3 || g.Height() != 3 {
			t.Fatalf("size %dx%d, want 3x3", g.Width(), g.Height())
		}
		if got, want := g.At(0, 0), float32(img.GrayAt(2, 3).Y); got != want {
			t.Errorf("origin: got %v, want %v", got, want)
		}
		if got, want := g.At(2, 2), float32(img.GrayAt(4, 5).Y); got != want {
			t.Errorf("corner: got %v, want %v", got, want)
		}
	})

	t.Run("rgba", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 1))
		img.Set(0, 0, color.RGBA{R: 255, A: 255})
		img.Set(1, 0, color.RGBA{R: 10, G: 200, B: 30, A: 255})
		g := FromImage(img)
		for x := range 2 {
			want := float32(color.GrayModel.Convert(img.At(x, 0)).(color.Gray).Y)
			if got := g.At(x, 0); got != want {
				t.Errorf("pixel %d: got %v, want %v", x, got, want)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		if FromImage(image.NewGray(image.Rectangle{})) != nil {
			t.Error("empty image should give nil grid")
		}
	})
}

func TestToGray_Clamps(t *testing.T) {
	g := FromSlices([][]float32{
		{-3, 12.4, 12.5, 254.6, 300, float32(math.NaN())},
	})
	want := []uint8{0, 12, 13, 255, 255, 0}

	img := ToGray(g)
	for x, w := range want {
		if got := img.GrayAt(x, 0).Y; got != w {
			t.Errorf("sample %d: got %d, want %d", x, got, w)
		}
	}
}

func TestClone_EqualFlatten(t *testing.T) {
	g := FromSlices([][]float32{
		{1, 2},
		{3, 4},
	})
	c := Clone(g)
	if !Equal(g, c) {
		t.Fatal("clone differs from original")
	}
	if sameStorage(g, c) {
		t.Fatal("clone shares storage with original")
	}
	if !sameStorage(g, g) {
		t.Fatal("grid does not share storage with itself")
	}

	c.Set(1, 1, 4.5)
	if Equal(g, c) {
		t.Error("Equal ignored a modified sample")
	}
	if !ApproxEqual(g, c, 0.5) {
		t.Error("ApproxEqual rejected a difference within tolerance")
	}
	if Equal(g, NewGrid(2, 3)) {
		t.Error("Equal accepted different dimensions")
	}

	flat := Flatten(g)
	for i, want := range []float32{1, 2, 3, 4} {
		if flat[i] != want {
			t.Errorf("Flatten[%d] = %v, want %v", i, flat[i], want)
		}
	}
}

func TestRegion(t *testing.T) {
	g := patternGrid(8, 6)

	r := NewRegion(g, image.Rect(4, 2, 12, 5))
	if got, want := r.Bounds(), image.Rect(4, 2, 8, 5); got != want {
		t.Fatalf("bounds %v, want %v", got, want)
	}
	if r.Dx() != 4 || r.Dy() != 3 {
		t.Fatalf("size %dx%d, want 4x3", r.Dx(), r.Dy())
	}
	if got, want := r.At(1, 2), g.At(5, 4); got != want {
		t.Errorf("At(1,2) = %v, want %v", got, want)
	}

	r.Set(0, 0, -1)
	if got := g.At(4, 2); got != -1 {
		t.Errorf("Set did not reach the grid: got %v", got)
	}

	r.Row(1)[3] = -2
	if got := g.At(7, 3); got != -2 {
		t.Errorf("Row does not share storage: got %v", got)
	}

	dst := NewGrid(8, 6)
	NewRegion(dst, image.Rect(0, 0, 4, 3)).CopyFrom(r)
	for y := range 3 {
		for x := range 4 {
			if got, want := dst.At(x, y), g.At(4+x, 2+y); got != want {
				t.Errorf("CopyFrom at (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestMaxLevels(t *testing.T) {
	tests := []struct {
		width, height, want int
	}{
		{0, 5, 0},
		{1, 1, 0},
		{2, 2, 1},
		{3, 9, 1},
		{4, 4, 2},
		{17, 15, 3},
		{32, 16, 4},
		{1024, 768, 9},
	}
	for _, tt := range tests {
		if got := MaxLevels(tt.width, tt.height); got != tt.want {
			t.Errorf("MaxLevels(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestQuadrantBounds(t *testing.T) {
	tests := []struct {
		width, height, level int
		q                    Quadrant
		want                 image.Rectangle
	}{
		{8, 8, 1, Approximation, image.Rect(0, 0, 4, 4)},
		{8, 8, 1, Horizontal, image.Rect(4, 0, 8, 4)},
		{8, 8, 1, Vertical, image.Rect(0, 4, 4, 8)},
		{8, 8, 1, Diagonal, image.Rect(4, 4, 8, 8)},
		{17, 15, 2, Diagonal, image.Rect(4, 3, 8, 6)},
		{32, 16, 3, Horizontal, image.Rect(4, 0, 8, 2)},
	}
	for _, tt := range tests {
		if got := QuadrantBounds(tt.width, tt.height, tt.level, tt.q); got != tt.want {
			t.Errorf("QuadrantBounds(%d, %d, %d, %v) = %v, want %v",
				tt.width, tt.height, tt.level, tt.q, got, tt.want)
		}
	}
}
