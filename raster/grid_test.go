package raster

import (
	"math"
	"testing"
)

func gridFrom(rows, cols int, width, height float64, samples []float64) *Grid {
	return NewGrid(rows, cols, width, height, samples)
}

func TestFlipVertical(t *testing.T) {
	g := gridFrom(3, 2, 2, 3, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	g.FlipVertical()
	want := [][]float64{{5, 6}, {3, 4}, {1, 2}}
	for r := range want {
		for c := range want[r] {
			if got := g.At(r, c); got != want[r][c] {
				t.Errorf("At(%d,%d) = %g, want %g", r, c, got, want[r][c])
			}
		}
	}
}

func TestFlipHorizontal(t *testing.T) {
	g := gridFrom(2, 3, 3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	g.FlipHorizontal()
	want := [][]float64{{3, 2, 1}, {6, 5, 4}}
	for r := range want {
		for c := range want[r] {
			if got := g.At(r, c); got != want[r][c] {
				t.Errorf("At(%d,%d) = %g, want %g", r, c, got, want[r][c])
			}
		}
	}
}

func TestRotate90_Counterclockwise(t *testing.T) {
	g := gridFrom(2, 3, 3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	out := g.Rotate90(false)

	rows, cols := out.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("dims = (%d, %d), want (3, 2)", rows, cols)
	}
	w, h := out.Extents()
	if w != 2 || h != 3 {
		t.Errorf("extents = (%g, %g), want (2, 3)", w, h)
	}

	want := [][]float64{{3, 6}, {2, 5}, {1, 4}}
	for r := range want {
		for c := range want[r] {
			if got := out.At(r, c); got != want[r][c] {
				t.Errorf("At(%d,%d) = %g, want %g", r, c, got, want[r][c])
			}
		}
	}
}

func TestRotate90_Clockwise(t *testing.T) {
	g := gridFrom(2, 3, 3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	out := g.Rotate90(true)

	rows, cols := out.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("dims = (%d, %d), want (3, 2)", rows, cols)
	}

	want := [][]float64{{4, 1}, {5, 2}, {6, 3}}
	for r := range want {
		for c := range want[r] {
			if got := out.At(r, c); got != want[r][c] {
				t.Errorf("At(%d,%d) = %g, want %g", r, c, got, want[r][c])
			}
		}
	}
}

func TestRotate90_RoundTrip(t *testing.T) {
	g := gridFrom(2, 3, 3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	back := g.Rotate90(false).Rotate90(true)
	rows, cols := back.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("dims after round trip = (%d, %d), want (2, 3)", rows, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if back.At(r, c) != g.At(r, c) {
				t.Errorf("At(%d,%d) = %g, want %g", r, c, back.At(r, c), g.At(r, c))
			}
		}
	}
}

func TestRotateExpand_Identity(t *testing.T) {
	g := gridFrom(4, 4, 4e-6, 4e-6, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	out := g.RotateExpand(0)

	rows, cols := out.Dims()
	if rows != 4 || cols != 4 {
		t.Fatalf("dims = (%d, %d), want (4, 4)", rows, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if math.Abs(out.At(r, c)-g.At(r, c)) > 1e-9 {
				t.Errorf("At(%d,%d) = %g, want %g", r, c, out.At(r, c), g.At(r, c))
			}
		}
	}
}

func TestRotateExpand_Expansion(t *testing.T) {
	g := gridFrom(8, 16, 16e-6, 8e-6, make([]float64, 128))

	for _, deg := range []float64{30, 45, -60, 135, 10.5} {
		out := g.RotateExpand(deg * math.Pi / 180)
		w, h := out.Extents()
		gw, gh := g.Extents()
		if w < gw-1e-12 && h < gh-1e-12 {
			t.Errorf("rotation by %g: extents (%g, %g) shrank below (%g, %g)", deg, w, h, gw, gh)
		}
		sin, cos := math.Sincos(deg * math.Pi / 180)
		wantW := gw*math.Abs(cos) + gh*math.Abs(sin)
		wantH := gw*math.Abs(sin) + gh*math.Abs(cos)
		if math.Abs(w-wantW) > 1e-12 || math.Abs(h-wantH) > 1e-12 {
			t.Errorf("rotation by %g: extents (%g, %g), want (%g, %g)", deg, w, h, wantW, wantH)
		}
	}
}

func TestRotateExpand_ExteriorFill(t *testing.T) {
	samples := make([]float64, 64)
	for i := range samples {
		samples[i] = 10
	}
	g := gridFrom(8, 8, 8e-6, 8e-6, samples)
	out := g.RotateExpand(45 * math.Pi / 180)

	// A constant grid stays constant everywhere: interior through
	// interpolation, exterior through the mean fill.
	rows, cols := out.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if math.Abs(out.At(r, c)-10) > 1e-9 {
				t.Fatalf("At(%d,%d) = %g, want 10", r, c, out.At(r, c))
			}
		}
	}
}

func TestCatmullRom_InterpolatesEndpoints(t *testing.T) {
	if got := catmullRom(0, 1, 5, 9, 13); got != 5 {
		t.Errorf("catmullRom(0) = %g, want 5", got)
	}
	if got := catmullRom(1, 1, 5, 9, 13); got != 9 {
		t.Errorf("catmullRom(1) = %g, want 9", got)
	}
	// Catmull-Rom reproduces linear data exactly.
	if got := catmullRom(0.25, 1, 5, 9, 13); math.Abs(got-6) > 1e-12 {
		t.Errorf("catmullRom(0.25) on linear data = %g, want 6", got)
	}
}
