package render

import (
	"testing"

	"github.com/tsawler/anasys/model"
)

func gradientMap(rows, cols int) *model.HeightMap {
	hm := model.NewHeightMap(rows, cols, 1e-6, 1e-6)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			hm.Set(r, c, float64(r*cols+c))
		}
	}
	return hm
}

func TestImage_Range(t *testing.T) {
	hm := gradientMap(2, 2)
	img := Image(hm)

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", b)
	}
	if y := img.Gray16At(0, 0).Y; y != 0 {
		t.Errorf("minimum sample rendered as %d, want 0", y)
	}
	if y := img.Gray16At(1, 1).Y; y != 65535 {
		t.Errorf("maximum sample rendered as %d, want 65535", y)
	}
	// Samples 0..3 map onto thirds of the gray range.
	if y := img.Gray16At(1, 0).Y; y != 21845 {
		t.Errorf("sample 1 rendered as %d, want 21845", y)
	}
}

func TestImage_FlatRaster(t *testing.T) {
	hm := model.NewHeightMap(2, 2, 1e-6, 1e-6)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			hm.Set(r, c, 7.5)
		}
	}
	img := Image(hm)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if y := img.Gray16At(c, r).Y; y != 0 {
				t.Fatalf("flat raster pixel (%d,%d) = %d, want 0", c, r, y)
			}
		}
	}
}

func TestImage_RowOrientation(t *testing.T) {
	// Row r of the raster must land on image row y=r.
	hm := model.NewHeightMap(2, 1, 1e-6, 2e-6)
	hm.Set(0, 0, 0)
	hm.Set(1, 0, 1)
	img := Image(hm)
	if img.Gray16At(0, 0).Y != 0 || img.Gray16At(0, 1).Y != 65535 {
		t.Error("raster rows rendered in the wrong order")
	}
}

func TestThumbnail(t *testing.T) {
	img := Thumbnail(gradientMap(40, 80), 20)
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("bounds = %v, want 20x10", b)
	}

	img = Thumbnail(gradientMap(80, 40), 20)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 20 {
		t.Errorf("bounds = %v, want 10x20", b)
	}

	// Already small enough: returned at full resolution.
	img = Thumbnail(gradientMap(8, 8), 20)
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", b)
	}
}

func TestThumbnail_ExtremeAspect(t *testing.T) {
	img := Thumbnail(gradientMap(2, 200), 20)
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 20x1", b)
	}
}
