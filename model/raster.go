package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// HeightMap represents a single reconstructed 2D raster channel.
//
// Data holds one physical sample per pixel in row-major order, row 0 at
// the top of the image. Spatial calibration (extents and origin offset)
// is in meters regardless of the units the source file used.
type HeightMap struct {
	Data *mat.Dense // Rows x Cols sample grid
	Rows int
	Cols int

	Width   float64 // physical width in meters
	Height  float64 // physical height in meters
	XOffset float64 // x coordinate of the grid origin in meters
	YOffset float64 // y coordinate of the grid origin in meters

	Units string // z-axis unit string, e.g. "m" or "V"
	Title string
}

// NewHeightMap creates a zero-filled raster with the given pixel
// dimensions and physical extents in meters.
func NewHeightMap(rows, cols int, width, height float64) *HeightMap {
	return &HeightMap{
		Data:   mat.NewDense(rows, cols, nil),
		Rows:   rows,
		Cols:   cols,
		Width:  width,
		Height: height,
	}
}

// At returns the sample value at the given row and column.
func (h *HeightMap) At(row, col int) float64 {
	return h.Data.At(row, col)
}

// Set assigns the sample value at the given row and column.
func (h *HeightMap) Set(row, col int, v float64) {
	h.Data.Set(row, col, v)
}

// MinMax returns the smallest and largest sample values in the raster.
// Both are 0 for an empty raster.
func (h *HeightMap) MinMax() (lo, hi float64) {
	if h.Rows == 0 || h.Cols == 0 {
		return 0, 0
	}
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for r := 0; r < h.Rows; r++ {
		for c := 0; c < h.Cols; c++ {
			v := h.Data.At(r, c)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// Mean returns the arithmetic mean of all sample values.
func (h *HeightMap) Mean() float64 {
	if h.Rows == 0 || h.Cols == 0 {
		return 0
	}
	var sum float64
	for r := 0; r < h.Rows; r++ {
		for c := 0; c < h.Cols; c++ {
			sum += h.Data.At(r, c)
		}
	}
	return sum / float64(h.Rows*h.Cols)
}
