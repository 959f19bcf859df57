package raster

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid is a dense 2D sample grid with physical extents in meters.
// Row 0 is the top of the image.
type Grid struct {
	data   *mat.Dense
	rows   int
	cols   int
	width  float64 // physical width in meters
	height float64 // physical height in meters
}

// NewGrid creates a grid from row-major samples. len(samples) must be
// rows*cols; a nil slice yields a zero-filled grid.
func NewGrid(rows, cols int, width, height float64, samples []float64) *Grid {
	return &Grid{
		data:   mat.NewDense(rows, cols, samples),
		rows:   rows,
		cols:   cols,
		width:  width,
		height: height,
	}
}

// At returns the sample at the given row and column.
func (g *Grid) At(row, col int) float64 {
	return g.data.At(row, col)
}

// Dims returns the grid's pixel dimensions.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Extents returns the grid's physical width and height in meters.
func (g *Grid) Extents() (width, height float64) {
	return g.width, g.height
}

// FlipVertical reverses the row order in place.
func (g *Grid) FlipVertical() {
	for r := 0; r < g.rows/2; r++ {
		opp := g.rows - 1 - r
		for c := 0; c < g.cols; c++ {
			a, b := g.data.At(r, c), g.data.At(opp, c)
			g.data.Set(r, c, b)
			g.data.Set(opp, c, a)
		}
	}
}

// FlipHorizontal reverses the column order in place.
func (g *Grid) FlipHorizontal() {
	for c := 0; c < g.cols/2; c++ {
		opp := g.cols - 1 - c
		for r := 0; r < g.rows; r++ {
			a, b := g.data.At(r, c), g.data.At(r, opp)
			g.data.Set(r, c, b)
			g.data.Set(r, opp, a)
		}
	}
}

// Rotate90 returns a new grid rotated by a quarter turn, clockwise or
// counterclockwise. The rotation is an exact permutation of samples;
// pixel dimensions and physical extents swap.
func (g *Grid) Rotate90(clockwise bool) *Grid {
	out := NewGrid(g.cols, g.rows, g.height, g.width, nil)
	for r := 0; r < out.rows; r++ {
		for c := 0; c < out.cols; c++ {
			if clockwise {
				out.data.Set(r, c, g.data.At(g.rows-1-c, r))
			} else {
				out.data.Set(r, c, g.data.At(c, g.cols-1-r))
			}
		}
	}
	return out
}

// mean returns the arithmetic mean of all samples, used as the exterior
// fill value for expanding rotations.
func (g *Grid) mean() float64 {
	var sum float64
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sum += g.data.At(r, c)
		}
	}
	return sum / float64(g.rows*g.cols)
}

// RotateExpand returns a new grid rotated by the given angle in
// radians. The canvas expands to the rotated bounding box so no data is
// cropped; samples are resampled with Catmull-Rom interpolation and the
// exterior is filled with the source mean.
func (g *Grid) RotateExpand(radians float64) *Grid {
	sin, cos := math.Sincos(radians)
	absSin, absCos := math.Abs(sin), math.Abs(cos)

	newWidth := g.width*absCos + g.height*absSin
	newHeight := g.width*absSin + g.height*absCos

	// Preserve the source pixel density on the expanded canvas.
	px := g.width / float64(g.cols)
	py := g.height / float64(g.rows)
	newCols := int(math.Ceil(newWidth/px - 1e-9))
	newRows := int(math.Ceil(newHeight/py - 1e-9))
	if newCols < 1 {
		newCols = 1
	}
	if newRows < 1 {
		newRows = 1
	}

	out := NewGrid(newRows, newCols, newWidth, newHeight, nil)
	fill := g.mean()
	dx := newWidth / float64(newCols)
	dy := newHeight / float64(newRows)

	for r := 0; r < newRows; r++ {
		for c := 0; c < newCols; c++ {
			// Physical position of the destination pixel center,
			// relative to the canvas center.
			x := (float64(c)+0.5)*dx - newWidth/2
			y := (float64(r)+0.5)*dy - newHeight/2

			// Inverse-rotate into source coordinates.
			sx := x*cos + y*sin
			sy := -x*sin + y*cos

			col := (sx+g.width/2)/px - 0.5
			row := (sy+g.height/2)/py - 0.5

			if col < -0.5 || col > float64(g.cols)-0.5 ||
				row < -0.5 || row > float64(g.rows)-0.5 {
				out.data.Set(r, c, fill)
				continue
			}
			out.data.Set(r, c, g.sampleCatmullRom(row, col))
		}
	}
	return out
}

// sampleCatmullRom evaluates the grid at fractional coordinates using
// separable Catmull-Rom interpolation with clamped edges.
func (g *Grid) sampleCatmullRom(row, col float64) float64 {
	r0 := int(math.Floor(row))
	c0 := int(math.Floor(col))
	fr := row - float64(r0)
	fc := col - float64(c0)

	var rowVals [4]float64
	for i := 0; i < 4; i++ {
		r := clampIndex(r0-1+i, g.rows)
		var p [4]float64
		for j := 0; j < 4; j++ {
			p[j] = g.data.At(r, clampIndex(c0-1+j, g.cols))
		}
		rowVals[i] = catmullRom(fc, p[0], p[1], p[2], p[3])
	}
	return catmullRom(fr, rowVals[0], rowVals[1], rowVals[2], rowVals[3])
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// catmullRom evaluates the Catmull-Rom spline through p0..p3 at
// parameter t in [0, 1], interpolating between p1 and p2.
func catmullRom(t, p0, p1, p2, p3 float64) float64 {
	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t*t +
		(3*p1-p0-3*p2+p3)*t*t*t)
}
