// Package raster reconstructs geometrically correct height-map images
// from decoded channel records.
//
// A channel's samples arrive as a flat sequence in acquisition order.
// Reconstruction builds the pixel grid, applies the scan-angle-dependent
// transform (axis flips for 0 and 180 degrees, an exact quarter turn
// for +/-90, an expanding interpolated rotation for oblique angles) and
// computes the raster's physical offsets. Oblique channels yield two
// rasters: the un-rotated "offset" image and the rotated one.
package raster

import (
	"errors"
	"math"

	"github.com/tsawler/anasys/axd"
	"github.com/tsawler/anasys/internal/samples"
	"github.com/tsawler/anasys/model"
)

// micrometer converts the source file's micrometer quantities to meters.
const micrometer = 1e-6

// ErrZeroResolution indicates a channel whose X or Y resolution is not
// positive. Such channels carry no samples and are skipped.
var ErrZeroResolution = errors.New("raster: channel resolution is zero")

// Options controls reconstruction behavior.
type Options struct {
	// GeometricObliqueOffsets applies the canonical offset rule
	// (position minus half extent) to the un-rotated raster of an
	// oblique channel. The default preserves the reference behavior,
	// which parks that raster at the fixed offset (1.0, 1.0) meters.
	GeometricObliqueOffsets bool
}

// Reconstruct builds the height map for one channel. For oblique scan
// angles the second return value holds the additional rotated raster;
// it is nil for canonical angles. Channels with zero resolution or a
// payload of the wrong size return an error and should be skipped.
func Reconstruct(ch *axd.Channel, opts Options) (primary, rotated *model.HeightMap, err error) {
	nx, ny := ch.ResolutionX, ch.ResolutionY
	if nx <= 0 || ny <= 0 {
		return nil, nil, ErrZeroResolution
	}

	data, err := samples.DecodeScaled(ch.SampleData, nx*ny, ch.PrefixMultiplier, 0)
	if err != nil {
		return nil, nil, err
	}

	grid := NewGrid(ny, nx, ch.SizeX*micrometer, ch.SizeY*micrometer, data)

	switch ch.ScanAngle {
	case 0:
		grid.FlipVertical()
	case 180:
		grid.FlipHorizontal()
	case 90:
		grid = grid.Rotate90(false)
		grid.FlipVertical()
	case -90:
		grid = grid.Rotate90(true)
		grid.FlipVertical()
	default:
		rot := grid.RotateExpand(ch.ScanAngle * math.Pi / 180)
		rot.FlipVertical()

		primary = heightMapFromGrid(grid, ch.Units, ch.Label+" (Offset)")
		if opts.GeometricObliqueOffsets {
			setGeometricOffsets(primary, ch)
		} else {
			primary.XOffset = 1.0
			primary.YOffset = 1.0
		}

		rotated = heightMapFromGrid(rot, ch.Units, ch.Label+" (Rotated)")
		setGeometricOffsets(rotated, ch)
		return primary, rotated, nil
	}

	primary = heightMapFromGrid(grid, ch.Units, ch.Label)
	setGeometricOffsets(primary, ch)
	return primary, nil, nil
}

// heightMapFromGrid wraps a transformed grid in the model type.
func heightMapFromGrid(g *Grid, units, title string) *model.HeightMap {
	rows, cols := g.Dims()
	width, height := g.Extents()
	return &model.HeightMap{
		Data:   g.data,
		Rows:   rows,
		Cols:   cols,
		Width:  width,
		Height: height,
		Units:  units,
		Title:  title,
	}
}

// setGeometricOffsets places the raster origin at the scan position
// minus half the raster extent.
func setGeometricOffsets(hm *model.HeightMap, ch *axd.Channel) {
	hm.XOffset = ch.PositionX*micrometer - 0.5*hm.Width
	hm.YOffset = ch.PositionY*micrometer - 0.5*hm.Height
}
