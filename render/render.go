// Package render converts height maps into images for preview display.
//
// Rendering is strictly one-way: images are derived from decoded
// rasters and never feed back into the import pipeline.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/tsawler/anasys/model"
)

// Image renders a height map as a 16-bit grayscale image, mapping the
// sample range linearly onto black to white. A flat raster renders all
// black.
func Image(hm *model.HeightMap) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, hm.Cols, hm.Rows))
	lo, hi := hm.MinMax()
	var scale float64
	if hi > lo {
		scale = 65535 / (hi - lo)
	}
	for r := 0; r < hm.Rows; r++ {
		for c := 0; c < hm.Cols; c++ {
			v := (hm.At(r, c) - lo) * scale
			img.SetGray16(c, r, color.Gray16{Y: uint16(v + 0.5)})
		}
	}
	return img
}

// Thumbnail renders a height map scaled so its longer side is maxDim
// pixels, preserving aspect ratio and resampling with Catmull-Rom.
// Rasters already within maxDim are returned at full resolution.
func Thumbnail(hm *model.HeightMap, maxDim int) image.Image {
	src := Image(hm)
	w, h := hm.Cols, hm.Rows
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return src
	}
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewGray16(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
