// Package model provides the in-memory representation for decoded scan
// data.
//
// This package defines the user-facing data structures produced by an
// import: height-map rasters, spectra, and the container that holds them.
// All parsing and reconstruction ultimately produces these types, making
// them the primary API for consuming decoded content.
//
// # Scan Structure
//
// The [ScanSet] type represents one imported file:
//
//	set, _, err := anasys.Open("scan.axd").Import()
//	for _, idx := range set.Indices() {
//	    hm := set.HeightMap(idx)
//	    fmt.Println(hm.Title, hm.Rows, hm.Cols)
//	}
//
// Height maps are keyed by their 1-based position in the source file.
// A channel acquired at an oblique scan angle yields a second, rotated
// raster stored at [RotatedIndexBase] plus the primary index.
//
// # Rasters
//
// A [HeightMap] is a dense grid of physical sample values together with
// its spatial calibration: physical extents and origin offset in meters
// and the z-axis unit string.
//
// # Spectra
//
// A [Spectrum] is a 1D sample sequence on a linear wavenumber axis,
// tagged with the location it was acquired at. Spectra are grouped into
// [SpectrumSet] collections; index 0 of [ScanSet.SpectrumSets] is the
// aggregate set containing every spectrum in the file.
package model
