// Package axd provides parsing of Analysis Studio XML (.axd) scan files.
//
// An .axd file is a UTF-16 encoded XML document produced by Anasys
// Instruments / Analysis Studio AFM-IR software. This package decodes the
// document tree and extracts the typed records the reconstruction stages
// consume: height-map channels and rendered-spectrum entries.
//
// # Usage
//
//	doc, err := axd.Open("scan.axd")
//	if err != nil {
//	    // handle error
//	}
//	if err := doc.Validate(); err != nil {
//	    // not a supported Analysis Studio document
//	}
//	for _, ch := range doc.Channels() {
//	    // reconstruct rasters from ch
//	}
//
// # Schema tolerance
//
// The channel schema is open: recognized elements (Position, Size,
// Resolution, Units, UnitPrefix, Tags, SampleBase64) are extracted into
// typed fields, and every other element is passed through into the
// channel's string metadata map. Missing or malformed fields never fail
// extraction; they resolve to documented defaults.
package axd
