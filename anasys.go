// Package anasys imports Anasys Instruments / Analysis Studio XML scan
// data (.axd files): AFM height-map rasters with physical calibration
// and infrared spectrum collections.
//
// Basic usage:
//
//	set, warnings, err := anasys.Open("scan.axd").Import()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", anasys.FormatWarnings(warnings))
//	}
//
// With options:
//
//	set, _, err := anasys.Open("scan.axd").
//	    GeometricObliqueOffsets().
//	    Import()
//
// For advanced use cases, the lower-level axd package is also available.
package anasys

import (
	"github.com/tsawler/anasys/axd"
)

// Open prepares an .axd file for import and returns an Importer for
// fluent configuration. The file is not read until a terminal operation
// such as Import is called.
//
// Example:
//
//	set, warnings, err := anasys.Open("scan.axd").Import()
func Open(filename string) *Importer {
	return &Importer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Importer from an already-parsed axd.Document.
// This is useful when the document was obtained from a non-file source
// or when detection and parsing are handled separately.
func FromDocument(doc *axd.Document) *Importer {
	return &Importer{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	set := anasys.Must(anasys.Open("scan.axd").ScanSet())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
