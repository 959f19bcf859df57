package anasys

import (
	"github.com/tsawler/anasys/axd"
	"github.com/tsawler/anasys/model"
	"github.com/tsawler/anasys/raster"
)

// Importer provides a fluent interface for importing .axd scan files.
// Each configuration method returns a new Importer instance, making it
// safe for concurrent use and allowing method chaining.
type Importer struct {
	// Source
	filename string
	doc      *axd.Document

	// Configuration
	options ImportOptions

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a copy of the Importer with its own options and
// warning list.
func (im *Importer) clone() *Importer {
	return &Importer{
		filename: im.filename,
		doc:      im.doc,
		options:  im.options.clone(),
		warnings: append([]Warning(nil), im.warnings...),
	}
}

// GeometricObliqueOffsets returns an Importer that computes the
// un-rotated raster's offsets of an oblique channel with the same
// geometric rule as canonical angles. By default that raster keeps the
// fixed placeholder offsets Analysis Studio consumers expect.
func (im *Importer) GeometricObliqueOffsets() *Importer {
	out := im.clone()
	out.options.geometricObliqueOffsets = true
	return out
}

// Import parses, validates, and decodes the file. It returns the
// decoded scan set, any warnings for skipped channels or spectrum
// entries, and an error.
//
// The whole import fails with *axd.FileTypeError when the document's
// type or version is unsupported, and with axd.ErrNoData when no
// height-map channel decoded successfully; spectra alone are not
// sufficient. Individual bad channels or entries only produce warnings.
func (im *Importer) Import() (*model.ScanSet, []Warning, error) {
	run := im.clone()

	doc := run.doc
	if doc == nil {
		var err error
		doc, err = axd.Open(run.filename)
		if err != nil {
			return nil, run.warnings, err
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, run.warnings, err
	}

	set := model.NewScanSet()
	valid := run.importHeightMaps(doc, set)
	run.importSpectra(doc, set)

	if valid == 0 {
		return nil, run.warnings, axd.ErrNoData
	}
	return set, run.warnings, nil
}

// ScanSet is a convenience terminal that discards warnings.
func (im *Importer) ScanSet() (*model.ScanSet, error) {
	set, _, err := im.Import()
	return set, err
}

// importHeightMaps reconstructs every channel, storing results under
// the channel's 1-based position in the file. Skipped channels leave
// index gaps so that indices match sequential file order regardless of
// which channels decode. Returns the number of valid images.
func (im *Importer) importHeightMaps(doc *axd.Document, set *model.ScanSet) int {
	ropts := raster.Options{
		GeometricObliqueOffsets: im.options.geometricObliqueOffsets,
	}

	valid := 0
	for i, ch := range doc.Channels() {
		index := i + 1
		primary, rotated, err := raster.Reconstruct(ch, ropts)
		if err != nil {
			im.warn(sectionHeightMaps, index, err.Error())
			continue
		}
		set.AddHeightMap(index, primary, ch.Meta)
		if rotated != nil {
			set.AddHeightMap(model.RotatedIndexBase+index, rotated, ch.Meta)
		}
		valid++
	}
	return valid
}

func (im *Importer) warn(section string, index int, message string) {
	im.warnings = append(im.warnings, Warning{
		Section: section,
		Index:   index,
		Message: message,
	})
}
