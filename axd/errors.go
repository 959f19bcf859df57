package axd

import (
	"errors"
	"fmt"
)

// DisplayName is the human-readable name of the file format, used in
// error messages.
const DisplayName = "Analysis Studio"

// ErrNoData indicates that a document produced no importable height-map
// images. Spectra alone do not make an import successful.
var ErrNoData = errors.New("axd: file contains no importable image data")

// FileTypeError indicates that a document's type or version does not
// match the supported Analysis Studio combination.
type FileTypeError struct {
	Name string // display name of the expected format
}

func (e *FileTypeError) Error() string {
	return fmt.Sprintf("axd: not a valid %s file", e.Name)
}

// SizeMismatchError indicates that a decoded binary payload does not
// have the exact byte length its sample count requires. The affected
// channel or spectrum entry is skipped; the import continues.
type SizeMismatchError struct {
	Expected int // required byte count
	Actual   int // decoded byte count
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("axd: sample payload is %d bytes, want %d", e.Actual, e.Expected)
}
