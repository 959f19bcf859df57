package anasys

// ImportOptions holds configuration for an import.
type ImportOptions struct {
	// Offset handling for the un-rotated raster of oblique channels.
	geometricObliqueOffsets bool
}

// defaultOptions returns the default import options.
func defaultOptions() ImportOptions {
	return ImportOptions{
		geometricObliqueOffsets: false,
	}
}

// clone creates a copy of ImportOptions.
func (o ImportOptions) clone() ImportOptions {
	return ImportOptions{
		geometricObliqueOffsets: o.geometricObliqueOffsets,
	}
}
