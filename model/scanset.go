package model

import "sort"

// RotatedIndexBase is added to a height map's primary index to key the
// rotated counterpart produced for oblique scan angles.
const RotatedIndexBase = 1000000

// ScanSet represents the complete result of importing one file: height
// maps keyed by index, their metadata maps, and spectrum collections.
type ScanSet struct {
	// HeightMaps holds rasters keyed by their 1-based position in the
	// source file. Oblique channels store a second raster at
	// RotatedIndexBase plus the primary index. Channels skipped during
	// import leave gaps in the index space.
	HeightMaps map[int]*HeightMap

	// Meta holds the string metadata map for each height map index. A
	// rotated raster shares the same map as its primary counterpart.
	Meta map[int]map[string]string

	// SpectrumSets holds spectrum collections in entry order. Index 0 is
	// the aggregate collection of every spectrum in the file; indices
	// 1..M hold one collection per rendered-spectrum entry.
	SpectrumSets []*SpectrumSet
}

// NewScanSet creates an empty import result.
func NewScanSet() *ScanSet {
	return &ScanSet{
		HeightMaps: make(map[int]*HeightMap),
		Meta:       make(map[int]map[string]string),
	}
}

// AddHeightMap stores a raster and its metadata under the given index.
func (s *ScanSet) AddHeightMap(index int, hm *HeightMap, meta map[string]string) {
	s.HeightMaps[index] = hm
	s.Meta[index] = meta
}

// HeightMap returns the raster stored at index, or nil.
func (s *ScanSet) HeightMap(index int) *HeightMap {
	return s.HeightMaps[index]
}

// Indices returns all height map indices in ascending order. Primary
// indices sort before all rotated ones.
func (s *ScanSet) Indices() []int {
	out := make([]int, 0, len(s.HeightMaps))
	for idx := range s.HeightMaps {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// ImageCount returns the number of primary height maps, not counting
// rotated counterparts.
func (s *ScanSet) ImageCount() int {
	n := 0
	for idx := range s.HeightMaps {
		if idx < RotatedIndexBase {
			n++
		}
	}
	return n
}

// Aggregate returns the aggregate spectrum collection, or nil if the
// file contained no spectra.
func (s *ScanSet) Aggregate() *SpectrumSet {
	if len(s.SpectrumSets) == 0 {
		return nil
	}
	return s.SpectrumSets[0]
}
