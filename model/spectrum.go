package model

// Spectrum represents a single 1D spectrum on a linear x axis.
//
// The axis starts at XOffset and its declared total length is Length,
// so the per-sample spacing is Length divided by the sample count. The
// acquisition location is in meters.
type Spectrum struct {
	Samples []float64
	XOffset float64 // x-axis value of the first sample
	Length  float64 // declared axis length; spacing times sample count

	LocationX float64 // acquisition x coordinate in meters
	LocationY float64 // acquisition y coordinate in meters

	Title  string
	XLabel string
	YLabel string
}

// Spacing returns the x-axis distance between consecutive samples.
func (s *Spectrum) Spacing() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Length / float64(len(s.Samples))
}

// Wavenumber returns the x-axis value of sample i.
func (s *Spectrum) Wavenumber(i int) float64 {
	return s.XOffset + float64(i)*s.Spacing()
}

// SpectrumSet is an ordered, growable collection of spectra sharing one
// coordinate unit and x-axis label.
type SpectrumSet struct {
	Title     string
	CoordUnit string // unit of spectrum locations, normally "m"
	XLabel    string
	Spectra   []*Spectrum
}

// NewSpectrumSet creates an empty collection with meter coordinates.
func NewSpectrumSet(title string) *SpectrumSet {
	return &SpectrumSet{
		Title:     title,
		CoordUnit: "m",
		Spectra:   make([]*Spectrum, 0),
	}
}

// Add appends a spectrum to the collection.
func (ss *SpectrumSet) Add(s *Spectrum) {
	ss.Spectra = append(ss.Spectra, s)
}

// Count returns the number of spectra in the collection.
func (ss *SpectrumSet) Count() int {
	return len(ss.Spectra)
}
