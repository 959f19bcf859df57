package anasys

import (
	"errors"

	"github.com/tsawler/anasys/axd"
	"github.com/tsawler/anasys/internal/samples"
	"github.com/tsawler/anasys/model"
)

// WavenumberLabel is the x-axis label applied to every imported
// spectrum. The markup form matches what Analysis Studio consumers
// display.
const WavenumberLabel = "Wavenumber (cm<sup>-1</sup>)"

// AllSpectraTitle is the title of the aggregate spectrum collection.
const AllSpectraTitle = "All Spectra"

// micrometer converts the source file's micrometer coordinates to
// meters.
const micrometer = 1e-6

var errEmptySpectrum = errors.New("spectrum entry has no data points")

// importSpectra builds one collection per rendered-spectrum entry plus
// the aggregate collection at index 0. Entries that fail to decode are
// skipped and reported as warnings; they appear in no collection.
func (im *Importer) importSpectra(doc *axd.Document, set *model.ScanSet) {
	if !doc.HasSpectra() {
		return
	}

	all := model.NewSpectrumSet(AllSpectraTitle)
	all.XLabel = WavenumberLabel
	sets := []*model.SpectrumSet{all}

	for i, entry := range doc.SpectrumEntries() {
		sp, err := buildSpectrum(entry)
		if err != nil {
			im.warn(sectionRenderedSpectra, i+1, err.Error())
			continue
		}

		own := model.NewSpectrumSet(entry.Label)
		own.XLabel = WavenumberLabel
		own.Add(sp)
		all.Add(sp)
		sets = append(sets, own)
	}

	set.SpectrumSets = sets
}

// buildSpectrum decodes one entry into a spectrum on a linear
// wavenumber axis. N points span start to end inclusive, so the
// per-sample spacing is (end-start)/(N-1); the declared axis length is
// spacing times N, preserving the storage convention downstream
// consumers expect.
func buildSpectrum(entry *axd.SpectrumEntry) (*model.Spectrum, error) {
	n := entry.DataPoints
	if n < 1 {
		return nil, errEmptySpectrum
	}

	data, err := samples.Decode(entry.SampleData, n)
	if err != nil {
		return nil, err
	}

	var spacing float64
	if n > 1 {
		spacing = (entry.EndWavenumber - entry.StartWavenumber) / float64(n-1)
	}

	return &model.Spectrum{
		Samples:   data,
		XOffset:   entry.StartWavenumber,
		Length:    spacing * float64(n),
		LocationX: entry.LocationX * micrometer,
		LocationY: entry.LocationY * micrometer,
		Title:     entry.Label,
		XLabel:    WavenumberLabel,
		YLabel:    entry.Channel,
	}, nil
}
