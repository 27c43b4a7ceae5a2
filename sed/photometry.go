package sed

import (
	"log"
	"math"

	"github.com/cwbudde/algo-sed/photometry"
	"github.com/cwbudde/algo-sed/quantity"
)

// PhotoLuminosities applies the filters to the rest-frame spectra and
// returns a collection of spectral luminosity densities, one value per
// spectrum row per filter. The result is cached on the Sed; subsequent
// calls rebuild it.
func (s *Sed) PhotoLuminosities(filters []photometry.Filter) (*photometry.Collection, error) {
	entries := make([]photometry.Entry, len(filters))

	for i, f := range filters {
		warnFilterCoverage(f, s.lam)

		values := make([]float64, len(s.lnu))
		for r, row := range s.lnu {
			values[r] = f.Apply(row, s.nu)
		}

		entries[i] = photometry.Entry{
			Code:     f.Code(),
			PivotLam: f.PivotLam(),
			Values:   quantity.Array{Values: values, Unit: quantity.ErgPerSPerHz},
		}
	}

	s.photoLuminosities = photometry.New(photometry.RestFrame, entries...)

	return s.photoLuminosities, nil
}

// PhotoFluxes applies the filters to the observed-frame flux densities
// and returns a collection with one value per spectrum row per filter.
// Observe or ObserveAt10pc must have been called first. The result is
// cached on the Sed; subsequent calls rebuild it.
func (s *Sed) PhotoFluxes(filters []photometry.Filter) (*photometry.Collection, error) {
	if s.fnu == nil {
		return nil, ErrMissingFnu
	}

	entries := make([]photometry.Entry, len(filters))

	for i, f := range filters {
		warnFilterCoverage(f, s.obslam)

		values := make([]float64, len(s.fnu))
		for r, row := range s.fnu {
			values[r] = f.Apply(row, s.obsnu)
		}

		entries[i] = photometry.Entry{
			Code:     f.Code(),
			PivotLam: f.PivotLam() * (1 + s.redshift),
			Values:   quantity.Array{Values: values, Unit: quantity.ErgPerSPerCm2PerHz},
		}
	}

	s.photoFluxes = photometry.New(photometry.ObservedFrame, entries...)

	return s.photoFluxes, nil
}

// Colour returns the broadband colour 2.5*log10(flux2/flux1) per
// spectrum row from the cached observed-frame photometry. PhotoFluxes
// must have been called with both filter codes.
func (s *Sed) Colour(code1, code2 string) (quantity.Array, error) {
	if s.photoFluxes == nil {
		return quantity.Array{}, ErrMissingPhotometry
	}

	f1, ok1 := s.photoFluxes.Get(code1)
	f2, ok2 := s.photoFluxes.Get(code2)

	if !ok1 || !ok2 {
		return quantity.Array{}, ErrMissingPhotometry
	}

	out := make([]float64, f1.Len())
	for i := range out {
		out[i] = 2.5 * math.Log10(f2.Values[i]/f1.Values[i])
	}

	return quantity.Array{Values: out, Unit: quantity.Dimensionless}, nil
}

// warnFilterCoverage flags filters extending beyond the spectral grid;
// the filter-weighted value then misses part of the bandpass.
func warnFilterCoverage(f photometry.Filter, lam []float64) {
	flam := f.Lam()
	if len(flam) == 0 || len(lam) == 0 {
		return
	}

	if flam[0] < lam[0] || flam[len(flam)-1] > lam[len(lam)-1] {
		log.Printf("sed: filter %s extends beyond the wavelength grid [%g, %g]",
			f.Code(), lam[0], lam[len(lam)-1])
	}
}
