// Package quantity provides unit-tagged scalar and array values for
// spectral computations.
//
// A value is a raw float64 (or slice) paired with a [Unit]. Units are
// grouped into kinds (wavelength, frequency, luminosity density, ...);
// arithmetic between values of different kinds fails, conversions within
// a kind are fixed multiplicative relations.
//
// Every package in this module stores raw values in the canonical unit of
// each kind (angstrom, Hz, erg/s/Hz, ...) and tags them on the way out:
//
//	lam := quantity.NewArray([]float64{1000, 2000}, quantity.Angstrom)
//	nm, _ := lam.To(quantity.Nanometre)
package quantity
