// Package testutil provides deterministic spectra for tests.
package testutil

import "math"

// LinearGrid returns n evenly spaced wavelengths from lo to hi inclusive.
func LinearGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

// LogGrid returns n logarithmically spaced wavelengths from lo to hi.
func LogGrid(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	step := (math.Log10(hi) - math.Log10(lo)) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, math.Log10(lo)+float64(i)*step)
	}

	return out
}

// FlatLnu returns a constant spectral density on the given grid.
func FlatLnu(lam []float64, value float64) []float64 {
	out := make([]float64, len(lam))
	for i := range out {
		out[i] = value
	}

	return out
}

// PowerLawLnu returns norm * (lam/lam[0])^alpha on the given grid.
func PowerLawLnu(lam []float64, alpha, norm float64) []float64 {
	out := make([]float64, len(lam))
	for i, l := range lam {
		out[i] = norm * math.Pow(l/lam[0], alpha)
	}

	return out
}

// GaussianLine returns a Gaussian emission feature of the given amplitude
// centred on center with standard deviation sigma, both in the grid's
// wavelength units.
func GaussianLine(lam []float64, center, sigma, amplitude float64) []float64 {
	out := make([]float64, len(lam))
	for i, l := range lam {
		d := (l - center) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}

	return out
}
