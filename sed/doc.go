// Package sed models spectral energy distributions.
//
// A [Sed] pairs an ascending rest-frame wavelength grid with one or many
// spectral luminosity density rows sharing that grid. Transforms (Add,
// Scale, Concat, Sum, ApplyAttenuation, Resampled, Smoothed) are
// functional: they return a new Sed and never mutate the receiver. The
// only receiver mutations are the documented caches populated by
// [Sed.Observe], [Sed.ObserveAt10pc], [Sed.BolometricLuminosity],
// [Sed.PhotoLuminosities] and [Sed.PhotoFluxes].
//
// Measurements integrate over frequency. Because the grid is
// wavelength-ascending the frequency axis is descending, so integrals
// pick up a sign that the measurement methods flip instead of reversing
// arrays.
//
// Common workflow:
//
//	s, _ := sed.New(lam, sed.WithLnu(lnu))
//	att, _ := s.ApplyAttenuation([]float64{0.7}, curve)
//	_ = att.Observe(cosmo, 2.0)
//	phot, _ := att.PhotoFluxes(filters)
package sed
