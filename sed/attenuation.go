package sed

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// DustCurve is the attenuation-law collaborator. Transmission returns one
// dimensionless row per tau value (a single row for a scalar tau), each
// matching the wavelength grid length.
type DustCurve interface {
	Transmission(tauV []float64, lam []float64) [][]float64
}

// AttenuationOption configures ApplyAttenuation.
type AttenuationOption func(*attenuationConfig)

type attenuationConfig struct {
	mask []bool
}

// WithMask restricts the attenuation to the spectrum rows whose mask
// entry is true. Only valid for batched Seds with one entry per row.
func WithMask(mask []bool) AttenuationOption {
	return func(cfg *attenuationConfig) {
		cfg.mask = mask
	}
}

// ApplyAttenuation returns a new Sed with the rest-frame spectra
// multiplied by the dust transmission derived from tauV and the curve.
// A single tau value applies to every spectrum; multiple values require a
// batched Sed with one tau per row. Masks likewise require a batched Sed
// with one entry per row; masked-out rows pass through unattenuated.
//
// The receiver's spectra are never mutated. Observed-frame state is not
// carried over; recompute fluxes on the result.
func (s *Sed) ApplyAttenuation(tauV []float64, curve DustCurve, opts ...AttenuationOption) (*Sed, error) {
	var cfg attenuationConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(tauV) == 0 {
		return nil, fmt.Errorf("%w: no tau values given", ErrInconsistentArguments)
	}

	if cfg.mask != nil {
		if !s.batched {
			return nil, fmt.Errorf("%w: masks are only applicable for Seds containing multiple spectra",
				ErrInconsistentArguments)
		}

		if len(cfg.mask) != len(s.lnu) {
			return nil, fmt.Errorf("%w: mask and spectra are incompatible shapes (%d entries for %d spectra)",
				ErrInconsistentArguments, len(cfg.mask), len(s.lnu))
		}
	}

	if len(tauV) > 1 {
		if !s.batched {
			return nil, fmt.Errorf("%w: arrays of tau values are only applicable for Seds containing multiple spectra",
				ErrInconsistentArguments)
		}

		if len(tauV) != len(s.lnu) {
			return nil, fmt.Errorf("%w: tau values and spectra are incompatible shapes (%d values for %d spectra)",
				ErrInconsistentArguments, len(tauV), len(s.lnu))
		}
	}

	trans := curve.Transmission(tauV, copySlice(s.lam))
	if len(trans) != len(tauV) {
		return nil, fmt.Errorf("%w: dust curve returned %d transmission rows for %d tau values",
			ErrShapeMismatch, len(trans), len(tauV))
	}

	for _, row := range trans {
		if len(row) != len(s.lam) {
			return nil, fmt.Errorf("%w: dust curve transmission length %d != grid length %d",
				ErrShapeMismatch, len(row), len(s.lam))
		}
	}

	out := s.restCopy()

	for i, row := range out.lnu {
		if cfg.mask != nil && !cfg.mask[i] {
			continue
		}

		t := trans[0]
		if len(trans) > 1 {
			t = trans[i]
		}

		vecmath.MulBlockInPlace(row, t)
	}

	return out, nil
}
