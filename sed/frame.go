package sed

import (
	"fmt"

	"github.com/cwbudde/algo-sed/quantity"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Cosmology supplies luminosity distances. Any cosmology implementation
// can be plugged in; the core only consumes the distance.
type Cosmology interface {
	// LuminosityDistanceCM returns the luminosity distance at redshift z
	// in centimetres.
	LuminosityDistanceCM(z float64) float64
}

// IGM models intergalactic-medium absorption. Transmission returns a
// dimensionless factor per observed wavelength; its length must match
// obslam.
type IGM interface {
	Transmission(z float64, obslam []float64) []float64
}

// FnuOption configures Observe.
type FnuOption func(*fnuConfig)

type fnuConfig struct {
	igm IGM
}

// WithIGM applies an intergalactic-medium transmission model to the
// computed flux densities. Ignored at redshift zero, where the 10 pc flux
// convention leaves no path length for IGM absorption.
func WithIGM(igm IGM) FnuOption {
	return func(cfg *fnuConfig) {
		cfg.igm = igm
	}
}

// ObserveAt10pc populates the observed-frame state using the IAU
// standard 10 pc convention: obslam = lam, obsnu = nu and
// fnu = lnu / (4*pi*(10 pc)^2). This is the zero-redshift flux, where a
// distance-based flux is undefined.
func (s *Sed) ObserveAt10pc() error {
	s.obslam = copySlice(s.lam)
	s.obsnu = copySlice(s.nu)
	s.fnu = scaleRowsBy(s.lnu, 1/quantity.TenParsecAreaCm2())

	return nil
}

// Observe populates the observed-frame state at redshift z: obslam
// scales by (1+z), obsnu by 1/(1+z) and fnu = lnu*(1+z) / (4*pi*D_L^2)
// with the luminosity distance D_L from the cosmology. A redshift of
// exactly zero delegates to ObserveAt10pc and ignores any IGM option.
func (s *Sed) Observe(cosmo Cosmology, z float64, opts ...FnuOption) error {
	if z < 0 {
		return fmt.Errorf("%w: negative redshift %g", ErrInconsistentArguments, z)
	}

	var cfg fnuConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if z == 0 {
		s.redshift = 0
		return s.ObserveAt10pc()
	}

	n := len(s.lam)

	obslam := make([]float64, n)
	obsnu := make([]float64, n)

	for i := range s.lam {
		obslam[i] = s.lam[i] * (1 + z)
		obsnu[i] = s.nu[i] / (1 + z)
	}

	area := quantity.SphereAreaCm2(cosmo.LuminosityDistanceCM(z))
	fnu := scaleRowsBy(s.lnu, (1+z)/area)

	if cfg.igm != nil {
		trans := cfg.igm.Transmission(z, copySlice(obslam))
		if len(trans) != n {
			return fmt.Errorf("%w: IGM transmission length %d != grid length %d",
				ErrShapeMismatch, len(trans), n)
		}

		for _, row := range fnu {
			vecmath.MulBlockInPlace(row, trans)
		}
	}

	// Commit only after every check passed; a failed call leaves the
	// receiver without observed-frame state.
	s.redshift = z
	s.obslam = obslam
	s.obsnu = obsnu
	s.fnu = fnu

	return nil
}

func scaleRowsBy(rows [][]float64, factor float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled := make([]float64, len(row))
		vecmath.ScaleBlock(scaled, row, factor)
		out[i] = scaled
	}

	return out
}
