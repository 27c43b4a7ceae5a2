package sed

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/quantity"
)

// Rest-frame reference wavelengths for attenuation measurements.
const (
	fuvAttenuationLam = 1500.0
	vAttenuationLam   = 5500.0
)

// TransmissionBetween returns the wavelength-dependent transmission
// attenuated/intrinsic for the first (or only) spectrum of each Sed. The
// wavelength grids must be identical.
func TransmissionBetween(intrinsic, attenuated *Sed) (quantity.Array, error) {
	if !equalGrids(intrinsic.lam, attenuated.lam) {
		return quantity.Array{}, fmt.Errorf("%w: wavelength grids of input spectra must be the same",
			ErrInconsistentArguments)
	}

	out := make([]float64, len(intrinsic.lam))
	for i := range out {
		out[i] = attenuated.lnu[0][i] / intrinsic.lnu[0][i]
	}

	return quantity.Array{Values: out, Unit: quantity.Dimensionless}, nil
}

// AttenuationBetween returns the wavelength-dependent attenuation in
// magnitudes, -2.5*log10(transmission).
func AttenuationBetween(intrinsic, attenuated *Sed) (quantity.Array, error) {
	trans, err := TransmissionBetween(intrinsic, attenuated)
	if err != nil {
		return quantity.Array{}, err
	}

	for i, t := range trans.Values {
		trans.Values[i] = -2.5 * math.Log10(t)
	}

	return trans, nil
}

// AttenuationAtLam returns the attenuation in magnitudes linearly
// interpolated at a rest-frame wavelength (angstrom).
func AttenuationAtLam(lam float64, intrinsic, attenuated *Sed) (quantity.Scalar, error) {
	att, err := AttenuationBetween(intrinsic, attenuated)
	if err != nil {
		return quantity.Scalar{}, err
	}

	grid := intrinsic.lam
	if lam < grid[0] || lam > grid[len(grid)-1] {
		return quantity.Scalar{}, fmt.Errorf("%w: wavelength %g outside grid [%g, %g]",
			ErrInconsistentArguments, lam, grid[0], grid[len(grid)-1])
	}

	return quantity.NewScalar(interpAscending(grid, att.Values, lam), quantity.Dimensionless), nil
}

// AttenuationAt1500 returns the rest-frame FUV attenuation at 1500
// angstrom in magnitudes.
func AttenuationAt1500(intrinsic, attenuated *Sed) (quantity.Scalar, error) {
	return AttenuationAtLam(fuvAttenuationLam, intrinsic, attenuated)
}

// AttenuationAt5500 returns the rest-frame V-band attenuation at 5500
// angstrom in magnitudes.
func AttenuationAt5500(intrinsic, attenuated *Sed) (quantity.Scalar, error) {
	return AttenuationAtLam(vAttenuationLam, intrinsic, attenuated)
}
