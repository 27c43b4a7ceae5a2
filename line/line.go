package line

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-sed/quantity"
	"github.com/cwbudde/algo-sed/sed"
)

// Line is an emission line built from one or more constituent
// transitions. Wavelength and continuum are means over the constituents,
// luminosity is their sum.
type Line struct {
	ids          []string
	wavelengths  []float64 // angstrom
	luminosities []float64 // erg/s
	continua     []float64 // erg/s/Hz

	hasFlux       bool
	redshift      float64
	flux          float64 // erg/s/cm^2
	obsWavelength float64 // angstrom
}

// New creates a Line from constituent transitions. All slices must have
// the same non-zero length; a single transition uses length-1 slices.
func New(ids []string, wavelengths, luminosities, continua []float64) (*Line, error) {
	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("%w: no constituent transitions", ErrInconsistentArguments)
	}

	if len(wavelengths) != n || len(luminosities) != n || len(continua) != n {
		return nil, fmt.Errorf("%w: %d ids with %d wavelengths, %d luminosities, %d continua",
			ErrInconsistentArguments, n, len(wavelengths), len(luminosities), len(continua))
	}

	return &Line{
		ids:          copyStrings(ids),
		wavelengths:  copyFloats(wavelengths),
		luminosities: copyFloats(luminosities),
		continua:     copyFloats(continua),
	}, nil
}

// ID returns the composite id, constituents joined with ",".
func (l *Line) ID() string {
	return strings.Join(l.ids, ",")
}

// IDs returns the constituent transition ids.
func (l *Line) IDs() []string {
	return copyStrings(l.ids)
}

// Wavelength returns the mean constituent wavelength.
func (l *Line) Wavelength() quantity.Scalar {
	return quantity.NewScalar(mean(l.wavelengths), quantity.Angstrom)
}

// Luminosity returns the summed constituent luminosity.
func (l *Line) Luminosity() quantity.Scalar {
	return quantity.NewScalar(sum(l.luminosities), quantity.ErgPerS)
}

// Continuum returns the mean continuum spectral density at the line.
func (l *Line) Continuum() quantity.Scalar {
	return quantity.NewScalar(mean(l.continua), quantity.ErgPerSPerHz)
}

// ContinuumLlam returns the continuum density per wavelength,
// continuum * c / lam^2.
func (l *Line) ContinuumLlam() quantity.Scalar {
	lam := mean(l.wavelengths)
	cont := mean(l.continua) * quantity.SpeedOfLightAngstromPerS / (lam * lam)

	return quantity.NewScalar(cont, quantity.ErgPerSPerAngstrom)
}

// EquivalentWidth returns luminosity / continuum_lam in angstrom.
func (l *Line) EquivalentWidth() quantity.Scalar {
	return quantity.NewScalar(sum(l.luminosities)/l.ContinuumLlam().Value, quantity.Angstrom)
}

// Add returns a new Line with constituent luminosities and continua
// summed elementwise. The ids of both lines must match.
func (l *Line) Add(other *Line) (*Line, error) {
	if l.ID() != other.ID() {
		return nil, fmt.Errorf("%w: ids differ (%q != %q)", ErrInconsistentAddition, l.ID(), other.ID())
	}

	out := &Line{
		ids:          copyStrings(l.ids),
		wavelengths:  copyFloats(l.wavelengths),
		luminosities: make([]float64, len(l.luminosities)),
		continua:     make([]float64, len(l.continua)),
	}

	for i := range l.luminosities {
		out.luminosities[i] = l.luminosities[i] + other.luminosities[i]
		out.continua[i] = l.continua[i] + other.continua[i]
	}

	return out, nil
}

// Scale returns a new Line with luminosities and continua multiplied by
// a scalar. Cached fluxes are not carried over.
func (l *Line) Scale(factor float64) *Line {
	out := &Line{
		ids:          copyStrings(l.ids),
		wavelengths:  copyFloats(l.wavelengths),
		luminosities: make([]float64, len(l.luminosities)),
		continua:     make([]float64, len(l.continua)),
	}

	for i := range l.luminosities {
		out.luminosities[i] = l.luminosities[i] * factor
		out.continua[i] = l.continua[i] * factor
	}

	return out
}

// Flux returns the observed line flux luminosity/(4*pi*D_L^2) at
// redshift z. A redshift of exactly zero uses the 10 pc convention, like
// Sed. The flux and observed wavelength are cached per redshift.
func (l *Line) Flux(cosmo sed.Cosmology, z float64) (quantity.Scalar, error) {
	if z < 0 {
		return quantity.Scalar{}, fmt.Errorf("%w: negative redshift %g", ErrInconsistentArguments, z)
	}

	if l.hasFlux && l.redshift == z {
		return quantity.NewScalar(l.flux, quantity.ErgPerSPerCm2), nil
	}

	area := quantity.TenParsecAreaCm2()
	if z > 0 {
		area = quantity.SphereAreaCm2(cosmo.LuminosityDistanceCM(z))
	}

	l.hasFlux = true
	l.redshift = z
	l.flux = sum(l.luminosities) / area
	l.obsWavelength = mean(l.wavelengths) * (1 + z)

	return quantity.NewScalar(l.flux, quantity.ErgPerSPerCm2), nil
}

// ObservedWavelength returns the redshifted wavelength set by Flux.
func (l *Line) ObservedWavelength() (quantity.Scalar, error) {
	if !l.hasFlux {
		return quantity.Scalar{}, ErrMissingFlux
	}

	return quantity.NewScalar(l.obsWavelength, quantity.Angstrom), nil
}

func copyStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)

	return out
}

func copyFloats(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

func sum(x []float64) float64 {
	var total float64
	for _, v := range x {
		total += v
	}

	return total
}

func mean(x []float64) float64 {
	return sum(x) / float64(len(x))
}
