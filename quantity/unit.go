package quantity

import "errors"

var (
	// ErrIncompatibleUnits indicates arithmetic or conversion between
	// units of different kinds.
	ErrIncompatibleUnits = errors.New("quantity: incompatible units")
	// ErrShapeMismatch indicates elementwise arithmetic between arrays of
	// different lengths.
	ErrShapeMismatch = errors.New("quantity: array lengths differ")
)

// Kind is the physical category of a unit. Arithmetic is only defined
// between values of the same kind (or with dimensionless factors).
type Kind int

const (
	// KindDimensionless is a pure number.
	KindDimensionless Kind = iota
	// KindWavelength is a length along the spectral axis.
	KindWavelength
	// KindFrequency is a spectral frequency.
	KindFrequency
	// KindLuminosityDensityNu is luminosity per unit frequency.
	KindLuminosityDensityNu
	// KindLuminosityDensityLam is luminosity per unit wavelength.
	KindLuminosityDensityLam
	// KindLuminosity is an integrated luminosity.
	KindLuminosity
	// KindFluxDensityNu is flux per unit frequency.
	KindFluxDensityNu
	// KindFluxDensityLam is flux per unit wavelength.
	KindFluxDensityLam
	// KindFlux is an integrated flux.
	KindFlux
	// KindRate is a count per unit time (e.g. photons per second).
	KindRate
)

// Unit identifies a concrete unit within a kind.
type Unit int

const (
	// Dimensionless is the unit of pure numbers.
	Dimensionless Unit = iota

	// Angstrom is the canonical wavelength unit.
	Angstrom
	// Nanometre is 10 angstrom.
	Nanometre
	// Micron is 1e4 angstrom.
	Micron
	// Centimetre is 1e8 angstrom.
	Centimetre

	// Hertz is the canonical frequency unit.
	Hertz
	// Gigahertz is 1e9 Hz.
	Gigahertz

	// ErgPerSPerHz is the canonical spectral luminosity density unit.
	ErgPerSPerHz
	// WattPerHz is 1e7 erg/s/Hz.
	WattPerHz

	// ErgPerSPerAngstrom is the canonical per-wavelength luminosity
	// density unit.
	ErgPerSPerAngstrom

	// ErgPerS is the canonical luminosity unit.
	ErgPerS
	// Watt is 1e7 erg/s.
	Watt

	// ErgPerSPerCm2PerHz is the canonical spectral flux density unit.
	ErgPerSPerCm2PerHz
	// NanoJansky is 1e-32 erg/s/cm^2/Hz.
	NanoJansky

	// ErgPerSPerCm2PerAngstrom is the canonical per-wavelength flux
	// density unit.
	ErgPerSPerCm2PerAngstrom

	// ErgPerSPerCm2 is the canonical flux unit.
	ErgPerSPerCm2

	// PerSecond is the canonical rate unit.
	PerSecond
)

type unitInfo struct {
	kind   Kind
	factor float64 // multiplicative factor to the canonical unit
	name   string
}

var unitTable = map[Unit]unitInfo{
	Dimensionless:            {KindDimensionless, 1, ""},
	Angstrom:                 {KindWavelength, 1, "angstrom"},
	Nanometre:                {KindWavelength, 10, "nm"},
	Micron:                   {KindWavelength, 1e4, "um"},
	Centimetre:               {KindWavelength, 1e8, "cm"},
	Hertz:                    {KindFrequency, 1, "Hz"},
	Gigahertz:                {KindFrequency, 1e9, "GHz"},
	ErgPerSPerHz:             {KindLuminosityDensityNu, 1, "erg/s/Hz"},
	WattPerHz:                {KindLuminosityDensityNu, 1e7, "W/Hz"},
	ErgPerSPerAngstrom:       {KindLuminosityDensityLam, 1, "erg/s/angstrom"},
	ErgPerS:                  {KindLuminosity, 1, "erg/s"},
	Watt:                     {KindLuminosity, 1e7, "W"},
	ErgPerSPerCm2PerHz:       {KindFluxDensityNu, 1, "erg/s/cm^2/Hz"},
	NanoJansky:               {KindFluxDensityNu, 1e-32, "nJy"},
	ErgPerSPerCm2PerAngstrom: {KindFluxDensityLam, 1, "erg/s/cm^2/angstrom"},
	ErgPerSPerCm2:            {KindFlux, 1, "erg/s/cm^2"},
	PerSecond:                {KindRate, 1, "1/s"},
}

// Kind returns the physical category of u.
func (u Unit) Kind() Kind {
	return unitTable[u].kind
}

// String returns a short unit label.
func (u Unit) String() string {
	return unitTable[u].name
}

func (u Unit) factor() float64 {
	return unitTable[u].factor
}

// Canonical returns the canonical unit for kind k.
func Canonical(k Kind) Unit {
	switch k {
	case KindWavelength:
		return Angstrom
	case KindFrequency:
		return Hertz
	case KindLuminosityDensityNu:
		return ErgPerSPerHz
	case KindLuminosityDensityLam:
		return ErgPerSPerAngstrom
	case KindLuminosity:
		return ErgPerS
	case KindFluxDensityNu:
		return ErgPerSPerCm2PerHz
	case KindFluxDensityLam:
		return ErgPerSPerCm2PerAngstrom
	case KindFlux:
		return ErgPerSPerCm2
	case KindRate:
		return PerSecond
	default:
		return Dimensionless
	}
}

// convFactor returns the multiplicative factor taking values in `from`
// to values in `to`. Both units must share a kind.
func convFactor(from, to Unit) (float64, error) {
	if from.Kind() != to.Kind() {
		return 0, ErrIncompatibleUnits
	}

	return from.factor() / to.factor(), nil
}
