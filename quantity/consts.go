package quantity

import "math"

// Physical constants in the canonical (cgs/angstrom) unit system.
const (
	// SpeedOfLightAngstromPerS is c in angstrom/s.
	SpeedOfLightAngstromPerS = 2.99792458e18
	// SpeedOfLightCmPerS is c in cm/s.
	SpeedOfLightCmPerS = 2.99792458e10
	// PlanckErgS is h in erg*s (equivalently erg/Hz).
	PlanckErgS = 6.62607015e-27
	// ParsecCm is one parsec in cm.
	ParsecCm = 3.0856775814913673e18
	// ErgPerEV is one electronvolt in erg.
	ErgPerEV = 1.602176634e-12
)

// TenParsecAreaCm2 returns 4*pi*(10 pc)^2 in cm^2, the IAU standard
// surface used for zero-redshift flux conventions.
func TenParsecAreaCm2() float64 {
	d := 10 * ParsecCm
	return 4 * math.Pi * d * d
}

// SphereAreaCm2 returns 4*pi*d^2 for a distance d in cm.
func SphereAreaCm2(distanceCm float64) float64 {
	return 4 * math.Pi * distanceCm * distanceCm
}
