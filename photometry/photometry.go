// Package photometry holds broadband photometry derived from spectra.
//
// A [Collection] maps filter codes to per-spectrum values and records
// whether it was built in the rest frame (luminosities) or the observed
// frame (fluxes). Collections are read-only once built and are rebuilt
// wholesale on recomputation.
package photometry

import "github.com/cwbudde/algo-sed/quantity"

// Frame marks which frame a collection was measured in.
type Frame int

const (
	// RestFrame photometry holds spectral luminosity densities.
	RestFrame Frame = iota
	// ObservedFrame photometry holds spectral flux densities.
	ObservedFrame
)

// String returns the frame label.
func (f Frame) String() string {
	if f == ObservedFrame {
		return "observed"
	}

	return "rest"
}

// Filter is the bandpass collaborator applied to a spectrum.
//
// Apply receives one spectrum row and the matching frequency grid and
// returns the filter-weighted spectral density.
type Filter interface {
	Code() string
	Lam() []float64
	Apply(spectrum, nu []float64) float64
	PivotLam() float64
}

// Entry is one filter's photometry, with one value per spectrum row.
// PivotLam positions the band on the spectral axis; observed-frame
// entries carry the redshifted pivot wavelength.
type Entry struct {
	Code     string
	PivotLam float64 // angstrom
	Values   quantity.Array
}

// Collection is an ordered, read-only mapping from filter code to
// photometry values.
type Collection struct {
	frame  Frame
	codes  []string
	values map[string]quantity.Array
	pivots map[string]float64
}

// New builds a collection from entries, preserving their order.
func New(frame Frame, entries ...Entry) *Collection {
	c := &Collection{
		frame:  frame,
		codes:  make([]string, 0, len(entries)),
		values: make(map[string]quantity.Array, len(entries)),
		pivots: make(map[string]float64, len(entries)),
	}

	for _, e := range entries {
		if _, ok := c.values[e.Code]; !ok {
			c.codes = append(c.codes, e.Code)
		}

		c.values[e.Code] = e.Values
		c.pivots[e.Code] = e.PivotLam
	}

	return c
}

// Frame reports whether the collection holds rest-frame luminosities or
// observed-frame fluxes.
func (c *Collection) Frame() Frame {
	return c.frame
}

// Len returns the number of filters.
func (c *Collection) Len() int {
	return len(c.codes)
}

// Codes returns the filter codes in insertion order.
func (c *Collection) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)

	return out
}

// Get returns the photometry for a filter code.
func (c *Collection) Get(code string) (quantity.Array, bool) {
	v, ok := c.values[code]
	return v, ok
}

// PivotLam returns the pivot wavelength recorded for a filter code.
func (c *Collection) PivotLam(code string) (quantity.Scalar, bool) {
	v, ok := c.pivots[code]
	return quantity.NewScalar(v, quantity.Angstrom), ok
}
