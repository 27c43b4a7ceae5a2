package sed

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/photometry"
	"github.com/cwbudde/algo-sed/quantity"
)

// Sed is a spectral energy distribution: an ascending rest-frame
// wavelength grid (angstrom) with one or many spectral luminosity density
// rows (erg/s/Hz) sharing that grid.
//
// Observed-frame state (redshift, obslam, obsnu, fnu) is undefined until
// [Sed.Observe] or [Sed.ObserveAt10pc] populates it.
type Sed struct {
	lam []float64   // angstrom, strictly ascending
	nu  []float64   // Hz, descending (c/lam)
	lnu [][]float64 // rows x len(lam), erg/s/Hz

	// batched distinguishes a genuine multi-spectrum Sed from a single
	// spectrum stored as one row.
	batched bool

	redshift float64
	obslam   []float64   // angstrom
	obsnu    []float64   // Hz
	fnu      [][]float64 // erg/s/cm^2/Hz

	bolometric        []float64 // memoized, one per row
	photoLuminosities *photometry.Collection
	photoFluxes       *photometry.Collection
}

// Option configures Sed construction.
type Option func(*construction)

type construction struct {
	lnu     [][]float64
	batched bool
	set     bool
}

// WithLnu sets a single spectral luminosity density row (erg/s/Hz).
func WithLnu(lnu []float64) Option {
	return func(c *construction) {
		c.lnu = [][]float64{lnu}
		c.batched = false
		c.set = true
	}
}

// WithLnuRows sets a batched Sed holding one spectrum per row.
func WithLnuRows(rows [][]float64) Option {
	return func(c *construction) {
		c.lnu = rows
		c.batched = true
		c.set = true
	}
}

// New creates a Sed on the given wavelength grid. Without a WithLnu
// option the spectrum is zero-filled.
func New(lam []float64, opts ...Option) (*Sed, error) {
	if err := validateGrid(lam); err != nil {
		return nil, err
	}

	var c construction

	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	if !c.set {
		c.lnu = [][]float64{make([]float64, len(lam))}
	}

	if len(c.lnu) == 0 {
		return nil, fmt.Errorf("%w: no spectra rows", ErrShapeMismatch)
	}

	for _, row := range c.lnu {
		if len(row) != len(lam) {
			return nil, fmt.Errorf("%w: lnu row length %d != grid length %d",
				ErrShapeMismatch, len(row), len(lam))
		}
	}

	return &Sed{
		lam:     copySlice(lam),
		nu:      frequencies(lam),
		lnu:     copyRows(c.lnu),
		batched: c.batched,
	}, nil
}

func validateGrid(lam []float64) error {
	if len(lam) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidGrid)
	}

	for i, v := range lam {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: non-positive or non-finite wavelength at index %d", ErrInvalidGrid, i)
		}

		if i > 0 && v <= lam[i-1] {
			return fmt.Errorf("%w: not strictly ascending at index %d", ErrInvalidGrid, i)
		}
	}

	return nil
}

func frequencies(lam []float64) []float64 {
	nu := make([]float64, len(lam))
	for i, l := range lam {
		nu[i] = quantity.SpeedOfLightAngstromPerS / l
	}

	return nu
}

func copySlice(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

func copyRows(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = copySlice(row)
	}

	return out
}

func equalGrids(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Ndim returns 1 for a single spectrum and 2 for a batched Sed.
func (s *Sed) Ndim() int {
	if s.batched {
		return 2
	}

	return 1
}

// Shape returns (rows, nlam). Rows is 1 for a single-spectrum Sed.
func (s *Sed) Shape() (int, int) {
	return len(s.lnu), len(s.lam)
}

// Redshift returns the redshift set by Observe (0 until then).
func (s *Sed) Redshift() float64 {
	return s.redshift
}

// Lam returns the rest-frame wavelength grid.
func (s *Sed) Lam() quantity.Array {
	return quantity.NewArray(s.lam, quantity.Angstrom)
}

// Nu returns the rest-frame frequency grid (descending).
func (s *Sed) Nu() quantity.Array {
	return quantity.NewArray(s.nu, quantity.Hertz)
}

// Lnu returns the spectral luminosity density of the first (or only)
// spectrum. Batched Seds should use LnuAt or LnuRows.
func (s *Sed) Lnu() quantity.Array {
	return s.LnuAt(0)
}

// LnuAt returns spectrum row i.
func (s *Sed) LnuAt(i int) quantity.Array {
	return quantity.NewArray(s.lnu[i], quantity.ErgPerSPerHz)
}

// LnuRows returns a copy of all spectrum rows.
func (s *Sed) LnuRows() [][]float64 {
	return copyRows(s.lnu)
}

// Luminosity returns lnu*nu for the first (or only) spectrum.
func (s *Sed) Luminosity() quantity.Array {
	out := make([]float64, len(s.lam))
	for i := range out {
		out[i] = s.lnu[0][i] * s.nu[i]
	}

	return quantity.Array{Values: out, Unit: quantity.ErgPerS}
}

// Llam returns the per-wavelength luminosity density nu*lnu/lam for the
// first (or only) spectrum.
func (s *Sed) Llam() quantity.Array {
	return quantity.Array{Values: llamRow(s.lam, s.lnu[0]), Unit: quantity.ErgPerSPerAngstrom}
}

func llamRow(lam, lnu []float64) []float64 {
	out := make([]float64, len(lam))
	for i := range out {
		// nu*lnu/lam with nu = c/lam.
		out[i] = lnu[i] * quantity.SpeedOfLightAngstromPerS / (lam[i] * lam[i])
	}

	return out
}

// HasFnu reports whether observed-frame state has been computed.
func (s *Sed) HasFnu() bool {
	return s.fnu != nil
}

// ObsLam returns the observed-frame wavelength grid.
func (s *Sed) ObsLam() (quantity.Array, error) {
	if s.obslam == nil {
		return quantity.Array{}, ErrMissingFnu
	}

	return quantity.NewArray(s.obslam, quantity.Angstrom), nil
}

// ObsNu returns the observed-frame frequency grid.
func (s *Sed) ObsNu() (quantity.Array, error) {
	if s.obsnu == nil {
		return quantity.Array{}, ErrMissingFnu
	}

	return quantity.NewArray(s.obsnu, quantity.Hertz), nil
}

// Fnu returns the spectral flux density of the first (or only) spectrum.
func (s *Sed) Fnu() (quantity.Array, error) {
	if s.fnu == nil {
		return quantity.Array{}, ErrMissingFnu
	}

	return quantity.NewArray(s.fnu[0], quantity.ErgPerSPerCm2PerHz), nil
}

// FnuRows returns a copy of all flux density rows.
func (s *Sed) FnuRows() ([][]float64, error) {
	if s.fnu == nil {
		return nil, ErrMissingFnu
	}

	return copyRows(s.fnu), nil
}

// Flux returns fnu*obsnu for the first (or only) spectrum.
func (s *Sed) Flux() (quantity.Array, error) {
	if s.fnu == nil {
		return quantity.Array{}, ErrMissingFnu
	}

	out := make([]float64, len(s.lam))
	for i := range out {
		out[i] = s.fnu[0][i] * s.obsnu[i]
	}

	return quantity.Array{Values: out, Unit: quantity.ErgPerSPerCm2}, nil
}

// LnuAtLam returns the spectral luminosity density linearly interpolated
// at a rest-frame wavelength (angstrom), per spectrum row.
func (s *Sed) LnuAtLam(lam float64) (quantity.Array, error) {
	if lam < s.lam[0] || lam > s.lam[len(s.lam)-1] {
		return quantity.Array{}, fmt.Errorf("%w: wavelength %g outside grid [%g, %g]",
			ErrInconsistentArguments, lam, s.lam[0], s.lam[len(s.lam)-1])
	}

	out := make([]float64, len(s.lnu))
	for i, row := range s.lnu {
		out[i] = interpAscending(s.lam, row, lam)
	}

	return quantity.Array{Values: out, Unit: quantity.ErgPerSPerHz}, nil
}

// LnuAtNu returns the spectral luminosity density linearly interpolated
// at a rest-frame frequency (Hz), per spectrum row.
func (s *Sed) LnuAtNu(nu float64) (quantity.Array, error) {
	return s.LnuAtLam(quantity.SpeedOfLightAngstromPerS / nu)
}

// interpAscending linearly interpolates y at xq on an ascending grid x.
// xq must lie within the grid.
func interpAscending(x, y []float64, xq float64) float64 {
	lo, hi := 0, len(x)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x[mid] <= xq {
			lo = mid
		} else {
			hi = mid
		}
	}

	if x[hi] == x[lo] {
		return y[lo]
	}

	frac := (xq - x[lo]) / (x[hi] - x[lo])

	return y[lo] + frac*(y[hi]-y[lo])
}

// restCopy copies the rest-frame state only. Transforms that change the
// spectra start from it so observed-frame state and caches never leak
// into a result they no longer describe.
func (s *Sed) restCopy() *Sed {
	return &Sed{
		lam:     copySlice(s.lam),
		nu:      copySlice(s.nu),
		lnu:     copyRows(s.lnu),
		batched: s.batched,
	}
}
