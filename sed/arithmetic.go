package sed

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Add returns a new Sed with elementwise-summed spectra. The wavelength
// grids must agree in their first and last elements and the batch
// dimensions must match. If both operands carry flux densities those are
// summed too, with the receiver's observed-frame metadata carried over.
func (s *Sed) Add(other *Sed) (*Sed, error) {
	n := len(s.lam)

	if len(other.lam) != n || s.lam[0] != other.lam[0] || s.lam[n-1] != other.lam[n-1] {
		return nil, fmt.Errorf("%w: wavelength grids must be identical (%g -> %g with %d points != %g -> %g with %d points)",
			ErrInconsistentAddition,
			s.lam[0], s.lam[n-1], n,
			other.lam[0], other.lam[len(other.lam)-1], len(other.lam))
	}

	if s.batched != other.batched || len(s.lnu) != len(other.lnu) {
		return nil, fmt.Errorf("%w: spectra must have the same dimensions (%d != %d rows)",
			ErrInconsistentAddition, len(s.lnu), len(other.lnu))
	}

	out := &Sed{
		lam:     copySlice(s.lam),
		nu:      copySlice(s.nu),
		lnu:     make([][]float64, len(s.lnu)),
		batched: s.batched,
	}

	for i := range s.lnu {
		row := make([]float64, n)
		vecmath.AddBlock(row, s.lnu[i], other.lnu[i])
		out.lnu[i] = row
	}

	if s.fnu != nil && other.fnu != nil {
		out.fnu = make([][]float64, len(s.fnu))
		for i := range s.fnu {
			row := make([]float64, n)
			vecmath.AddBlock(row, s.fnu[i], other.fnu[i])
			out.fnu[i] = row
		}

		out.obslam = copySlice(s.obslam)
		out.obsnu = copySlice(s.obsnu)
		out.redshift = s.redshift
	}

	return out, nil
}

// SumSeds folds Add over a sequence of Seds. It is the summation
// counterpart of the zero identity: one operand is returned unchanged.
func SumSeds(seds ...*Sed) (*Sed, error) {
	if len(seds) == 0 {
		return nil, fmt.Errorf("%w: no seds to sum", ErrInconsistentArguments)
	}

	total := seds[0]

	for _, s := range seds[1:] {
		var err error

		total, err = total.Add(s)
		if err != nil {
			return nil, err
		}
	}

	return total, nil
}

// Scale returns a new Sed with lnu multiplied by a scalar. Flux densities
// are not carried over; call Observe on the result to recompute them.
func (s *Sed) Scale(factor float64) *Sed {
	out := &Sed{
		lam:     copySlice(s.lam),
		nu:      copySlice(s.nu),
		lnu:     make([][]float64, len(s.lnu)),
		batched: s.batched,
	}

	for i, row := range s.lnu {
		scaled := make([]float64, len(row))
		vecmath.ScaleBlock(scaled, row, factor)
		out.lnu[i] = scaled
	}

	return out
}

// ScaleRows returns a new Sed with each spectrum row scaled by its own
// factor. Only valid for batched Seds with one factor per row.
func (s *Sed) ScaleRows(factors []float64) (*Sed, error) {
	if !s.batched {
		return nil, fmt.Errorf("%w: per-spectrum scaling requires a batched Sed", ErrInconsistentArguments)
	}

	if len(factors) != len(s.lnu) {
		return nil, fmt.Errorf("%w: %d factors for %d spectra", ErrInconsistentArguments, len(factors), len(s.lnu))
	}

	out := &Sed{
		lam:     copySlice(s.lam),
		nu:      copySlice(s.nu),
		lnu:     make([][]float64, len(s.lnu)),
		batched: true,
	}

	for i, row := range s.lnu {
		scaled := make([]float64, len(row))
		vecmath.ScaleBlock(scaled, row, factors[i])
		out.lnu[i] = scaled
	}

	return out, nil
}

// Concat stacks the spectra of the receiver and the given Seds along the
// leading axis, promoting single spectra to one-row batches. Unlike Add
// this requires exact elementwise grid equality. The result's grid is the
// receiver's and it carries no observed-frame state.
func (s *Sed) Concat(others ...*Sed) (*Sed, error) {
	rows := copyRows(s.lnu)

	for _, other := range others {
		if !equalGrids(s.lam, other.lam) {
			return nil, fmt.Errorf("%w: wavelength grids must be identical", ErrInconsistentAddition)
		}

		rows = append(rows, copyRows(other.lnu)...)
	}

	return &Sed{
		lam:     copySlice(s.lam),
		nu:      copySlice(s.nu),
		lnu:     rows,
		batched: true,
	}, nil
}

// Combine folds Concat over a list of Seds, producing one batched Sed
// with one row per input spectrum.
func Combine(seds []*Sed) (*Sed, error) {
	if len(seds) == 0 {
		return nil, fmt.Errorf("%w: no seds to combine", ErrInconsistentArguments)
	}

	return seds[0].Concat(seds[1:]...)
}

// Sum collapses a batched Sed to a single spectrum by summing over the
// leading axis. Flux densities, when present, are summed too and keep the
// original redshift and observed-frame grids. A single-spectrum Sed is
// returned unchanged.
func (s *Sed) Sum() *Sed {
	if !s.batched {
		return s
	}

	out := &Sed{
		lam: copySlice(s.lam),
		nu:  copySlice(s.nu),
		lnu: [][]float64{sumRows(s.lnu)},
	}

	if s.fnu != nil {
		out.fnu = [][]float64{sumRows(s.fnu)}
		out.obslam = copySlice(s.obslam)
		out.obsnu = copySlice(s.obsnu)
		out.redshift = s.redshift
	}

	return out
}

func sumRows(rows [][]float64) []float64 {
	total := make([]float64, len(rows[0]))
	for _, row := range rows {
		vecmath.AddBlockInPlace(total, row)
	}

	return total
}
