package sed

import (
	"fmt"
	"log"
)

// ResampleOption configures Resampled.
type ResampleOption func(*resampleConfig)

type resampleConfig struct {
	factor int
	newLam []float64
}

// WithFactor rebins the wavelength grid by block-averaging consecutive
// groups of the given size. The grid length must be divisible by the
// factor.
func WithFactor(factor int) ResampleOption {
	return func(cfg *resampleConfig) {
		cfg.factor = factor
	}
}

// WithNewLam resamples onto an explicit wavelength grid.
func WithNewLam(lam []float64) ResampleOption {
	return func(cfg *resampleConfig) {
		cfg.newLam = lam
	}
}

// Resampled returns a new Sed with the spectra mapped onto a new
// wavelength grid using flux-conserving resampling. Exactly one of
// WithFactor and WithNewLam should be given; with both, the explicit grid
// wins and the factor is ignored with a warning. Flux densities, when
// present, are resampled on the observed-frame grids and carried over
// with the redshift.
//
// New bins falling outside the original grid coverage receive zero.
func (s *Sed) Resampled(opts ...ResampleOption) (*Sed, error) {
	var cfg resampleConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.factor == 0 && cfg.newLam == nil {
		return nil, fmt.Errorf("%w: either a resample factor or a new wavelength grid must be given",
			ErrInconsistentArguments)
	}

	if cfg.factor != 0 && cfg.newLam != nil {
		log.Printf("sed: got both a resample factor and a new wavelength grid, ignoring the factor")
	}

	newLam := cfg.newLam
	if newLam == nil {
		rebinned, err := rebinMean(s.lam, cfg.factor)
		if err != nil {
			return nil, err
		}

		newLam = rebinned
	}

	if err := validateGrid(newLam); err != nil {
		return nil, err
	}

	out := &Sed{
		lam:     copySlice(newLam),
		nu:      frequencies(newLam),
		lnu:     resampleRows(newLam, s.lam, s.lnu),
		batched: s.batched,
	}

	if s.fnu != nil {
		z := s.redshift

		out.redshift = z
		out.obslam = make([]float64, len(newLam))
		out.obsnu = make([]float64, len(newLam))

		for i := range newLam {
			out.obslam[i] = out.lam[i] * (1 + z)
			out.obsnu[i] = out.nu[i] / (1 + z)
		}

		out.fnu = resampleRows(out.obslam, s.obslam, s.fnu)
	}

	return out, nil
}

// rebinMean block-averages consecutive groups of factor elements.
func rebinMean(lam []float64, factor int) ([]float64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: resample factor must be >= 1, got %d", ErrInconsistentArguments, factor)
	}

	if len(lam)%factor != 0 {
		return nil, fmt.Errorf("%w: grid length %d is not divisible by resample factor %d",
			ErrInconsistentArguments, len(lam), factor)
	}

	out := make([]float64, len(lam)/factor)

	for i := range out {
		sum := 0.0
		for j := 0; j < factor; j++ {
			sum += lam[i*factor+j]
		}

		out[i] = sum / float64(factor)
	}

	return out, nil
}

// resampleRows maps each spectrum row from oldLam onto newLam conserving
// the integrated density: every new bin receives the overlap-weighted
// mean of the old bins it covers.
func resampleRows(newLam, oldLam []float64, rows [][]float64) [][]float64 {
	oldEdges := binEdges(oldLam)
	newEdges := binEdges(newLam)

	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = resampleRow(newEdges, oldEdges, row)
	}

	return out
}

// binEdges returns bin boundaries at the midpoints between samples, with
// the end bins extended symmetrically.
func binEdges(lam []float64) []float64 {
	n := len(lam)
	edges := make([]float64, n+1)

	if n == 1 {
		edges[0] = lam[0]
		edges[1] = lam[0]

		return edges
	}

	edges[0] = lam[0] - 0.5*(lam[1]-lam[0])
	edges[n] = lam[n-1] + 0.5*(lam[n-1]-lam[n-2])

	for i := 1; i < n; i++ {
		edges[i] = 0.5 * (lam[i-1] + lam[i])
	}

	return edges
}

func resampleRow(newEdges, oldEdges, y []float64) []float64 {
	out := make([]float64, len(newEdges)-1)

	j := 0

	for i := range out {
		lo := newEdges[i]
		hi := newEdges[i+1]

		// Skip old bins entirely below the new bin.
		for j < len(y) && oldEdges[j+1] <= lo {
			j++
		}

		var sum, width float64

		for k := j; k < len(y) && oldEdges[k] < hi; k++ {
			overlapLo := max(oldEdges[k], lo)
			overlapHi := min(oldEdges[k+1], hi)

			if overlapHi > overlapLo {
				sum += y[k] * (overlapHi - overlapLo)
				width += overlapHi - overlapLo
			}
		}

		// Bins with no coverage stay zero.
		if width > 0 {
			out[i] = sum / (hi - lo)
		}
	}

	return out
}
