package sed

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Smoothed returns a new Sed with every spectrum convolved with a
// normalised Gaussian line-spread function of standard deviation sigmaLam
// (angstrom). The kernel integrates to one, so the integrated luminosity
// is preserved away from the grid edges.
//
// The kernel is built in grid samples from the mean grid spacing; on a
// strongly non-uniform grid the effective width varies accordingly.
// Caches and observed-frame state are not carried over.
func (s *Sed) Smoothed(sigmaLam float64) (*Sed, error) {
	if sigmaLam <= 0 || math.IsNaN(sigmaLam) {
		return nil, fmt.Errorf("%w: smoothing width must be positive", ErrInconsistentArguments)
	}

	n := len(s.lam)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least two samples to smooth", ErrInconsistentArguments)
	}

	meanStep := (s.lam[n-1] - s.lam[0]) / float64(n-1)
	sigma := sigmaLam / meanStep

	kernel := gaussianKernel(sigma)
	halfWidth := (len(kernel) - 1) / 2

	fftSize := nextPowerOf2(n + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("sed: failed to create FFT plan: %w", err)
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return nil, fmt.Errorf("sed: forward FFT failed: %w", err)
	}

	out := s.restCopy()

	rowPadded := make([]complex128, fftSize)
	rowFreq := make([]complex128, fftSize)
	resultTime := make([]complex128, fftSize)

	for r, row := range s.lnu {
		for i := range rowPadded {
			rowPadded[i] = 0
		}

		for i, v := range row {
			rowPadded[i] = complex(v, 0)
		}

		if err := plan.Forward(rowFreq, rowPadded); err != nil {
			return nil, fmt.Errorf("sed: forward FFT failed: %w", err)
		}

		for i := range rowFreq {
			rowFreq[i] *= kernelFreq[i]
		}

		if err := plan.Inverse(resultTime, rowFreq); err != nil {
			return nil, fmt.Errorf("sed: inverse FFT failed: %w", err)
		}

		smoothed := make([]float64, n)
		for i := range smoothed {
			// Centre of the linear convolution ("same" alignment).
			smoothed[i] = real(resultTime[i+halfWidth])
		}

		out.lnu[r] = smoothed
	}

	return out, nil
}

// gaussianKernel returns a normalised Gaussian sampled out to four
// standard deviations, in grid samples.
func gaussianKernel(sigma float64) []float64 {
	halfWidth := int(math.Ceil(4 * sigma))
	if halfWidth < 1 {
		halfWidth = 1
	}

	kernel := make([]float64, 2*halfWidth+1)
	sum := 0.0

	for i := range kernel {
		d := float64(i-halfWidth) / sigma
		kernel[i] = math.Exp(-0.5 * d * d)
		sum += kernel[i]
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
