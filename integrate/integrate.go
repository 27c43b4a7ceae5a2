// Package integrate provides numerical integration over the last axis of
// sampled spectra.
//
// The integrand is given as samples y on a shared, monotonic grid x.
// Batched spectra are integrated row by row, optionally fanned out over
// goroutines. The thread count is a performance hint only; results are
// identical for any setting.
package integrate

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

var (
	// ErrUnrecognisedMethod indicates an integration method outside the
	// allowed set.
	ErrUnrecognisedMethod = errors.New("integrate: unrecognised integration method")
	// ErrShapeMismatch indicates x and y sample counts differ.
	ErrShapeMismatch = errors.New("integrate: x and y lengths differ")
	// ErrTooFewSamples indicates fewer than two samples.
	ErrTooFewSamples = errors.New("integrate: need at least two samples")
)

// Method selects the quadrature rule.
type Method int

const (
	// Trapezoid is the composite trapezoid rule.
	Trapezoid Method = iota
	// Simpson is the composite Simpson rule on interval pairs, with a
	// trapezoid segment closing an odd interval count.
	Simpson
)

// ParseMethod maps the conventional method names onto a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "trapz":
		return Trapezoid, nil
	case "simps":
		return Simpson, nil
	default:
		return 0, fmt.Errorf("%w: %q (options are 'trapz' and 'simps')", ErrUnrecognisedMethod, name)
	}
}

type config struct {
	method  Method
	threads int
}

// Option configures an integration call.
type Option func(*config)

// WithMethod selects the quadrature rule. Default is Trapezoid.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithThreads hints how many goroutines Rows may use. Values <= 0 select
// all available CPUs. Default is 1 (serial).
func WithThreads(n int) Option {
	return func(cfg *config) {
		cfg.threads = n
	}
}

func applyOptions(opts []Option) config {
	cfg := config{method: Trapezoid, threads: 1}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.threads <= 0 {
		cfg.threads = runtime.NumCPU()
	}

	return cfg
}

// LastAxis integrates y over x.
//
// x may be ascending or descending; a descending grid yields the
// sign-flipped integral, which callers integrating over a
// frequency-ordered grid exploit instead of reversing arrays.
func LastAxis(x, y []float64, opts ...Option) (float64, error) {
	cfg := applyOptions(opts)

	if err := validate(x, y); err != nil {
		return 0, err
	}

	switch cfg.method {
	case Simpson:
		return simpson(x, y), nil
	default:
		return vecmath.DotProduct(trapezoidWeights(x), y), nil
	}
}

// Rows integrates each row of rows over the shared grid x.
func Rows(x []float64, rows [][]float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)

	for _, row := range rows {
		if err := validate(x, row); err != nil {
			return nil, err
		}
	}

	out := make([]float64, len(rows))

	integrateRow := func(i int, w []float64) {
		if cfg.method == Simpson {
			out[i] = simpson(x, rows[i])
			return
		}

		out[i] = vecmath.DotProduct(w, rows[i])
	}

	var weights []float64
	if cfg.method != Simpson {
		weights = trapezoidWeights(x)
	}

	if cfg.threads <= 1 || len(rows) <= 1 {
		for i := range rows {
			integrateRow(i, weights)
		}

		return out, nil
	}

	var wg sync.WaitGroup

	chunk := (len(rows) + cfg.threads - 1) / cfg.threads
	for lo := 0; lo < len(rows); lo += chunk {
		hi := min(lo+chunk, len(rows))

		wg.Add(1)

		go func(lo, hi int) {
			defer wg.Done()

			for i := lo; i < hi; i++ {
				integrateRow(i, weights)
			}
		}(lo, hi)
	}

	wg.Wait()

	return out, nil
}

func validate(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrShapeMismatch, len(x), len(y))
	}

	if len(x) < 2 {
		return ErrTooFewSamples
	}

	return nil
}

// trapezoidWeights returns w such that sum(w[i]*y[i]) equals the composite
// trapezoid integral of y over x.
func trapezoidWeights(x []float64) []float64 {
	n := len(x)
	w := make([]float64, n)

	w[0] = 0.5 * (x[1] - x[0])
	w[n-1] = 0.5 * (x[n-1] - x[n-2])

	for i := 1; i < n-1; i++ {
		w[i] = 0.5 * (x[i+1] - x[i-1])
	}

	return w
}

// simpson evaluates the composite Simpson rule on a possibly non-uniform
// grid, pairing consecutive intervals. An odd final interval is closed
// with a trapezoid segment.
func simpson(x, y []float64) float64 {
	n := len(x)
	total := 0.0

	i := 0
	for ; i+2 < n; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		hsum := h0 + h1

		if h0 == 0 || h1 == 0 {
			continue
		}

		total += hsum / 6 * (y[i]*(2-h1/h0) + y[i+1]*hsum*hsum/(h0*h1) + y[i+2]*(2-h0/h1))
	}

	if i+1 < n {
		total += 0.5 * (x[i+1] - x[i]) * (y[i] + y[i+1])
	}

	return total
}
