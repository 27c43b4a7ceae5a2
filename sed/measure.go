package sed

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sed/integrate"
	"github.com/cwbudde/algo-sed/quantity"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Window is a rest-frame wavelength interval in angstrom with exclusive
// bounds: a grid sample contributes only if Low < lam < High.
type Window struct {
	Low  float64
	High float64
}

// Standard measurement windows.
var (
	balmerBlueWindow  = Window{3400, 3600}
	balmerRedWindow   = Window{4150, 4250}
	bruzual83Blue     = Window{3750, 3950}
	bruzual83Red      = Window{4050, 4250}
	baloghBlue        = Window{3850, 3950}
	baloghRed         = Window{4000, 4100}
	defaultBetaWindow = []float64{1250, 3000}
)

// DefaultIonisationEnergyErg is the hydrogen ionisation energy (13.6 eV)
// in erg.
const DefaultIonisationEnergyErg = 13.6 * quantity.ErgPerEV

// mask returns the 0/1 transmission of the window on a grid.
func (w Window) mask(lam []float64) []float64 {
	out := make([]float64, len(lam))
	for i, l := range lam {
		if l > w.Low && l < w.High {
			out[i] = 1
		}
	}

	return out
}

// mean returns the window centre.
func (w Window) mean() float64 {
	return 0.5 * (w.Low + w.High)
}

// MeasureOption configures the measurement methods.
type MeasureOption func(*measureConfig)

type measureConfig struct {
	method  integrate.Method
	average bool
	threads int
}

// WithMethod selects the quadrature rule for integration-based
// measurements. Default is the trapezoid rule.
func WithMethod(m integrate.Method) MeasureOption {
	return func(cfg *measureConfig) {
		cfg.method = m
	}
}

// WithAverage computes WindowLnu as a transmission-weighted mean instead
// of a ratio of integrals. Only valid for WindowLnu and the measurements
// built on it.
func WithAverage() MeasureOption {
	return func(cfg *measureConfig) {
		cfg.average = true
	}
}

// WithThreads hints how many goroutines batched integrations may use.
func WithThreads(n int) MeasureOption {
	return func(cfg *measureConfig) {
		cfg.threads = n
	}
}

func applyMeasureOptions(opts []MeasureOption) measureConfig {
	cfg := measureConfig{method: integrate.Trapezoid, threads: 1}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (cfg measureConfig) integrateOptions() []integrate.Option {
	return []integrate.Option{
		integrate.WithMethod(cfg.method),
		integrate.WithThreads(cfg.threads),
	}
}

// BolometricLuminosity integrates lnu over all frequencies, one value per
// spectrum row. The result is memoized; repeated calls return the cached
// values regardless of options.
func (s *Sed) BolometricLuminosity(opts ...MeasureOption) (quantity.Array, error) {
	if s.bolometric != nil {
		return quantity.NewArray(s.bolometric, quantity.ErgPerS), nil
	}

	cfg := applyMeasureOptions(opts)
	if cfg.average {
		return quantity.Array{}, fmt.Errorf("%w: 'average' is not an integration method", ErrUnrecognisedOption)
	}

	// The grid is frequency-descending; flip the sign instead of
	// reversing the arrays.
	vals, err := integrate.Rows(s.nu, s.lnu, cfg.integrateOptions()...)
	if err != nil {
		return quantity.Array{}, err
	}

	negate(vals)

	s.bolometric = vals

	return quantity.NewArray(vals, quantity.ErgPerS), nil
}

// WindowLuminosity integrates lnu over frequency restricted to a
// wavelength window, yielding a luminosity per spectrum row.
func (s *Sed) WindowLuminosity(window Window, opts ...MeasureOption) (quantity.Array, error) {
	cfg := applyMeasureOptions(opts)
	if cfg.average {
		return quantity.Array{}, fmt.Errorf("%w: 'average' is not an integration method", ErrUnrecognisedOption)
	}

	trans := window.mask(s.lam)

	rows := make([][]float64, len(s.lnu))
	for i, row := range s.lnu {
		masked := make([]float64, len(row))
		vecmath.MulBlock(masked, row, trans)
		rows[i] = masked
	}

	vals, err := integrate.Rows(s.nu, rows, cfg.integrateOptions()...)
	if err != nil {
		return quantity.Array{}, err
	}

	negate(vals)

	return quantity.Array{Values: vals, Unit: quantity.ErgPerS}, nil
}

// WindowLnu measures the spectral luminosity density in a wavelength
// window, per spectrum row. With WithAverage it is the plain
// transmission-weighted mean of the samples; otherwise it is the
// transmission-weighted effective density
// (integral of lnu*T/nu dnu) / (integral of T/nu dnu).
func (s *Sed) WindowLnu(window Window, opts ...MeasureOption) (quantity.Array, error) {
	cfg := applyMeasureOptions(opts)
	trans := window.mask(s.lam)

	if cfg.average {
		total := vecmath.Sum(trans)

		out := make([]float64, len(s.lnu))
		for i, row := range s.lnu {
			out[i] = vecmath.DotProduct(row, trans) / total
		}

		return quantity.Array{Values: out, Unit: quantity.ErgPerSPerHz}, nil
	}

	// T/nu integrand shared by all rows.
	transOverNu := make([]float64, len(trans))
	for i := range trans {
		transOverNu[i] = trans[i] / s.nu[i]
	}

	denom, err := integrate.LastAxis(s.nu, transOverNu, cfg.integrateOptions()...)
	if err != nil {
		return quantity.Array{}, err
	}

	rows := make([][]float64, len(s.lnu))
	for i, row := range s.lnu {
		weighted := make([]float64, len(row))
		vecmath.MulBlock(weighted, row, transOverNu)
		rows[i] = weighted
	}

	nums, err := integrate.Rows(s.nu, rows, cfg.integrateOptions()...)
	if err != nil {
		return quantity.Array{}, err
	}

	out := make([]float64, len(nums))
	for i, num := range nums {
		// Both integrals carry the descending-frequency sign; it cancels.
		out[i] = num / denom
	}

	return quantity.Array{Values: out, Unit: quantity.ErgPerSPerHz}, nil
}

// Break measures a spectral break as the ratio of the window densities
// red/blue, per spectrum row.
func (s *Sed) Break(blue, red Window, opts ...MeasureOption) (quantity.Array, error) {
	lnuRed, err := s.WindowLnu(red, opts...)
	if err != nil {
		return quantity.Array{}, err
	}

	lnuBlue, err := s.WindowLnu(blue, opts...)
	if err != nil {
		return quantity.Array{}, err
	}

	out := make([]float64, lnuRed.Len())
	for i := range out {
		out[i] = lnuRed.Values[i] / lnuBlue.Values[i]
	}

	return quantity.Array{Values: out, Unit: quantity.Dimensionless}, nil
}

// BalmerBreak measures the Balmer break using the (3400,3600) and
// (4150,4250) angstrom windows.
func (s *Sed) BalmerBreak(opts ...MeasureOption) (quantity.Array, error) {
	return s.Break(balmerBlueWindow, balmerRedWindow, opts...)
}

// D4000 measures the 4000 angstrom break. The definition selects the
// window pair: "Bruzual83" or "Balogh".
func (s *Sed) D4000(definition string, opts ...MeasureOption) (quantity.Array, error) {
	switch definition {
	case "Bruzual83":
		return s.Break(bruzual83Blue, bruzual83Red, opts...)
	case "Balogh":
		return s.Break(baloghBlue, baloghRed, opts...)
	default:
		return quantity.Array{}, fmt.Errorf("%w: unrecognised definition %q (options are 'Bruzual83' or 'Balogh')",
			ErrUnrecognisedOption, definition)
	}
}

// Beta measures the UV continuum slope, per spectrum row.
//
// A window of two wavelengths fits log10(lnu) against log10(lam) over the
// masked grid and returns the slope minus 2. A window of four wavelengths
// is treated as two sub-windows (blue, red) and measured from their
// window densities, as observations do. A nil window uses the default
// (1250, 3000) angstrom. Any other length fails.
func (s *Sed) Beta(window []float64, opts ...MeasureOption) (quantity.Array, error) {
	if len(window) == 0 {
		window = defaultBetaWindow
	}

	switch len(window) {
	case 2:
		return s.betaFit(Window{window[0], window[1]})
	case 4:
		return s.betaWindows(Window{window[0], window[1]}, Window{window[2], window[3]}, opts)
	default:
		return quantity.Array{}, fmt.Errorf("%w: a window of 2 or 4 wavelengths must be provided, got %d",
			ErrInconsistentArguments, len(window))
	}
}

func (s *Sed) betaFit(window Window) (quantity.Array, error) {
	var logLam []float64

	idx := make([]int, 0, len(s.lam))

	for i, l := range s.lam {
		if l > window.Low && l < window.High {
			idx = append(idx, i)
			logLam = append(logLam, math.Log10(l))
		}
	}

	if len(idx) < 2 {
		return quantity.Array{}, fmt.Errorf("%w: window (%g, %g) contains %d grid samples, need at least 2",
			ErrInconsistentArguments, window.Low, window.High, len(idx))
	}

	out := make([]float64, len(s.lnu))

	logLnu := make([]float64, len(idx))
	for r, row := range s.lnu {
		for j, i := range idx {
			logLnu[j] = math.Log10(row[i])
		}

		out[r] = regressionSlope(logLam, logLnu) - 2
	}

	return quantity.Array{Values: out, Unit: quantity.Dimensionless}, nil
}

func (s *Sed) betaWindows(blue, red Window, opts []MeasureOption) (quantity.Array, error) {
	lnuBlue, err := s.WindowLnu(blue, opts...)
	if err != nil {
		return quantity.Array{}, err
	}

	lnuRed, err := s.WindowLnu(red, opts...)
	if err != nil {
		return quantity.Array{}, err
	}

	slope := math.Log10(blue.mean() / red.mean())

	out := make([]float64, lnuBlue.Len())
	for i := range out {
		out[i] = math.Log10(lnuBlue.Values[i]/lnuRed.Values[i])/slope - 2
	}

	return quantity.Array{Values: out, Unit: quantity.Dimensionless}, nil
}

// regressionSlope returns the least-squares slope of y against x using a
// single-pass covariance accumulation.
func regressionSlope(x, y []float64) float64 {
	var meanX, meanY, covXY, varX float64

	for i := range x {
		n := float64(i + 1)
		dx := x[i] - meanX
		dy := y[i] - meanY

		meanX += dx / n
		meanY += dy / n
		covXY += dx * (y[i] - meanY)
		varX += dx * (x[i] - meanX)
	}

	return covXY / varX
}

// AbsorptionIndex measures an absorption feature index: a straight-line
// continuum is fit through the blue and red window densities, and the
// continuum-normalised deficit -(lnu-continuum)/continuum is integrated
// (trapezoid) over the feature wavelength range. The result is in
// angstrom, one value per spectrum row.
func (s *Sed) AbsorptionIndex(feature, blue, red Window, opts ...MeasureOption) (quantity.Array, error) {
	lnuBlue, err := s.WindowLnu(blue, opts...)
	if err != nil {
		return quantity.Array{}, err
	}

	lnuRed, err := s.WindowLnu(red, opts...)
	if err != nil {
		return quantity.Array{}, err
	}

	var featureLam []float64

	idx := make([]int, 0, len(s.lam))

	for i, l := range s.lam {
		if l > feature.Low && l < feature.High {
			idx = append(idx, i)
			featureLam = append(featureLam, l)
		}
	}

	if len(idx) < 2 {
		return quantity.Array{}, fmt.Errorf("%w: feature window (%g, %g) contains %d grid samples, need at least 2",
			ErrInconsistentArguments, feature.Low, feature.High, len(idx))
	}

	meanBlue := blue.mean()
	meanRed := red.mean()

	out := make([]float64, len(s.lnu))
	deficit := make([]float64, len(idx))

	for r, row := range s.lnu {
		slope := (lnuRed.Values[r] - lnuBlue.Values[r]) / (meanRed - meanBlue)
		intercept := lnuBlue.Values[r] - slope*meanBlue

		for j, i := range idx {
			continuum := slope*featureLam[j] + intercept
			deficit[j] = -(row[i] - continuum) / continuum
		}

		val, err := integrate.LastAxis(featureLam, deficit)
		if err != nil {
			return quantity.Array{}, err
		}

		out[r] = val
	}

	return quantity.Array{Values: out, Unit: quantity.Angstrom}, nil
}

// IonisingPhotonRate measures the ionising photon production rate in
// photons per second, per spectrum row. The spectrum is converted to a
// photon flux llam*lam/(h*c), restricted to wavelengths below the
// ionisation wavelength h*c/E, linearly interpolated at exactly that
// boundary, and integrated over the restricted grid.
func (s *Sed) IonisingPhotonRate(ionisationEnergyErg float64, opts ...MeasureOption) (quantity.Array, error) {
	if ionisationEnergyErg <= 0 {
		return quantity.Array{}, fmt.Errorf("%w: ionisation energy must be positive", ErrInconsistentArguments)
	}

	cfg := applyMeasureOptions(opts)
	if cfg.average {
		return quantity.Array{}, fmt.Errorf("%w: 'average' is not an integration method", ErrUnrecognisedOption)
	}

	ionLam := quantity.PlanckErgS * quantity.SpeedOfLightAngstromPerS / ionisationEnergyErg
	if ionLam <= s.lam[0] {
		return quantity.Array{}, fmt.Errorf("%w: ionisation wavelength %g angstrom below the grid", ErrInconsistentArguments, ionLam)
	}

	// llam*lam/(h*c) reduces to lnu/(h*lam).
	photonRow := func(row []float64) []float64 {
		y := make([]float64, len(row))
		for i := range row {
			y[i] = row[i] / (quantity.PlanckErgS * s.lam[i])
		}

		return y
	}

	// Count samples strictly below the ionisation wavelength.
	cut := 0
	for cut < len(s.lam) && s.lam[cut] < ionLam {
		cut++
	}

	appendBoundary := ionLam < s.lam[len(s.lam)-1]

	x := make([]float64, 0, cut+1)
	x = append(x, s.lam[:cut]...)

	if appendBoundary {
		x = append(x, ionLam)
	}

	out := make([]float64, len(s.lnu))

	for r, row := range s.lnu {
		y := photonRow(row)

		yi := y[:cut]
		if appendBoundary {
			yi = append(yi, interpAscending(s.lam, y, ionLam))
		}

		val, err := integrate.LastAxis(x, yi, cfg.integrateOptions()...)
		if err != nil {
			return quantity.Array{}, err
		}

		out[r] = val
	}

	return quantity.Array{Values: out, Unit: quantity.PerSecond}, nil
}

func negate(vals []float64) {
	for i := range vals {
		vals[i] = -vals[i]
	}
}
