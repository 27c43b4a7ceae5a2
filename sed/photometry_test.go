package sed

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sed/internal/testutil"
	"github.com/cwbudde/algo-sed/photometry"
	"github.com/cwbudde/algo-sed/quantity"
)

// topHatFilter averages the spectral density over a wavelength band.
type topHatFilter struct {
	code      string
	low, high float64
}

func (f topHatFilter) Code() string { return f.code }

func (f topHatFilter) Lam() []float64 { return []float64{f.low, f.high} }

func (f topHatFilter) PivotLam() float64 { return 0.5 * (f.low + f.high) }

func (f topHatFilter) Apply(spectrum, nu []float64) float64 {
	nuLow := quantity.SpeedOfLightAngstromPerS / f.high
	nuHigh := quantity.SpeedOfLightAngstromPerS / f.low

	var sum float64
	var n int

	for i, v := range spectrum {
		if nu[i] >= nuLow && nu[i] <= nuHigh {
			sum += v
			n++
		}
	}

	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

func TestPhotoLuminosities(t *testing.T) {
	lam := testutil.LinearGrid(1000, 3000, 201)

	s, _ := New(lam, WithLnuRows([][]float64{
		testutil.FlatLnu(lam, 3),
		testutil.FlatLnu(lam, 6),
	}))

	filters := []photometry.Filter{
		topHatFilter{code: "A", low: 1100, high: 1900},
		topHatFilter{code: "B", low: 2100, high: 2900},
	}

	phot, err := s.PhotoLuminosities(filters)
	if err != nil {
		t.Fatalf("PhotoLuminosities failed: %v", err)
	}

	if phot.Frame() != photometry.RestFrame {
		t.Fatalf("frame = %v, want rest", phot.Frame())
	}

	a, ok := phot.Get("A")
	if !ok {
		t.Fatal("filter A missing from the collection")
	}

	testutil.RequireSliceNearlyEqual(t, a.Values, []float64{3, 6}, 1e-12)

	if a.Unit != quantity.ErgPerSPerHz {
		t.Fatalf("unit = %v, want erg/s/Hz", a.Unit)
	}

	piv, ok := phot.PivotLam("A")
	if !ok || piv.Value != 1500 {
		t.Fatalf("pivot = %v, want rest-frame 1500", piv.Value)
	}
}

func TestPhotoFluxesRequiresObservedFrame(t *testing.T) {
	lam := testutil.LinearGrid(1000, 3000, 21)

	s, _ := New(lam, WithLnu(testutil.FlatLnu(lam, 3)))

	_, err := s.PhotoFluxes([]photometry.Filter{topHatFilter{code: "A", low: 1100, high: 1900}})
	if !errors.Is(err, ErrMissingFnu) {
		t.Fatalf("error = %v, want ErrMissingFnu", err)
	}
}

func TestPhotoFluxes(t *testing.T) {
	lam := testutil.LinearGrid(1000, 3000, 201)

	s, _ := New(lam, WithLnu(testutil.FlatLnu(lam, 4)))

	if err := s.ObserveAt10pc(); err != nil {
		t.Fatalf("ObserveAt10pc failed: %v", err)
	}

	phot, err := s.PhotoFluxes([]photometry.Filter{topHatFilter{code: "A", low: 1100, high: 1900}})
	if err != nil {
		t.Fatalf("PhotoFluxes failed: %v", err)
	}

	if phot.Frame() != photometry.ObservedFrame {
		t.Fatalf("frame = %v, want observed", phot.Frame())
	}

	want := 4 / quantity.TenParsecAreaCm2()

	a, _ := phot.Get("A")
	testutil.RequireNearlyEqualRel(t, a.Values[0], want, 1e-12)
}

func TestPhotoFluxesRedshiftsPivot(t *testing.T) {
	lam := testutil.LinearGrid(1000, 3000, 201)

	s, _ := New(lam, WithLnu(testutil.FlatLnu(lam, 4)))

	if err := s.Observe(fakeCosmology{distanceCm: 1e28}, 1); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}

	phot, err := s.PhotoFluxes([]photometry.Filter{topHatFilter{code: "A", low: 2100, high: 3900}})
	if err != nil {
		t.Fatalf("PhotoFluxes failed: %v", err)
	}

	// Observed-frame photometry positions the band at pivot*(1+z).
	piv, ok := phot.PivotLam("A")
	if !ok || piv.Value != 6000 {
		t.Fatalf("pivot = %v, want 6000", piv.Value)
	}
}

func TestColour(t *testing.T) {
	lam := testutil.LinearGrid(1000, 3000, 201)

	// Step spectrum: two flat plateaus differing by a factor 100, so the
	// colour between plateau filters is exactly 2.5*log10(100) = 5.
	lnu := make([]float64, len(lam))
	for i, l := range lam {
		if l <= 2000 {
			lnu[i] = 10
		} else {
			lnu[i] = 1000
		}
	}

	s, _ := New(lam, WithLnu(lnu))

	if err := s.ObserveAt10pc(); err != nil {
		t.Fatalf("ObserveAt10pc failed: %v", err)
	}

	filters := []photometry.Filter{
		topHatFilter{code: "blue", low: 1100, high: 1900},
		topHatFilter{code: "red", low: 2100, high: 2900},
	}

	if _, err := s.PhotoFluxes(filters); err != nil {
		t.Fatalf("PhotoFluxes failed: %v", err)
	}

	colour, err := s.Colour("blue", "red")
	if err != nil {
		t.Fatalf("Colour failed: %v", err)
	}

	testutil.RequireNearlyEqual(t, colour.Values[0], 5, 1e-9)
}

func TestColourRequiresPhotometry(t *testing.T) {
	lam := testutil.LinearGrid(1000, 3000, 21)

	s, _ := New(lam, WithLnu(testutil.FlatLnu(lam, 3)))

	if _, err := s.Colour("blue", "red"); !errors.Is(err, ErrMissingPhotometry) {
		t.Fatalf("error = %v, want ErrMissingPhotometry", err)
	}

	if err := s.ObserveAt10pc(); err != nil {
		t.Fatalf("ObserveAt10pc failed: %v", err)
	}

	if _, err := s.PhotoFluxes([]photometry.Filter{topHatFilter{code: "blue", low: 1100, high: 1900}}); err != nil {
		t.Fatalf("PhotoFluxes failed: %v", err)
	}

	if _, err := s.Colour("blue", "red"); !errors.Is(err, ErrMissingPhotometry) {
		t.Fatalf("missing code: error = %v, want ErrMissingPhotometry", err)
	}
}
