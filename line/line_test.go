package line

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sed/quantity"
)

// fakeCosmology returns a fixed luminosity distance.
type fakeCosmology struct {
	distanceCm float64
}

func (c fakeCosmology) LuminosityDistanceCM(float64) float64 {
	return c.distanceCm
}

func mustLine(t *testing.T, id string, lam, lum, cont float64) *Line {
	t.Helper()

	l, err := New([]string{id}, []float64{lam}, []float64{lum}, []float64{cont})
	if err != nil {
		t.Fatalf("New(%s) failed: %v", id, err)
	}

	return l
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, nil, nil, nil); !errors.Is(err, ErrInconsistentArguments) {
		t.Fatalf("empty ids: error = %v, want ErrInconsistentArguments", err)
	}

	_, err := New([]string{"H 1 6564.62A"}, []float64{6564.62}, []float64{1e40, 2e40}, []float64{1e28})
	if !errors.Is(err, ErrInconsistentArguments) {
		t.Fatalf("length mismatch: error = %v, want ErrInconsistentArguments", err)
	}
}

func TestCompositeLineAggregates(t *testing.T) {
	doublet, err := New(
		[]string{"O 2 3727.09A", "O 2 3729.88A"},
		[]float64{3727.09, 3729.88},
		[]float64{1e40, 2e40},
		[]float64{1e28, 3e28},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if doublet.ID() != "O 2 3727.09A,O 2 3729.88A" {
		t.Fatalf("ID = %q", doublet.ID())
	}

	if got, want := doublet.Wavelength().Value, 0.5*(3727.09+3729.88); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Wavelength = %v, want %v", got, want)
	}

	if got := doublet.Luminosity().Value; got != 3e40 {
		t.Fatalf("Luminosity = %v, want 3e40", got)
	}

	if got := doublet.Continuum().Value; got != 2e28 {
		t.Fatalf("Continuum = %v, want 2e28", got)
	}
}

func TestEquivalentWidth(t *testing.T) {
	l := mustLine(t, "O 3 5008.24A", 5000, 1e40, 1e28)

	contLlam := 1e28 * quantity.SpeedOfLightAngstromPerS / (5000.0 * 5000.0)
	want := 1e40 / contLlam

	got := l.EquivalentWidth()
	if math.Abs(got.Value-want) > 1e-9*want {
		t.Fatalf("EquivalentWidth = %v, want %v", got.Value, want)
	}

	if got.Unit != quantity.Angstrom {
		t.Fatalf("unit = %v, want angstrom", got.Unit)
	}
}

func TestAdd(t *testing.T) {
	a := mustLine(t, "H 1 6564.62A", 6564.62, 1e40, 1e28)
	b := mustLine(t, "H 1 6564.62A", 6564.62, 2e40, 1e28)

	total, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if got := total.Luminosity().Value; got != 3e40 {
		t.Fatalf("Luminosity = %v, want 3e40", got)
	}

	if got := total.Continuum().Value; got != 2e28 {
		t.Fatalf("Continuum = %v, want 2e28", got)
	}

	// Operands stay untouched.
	if a.Luminosity().Value != 1e40 {
		t.Fatal("Add mutated its receiver")
	}
}

func TestAddRejectsDifferentIDs(t *testing.T) {
	a := mustLine(t, "H 1 6564.62A", 6564.62, 1e40, 1e28)
	b := mustLine(t, "H 1 4862.69A", 4862.69, 1e40, 1e28)

	if _, err := a.Add(b); !errors.Is(err, ErrInconsistentAddition) {
		t.Fatalf("error = %v, want ErrInconsistentAddition", err)
	}
}

func TestScale(t *testing.T) {
	l := mustLine(t, "H 1 6564.62A", 6564.62, 1e40, 1e28)

	scaled := l.Scale(2)

	if scaled.Luminosity().Value != 2e40 || scaled.Continuum().Value != 2e28 {
		t.Fatalf("scaled luminosity = %v, continuum = %v", scaled.Luminosity().Value, scaled.Continuum().Value)
	}
}

func TestFluxAtTenParsecs(t *testing.T) {
	l := mustLine(t, "H 1 6564.62A", 6564.62, 1e40, 1e28)

	flux, err := l.Flux(fakeCosmology{distanceCm: 1e28}, 0)
	if err != nil {
		t.Fatalf("Flux failed: %v", err)
	}

	want := 1e40 / quantity.TenParsecAreaCm2()
	if math.Abs(flux.Value-want) > 1e-9*want {
		t.Fatalf("Flux = %v, want %v", flux.Value, want)
	}
}

func TestFluxAtRedshift(t *testing.T) {
	distance := 3.0856775814913673e28

	l := mustLine(t, "H 1 6564.62A", 6564.62, 1e40, 1e28)

	flux, err := l.Flux(fakeCosmology{distanceCm: distance}, 1)
	if err != nil {
		t.Fatalf("Flux failed: %v", err)
	}

	want := 1e40 / quantity.SphereAreaCm2(distance)
	if math.Abs(flux.Value-want) > 1e-9*want {
		t.Fatalf("Flux = %v, want %v", flux.Value, want)
	}

	obsLam, err := l.ObservedWavelength()
	if err != nil {
		t.Fatalf("ObservedWavelength failed: %v", err)
	}

	if math.Abs(obsLam.Value-2*6564.62) > 1e-9 {
		t.Fatalf("ObservedWavelength = %v, want %v", obsLam.Value, 2*6564.62)
	}

	// Same redshift hits the cache.
	again, err := l.Flux(fakeCosmology{distanceCm: distance}, 1)
	if err != nil {
		t.Fatalf("cached Flux failed: %v", err)
	}

	if again.Value != flux.Value {
		t.Fatalf("cached flux %v != first flux %v", again.Value, flux.Value)
	}
}

func TestFluxRejectsNegativeRedshift(t *testing.T) {
	l := mustLine(t, "H 1 6564.62A", 6564.62, 1e40, 1e28)

	if _, err := l.Flux(fakeCosmology{distanceCm: 1e28}, -1); !errors.Is(err, ErrInconsistentArguments) {
		t.Fatalf("error = %v, want ErrInconsistentArguments", err)
	}
}

func TestObservedWavelengthRequiresFlux(t *testing.T) {
	l := mustLine(t, "H 1 6564.62A", 6564.62, 1e40, 1e28)

	if _, err := l.ObservedWavelength(); !errors.Is(err, ErrMissingFlux) {
		t.Fatalf("error = %v, want ErrMissingFlux", err)
	}
}
