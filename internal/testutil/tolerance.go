package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps.
// An eps of 0 demands bit equality.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	requireClose(t, -1, got, want, eps, 0)
}

// RequireNearlyEqualRel fails t if got and want differ by more than
// rel*|want|. Luminosities and fluxes span from ~1e40 erg/s down to
// ~1e-60 erg/s/cm^2/Hz, so comparisons on them need a relative
// tolerance rather than an absolute one.
func RequireNearlyEqualRel(t *testing.T, got, want, rel float64) {
	t.Helper()
	requireClose(t, -1, got, want, 0, rel)
}

// RequireSliceNearlyEqual fails t if got and want differ in length or
// any sample pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	requireSameLength(t, got, want)

	for i := range got {
		requireClose(t, i, got[i], want[i], eps, 0)
	}
}

// RequireSliceNearlyEqualRel is the relative-tolerance counterpart of
// RequireSliceNearlyEqual.
func RequireSliceNearlyEqualRel(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	requireSameLength(t, got, want)

	for i := range got {
		requireClose(t, i, got[i], want[i], 0, rel)
	}
}

// RequireFinite fails t on the first NaN or Inf sample. Convolution and
// frame conversion must never emit either.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is not finite: %v", i, v)
		}
	}
}

func requireSameLength(t *testing.T, got, want []float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d samples, want %d", len(got), len(want))
	}
}

func requireClose(t *testing.T, sample int, got, want, eps, rel float64) {
	t.Helper()

	tol := eps + rel*math.Abs(want)
	if diff := math.Abs(got - want); diff > tol {
		if sample < 0 {
			t.Fatalf("got %v, want %v (diff %v > tol %v)", got, want, diff, tol)
		}

		t.Fatalf("sample %d: got %v, want %v (diff %v > tol %v)", sample, got, want, diff, tol)
	}
}
