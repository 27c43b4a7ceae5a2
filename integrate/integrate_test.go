package integrate

import (
	"errors"
	"math"
	"testing"
)

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)

	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

func TestTrapezoidExactOnLinear(t *testing.T) {
	x := linspace(0, 10, 11)

	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3*v + 1
	}

	got, err := LastAxis(x, y)
	if err != nil {
		t.Fatalf("LastAxis error: %v", err)
	}

	// Integral of 3x+1 over [0,10] is 160.
	if math.Abs(got-160) > 1e-12 {
		t.Fatalf("integral = %v, want 160", got)
	}
}

func TestSimpsonExactOnParabola(t *testing.T) {
	x := linspace(0, 6, 13)

	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * v
	}

	got, err := LastAxis(x, y, WithMethod(Simpson))
	if err != nil {
		t.Fatalf("LastAxis error: %v", err)
	}

	// Integral of x^2 over [0,6] is 72; Simpson is exact on cubics.
	if math.Abs(got-72) > 1e-12 {
		t.Fatalf("integral = %v, want 72", got)
	}
}

func TestSimpsonOddIntervalCount(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 1, 1, 1}

	got, err := LastAxis(x, y, WithMethod(Simpson))
	if err != nil {
		t.Fatalf("LastAxis error: %v", err)
	}

	if math.Abs(got-3) > 1e-12 {
		t.Fatalf("integral = %v, want 3", got)
	}
}

func TestDescendingGridFlipsSign(t *testing.T) {
	x := linspace(0, 10, 11)
	y := make([]float64, len(x))

	rev := make([]float64, len(x))
	for i := range x {
		y[i] = 1
		rev[i] = x[len(x)-1-i]
	}

	fwd, err := LastAxis(x, y)
	if err != nil {
		t.Fatalf("LastAxis error: %v", err)
	}

	bwd, err := LastAxis(rev, y)
	if err != nil {
		t.Fatalf("LastAxis error: %v", err)
	}

	if math.Abs(fwd+bwd) > 1e-12 {
		t.Fatalf("fwd = %v, bwd = %v, want opposite signs", fwd, bwd)
	}
}

func TestRowsMatchesLastAxis(t *testing.T) {
	x := linspace(1, 5, 9)
	rows := [][]float64{
		make([]float64, len(x)),
		make([]float64, len(x)),
		make([]float64, len(x)),
	}

	for i, v := range x {
		rows[0][i] = v
		rows[1][i] = v * v
		rows[2][i] = math.Sin(v)
	}

	got, err := Rows(x, rows)
	if err != nil {
		t.Fatalf("Rows error: %v", err)
	}

	for i, row := range rows {
		want, err := LastAxis(x, row)
		if err != nil {
			t.Fatalf("LastAxis error: %v", err)
		}

		if got[i] != want {
			t.Fatalf("row %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestRowsThreadedParity(t *testing.T) {
	x := linspace(0, 1, 64)

	rows := make([][]float64, 37)
	for r := range rows {
		rows[r] = make([]float64, len(x))
		for i, v := range x {
			rows[r][i] = math.Cos(float64(r+1) * v)
		}
	}

	serial, err := Rows(x, rows)
	if err != nil {
		t.Fatalf("Rows error: %v", err)
	}

	parallel, err := Rows(x, rows, WithThreads(8))
	if err != nil {
		t.Fatalf("Rows error: %v", err)
	}

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("row %d: serial %v != parallel %v", i, serial[i], parallel[i])
		}
	}
}

func TestParseMethod(t *testing.T) {
	if m, err := ParseMethod("trapz"); err != nil || m != Trapezoid {
		t.Fatalf("ParseMethod(trapz) = %v, %v", m, err)
	}

	if m, err := ParseMethod("simps"); err != nil || m != Simpson {
		t.Fatalf("ParseMethod(simps) = %v, %v", m, err)
	}

	if _, err := ParseMethod("romberg"); !errors.Is(err, ErrUnrecognisedMethod) {
		t.Fatalf("ParseMethod(romberg) error = %v, want ErrUnrecognisedMethod", err)
	}
}

func TestValidation(t *testing.T) {
	if _, err := LastAxis([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}

	if _, err := LastAxis([]float64{1}, []float64{1}); !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("error = %v, want ErrTooFewSamples", err)
	}
}
