package quantity

import (
	"errors"
	"math"
	"testing"
)

func TestScalarConversion(t *testing.T) {
	lam := NewScalar(5000, Angstrom)

	nm, err := lam.To(Nanometre)
	if err != nil {
		t.Fatalf("To(Nanometre) error: %v", err)
	}

	if nm.Value != 500 {
		t.Fatalf("value = %v, want 500", nm.Value)
	}

	back, err := nm.To(Angstrom)
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}

	if back.Value != 5000 {
		t.Fatalf("round trip = %v, want 5000", back.Value)
	}
}

func TestScalarIncompatibleKinds(t *testing.T) {
	lam := NewScalar(5000, Angstrom)
	nu := NewScalar(1e15, Hertz)

	if _, err := lam.Add(nu); !errors.Is(err, ErrIncompatibleUnits) {
		t.Fatalf("Add error = %v, want ErrIncompatibleUnits", err)
	}

	if _, err := lam.To(Hertz); !errors.Is(err, ErrIncompatibleUnits) {
		t.Fatalf("To error = %v, want ErrIncompatibleUnits", err)
	}
}

func TestScalarAddConverts(t *testing.T) {
	a := NewScalar(1000, Angstrom)
	b := NewScalar(100, Nanometre)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if sum.Value != 2000 || sum.Unit != Angstrom {
		t.Fatalf("sum = %v %v, want 2000 angstrom", sum.Value, sum.Unit)
	}
}

func TestScalarDivDimensionless(t *testing.T) {
	a := NewScalar(2.86e40, ErgPerS)
	b := NewScalar(1e40, ErgPerS)

	r, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}

	if r.Unit != Dimensionless {
		t.Fatalf("unit = %v, want dimensionless", r.Unit)
	}

	if math.Abs(r.Value-2.86) > 1e-12 {
		t.Fatalf("ratio = %v, want 2.86", r.Value)
	}
}

func TestScalarMul(t *testing.T) {
	lum := NewScalar(1e40, ErgPerS)
	factor := NewScalar(2.5, Dimensionless)

	p, err := lum.Mul(factor)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}

	if p.Value != 2.5e40 || p.Unit != ErgPerS {
		t.Fatalf("product = %v %v, want 2.5e40 erg/s", p.Value, p.Unit)
	}

	// A dimensionless receiver takes the other operand's unit.
	q, err := factor.Mul(lum)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}

	if q.Value != 2.5e40 || q.Unit != ErgPerS {
		t.Fatalf("product = %v %v, want 2.5e40 erg/s", q.Value, q.Unit)
	}

	lam := NewScalar(5000, Angstrom)
	if _, err := lum.Mul(lam); !errors.Is(err, ErrIncompatibleUnits) {
		t.Fatalf("Mul error = %v, want ErrIncompatibleUnits", err)
	}
}

func TestArraySub(t *testing.T) {
	a := NewArray([]float64{3, 5}, ErgPerS)
	b := NewArray([]float64{1, 2}, ErgPerS)

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub error: %v", err)
	}

	if diff.Values[0] != 2 || diff.Values[1] != 3 {
		t.Fatalf("diff = %v, want [2 3]", diff.Values)
	}

	short := NewArray([]float64{1}, ErgPerS)
	if _, err := a.Sub(short); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Sub error = %v, want ErrShapeMismatch", err)
	}
}

func TestArrayDiv(t *testing.T) {
	a := NewArray([]float64{2.86e40, 4e40}, ErgPerS)
	b := NewArray([]float64{1e40, 2e40}, ErgPerS)

	r, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}

	if r.Unit != Dimensionless {
		t.Fatalf("unit = %v, want dimensionless", r.Unit)
	}

	if math.Abs(r.Values[0]-2.86) > 1e-12 || r.Values[1] != 2 {
		t.Fatalf("ratios = %v, want [2.86 2]", r.Values)
	}

	lam := NewArray([]float64{1, 2}, Angstrom)
	if _, err := a.Div(lam); !errors.Is(err, ErrIncompatibleUnits) {
		t.Fatalf("Div error = %v, want ErrIncompatibleUnits", err)
	}
}

func TestArrayFreshStorage(t *testing.T) {
	src := []float64{1, 2, 3}
	a := NewArray(src, ErgPerSPerHz)
	src[0] = 99

	if a.Values[0] != 1 {
		t.Fatal("NewArray aliased its input")
	}

	b := a.Scale(2)
	if a.Values[1] != 2 {
		t.Fatal("Scale mutated the receiver")
	}

	if b.Values[1] != 4 {
		t.Fatalf("scaled value = %v, want 4", b.Values[1])
	}
}

func TestArrayAddLengthMismatch(t *testing.T) {
	a := NewArray([]float64{1, 2}, ErgPerSPerHz)
	b := NewArray([]float64{1, 2, 3}, ErgPerSPerHz)

	if _, err := a.Add(b); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Add error = %v, want ErrShapeMismatch", err)
	}
}

func TestArrayAddConverts(t *testing.T) {
	a := NewArray([]float64{1, 1}, ErgPerS)
	b := NewArray([]float64{1, 1}, Watt)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if sum.Values[0] != 1+1e7 {
		t.Fatalf("sum[0] = %v, want %v", sum.Values[0], 1+1e7)
	}
}

func TestNanoJanskyFactor(t *testing.T) {
	fnu := NewScalar(1e-23, ErgPerSPerCm2PerHz) // 1 Jy

	njy, err := fnu.To(NanoJansky)
	if err != nil {
		t.Fatalf("To(NanoJansky) error: %v", err)
	}

	if math.Abs(njy.Value-1e9) > 1e-3 {
		t.Fatalf("value = %v, want 1e9", njy.Value)
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		kind Kind
		want Unit
	}{
		{KindWavelength, Angstrom},
		{KindFrequency, Hertz},
		{KindLuminosityDensityNu, ErgPerSPerHz},
		{KindLuminosity, ErgPerS},
		{KindFluxDensityNu, ErgPerSPerCm2PerHz},
		{KindDimensionless, Dimensionless},
	}

	for _, tc := range cases {
		if got := Canonical(tc.kind); got != tc.want {
			t.Fatalf("Canonical(%v) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestTenParsecArea(t *testing.T) {
	want := 4 * math.Pi * math.Pow(10*ParsecCm, 2)
	if got := TenParsecAreaCm2(); got != want {
		t.Fatalf("area = %v, want %v", got, want)
	}
}
