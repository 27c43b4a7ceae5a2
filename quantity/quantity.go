package quantity

// Scalar is a single value tagged with a unit.
type Scalar struct {
	Value float64
	Unit  Unit
}

// NewScalar returns a unit-tagged scalar.
func NewScalar(value float64, unit Unit) Scalar {
	return Scalar{Value: value, Unit: unit}
}

// To converts s to the requested unit of the same kind.
func (s Scalar) To(unit Unit) (Scalar, error) {
	f, err := convFactor(s.Unit, unit)
	if err != nil {
		return Scalar{}, err
	}

	return Scalar{Value: s.Value * f, Unit: unit}, nil
}

// Add returns s + other with other converted to s's unit.
func (s Scalar) Add(other Scalar) (Scalar, error) {
	conv, err := other.To(s.Unit)
	if err != nil {
		return Scalar{}, err
	}

	return Scalar{Value: s.Value + conv.Value, Unit: s.Unit}, nil
}

// Sub returns s - other with other converted to s's unit.
func (s Scalar) Sub(other Scalar) (Scalar, error) {
	conv, err := other.To(s.Unit)
	if err != nil {
		return Scalar{}, err
	}

	return Scalar{Value: s.Value - conv.Value, Unit: s.Unit}, nil
}

// Scale returns s multiplied by a dimensionless factor.
func (s Scalar) Scale(f float64) Scalar {
	return Scalar{Value: s.Value * f, Unit: s.Unit}
}

// Mul returns s * other. Without a compound-unit algebra the product is
// only defined when one operand is dimensionless; the result carries the
// other operand's unit.
func (s Scalar) Mul(other Scalar) (Scalar, error) {
	switch {
	case other.Unit == Dimensionless:
		return Scalar{Value: s.Value * other.Value, Unit: s.Unit}, nil
	case s.Unit == Dimensionless:
		return Scalar{Value: s.Value * other.Value, Unit: other.Unit}, nil
	default:
		return Scalar{}, ErrIncompatibleUnits
	}
}

// Div returns the dimensionless ratio s/other after unit conversion.
func (s Scalar) Div(other Scalar) (Scalar, error) {
	conv, err := other.To(s.Unit)
	if err != nil {
		return Scalar{}, err
	}

	return Scalar{Value: s.Value / conv.Value, Unit: Dimensionless}, nil
}

// Array is a slice of values sharing one unit.
//
// Constructors and operations always allocate fresh backing storage; an
// Array never aliases its inputs, so tagged values can be handed out
// without breaking the functional-transform contract of the callers.
type Array struct {
	Values []float64
	Unit   Unit
}

// NewArray returns a unit-tagged copy of values.
func NewArray(values []float64, unit Unit) Array {
	cp := make([]float64, len(values))
	copy(cp, values)

	return Array{Values: cp, Unit: unit}
}

// Len returns the number of elements.
func (a Array) Len() int {
	return len(a.Values)
}

// At returns element i as a tagged scalar.
func (a Array) At(i int) Scalar {
	return Scalar{Value: a.Values[i], Unit: a.Unit}
}

// To converts every element to the requested unit of the same kind.
func (a Array) To(unit Unit) (Array, error) {
	f, err := convFactor(a.Unit, unit)
	if err != nil {
		return Array{}, err
	}

	out := make([]float64, len(a.Values))
	for i, v := range a.Values {
		out[i] = v * f
	}

	return Array{Values: out, Unit: unit}, nil
}

// Add returns the elementwise sum a + other, converting other to a's unit.
func (a Array) Add(other Array) (Array, error) {
	conv, err := other.To(a.Unit)
	if err != nil {
		return Array{}, err
	}

	if len(a.Values) != len(conv.Values) {
		return Array{}, ErrShapeMismatch
	}

	out := make([]float64, len(a.Values))
	for i, v := range a.Values {
		out[i] = v + conv.Values[i]
	}

	return Array{Values: out, Unit: a.Unit}, nil
}

// Sub returns the elementwise difference a - other, converting other to
// a's unit.
func (a Array) Sub(other Array) (Array, error) {
	conv, err := other.To(a.Unit)
	if err != nil {
		return Array{}, err
	}

	if len(a.Values) != len(conv.Values) {
		return Array{}, ErrShapeMismatch
	}

	out := make([]float64, len(a.Values))
	for i, v := range a.Values {
		out[i] = v - conv.Values[i]
	}

	return Array{Values: out, Unit: a.Unit}, nil
}

// Div returns the elementwise dimensionless ratio a/other after unit
// conversion.
func (a Array) Div(other Array) (Array, error) {
	conv, err := other.To(a.Unit)
	if err != nil {
		return Array{}, err
	}

	if len(a.Values) != len(conv.Values) {
		return Array{}, ErrShapeMismatch
	}

	out := make([]float64, len(a.Values))
	for i, v := range a.Values {
		out[i] = v / conv.Values[i]
	}

	return Array{Values: out, Unit: Dimensionless}, nil
}

// Scale returns a multiplied elementwise by a dimensionless factor.
func (a Array) Scale(f float64) Array {
	out := make([]float64, len(a.Values))
	for i, v := range a.Values {
		out[i] = v * f
	}

	return Array{Values: out, Unit: a.Unit}
}
