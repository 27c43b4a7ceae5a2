package line

import "fmt"

// Collection indexes lines by id and evaluates catalogue ratios and
// diagrams over them. It is read-only once built.
type Collection struct {
	ids   []string
	lines map[string]*Line
}

// NewCollection builds a collection, preserving insertion order. A
// repeated id keeps the last line.
func NewCollection(lines ...*Line) *Collection {
	c := &Collection{
		ids:   make([]string, 0, len(lines)),
		lines: make(map[string]*Line, len(lines)),
	}

	for _, l := range lines {
		id := l.ID()
		if _, ok := c.lines[id]; !ok {
			c.ids = append(c.ids, id)
		}

		c.lines[id] = l
	}

	return c
}

// Len returns the number of lines.
func (c *Collection) Len() int {
	return len(c.ids)
}

// IDs returns the line ids in insertion order.
func (c *Collection) IDs() []string {
	return copyStrings(c.ids)
}

// Line returns the line with the given id.
func (c *Collection) Line(id string) (*Line, error) {
	l, ok := c.lines[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingLine, id)
	}

	return l, nil
}

// RatioOf returns the luminosity ratio sum(numerator)/sum(denominator)
// over the named lines.
func (c *Collection) RatioOf(numerator, denominator []string) (float64, error) {
	num, err := c.sumLuminosity(numerator)
	if err != nil {
		return 0, err
	}

	den, err := c.sumLuminosity(denominator)
	if err != nil {
		return 0, err
	}

	return num / den, nil
}

// Ratio evaluates a catalogue ratio by name.
func (c *Collection) Ratio(name string) (float64, error) {
	def, ok := catalogue.Ratios[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown ratio %q (available: %v)",
			ErrUnrecognisedOption, name, RatioNames())
	}

	return c.RatioOf(def.Numerator, def.Denominator)
}

// Diagram evaluates the two axis ratios of a catalogue diagram.
func (c *Collection) Diagram(name string) (x, y float64, err error) {
	def, ok := catalogue.Diagrams[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown diagram %q (available: %v)",
			ErrUnrecognisedOption, name, DiagramNames())
	}

	x, err = c.RatioOf(def.X.Numerator, def.X.Denominator)
	if err != nil {
		return 0, 0, err
	}

	y, err = c.RatioOf(def.Y.Numerator, def.Y.Denominator)
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

// AvailableRatios returns the catalogue ratios whose lines are all
// present, sorted by name.
func (c *Collection) AvailableRatios() []string {
	var out []string

	for _, name := range RatioNames() {
		def := catalogue.Ratios[name]
		if c.holdsAll(def.Numerator) && c.holdsAll(def.Denominator) {
			out = append(out, name)
		}
	}

	return out
}

// AvailableDiagrams returns the catalogue diagrams whose axis lines are
// all present, sorted by name.
func (c *Collection) AvailableDiagrams() []string {
	var out []string

	for _, name := range DiagramNames() {
		def := catalogue.Diagrams[name]
		if c.holdsAll(def.X.Numerator) && c.holdsAll(def.X.Denominator) &&
			c.holdsAll(def.Y.Numerator) && c.holdsAll(def.Y.Denominator) {
			out = append(out, name)
		}
	}

	return out
}

func (c *Collection) sumLuminosity(ids []string) (float64, error) {
	var total float64

	for _, id := range ids {
		l, ok := c.lines[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingLine, id)
		}

		total += sum(l.luminosities)
	}

	return total, nil
}

func (c *Collection) holdsAll(ids []string) bool {
	for _, id := range ids {
		if _, ok := c.lines[id]; !ok {
			return false
		}
	}

	return true
}
