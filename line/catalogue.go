package line

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed catalogue.toml
var catalogueTOML []byte

// ratioDef names the lines whose summed luminosities form a ratio.
type ratioDef struct {
	Numerator   []string `toml:"numerator"`
	Denominator []string `toml:"denominator"`
}

// diagramDef holds the two axis ratios of a diagnostic diagram. Axes
// are defined inline because not every diagram axis is a named ratio.
type diagramDef struct {
	X ratioDef `toml:"x"`
	Y ratioDef `toml:"y"`
}

type catalogueData struct {
	Ratios   map[string]ratioDef   `toml:"ratios"`
	Diagrams map[string]diagramDef `toml:"diagrams"`
}

var catalogue catalogueData

func init() {
	if err := toml.Unmarshal(catalogueTOML, &catalogue); err != nil {
		panic("line: invalid embedded catalogue: " + err.Error())
	}

	for name, def := range catalogue.Ratios {
		if len(def.Numerator) == 0 || len(def.Denominator) == 0 {
			panic(fmt.Sprintf("line: ratio %s needs numerator and denominator lines", name))
		}
	}

	for name, def := range catalogue.Diagrams {
		for _, axis := range []ratioDef{def.X, def.Y} {
			if len(axis.Numerator) == 0 || len(axis.Denominator) == 0 {
				panic(fmt.Sprintf("line: diagram %s needs two complete axis ratios", name))
			}
		}
	}
}

// RatioNames returns all catalogue ratio names, sorted.
func RatioNames() []string {
	return sortedKeys(catalogue.Ratios)
}

// DiagramNames returns all catalogue diagram names, sorted.
func DiagramNames() []string {
	return sortedKeys(catalogue.Diagrams)
}

// RatioLines returns the numerator and denominator line ids of a
// catalogue ratio.
func RatioLines(name string) (numerator, denominator []string, err error) {
	def, ok := catalogue.Ratios[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown ratio %q", ErrUnrecognisedOption, name)
	}

	return copyStrings(def.Numerator), copyStrings(def.Denominator), nil
}

// Label renders a line id in compact notation: "O 3 5008.24A" becomes
// "OIII5008", with the ionisation stage as a roman numeral and the
// wavelength rounded to four significant digits. Composite ids are
// joined with "+". Ids outside the cloudy convention pass through
// unchanged.
func Label(id string) string {
	parts := strings.Split(id, ",")
	for i, part := range parts {
		parts[i] = labelOne(strings.TrimSpace(part))
	}

	return strings.Join(parts, "+")
}

// LabelOption configures ratio and diagram label rendering.
type LabelOption func(*labelConfig)

type labelConfig struct {
	fancy bool
}

// WithFancyIDs substitutes compact line ids (e.g. "OIII5008") for the
// raw cloudy ids inside ratio and diagram labels.
func WithFancyIDs() LabelOption {
	return func(cfg *labelConfig) {
		cfg.fancy = true
	}
}

// RatioLabel renders a catalogue ratio as "(id1,id2)/(id3)", keeping
// the raw line ids unless WithFancyIDs is given.
func RatioLabel(name string, opts ...LabelOption) (string, error) {
	def, ok := catalogue.Ratios[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown ratio %q", ErrUnrecognisedOption, name)
	}

	return ratioLabel(def, applyLabelOptions(opts)), nil
}

// DiagramLabels renders the two axis ratios of a catalogue diagram in
// the same "(id1,id2)/(id3)" form as RatioLabel.
func DiagramLabels(name string, opts ...LabelOption) (x, y string, err error) {
	def, ok := catalogue.Diagrams[name]
	if !ok {
		return "", "", fmt.Errorf("%w: unknown diagram %q", ErrUnrecognisedOption, name)
	}

	cfg := applyLabelOptions(opts)

	return ratioLabel(def.X, cfg), ratioLabel(def.Y, cfg), nil
}

func applyLabelOptions(opts []LabelOption) labelConfig {
	var cfg labelConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func ratioLabel(def ratioDef, cfg labelConfig) string {
	return "(" + joinIDs(def.Numerator, cfg) + ")/(" + joinIDs(def.Denominator, cfg) + ")"
}

func joinIDs(ids []string, cfg labelConfig) string {
	if !cfg.fancy {
		return strings.Join(ids, ",")
	}

	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = Label(id)
	}

	return strings.Join(labels, ",")
}

func labelOne(id string) string {
	fields := strings.Fields(id)
	if len(fields) != 3 || !strings.HasSuffix(fields[2], "A") {
		return id
	}

	stage, err := strconv.Atoi(fields[1])
	if err != nil {
		return id
	}

	lam, err := strconv.ParseFloat(strings.TrimSuffix(fields[2], "A"), 64)
	if err != nil {
		return id
	}

	return fields[0] + roman(stage) + strconv.FormatFloat(lam, 'g', 4, 64)
}

// roman covers the ionisation stages the catalogue can reach.
func roman(n int) string {
	numerals := []struct {
		value  int
		symbol string
	}{
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}

	if n <= 0 {
		return strconv.Itoa(n)
	}

	var b strings.Builder

	for _, numeral := range numerals {
		for n >= numeral.value {
			b.WriteString(numeral.symbol)
			n -= numeral.value
		}
	}

	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
