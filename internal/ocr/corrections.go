package ocr

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Correction is one literal text substitution fixing a known OCR misread.
type Correction struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultCorrections fixes misreads Tesseract commonly produces on
// medical vocabulary: rn/m confusion in units, digit/letter swaps in
// common abbreviations. Order matters; more specific entries come first.
func DefaultCorrections() []Correction {
	return []Correction{
		{From: "rng/dL", To: "mg/dL"},
		{From: "rng/dl", To: "mg/dl"},
		{From: "rnrnHg", To: "mmHg"},
		{From: "rnmHg", To: "mmHg"},
		{From: "mrnHg", To: "mmHg"},
		{From: "rnm Hg", To: "mm Hg"},
		{From: "crn/s", To: "cm/s"},
		{From: "crn2", To: "cm2"},
		{From: "crn ", To: "cm "},
		{From: "rnL", To: "mL"},
		{From: "rnEq", To: "mEq"},
		{From: "rnmol", To: "mmol"},
		{From: "lVEF", To: "LVEF"},
		{From: "E]ection", To: "Ejection"},
		{From: "0cclusion", To: "Occlusion"},
		{From: "stenos1s", To: "stenosis"},
		{From: "l00%", To: "100%"},
		{From: "O.5", To: "0.5"},
	}
}

// ApplyCorrections applies each substitution in order to text.
func ApplyCorrections(text string, corrections []Correction) string {
	for _, c := range corrections {
		text = strings.ReplaceAll(text, c.From, c.To)
	}
	return text
}

// LoadCorrections reads a YAML list of {from, to} substitutions. It
// replaces, not extends, the default table.
func LoadCorrections(path string) ([]Correction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corrections file: %w", err)
	}
	var corrections []Correction
	if err := yaml.Unmarshal(data, &corrections); err != nil {
		return nil, fmt.Errorf("parsing corrections file %q: %w", path, err)
	}
	for i, c := range corrections {
		if c.From == "" {
			return nil, fmt.Errorf("corrections file %q: entry %d has empty 'from'", path, i)
		}
	}
	return corrections, nil
}
